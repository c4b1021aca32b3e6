package harden

import (
	"fmt"
	"strings"

	"github.com/paranoidvpn/paranoidvpn/internal/cipher"
	"github.com/paranoidvpn/paranoidvpn/internal/policy"
	"github.com/paranoidvpn/paranoidvpn/internal/profile"
)

// UnsupportedProviderCipherError reports a provider fix requested for a
// profile whose data-channel cipher is not one of that provider's known
// offerings. The fix is never applied blindly.
type UnsupportedProviderCipherError struct {
	Provider policy.Provider
	ID       string
}

func (e *UnsupportedProviderCipherError) Error() string {
	return fmt.Sprintf("cipher %q is not a known %s offering", e.ID, e.Provider)
}

// piaDataCiphers maps PIA's offerings to the AEAD equivalent at the same
// strength tier.
var piaDataCiphers = map[string]string{
	"AES-128-CBC": "AES-128-GCM",
	"AES-128-GCM": "AES-128-GCM",
	"AES-256-CBC": "AES-256-GCM",
	"AES-256-GCM": "AES-256-GCM",
}

// piaPinned is the data-ciphers negotiation list pinned per tier, so the
// server cannot talk the client down from the AEAD cipher.
var piaPinned = map[cipher.Level]string{
	cipher.Bits128: "AES-128-GCM:CHACHA20-POLY1305:AES-128-CBC",
	cipher.Bits256: "AES-256-GCM:CHACHA20-POLY1305:AES-256-CBC",
}

// Rewrite applies control-channel hardening for the classified tier, plus
// the provider fix selected by the policy. Directives it replaces keep their
// position; directives it introduces are appended. All other directives pass
// through untouched, so rewriting is idempotent.
func Rewrite(ds []profile.Directive, level cipher.Level, pol policy.HardeningPolicy) ([]profile.Directive, error) {
	out := append([]profile.Directive(nil), ds...)

	cs := cipher.TierSettings(level)
	minTLS := policy.Max(pol.MinTLS, policy.TLSv12)

	out = upsert(out, profile.Param("tls-cipher", cs.TLSCipher))
	out = upsert(out, profile.Param("tls-groups", cs.TLSGroups))
	out = upsert(out, profile.Param("tls-ciphersuites", cs.TLSCiphersuites))
	out = upsert(out, profile.Param("tls-version-min", string(minTLS), "or-highest"))

	replaceAuth, err := digestBelow(out, cs.Auth)
	if err != nil {
		return nil, err
	}
	if replaceAuth {
		out = upsert(out, profile.Param("auth", cs.Auth))
	}

	if pol.Provider == policy.ProviderPIA {
		out, err = rewritePIA(out)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// digestBelow reports whether the profile's auth digest is weaker than the
// tier digest. An already-stronger digest is kept; the engine never weakens
// a setting.
func digestBelow(ds []profile.Directive, tierDigest string) (bool, error) {
	i := profile.LastIndex(ds, "auth")
	if i < 0 {
		return true, nil
	}
	existing, err := cipher.LevelOf(ds[i].Arg(0))
	if err != nil {
		return false, err
	}
	target, err := cipher.LevelOf(tierDigest)
	if err != nil {
		return false, err
	}
	return existing < target, nil
}

// rewritePIA substitutes Private Internet Access's CBC-only offering with
// the AEAD equivalent at the same tier, pins the negotiation list, and
// disables cipher negotiation so the pinned list sticks.
func rewritePIA(ds []profile.Directive) ([]profile.Directive, error) {
	id := cipher.DefaultDataCipher
	if i := profile.LastIndex(ds, "cipher"); i >= 0 {
		id = ds[i].Arg(0)
	}

	gcm, ok := piaDataCiphers[strings.ToUpper(id)]
	if !ok {
		return nil, &UnsupportedProviderCipherError{Provider: policy.ProviderPIA, ID: id}
	}
	level, err := cipher.LevelOf(gcm)
	if err != nil {
		return nil, err
	}

	ds = upsert(ds, profile.Param("cipher", gcm))
	ds = upsert(ds, profile.Param("data-ciphers", piaPinned[level]))
	ds = upsert(ds, profile.Param("ncp-disable"))
	return ds, nil
}

// upsert replaces the last directive with d's name in place, or appends d
// if the profile has none. The last occurrence is the effective one, so
// that is the one replaced.
func upsert(ds []profile.Directive, d profile.Directive) []profile.Directive {
	if i := profile.LastIndex(ds, d.Name); i >= 0 {
		ds[i] = d
		return ds
	}
	return append(ds, d)
}
