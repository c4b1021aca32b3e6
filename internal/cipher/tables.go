package cipher

import (
	"fmt"
	"strings"
)

// Level is the coarse strength tier implied by a cipher or digest.
// The ordering is total: Below128 < Bits128 < Bits192 < Bits256.
type Level int

const (
	Below128 Level = iota
	Bits128
	Bits192
	Bits256
)

func (l Level) String() string {
	switch l {
	case Below128:
		return "below128"
	case Bits128:
		return "bits128"
	case Bits192:
		return "bits192"
	case Bits256:
		return "bits256"
	}
	return fmt.Sprintf("level(%d)", int(l))
}

// Channel selects which sub-channel a replacement is computed for.
type Channel int

const (
	// Data is the channel encrypting user traffic (cipher/auth directives).
	Data Channel = iota
	// Control is the TLS channel negotiating keys (tls-cipher directives).
	Control
)

// Spec describes one known cipher, TLS suite, or digest.
type Spec struct {
	ID    string
	Level Level
	AEAD  bool
}

// UnknownCipherError reports an identifier absent from the built-in tables.
// Unknown identifiers halt processing of the profile; the engine never
// assumes a strength level.
type UnknownCipherError struct {
	ID string
}

func (e *UnknownCipherError) Error() string {
	return fmt.Sprintf("unknown cipher or digest %q", e.ID)
}

// DefaultDataCipher is OpenVPN's documented default when a profile has no
// cipher directive.
const DefaultDataCipher = "BF-CBC"

// table maps every known data-channel cipher, control-channel TLS suite,
// and digest to its strength tier. Built once, never mutated.
var table = map[string]Spec{}

func init() {
	for _, s := range []Spec{
		// Data-channel ciphers (openvpn --show-ciphers).
		{"AES-128-CBC", Bits128, false},
		{"AES-128-GCM", Bits128, true},
		{"AES-192-CBC", Bits192, false},
		{"AES-192-GCM", Bits192, true},
		{"AES-256-CBC", Bits256, false},
		{"AES-256-GCM", Bits256, true},
		{"CHACHA20-POLY1305", Bits256, true},
		{"CAMELLIA-128-CBC", Bits128, false},
		{"CAMELLIA-192-CBC", Bits192, false},
		{"CAMELLIA-256-CBC", Bits256, false},
		{"SEED-CBC", Bits128, false},
		{"SM4-CBC", Bits128, false},
		{"BF-CBC", Below128, false},
		{"CAST5-CBC", Below128, false},
		{"DES-CBC", Below128, false},
		{"DES-EDE-CBC", Below128, false},
		{"DES-EDE3-CBC", Below128, false},
		{"RC2-CBC", Below128, false},
		{"RC2-40-CBC", Below128, false},
		{"RC2-64-CBC", Below128, false},
		{"NONE", Below128, false},

		// Control-channel suites (TLS 1.2 names as OpenVPN spells them).
		{"TLS-ECDHE-ECDSA-WITH-AES-128-GCM-SHA256", Bits128, true},
		{"TLS-ECDHE-ECDSA-WITH-AES-128-CBC-SHA256", Bits128, false},
		{"TLS-ECDHE-ECDSA-WITH-AES-256-GCM-SHA384", Bits256, true},
		{"TLS-ECDHE-ECDSA-WITH-AES-256-CBC-SHA384", Bits256, false},
		{"TLS-ECDHE-ECDSA-WITH-CHACHA20-POLY1305-SHA256", Bits256, true},

		// Control-channel suites (TLS 1.3).
		{"TLS_AES_128_GCM_SHA256", Bits128, true},
		{"TLS_AES_256_GCM_SHA384", Bits256, true},
		{"TLS_CHACHA20_POLY1305_SHA256", Bits256, true},

		// Digests (openvpn --show-digests).
		{"MD5", Below128, false},
		{"SHA1", Below128, false},
		{"SHA224", Bits128, false},
		{"SHA256", Bits128, false},
		{"SHA384", Bits192, false},
		{"SHA512", Bits256, false},
		{"WHIRLPOOL", Bits256, false},
	} {
		table[s.ID] = s
	}
}

// LevelOf resolves an identifier to its strength tier. Lookup is
// case-insensitive, matching OpenVPN's handling of cipher names.
func LevelOf(id string) (Level, error) {
	s, ok := table[strings.ToUpper(id)]
	if !ok {
		return Below128, &UnknownCipherError{ID: id}
	}
	return s.Level, nil
}

// IsAEAD reports whether a known identifier names an AEAD construction.
func IsAEAD(id string) bool {
	return table[strings.ToUpper(id)].AEAD
}

// Promote rounds a tier to one that has replacement candidates: no 192-bit
// control-channel cipher exists, so bits192 becomes bits256, and the engine
// never hardens at less than the 128-bit floor.
func Promote(l Level) Level {
	switch l {
	case Below128:
		return Bits128
	case Bits192:
		return Bits256
	}
	return l
}

// replacements ranks the candidates per promoted tier and channel. AEAD
// always outranks non-AEAD; at bits256 AES-GCM leads ChaCha20-Poly1305, at
// bits128 ChaCha20-Poly1305 leads AES-128-GCM with AES-128-CBC as the only
// non-AEAD fallback.
var replacements = map[Channel]map[Level][]string{
	Data: {
		Bits128: {"AES-128-GCM", "AES-128-CBC"},
		Bits256: {"AES-256-GCM", "CHACHA20-POLY1305", "AES-256-CBC"},
	},
	Control: {
		Bits128: {
			"TLS-ECDHE-ECDSA-WITH-CHACHA20-POLY1305-SHA256",
			"TLS-ECDHE-ECDSA-WITH-AES-128-GCM-SHA256",
			"TLS-ECDHE-ECDSA-WITH-AES-128-CBC-SHA256",
		},
		Bits256: {
			"TLS-ECDHE-ECDSA-WITH-AES-256-GCM-SHA384",
			"TLS-ECDHE-ECDSA-WITH-CHACHA20-POLY1305-SHA256",
			"TLS-ECDHE-ECDSA-WITH-AES-256-CBC-SHA384",
		},
	},
}

// Replacement returns the preferred directive value for the given channel at
// the given tier, after promotion.
func Replacement(l Level, ch Channel) Spec {
	ranked := replacements[ch][Promote(l)]
	return table[ranked[0]]
}

// ControlSettings is the full control-channel hardening set for one tier.
type ControlSettings struct {
	TLSCipher       string // tls-cipher: TLS 1.2 suite list, ranked
	TLSCiphersuites string // tls-ciphersuites: TLS 1.3 suite list, ranked
	TLSGroups       string // tls-groups: key-exchange groups, strongest first
	Auth            string // auth: HMAC digest for the tier
}

var controlSettings = map[Level]ControlSettings{
	Bits128: {
		TLSCipher:       "TLS-ECDHE-ECDSA-WITH-CHACHA20-POLY1305-SHA256:TLS-ECDHE-ECDSA-WITH-AES-128-GCM-SHA256:TLS-ECDHE-ECDSA-WITH-AES-128-CBC-SHA256",
		TLSCiphersuites: "TLS_CHACHA20_POLY1305_SHA256:TLS_AES_128_GCM_SHA256",
		TLSGroups:       "secp256r1:X25519",
		Auth:            "SHA256",
	},
	Bits256: {
		TLSCipher:       "TLS-ECDHE-ECDSA-WITH-AES-256-GCM-SHA384:TLS-ECDHE-ECDSA-WITH-CHACHA20-POLY1305-SHA256:TLS-ECDHE-ECDSA-WITH-AES-256-CBC-SHA384",
		TLSCiphersuites: "TLS_AES_256_GCM_SHA384:TLS_CHACHA20_POLY1305_SHA256",
		TLSGroups:       "secp521r1:X448:secp384r1:secp256r1:X25519",
		Auth:            "SHA512",
	},
}

// TierSettings returns the control-channel hardening set for the given
// tier, after promotion.
func TierSettings(l Level) ControlSettings {
	return controlSettings[Promote(l)]
}
