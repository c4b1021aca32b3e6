package policy

import "fmt"

// TLSVersion is a minimum TLS version the control channel must negotiate.
type TLSVersion string

const (
	TLSv10 TLSVersion = "1.0"
	TLSv11 TLSVersion = "1.1"
	TLSv12 TLSVersion = "1.2"
	TLSv13 TLSVersion = "1.3"
)

var tlsRank = map[TLSVersion]int{
	TLSv10: 0,
	TLSv11: 1,
	TLSv12: 2,
	TLSv13: 3,
}

// ParseTLSVersion validates a user-supplied version string.
func ParseTLSVersion(s string) (TLSVersion, error) {
	v := TLSVersion(s)
	if _, ok := tlsRank[v]; !ok {
		return "", fmt.Errorf("unsupported TLS version %q (want 1.0, 1.1, 1.2 or 1.3)", s)
	}
	return v, nil
}

// AtLeast reports whether v is the same as or newer than o.
func (v TLSVersion) AtLeast(o TLSVersion) bool {
	return tlsRank[v] >= tlsRank[o]
}

// Max returns the newer of the two versions.
func Max(a, b TLSVersion) TLSVersion {
	if a.AtLeast(b) {
		return a
	}
	return b
}

// Provider selects which provider-specific fix, if any, to apply.
type Provider string

const (
	ProviderNone Provider = "none"
	ProviderPIA  Provider = "pia"
)

// HardeningPolicy is the per-invocation configuration: the minimum TLS
// version to require and the provider fix to apply. It never varies
// per-profile.
type HardeningPolicy struct {
	Version  string     `yaml:"version"`
	MinTLS   TLSVersion `yaml:"min_tls"`
	Provider Provider   `yaml:"provider"`
}
