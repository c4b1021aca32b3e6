package policy

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a hardening policy from a YAML file. A missing file yields the
// defaults; a present but invalid file is an error.
func Load(path string) (*HardeningPolicy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	var pol HardeningPolicy
	if err := yaml.Unmarshal(data, &pol); err != nil {
		return nil, err
	}

	if pol.MinTLS == "" {
		pol.MinTLS = TLSv13
	}
	if _, err := ParseTLSVersion(string(pol.MinTLS)); err != nil {
		return nil, fmt.Errorf("policy %s: %w", path, err)
	}
	if pol.Provider == "" {
		pol.Provider = ProviderNone
	}
	switch pol.Provider {
	case ProviderNone, ProviderPIA:
	default:
		return nil, fmt.Errorf("policy %s: unknown provider %q", path, pol.Provider)
	}

	return &pol, nil
}

// Default returns the policy used when no file exists: require TLS 1.3,
// no provider fix.
func Default() *HardeningPolicy {
	return &HardeningPolicy{
		Version:  "0.1",
		MinTLS:   TLSv13,
		Provider: ProviderNone,
	}
}
