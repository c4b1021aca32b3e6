package policy

import (
	"os"
	"path/filepath"
	"testing"
)

func writePolicy(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "policy.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	pol, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if pol.MinTLS != TLSv13 {
		t.Errorf("MinTLS = %s, want 1.3", pol.MinTLS)
	}
	if pol.Provider != ProviderNone {
		t.Errorf("Provider = %s, want none", pol.Provider)
	}
}

func TestLoad_ValidFile(t *testing.T) {
	path := writePolicy(t, "version: \"0.1\"\nmin_tls: \"1.2\"\nprovider: pia\n")
	pol, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if pol.MinTLS != TLSv12 {
		t.Errorf("MinTLS = %s, want 1.2", pol.MinTLS)
	}
	if pol.Provider != ProviderPIA {
		t.Errorf("Provider = %s, want pia", pol.Provider)
	}
}

func TestLoad_PartialFileFillsDefaults(t *testing.T) {
	path := writePolicy(t, "provider: pia\n")
	pol, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if pol.MinTLS != TLSv13 {
		t.Errorf("MinTLS = %s, want default 1.3", pol.MinTLS)
	}
}

func TestLoad_Invalid(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"bad tls version", "min_tls: \"2.0\"\n"},
		{"bad provider", "provider: nordberg\n"},
		{"bad yaml", "min_tls: [\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Load(writePolicy(t, tc.content)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestParseTLSVersion(t *testing.T) {
	for _, s := range []string{"1.0", "1.1", "1.2", "1.3"} {
		v, err := ParseTLSVersion(s)
		if err != nil {
			t.Errorf("ParseTLSVersion(%q): %v", s, err)
		}
		if string(v) != s {
			t.Errorf("ParseTLSVersion(%q) = %q", s, v)
		}
	}
	if _, err := ParseTLSVersion("1.4"); err == nil {
		t.Error("expected error for 1.4")
	}
}

func TestTLSVersion_Ordering(t *testing.T) {
	if !TLSv13.AtLeast(TLSv12) || TLSv11.AtLeast(TLSv12) {
		t.Error("AtLeast ordering wrong")
	}
	if Max(TLSv10, TLSv12) != TLSv12 {
		t.Error("Max(1.0, 1.2) != 1.2")
	}
	if Max(TLSv13, TLSv12) != TLSv13 {
		t.Error("Max(1.3, 1.2) != 1.3")
	}
}
