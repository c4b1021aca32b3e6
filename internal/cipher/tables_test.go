package cipher

import (
	"errors"
	"strings"
	"testing"
)

func TestLevelOf(t *testing.T) {
	cases := []struct {
		id   string
		want Level
	}{
		{"AES-128-CBC", Bits128},
		{"aes-128-gcm", Bits128},
		{"AES-192-GCM", Bits192},
		{"AES-256-CBC", Bits256},
		{"CHACHA20-POLY1305", Bits256},
		{"BF-CBC", Below128},
		{"DES-EDE3-CBC", Below128},
		{"SEED-CBC", Bits128},
		{"SHA1", Below128},
		{"sha256", Bits128},
		{"SHA384", Bits192},
		{"SHA512", Bits256},
		{"TLS-ECDHE-ECDSA-WITH-AES-256-GCM-SHA384", Bits256},
	}
	for _, tc := range cases {
		got, err := LevelOf(tc.id)
		if err != nil {
			t.Errorf("LevelOf(%q): %v", tc.id, err)
			continue
		}
		if got != tc.want {
			t.Errorf("LevelOf(%q) = %s, want %s", tc.id, got, tc.want)
		}
	}
}

func TestLevelOf_Unknown(t *testing.T) {
	_, err := LevelOf("FOO-999")
	if err == nil {
		t.Fatal("expected error for unknown identifier")
	}
	var uerr *UnknownCipherError
	if !errors.As(err, &uerr) {
		t.Fatalf("expected UnknownCipherError, got %T", err)
	}
	if uerr.ID != "FOO-999" {
		t.Errorf("ID = %q, want FOO-999", uerr.ID)
	}
}

func TestLevel_Ordering(t *testing.T) {
	if !(Below128 < Bits128 && Bits128 < Bits192 && Bits192 < Bits256) {
		t.Error("levels are not totally ordered")
	}
}

func TestPromote(t *testing.T) {
	cases := []struct {
		in, want Level
	}{
		{Below128, Bits128},
		{Bits128, Bits128},
		{Bits192, Bits256},
		{Bits256, Bits256},
	}
	for _, tc := range cases {
		if got := Promote(tc.in); got != tc.want {
			t.Errorf("Promote(%s) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestReplacement_TieBreaks(t *testing.T) {
	// At bits256, AES-GCM leads ChaCha20-Poly1305.
	if got := Replacement(Bits256, Data); got.ID != "AES-256-GCM" || !got.AEAD {
		t.Errorf("Replacement(bits256, data) = %+v", got)
	}
	if got := Replacement(Bits256, Control); got.ID != "TLS-ECDHE-ECDSA-WITH-AES-256-GCM-SHA384" {
		t.Errorf("Replacement(bits256, control) = %+v", got)
	}

	// At bits128, ChaCha20-Poly1305 leads on the control channel.
	if got := Replacement(Bits128, Control); got.ID != "TLS-ECDHE-ECDSA-WITH-CHACHA20-POLY1305-SHA256" {
		t.Errorf("Replacement(bits128, control) = %+v", got)
	}

	// bits192 promotes to the bits256 candidates.
	if got, want := Replacement(Bits192, Control), Replacement(Bits256, Control); got != want {
		t.Errorf("Replacement(bits192) = %+v, want %+v", got, want)
	}

	// below128 floors at bits128, never weaker.
	if got, want := Replacement(Below128, Data), Replacement(Bits128, Data); got != want {
		t.Errorf("Replacement(below128) = %+v, want %+v", got, want)
	}

	// AEAD always outranks non-AEAD.
	for _, ch := range []Channel{Data, Control} {
		for _, l := range []Level{Bits128, Bits256} {
			if got := Replacement(l, ch); !got.AEAD {
				t.Errorf("Replacement(%s, %v) is not AEAD: %+v", l, ch, got)
			}
		}
	}
}

func TestTierSettings(t *testing.T) {
	cs := TierSettings(Bits256)
	if !strings.HasPrefix(cs.TLSCipher, "TLS-ECDHE-ECDSA-WITH-AES-256-GCM-SHA384:") {
		t.Errorf("bits256 tls-cipher does not lead with AES-256-GCM: %s", cs.TLSCipher)
	}
	if cs.Auth != "SHA512" {
		t.Errorf("bits256 auth = %s, want SHA512", cs.Auth)
	}

	cs = TierSettings(Bits128)
	if !strings.HasPrefix(cs.TLSCipher, "TLS-ECDHE-ECDSA-WITH-CHACHA20-POLY1305-SHA256:") {
		t.Errorf("bits128 tls-cipher does not lead with ChaCha20-Poly1305: %s", cs.TLSCipher)
	}
	if !strings.HasPrefix(cs.TLSCiphersuites, "TLS_CHACHA20_POLY1305_SHA256:") {
		t.Errorf("bits128 tls-ciphersuites does not lead with ChaCha20-Poly1305: %s", cs.TLSCiphersuites)
	}
	if cs.Auth != "SHA256" {
		t.Errorf("bits128 auth = %s, want SHA256", cs.Auth)
	}

	// 192 is never a terminal tier.
	if TierSettings(Bits192) != TierSettings(Bits256) {
		t.Error("bits192 settings should promote to bits256")
	}
}
