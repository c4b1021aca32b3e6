package harden

import (
	"github.com/paranoidvpn/paranoidvpn/internal/cipher"
	"github.com/paranoidvpn/paranoidvpn/internal/policy"
	"github.com/paranoidvpn/paranoidvpn/internal/profile"
)

// Result describes one hardened profile.
type Result struct {
	Text   string       // rewritten profile text
	Input  cipher.Level // tier classified from the original
	Output cipher.Level // tier classified from the rewritten output
}

// Process runs one profile through the full pipeline:
// parse -> classify -> rewrite -> serialize. It holds no state across
// calls, so callers may process profiles concurrently.
func Process(text string, pol policy.HardeningPolicy) (*Result, error) {
	ds, err := profile.Parse(text)
	if err != nil {
		return nil, err
	}

	level, err := cipher.Classify(ds)
	if err != nil {
		return nil, err
	}

	rewritten, err := Rewrite(ds, level, pol)
	if err != nil {
		return nil, err
	}

	outLevel, err := cipher.Classify(rewritten)
	if err != nil {
		return nil, err
	}

	return &Result{
		Text:   profile.Serialize(rewritten),
		Input:  level,
		Output: outLevel,
	}, nil
}
