package cipher

import (
	"github.com/paranoidvpn/paranoidvpn/internal/profile"
)

// Classify determines the data-channel strength tier of a parsed profile.
//
// The last cipher directive wins (OpenVPN lets later directives override
// earlier ones); a profile without one runs at the documented default,
// which is classified as if it were written out explicitly.
func Classify(ds []profile.Directive) (Level, error) {
	id := DefaultDataCipher
	if i := profile.LastIndex(ds, "cipher"); i >= 0 {
		id = ds[i].Arg(0)
	}
	return LevelOf(id)
}
