package source

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Profile is one named OpenVPN profile ready for the hardening pipeline.
// Name is the path relative to the source root, so directory structure
// survives into the destination.
type Profile struct {
	Name string
	Text string
}

// Profiles collects the .ovpn profiles under root, plus the relative paths
// of every other file so the caller can copy them through verbatim. A root
// that is itself a file is treated as a single profile regardless of
// extension.
func Profiles(root string) ([]Profile, []string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, nil, err
	}

	if !info.IsDir() {
		data, err := os.ReadFile(root)
		if err != nil {
			return nil, nil, err
		}
		return []Profile{{Name: filepath.Base(root), Text: string(data)}}, nil, nil
	}

	var profiles []Profile
	var passthrough []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		if !strings.EqualFold(filepath.Ext(path), ".ovpn") {
			passthrough = append(passthrough, rel)
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		profiles = append(profiles, Profile{Name: rel, Text: string(data)})
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return profiles, passthrough, nil
}
