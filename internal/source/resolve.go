package source

import (
	"archive/zip"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var schemeRE = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.\-]*://`)

// Resolved is a source argument reduced to a local file or directory.
// Close removes any temporary files the resolution created.
type Resolved struct {
	Root     string
	cleanups []func() error
}

func (r *Resolved) Close() error {
	var first error
	for i := len(r.cleanups) - 1; i >= 0; i-- {
		if err := r.cleanups[i](); err != nil && first == nil {
			first = err
		}
	}
	r.cleanups = nil
	return first
}

// Resolve turns a source argument into a local root to read profiles from.
// HTTP(S) URLs are downloaded to a temp file; zip files (downloaded or
// local) are extracted to a temp dir; plain files and directories are used
// as-is.
func Resolve(ctx context.Context, src string) (*Resolved, error) {
	r := &Resolved{}
	path := src

	if schemeRE.MatchString(src) {
		if !strings.HasPrefix(src, "http://") && !strings.HasPrefix(src, "https://") {
			return nil, fmt.Errorf("only HTTP(S) supported as remote scheme: %s", src)
		}
		if strings.HasPrefix(src, "http://") {
			fmt.Fprintln(os.Stderr, "warning: downloading OpenVPN profiles over an insecure connection")
		}

		tmp, err := download(ctx, src)
		if err != nil {
			return nil, err
		}
		r.cleanups = append(r.cleanups, func() error { return os.Remove(tmp) })
		path = tmp
	}

	info, err := os.Stat(path)
	if err != nil {
		r.Close()
		return nil, fmt.Errorf("source %s: %w", src, err)
	}

	if !info.IsDir() {
		dir, err := extractZip(path)
		switch {
		case err == nil:
			r.cleanups = append(r.cleanups, func() error { return os.RemoveAll(dir) })
			path = dir
		case errors.Is(err, zip.ErrFormat):
			// Not an archive; treat as a single profile file.
		default:
			r.Close()
			return nil, err
		}
	}

	r.Root = path
	return r, nil
}

func download(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("downloading %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("downloading %s: HTTP %d", url, resp.StatusCode)
	}

	out, err := os.CreateTemp("", "paranoidvpn-*")
	if err != nil {
		return "", err
	}

	if _, err := io.Copy(out, resp.Body); err != nil {
		out.Close()
		os.Remove(out.Name())
		return "", fmt.Errorf("downloading %s: %w", url, err)
	}
	if err := out.Close(); err != nil {
		os.Remove(out.Name())
		return "", err
	}
	return out.Name(), nil
}

func extractZip(path string) (string, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return "", err
	}
	defer zr.Close()

	dir, err := os.MkdirTemp("", "paranoidvpn-*")
	if err != nil {
		return "", err
	}

	for _, f := range zr.File {
		if err := extractFile(dir, f); err != nil {
			os.RemoveAll(dir)
			return "", fmt.Errorf("extracting %s: %w", f.Name, err)
		}
	}
	return dir, nil
}

func extractFile(dir string, f *zip.File) error {
	name := filepath.Clean(filepath.FromSlash(f.Name))
	if filepath.IsAbs(name) || name == ".." || strings.HasPrefix(name, ".."+string(os.PathSeparator)) {
		return fmt.Errorf("archive entry escapes extraction dir: %s", f.Name)
	}
	target := filepath.Join(dir, name)

	if f.FileInfo().IsDir() {
		return os.MkdirAll(target, 0700)
	}
	if err := os.MkdirAll(filepath.Dir(target), 0700); err != nil {
		return err
	}

	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer rc.Close()

	out, err := os.OpenFile(target, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0600)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, rc); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
