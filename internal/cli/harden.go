package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/paranoidvpn/paranoidvpn/internal/approval"
	"github.com/paranoidvpn/paranoidvpn/internal/cipher"
	"github.com/paranoidvpn/paranoidvpn/internal/config"
	"github.com/paranoidvpn/paranoidvpn/internal/harden"
	"github.com/paranoidvpn/paranoidvpn/internal/logger"
	"github.com/paranoidvpn/paranoidvpn/internal/policy"
	"github.com/paranoidvpn/paranoidvpn/internal/source"

	"github.com/spf13/cobra"
)

func hardenCommand(cmd *cobra.Command, args []string) error {
	pol, cfg, err := loadPolicy()
	if err != nil {
		return err
	}

	report, err := logger.New(cfg.LogPath)
	if err != nil {
		return fmt.Errorf("failed to open report log: %w", err)
	}
	defer report.Close()

	resolved, err := source.Resolve(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	defer resolved.Close()

	dest := args[1]
	if err := checkDestOutsideSource(resolved.Root, dest); err != nil {
		return err
	}

	profiles, passthrough, err := source.Profiles(resolved.Root)
	if err != nil {
		return err
	}
	if len(profiles) == 0 {
		return fmt.Errorf("no profiles found in %s", args[0])
	}

	if _, err := os.Stat(dest); err == nil && !assumeYes {
		res := approval.Ask(approval.Prompt{Dest: dest, Profiles: len(profiles)})
		if !res.Approved {
			return fmt.Errorf("destination %s left untouched (%s)", dest, res.UserAction)
		}
	}

	rootInfo, err := os.Stat(resolved.Root)
	if err != nil {
		return err
	}
	destIsFile := !rootInfo.IsDir()

	failed := 0
	for _, p := range profiles {
		result, err := harden.Process(p.Text, *pol)
		if err != nil {
			report.Log(logger.Event{
				Profile:  p.Name,
				Provider: string(pol.Provider),
				Error:    err.Error(),
			})
			fmt.Fprintf(os.Stderr, "error: %s: %v\n", p.Name, err)
			failed++
			continue
		}

		report.Log(logger.Event{
			Profile:     p.Name,
			Provider:    string(pol.Provider),
			InputLevel:  result.Input.String(),
			OutputLevel: result.Output.String(),
		})
		if result.Output == cipher.Below128 {
			fmt.Fprintf(os.Stderr, "warning: %s still runs a below-128-bit data cipher\n", p.Name)
		}

		outPath := dest
		if !destIsFile {
			outPath = filepath.Join(dest, p.Name)
		}
		if err := writeFile(outPath, result.Text); err != nil {
			return err
		}
	}

	for _, rel := range passthrough {
		if err := copyFile(filepath.Join(resolved.Root, rel), filepath.Join(dest, rel)); err != nil {
			return err
		}
	}

	fmt.Printf("Hardened %d of %d profile(s)\n", len(profiles)-failed, len(profiles))
	if failed > 0 {
		return fmt.Errorf("%d profile(s) failed; see %s", failed, cfg.LogPath)
	}
	return nil
}

func loadPolicy() (*policy.HardeningPolicy, *config.Config, error) {
	cfg, err := config.Load(policyPath, logPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	pol, err := policy.Load(cfg.PolicyPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load policy: %w", err)
	}

	if minTLS != "" {
		v, err := policy.ParseTLSVersion(minTLS)
		if err != nil {
			return nil, nil, err
		}
		pol.MinTLS = v
	}
	if piaFix {
		pol.Provider = policy.ProviderPIA
	}
	return pol, cfg, nil
}

// A destination inside a source directory would make the walk reprocess its
// own output.
func checkDestOutsideSource(root, dest string) error {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return err
	}
	absDest, err := filepath.Abs(dest)
	if err != nil {
		return err
	}
	rel, err := filepath.Rel(absRoot, absDest)
	if err != nil {
		return nil
	}
	if rel == "." || !strings.HasPrefix(rel, "..") {
		return fmt.Errorf("dest path cannot be inside src path")
	}
	return nil
}

func writeFile(path, text string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(text), 0644)
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return err
	}
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
