package cli

import (
	"fmt"

	"github.com/paranoidvpn/paranoidvpn/internal/cipher"
	"github.com/paranoidvpn/paranoidvpn/internal/profile"
	"github.com/paranoidvpn/paranoidvpn/internal/source"

	"github.com/spf13/cobra"
)

var scanCmd = &cobra.Command{
	Use:   "scan <source>",
	Short: "Classify profiles without writing anything",
	Long: `Report the data-channel cipher strength of each profile in the source
without producing output files. Useful to see what a provider ships before
hardening.

  paranoidvpn scan ./provider-profiles`,
	Args: cobra.ExactArgs(1),
	RunE: scanCommand,
}

func init() {
	rootCmd.AddCommand(scanCmd)
}

func scanCommand(cmd *cobra.Command, args []string) error {
	resolved, err := source.Resolve(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	defer resolved.Close()

	profiles, _, err := source.Profiles(resolved.Root)
	if err != nil {
		return err
	}
	if len(profiles) == 0 {
		return fmt.Errorf("no profiles found in %s", args[0])
	}

	weak := 0
	failed := 0
	for _, p := range profiles {
		ds, err := profile.Parse(p.Text)
		if err != nil {
			fmt.Printf("✗ %-40s %v\n", p.Name, err)
			failed++
			continue
		}
		level, err := cipher.Classify(ds)
		if err != nil {
			fmt.Printf("✗ %-40s %v\n", p.Name, err)
			failed++
			continue
		}
		mark := "✓"
		if level == cipher.Below128 {
			mark = "!"
			weak++
		}
		fmt.Printf("%s %-40s %s\n", mark, p.Name, level)
	}

	fmt.Println()
	fmt.Printf("Scanned %d profile(s): %d weak, %d unreadable\n", len(profiles), weak, failed)
	if failed > 0 {
		return fmt.Errorf("%d profile(s) could not be classified", failed)
	}
	return nil
}
