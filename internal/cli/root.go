package cli

import (
	"github.com/spf13/cobra"
)

var (
	policyPath string
	logPath    string
	minTLS     string
	piaFix     bool
	assumeYes  bool
)

var rootCmd = &cobra.Command{
	Use:   "paranoidvpn [flags] <source> <dest>",
	Short: "paranoidvpn - harden OpenVPN client profiles",
	Long: `paranoidvpn rewrites the cryptographic directives of OpenVPN client
profiles to the strongest mutually-supported algorithms and applies
provider-specific compatibility fixes.

The source may be a profile file, a directory, a zip archive, or an
HTTP(S) URL pointing at either; hardened profiles are written under dest.

Example:
  paranoidvpn ./provider-profiles ./hardened
  paranoidvpn --pia https://example.com/openvpn.zip ./hardened`,
	Args: cobra.ExactArgs(2),
	RunE: hardenCommand,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&policyPath, "policy", "", "Path to hardening policy YAML file (default: ~/.paranoidvpn/policy.yaml)")
	rootCmd.PersistentFlags().StringVar(&logPath, "log", "", "Path to report log file (default: ~/.paranoidvpn/report.jsonl)")
	rootCmd.PersistentFlags().StringVar(&minTLS, "min-tls", "", "Minimum TLS version to require: 1.0, 1.1, 1.2 or 1.3 (default from policy)")
	rootCmd.PersistentFlags().BoolVar(&piaFix, "pia", false, "Apply Private Internet Access fixes/hardening")
	rootCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Overwrite an existing destination without asking")
}

func Execute() error {
	return rootCmd.Execute()
}
