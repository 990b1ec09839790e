package cli

import (
	"fmt"

	"github.com/provctl-labs/provctl/internal/config"
	"github.com/provctl-labs/provctl/internal/highlight"
	"github.com/provctl-labs/provctl/internal/userdata"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check configuration and provider manifests",
	Long: `Report the config file in use, every provider directory searched, and any
provider manifests that fail schema validation.

Valid manifests are also checked for a first listed version that is older than
another listed version, and for a state other than ready. These are reported
as warnings and do not change the exit status.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		userdata.CheckConfigFile(out, config.FilePath())

		sources, err := buildSources()
		if err != nil {
			return fmt.Errorf("building provider sources: %w", err)
		}
		failures := userdata.CheckSources(out, sources)

		mode, err := highlight.ParseColorMode(config.Color())
		if err != nil {
			fmt.Fprintf(out, "  [WARN] %v\n", err)
		} else {
			fmt.Fprintf(out, "Color: %s (enabled: %t)\n", mode, highlight.ShouldUseColor(mode, out))
		}

		if failures > 0 {
			return fmt.Errorf("%d invalid provider manifest(s)", failures)
		}
		return nil
	},
}
