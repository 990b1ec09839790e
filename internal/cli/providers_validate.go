package cli

import (
	"fmt"

	"github.com/provctl-labs/provctl/internal/manifest"
	"github.com/spf13/cobra"
)

var providersValidateCmd = &cobra.Command{
	Use:   "validate <provider.yaml>...",
	Short: "Check provider manifests against the schema",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runProvidersValidate,
}

func init() {
	providersCmd.AddCommand(providersValidateCmd)
}

func runProvidersValidate(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	failed := 0

	for _, path := range args {
		result, err := manifest.ValidateFile(path)
		if err != nil {
			failed++
			fmt.Fprintf(out, "%s: %v\n", path, err)
			continue
		}
		if result.Valid {
			fmt.Fprintf(out, "%s: ok\n", path)
			continue
		}

		failed++
		fmt.Fprintf(out, "%s: %d issue(s)\n", path, len(result.Issues))
		for _, issue := range result.Issues {
			fmt.Fprintf(out, "  %s\n", issue)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d manifest(s) failed validation", failed, len(args))
	}
	return nil
}
