package cli

import (
	"fmt"

	"github.com/provctl-labs/provctl/internal/provider"
	"github.com/spf13/cobra"
)

var listOutput string

var providersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List installed providers",
	Long:  `List every installed provider with its description and version.`,
	Args:  cobra.NoArgs,
	RunE:  runProvidersList,
}

func init() {
	providersListCmd.Flags().StringVarP(&listOutput, "output", "o", "table", "Output format (table, json)")
	providersCmd.AddCommand(providersListCmd)
}

func runProvidersList(cmd *cobra.Command, args []string) error {
	reg, err := newRegistry()
	if err != nil {
		return fmt.Errorf("building provider sources: %w", err)
	}

	p := provider.NewPresenter(reg, cmd.OutOrStdout(), nil)
	switch listOutput {
	case "table", "":
		return p.ListAll(cmd.Context())
	case "json":
		return p.ListJSON(cmd.Context())
	default:
		return fmt.Errorf("unknown output format %q (want table or json)", listOutput)
	}
}
