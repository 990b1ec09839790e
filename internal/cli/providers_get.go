package cli

import (
	"fmt"

	"github.com/provctl-labs/provctl/internal/config"
	"github.com/provctl-labs/provctl/internal/highlight"
	"github.com/provctl-labs/provctl/internal/provider"
	"github.com/spf13/cobra"
)

var (
	getFull  bool
	getColor string
)

var providersGetCmd = &cobra.Command{
	Use:   "get <name>",
	Short: "Show information about one provider",
	Long: `Print the name and version of an installed provider.

With --full, the provider's complete metadata is printed as YAML. The YAML is
syntax-highlighted when writing to a terminal (see --color).`,
	Args: cobra.ExactArgs(1),
	RunE: runProvidersGet,
}

func init() {
	providersGetCmd.Flags().BoolVar(&getFull, "full", false, "Print the full provider metadata")
	providersGetCmd.Flags().StringVar(&getColor, "color", "", "Colorize output: "+highlight.ColorModeList()+" (default from config, else auto)")
	providersCmd.AddCommand(providersGetCmd)
}

func runProvidersGet(cmd *cobra.Command, args []string) error {
	mode := getColor
	if mode == "" {
		mode = config.Color()
	}
	colorMode, err := highlight.ParseColorMode(mode)
	if err != nil {
		return err
	}

	reg, err := newRegistry()
	if err != nil {
		return fmt.Errorf("building provider sources: %w", err)
	}

	out := cmd.OutOrStdout()
	renderer := highlight.Select(highlight.ShouldUseColor(colorMode, out), config.Style())
	return provider.NewPresenter(reg, out, renderer).Describe(cmd.Context(), args[0], getFull)
}
