package cli

import (
	"github.com/provctl-labs/provctl/internal/config"
	"github.com/provctl-labs/provctl/internal/registry"
	"github.com/provctl-labs/provctl/internal/userdata"
	"github.com/spf13/cobra"
)

var providersCmd = &cobra.Command{
	Use:     "providers",
	Aliases: []string{"provider"},
	Short:   "Inspect installed providers",
	Long: `Inspect installed provider packages.

Providers are read from provider.yaml manifests. Search order:
  1. --providers-path flags, if given (nothing else is searched)
  2. providers.paths from the config file or PROVCTL_PROVIDERS_PATHS
  3. the default directory ($PROVCTL_PROVIDERS or ~/.provctl/providers)
When the same package appears twice, the first one found wins.`,
}

func init() {
	rootCmd.AddCommand(providersCmd)
}

// buildSources resolves the provider directories to search, in priority order.
func buildSources() ([]registry.Source, error) {
	if len(rootProviderPaths) > 0 {
		sources := make([]registry.Source, 0, len(rootProviderPaths))
		for _, p := range rootProviderPaths {
			sources = append(sources, registry.Source{Name: "flag", BasePath: p})
		}
		return sources, nil
	}

	var sources []registry.Source
	for _, p := range config.ProviderPaths() {
		sources = append(sources, registry.Source{Name: "config", BasePath: p})
	}

	root, err := userdata.GetProvidersRoot()
	if err != nil {
		return nil, err
	}
	sources = append(sources, registry.Source{Name: "user", BasePath: root})
	return sources, nil
}

// newRegistry builds the manifest registry for the current invocation.
func newRegistry() (*registry.ManifestRegistry, error) {
	sources, err := buildSources()
	if err != nil {
		return nil, err
	}
	for _, src := range sources {
		logger.WithField("source", src.Name).Debugf("searching %s", src.BasePath)
	}
	return registry.New(sources, registry.WithLogger(logger)), nil
}
