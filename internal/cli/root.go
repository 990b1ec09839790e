package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/provctl-labs/provctl/internal/branding"
	"github.com/provctl-labs/provctl/internal/config"
	"github.com/provctl-labs/provctl/internal/logging"
	"github.com/provctl-labs/provctl/internal/provider"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	rootLogLevel      string
	rootProviderPaths []string

	logger = logging.Discard()
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` prints metadata about installed provider packages.

Providers are described by provider.yaml manifests found under the configured
provider directories (see "` + branding.CLIName() + ` config").`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config.Load()

		level := rootLogLevel
		if level == "" {
			level = config.LogLevel()
		}
		l, err := logging.New(cmd.ErrOrStderr(), level)
		if err != nil {
			return err
		}
		logger = l
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootLogLevel, "log-level", "", "Log level (debug, info, warning, error)")
	rootCmd.PersistentFlags().StringSliceVar(&rootProviderPaths, "providers-path", nil, "Provider directory to search (repeatable; overrides config)")
}

// Execute runs the root command with build info injected via ldflags.
// Errors are printed to stderr before being returned.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.Execute()
	if err != nil {
		printError(os.Stderr, err)
	}
	return err
}

// printError writes err for the user. A missing provider is reported verbatim;
// anything else gets an "Error:" prefix.
func printError(w io.Writer, err error) {
	var nf *provider.NotFoundError
	if errors.As(err, &nf) {
		fmt.Fprintln(w, nf.Error())
		return
	}
	logger.Debugf("command failed: %+v", err)
	fmt.Fprintf(w, "Error: %v\n", err)
}
