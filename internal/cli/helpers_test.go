package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

// setupEnv points HOME and the provider directory at temp dirs and clears
// the environment overrides the CLI reads.
func setupEnv(t *testing.T) (providersDir string) {
	t.Helper()
	home := t.TempDir()
	providersDir = filepath.Join(home, "providers")

	t.Setenv("HOME", home)
	t.Setenv("PROVCTL_HOME", "")
	t.Setenv("PROVCTL_PROVIDERS", providersDir)
	t.Setenv("PROVCTL_PROVIDERS_PATHS", "")
	t.Setenv("PROVCTL_COLOR", "")
	t.Setenv("PROVCTL_LOG_LEVEL", "")
	t.Setenv("NO_COLOR", "")
	return providersDir
}

func writeProvider(t *testing.T, root, dir, content string) {
	t.Helper()
	full := filepath.Join(root, dir)
	if err := os.MkdirAll(full, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(full, "provider.yaml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

// execute runs the root command with args and captures stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	getFull = false
	getColor = ""
	listOutput = "table"
	rootLogLevel = ""
	rootProviderPaths = nil
	versionShort = false
	versionJSON = false
	viper.Reset()
	t.Cleanup(viper.Reset)

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}
