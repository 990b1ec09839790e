package userdata

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/provctl-labs/provctl/internal/branding"
)

// Directory name constants for the ~/.provctl layout.
const (
	ProvidersDir = "providers"
)

// GetHomeRoot returns the provctl home directory.
// It checks the PROVCTL_HOME environment variable first,
// then falls back to ~/.provctl.
func GetHomeRoot() (string, error) {
	if v := os.Getenv(branding.EnvVar("HOME")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, branding.HomeDir()), nil
}

// GetProvidersRoot returns the default directory holding provider manifests.
// It checks the PROVCTL_PROVIDERS environment variable first,
// then falls back to <home root>/providers.
func GetProvidersRoot() (string, error) {
	if v := os.Getenv(branding.EnvVar("PROVIDERS")); v != "" {
		return v, nil
	}
	root, err := GetHomeRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, ProvidersDir), nil
}
