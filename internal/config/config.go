package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/provctl-labs/provctl/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Recognized configuration keys.
const (
	KeyProviderPaths = "providers.paths"
	KeyColor         = "color"
	KeyStyle         = "style"
	KeyLogLevel      = "log_level"
)

// Defaults applied when neither the config file nor the environment set a key.
const (
	DefaultColor    = "auto"
	DefaultStyle    = "monokai"
	DefaultLogLevel = "warning"
)

// Dir returns the path to the config directory (~/.provctl/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.provctl/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault(KeyColor, DefaultColor)
	viper.SetDefault(KeyStyle, DefaultStyle)
	viper.SetDefault(KeyLogLevel, DefaultLogLevel)

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
// List values are joined with the OS path list separator.
func Get(key string) string {
	switch v := viper.Get(key).(type) {
	case []interface{}:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, fmt.Sprint(item))
		}
		return strings.Join(parts, string(os.PathListSeparator))
	case []string:
		return strings.Join(v, string(os.PathListSeparator))
	}
	return viper.GetString(key)
}

// Color returns the configured color mode ("auto", "always" or "never").
func Color() string { return viper.GetString(KeyColor) }

// Style returns the configured highlighting style name.
func Style() string { return viper.GetString(KeyStyle) }

// LogLevel returns the configured log level name.
func LogLevel() string { return viper.GetString(KeyLogLevel) }

// ProviderPaths returns the configured provider directories in priority order.
// A plain string value (from `config set` or the environment) is split on the
// OS path list separator.
func ProviderPaths() []string {
	switch v := viper.Get(KeyProviderPaths).(type) {
	case nil:
		return nil
	case string:
		return splitPaths(v)
	case []string:
		return v
	case []interface{}:
		var paths []string
		for _, item := range v {
			if s, ok := item.(string); ok && s != "" {
				paths = append(paths, s)
			}
		}
		return paths
	default:
		return nil
	}
}

func splitPaths(v string) []string {
	var paths []string
	for _, p := range filepath.SplitList(v) {
		if p != "" {
			paths = append(paths, p)
		}
	}
	return paths
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
