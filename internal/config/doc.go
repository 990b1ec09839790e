// Package config manages user-level settings stored at ~/.provctl/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the provider search paths and the default color mode.
package config
