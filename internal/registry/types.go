package registry

import (
	log "github.com/sirupsen/logrus"
)

// Source represents a directory to search for provider manifests.
type Source struct {
	Name     string // e.g., "user", "system"
	BasePath string // absolute path to the source root
}

// Option configures a ManifestRegistry.
type Option func(*ManifestRegistry)

// WithLogger sets the logger used for skipped-manifest warnings.
func WithLogger(l *log.Logger) Option {
	return func(r *ManifestRegistry) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithValidation toggles schema validation of each manifest. Invalid
// manifests are skipped. Validation is on by default.
func WithValidation(enabled bool) Option {
	return func(r *ManifestRegistry) {
		r.validate = enabled
	}
}
