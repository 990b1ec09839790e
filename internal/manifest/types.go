package manifest

// FileName is the name of a provider manifest file.
const FileName = "provider.yaml"

// ProviderManifest holds the provider.yaml fields provctl acts on. Every
// other key, including name and description, is carried only in the raw map
// returned by ParseFile.
type ProviderManifest struct {
	PackageName string   `yaml:"package-name"`
	Versions    []string `yaml:"versions"`
	State       string   `yaml:"state,omitempty"`
}

// Provider lifecycle states accepted in the state field.
const (
	StateReady     = "ready"
	StateNotReady  = "not-ready"
	StateSuspended = "suspended"
	StateRemoved   = "removed"
)
