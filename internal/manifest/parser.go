package manifest

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// Parse reads a manifest file and returns only the typed fields.
func Parse(path string) (*ProviderManifest, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	var m ProviderManifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	return &m, nil
}

// ParseFile reads a manifest file and returns both the typed view and the
// raw key/value document.
func ParseFile(path string) (*ProviderManifest, map[string]interface{}, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, nil, err
	}
	return ParseData(data, path)
}

// ParseData parses manifest bytes. path is used only in error messages.
func ParseData(data []byte, path string) (*ProviderManifest, map[string]interface{}, error) {
	var m ProviderManifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}

	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	if raw == nil {
		return nil, nil, fmt.Errorf("manifest %s is empty", path)
	}

	return &m, raw, nil
}

// readFile reads the contents of a file at the given path.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
