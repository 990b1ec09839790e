package userdata

import (
	"fmt"
	"io"
	"os"

	"github.com/provctl-labs/provctl/internal/manifest"
	"github.com/provctl-labs/provctl/internal/registry"
)

// CheckConfigFile reports whether the config file at path exists.
func CheckConfigFile(w io.Writer, path string) {
	fmt.Fprintln(w, "Config check:")
	if _, err := os.Stat(path); err != nil {
		fmt.Fprintf(w, "  [INFO] No config file at %s (defaults in use)\n", path)
		return
	}
	fmt.Fprintf(w, "  [ OK ] %s\n", path)
}

// CheckSources reports on each provider source: whether it exists, how many
// manifests it holds, and which of them fail validation. Valid manifests
// whose first listed version is not the newest, or whose state is not
// ready, get a warning line. It returns the number of invalid manifests
// found; warnings do not count.
func CheckSources(w io.Writer, sources []registry.Source) int {
	fmt.Fprintln(w, "Provider sources:")
	failures := 0

	for _, src := range sources {
		paths, err := registry.ManifestPaths(src)
		if err != nil {
			fmt.Fprintf(w, "  [MISS] %s: %s (%v)\n", src.Name, src.BasePath, err)
			continue
		}

		invalid := 0
		for _, path := range paths {
			result, err := manifest.ValidateFile(path)
			switch {
			case err != nil:
				invalid++
				fmt.Fprintf(w, "  [FAIL] %s: %v\n", path, err)
			case !result.Valid:
				invalid++
				for _, issue := range result.Issues {
					fmt.Fprintf(w, "  [FAIL] %s: %s\n", path, issue)
				}
			default:
				checkManifest(w, path)
			}
		}

		fmt.Fprintf(w, "  [ OK ] %s: %s (%d manifest(s), %d invalid)\n", src.Name, src.BasePath, len(paths), invalid)
		failures += invalid
	}

	return failures
}

// checkManifest prints warnings for a schema-valid manifest.
func checkManifest(w io.Writer, path string) {
	m, err := manifest.Parse(path)
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %s: %v\n", path, err)
		return
	}

	if newest, ok := registry.NewestVersion(m.Versions); ok && newest != m.Versions[0] {
		fmt.Fprintf(w, "  [WARN] %s: declared version %s is older than listed version %s\n", path, m.Versions[0], newest)
	}
	if m.State != "" && m.State != manifest.StateReady {
		fmt.Fprintf(w, "  [WARN] %s: provider state is %s\n", path, m.State)
	}
}
