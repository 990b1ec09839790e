package registry

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/provctl-labs/provctl/internal/logging"
	"github.com/provctl-labs/provctl/internal/manifest"
	"github.com/provctl-labs/provctl/internal/provider"
	log "github.com/sirupsen/logrus"
)

// ManifestRegistry implements provider.Registry on top of manifest files.
type ManifestRegistry struct {
	sources  []Source
	logger   *log.Logger
	validate bool
}

var _ provider.Registry = (*ManifestRegistry)(nil)

// New returns a registry over sources. Earlier sources take priority when
// two manifests declare the same package name.
func New(sources []Source, opts ...Option) *ManifestRegistry {
	r := &ManifestRegistry{
		sources:  sources,
		logger:   logging.Discard(),
		validate: true,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Providers returns every readable provider, in source order and then in
// lexical path order within a source. Unreadable or invalid manifests are
// logged and skipped; a missing source directory is not an error.
func (r *ManifestRegistry) Providers(ctx context.Context) ([]provider.Record, error) {
	seen := make(map[string]string)
	var result []provider.Record

	for _, src := range r.sources {
		paths, err := ManifestPaths(src)
		if err != nil {
			r.logger.WithField("source", src.Name).Debugf("skipping source: %v", err)
			continue
		}

		for _, path := range paths {
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			rec, err := r.load(path)
			if err != nil {
				r.logger.WithFields(log.Fields{
					"source":   src.Name,
					"manifest": path,
				}).Warnf("skipping provider: %v", err)
				continue
			}

			if prev, dup := seen[rec.Name]; dup {
				r.logger.WithFields(log.Fields{
					"provider": rec.Name,
					"manifest": path,
					"winner":   prev,
				}).Debug("shadowed by earlier source")
				continue
			}
			seen[rec.Name] = path

			r.logger.WithFields(log.Fields{
				"provider": rec.Name,
				"source":   src.Name,
			}).Debug("loaded provider")
			result = append(result, rec)
		}
	}

	return result, nil
}

// load reads, optionally validates, and converts one manifest.
func (r *ManifestRegistry) load(path string) (provider.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return provider.Record{}, fmt.Errorf("reading file %s: %w", path, err)
	}

	if r.validate {
		res, err := manifest.Validate(data)
		if err != nil {
			return provider.Record{}, err
		}
		if !res.Valid {
			issues := make([]string, len(res.Issues))
			for i, issue := range res.Issues {
				issues[i] = issue.String()
			}
			return provider.Record{}, fmt.Errorf("invalid manifest: %s", strings.Join(issues, "; "))
		}
	}

	m, raw, err := manifest.ParseData(data, path)
	if err != nil {
		return provider.Record{}, err
	}

	name := m.PackageName
	if name == "" {
		name = filepath.Base(filepath.Dir(path))
	}

	return provider.Record{
		Name:     name,
		Versions: m.Versions,
		Info:     provider.Info(raw),
	}, nil
}

// ManifestPaths returns the manifest paths under a source root in lexical
// order. Hidden directories are not descended into.
func ManifestPaths(source Source) ([]string, error) {
	info, err := os.Stat(source.BasePath)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", source.BasePath)
	}

	var paths []string
	err = filepath.WalkDir(source.BasePath, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil // skip inaccessible entries
		}
		if d.IsDir() {
			if path != source.BasePath && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Name() == manifest.FileName {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return paths, nil
}
