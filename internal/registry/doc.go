// Package registry reads installed providers from provider.yaml manifests.
// It walks an ordered list of source directories, optionally validates each
// manifest against the schema, and returns one provider.Record per package.
// Nothing is cached: every call re-reads the sources.
package registry
