// Package manifest handles parsing and validation of provider.yaml manifests.
// A manifest is read twice: once into the typed ProviderManifest view and once
// into a generic map that preserves every key for display. Validation runs
// against the JSON Schema embedded from schema/provider.schema.json.
package manifest
