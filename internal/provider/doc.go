// Package provider presents metadata about installed provider packages. A
// Presenter is constructed with a Registry, an output writer and a
// highlight.Renderer; it never reaches for global state and never mutates the
// records it is handed.
package provider
