// Package cli defines the Cobra command tree for the provctl CLI. Each file
// registers one command with the root command. Commands only parse flags and
// wire collaborators; presentation lives in internal/provider.
package cli
