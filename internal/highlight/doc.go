// Package highlight prints the structured YAML block shown by
// `providers get --full`. A Renderer is selected once per invocation from the
// resolved color mode: Plain writes the text untouched, Highlighted colors it
// with chroma's YAML lexer and 256-color terminal formatter.
package highlight
