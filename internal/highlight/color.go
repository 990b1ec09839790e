package highlight

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ColorMode controls whether output is colorized.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ColorModes lists the accepted --color values.
var ColorModes = []ColorMode{ColorAuto, ColorAlways, ColorNever}

// ColorModeList renders ColorModes for help and error text, e.g.
// "auto, always or never".
func ColorModeList() string {
	names := make([]string, len(ColorModes))
	for i, m := range ColorModes {
		names[i] = string(m)
	}
	return strings.Join(names[:len(names)-1], ", ") + " or " + names[len(names)-1]
}

// ParseColorMode converts a flag or config value into a ColorMode.
// Matching is case-insensitive; an empty value means auto.
func ParseColorMode(s string) (ColorMode, error) {
	want := ColorMode(strings.ToLower(strings.TrimSpace(s)))
	if want == "" {
		return ColorAuto, nil
	}
	for _, m := range ColorModes {
		if m == want {
			return m, nil
		}
	}
	return "", fmt.Errorf("invalid color mode %q (want %s)", s, ColorModeList())
}

// fder is satisfied by *os.File.
type fder interface {
	Fd() uintptr
}

// ShouldUseColor reports whether output written to w should be colorized.
// In auto mode w must be a terminal, NO_COLOR must be unset and TERM must not
// be "dumb".
func ShouldUseColor(mode ColorMode, w io.Writer) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}

	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}
	f, ok := w.(fder)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
