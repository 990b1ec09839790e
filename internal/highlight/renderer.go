package highlight

import (
	"fmt"
	"io"

	"github.com/alecthomas/chroma/v2/quick"
)

const (
	lexerName     = "yaml"
	formatterName = "terminal256"
)

// Renderer writes a YAML document to w.
type Renderer interface {
	Render(w io.Writer, yamlText string) error
}

// Plain writes the document unchanged.
type Plain struct{}

// Render implements Renderer.
func (Plain) Render(w io.Writer, yamlText string) error {
	_, err := io.WriteString(w, yamlText)
	return err
}

// Highlighted colors the document with the named chroma style.
// Unknown style names fall back to chroma's default style.
type Highlighted struct {
	Style string
}

// Render implements Renderer.
func (h Highlighted) Render(w io.Writer, yamlText string) error {
	if err := quick.Highlight(w, yamlText, lexerName, formatterName, h.Style); err != nil {
		return fmt.Errorf("highlighting YAML: %w", err)
	}
	return nil
}

// Select returns Highlighted when useColor is set and Plain otherwise.
func Select(useColor bool, style string) Renderer {
	if useColor {
		return Highlighted{Style: style}
	}
	return Plain{}
}
