package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/provctl-labs/provctl/internal/highlight"
	"github.com/provctl-labs/provctl/internal/markup"
	"go.yaml.in/yaml/v3"
)

// Info keys the presenter reads.
const (
	keyDescription = "description"
	keyPackageName = "package-name"
	keyVersions    = "versions"
)

// Presenter prints provider metadata to a writer.
type Presenter struct {
	registry Registry
	out      io.Writer
	renderer highlight.Renderer
}

// NewPresenter returns a Presenter reading from reg and writing to out.
// A nil renderer means plain output.
func NewPresenter(reg Registry, out io.Writer, r highlight.Renderer) *Presenter {
	if r == nil {
		r = highlight.Plain{}
	}
	return &Presenter{registry: reg, out: out, renderer: r}
}

// Describe prints the name and version of one provider. With full set it
// also prints the provider's metadata as a YAML block.
func (p *Presenter) Describe(ctx context.Context, name string, full bool) error {
	records, err := p.registry.Providers(ctx)
	if err != nil {
		return fmt.Errorf("reading provider registry: %w", err)
	}

	rec, ok := Lookup(records, name)
	if !ok {
		return &NotFoundError{Name: name}
	}

	// Build the YAML block before writing anything so a marshal failure
	// doesn't leave half a record on screen.
	var block string
	if full {
		block, err = infoYAML(rec.Info)
		if err != nil {
			return fmt.Errorf("formatting provider %s: %w", name, err)
		}
	}

	fmt.Fprintf(p.out, "Provider: %s\n", name)
	fmt.Fprintf(p.out, "Version: %s\n", rec.Version())
	if !full {
		return nil
	}
	return p.renderer.Render(p.out, block)
}

// tableTitle is printed above the ListAll header.
const tableTitle = "Installed providers"

// ListAll prints every provider as a Name/Description/Version table, in
// registry order, under a title line.
func (p *Presenter) ListAll(ctx context.Context) error {
	rows, err := p.rows(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(p.out, tableTitle)
	w := tabwriter.NewWriter(p.out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "Name\tDescription\tVersion")
	for _, r := range rows {
		fmt.Fprintf(w, "%s\t%s\t%s\n", r.Name, oneLine(r.Description), r.Version)
	}
	return w.Flush()
}

// ListJSON prints the same rows as ListAll as a JSON array.
func (p *Presenter) ListJSON(ctx context.Context) error {
	rows, err := p.rows(ctx)
	if err != nil {
		return err
	}
	if rows == nil {
		rows = []listRow{}
	}

	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(p.out, string(data))
	return err
}

// listRow is one provider as shown by the list views.
type listRow struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Version     string `json:"version"`
}

func (p *Presenter) rows(ctx context.Context) ([]listRow, error) {
	records, err := p.registry.Providers(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading provider registry: %w", err)
	}

	var rows []listRow
	for _, rec := range records {
		row := listRow{
			Name:        rec.Name,
			Description: markup.StripRST(stringField(rec.Info, keyDescription)),
			Version:     rec.Version(),
		}
		if pkg := stringField(rec.Info, keyPackageName); pkg != "" {
			row.Name = pkg
		}
		if v := firstVersion(rec.Info[keyVersions]); v != "" {
			row.Version = v
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// infoYAML serializes a copy of info with its description cleaned up.
// The caller's map is left untouched.
func infoYAML(info Info) (string, error) {
	doc := make(map[string]interface{}, len(info))
	for k, v := range info {
		doc[k] = v
	}
	if desc, ok := doc[keyDescription].(string); ok {
		doc[keyDescription] = markup.StripRST(desc)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return "", err
	}
	if err := enc.Close(); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func stringField(info Info, key string) string {
	s, _ := info[key].(string)
	return s
}

// firstVersion returns the first element of a versions list decoded from
// YAML ([]interface{}) or built in Go ([]string).
func firstVersion(v interface{}) string {
	switch vs := v.(type) {
	case []string:
		if len(vs) > 0 {
			return vs[0]
		}
	case []interface{}:
		if len(vs) > 0 {
			return fmt.Sprint(vs[0])
		}
	}
	return ""
}

// oneLine collapses runs of whitespace so a description fits one table row.
func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
