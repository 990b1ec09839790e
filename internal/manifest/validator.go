package manifest

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/santhosh-tekuri/jsonschema/v6/kind"
	"go.yaml.in/yaml/v3"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed schema/provider.schema.json
var schemaBytes []byte

const schemaName = "provider.schema.json"

var (
	printer = message.NewPrinter(language.English)

	providerSchema = sync.OnceValues(compileProviderSchema)
)

// ValidationResult is the outcome of validating one manifest. Issues is
// empty when Valid is true.
type ValidationResult struct {
	Valid  bool
	Issues []ValidationIssue
}

// ValidationIssue is one schema violation.
type ValidationIssue struct {
	Path    string // JSON pointer into the manifest, e.g. "/versions/0"
	Message string
	Keyword string // required, pattern, enum, minItems, type, ...
}

func compileProviderSchema() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
	if err != nil {
		return nil, fmt.Errorf("unmarshaling schema JSON: %w", err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaName, doc); err != nil {
		return nil, fmt.Errorf("adding schema resource: %w", err)
	}
	sch, err := c.Compile(schemaName)
	if err != nil {
		return nil, fmt.Errorf("compiling schema: %w", err)
	}
	return sch, nil
}

// Validate checks manifest YAML against the embedded provider schema.
// A non-nil error means the document could not be checked at all; schema
// violations are reported through the result.
func Validate(data []byte) (*ValidationResult, error) {
	sch, err := providerSchema()
	if err != nil {
		return nil, fmt.Errorf("loading schema: %w", err)
	}

	inst, err := toInstance(data)
	if err != nil {
		return nil, err
	}

	err = sch.Validate(inst)
	if err == nil {
		return &ValidationResult{Valid: true}, nil
	}
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return nil, fmt.Errorf("validating manifest: %w", err)
	}
	return &ValidationResult{Issues: extractIssues(ve)}, nil
}

// ValidateFile reads path and validates its contents.
func ValidateFile(path string) (*ValidationResult, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return Validate(data)
}

// toInstance decodes YAML and round-trips it through JSON so numbers reach
// the validator as json.Number.
func toInstance(data []byte) (any, error) {
	var doc interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}
	jsonData, err := json.Marshal(normalizeYAML(doc))
	if err != nil {
		return nil, fmt.Errorf("converting to JSON: %w", err)
	}
	return jsonschema.UnmarshalJSON(bytes.NewReader(jsonData))
}

// extractIssues flattens the ValidationError tree into one issue per failed
// leaf keyword.
func extractIssues(ve *jsonschema.ValidationError) []ValidationIssue {
	var issues []ValidationIssue
	var walk func(*jsonschema.ValidationError)
	walk = func(e *jsonschema.ValidationError) {
		if len(e.Causes) == 0 {
			issues = append(issues, leafIssues(e)...)
			return
		}
		for _, cause := range e.Causes {
			walk(cause)
		}
	}
	walk(ve)

	if len(issues) == 0 {
		return []ValidationIssue{{Message: ve.Error()}}
	}
	return deduplicateIssues(issues)
}

// leafIssues describes one failed keyword. A missing required property is
// reported at the property's own path, one issue per property.
func leafIssues(e *jsonschema.ValidationError) []ValidationIssue {
	if e.ErrorKind == nil {
		return nil
	}
	path := instancePath(e.InstanceLocation)

	switch k := e.ErrorKind.(type) {
	case *kind.Required:
		issues := make([]ValidationIssue, 0, len(k.Missing))
		for _, prop := range k.Missing {
			issues = append(issues, ValidationIssue{
				Path:    path + "/" + prop,
				Message: printer.Sprintf("missing required field %q", prop),
				Keyword: "required",
			})
		}
		return issues
	case *kind.Pattern:
		return []ValidationIssue{{
			Path:    path,
			Message: printer.Sprintf("%q does not match %s", k.Got, k.Want),
			Keyword: "pattern",
		}}
	case *kind.Enum:
		want := make([]string, len(k.Want))
		for i, v := range k.Want {
			want[i] = fmt.Sprint(v)
		}
		return []ValidationIssue{{
			Path:    path,
			Message: printer.Sprintf("%v is not one of %s", k.Got, strings.Join(want, ", ")),
			Keyword: "enum",
		}}
	case *kind.MinItems:
		return []ValidationIssue{{
			Path:    path,
			Message: printer.Sprintf("needs at least %d item(s), got %d", k.Want, k.Got),
			Keyword: "minItems",
		}}
	case *kind.Type:
		return []ValidationIssue{{
			Path:    path,
			Message: printer.Sprintf("expected %s, got %s", strings.Join(k.Want, " or "), k.Got),
			Keyword: "type",
		}}
	}

	keyword := ""
	if kw := e.ErrorKind.KeywordPath(); len(kw) > 0 {
		keyword = kw[len(kw)-1]
	}
	return []ValidationIssue{{
		Path:    path,
		Message: e.ErrorKind.LocalizedString(printer),
		Keyword: keyword,
	}}
}

// instancePath renders a JSON pointer; the document root is "".
func instancePath(loc []string) string {
	if len(loc) == 0 {
		return ""
	}
	return "/" + strings.Join(loc, "/")
}

// deduplicateIssues drops repeats, keeping first-seen order.
func deduplicateIssues(issues []ValidationIssue) []ValidationIssue {
	seen := make(map[ValidationIssue]bool, len(issues))
	result := issues[:0:0]
	for _, issue := range issues {
		if !seen[issue] {
			seen[issue] = true
			result = append(result, issue)
		}
	}
	return result
}

// normalizeYAML recursively converts YAML-decoded values to JSON-compatible
// types. Maps with non-string keys (e.g. `1: foo`) are re-keyed with their
// string form so json.Marshal accepts them.
func normalizeYAML(v interface{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		m := make(map[string]interface{}, len(val))
		for k, v := range val {
			m[k] = normalizeYAML(v)
		}
		return m
	case map[interface{}]interface{}:
		m := make(map[string]interface{}, len(val))
		for k, v := range val {
			m[fmt.Sprint(k)] = normalizeYAML(v)
		}
		return m
	case []interface{}:
		a := make([]interface{}, len(val))
		for i, v := range val {
			a[i] = normalizeYAML(v)
		}
		return a
	default:
		return val
	}
}

// String formats the issue as "<path>: <message>", using "(root)" for
// document-level issues.
func (i ValidationIssue) String() string {
	path := i.Path
	if path == "" {
		path = "(root)"
	}
	return path + ": " + i.Message
}
