package manifest

import (
	"strings"
	"testing"
)

func TestValidateFile_Valid(t *testing.T) {
	result, err := ValidateFile(testPath("valid-provider.yaml"))
	if err != nil {
		t.Fatalf("ValidateFile error: %v", err)
	}
	if !result.Valid {
		t.Errorf("expected valid, got invalid with %d issues:", len(result.Issues))
		for _, issue := range result.Issues {
			t.Errorf("  path=%s keyword=%s message=%s", issue.Path, issue.Keyword, issue.Message)
		}
	}
}

func TestValidateFile_InvalidManifests(t *testing.T) {
	invalidFiles := []struct {
		file    string
		desc    string
		keyword string
	}{
		{"invalid-missing-name.yaml", "missing required name field", "required"},
		{"invalid-bad-package-name.yaml", "package-name violates pattern", "pattern"},
		{"invalid-empty-versions.yaml", "versions has no entries", "minItems"},
		{"invalid-bad-state.yaml", "state outside enum", "enum"},
	}

	for _, tt := range invalidFiles {
		t.Run(tt.file, func(t *testing.T) {
			result, err := ValidateFile(testPath(tt.file))
			if err != nil {
				t.Fatalf("ValidateFile(%s) unexpected error: %v", tt.file, err)
			}
			if result.Valid {
				t.Fatalf("expected invalid for %s (%s), but got valid", tt.file, tt.desc)
			}
			if len(result.Issues) == 0 {
				t.Fatalf("expected at least one issue for %s (%s)", tt.file, tt.desc)
			}
			found := false
			for _, issue := range result.Issues {
				if issue.Keyword == tt.keyword {
					found = true
				}
			}
			if !found {
				t.Errorf("expected a %q issue for %s, got %+v", tt.keyword, tt.file, result.Issues)
			}
		})
	}
}

func TestValidateFile_InvalidYAML(t *testing.T) {
	if _, err := ValidateFile(testPath("invalid-yaml.yaml")); err == nil {
		t.Error("expected error for unparsable YAML")
	}
}

func TestValidate_Keywords(t *testing.T) {
	const base = "package-name: ok\nname: ok\ndescription: ok\n"
	tests := []struct {
		name    string
		doc     string
		keyword string
		path    string
		message string
	}{
		{
			name:    "required",
			doc:     "package-name: ok\nname: ok\nversions: [\"1.0\"]\n",
			keyword: "required",
			path:    "/description",
			message: `missing required field "description"`,
		},
		{
			name:    "pattern",
			doc:     "package-name: Bad Name\nname: ok\ndescription: ok\nversions: [\"1.0\"]\n",
			keyword: "pattern",
			path:    "/package-name",
			message: `"Bad Name" does not match ^[a-z0-9][a-z0-9._-]*$`,
		},
		{
			name:    "enum",
			doc:     base + "versions: [\"1.0\"]\nstate: gone\n",
			keyword: "enum",
			path:    "/state",
			message: "gone is not one of ready, not-ready, suspended, removed",
		},
		{
			name:    "minItems",
			doc:     base + "versions: []\n",
			keyword: "minItems",
			path:    "/versions",
			message: "needs at least 1 item(s), got 0",
		},
		{
			name:    "type",
			doc:     base + "versions:\n  - true\n",
			keyword: "type",
			path:    "/versions/0",
			message: "expected number or string, got boolean",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Validate([]byte(tt.doc))
			if err != nil {
				t.Fatalf("Validate: %v", err)
			}
			if result.Valid {
				t.Fatal("expected invalid manifest")
			}
			if len(result.Issues) != 1 {
				t.Fatalf("got %d issues, want 1: %+v", len(result.Issues), result.Issues)
			}
			got := result.Issues[0]
			if got.Keyword != tt.keyword || got.Path != tt.path || got.Message != tt.message {
				t.Errorf("issue = %+v, want {Path:%s Message:%s Keyword:%s}", got, tt.path, tt.message, tt.keyword)
			}
		})
	}
}

func TestValidate_RequiredReportsEachMissingField(t *testing.T) {
	result, err := Validate([]byte("package-name: only\n"))
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	var paths []string
	for _, issue := range result.Issues {
		if issue.Keyword == "required" {
			paths = append(paths, issue.Path)
		}
	}
	want := []string{"/name", "/description", "/versions"}
	if strings.Join(paths, ",") != strings.Join(want, ",") {
		t.Errorf("required paths = %v, want %v", paths, want)
	}
}

func TestDeduplicateIssues(t *testing.T) {
	a := ValidationIssue{Path: "/state", Keyword: "enum", Message: "x"}
	b := ValidationIssue{Path: "/name", Keyword: "required", Message: "y"}
	got := deduplicateIssues([]ValidationIssue{a, b, a})
	if len(got) != 2 || got[0] != a || got[1] != b {
		t.Errorf("deduplicateIssues = %+v", got)
	}
}

func TestValidationIssueString(t *testing.T) {
	root := ValidationIssue{Message: "missing property 'name'"}
	if got := root.String(); !strings.HasPrefix(got, "(root): ") {
		t.Errorf("String() = %q, want (root) prefix", got)
	}
	nested := ValidationIssue{Path: "/state", Message: "bad"}
	if got := nested.String(); got != "/state: bad" {
		t.Errorf("String() = %q, want %q", got, "/state: bad")
	}
}

func TestNormalizeYAMLNonStringKeys(t *testing.T) {
	in := map[interface{}]interface{}{1: "one", "two": []interface{}{map[interface{}]interface{}{true: "x"}}}
	out, ok := normalizeYAML(in).(map[string]interface{})
	if !ok {
		t.Fatalf("normalizeYAML returned %T", normalizeYAML(in))
	}
	if out["1"] != "one" {
		t.Errorf(`out["1"] = %v, want "one"`, out["1"])
	}
	list := out["two"].([]interface{})
	if inner := list[0].(map[string]interface{}); inner["true"] != "x" {
		t.Errorf("nested key not normalized: %#v", inner)
	}
}
