package userdata

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/provctl-labs/provctl/internal/registry"
)

func TestCheckConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	var buf bytes.Buffer
	CheckConfigFile(&buf, path)
	if !strings.Contains(buf.String(), "[INFO] No config file") {
		t.Errorf("expected missing-config notice, got %q", buf.String())
	}

	if err := os.WriteFile(path, []byte("color: never\n"), 0644); err != nil {
		t.Fatal(err)
	}
	buf.Reset()
	CheckConfigFile(&buf, path)
	if !strings.Contains(buf.String(), "[ OK ] "+path) {
		t.Errorf("expected OK line, got %q", buf.String())
	}
}

func TestCheckSources(t *testing.T) {
	root := t.TempDir()
	write := func(dir, content string) {
		full := filepath.Join(root, dir)
		if err := os.MkdirAll(full, 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(full, "provider.yaml"), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	write("good", "package-name: good\nname: Good\ndescription: fine\nversions: [\"1.0.0\"]\n")
	write("bad", "package-name: Bad Name\nname: Bad\ndescription: nope\nversions: [\"1.0.0\"]\n")

	sources := []registry.Source{
		{Name: "user", BasePath: root},
		{Name: "config", BasePath: filepath.Join(root, "missing")},
	}

	var buf bytes.Buffer
	failures := CheckSources(&buf, sources)
	out := buf.String()

	if failures != 1 {
		t.Errorf("failures = %d, want 1\n%s", failures, out)
	}
	if !strings.Contains(out, "(2 manifest(s), 1 invalid)") {
		t.Errorf("missing summary line:\n%s", out)
	}
	if !strings.Contains(out, "[FAIL] "+filepath.Join(root, "bad", "provider.yaml")) {
		t.Errorf("missing failure for bad manifest:\n%s", out)
	}
	if !strings.Contains(out, "[MISS] config:") {
		t.Errorf("missing MISS line for absent source:\n%s", out)
	}
}

func TestCheckSourcesWarnings(t *testing.T) {
	root := t.TempDir()
	write := func(dir, content string) {
		full := filepath.Join(root, dir)
		if err := os.MkdirAll(full, 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(full, "provider.yaml"), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	write("ascending", "package-name: ascending\nname: A\ndescription: d\nversions: [\"1.0.0\", \"2.0.0\"]\n")
	write("descending", "package-name: descending\nname: D\ndescription: d\nversions: [\"2.0.0\", \"1.0.0\"]\n")
	write("custom", "package-name: custom\nname: C\ndescription: d\nversions: [\"latest\", \"1.0.0\"]\n")
	write("retired", "package-name: retired\nname: R\ndescription: d\nversions: [\"1.0.0\"]\nstate: suspended\n")

	var buf bytes.Buffer
	failures := CheckSources(&buf, []registry.Source{{Name: "user", BasePath: root}})
	out := buf.String()

	if failures != 0 {
		t.Errorf("failures = %d, want 0\n%s", failures, out)
	}
	ascending := filepath.Join(root, "ascending", "provider.yaml")
	if !strings.Contains(out, "[WARN] "+ascending+": declared version 1.0.0 is older than listed version 2.0.0") {
		t.Errorf("missing version order warning:\n%s", out)
	}
	if !strings.Contains(out, "[WARN] "+filepath.Join(root, "retired", "provider.yaml")+": provider state is suspended") {
		t.Errorf("missing state warning:\n%s", out)
	}
	if c := strings.Count(out, "[WARN]"); c != 2 {
		t.Errorf("expected 2 warnings, got %d:\n%s", c, out)
	}
}
