package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"code2uml/internal/config"
	"code2uml/internal/core/errors"
)

func writeSource(t *testing.T, root, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(root, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func testConfig(t *testing.T, root string) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.SourcePath = root
	cfg.Output.Path = filepath.Join(t.TempDir(), "diagram")
	return cfg
}

func TestApp_Generate(t *testing.T) {
	root := t.TempDir()
	writeSource(t, root, "shapes.py", `import math

class Shape:
    def __init__(self):
        self.width = 0
        self.height = 0

class Circle(Shape):
    def area(self):
        pass
`)
	writeSource(t, root, "cli.py", `import shapes

def main():
    pass
`)

	cfg := testConfig(t, root)
	app, err := NewApp(cfg)
	if err != nil {
		t.Fatal(err)
	}
	defer app.Close()

	model, err := app.Generate()
	if err != nil {
		t.Fatal(err)
	}
	if len(model.Modules) != 2 {
		t.Fatalf("expected 2 modules, got %d", len(model.Modules))
	}

	data, err := os.ReadFile(cfg.Output.Path + ".dot")
	if err != nil {
		t.Fatal(err)
	}
	dot := string(data)

	for _, want := range []string{
		"digraph UmlDiagram",
		"<b>Shape</b>",
		"- width",
		"cliFunctions",
		"math [shape=\"folder\"];",
		"ShapeClass -> CircleClass",
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("diagram missing %q", want)
		}
	}

	// scan order is deterministic: cli.py sorts before shapes.py, so the
	// shapes -> cli dependency edge resolves against a known cluster.
	if !strings.Contains(dot, "ShapeClass -> cliFunctions") {
		t.Error("diagram missing internal dependency edge")
	}
}

func TestApp_GenerateDeterministic(t *testing.T) {
	root := t.TempDir()
	writeSource(t, root, "a.py", "import numpy\n\nclass A:\n    pass\n")
	writeSource(t, root, "b.py", "import numpy\nimport a\n\nclass B:\n    pass\n")

	cfg := testConfig(t, root)
	app, err := NewApp(cfg)
	if err != nil {
		t.Fatal(err)
	}
	defer app.Close()

	if _, err := app.Generate(); err != nil {
		t.Fatal(err)
	}
	first, err := os.ReadFile(cfg.Output.Path + ".dot")
	if err != nil {
		t.Fatal(err)
	}

	if _, err := app.Generate(); err != nil {
		t.Fatal(err)
	}
	second, err := os.ReadFile(cfg.Output.Path + ".dot")
	if err != nil {
		t.Fatal(err)
	}

	if string(first) != string(second) {
		t.Error("repeated runs produced different diagrams")
	}
	if strings.Count(string(first), "numpy [shape=\"folder\"];") != 1 {
		t.Error("expected exactly one numpy declaration")
	}
}

func TestApp_EmptyModuleDoesNotFail(t *testing.T) {
	root := t.TempDir()
	writeSource(t, root, "constants.py", "MAX = 10\n")
	writeSource(t, root, "user.py", "import constants\n\nclass User:\n    pass\n")

	app, err := NewApp(testConfig(t, root))
	if err != nil {
		t.Fatal(err)
	}
	defer app.Close()

	model, err := app.Generate()
	if err != nil {
		t.Fatal(err)
	}
	if len(model.Warnings) == 0 {
		t.Error("expected a warning about the empty dependency")
	}
	if model.EdgeCount() != 0 {
		t.Errorf("expected no edges, got %d", model.EdgeCount())
	}
}

func TestApp_InvalidRoot(t *testing.T) {
	cfg := testConfig(t, filepath.Join(t.TempDir(), "missing"))

	app, err := NewApp(cfg)
	if err != nil {
		t.Fatal(err)
	}
	defer app.Close()

	_, err = app.Generate()
	if !errors.IsCode(err, errors.CodeInvalidPath) {
		t.Errorf("expected INVALID_PATH, got %v", err)
	}
}

func TestApp_RejectsUnknownPolicy(t *testing.T) {
	cfg := config.Default()
	cfg.Output.RepresentativePolicy = "newest-first"

	if _, err := NewApp(cfg); !errors.IsCode(err, errors.CodeValidationError) {
		t.Errorf("expected VALIDATION_ERROR, got %v", err)
	}
}
