package extract

import (
	"reflect"
	"strings"
	"testing"
)

const sampleSource = `import os
import pyrror.checks
from utils import helper

class A(B):
    def __init__(self):
        self.x = 1
        self.y = 2

class C:
    pass

def main():
    pass
`

func TestModuleExtractor_Extract(t *testing.T) {
	e := NewModuleExtractor("pyrror", "", nil)

	mod, err := e.Extract("sample", sampleSource)
	if err != nil {
		t.Fatal(err)
	}

	if mod.Name != "sample" {
		t.Errorf("expected module name sample, got %s", mod.Name)
	}
	if want := []string{"os", "checks", "utils"}; !reflect.DeepEqual(mod.Imports, want) {
		t.Errorf("imports = %v, want %v", mod.Imports, want)
	}
	if len(mod.Classes) != 2 || mod.Classes[0].Name != "A" || mod.Classes[1].Name != "C" {
		t.Errorf("unexpected classes: %+v", mod.Classes)
	}
	if want := []string{"main"}; !reflect.DeepEqual(mod.Functions, want) {
		t.Errorf("functions = %v, want %v", mod.Functions, want)
	}
	if want := []Relation{{From: "B", To: "A", Kind: RelationExtends}}; !reflect.DeepEqual(mod.Relations, want) {
		t.Errorf("relations = %v, want %v", mod.Relations, want)
	}
}

func TestModuleExtractor_EmptyModule(t *testing.T) {
	e := NewModuleExtractor("", "", nil)

	mod, err := e.Extract("constants", "MAX = 10\nMIN = 1\n")
	if err != nil {
		t.Fatal(err)
	}
	if len(mod.Classes) != 0 || len(mod.Functions) != 0 || len(mod.Imports) != 0 {
		t.Errorf("expected empty module, got %+v", mod)
	}
}

func TestModuleExtractor_Idempotent(t *testing.T) {
	e := NewModuleExtractor("pyrror", "", nil)

	first, err := e.Extract("sample", sampleSource)
	if err != nil {
		t.Fatal(err)
	}
	second, err := e.Extract("sample", sampleSource)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("re-extraction of identical text produced a different record")
	}
}

func TestModuleExtractor_MalformedClassAborts(t *testing.T) {
	e := NewModuleExtractor("", "", nil)

	_, err := e.Extract("bad", "class :\n    pass\n")
	if err == nil {
		t.Fatal("expected extraction to fail on malformed class header")
	}
	if !strings.Contains(err.Error(), "CLASS_HEADER_PARSE") {
		t.Errorf("unexpected error: %v", err)
	}
}
