package extract

import (
	"reflect"
	"strings"
	"testing"
)

func TestBlockExtractor_ClassBlocks(t *testing.T) {
	text := strings.Join([]string{
		"import os",
		"",
		"class A:",
		"    def run(self):",
		"        pass",
		"",
		"class B(A):",
		"    pass",
		"",
		"x = 1",
	}, "\n")

	var b BlockExtractor
	blocks := b.ClassBlocks(text)
	if len(blocks) != 2 {
		t.Fatalf("expected 2 class blocks, got %d: %v", len(blocks), blocks)
	}
	if !strings.HasPrefix(blocks[0], "class A:") || !strings.Contains(blocks[0], "def run") {
		t.Errorf("unexpected first block: %q", blocks[0])
	}
	if !strings.HasPrefix(blocks[1], "class B(A):") || strings.Contains(blocks[1], "x = 1") {
		t.Errorf("unexpected second block: %q", blocks[1])
	}
}

func TestBlockExtractor_ClassAtStartOfFile(t *testing.T) {
	var b BlockExtractor
	blocks := b.ClassBlocks("class First:\n    pass\n")
	if len(blocks) != 1 {
		t.Fatalf("expected class block at start of file, got %v", blocks)
	}
}

func TestBlockExtractor_DecoratorAndCommentStayInBlock(t *testing.T) {
	text := strings.Join([]string{
		"class A:",
		"    pass",
		"# trailing comment",
		"@decorator",
		"class B:",
		"    pass",
	}, "\n")

	var b BlockExtractor
	blocks := b.ClassBlocks(text)
	// Column-zero punctuation does not end a block; only a word character
	// at column zero does.
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(blocks))
	}
	if !strings.Contains(blocks[0], "# trailing comment") {
		t.Errorf("expected comment inside first block, got %q", blocks[0])
	}
}

func TestBlockExtractor_TopLevelFunctions(t *testing.T) {
	text := strings.Join([]string{
		"def foo():",
		"    pass",
		"",
		"class A:",
		"    def method(self):",
		"        pass",
		"",
		"def bar(x):",
		"    return x",
	}, "\n")

	var b BlockExtractor
	got := b.TopLevelFunctions(text)
	want := []string{"foo", "bar"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TopLevelFunctions = %v, want %v", got, want)
	}
}

func TestBlockExtractor_IndentedDefNeverCaptured(t *testing.T) {
	var b BlockExtractor
	if got := b.TopLevelFunctions("class A:\n    def foo(self):\n        pass\n"); got != nil {
		t.Errorf("expected no top-level functions, got %v", got)
	}
}
