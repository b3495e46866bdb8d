// # internal/extract/blocks.go
package extract

import "strings"

// BlockExtractor segments source text into top-level blocks with a
// line-by-line scanner. A block starts at a column-zero line carrying the
// requested keyword and runs up to (but excluding) the next column-zero line
// that begins a new top-level construct, i.e. whose first byte is a word
// character. Indented lines, blank lines and column-zero punctuation
// (decorators, comments, closing brackets) stay inside the current block.
type BlockExtractor struct{}

// ClassBlocks returns the raw text of every top-level class block, in source
// order.
func (b *BlockExtractor) ClassBlocks(text string) []string {
	return b.blocks(text, "class ")
}

// FunctionBlocks returns the raw text of every column-zero def block, in
// source order. Run against module text it yields top-level function blocks;
// run against a de-indented class body it yields method blocks.
func (b *BlockExtractor) FunctionBlocks(text string) []string {
	return b.blocks(text, "def ")
}

// TopLevelFunctions returns the names of column-zero `def name(` definitions.
// Method definitions are indented and therefore never match; the
// disambiguation is purely positional.
func (b *BlockExtractor) TopLevelFunctions(text string) []string {
	var names []string
	for _, line := range strings.Split(text, "\n") {
		if !strings.HasPrefix(line, "def ") {
			continue
		}
		if name, ok := defName(line); ok {
			names = append(names, name)
		}
	}
	return names
}

func (b *BlockExtractor) blocks(text, keyword string) []string {
	lines := strings.Split(text, "\n")
	var out []string
	var current []string
	inBlock := false

	flush := func() {
		if inBlock {
			out = append(out, strings.Join(trimTrailingBlank(current), "\n"))
			current = nil
			inBlock = false
		}
	}

	for _, line := range lines {
		switch {
		case strings.HasPrefix(line, keyword):
			flush()
			inBlock = true
			current = append(current, line)
		case inBlock && startsTopLevel(line):
			flush()
		case inBlock:
			current = append(current, line)
		}
	}
	flush()
	return out
}

// startsTopLevel reports whether the line opens a new top-level construct.
func startsTopLevel(line string) bool {
	if line == "" {
		return false
	}
	c := line[0]
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

// defName extracts the identifier from a `def name(` headline.
func defName(line string) (string, bool) {
	rest := strings.TrimPrefix(line, "def ")
	end := 0
	for end < len(rest) && isWordByte(rest[end]) {
		end++
	}
	if end == 0 || end >= len(rest) || rest[end] != '(' {
		return "", false
	}
	return rest[:end], true
}

func isWordByte(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

func trimTrailingBlank(lines []string) []string {
	end := len(lines)
	for end > 0 && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	return lines[:end]
}
