// # internal/extract/resolver.go
package extract

import (
	"regexp"
	"strings"
)

var (
	importStmt = regexp.MustCompile(`(?m)^import ([\w.]+)`)
	fromStmt   = regexp.MustCompile(`(?m)^from (\w+) import `)
)

// ImportResolver classifies import statement lines into normalized dependency
// names. OwnPackage collapses "package.submodule" imports onto the
// submodule's own module key.
type ImportResolver struct {
	OwnPackage string
}

// Resolve inspects a single line of source text. The second return value is
// false when the line matches neither statement shape; unmatched lines
// (aliases, relative imports, plain code) never produce a dependency.
func (r *ImportResolver) Resolve(line string) (string, bool) {
	if m := importStmt.FindStringSubmatch(line); m != nil {
		return r.Normalize(m[1]), true
	}
	if m := fromStmt.FindStringSubmatch(line); m != nil {
		return r.Normalize(m[1]), true
	}
	return "", false
}

// ScanImports collects every dependency in the text: all `import a.b.c`
// matches first, then all `from x import y` matches, each group in text
// order. Duplicates are preserved.
func (r *ImportResolver) ScanImports(text string) []string {
	var deps []string
	for _, m := range importStmt.FindAllStringSubmatch(text, -1) {
		deps = append(deps, r.Normalize(m[1]))
	}
	for _, m := range fromStmt.FindAllStringSubmatch(text, -1) {
		deps = append(deps, r.Normalize(m[1]))
	}
	return deps
}

// Normalize maps a raw import name onto its diagram key. A dotted name
// rooted at OwnPackage collapses to its last segment, any other dotted name
// to its first segment, and a plain name passes through unchanged.
func (r *ImportResolver) Normalize(name string) string {
	if !strings.Contains(name, ".") {
		return name
	}
	parts := strings.Split(name, ".")
	if r.OwnPackage != "" && parts[0] == r.OwnPackage {
		return parts[len(parts)-1]
	}
	return parts[0]
}
