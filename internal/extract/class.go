// # internal/extract/class.go
package extract

import (
	"regexp"
	"strings"

	"code2uml/internal/core/errors"
)

const DefaultIndent = "    "

var (
	classHead = regexp.MustCompile(`^class (\w+)`)
	classBase = regexp.MustCompile(`^class \w+\((\w+)\):`)
	methodDef = regexp.MustCompile(`^def (\w+)`)
	attrWrite = regexp.MustCompile(`self\.(\w+) =`)
)

// ClassAnalyzer derives a ClassInfo from one raw class block.
type ClassAnalyzer struct {
	// Indent is the single indentation unit stripped from the class body
	// before method segmentation. Defaults to four spaces.
	Indent string

	blocks BlockExtractor
}

func (a *ClassAnalyzer) indent() string {
	if a.Indent == "" {
		return DefaultIndent
	}
	return a.Indent
}

// Analyze parses the block headline for name and optional single base,
// enumerates methods and collects constructor-assigned attributes.
//
// The headline is produced by block segmentation and is well-formed by
// construction; a name that fails to parse means the input itself is
// malformed, which is fatal for the whole run.
func (a *ClassAnalyzer) Analyze(block string) (ClassInfo, error) {
	headline, _, _ := strings.Cut(block, "\n")

	m := classHead.FindStringSubmatch(headline)
	if m == nil {
		err := errors.New(errors.CodeClassHeaderParse, "class headline does not match name pattern")
		return ClassInfo{}, errors.AddContext(err, errors.CtxLine, headline)
	}
	info := ClassInfo{Name: m[1]}

	// Only the exact single-base shape `class Name(Base):` counts as
	// inheritance. Multiple bases, keyword arguments or a missing colon all
	// read as "no superclass".
	if base := classBase.FindStringSubmatch(headline); base != nil {
		info.Superclass = base[1]
	}

	// Strip one indentation unit so methods sit at column zero, then reuse
	// the top-level def segmentation against the normalized body.
	body := strings.ReplaceAll(block, "\n"+a.indent(), "\n")
	methodBlocks := a.blocks.FunctionBlocks(body)

	initBlock := ""
	for _, mb := range methodBlocks {
		head, _, _ := strings.Cut(mb, "\n")
		dm := methodDef.FindStringSubmatch(head)
		if dm == nil {
			continue
		}
		info.Methods = append(info.Methods, dm[1])
		if dm[1] == "__init__" && initBlock == "" {
			initBlock = mb
		}
	}

	// Attributes come exclusively from constructor self-assignments, in
	// order of occurrence and with duplicates kept. No constructor means no
	// attributes.
	if initBlock != "" {
		for _, am := range attrWrite.FindAllStringSubmatch(initBlock, -1) {
			info.Attributes = append(info.Attributes, am[1])
		}
	}

	return info, nil
}
