// # internal/scanner/scanner.go
package scanner

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"

	"code2uml/internal/core/errors"
)

// Source is one discovered file, already read to completion. Stem is the
// file name without directories or extension and doubles as the module key.
type Source struct {
	Stem string
	Path string
	Text string
}

// Scanner walks a package root and collects Python sources. Package
// initializer files never contribute a module of their own, and anything
// matching the exclude globs is skipped.
type Scanner struct {
	excludeDirs  []glob.Glob
	excludeFiles []glob.Glob
}

func New(excludeDirs, excludeFiles []string) (*Scanner, error) {
	s := &Scanner{}

	for _, p := range excludeDirs {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude dir pattern %q: %w", p, err)
		}
		s.excludeDirs = append(s.excludeDirs, g)
	}
	for _, p := range excludeFiles {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude file pattern %q: %w", p, err)
		}
		s.excludeFiles = append(s.excludeFiles, g)
	}

	return s, nil
}

// Scan reads every matching source under root, in deterministic walk order.
func (s *Scanner) Scan(root string) ([]Source, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInvalidPath, "cannot stat package root")
	}
	if !info.IsDir() {
		return nil, errors.AddContext(
			errors.New(errors.CodeInvalidPath, "path does not lead to a folder"),
			errors.CtxPath, root)
	}

	var sources []Source
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		base := filepath.Base(path)
		if d.IsDir() {
			for _, g := range s.excludeDirs {
				if g.Match(base) {
					return filepath.SkipDir
				}
			}
			return nil
		}

		if !strings.HasSuffix(base, ".py") || strings.Contains(base, "__init__") {
			return nil
		}
		for _, g := range s.excludeFiles {
			if g.Match(base) {
				return nil
			}
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		sources = append(sources, Source{
			Stem: strings.TrimSuffix(base, ".py"),
			Path: path,
			Text: string(data),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return sources, nil
}
