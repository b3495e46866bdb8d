// # internal/extract/extractor.go
package extract

import (
	"log/slog"

	"code2uml/internal/core/errors"
)

// Reporter receives per-file progress notifications. Extraction is otherwise
// pure, so tests can plug in a no-op.
type Reporter interface {
	FileStarted(name string)
	FileDone(name string)
}

type NopReporter struct{}

func (NopReporter) FileStarted(string) {}
func (NopReporter) FileDone(string)    {}

// SlogReporter logs progress through the default structured logger.
type SlogReporter struct {
	Logger *slog.Logger
}

func (r SlogReporter) logger() *slog.Logger {
	if r.Logger == nil {
		return slog.Default()
	}
	return r.Logger
}

func (r SlogReporter) FileStarted(name string) {
	r.logger().Debug("extracting module", "module", name)
}

func (r SlogReporter) FileDone(name string) {
	r.logger().Info("module extracted", "module", name)
}

// ModuleExtractor orchestrates import resolution, block segmentation and
// class analysis over one file's text.
type ModuleExtractor struct {
	resolver ImportResolver
	blocks   BlockExtractor
	classes  ClassAnalyzer
	reporter Reporter
}

// NewModuleExtractor builds an extractor for the given own-package name and
// indentation unit. Empty indent selects the four-space default; a nil
// reporter disables progress notifications.
func NewModuleExtractor(ownPackage, indent string, reporter Reporter) *ModuleExtractor {
	if reporter == nil {
		reporter = NopReporter{}
	}
	return &ModuleExtractor{
		resolver: ImportResolver{OwnPackage: ownPackage},
		classes:  ClassAnalyzer{Indent: indent},
		reporter: reporter,
	}
}

// Extract scans one file's text into an immutable Module record. The only
// expected failure is a malformed class headline, which aborts the run.
func (e *ModuleExtractor) Extract(name, text string) (*Module, error) {
	e.reporter.FileStarted(name)

	mod := &Module{
		Name:    name,
		Imports: e.resolver.ScanImports(text),
	}

	for _, block := range e.blocks.ClassBlocks(text) {
		info, err := e.classes.Analyze(block)
		if err != nil {
			return nil, errors.AddContext(err, errors.CtxModule, name)
		}
		mod.Classes = append(mod.Classes, info)
		if info.Superclass != "" {
			mod.Relations = append(mod.Relations, Relation{
				From: info.Superclass,
				To:   info.Name,
				Kind: RelationExtends,
			})
		}
	}

	mod.Functions = e.blocks.TopLevelFunctions(text)

	e.reporter.FileDone(name)
	return mod, nil
}
