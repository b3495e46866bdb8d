// # cmd/code2uml/app.go
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"code2uml/internal/config"
	"code2uml/internal/core/errors"
	"code2uml/internal/extract"
	"code2uml/internal/graph"
	"code2uml/internal/history"
	"code2uml/internal/output"
	"code2uml/internal/scanner"
	"code2uml/internal/shared/observability"
	"code2uml/internal/shared/util"
	"code2uml/internal/watcher"
)

type Update struct {
	Modules    []*extract.Module
	Warnings   []string
	Externals  []string
	EdgeCount  int
	OutputPath string
	RenderedAt time.Time
}

type App struct {
	Config *config.Config

	scanner   *scanner.Scanner
	extractor *extract.ModuleExtractor
	builder   graph.Builder
	store     *history.Store
	limiter   *util.RescanLimiter

	mu         sync.Mutex
	lastUpdate *Update
	teaProgram *tea.Program
}

func NewApp(cfg *config.Config) (*App, error) {
	policy := graph.RepresentativePolicy(cfg.Output.RepresentativePolicy)
	switch policy {
	case graph.PolicyFunctionsFirst, graph.PolicyClassesFirst:
	default:
		return nil, errors.New(errors.CodeValidationError,
			fmt.Sprintf("unknown representative policy %q", cfg.Output.RepresentativePolicy))
	}

	s, err := scanner.New(cfg.Exclude.Dirs, cfg.Exclude.Files)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config:    cfg,
		scanner:   s,
		extractor: extract.NewModuleExtractor(cfg.OwnPackage, cfg.Indent, extract.SlogReporter{}),
		builder:   graph.Builder{Policy: policy},
		limiter:   util.NewRescanLimiter(cfg.Watch.RescansPerSecond, cfg.Watch.RescanBurst),
	}

	if cfg.History.Path != "" {
		store, err := history.Open(cfg.History.Path)
		if err != nil {
			return nil, err
		}
		app.store = store
	}

	return app, nil
}

// Generate runs one full scan → extract → build → render pass and writes the
// diagram next to the configured output path.
func (a *App) Generate() (*graph.Model, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	sources, err := a.scanner.Scan(a.Config.SourcePath)
	if err != nil {
		return nil, err
	}

	modules := make([]*extract.Module, 0, len(sources))
	for _, src := range sources {
		start := time.Now()
		mod, err := a.extractor.Extract(src.Stem, src.Text)
		observability.FilesScanned.Inc()
		observability.ExtractionDuration.Observe(time.Since(start).Seconds())
		if err != nil {
			return nil, errors.AddContext(err, errors.CtxPath, src.Path)
		}
		modules = append(modules, mod)
	}

	model := a.builder.Build(modules)

	dot, err := output.NewDOTGenerator(model).Generate()
	if err != nil {
		return nil, err
	}

	outPath := a.Config.Output.Path + ".dot"
	if err := os.WriteFile(outPath, []byte(dot), 0o644); err != nil {
		return nil, fmt.Errorf("write diagram %q: %w", outPath, err)
	}
	slog.Info("diagram written", "path", outPath, "modules", len(modules), "edges", model.EdgeCount())

	if a.store != nil {
		snap, err := a.store.Record(history.Snapshot{
			SourcePath:    a.Config.SourcePath,
			ModuleCount:   len(modules),
			ClassCount:    countClasses(modules),
			FunctionCount: countFunctions(modules),
			EdgeCount:     model.EdgeCount(),
			ExternalCount: len(model.Externals),
			WarningCount:  len(model.Warnings),
			OutputBytes:   len(dot),
		})
		if err != nil {
			slog.Warn("failed to record render snapshot", "error", err)
		} else {
			slog.Debug("render snapshot recorded", "run_id", snap.RunID)
		}
	}

	a.notifyUI(model, outPath)
	return model, nil
}

func (a *App) notifyUI(model *graph.Model, outPath string) {
	update := Update{
		Modules:    model.Modules,
		Warnings:   model.Warnings,
		Externals:  model.Externals,
		EdgeCount:  model.EdgeCount(),
		OutputPath: outPath,
		RenderedAt: time.Now(),
	}
	a.lastUpdate = &update
	if a.teaProgram != nil {
		a.teaProgram.Send(updateMsg{update: update})
	}
}

// StartWatcher regenerates the diagram on debounced source changes,
// throttled by the rescan limiter.
func (a *App) StartWatcher() error {
	w, err := watcher.New(
		a.Config.Watch.Debounce,
		a.Config.Exclude.Dirs,
		a.Config.Exclude.Files,
		func() {
			if !a.limiter.Allow() {
				slog.Debug("regeneration throttled")
				return
			}
			observability.RegenerationsTotal.Inc()
			if _, err := a.Generate(); err != nil {
				slog.Error("regeneration failed", "error", err)
			}
		},
	)
	if err != nil {
		return err
	}
	return w.Watch(a.Config.SourcePath)
}

func (a *App) RunUI() error {
	m := initialModel()
	p := tea.NewProgram(m, tea.WithAltScreen())
	a.mu.Lock()
	a.teaProgram = p
	a.mu.Unlock()

	// Replay the initial render for the freshly attached program.
	go func() {
		a.mu.Lock()
		last := a.lastUpdate
		a.mu.Unlock()
		if last != nil {
			p.Send(updateMsg{update: *last})
		}
	}()

	_, err := p.Run()
	return err
}

func (a *App) Close() error {
	if a.store != nil {
		return a.store.Close()
	}
	return nil
}

func (a *App) PrintSummary(model *graph.Model, outPath string) {
	fmt.Println(strings.Repeat("-", 40))
	fmt.Printf("Modules:   %d\n", len(model.Modules))
	fmt.Printf("Classes:   %d\n", countClasses(model.Modules))
	fmt.Printf("Functions: %d\n", countFunctions(model.Modules))
	fmt.Printf("Edges:     %d\n", model.EdgeCount())
	fmt.Printf("External:  %d\n", len(model.Externals))
	if len(model.Warnings) > 0 {
		fmt.Printf("Warnings:  %d\n", len(model.Warnings))
		for _, w := range model.Warnings {
			fmt.Printf("  ! %s\n", w)
		}
	}
	fmt.Printf("Output:    %s\n", outPath)
	fmt.Println(strings.Repeat("-", 40))
}

func countClasses(modules []*extract.Module) int {
	n := 0
	for _, m := range modules {
		n += len(m.Classes)
	}
	return n
}

func countFunctions(modules []*extract.Module) int {
	n := 0
	for _, m := range modules {
		n += len(m.Functions)
	}
	return n
}
