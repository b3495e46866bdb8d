// # cmd/code2uml/main.go
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"code2uml/internal/config"
)

var (
	configPath  = flag.String("config", "./code2uml.toml", "Path to config file")
	watch       = flag.Bool("watch", false, "Keep running and regenerate the diagram on source changes")
	ui          = flag.Bool("ui", false, "Enable terminal UI mode (implies -watch)")
	ownPackage  = flag.String("package", "", "Own package name, overrides the config value")
	outPath     = flag.String("output", "", "Output path without extension, overrides the config value")
	metricsAddr = flag.String("metrics", "", "Serve prometheus metrics on this address in watch mode (e.g. :9090)")
	verbose     = flag.Bool("verbose", false, "Enable verbose logging")
	version     = flag.Bool("version", false, "Print version and exit")
)

const VERSION = "1.0.0"

func main() {
	flag.Parse()

	if *version {
		fmt.Printf("code2uml v%s\n", VERSION)
		os.Exit(0)
	}

	// Setup logging
	logLevel := slog.LevelInfo
	if *verbose {
		logLevel = slog.LevelDebug
	}

	logOutput := os.Stdout
	if *ui {
		// In UI mode, avoid stdout logs corrupting the TUI.
		logPath := resolveLogPath()
		if err := os.MkdirAll(filepath.Dir(logPath), 0o700); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to create log dir for %s: %v\n", logPath, err)
		} else if f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600); err == nil {
			logOutput = f
		} else {
			fmt.Fprintf(os.Stderr, "warning: failed to open log file %s: %v\n", logPath, err)
		}
	}

	logger := slog.New(slog.NewTextHandler(logOutput, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// Load config; the default path is optional, an explicit one is not.
	cfg, err := config.Load(*configPath)
	if err != nil {
		if !os.IsNotExist(err) || *configPath != "./code2uml.toml" {
			slog.Error("failed to load config", "error", err)
			os.Exit(1)
		}
		cfg = config.Default()
	}

	if flag.NArg() > 0 {
		cfg.SourcePath = flag.Arg(0)
	}
	if *ownPackage != "" {
		cfg.OwnPackage = *ownPackage
	}
	if *outPath != "" {
		cfg.Output.Path = *outPath
	}

	app, err := NewApp(cfg)
	if err != nil {
		slog.Error("failed to initialize app", "error", err)
		os.Exit(1)
	}
	defer app.Close()

	model, err := app.Generate()
	if err != nil {
		slog.Error("diagram generation failed", "error", err)
		os.Exit(1)
	}

	if !*ui {
		app.PrintSummary(model, cfg.Output.Path+".dot")
	}

	if !*watch && !*ui {
		return
	}

	if err := app.StartWatcher(); err != nil {
		slog.Error("failed to start watcher", "error", err)
		os.Exit(1)
	}

	if *metricsAddr != "" {
		obs := NewObservabilityServer(*metricsAddr)
		obs.Start()
		defer func() {
			if err := obs.Stop(); err != nil {
				slog.Warn("failed to stop observability server", "error", err)
			}
		}()
	}

	if *ui {
		if err := app.RunUI(); err != nil {
			slog.Error("failed to run UI", "error", err)
			os.Exit(1)
		}
	} else {
		// Block forever
		select {}
	}
}

func resolveLogPath() string {
	if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
		return filepath.Join(xdg, "code2uml", "code2uml.log")
	}

	home, err := os.UserHomeDir()
	if err == nil && home != "" {
		return filepath.Join(home, ".local", "state", "code2uml", "code2uml.log")
	}

	return "code2uml.log"
}
