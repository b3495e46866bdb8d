// # internal/config/config.go
package config

import (
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	SourcePath string  `toml:"source_path"`
	OwnPackage string  `toml:"own_package"`
	Indent     string  `toml:"indent"`
	Output     Output  `toml:"output"`
	Exclude    Exclude `toml:"exclude"`
	Watch      Watch   `toml:"watch"`
	History    History `toml:"history"`
}

type Output struct {
	// Path of the diagram file, without extension; the writer appends .dot.
	Path string `toml:"path"`
	// RepresentativePolicy selects the edge endpoint for modules that have
	// both classes and functions: "functions-first" (default) or
	// "classes-first".
	RepresentativePolicy string `toml:"representative_policy"`
}

type Exclude struct {
	Dirs  []string `toml:"dirs"`
	Files []string `toml:"files"`
}

type Watch struct {
	Debounce time.Duration `toml:"debounce"`
	// RescansPerSecond caps how often file events may trigger a full
	// regeneration; bursts up to RescanBurst are allowed.
	RescansPerSecond float64 `toml:"rescans_per_second"`
	RescanBurst      int     `toml:"rescan_burst"`
}

type History struct {
	// Path of the sqlite database recording one snapshot per render.
	// Empty disables history.
	Path string `toml:"path"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	return &cfg, nil
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (cfg *Config) applyDefaults() {
	if cfg.SourcePath == "" {
		cfg.SourcePath = "."
	}
	if cfg.Indent == "" {
		cfg.Indent = "    "
	}
	if cfg.Output.Path == "" {
		cfg.Output.Path = "diagram"
	}
	if cfg.Output.RepresentativePolicy == "" {
		cfg.Output.RepresentativePolicy = "functions-first"
	}
	if cfg.Watch.Debounce == 0 {
		cfg.Watch.Debounce = 500 * time.Millisecond
	}
	if cfg.Watch.RescansPerSecond == 0 {
		cfg.Watch.RescansPerSecond = 1
	}
	if cfg.Watch.RescanBurst == 0 {
		cfg.Watch.RescanBurst = 2
	}
}
