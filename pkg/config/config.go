// Package config loads blockchart settings from a TOML file.
//
// A configuration file looks like:
//
//	[chart]
//	width = 600
//	height = 400
//	seed = 42
//	stack_type = "shuffled"
//	labels = false
//
//	[render]
//	formats = ["svg", "png"]
//	style = "outlined"
//	scale = 3
//
//	[cache]
//	enabled = true
//	redis_url = "redis://localhost:6379/0"
//
//	[server]
//	addr = ":9090"
//
// Keys that are absent keep their defaults; unknown keys are rejected.
// Command-line flags override file values.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	errs "github.com/matzehuels/blockchart/pkg/errors"
	"github.com/matzehuels/blockchart/pkg/pipeline"
)

const (
	appName  = "blockchart"
	fileName = "config.toml"

	DefaultAddr = ":8080"
)

// Config is the full set of file settings.
type Config struct {
	Chart  Chart  `toml:"chart"`
	Render Render `toml:"render"`
	Cache  Cache  `toml:"cache"`
	Server Server `toml:"server"`
}

// Chart holds layout settings.
type Chart struct {
	Width        float64 `toml:"width"`
	Height       float64 `toml:"height"`
	Seed         *uint64 `toml:"seed"`
	SizeMultiple float64 `toml:"size_multiple"`
	StackType    string  `toml:"stack_type"`
	Labels       bool    `toml:"labels"`
	Legend       bool    `toml:"legend"`
}

// Render holds output settings.
type Render struct {
	Formats []string `toml:"formats"`
	Style   string   `toml:"style"`
	Scale   float64  `toml:"scale"`
}

// Cache selects the cache backend. RedisURL takes precedence over Dir.
type Cache struct {
	Enabled  bool   `toml:"enabled"`
	Dir      string `toml:"dir"`
	RedisURL string `toml:"redis_url"`
}

// Server holds HTTP server settings.
type Server struct {
	Addr string `toml:"addr"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Chart: Chart{
			Width:        pipeline.DefaultWidth,
			Height:       pipeline.DefaultHeight,
			SizeMultiple: pipeline.DefaultSizeMultiple,
			StackType:    pipeline.DefaultStackType,
			Labels:       true,
			Legend:       true,
		},
		Render: Render{
			Formats: []string{pipeline.FormatSVG},
			Style:   pipeline.DefaultStyle,
			Scale:   pipeline.DefaultScale,
		},
		Cache:  Cache{Enabled: true},
		Server: Server{Addr: DefaultAddr},
	}
}

// Load reads the file at path on top of [Default]. An empty path returns
// the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if err := errs.ValidatePath(path); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, errs.Wrap(errs.ErrCodeFileNotFound, err, "config file %s not found", path)
	}
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInternal, err, "read config file %s", path)
	}

	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidInput, err, "parse config file %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errs.New(errs.ErrCodeInvalidInput, "config file %s: unknown key %q", path, undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return nil, errs.Wrap(errs.GetCode(err), err, "config file %s", path)
	}
	return cfg, nil
}

// LoadDefault loads the file at [DefaultPath] if it exists and returns the
// defaults otherwise. The returned path is empty when no file was read.
func LoadDefault() (*Config, string, error) {
	path, err := DefaultPath()
	if err != nil {
		return Default(), "", nil
	}
	if _, err := os.Stat(path); err != nil {
		return Default(), "", nil
	}
	cfg, err := Load(path)
	if err != nil {
		return nil, path, err
	}
	return cfg, path, nil
}

// DefaultPath returns the config file location using the XDG standard
// (~/.config/blockchart/config.toml).
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, fileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, fileName), nil
}

// Validate checks the settings that the pipeline would otherwise reject at
// run time.
func (c *Config) Validate() error {
	opts := c.PipelineOptions()
	return opts.ValidateAndSetDefaults()
}

// PipelineOptions converts the file settings into pipeline options.
func (c *Config) PipelineOptions() pipeline.Options {
	opts := pipeline.Options{
		StackType:    c.Chart.StackType,
		Width:        c.Chart.Width,
		Height:       c.Chart.Height,
		SizeMultiple: c.Chart.SizeMultiple,
		Formats:      append([]string(nil), c.Render.Formats...),
		Style:        c.Render.Style,
		NoLabels:     !c.Chart.Labels,
		NoLegend:     !c.Chart.Legend,
		Scale:        c.Render.Scale,
	}
	if c.Chart.Seed != nil {
		seed := *c.Chart.Seed
		opts.Seed = &seed
	}
	return opts
}
