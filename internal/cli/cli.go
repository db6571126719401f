// Package cli implements the blockchart command-line interface.
//
// This package provides commands for turning value lists into stacked block
// charts, previewing them in the terminal and serving the pipeline over HTTP.
// The CLI is built using cobra and logs via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - render: Generate SVG, PNG, PDF or JSON charts from a data file
//   - layout: Write the computed block geometry as JSON
//   - preview: Draw the chart as colored bars in the terminal
//   - serve: Run the HTTP API
//   - cache: Manage the local result cache
//
// # Configuration
//
// Settings are read from --config or ~/.config/blockchart/config.toml when
// present. Flags that are set explicitly override file values.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/blockchart/pkg/buildinfo"
	"github.com/matzehuels/blockchart/pkg/cache"
	"github.com/matzehuels/blockchart/pkg/config"
	"github.com/matzehuels/blockchart/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "blockchart"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config *config.Config

	out        io.Writer
	configPath string
}

// New creates a new CLI instance with a default logger and configuration.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Default(),
		out:    os.Stdout,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// SetOutput redirects command output (not logs).
func (c *CLI) SetOutput(w io.Writer) {
	c.out = w
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Blockchart draws values as a tower of stacked blocks",
		Long:         `Blockchart is a CLI tool for visualizing a list of values as stacked blocks whose areas are proportional to each value's share of the total.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.loadConfig()
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default: ~/.config/blockchart/config.toml)")

	// Register all subcommands
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())

	return root
}

// loadConfig reads the explicit or default config file.
func (c *CLI) loadConfig() error {
	if c.configPath != "" {
		cfg, err := config.Load(c.configPath)
		if err != nil {
			return err
		}
		c.Config = cfg
		c.Logger.Debug("loaded config", "path", c.configPath)
		return nil
	}

	cfg, path, err := config.LoadDefault()
	if err != nil {
		return err
	}
	c.Config = cfg
	if path != "" {
		c.Logger.Debug("loaded config", "path", path)
	}
	return nil
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(ctx context.Context, noCache bool) (*pipeline.Runner, error) {
	cache, err := c.newCache(ctx, noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(cache, nil, c.Logger), nil
}

// newCache selects the cache backend: Redis when configured, otherwise a
// local file cache. Caching is off with --no-cache or cache.enabled = false.
func (c *CLI) newCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	cfg := c.Config.Cache
	if noCache || !cfg.Enabled {
		return cache.NewNullCache(), nil
	}

	if cfg.RedisURL != "" {
		rc, err := cache.NewRedisCache(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		if err := rc.Ping(ctx); err != nil {
			rc.Close()
			return nil, fmt.Errorf("ping redis: %w", err)
		}
		return rc, nil
	}

	dir, err := c.cacheDir()
	if err != nil {
		c.Logger.Warn("caching disabled", "error", err)
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the configured cache directory, falling back to the XDG
// standard (~/.cache/blockchart/).
func (c *CLI) cacheDir() (string, error) {
	if c.Config.Cache.Dir != "" {
		return c.Config.Cache.Dir, nil
	}
	return defaultCacheDir()
}

func defaultCacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// =============================================================================
// Options Helpers
// =============================================================================

// chartFlags holds the layout and render flags shared by several commands.
type chartFlags struct {
	stackType    string
	width        float64
	height       float64
	sizeMultiple float64
	seed         uint64
	formats      string
	style        string
	noLabels     bool
	noLegend     bool
	scale        float64
}

// register adds the layout flags, and the render flags when render is true.
func (f *chartFlags) register(cmd *cobra.Command, render bool) {
	cmd.Flags().StringVar(&f.stackType, "stack", pipeline.DefaultStackType, "stack type: stable-balanced (default), unstable-inverted, shuffled")
	cmd.Flags().Float64Var(&f.width, "width", pipeline.DefaultWidth, "canvas width")
	cmd.Flags().Float64Var(&f.height, "height", pipeline.DefaultHeight, "canvas height")
	cmd.Flags().Float64Var(&f.sizeMultiple, "size-multiple", pipeline.DefaultSizeMultiple, "area per percent of the total")
	cmd.Flags().Uint64Var(&f.seed, "seed", 0, "random seed for a reproducible chart (default: random)")
	if !render {
		return
	}
	cmd.Flags().StringVarP(&f.formats, "format", "f", "", "output format(s): svg (default), json, pdf, png (comma-separated)")
	cmd.Flags().StringVar(&f.style, "style", pipeline.DefaultStyle, "visual style: simple (default), outlined")
	cmd.Flags().BoolVar(&f.noLabels, "no-labels", false, "hide value labels")
	cmd.Flags().BoolVar(&f.noLegend, "no-legend", false, "hide the legend")
	cmd.Flags().Float64Var(&f.scale, "scale", pipeline.DefaultScale, "PNG scale factor")
}

// options starts from the config file and applies the flags the user set.
func (c *CLI) options(cmd *cobra.Command, f *chartFlags) pipeline.Options {
	opts := c.Config.PipelineOptions()
	changed := cmd.Flags().Changed

	if changed("stack") {
		opts.StackType = f.stackType
	}
	if changed("width") {
		opts.Width = f.width
	}
	if changed("height") {
		opts.Height = f.height
	}
	if changed("size-multiple") {
		opts.SizeMultiple = f.sizeMultiple
	}
	if changed("seed") {
		seed := f.seed
		opts.Seed = &seed
	}
	if changed("format") {
		opts.Formats = parseFormats(f.formats)
	}
	if changed("style") {
		opts.Style = f.style
	}
	if changed("no-labels") {
		opts.NoLabels = f.noLabels
	}
	if changed("no-legend") {
		opts.NoLegend = f.noLegend
	}
	if changed("scale") {
		opts.Scale = f.scale
	}
	opts.Logger = c.Logger
	return opts
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	formats := strings.Split(s, ",")
	for i, f := range formats {
		formats[i] = strings.TrimSpace(f)
	}
	return formats
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input.
// If output has a format extension (.svg, .pdf, etc.), it strips that extension.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}
