// Package pipeline provides the chart pipeline for blockchart.
//
// This package implements the complete validate → layout → render pipeline
// used by the CLI and the HTTP server. By centralizing this logic, both entry
// points apply the same defaults, validation and caching.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Layout: Validate the data and compute block geometry with
//     [layout.Build]
//  2. Render: Generate output in various formats (SVG, PNG, PDF, JSON)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    StackType: "stable-balanced",
//	    Seed:      layout.Seed(42),
//	    Formats:   []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, data, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Run individual stages:
//
//	// Layout only
//	res, err := runner.Layout(ctx, data, opts)
//
//	// Render an existing layout
//	artifacts, err := runner.Render(ctx, res, opts)
package pipeline

import (
	"io"
	"slices"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/blockchart/pkg/cache"
	errs "github.com/matzehuels/blockchart/pkg/errors"
	"github.com/matzehuels/blockchart/pkg/render/blocks/layout"
	"github.com/matzehuels/blockchart/pkg/render/blocks/styles"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	DefaultStackType    = string(layout.StableBalanced)
	DefaultWidth        = layout.DefaultWidth
	DefaultHeight       = layout.DefaultHeight
	DefaultSizeMultiple = layout.DefaultSizeMultiple
	DefaultStyle        = styles.SimpleName
	DefaultScale        = 2.0

	maxScale = 8.0
)

// =============================================================================
// Output Formats
// =============================================================================

const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// ValidFormats lists the supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
}

// ContentTypes maps output formats to their MIME types.
var ContentTypes = map[string]string{
	FormatSVG:  "image/svg+xml",
	FormatPNG:  "image/png",
	FormatPDF:  "application/pdf",
	FormatJSON: "application/json",
}

// =============================================================================
// Types
// =============================================================================

// Options configures a pipeline run. Zero values take the defaults above.
type Options struct {
	// Layout options
	StackType    string  `json:"stack_type,omitempty"`
	Width        float64 `json:"width,omitempty"`
	Height       float64 `json:"height,omitempty"`
	SizeMultiple float64 `json:"size_multiple,omitempty"`
	Seed         *uint64 `json:"seed,omitempty"` // nil selects ambient randomness

	// Render options
	Formats  []string `json:"formats,omitempty"`
	Style    string   `json:"style,omitempty"`
	NoLabels bool     `json:"no_labels,omitempty"` // Hide value labels (default: false = show)
	NoLegend bool     `json:"no_legend,omitempty"` // Hide the legend (default: false = show)
	Scale    float64  `json:"scale,omitempty"`     // PNG scale factor

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// ID identifies this run in logs and HTTP responses.
	ID uuid.UUID

	// DataHash is the content hash of the input data.
	DataHash string

	// Layout is the computed chart.
	Layout layout.Result

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	BlockCount int
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LayoutHit bool // Whether the layout came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errs.New(errs.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, png, pdf, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateStyle checks that a style is valid.
func ValidateStyle(style string) error {
	if style == "" || !styles.Valid(style) {
		return errs.New(errs.ErrCodeInvalidStyle, "invalid style: %q (must be one of: %v)", style, styles.Names())
	}
	return nil
}

// ValidateStackType checks that a stack type is valid.
func ValidateStackType(stackType string) error {
	if !layout.StackType(stackType).Valid() {
		return errs.New(errs.ErrCodeInvalidStackType, "invalid stack_type: %q (must be one of: %v)", stackType, layout.StackTypes())
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks every field and applies defaults for the full
// pipeline. This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// SetLayoutDefaults sets default values for layout computation.
func (o *Options) SetLayoutDefaults() {
	if o.StackType == "" {
		o.StackType = DefaultStackType
	}
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.SizeMultiple == 0 {
		o.SizeMultiple = DefaultSizeMultiple
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForLayout validates and sets defaults for layout computation.
func (o *Options) ValidateForLayout() error {
	o.SetLayoutDefaults()
	if err := ValidateStackType(o.StackType); err != nil {
		return err
	}
	if err := errs.ValidateDimensions(o.Width, o.Height); err != nil {
		return err
	}
	if o.SizeMultiple < 0 {
		return errs.New(errs.ErrCodeInvalidInput, "size_multiple must be positive, got %v", o.SizeMultiple)
	}
	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Style == "" {
		o.Style = DefaultStyle
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	if err := o.ValidateForLayout(); err != nil {
		return err
	}
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if err := ValidateStyle(o.Style); err != nil {
		return err
	}
	if o.Scale < 0 || o.Scale > maxScale {
		return errs.New(errs.ErrCodeInvalidInput, "scale must be in (0, %v], got %v", maxScale, o.Scale)
	}
	return nil
}

// Seeded reports whether the layout is reproducible.
func (o *Options) Seeded() bool {
	return o.Seed != nil
}

// WantsFormat reports whether format is among the requested outputs.
func (o *Options) WantsFormat(format string) bool {
	return slices.Contains(o.Formats, format)
}

// LayoutOptions converts the pipeline options into engine options.
func (o *Options) LayoutOptions() layout.Options {
	return layout.Options{
		Width:        o.Width,
		Height:       o.Height,
		SizeMultiple: o.SizeMultiple,
		Seed:         o.Seed,
	}
}

// LayoutKeyOpts returns cache key options for layout computation.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	var seed uint64
	if o.Seed != nil {
		seed = *o.Seed
	}
	return cache.LayoutKeyOpts{
		StackType:    o.StackType,
		Width:        o.Width,
		Height:       o.Height,
		SizeMultiple: o.SizeMultiple,
		Seed:         seed,
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	k := cache.ArtifactKeyOpts{
		Format: format,
		Style:  o.Style,
		Labels: !o.NoLabels,
		Legend: !o.NoLegend,
	}
	if format == FormatPNG {
		k.Scale = o.Scale
	}
	return k
}
