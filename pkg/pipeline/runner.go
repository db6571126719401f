package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/blockchart/pkg/cache"
	"github.com/matzehuels/blockchart/pkg/observability"
	"github.com/matzehuels/blockchart/pkg/render/blocks/layout"
	"github.com/matzehuels/blockchart/pkg/render/blocks/sink"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete layout → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, data []layout.Datum, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{ID: uuid.New()}
	logger := opts.Logger.With("id", result.ID)

	// Stage 1: Layout
	layoutStart := time.Now()
	res, layoutHit, err := r.LayoutWithCacheInfo(ctx, data, opts)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Layout = res
	result.DataHash, _ = cache.HashJSON(data)
	result.Stats.BlockCount = len(res.Blocks)
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.CacheInfo.LayoutHit = layoutHit

	logger.Info("computed layout",
		"blocks", len(res.Blocks),
		"stack", res.StackType,
		"cached", layoutHit,
		"duration", result.Stats.LayoutTime)

	// Stage 2: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, res, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", renderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// LayoutWithCacheInfo computes a layout with caching and returns cache hit
// info. Only seeded layouts are cached: an ambient layout is different on
// every call.
func (r *Runner) LayoutWithCacheInfo(ctx context.Context, data []layout.Datum, opts Options) (res layout.Result, hit bool, err error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForLayout(); err != nil {
		return layout.Result{}, false, err
	}

	hooks := observability.Pipeline()
	start := time.Now()
	hooks.OnLayoutStart(ctx, opts.StackType, len(data))
	defer func() { hooks.OnLayoutComplete(ctx, opts.StackType, time.Since(start), err) }()

	var cacheKey string
	if opts.Seeded() {
		dataHash, err := cache.HashJSON(data)
		if err != nil {
			return layout.Result{}, false, fmt.Errorf("hash data: %w", err)
		}
		cacheKey = r.Keyer.LayoutKey(dataHash, opts.LayoutKeyOpts())

		if cached, ok := r.cachedLayout(ctx, cacheKey); ok {
			return cached, true, nil // Cache hit
		}
	}

	res, err = GenerateLayout(data, opts)
	if err != nil {
		return layout.Result{}, false, err
	}

	if cacheKey != "" {
		if encoded, err := sink.RenderJSON(res); err == nil {
			r.store(ctx, "layout", cacheKey, encoded, cache.LayoutTTL)
		}
	}

	return res, false, nil // Cache miss
}

// Layout is a convenience wrapper that calls LayoutWithCacheInfo and discards the cache hit info.
func (r *Runner) Layout(ctx context.Context, data []layout.Datum, opts Options) (layout.Result, error) {
	res, _, err := r.LayoutWithCacheInfo(ctx, data, opts)
	return res, err
}

// RenderWithCacheInfo generates artifacts with caching and returns cache hit info.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, res layout.Result, opts Options) (artifacts map[string][]byte, hit bool, err error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}

	hooks := observability.Pipeline()
	start := time.Now()
	hooks.OnRenderStart(ctx, opts.Formats)
	defer func() { hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err) }()

	// Compute cache key from layout data
	layoutData, err := sink.RenderJSON(res)
	if err != nil {
		return nil, false, fmt.Errorf("serialize layout for cache key: %w", err)
	}
	layoutHash := cache.Hash(layoutData)

	// Try to get all formats from cache
	artifacts = make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		data, ok := r.lookup(ctx, "artifact", r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format)))
		if !ok {
			break
		}
		artifacts[format] = data
	}
	if len(artifacts) == len(opts.Formats) {
		return artifacts, true, nil // All artifacts from cache
	}

	// Render all formats
	rendered, err := Render(res, opts)
	if err != nil {
		return nil, false, err
	}

	// Cache each format
	for format, data := range rendered {
		r.store(ctx, "artifact", r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format)), data, cache.ArtifactTTL)
	}

	return rendered, false, nil // Cache miss
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and discards the cache hit info.
func (r *Runner) Render(ctx context.Context, res layout.Result, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, res, opts)
	return artifacts, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func (r *Runner) cachedLayout(ctx context.Context, key string) (layout.Result, bool) {
	data, ok := r.lookup(ctx, "layout", key)
	if !ok {
		return layout.Result{}, false
	}
	res, err := sink.ReadJSON(data)
	if err != nil {
		// If deserialization fails, fall through to recompute
		r.Logger.Debug("discarding unreadable cached layout", "error", err)
		return layout.Result{}, false
	}
	return res, true
}

// lookup reads key from the cache. Backend errors count as misses so that a
// broken cache never fails a run.
func (r *Runner) lookup(ctx context.Context, keyType, key string) ([]byte, bool) {
	data, ok, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Warn("cache read failed", "type", keyType, "error", err)
	}
	if err != nil || !ok {
		observability.Cache().OnCacheMiss(ctx, keyType)
		return nil, false
	}
	observability.Cache().OnCacheHit(ctx, keyType)
	return data, true
}

func (r *Runner) store(ctx context.Context, keyType, key string, data []byte, ttl time.Duration) {
	if err := r.Cache.Set(ctx, key, data, ttl); err != nil {
		r.Logger.Warn("cache write failed", "type", keyType, "error", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, keyType, len(data))
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
