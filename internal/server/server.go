// Package server exposes the chart pipeline over HTTP.
//
// Routes:
//
//	GET  /healthz               liveness probe
//	POST /v1/layout             computed layout as JSON
//	POST /v1/render/{format}    rendered artifact (svg, png, pdf or json)
//
// Request bodies share one shape:
//
//	{
//	  "data": [{"value": 50, "name": "Rent", "color": "#e15759"}],
//	  "stack_type": "stable-balanced",
//	  "options": {"width": 400, "height": 300, "seed": 42, "style": "outlined"}
//	}
//
// Every response carries an X-Render-ID header. Errors are returned as
// {"code": ..., "message": ...} with a status derived from the error code.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/matzehuels/blockchart/pkg/buildinfo"
	errs "github.com/matzehuels/blockchart/pkg/errors"
	"github.com/matzehuels/blockchart/pkg/observability"
	"github.com/matzehuels/blockchart/pkg/pipeline"
	"github.com/matzehuels/blockchart/pkg/render/blocks/layout"
	"github.com/matzehuels/blockchart/pkg/render/blocks/sink"
)

const (
	// HeaderRenderID identifies a pipeline run in responses and logs.
	HeaderRenderID = "X-Render-ID"

	maxBodyBytes    = 1 << 20
	shutdownTimeout = 5 * time.Second
)

// Server handles chart requests with a shared pipeline runner.
type Server struct {
	runner   *pipeline.Runner
	logger   *log.Logger
	defaults pipeline.Options
	router   chi.Router
}

// New creates a server. defaults supplies the options that requests leave
// unset; its Formats are ignored.
func New(runner *pipeline.Runner, logger *log.Logger, defaults pipeline.Options) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{runner: runner, logger: logger, defaults: defaults}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.observe)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/layout", s.handleLayout)
		r.Post("/render/{format}", s.handleRender)
	})

	s.router = r
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	s.logger.Info("listening", "addr", addr)

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	s.logger.Info("server stopped")
	return nil
}

// =============================================================================
// Requests
// =============================================================================

// chartRequest is the body accepted by the /v1 endpoints.
type chartRequest struct {
	Data      []layout.Datum `json:"data"`
	StackType string         `json:"stack_type,omitempty"`
	Options   chartOptions   `json:"options"`
}

type chartOptions struct {
	Width        float64 `json:"width,omitempty"`
	Height       float64 `json:"height,omitempty"`
	Seed         *uint64 `json:"seed,omitempty"`
	SizeMultiple float64 `json:"size_multiple,omitempty"`
	Style        string  `json:"style,omitempty"`
	NoLabels     *bool   `json:"no_labels,omitempty"`
	NoLegend     *bool   `json:"no_legend,omitempty"`
	Scale        float64 `json:"scale,omitempty"`
}

// decodeRequest reads a chart request and merges it over the server defaults.
func (s *Server) decodeRequest(w http.ResponseWriter, r *http.Request) ([]layout.Datum, pipeline.Options, error) {
	var req chartRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		return nil, pipeline.Options{}, errs.Wrap(errs.ErrCodeInvalidInput, err, "invalid request body")
	}

	d := s.defaults
	opts := pipeline.Options{
		StackType:    d.StackType,
		Width:        d.Width,
		Height:       d.Height,
		SizeMultiple: d.SizeMultiple,
		Seed:         d.Seed,
		Style:        d.Style,
		NoLabels:     d.NoLabels,
		NoLegend:     d.NoLegend,
		Scale:        d.Scale,
	}
	if req.StackType != "" {
		opts.StackType = req.StackType
	}
	o := req.Options
	if o.Width != 0 {
		opts.Width = o.Width
	}
	if o.Height != 0 {
		opts.Height = o.Height
	}
	if o.Seed != nil {
		opts.Seed = o.Seed
	}
	if o.SizeMultiple != 0 {
		opts.SizeMultiple = o.SizeMultiple
	}
	if o.Style != "" {
		opts.Style = o.Style
	}
	if o.NoLabels != nil {
		opts.NoLabels = *o.NoLabels
	}
	if o.NoLegend != nil {
		opts.NoLegend = *o.NoLegend
	}
	if o.Scale != 0 {
		opts.Scale = o.Scale
	}
	opts.Logger = s.logger
	return req.Data, opts, nil
}

// =============================================================================
// Handlers
// =============================================================================

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	data, opts, err := s.decodeRequest(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	res, err := s.runner.Layout(r.Context(), data, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	body, err := sink.RenderJSON(res, sink.WithJSONStyle(opts.Style))
	if err != nil {
		s.writeError(w, r, errs.Wrap(errs.ErrCodeInternal, err, "encode layout"))
		return
	}

	w.Header().Set(HeaderRenderID, uuid.NewString())
	w.Header().Set("Content-Type", pipeline.ContentTypes[pipeline.FormatJSON])
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	format := chi.URLParam(r, "format")
	if err := pipeline.ValidateFormat(format); err != nil {
		s.writeError(w, r, err)
		return
	}

	data, opts, err := s.decodeRequest(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	opts.Formats = []string{format}

	result, err := s.runner.Execute(r.Context(), data, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.logger.Debug("rendered chart",
		"id", result.ID,
		"format", format,
		"blocks", result.Stats.BlockCount,
		"layout_cached", result.CacheInfo.LayoutHit,
		"render_cached", result.CacheInfo.RenderHit)

	w.Header().Set(HeaderRenderID, result.ID.String())
	w.Header().Set("Content-Type", pipeline.ContentTypes[format])
	w.WriteHeader(http.StatusOK)
	w.Write(result.Artifacts[format])
}

// =============================================================================
// Responses
// =============================================================================

type errorResponse struct {
	Code    errs.Code `json:"code"`
	Message string    `json:"message"`
}

// writeError answers with the status for err. Messages of internal errors
// are not exposed.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := errs.HTTPStatus(err)
	resp := errorResponse{Code: errs.GetCode(err), Message: errs.UserMessage(err)}
	if resp.Code == "" {
		resp.Code = errs.ErrCodeInternal
	}
	if status >= http.StatusInternalServerError {
		resp.Message = http.StatusText(status)
		s.logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	}

	observability.HTTP().OnError(r.Context(), r.Method, r.URL.Path, err)
	w.Header().Set(HeaderRenderID, uuid.NewString())
	writeJSON(w, status, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// observe reports every request to the HTTP hooks and the access log.
func (s *Server) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		hooks := observability.HTTP()
		hooks.OnRequest(r.Context(), r.Method, r.URL.Path)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		d := time.Since(start)
		hooks.OnResponse(r.Context(), r.Method, r.URL.Path, status, d)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", status,
			"bytes", ww.BytesWritten(),
			"request_id", middleware.GetReqID(r.Context()),
			"duration", d)
	})
}
