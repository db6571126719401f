package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/blockchart/pkg/cache"
	errs "github.com/matzehuels/blockchart/pkg/errors"
	"github.com/matzehuels/blockchart/pkg/pipeline"
)

const sampleBody = `{
	"data": [
		{"value": 50, "name": "Rent", "color": "#ff0000"},
		{"value": 30, "name": "Food", "color": "#00ff00"},
		{"value": 20, "name": "Savings", "color": "#0000ff"}
	],
	"stack_type": "unstable-inverted",
	"options": {"seed": 42}
}`

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	logger := log.NewWithOptions(io.Discard, log.Options{})
	srv := httptest.NewServer(New(pipeline.NewRunner(c, nil, logger), logger, pipeline.Options{}))
	t.Cleanup(srv.Close)
	return srv
}

func post(t *testing.T, srv *httptest.Server, path, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(srv.URL+path, "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST %s: %v", path, err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func readBody(t *testing.T, resp *http.Response) []byte {
	t.Helper()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return data
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body["status"] != "ok" {
		t.Errorf("status field = %q, want ok", body["status"])
	}
}

func TestLayout(t *testing.T) {
	srv := newTestServer(t)
	resp := post(t, srv, "/v1/layout", sampleBody)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, body %s", resp.StatusCode, readBody(t, resp))
	}
	if _, err := uuid.Parse(resp.Header.Get(HeaderRenderID)); err != nil {
		t.Errorf("%s = %q is not a UUID", HeaderRenderID, resp.Header.Get(HeaderRenderID))
	}

	var out struct {
		StackType string `json:"stack_type"`
		Seed      uint64 `json:"seed"`
		Blocks    []struct {
			Name string `json:"name"`
		} `json:"blocks"`
	}
	if err := json.Unmarshal(readBody(t, resp), &out); err != nil {
		t.Fatal(err)
	}
	if out.StackType != "unstable-inverted" || out.Seed != 42 {
		t.Errorf("stack_type = %q, seed = %d", out.StackType, out.Seed)
	}
	if len(out.Blocks) != 3 || out.Blocks[0].Name != "Rent" {
		t.Errorf("blocks = %+v, want Rent on top", out.Blocks)
	}
}

func TestLayoutIsReproducible(t *testing.T) {
	srv := newTestServer(t)
	first := readBody(t, post(t, srv, "/v1/layout", sampleBody))
	second := readBody(t, post(t, srv, "/v1/layout", sampleBody))
	if !bytes.Equal(first, second) {
		t.Error("seeded layouts should be identical")
	}
}

func TestRender(t *testing.T) {
	tests := []struct {
		format      string
		contentType string
		prefix      string
	}{
		{"svg", "image/svg+xml", "<svg"},
		{"png", "image/png", "\x89PNG"},
		{"pdf", "application/pdf", "%PDF"},
		{"json", "application/json", "{"},
	}

	srv := newTestServer(t)
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			resp := post(t, srv, "/v1/render/"+tt.format, sampleBody)
			body := readBody(t, resp)

			if resp.StatusCode != http.StatusOK {
				t.Fatalf("status = %d, body %s", resp.StatusCode, body)
			}
			if got := resp.Header.Get("Content-Type"); got != tt.contentType {
				t.Errorf("Content-Type = %q, want %q", got, tt.contentType)
			}
			if !bytes.HasPrefix(body, []byte(tt.prefix)) {
				t.Errorf("body should start with %q", tt.prefix)
			}
		})
	}
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		body   string
		status int
		code   errs.Code
	}{
		{"unknown format", "/v1/render/gif", sampleBody, http.StatusBadRequest, errs.ErrCodeInvalidFormat},
		{"malformed json", "/v1/layout", `{"data": [`, http.StatusBadRequest, errs.ErrCodeInvalidInput},
		{"unknown field", "/v1/layout", `{"data": [], "colour": "red"}`, http.StatusBadRequest, errs.ErrCodeInvalidInput},
		{"empty data", "/v1/layout", `{"data": []}`, http.StatusBadRequest, errs.ErrCodeInvalidData},
		{"negative value", "/v1/render/svg", `{"data": [{"value": -1, "name": "x"}]}`, http.StatusBadRequest, errs.ErrCodeInvalidData},
		{"bad stack", "/v1/layout", `{"data": [{"value": 1, "name": "x"}], "stack_type": "pyramid"}`, http.StatusBadRequest, errs.ErrCodeInvalidStackType},
		{"bad style", "/v1/render/svg", `{"data": [{"value": 1, "name": "x"}], "options": {"style": "fancy"}}`, http.StatusBadRequest, errs.ErrCodeInvalidStyle},
	}

	srv := newTestServer(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := post(t, srv, tt.path, tt.body)
			if resp.StatusCode != tt.status {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.status)
			}
			var body errorResponse
			if err := json.Unmarshal(readBody(t, resp), &body); err != nil {
				t.Fatal(err)
			}
			if body.Code != tt.code {
				t.Errorf("code = %q, want %q (%s)", body.Code, tt.code, body.Message)
			}
		})
	}
}

func TestRoutes(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/v1/layout")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("GET /v1/layout status = %d, want 405", resp.StatusCode)
	}

	resp = post(t, srv, "/v2/layout", sampleBody)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("POST /v2/layout status = %d, want 404", resp.StatusCode)
	}
}

func TestDefaultsApply(t *testing.T) {
	logger := log.NewWithOptions(io.Discard, log.Options{})
	s := New(pipeline.NewRunner(nil, nil, logger), logger, pipeline.Options{Width: 800, Style: "outlined"})

	req := httptest.NewRequest(http.MethodPost, "/v1/render/svg", strings.NewReader(`{"data": [{"value": 1, "name": "x"}]}`))
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}
	svg := rec.Body.String()
	if !strings.Contains(svg, `width="800"`) {
		t.Error("default width should apply")
	}
	if !strings.Contains(svg, "block-shadow") {
		t.Error("default style should apply")
	}
}
