package io

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/multierr"

	"github.com/matzehuels/blockchart/pkg/render/blocks/layout"
	"github.com/matzehuels/blockchart/pkg/render/blocks/sink"
)

// WriteLayout encodes a computed chart as JSON and writes it to w.
// The output is the JSON sink format and can be read back with
// [sink.ReadJSON] for re-rendering.
func WriteLayout(w io.Writer, res layout.Result, opts ...sink.JSONOption) error {
	data, err := sink.RenderJSON(res, opts...)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

// ExportLayout writes a computed chart as JSON to the file at path,
// creating or truncating it.
func ExportLayout(path string, res layout.Result, opts ...sink.JSONOption) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer multierr.AppendInvoke(&err, multierr.Close(f))
	return WriteLayout(f, res, opts...)
}
