package io

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	errs "github.com/matzehuels/blockchart/pkg/errors"
	"github.com/matzehuels/blockchart/pkg/render/blocks/layout"
)

// Format identifies a chart data encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// Formats lists the supported data formats.
func Formats() []Format { return []Format{FormatJSON, FormatTOML, FormatYAML} }

// FormatFromPath picks the data format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", errs.New(errs.ErrCodeInvalidFormat, "cannot infer data format from %q (want .json, .toml, .yaml or .yml)", path)
}

// document is the keyed form shared by all formats: {"data": [...]}.
type document struct {
	Data []layout.Datum `json:"data" toml:"data" yaml:"data"`
}

// ReadData decodes chart values from r.
//
// JSON and YAML accept either a bare list of values or a document with a
// top-level "data" list. TOML only has the document form, written as an
// array of tables:
//
//	[[data]]
//	name = "Rent"
//	value = 30
//	color = "#4e79a7"
//
// Unknown keys are rejected so that typos such as "vaule" do not silently
// produce zero values. Decode failures carry the INVALID_DATA code.
// ReadData does not validate the values themselves and does not close r.
func ReadData(r io.Reader, format Format) ([]layout.Datum, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}

	var data []layout.Datum
	switch format {
	case FormatJSON:
		data, err = decodeJSON(raw)
	case FormatTOML:
		data, err = decodeTOML(raw)
	case FormatYAML:
		data, err = decodeYAML(raw)
	default:
		return nil, errs.New(errs.ErrCodeInvalidFormat, "unsupported data format %q", format)
	}
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidData, err, "decode %s", format)
	}
	return data, nil
}

// ImportData reads the data file at path, picking the format from its
// extension. A missing file is reported with the FILE_NOT_FOUND code.
func ImportData(path string) ([]layout.Datum, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errs.Wrap(errs.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	data, err := ReadData(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return data, nil
}

func decodeJSON(raw []byte) ([]layout.Datum, error) {
	trimmed := bytes.TrimSpace(raw)
	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.DisallowUnknownFields()

	if bytes.HasPrefix(trimmed, []byte("[")) {
		var data []layout.Datum
		if err := dec.Decode(&data); err != nil {
			return nil, err
		}
		return data, nil
	}
	var doc document
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	return doc.Data, nil
}

func decodeTOML(raw []byte) ([]layout.Datum, error) {
	var doc document
	md, err := toml.NewDecoder(bytes.NewReader(raw)).Decode(&doc)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown keys: %v", undecoded)
	}
	return doc.Data, nil
}

func decodeYAML(raw []byte) ([]layout.Datum, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(raw, &node); err != nil {
		return nil, err
	}
	if len(node.Content) == 0 {
		return nil, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)

	if node.Content[0].Kind == yaml.SequenceNode {
		var data []layout.Datum
		if err := dec.Decode(&data); err != nil {
			return nil, err
		}
		return data, nil
	}
	var doc document
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	return doc.Data, nil
}
