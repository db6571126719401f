package pipeline

import (
	"fmt"

	errs "github.com/matzehuels/blockchart/pkg/errors"
	"github.com/matzehuels/blockchart/pkg/render/blocks/layout"
	"github.com/matzehuels/blockchart/pkg/render/blocks/sink"
	"github.com/matzehuels/blockchart/pkg/render/blocks/styles"
)

// Render generates output artifacts in the requested formats.
func Render(res layout.Result, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}

	svgOpts, err := buildSVGOptions(opts)
	if err != nil {
		return nil, err
	}
	artifacts := make(map[string][]byte, len(opts.Formats))

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data = sink.RenderSVG(res, svgOpts...)
		case FormatPNG:
			data, err = sink.RenderPNG(res,
				sink.WithPNGSVGOptions(svgOpts...),
				sink.WithScale(opts.Scale))
		case FormatPDF:
			data, err = sink.RenderPDF(res,
				sink.WithPDFLabels(!opts.NoLabels),
				sink.WithPDFLegend(!opts.NoLegend),
				sink.WithPDFTitle(pdfTitle(res)))
		case FormatJSON:
			data, err = sink.RenderJSON(res, sink.WithJSONStyle(opts.Style))
		default:
			return nil, errs.New(errs.ErrCodeUnsupported, "unsupported format: %s", format)
		}

		if err != nil {
			return nil, errs.Wrap(errs.ErrCodeInternal, err, "render %s", format)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

// buildSVGOptions builds SVG rendering options. PNG output reuses them.
func buildSVGOptions(opts Options) ([]sink.SVGOption, error) {
	style, err := styles.Lookup(opts.Style)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidStyle, err, "invalid style")
	}
	return []sink.SVGOption{
		sink.WithStyle(style),
		sink.WithLabels(!opts.NoLabels),
		sink.WithLegend(!opts.NoLegend),
	}, nil
}

func pdfTitle(res layout.Result) string {
	if res.StackType == "" {
		return "blockchart"
	}
	return fmt.Sprintf("blockchart (%s)", res.StackType)
}
