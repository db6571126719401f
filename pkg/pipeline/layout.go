package pipeline

import (
	"go.uber.org/multierr"

	errs "github.com/matzehuels/blockchart/pkg/errors"
	"github.com/matzehuels/blockchart/pkg/render/blocks/layout"
)

// maxData bounds the number of values in one chart.
const maxData = 1000

// =============================================================================
// Data Validation
// =============================================================================

// ValidateData checks chart input before it reaches the engine. Every
// invalid value is reported, not just the first one.
func ValidateData(data []layout.Datum) error {
	if len(data) == 0 {
		return errs.New(errs.ErrCodeInvalidData, "data is empty")
	}
	if len(data) > maxData {
		return errs.New(errs.ErrCodeInvalidData, "too many values: %d (max %d)", len(data), maxData)
	}

	var err error
	for _, d := range data {
		err = multierr.Append(err, errs.ValidateDatum(d.Value, d.Name, d.Color))
	}
	if err == nil {
		return nil
	}
	if n := len(multierr.Errors(err)); n > 1 {
		return errs.Wrap(errs.ErrCodeInvalidData, err, "%d invalid values", n)
	}
	return err
}

// =============================================================================
// Layout Generation
// =============================================================================

// GenerateLayout validates data and options and computes the chart.
func GenerateLayout(data []layout.Datum, opts Options) (layout.Result, error) {
	if err := opts.ValidateForLayout(); err != nil {
		return layout.Result{}, err
	}
	if err := ValidateData(data); err != nil {
		return layout.Result{}, err
	}
	return layout.Build(data, layout.StackType(opts.StackType), opts.LayoutOptions()), nil
}
