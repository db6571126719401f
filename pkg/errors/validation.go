package errors

import (
	"math"
	"regexp"
	"strings"
	"unicode"
)

const (
	maxNameLength = 256
	maxPathLength = 4096
	maxDimension  = 10000
)

// colorRegex matches CSS hex colors in short (#rgb) or long (#rrggbb) form.
var colorRegex = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// ValidateDatum validates one chart value.
//
// The validation rules are:
//   - Value must be finite and strictly positive
//   - Name cannot be empty or longer than 256 characters
//   - Name cannot contain control characters
//   - Color is optional; when set it must be #rgb or #rrggbb
func ValidateDatum(value float64, name, color string) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return New(ErrCodeInvalidData, "value of %q must be a finite number", name)
	}
	if value <= 0 {
		return New(ErrCodeInvalidData, "value of %q must be positive, got %v", name, value)
	}
	if err := ValidateName(name); err != nil {
		return err
	}
	if color != "" && !colorRegex.MatchString(color) {
		return New(ErrCodeInvalidData, "color of %q must be #rgb or #rrggbb, got %q", name, color)
	}
	return nil
}

// ValidateName validates a block name used in labels and the legend.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return New(ErrCodeInvalidData, "name cannot be empty")
	}
	if len(name) > maxNameLength {
		return New(ErrCodeInvalidData, "name too long (max %d characters)", maxNameLength)
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidData, "name contains invalid control characters")
		}
	}
	return nil
}

// ValidateDimensions validates a canvas size. Zero means "use the default"
// and is accepted.
func ValidateDimensions(width, height float64) error {
	for _, d := range []struct {
		name string
		v    float64
	}{{"width", width}, {"height", height}} {
		if math.IsNaN(d.v) || math.IsInf(d.v, 0) || d.v < 0 {
			return New(ErrCodeInvalidInput, "%s must be a non-negative number", d.name)
		}
		if d.v > maxDimension {
			return New(ErrCodeInvalidInput, "%s too large (max %d)", d.name, maxDimension)
		}
	}
	return nil
}

// ValidatePath validates a local file path given on the command line or in
// a config file.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}
	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}
	return nil
}

// ValidateColor reports whether s is a #rgb or #rrggbb color.
func ValidateColor(s string) error {
	if !colorRegex.MatchString(s) {
		return New(ErrCodeInvalidData, "invalid color %q", s)
	}
	return nil
}
