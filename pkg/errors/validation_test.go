package errors

import (
	"math"
	"strings"
	"testing"
)

func TestValidateDatum(t *testing.T) {
	tests := []struct {
		name    string
		value   float64
		label   string
		color   string
		wantErr bool
	}{
		{"valid", 10, "rent", "", false},
		{"valid short color", 0.5, "food", "#abc", false},
		{"valid long color", 3, "savings", "#A0B1C2", false},

		{"zero", 0, "rent", "", true},
		{"negative", -1, "rent", "", true},
		{"nan", math.NaN(), "rent", "", true},
		{"inf", math.Inf(1), "rent", "", true},
		{"empty name", 1, "", "", true},
		{"blank name", 1, "   ", "", true},
		{"control char", 1, "a\x01b", "", true},
		{"long name", 1, strings.Repeat("x", 300), "", true},
		{"named color", 1, "rent", "red", true},
		{"missing hash", 1, "rent", "ff0000", true},
		{"four digits", 1, "rent", "#ff00", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDatum(tt.value, tt.label, tt.color)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDatum(%v, %q, %q) error = %v, wantErr %v", tt.value, tt.label, tt.color, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidData) {
				t.Errorf("code = %v, want %v", GetCode(err), ErrCodeInvalidData)
			}
		})
	}
}

func TestValidateDimensions(t *testing.T) {
	tests := []struct {
		name    string
		w, h    float64
		wantErr bool
	}{
		{"defaults", 0, 0, false},
		{"custom", 800, 600, false},
		{"negative width", -1, 300, true},
		{"nan height", 400, math.NaN(), true},
		{"too large", 400, 1e6, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDimensions(tt.w, tt.h)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDimensions(%v, %v) error = %v, wantErr %v", tt.w, tt.h, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"relative", "data/chart.json", false},
		{"absolute", "/tmp/chart.svg", false},
		{"parent dir", "../chart.yaml", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 5000), true},
		{"null byte", "chart\x00.json", true},
		{"newline", "chart\n.json", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateColor(t *testing.T) {
	for _, c := range []string{"#fff", "#123abc"} {
		if err := ValidateColor(c); err != nil {
			t.Errorf("ValidateColor(%q) = %v", c, err)
		}
	}
	for _, c := range []string{"", "fff", "#ggg", "blue"} {
		if err := ValidateColor(c); err == nil {
			t.Errorf("ValidateColor(%q) = nil, want error", c)
		}
	}
}
