package styles

import (
	"bytes"
	"strings"
	"testing"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name    string
		want    string
		wantErr bool
	}{
		{"", SimpleName, false},
		{"simple", SimpleName, false},
		{"outlined", OutlinedName, false},
		{"handdrawn", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Lookup(tt.name)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Lookup(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			}
			if err == nil && s.Name() != tt.want {
				t.Errorf("Lookup(%q).Name() = %q, want %q", tt.name, s.Name(), tt.want)
			}
			if Valid(tt.name) == tt.wantErr {
				t.Errorf("Valid(%q) = %v", tt.name, !tt.wantErr)
			}
		})
	}
}

func TestSimpleRenderBlock(t *testing.T) {
	var buf bytes.Buffer
	Simple{}.RenderBlock(&buf, Block{X: 10, Y: 20, W: 30, H: 40, Fill: "#abcdef"})

	want := `<rect class="block" x="10.00" y="20.00" width="30.00" height="40.00" fill="#abcdef"/>`
	if !strings.Contains(buf.String(), want) {
		t.Errorf("RenderBlock() = %q, want it to contain %q", buf.String(), want)
	}
}

func TestRenderLabel(t *testing.T) {
	tests := []struct {
		name  string
		style Style
		block Block
		want  []string
	}{
		{
			name:  "simple",
			style: Simple{},
			block: Block{Value: 42, X: 100, Y: 50, W: 20, H: 10},
			want:  []string{`x="140.00"`, `y="55.00"`, `text-anchor="start"`, `fill="black"`, `>42</text>`},
		},
		{
			name:  "fractional value",
			style: Outlined{},
			block: Block{Value: 12.75, W: 10, H: 10},
			want:  []string{`x="30.00"`, `y="5.00"`, `>12.75</text>`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.style.RenderLabel(&buf, tt.block)
			for _, w := range tt.want {
				if !strings.Contains(buf.String(), w) {
					t.Errorf("RenderLabel() = %q, missing %q", buf.String(), w)
				}
			}
		})
	}
}

func TestRenderLegendItem(t *testing.T) {
	var buf bytes.Buffer
	Simple{}.RenderLegendItem(&buf, LegendItem{Index: 3, Name: "R&D", Color: "#112233"})
	out := buf.String()

	for _, w := range []string{
		`translate(0, 48)`,
		`width="10" height="10" fill="#112233"`,
		`x="15" y="10"`,
		`>R&amp;D</text>`,
	} {
		if !strings.Contains(out, w) {
			t.Errorf("RenderLegendItem() = %q, missing %q", out, w)
		}
	}
}

func TestOutlinedDefs(t *testing.T) {
	var buf bytes.Buffer
	Outlined{}.RenderDefs(&buf)
	if !strings.Contains(buf.String(), `id="block-shadow"`) {
		t.Errorf("RenderDefs() = %q, want shadow filter", buf.String())
	}

	buf.Reset()
	Simple{}.RenderDefs(&buf)
	if buf.Len() != 0 {
		t.Errorf("Simple.RenderDefs() wrote %q", buf.String())
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{10, "10"},
		{0.5, "0.5"},
		{1e21, "1000000000000000000000"},
		{-3.25, "-3.25"},
	}
	for _, tt := range tests {
		if got := FormatValue(tt.in); got != tt.want {
			t.Errorf("FormatValue(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLegendOrigin(t *testing.T) {
	x, y := LegendOrigin(400, 100)
	if x != 290 || y != 10 {
		t.Errorf("LegendOrigin(400, 100) = (%v, %v), want (290, 10)", x, y)
	}
}

func TestEscapeXML(t *testing.T) {
	if got := EscapeXML(`<a & "b">`); got != "&lt;a &amp; &#34;b&#34;&gt;" {
		t.Errorf("EscapeXML() = %q", got)
	}
}
