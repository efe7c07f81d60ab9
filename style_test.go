package sketchpad

import (
	"errors"
	"testing"

	"github.com/gogpu/gg"
)

func TestParseTool(t *testing.T) {
	tests := []struct {
		in      string
		want    Tool
		wantErr bool
	}{
		{"brush", ToolBrush, false},
		{"Eraser", ToolEraser, false},
		{" line ", ToolLine, false},
		{"circle", ToolCircle, false},
		{"rectangle", ToolRectangle, false},
		{"rect", ToolRectangle, false},
		{"spray", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTool(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidStyle) {
					t.Errorf("ParseTool(%q) error = %v, want ErrInvalidStyle", tt.in, err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("ParseTool(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
			}
		})
	}
}

func TestToolString(t *testing.T) {
	for tool := ToolBrush; tool <= ToolRectangle; tool++ {
		back, err := ParseTool(tool.String())
		if err != nil || back != tool {
			t.Errorf("ParseTool(%q) = %v, %v", tool.String(), back, err)
		}
	}
	if got := Tool(9).String(); got != "Tool(9)" {
		t.Errorf("Tool(9).String() = %q", got)
	}
	if !ToolEraser.Freehand() || ToolLine.Freehand() {
		t.Error("Freehand() misclassifies tools")
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"#ff0000", "#ff0000", false},
		{"#FFA500", "#ffa500", false},
		{"800080", "#800080", false},
		{"#0f0", "#00ff00", false},
		{"#12345", "", true},
		{"#gg0000", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c, err := ParseColor(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseColor(%q) error = nil", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseColor(%q) error = %v", tt.in, err)
			}
			if got := FormatColor(c); got != tt.want {
				t.Errorf("FormatColor(ParseColor(%q)) = %q, want %q", tt.in, got, tt.want)
			}
			if c.A != 1 {
				t.Errorf("alpha = %v, want 1", c.A)
			}
		})
	}
}

func TestPaletteParses(t *testing.T) {
	if len(Palette) != 10 {
		t.Fatalf("len(Palette) = %d, want 10", len(Palette))
	}
	for _, hex := range Palette {
		if _, err := ParseColor(hex); err != nil {
			t.Errorf("ParseColor(%q) error = %v", hex, err)
		}
	}
}

func TestStyleNormalized(t *testing.T) {
	tests := []struct {
		name      string
		in        Style
		wantWidth int
		wantColor gg.RGBA
	}{
		{"zero", Style{}, DefaultWidth, gg.Black},
		{"negative", Style{Width: -3, Color: gg.White}, MinWidth, gg.White},
		{"too wide", Style{Width: 500, Color: gg.White}, MaxWidth, gg.White},
		{"in range", Style{Width: 12, Color: gg.RGBA{R: 1, A: 0.3}}, 12, gg.RGBA{R: 1, A: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.normalized()
			if got.Width != tt.wantWidth {
				t.Errorf("Width = %d, want %d", got.Width, tt.wantWidth)
			}
			if got.Color != tt.wantColor {
				t.Errorf("Color = %v, want %v", got.Color, tt.wantColor)
			}
		})
	}
}

func TestStyleValidate(t *testing.T) {
	if err := DefaultStyle().Validate(); err != nil {
		t.Errorf("DefaultStyle().Validate() = %v", err)
	}
	if err := (Style{Tool: Tool(-1)}).Validate(); !errors.Is(err, ErrInvalidStyle) {
		t.Errorf("Validate() = %v, want ErrInvalidStyle", err)
	}
}

func TestPointHelpers(t *testing.T) {
	a, b := Pt(0, 0), Pt(3, 4)
	if d := a.Distance(b); d != 5 {
		t.Errorf("Distance() = %v, want 5", d)
	}
	if m := a.Lerp(b, 0.5); m != Pt(1.5, 2) {
		t.Errorf("Lerp(0.5) = %v", m)
	}
}
