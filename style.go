package sketchpad

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/gogpu/gg"
)

// Tool selects how a gesture is turned into pixels.
type Tool int

const (
	// ToolBrush paints a round-capped freehand path.
	ToolBrush Tool = iota
	// ToolEraser paints squares of background color under the pointer.
	ToolEraser
	// ToolLine previews and commits a straight segment.
	ToolLine
	// ToolCircle previews and commits a circle centered on the anchor.
	ToolCircle
	// ToolRectangle previews and commits an axis-aligned rectangle.
	ToolRectangle
)

var toolNames = [...]string{"brush", "eraser", "line", "circle", "rectangle"}

// String returns the tool name.
func (t Tool) String() string {
	if t.Valid() {
		return toolNames[t]
	}
	return fmt.Sprintf("Tool(%d)", int(t))
}

// Valid reports whether t is one of the known tools.
func (t Tool) Valid() bool {
	return t >= ToolBrush && int(t) < len(toolNames)
}

// Freehand reports whether the tool paints directly during the gesture.
func (t Tool) Freehand() bool {
	return t == ToolBrush || t == ToolEraser
}

// ParseTool returns the tool with the given name.
func ParseTool(name string) (Tool, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range toolNames {
		if n == name {
			return Tool(i), nil
		}
	}
	if name == "rect" {
		return ToolRectangle, nil
	}
	return 0, fmt.Errorf("%w: unknown tool %q", ErrInvalidStyle, name)
}

// Stroke width bounds, matching the size slider of the drawing toolbar.
const (
	MinWidth     = 1
	MaxWidth     = 50
	DefaultWidth = 5
)

// Palette is the set of swatches offered by the drawing toolbar.
var Palette = []string{
	"#000000", "#FF0000", "#00FF00", "#0000FF", "#FFFF00",
	"#FF00FF", "#00FFFF", "#FFA500", "#800080", "#FFC0CB",
}

// Style is the stroke style read at draw time.
type Style struct {
	Color gg.RGBA
	Width int
	Tool  Tool
}

// DefaultStyle returns a black brush of DefaultWidth.
func DefaultStyle() Style {
	return Style{Color: gg.Black, Width: DefaultWidth, Tool: ToolBrush}
}

// Validate reports whether the style can be drawn.
func (s Style) Validate() error {
	if !s.Tool.Valid() {
		return fmt.Errorf("%w: %v", ErrInvalidStyle, s.Tool)
	}
	return nil
}

// normalized returns s with the width clamped and a zero color made opaque.
func (s Style) normalized() Style {
	switch {
	case s.Width == 0:
		s.Width = DefaultWidth
	case s.Width < MinWidth:
		s.Width = MinWidth
	case s.Width > MaxWidth:
		s.Width = MaxWidth
	}
	if s.Color == (gg.RGBA{}) {
		s.Color = gg.Black
	}
	s.Color.A = 1
	return s
}

// ParseColor parses a #rrggbb or #rgb hex color.
func ParseColor(hex string) (gg.RGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return gg.RGBA{}, fmt.Errorf("%w: bad color %q", ErrInvalidStyle, hex)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return gg.RGBA{}, fmt.Errorf("%w: bad color %q", ErrInvalidStyle, hex)
	}
	r, g, b := (v>>16)&0xff, (v>>8)&0xff, v&0xff
	return gg.RGB(float64(r)/255, float64(g)/255, float64(b)/255), nil
}

// FormatColor returns c as a #rrggbb string.
func FormatColor(c gg.RGBA) string {
	to8 := func(v float64) int { return int(math.Round(math.Max(0, math.Min(1, v)) * 255)) }
	return fmt.Sprintf("#%02x%02x%02x", to8(c.R), to8(c.G), to8(c.B))
}
