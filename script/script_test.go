package script

import (
	"errors"
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/gogpu/sketchpad"
)

func TestParse(t *testing.T) {
	src := `
# a comment line
style brush #ff0000 5
down 1 2   # trailing comment
move 3.5 4
up 3.5 4
leave 0 0
line 0 0 10 10
line 0 0 10 10 4
undo
redo
clear
resize 320 200
`
	cmds, err := ParseString(src)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	wantOps := []Op{OpStyle, OpDown, OpMove, OpUp, OpLeave, OpLine, OpLine, OpUndo, OpRedo, OpClear, OpResize}
	if len(cmds) != len(wantOps) {
		t.Fatalf("Parse() = %d commands, want %d", len(cmds), len(wantOps))
	}
	for i, op := range wantOps {
		if cmds[i].Op != op {
			t.Errorf("cmds[%d].Op = %v, want %v", i, cmds[i].Op, op)
		}
	}

	if got := cmds[0].Style; got.Tool != sketchpad.ToolBrush || got.Width != 5 || sketchpad.FormatColor(got.Color) != "#ff0000" {
		t.Errorf("style = %+v", got)
	}
	if cmds[0].Line != 3 {
		t.Errorf("style Line = %d, want 3", cmds[0].Line)
	}
	if cmds[2].Points[0] != sketchpad.Pt(3.5, 4) {
		t.Errorf("move point = %v", cmds[2].Points[0])
	}
	if cmds[5].Steps != 1 || cmds[6].Steps != 4 {
		t.Errorf("line steps = %d/%d, want 1/4", cmds[5].Steps, cmds[6].Steps)
	}
	if cmds[10].Width != 320 || cmds[10].Height != 200 {
		t.Errorf("resize = %dx%d", cmds[10].Width, cmds[10].Height)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		wantLine int
	}{
		{"unknown command", "undo\nfill 1 2", 2},
		{"missing coordinate", "down 1", 1},
		{"bad coordinate", "clear\n\nmove x 2", 3},
		{"bad tool", "style spray #000000 3", 1},
		{"bad color", "style brush #zz0000 3", 1},
		{"bad width", "style brush #000000 wide", 1},
		{"line arity", "line 1 2 3", 1},
		{"line steps", "line 0 0 1 1 0", 1},
		{"undo args", "undo 2", 1},
		{"resize args", "# header\nresize 10 ten", 2},
		{"nan coordinate", "style circle #000000 3\nline 0 0 NaN 0", 2},
		{"inf coordinate", "down +Inf 2", 1},
		{"negative inf", "move 1 -inf", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseString(tt.src)
			var se *Error
			if !errors.As(err, &se) {
				t.Fatalf("Parse() error = %v, want *Error", err)
			}
			if se.Line != tt.wantLine {
				t.Errorf("Line = %d, want %d", se.Line, tt.wantLine)
			}
			if !strings.Contains(err.Error(), "line ") {
				t.Errorf("Error() = %q, want line number", err.Error())
			}
		})
	}
}

func TestFormatRoundTrip(t *testing.T) {
	src := "style circle #00ff00 12\ndown 10 10.25\nmove 20 20\nup 20 20\nline 1 2 3 4 6\nresize 64 48\nundo\nclear\n"
	cmds, err := ParseString(src)
	if err != nil {
		t.Fatal(err)
	}

	var b strings.Builder
	if err := Format(&b, cmds); err != nil {
		t.Fatal(err)
	}
	if b.String() != src {
		t.Errorf("Format() =\n%s\nwant\n%s", b.String(), src)
	}

	again, err := ParseString(b.String())
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(again, cmds) {
		t.Error("Parse(Format(cmds)) != cmds")
	}
}

func newSurface(t *testing.T, w, h int) *sketchpad.Surface {
	t.Helper()
	s, err := sketchpad.New(w, h)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestRun(t *testing.T) {
	cmds, err := ParseString(`
style brush #ff0000 5
line 0 0 100 100 10
style rectangle #000000 2
down 10 60
move 90 90
up 40 80
undo
redo
`)
	if err != nil {
		t.Fatal(err)
	}
	s := newSurface(t, 120, 120)
	if err := Run(s, cmds); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if s.Len() != 3 || s.Cursor() != 2 {
		t.Errorf("Len/Cursor = %d/%d, want 3/2", s.Len(), s.Cursor())
	}
	if c := s.Pixel(50, 50); c.R < 200 || c.G > 80 {
		t.Errorf("Pixel(50,50) = %v, want red brush", c)
	}
	if c := s.Pixel(25, 60); c.R > 100 {
		t.Errorf("Pixel(25,60) = %v, want black rectangle edge", c)
	}
}

func TestRunDefaultStyle(t *testing.T) {
	s := newSurface(t, 40, 40)
	cmds, _ := ParseString("down 0 20\nmove 40 20\nleave 40 20")
	if err := Run(s, cmds); err != nil {
		t.Fatal(err)
	}
	if c := s.Pixel(20, 20); c.R > 40 {
		t.Errorf("Pixel(20,20) = %v, want default black brush", c)
	}
}

func TestRunReportsResizeLine(t *testing.T) {
	s := newSurface(t, 40, 40)
	cmds, err := ParseString("clear\nresize 0 10\nclear")
	if err != nil {
		t.Fatal(err)
	}
	err = Run(s, cmds)
	var se *Error
	if !errors.As(err, &se) || se.Line != 2 {
		t.Fatalf("Run() error = %v, want line 2", err)
	}
	if !errors.Is(err, sketchpad.ErrInvalidDimensions) {
		t.Errorf("Run() error = %v, want ErrInvalidDimensions", err)
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d, Run should stop at the failing line", s.Len())
	}
}

func TestOpString(t *testing.T) {
	if OpResize.String() != "resize" || Op(50).String() != "Op(50)" {
		t.Error("Op.String() mismatch")
	}
}

func TestRunRejectsMalformedCommands(t *testing.T) {
	tests := []struct {
		name string
		cmds []Command
		want error
	}{
		{"down without point", []Command{{Op: OpDown, Line: 4}}, ErrSyntax},
		{"line with one point", []Command{{Op: OpLine, Line: 4, Points: []sketchpad.Point{{}}, Steps: 1}}, ErrSyntax},
		{"unknown tool", []Command{{Op: OpStyle, Line: 4, Style: sketchpad.Style{Tool: sketchpad.Tool(42)}}}, sketchpad.ErrInvalidStyle},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSurface(t, 20, 20)
			err := Run(s, tt.cmds)
			var se *Error
			if !errors.As(err, &se) || se.Line != 4 {
				t.Fatalf("Run() error = %v, want line 4", err)
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("Run() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestRunSurvivesNonFinitePoints(t *testing.T) {
	s := newSurface(t, 30, 30)
	nan := sketchpad.Pt(math.NaN(), 0)
	cmds := []Command{
		{Op: OpStyle, Style: sketchpad.Style{Tool: sketchpad.ToolCircle, Width: 3}},
		{Op: OpDown, Points: []sketchpad.Point{sketchpad.Pt(15, 15)}},
		{Op: OpMove, Points: []sketchpad.Point{nan}},
		{Op: OpUp, Points: []sketchpad.Point{nan}},
		{Op: OpLine, Points: []sketchpad.Point{nan, sketchpad.Pt(1e12, 1e12)}, Steps: 3},
	}
	if err := Run(s, cmds); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
}

func TestCommandStringMissingPoints(t *testing.T) {
	tests := []struct {
		cmd  Command
		want string
	}{
		{Command{Op: OpMove}, "move 0 0"},
		{Command{Op: OpLine, Steps: 2, Points: []sketchpad.Point{sketchpad.Pt(1, 2)}}, "line 1 2 0 0 2"},
	}
	for _, tt := range tests {
		if got := tt.cmd.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
