package script

import (
	"fmt"

	"github.com/gogpu/sketchpad"
)

// pointCount is the number of points each pointer op needs.
var pointCount = map[Op]int{OpDown: 1, OpMove: 1, OpUp: 1, OpLeave: 1, OpLine: 2}

// Run replays cmds onto s. Pointer commands use the most recent style, or
// sketchpad.DefaultStyle before any style line.
//
// Run stops with an *Error at the first command it cannot apply: a pointer
// command without enough points, a style with an unknown tool, or a failed
// resize. Pointer events the surface ignores, such as a move with no active
// gesture, are not errors.
func Run(s *sketchpad.Surface, cmds []Command) error {
	style := sketchpad.DefaultStyle()
	for _, c := range cmds {
		if n := pointCount[c.Op]; len(c.Points) < n {
			return &Error{Line: c.Line, Err: fmt.Errorf("%w: %s needs %d points, got %d", ErrSyntax, c.Op, n, len(c.Points))}
		}
		switch c.Op {
		case OpStyle:
			if err := c.Style.Validate(); err != nil {
				return &Error{Line: c.Line, Err: err}
			}
			style = c.Style
		case OpDown:
			s.Handle(sketchpad.Event{Kind: sketchpad.PointerDown, Point: c.Points[0], Style: style})
		case OpMove:
			s.Handle(sketchpad.Event{Kind: sketchpad.PointerMove, Point: c.Points[0]})
		case OpUp:
			s.Handle(sketchpad.Event{Kind: sketchpad.PointerUp, Point: c.Points[0]})
		case OpLeave:
			s.Handle(sketchpad.Event{Kind: sketchpad.PointerLeave, Point: c.Points[0]})
		case OpLine:
			a, b := c.Points[0], c.Points[1]
			s.BeginStroke(a, style)
			for i := 1; i <= c.Steps; i++ {
				s.ExtendStroke(a.Lerp(b, float64(i)/float64(c.Steps)))
			}
			s.EndStroke(b)
		case OpUndo:
			s.Undo()
		case OpRedo:
			s.Redo()
		case OpClear:
			s.Clear()
		case OpResize:
			if err := s.Resize(c.Width, c.Height); err != nil {
				return &Error{Line: c.Line, Err: err}
			}
		}
	}
	sketchpad.Logger().Debug("script: replayed", "commands", len(cmds), "entries", s.Len(), "cursor", s.Cursor())
	return nil
}
