package sketchpad

import (
	"math"

	"github.com/gogpu/gg"
)

// gesture is the per-interaction pointer state between down and up.
type gesture struct {
	active bool
	style  Style
	anchor Point
	last   Point
}

// Active reports whether a gesture is in progress.
func (s *Surface) Active() bool {
	return s.gesture.active
}

// accept validates a pointer position. Non-finite points are dropped and
// finite ones are clamped to the rasteriser's coordinate range.
func accept(op string, p Point) (Point, bool) {
	if !p.Finite() {
		Logger().Warn("sketchpad: dropping non-finite point", "op", op, "x", p.X, "y", p.Y)
		return Point{}, false
	}
	return p.clamped(), true
}

// BeginStroke starts a gesture at p with the given style. The style is
// captured for the whole gesture. Ignored while another gesture is active
// or when p is not finite.
func (s *Surface) BeginStroke(p Point, style Style) {
	if !s.usable("begin") {
		return
	}
	p, ok := accept("begin", p)
	if !ok {
		return
	}
	if s.gesture.active {
		Logger().Debug("sketchpad: ignoring pointer down during gesture", "x", p.X, "y", p.Y)
		return
	}
	style = style.normalized()
	if err := style.Validate(); err != nil {
		Logger().Error("sketchpad: rejecting stroke", "err", err)
		return
	}
	s.gesture = gesture{active: true, style: style, anchor: p, last: p}
	s.dc.ClearPath()
}

// ExtendStroke moves the active gesture to p. Freehand tools paint
// immediately; shape tools redraw a preview over the last committed
// snapshot. Ignored when no gesture is active or when p is not finite.
func (s *Surface) ExtendStroke(p Point) {
	if !s.usable("extend") || !s.gesture.active {
		return
	}
	p, ok := accept("extend", p)
	if !ok {
		return
	}
	g := &s.gesture
	switch g.style.Tool {
	case ToolBrush:
		s.paintSegment(g.last, p, g.style)
	case ToolEraser:
		s.erase(p, g.style.Width)
	default:
		s.restoreCommitted()
		s.drawShape(g.anchor, p, g.style)
	}
	g.last = p
}

// EndStroke finishes the active gesture at p and commits exactly one
// history entry. Shape tools draw their final geometry from the anchor to
// p. Ignored when no gesture is active. A non-finite p ends the gesture at
// the last accepted point.
func (s *Surface) EndStroke(p Point) {
	if !s.usable("end") || !s.gesture.active {
		return
	}
	g := s.gesture
	p, ok := accept("end", p)
	if !ok {
		p = g.last
	}
	if g.style.Tool.Freehand() {
		s.dc.ClearPath()
	} else {
		s.restoreCommitted()
		s.drawShape(g.anchor, p, g.style)
	}
	s.gesture = gesture{}
	s.commit(g.style.Tool.String())
}

// Cancel abandons the active gesture without committing. Pixels painted
// since pointer down are reverted to the last committed snapshot.
func (s *Surface) Cancel() {
	if !s.usable("cancel") || !s.gesture.active {
		return
	}
	s.dc.ClearPath()
	s.restoreCommitted()
	s.gesture = gesture{}
	Logger().Debug("sketchpad: gesture cancelled")
}

// Handle dispatches a host pointer event.
func (s *Surface) Handle(ev Event) {
	switch ev.Kind {
	case PointerDown:
		s.BeginStroke(ev.Point, ev.Style)
	case PointerMove:
		s.ExtendStroke(ev.Point)
	case PointerUp, PointerLeave:
		s.EndStroke(ev.Point)
	default:
		Logger().Warn("sketchpad: unknown event kind", "kind", int(ev.Kind))
	}
}

func (s *Surface) setPen(style Style, lineCap gg.LineCap, join gg.LineJoin) {
	c := style.Color
	s.dc.SetRGBA(c.R, c.G, c.B, 1)
	s.dc.SetLineWidth(float64(style.Width))
	s.dc.SetLineCap(lineCap)
	s.dc.SetLineJoin(join)
}

// paintSegment strokes a round-capped segment so fast pointer motion
// leaves a continuous line instead of separate dabs.
func (s *Surface) paintSegment(from, to Point, style Style) {
	s.guard("brush", func() error {
		s.setPen(style, gg.LineCapRound, gg.LineJoinRound)
		s.dc.DrawLine(from.X, from.Y, to.X, to.Y)
		return s.dc.Stroke()
	})
}

// erase fills a width x width square centered on p with the background.
func (s *Surface) erase(p Point, width int) {
	s.guard("eraser", func() error {
		bg := s.opts.background
		half := float64(width) / 2
		s.dc.SetRGBA(bg.R, bg.G, bg.B, 1)
		s.dc.DrawRectangle(p.X-half, p.Y-half, float64(width), float64(width))
		return s.dc.Fill()
	})
}

// drawShape strokes the shape spanned by anchor and p.
func (s *Surface) drawShape(anchor, p Point, style Style) {
	s.guard(style.Tool.String(), func() error {
		s.setPen(style, gg.LineCapButt, gg.LineJoinMiter)
		switch style.Tool {
		case ToolLine:
			s.dc.DrawLine(anchor.X, anchor.Y, p.X, p.Y)
		case ToolCircle:
			r := anchor.Distance(p)
			if r == 0 {
				return nil
			}
			s.dc.DrawCircle(anchor.X, anchor.Y, r)
		case ToolRectangle:
			x, y := math.Min(anchor.X, p.X), math.Min(anchor.Y, p.Y)
			w, h := math.Abs(p.X-anchor.X), math.Abs(p.Y-anchor.Y)
			if w == 0 && h == 0 {
				return nil
			}
			s.dc.DrawRectangle(x, y, w, h)
		}
		return s.dc.Stroke()
	})
}
