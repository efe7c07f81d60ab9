package sketchpad

import "math"

// Point is a position in surface-local pixel coordinates.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Distance returns the Euclidean distance between two points.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Lerp linearly interpolates between p and q.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{X: p.X + (q.X-p.X)*t, Y: p.Y + (q.Y-p.Y)*t}
}

// coordLimit bounds pointer coordinates handed to the rasteriser. Points
// further out are clamped: the result is off-canvas either way, and very
// large shapes exhaust the stroke flattener.
const coordLimit = 4 * MaxDimension

// Finite reports whether both coordinates are finite numbers.
func (p Point) Finite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// clamped returns p with each coordinate limited to ±coordLimit.
func (p Point) clamped() Point {
	return Point{
		X: math.Max(-coordLimit, math.Min(coordLimit, p.X)),
		Y: math.Max(-coordLimit, math.Min(coordLimit, p.Y)),
	}
}

// EventKind identifies a pointer or touch event.
type EventKind int

const (
	// PointerDown starts a gesture.
	PointerDown EventKind = iota
	// PointerMove extends an active gesture.
	PointerMove
	// PointerUp ends and commits an active gesture.
	PointerUp
	// PointerLeave is the pointer leaving the surface; it commits like PointerUp.
	PointerLeave
)

func (k EventKind) String() string {
	switch k {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	case PointerLeave:
		return "leave"
	default:
		return "unknown"
	}
}

// Event is a pointer event as delivered by a host.
// Style is only read for PointerDown.
type Event struct {
	Kind  EventKind
	Point Point
	Style Style
}
