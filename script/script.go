// Package script reads and replays gesture scripts: plain text files with
// one drawing command per line.
//
//	# red diagonal, then a box
//	style brush #ff0000 5
//	line 0 0 100 100 8
//	style rectangle #000000 2
//	down 10 10
//	move 50 40
//	up 50 40
//	undo
//
// Commands are style, down, move, up, leave, line, undo, redo, clear and
// resize. A '#' that starts a field begins a comment.
package script

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gogpu/sketchpad"
)

// Op is a script command.
type Op int

const (
	OpStyle Op = iota
	OpDown
	OpMove
	OpUp
	OpLeave
	OpLine
	OpUndo
	OpRedo
	OpClear
	OpResize
)

var opNames = [...]string{"style", "down", "move", "up", "leave", "line", "undo", "redo", "clear", "resize"}

func (o Op) String() string {
	if o >= 0 && int(o) < len(opNames) {
		return opNames[o]
	}
	return fmt.Sprintf("Op(%d)", int(o))
}

// Command is one parsed script line.
type Command struct {
	Op Op

	// Line is the 1-based source line, 0 for commands built in code.
	Line int

	Style  sketchpad.Style   // OpStyle
	Points []sketchpad.Point // pointer ops: 1, OpLine: 2
	Steps  int               // OpLine: interpolated moves
	Width  int               // OpResize
	Height int               // OpResize
}

// ErrSyntax is wrapped by every parse error.
var ErrSyntax = errors.New("script: syntax error")

// Error reports a failure on a specific script line.
type Error struct {
	Line int
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("script: line %d: %v", e.Line, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Parse reads commands from r. It stops at the first bad line.
func Parse(r io.Reader) ([]Command, error) {
	var cmds []Command
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(stripComment(sc.Text()))
		if len(fields) == 0 {
			continue
		}
		cmd, err := parseFields(fields)
		if err != nil {
			return nil, &Error{Line: line, Err: err}
		}
		cmd.Line = line
		cmds = append(cmds, cmd)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("script: read: %w", err)
	}
	return cmds, nil
}

// ParseString is Parse over a string.
func ParseString(src string) ([]Command, error) {
	return Parse(strings.NewReader(src))
}

// stripComment drops everything from the first field starting with '#'.
// Colors such as #ff0000 are fields too, so only a '#' that begins a field
// and is not a style color argument counts.
func stripComment(s string) string {
	fields := strings.Fields(s)
	for i, f := range fields {
		if !strings.HasPrefix(f, "#") {
			continue
		}
		if i == 2 && fields[0] == "style" {
			continue
		}
		return strings.Join(fields[:i], " ")
	}
	return s
}

func parseFields(f []string) (Command, error) {
	name, args := f[0], f[1:]
	switch name {
	case "style":
		if len(args) != 3 {
			return Command{}, argCount(name, 3, len(args))
		}
		tool, err := sketchpad.ParseTool(args[0])
		if err != nil {
			return Command{}, err
		}
		c, err := sketchpad.ParseColor(args[1])
		if err != nil {
			return Command{}, err
		}
		w, err := strconv.Atoi(args[2])
		if err != nil {
			return Command{}, fmt.Errorf("%w: width %q", ErrSyntax, args[2])
		}
		return Command{Op: OpStyle, Style: sketchpad.Style{Color: c, Width: w, Tool: tool}}, nil

	case "down", "move", "up", "leave":
		if len(args) != 2 {
			return Command{}, argCount(name, 2, len(args))
		}
		p, err := parsePoint(args[0], args[1])
		if err != nil {
			return Command{}, err
		}
		op := map[string]Op{"down": OpDown, "move": OpMove, "up": OpUp, "leave": OpLeave}[name]
		return Command{Op: op, Points: []sketchpad.Point{p}}, nil

	case "line":
		if len(args) != 4 && len(args) != 5 {
			return Command{}, fmt.Errorf("%w: line takes 4 or 5 arguments, got %d", ErrSyntax, len(args))
		}
		a, err := parsePoint(args[0], args[1])
		if err != nil {
			return Command{}, err
		}
		b, err := parsePoint(args[2], args[3])
		if err != nil {
			return Command{}, err
		}
		steps := 1
		if len(args) == 5 {
			if steps, err = strconv.Atoi(args[4]); err != nil || steps < 1 {
				return Command{}, fmt.Errorf("%w: steps %q", ErrSyntax, args[4])
			}
		}
		return Command{Op: OpLine, Points: []sketchpad.Point{a, b}, Steps: steps}, nil

	case "undo", "redo", "clear":
		if len(args) != 0 {
			return Command{}, argCount(name, 0, len(args))
		}
		op := map[string]Op{"undo": OpUndo, "redo": OpRedo, "clear": OpClear}[name]
		return Command{Op: op}, nil

	case "resize":
		if len(args) != 2 {
			return Command{}, argCount(name, 2, len(args))
		}
		w, err1 := strconv.Atoi(args[0])
		h, err2 := strconv.Atoi(args[1])
		if err1 != nil || err2 != nil {
			return Command{}, fmt.Errorf("%w: resize %s %s", ErrSyntax, args[0], args[1])
		}
		return Command{Op: OpResize, Width: w, Height: h}, nil
	}
	return Command{}, fmt.Errorf("%w: unknown command %q", ErrSyntax, name)
}

func parsePoint(xs, ys string) (sketchpad.Point, error) {
	x, err := strconv.ParseFloat(xs, 64)
	if err != nil {
		return sketchpad.Point{}, fmt.Errorf("%w: coordinate %q", ErrSyntax, xs)
	}
	y, err := strconv.ParseFloat(ys, 64)
	if err != nil {
		return sketchpad.Point{}, fmt.Errorf("%w: coordinate %q", ErrSyntax, ys)
	}
	p := sketchpad.Pt(x, y)
	if !p.Finite() {
		return sketchpad.Point{}, fmt.Errorf("%w: non-finite point %s %s", ErrSyntax, xs, ys)
	}
	return p, nil
}

func argCount(name string, want, got int) error {
	return fmt.Errorf("%w: %s takes %d arguments, got %d", ErrSyntax, name, want, got)
}

// point returns the i-th point of c, or the origin if c has fewer points.
func (c Command) point(i int) sketchpad.Point {
	if i < len(c.Points) {
		return c.Points[i]
	}
	return sketchpad.Point{}
}

// String formats c as a script line that parses back to c. Missing points
// of a pointer or line command format as the origin.
func (c Command) String() string {
	num := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
	switch c.Op {
	case OpStyle:
		return fmt.Sprintf("style %s %s %d", c.Style.Tool, sketchpad.FormatColor(c.Style.Color), c.Style.Width)
	case OpDown, OpMove, OpUp, OpLeave:
		p := c.point(0)
		return fmt.Sprintf("%s %s %s", c.Op, num(p.X), num(p.Y))
	case OpLine:
		a, b := c.point(0), c.point(1)
		return fmt.Sprintf("line %s %s %s %s %d", num(a.X), num(a.Y), num(b.X), num(b.Y), c.Steps)
	case OpResize:
		return fmt.Sprintf("resize %d %d", c.Width, c.Height)
	default:
		return c.Op.String()
	}
}

// Format writes cmds one per line.
func Format(w io.Writer, cmds []Command) error {
	for _, c := range cmds {
		if _, err := fmt.Fprintln(w, c.String()); err != nil {
			return err
		}
	}
	return nil
}
