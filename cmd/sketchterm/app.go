package main

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gogpu/gg"

	"github.com/gogpu/sketchpad"
	"github.com/gogpu/sketchpad/audio"
	"github.com/gogpu/sketchpad/hub"
)

// statusRows is the number of terminal rows reserved below the canvas.
const statusRows = 1

// app connects a terminal screen to a drawing surface. Each terminal cell
// shows two canvas samples using an upper half block.
type app struct {
	screen  tcell.Screen
	surface *sketchpad.Surface
	state   *hub.State
	player  *audio.Player

	// scale is canvas pixels per half cell.
	scale int

	style   sketchpad.Style
	swatch  int
	pressed bool
	muted   bool
	message string
	outDir  string
	now     func() time.Time
}

func newApp(screen tcell.Screen, scale int, opts ...sketchpad.Option) (*app, error) {
	a := &app{
		screen: screen,
		state:  hub.New(time.Now()),
		scale:  scale,
		style:  sketchpad.DefaultStyle(),
		outDir: ".",
		now:    time.Now,
	}
	w, h := a.canvasSize()
	s, err := sketchpad.New(w, h, opts...)
	if err != nil {
		return nil, err
	}
	a.surface = s
	return a, nil
}

// viewport returns the drawable area in canvas pixels.
func (a *app) viewport() (width, height int) {
	cols, rows := a.screen.Size()
	rows = max(rows-statusRows, 1)
	return cols * a.scale, rows * 2 * a.scale
}

// canvasSize applies the hub's windowed or fullscreen layout, clipped to
// what the terminal can show.
func (a *app) canvasSize() (width, height int) {
	vw, vh := a.viewport()
	w, h := a.state.CanvasSize(vw, vh)
	return max(min(w, vw), 1), max(min(h, vh), 1)
}

// cellPoint maps a terminal cell to the canvas point at its center.
func (a *app) cellPoint(cx, cy int) sketchpad.Point {
	s := float64(a.scale)
	return sketchpad.Pt((float64(cx)+0.5)*s, (float64(cy)+0.5)*2*s)
}

func (a *app) close() {
	_ = a.surface.Close()
	if a.player != nil {
		a.player.Close()
	}
}

// handle processes one terminal event. It returns false to quit.
func (a *app) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev)
	case *tcell.EventMouse:
		a.handleMouse(ev)
	case *tcell.EventResize:
		a.screen.Sync()
		a.relayout()
	}
	return true
}

func (a *app) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	p := a.cellPoint(x, y)
	down := ev.Buttons()&tcell.Button1 != 0

	switch {
	case down && !a.pressed:
		a.pressed = true
		a.surface.BeginStroke(p, a.style)
	case down:
		a.surface.ExtendStroke(p)
	case a.pressed:
		a.pressed = false
		a.surface.EndStroke(p)
	}
}

func (a *app) handleKey(ev *tcell.EventKey) bool {
	a.state.DismissGreeting()
	a.message = ""

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyCtrlZ:
		a.surface.Undo()
		return true
	case tcell.KeyCtrlY:
		a.surface.Redo()
		return true
	case tcell.KeyRune:
	default:
		return true
	}

	r := ev.Rune()
	switch r {
	case 'q':
		return false
	case 'b':
		a.style.Tool = sketchpad.ToolBrush
	case 'e':
		a.style.Tool = sketchpad.ToolEraser
	case 'l':
		a.style.Tool = sketchpad.ToolLine
	case 'c':
		a.style.Tool = sketchpad.ToolCircle
	case 'r':
		a.style.Tool = sketchpad.ToolRectangle
	case '+', '=':
		a.style.Width = min(a.style.Width+1, sketchpad.MaxWidth)
	case '-':
		a.style.Width = max(a.style.Width-1, sketchpad.MinWidth)
	case 'u':
		a.surface.Undo()
	case 'y':
		a.surface.Redo()
	case 'x':
		a.surface.Clear()
	case 's':
		a.save()
	case 'f':
		a.state.SetFullscreen(!a.state.Fullscreen())
		a.relayout()
	case 'm':
		if a.player != nil {
			a.muted = !a.muted
			a.player.SetMuted(a.muted)
		}
	default:
		if r >= '0' && r <= '9' {
			a.pick(int(r - '0'))
		}
	}
	return true
}

// pick selects palette swatch i.
func (a *app) pick(i int) {
	if i < 0 || i >= len(sketchpad.Palette) {
		return
	}
	c, err := sketchpad.ParseColor(sketchpad.Palette[i])
	if err != nil {
		return
	}
	a.swatch = i
	a.style.Color = c
}

func (a *app) save() {
	path, err := a.surface.ExportFile(a.outDir)
	if err != nil {
		a.message = "save failed: " + err.Error()
		return
	}
	a.message = "saved " + path
}

// relayout resizes the canvas to the current terminal and hub layout.
func (a *app) relayout() {
	a.pressed = false
	w, h := a.canvasSize()
	if err := a.surface.Resize(w, h); err != nil {
		a.message = err.Error()
	}
}

// draw renders the canvas and the status line.
func (a *app) draw() {
	a.screen.Clear()
	cols, rows := a.screen.Size()
	canvasRows := max(rows-statusRows, 0)
	w, h := a.surface.Size()

	for cy := 0; cy < canvasRows; cy++ {
		for cx := 0; cx < cols; cx++ {
			top := a.sample(cx, 2*cy, w, h)
			bottom := a.sample(cx, 2*cy+1, w, h)
			st := tcell.StyleDefault.Foreground(top).Background(bottom)
			a.screen.SetContent(cx, cy, '▀', nil, st)
		}
	}
	a.drawStatus(rows-1, cols)
	a.screen.Show()
}

// sample returns the color of half-cell row hy in column cx. Outside the
// canvas it is the terminal default.
func (a *app) sample(cx, hy, w, h int) tcell.Color {
	x := cx*a.scale + a.scale/2
	y := hy*a.scale + a.scale/2
	if x >= w || y >= h {
		return tcell.ColorDefault
	}
	c := a.surface.Pixel(x, y)
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func (a *app) drawStatus(row, cols int) {
	c := a.style.Color
	swatch := tcell.StyleDefault.Background(rgbColor(c))
	a.screen.SetContent(0, row, ' ', nil, swatch)
	a.screen.SetContent(1, row, ' ', nil, swatch)

	text := fmt.Sprintf(" %s c%d w%d  %d/%d  [belrc] tool [0-9] color [+-] width u/y undo/redo x clear s save f full q quit",
		a.style.Tool, a.swatch, a.style.Width, a.surface.Cursor(), a.surface.Len()-1)
	if a.message != "" {
		text = " " + a.message
	}
	if a.state.GreetingVisible(a.now()) {
		text = " Hi! Pick a color and start drawing."
	}
	for i, r := range []rune(text) {
		if 2+i >= cols {
			break
		}
		a.screen.SetContent(2+i, row, r, nil, tcell.StyleDefault)
	}
}

func rgbColor(c gg.RGBA) tcell.Color {
	to8 := func(v float64) int32 { return int32(max(0, min(255, v*255+0.5))) }
	return tcell.NewRGBColor(to8(c.R), to8(c.G), to8(c.B))
}
