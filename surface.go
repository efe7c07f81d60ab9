package sketchpad

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/gogpu/gg"
)

// MaxDimension is the largest width or height a Surface accepts.
const MaxDimension = 16384

// Surface is a raster drawing surface with a bounded snapshot history.
//
// The buffer is a gg.Pixmap drawn through a gg.Context. Every completed
// gesture, Clear and Resize commits exactly one snapshot; Undo and Redo
// restore snapshots by moving a cursor through them.
//
// Surface is NOT safe for concurrent use. Hosts deliver events from a
// single goroutine.
type Surface struct {
	dc     *gg.Context
	pm     *gg.Pixmap
	width  int
	height int

	opts options
	hist *history

	// committed holds the decoded pixels of the snapshot under the cursor,
	// so shape previews can restore without decoding.
	committed []uint8

	gesture gesture

	inert  bool
	closed bool
}

// Ensure Surface implements io.Closer
var _ io.Closer = (*Surface)(nil)

// New creates a surface of the given size filled with the background color.
// The blank buffer is the first history entry.
//
// If the dimensions cannot be honored New returns an inert surface together
// with an error wrapping ErrInvalidDimensions. The inert surface accepts
// every call as a no-op so hosts can keep running with a placeholder.
func New(width, height int, opts ...Option) (*Surface, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	s := &Surface{opts: o, hist: newHistory(o.historyLimit)}

	if width <= 0 || height <= 0 || width > MaxDimension || height > MaxDimension {
		s.inert = true
		err := fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
		Logger().Error("sketchpad: surface unavailable", "err", err)
		return s, err
	}

	if o.provider != nil {
		// Non-fatal: the accelerator may not support device sharing.
		if err := gg.SetAcceleratorDeviceProvider(o.provider); err != nil {
			Logger().Warn("sketchpad: device provider not shared", "err", err)
		}
	}

	s.allocate(width, height)
	s.dc.ClearWithColor(o.background)
	s.commit("init")
	return s, nil
}

// MustNew is like New but panics on error.
// Use only when errors are programming mistakes (e.g., hardcoded dimensions).
func MustNew(width, height int, opts ...Option) *Surface {
	s, err := New(width, height, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

// allocate replaces the buffer with a new one of the given size.
// The new buffer is transparent until the caller fills it.
func (s *Surface) allocate(width, height int) {
	if s.dc != nil {
		_ = s.dc.Close()
	}
	s.pm = gg.NewPixmap(width, height)
	s.dc = gg.NewContext(width, height, gg.WithPixmap(s.pm))
	s.width = width
	s.height = height
}

// Close releases the buffer and the history.
// Close is idempotent - multiple calls are safe.
func (s *Surface) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	if s.dc != nil {
		_ = s.dc.Close()
	}
	s.dc = nil
	s.pm = nil
	s.committed = nil
	s.hist = newHistory(s.opts.historyLimit)
	s.gesture = gesture{}
	return nil
}

// usable reports whether op may touch the buffer, logging why not.
func (s *Surface) usable(op string) bool {
	switch {
	case s.closed:
		Logger().Debug("sketchpad: ignoring call on closed surface", "op", op)
		return false
	case s.inert:
		Logger().Debug("sketchpad: ignoring call on inert surface", "op", op)
		return false
	}
	return true
}

// guard runs a rasteriser call, logging errors and recovering panics so a
// drawing failure never escapes into the host.
func (s *Surface) guard(op string, fn func() error) {
	defer func() {
		if r := recover(); r != nil {
			Logger().Error("sketchpad: recovered rasteriser panic", "op", op, "panic", r)
		}
	}()
	s.dc.ClearPath()
	if err := fn(); err != nil {
		Logger().Warn("sketchpad: draw failed", "op", op, "err", err)
	}
}

// flush dispatches pending accelerator work into the buffer. Every pixel
// read and every overwrite of the buffer goes through it first.
func (s *Surface) flush() {
	if err := s.dc.FlushGPU(); err != nil {
		Logger().Warn("sketchpad: accelerator flush failed", "err", err)
	}
}

// snapshot serializes the buffer with the configured codec. If the codec
// fails the raw pixels are kept instead, so a commit always yields an entry.
func (s *Surface) snapshot() Snapshot {
	s.flush()
	img := s.pm.ToImage()
	data, err := s.opts.codec.Encode(img)
	if err != nil {
		Logger().Warn("sketchpad: snapshot encode failed, storing raw pixels",
			"codec", s.opts.codec.Name(), "err", err)
		return Snapshot{Width: s.width, Height: s.height, Data: img.Pix, raw: true}
	}
	return Snapshot{Width: s.width, Height: s.height, Data: data}
}

// commit appends the current buffer as a new history entry.
func (s *Surface) commit(reason string) {
	s.hist.push(s.snapshot())
	s.committed = append(s.committed[:0], s.pm.Data()...)
	Logger().Debug("sketchpad: commit",
		"reason", reason,
		"entries", s.hist.len(),
		"cursor", s.hist.cursor,
		"bytes", s.hist.bytes())
}

// decode turns a snapshot back into pixels.
func (s *Surface) decode(snap Snapshot) (*image.RGBA, error) {
	if snap.raw {
		if len(snap.Data) != snap.Width*snap.Height*4 {
			return nil, fmt.Errorf("%w: raw snapshot is %d bytes for %dx%d",
				ErrSnapshotDecode, len(snap.Data), snap.Width, snap.Height)
		}
		return &image.RGBA{Pix: snap.Data, Stride: 4 * snap.Width, Rect: image.Rect(0, 0, snap.Width, snap.Height)}, nil
	}
	img, err := s.opts.codec.Decode(snap.Data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrSnapshotDecode, s.opts.codec.Name(), err)
	}
	if b := img.Bounds(); b.Dx() != snap.Width || b.Dy() != snap.Height {
		return nil, fmt.Errorf("%w: decoded %dx%d, want %dx%d",
			ErrSnapshotDecode, b.Dx(), b.Dy(), snap.Width, snap.Height)
	}
	return img, nil
}

// restore replaces the buffer with snap. On failure the buffer is unchanged.
// A snapshot of different dimensions reallocates the buffer.
func (s *Surface) restore(snap Snapshot) error {
	img, err := s.decode(snap)
	if err != nil {
		return err
	}
	s.flush()
	if snap.Width != s.width || snap.Height != s.height {
		s.allocate(snap.Width, snap.Height)
	}
	copyPix(s.pm.Data(), img)
	s.committed = append(s.committed[:0], s.pm.Data()...)
	return nil
}

// restoreCommitted puts the last committed pixels back, dropping any preview.
func (s *Surface) restoreCommitted() {
	s.flush()
	copy(s.pm.Data(), s.committed)
}

// copyPix copies img row by row into a tightly packed RGBA buffer.
func copyPix(dst []uint8, img *image.RGBA) {
	row := 4 * img.Rect.Dx()
	for y := 0; y < img.Rect.Dy(); y++ {
		src := img.Pix[y*img.Stride : y*img.Stride+row]
		copy(dst[y*row:(y+1)*row], src)
	}
}

// Undo restores the previous snapshot. It reports whether the cursor moved;
// at the earliest entry, during a gesture or after a decode failure it
// leaves the surface unchanged.
func (s *Surface) Undo() bool {
	return s.step(-1, "undo")
}

// Redo restores the next snapshot. It reports whether the cursor moved.
func (s *Surface) Redo() bool {
	return s.step(+1, "redo")
}

func (s *Surface) step(delta int, op string) bool {
	if !s.usable(op) {
		return false
	}
	if s.gesture.active {
		Logger().Debug("sketchpad: ignoring history step during gesture", "op", op)
		return false
	}
	target := s.hist.cursor + delta
	snap, ok := s.hist.at(target)
	if !ok {
		return false
	}
	if err := s.restore(snap); err != nil {
		Logger().Warn("sketchpad: restore failed", "op", op, "index", target, "err", err)
		return false
	}
	s.hist.seek(target)
	Logger().Debug("sketchpad: "+op, "cursor", s.hist.cursor, "entries", s.hist.len())
	return true
}

// Clear fills the buffer with the background color and commits it as one
// undoable step. Ignored during a gesture.
func (s *Surface) Clear() {
	if !s.usable("clear") {
		return
	}
	if s.gesture.active {
		Logger().Debug("sketchpad: ignoring clear during gesture")
		return
	}
	s.flush()
	s.dc.ClearWithColor(s.opts.background)
	s.commit("clear")
	s.notify(CuePop)
}

// Width returns the buffer width in pixels.
func (s *Surface) Width() int {
	return s.width
}

// Height returns the buffer height in pixels.
func (s *Surface) Height() int {
	return s.height
}

// Size returns width and height as a convenience.
func (s *Surface) Size() (width, height int) {
	return s.width, s.height
}

// Available reports whether the surface has a buffer to draw on.
func (s *Surface) Available() bool {
	return !s.inert && !s.closed
}

// Background returns the background color.
func (s *Surface) Background() gg.RGBA {
	return s.opts.background
}

// Len returns the number of history entries.
func (s *Surface) Len() int {
	return s.hist.len()
}

// Cursor returns the index of the current history entry.
func (s *Surface) Cursor() int {
	return s.hist.cursor
}

// CanUndo reports whether Undo would move the cursor.
func (s *Surface) CanUndo() bool {
	return s.Available() && s.hist.canUndo()
}

// CanRedo reports whether Redo would move the cursor.
func (s *Surface) CanRedo() bool {
	return s.Available() && s.hist.canRedo()
}

// Pixel returns the buffer color at (x, y). Out-of-range coordinates and
// unavailable surfaces return the zero color.
func (s *Surface) Pixel(x, y int) color.RGBA {
	if !s.Available() || x < 0 || y < 0 || x >= s.width || y >= s.height {
		return color.RGBA{}
	}
	s.flush()
	d := s.pm.Data()
	i := (y*s.width + x) * 4
	return color.RGBA{R: d[i], G: d[i+1], B: d[i+2], A: d[i+3]}
}

// placeholderColor fills the image of an unavailable surface.
var placeholderColor = color.RGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff}

// Image returns a copy of the buffer. An unavailable surface returns a
// 1x1 placeholder.
func (s *Surface) Image() *image.RGBA {
	if !s.Available() {
		img := image.NewRGBA(image.Rect(0, 0, 1, 1))
		img.SetRGBA(0, 0, placeholderColor)
		return img
	}
	s.flush()
	return s.pm.ToImage()
}
