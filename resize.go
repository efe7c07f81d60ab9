package sketchpad

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

// Resize changes the buffer dimensions.
//
// After Resize:
//   - The old content is copied unscaled to the top-left corner; it is
//     clipped when shrinking and the exposed area is background color
//   - The result is committed as one history entry, so Undo returns to the
//     previous size and content
//   - An active gesture is cancelled
//
// Resize to the current size is a no-op. Returns an error wrapping
// ErrInvalidDimensions if width or height is out of range, leaving the
// surface untouched.
func (s *Surface) Resize(width, height int) error {
	if s.closed {
		return ErrClosed
	}
	if s.inert {
		return ErrUnavailable
	}
	if width <= 0 || height <= 0 || width > MaxDimension || height > MaxDimension {
		return fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	if s.width == width && s.height == height {
		return nil
	}
	s.Cancel()

	s.flush()
	old := s.pm.ToImage()
	s.allocate(width, height)
	s.dc.ClearWithColor(s.opts.background)

	dst := &image.RGBA{Pix: s.pm.Data(), Stride: 4 * width, Rect: image.Rect(0, 0, width, height)}
	draw.Copy(dst, image.Point{}, old, old.Bounds(), draw.Src, nil)

	Logger().Debug("sketchpad: resize",
		"from", fmt.Sprintf("%dx%d", old.Rect.Dx(), old.Rect.Dy()),
		"to", fmt.Sprintf("%dx%d", width, height))
	s.commit("resize")
	return nil
}
