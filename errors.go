package sketchpad

import "errors"

// Common errors returned by Surface operations.
var (
	// ErrInvalidDimensions is returned when width or height is out of range.
	ErrInvalidDimensions = errors.New("sketchpad: invalid dimensions")

	// ErrUnavailable is returned by operations on an inert surface.
	ErrUnavailable = errors.New("sketchpad: drawing surface unavailable")

	// ErrClosed is returned when operations are attempted on a closed surface.
	ErrClosed = errors.New("sketchpad: surface is closed")

	// ErrInvalidStyle is returned when a stroke style names an unknown tool.
	ErrInvalidStyle = errors.New("sketchpad: invalid stroke style")

	// ErrSnapshotDecode is returned when a history snapshot cannot be restored.
	ErrSnapshotDecode = errors.New("sketchpad: snapshot decode failed")
)
