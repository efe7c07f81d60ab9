// Package sketchpad provides a raster drawing surface with snapshot undo.
//
// # Overview
//
// A Surface owns a pixel buffer drawn through a gg.Context and a bounded,
// linear history of serialized snapshots of that buffer. Hosts feed it
// pointer events; the active tool decides whether pixels are painted during
// the gesture (brush, eraser) or previewed and committed on release (line,
// circle, rectangle).
//
// # Quick Start
//
//	s, err := sketchpad.New(700, 400)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer s.Close()
//
//	red, _ := sketchpad.ParseColor("#ff0000")
//	style := sketchpad.Style{Color: red, Width: 5, Tool: sketchpad.ToolBrush}
//
//	s.BeginStroke(sketchpad.Pt(0, 0), style)
//	s.ExtendStroke(sketchpad.Pt(100, 100))
//	s.EndStroke(sketchpad.Pt(100, 100))
//
//	s.Undo() // back to the blank canvas
//	s.Redo() // and forward again
//
//	path, err := s.ExportFile(".")
//
// # History
//
// The blank buffer created by New is entry 0. Every completed gesture,
// Clear and Resize appends exactly one snapshot after discarding anything
// that was undone. Undo at the first entry and Redo at the last are no-ops.
// Snapshots are PNG by default; see WithCodec.
//
// # Gesture State
//
// A gesture runs Idle -> BeginStroke -> ExtendStroke* -> EndStroke -> Idle.
// A second BeginStroke while a gesture is active is ignored, as are
// Undo, Redo and Clear.
//
// # Failure Model
//
// Drawing never panics into the host. A surface created with unusable
// dimensions is inert: it reports Available() == false and ignores every
// call. Rasteriser errors are logged through the logger set with SetLogger
// and the buffer keeps its last good state.
package sketchpad
