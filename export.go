package sketchpad

import (
	"bytes"
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"
)

// ExportName returns the file name used by ExportFile for the current time.
func (s *Surface) ExportName() string {
	return fmt.Sprintf("drawing-%d.png", s.opts.clock().UnixMilli())
}

// ExportImage writes the buffer as PNG to w. It never touches the history.
func (s *Surface) ExportImage(w io.Writer) error {
	if err := s.encodePNG(w); err != nil {
		return err
	}
	s.notify(CuePop)
	return nil
}

// ExportFile writes the buffer to dir as a timestamp-named PNG and returns
// the path written.
func (s *Surface) ExportFile(dir string) (string, error) {
	if !s.Available() {
		return "", s.unavailableErr()
	}
	path := filepath.Join(dir, s.ExportName())
	f, err := os.Create(path) //nolint:gosec // dir is chosen by the host
	if err != nil {
		return "", fmt.Errorf("sketchpad: export: %w", err)
	}
	if err := s.encodePNG(f); err != nil {
		_ = f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("sketchpad: export: %w", err)
	}
	Logger().Debug("sketchpad: exported", "path", path)
	s.notify(CuePop)
	return path, nil
}

// ExportPDF writes a single page PDF sized to the buffer, in points, with
// the drawing embedded as PNG.
func (s *Surface) ExportPDF(w io.Writer) error {
	var buf bytes.Buffer
	if err := s.encodePNG(&buf); err != nil {
		return err
	}

	wd, ht := float64(s.width), float64(s.height)
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: wd, Ht: ht},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	opt := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("drawing", opt, &buf)
	pdf.ImageOptions("drawing", 0, 0, wd, ht, false, opt, 0, "")
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("sketchpad: export pdf: %w", err)
	}
	s.notify(CuePop)
	return nil
}

func (s *Surface) encodePNG(w io.Writer) error {
	if !s.Available() {
		return s.unavailableErr()
	}
	s.flush()
	if err := png.Encode(w, s.pm.ToImage()); err != nil {
		return fmt.Errorf("sketchpad: export: %w", err)
	}
	return nil
}

func (s *Surface) unavailableErr() error {
	if s.closed {
		return ErrClosed
	}
	return ErrUnavailable
}
