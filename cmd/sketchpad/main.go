// Command sketchpad replays a gesture script onto a drawing surface and
// writes the result as PNG, BMP or PDF.
//
// Usage:
//
//	sketchpad -script strokes.txt -output out.png
//	sketchpad -width 320 -height 200 -format pdf < strokes.txt
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/image/bmp"

	"github.com/gogpu/sketchpad"
	"github.com/gogpu/sketchpad/audio"
	"github.com/gogpu/sketchpad/script"
)

func main() {
	cfg, err := parseConfig(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalf("sketchpad: %v", err)
	}

	if cfg.Verbose {
		sketchpad.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	path, err := run(cfg, os.Stdin)
	if err != nil {
		log.Fatalf("sketchpad: %v", err)
	}
	log.Printf("Drawing saved to %s (%dx%d)\n", path, cfg.Width, cfg.Height)
}

// run builds the surface, replays the script and writes the output,
// returning the path written.
func run(cfg config, stdin io.Reader) (string, error) {
	opts, err := cfg.options()
	if err != nil {
		return "", err
	}

	if cfg.Sound {
		p := audio.NewPlayer(cfg.Audio)
		// Non-fatal: audio is optional.
		if err := p.Initialize(); err != nil {
			log.Printf("sound disabled: %v", err)
		} else {
			defer p.Close()
			opts = append(opts, sketchpad.WithFeedback(p))
		}
	}

	s, err := sketchpad.New(cfg.Width, cfg.Height, opts...)
	if err != nil {
		return "", err
	}
	defer s.Close()

	src := stdin
	if cfg.Script != "" {
		f, err := os.Open(cfg.Script)
		if err != nil {
			return "", err
		}
		defer f.Close()
		src = f
	}
	cmds, err := script.Parse(src)
	if err != nil {
		return "", err
	}
	if err := script.Run(s, cmds); err != nil {
		return "", err
	}

	out := cfg.Output
	if out == "" {
		out = strings.TrimSuffix(s.ExportName(), ".png") + "." + cfg.Format
	}
	if err := write(s, cfg.Format, out); err != nil {
		return "", err
	}
	return out, nil
}

func write(s *sketchpad.Surface, format, path string) (err error) {
	f, err := os.Create(path) //nolint:gosec // path is chosen by the user
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	switch format {
	case "png":
		return s.ExportImage(f)
	case "pdf":
		return s.ExportPDF(f)
	case "bmp":
		return bmp.Encode(f, s.Image())
	}
	return fmt.Errorf("unknown format %q", format)
}
