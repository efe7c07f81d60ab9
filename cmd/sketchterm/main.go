// Command sketchterm is an interactive drawing canvas in the terminal.
//
// Drag with the left mouse button to draw. Keys pick the tool (b e l c r),
// the color (0-9) and the width (+ -); u and y undo and redo, x clears,
// s saves a PNG, f toggles fullscreen and q quits.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/sketchpad"
	"github.com/gogpu/sketchpad/audio"
)

func main() {
	var (
		scale   = flag.Int("scale", 4, "canvas pixels per half cell")
		sound   = flag.Bool("sound", true, "play feedback cues")
		outDir  = flag.String("out", ".", "directory for saved drawings")
		logPath = flag.String("log", "", "write debug logs to this file")
	)
	flag.Parse()

	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			log.Fatalf("Failed to open log: %v", err)
		}
		defer f.Close()
		sketchpad.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to init screen: %v", err)
	}
	screen.EnableMouse()

	var opts []sketchpad.Option
	var player *audio.Player
	if *sound {
		player = audio.NewPlayer(audio.DefaultConfig())
		// Non-fatal, drawing works without sound
		if err := player.Initialize(); err != nil {
			log.Printf("Audio initialization failed: %v", err)
			player = nil
		} else {
			opts = append(opts, sketchpad.WithFeedback(player))
		}
	}

	a, err := newApp(screen, max(*scale, 1), opts...)
	if err != nil {
		screen.Fini()
		log.Fatalf("Failed to create canvas: %v", err)
	}
	a.player = player
	a.outDir = *outDir
	sketchpad.Logger().Info("sketchterm: session started", "session", a.state.Session)

	run(a)

	a.close()
	screen.Fini()
}

func run(a *app) {
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	a.draw()
	for {
		select {
		case ev, ok := <-events:
			if !ok || !a.handle(ev) {
				return
			}
			a.draw()
		case <-ticker.C:
			// Redraw so the greeting times out on its own.
			a.draw()
		}
	}
}
