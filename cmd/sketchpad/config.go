package main

import (
	"flag"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/gogpu/sketchpad"
	"github.com/gogpu/sketchpad/audio"
)

// config is the CLI configuration. A TOML file given with -config sets the
// baseline; flags given on the command line override it.
type config struct {
	Width      int          `toml:"width"`
	Height     int          `toml:"height"`
	Background string       `toml:"background"`
	History    int          `toml:"history_limit"`
	Codec      string       `toml:"codec"`
	Format     string       `toml:"format"`
	Sound      bool         `toml:"sound"`
	Audio      audio.Config `toml:"audio"`

	Script  string `toml:"-"`
	Output  string `toml:"-"`
	Verbose bool   `toml:"-"`
}

func defaultConfig() config {
	return config{
		Width:      700,
		Height:     400,
		Background: "#ffffff",
		History:    sketchpad.DefaultHistoryLimit,
		Codec:      "png",
		Format:     "png",
		Audio:      audio.DefaultConfig(),
	}
}

// parseConfig reads flags from args and merges them over the -config file.
func parseConfig(args []string) (config, error) {
	def := defaultConfig()
	fs := flag.NewFlagSet("sketchpad", flag.ContinueOnError)

	var (
		width      = fs.Int("width", def.Width, "canvas width")
		height     = fs.Int("height", def.Height, "canvas height")
		background = fs.String("background", def.Background, "background color (#rrggbb)")
		history    = fs.Int("history", def.History, "undo snapshots kept (0 = unbounded)")
		codec      = fs.String("codec", def.Codec, "snapshot codec: png or bmp")
		format     = fs.String("format", def.Format, "output format: png, bmp or pdf")
		sound      = fs.Bool("sound", def.Sound, "play feedback cues")
		scriptPath = fs.String("script", "", "gesture script to replay (default stdin)")
		output     = fs.String("output", "", "output file (default drawing-<millis>.<format>)")
		configPath = fs.String("config", "", "TOML config file")
		verbose    = fs.Bool("v", false, "verbose logging to stderr")
	)
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}

	cfg := def
	if *configPath != "" {
		if _, err := toml.DecodeFile(*configPath, &cfg); err != nil {
			return config{}, fmt.Errorf("config %s: %w", *configPath, err)
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.Width = *width
		case "height":
			cfg.Height = *height
		case "background":
			cfg.Background = *background
		case "history":
			cfg.History = *history
		case "codec":
			cfg.Codec = *codec
		case "format":
			cfg.Format = *format
		case "sound":
			cfg.Sound = *sound
		}
	})
	cfg.Script = *scriptPath
	cfg.Output = *output
	cfg.Verbose = *verbose

	switch cfg.Format {
	case "png", "bmp", "pdf":
	default:
		return config{}, fmt.Errorf("unknown format %q", cfg.Format)
	}
	return cfg, nil
}

// options turns cfg into surface options.
func (c config) options() ([]sketchpad.Option, error) {
	bg, err := sketchpad.ParseColor(c.Background)
	if err != nil {
		return nil, err
	}
	codec, err := sketchpad.CodecByName(c.Codec)
	if err != nil {
		return nil, err
	}
	return []sketchpad.Option{
		sketchpad.WithBackground(bg),
		sketchpad.WithHistoryLimit(c.History),
		sketchpad.WithCodec(codec),
	}, nil
}
