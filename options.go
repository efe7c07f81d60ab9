package sketchpad

import (
	"time"

	"github.com/gogpu/gg"
	"github.com/gogpu/gpucontext"
)

// Option configures a Surface during creation.
//
// Example:
//
//	s, err := sketchpad.New(700, 400,
//		sketchpad.WithHistoryLimit(50),
//		sketchpad.WithFeedback(player))
type Option func(*options)

// options holds optional configuration for Surface creation.
type options struct {
	background   gg.RGBA
	historyLimit int
	codec        Codec
	feedback     Feedback
	clock        func() time.Time
	provider     gpucontext.DeviceProvider
}

// defaultOptions returns the default surface options.
func defaultOptions() options {
	return options{
		background:   gg.White,
		historyLimit: DefaultHistoryLimit,
		codec:        PNGCodec{},
		clock:        time.Now,
	}
}

// WithBackground sets the color used by Clear, the eraser and newly exposed
// area after a resize. The color is always made opaque.
func WithBackground(c gg.RGBA) Option {
	return func(o *options) {
		c.A = 1
		o.background = c
	}
}

// WithHistoryLimit bounds the number of retained snapshots, including the
// current one. A limit <= 0 keeps every snapshot.
func WithHistoryLimit(n int) Option {
	return func(o *options) {
		o.historyLimit = n
	}
}

// WithCodec sets the snapshot codec. Nil keeps the default PNG codec.
func WithCodec(c Codec) Option {
	return func(o *options) {
		if c != nil {
			o.codec = c
		}
	}
}

// WithFeedback sets the collaborator notified after Clear and exports.
func WithFeedback(f Feedback) Option {
	return func(o *options) {
		o.feedback = f
	}
}

// WithClock sets the time source used to name exported files.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.clock = now
		}
	}
}

// WithDeviceProvider shares a host GPU device with gg's accelerator.
// The provider typically comes from gogpu.App.GPUContextProvider().
// Sharing only takes effect when an accelerator is registered with
// gg.RegisterAccelerator and supports device sharing; otherwise the
// surface draws on the CPU rasteriser. Pending accelerator work is flushed
// before every snapshot, export and pixel read.
func WithDeviceProvider(p gpucontext.DeviceProvider) Option {
	return func(o *options) {
		o.provider = p
	}
}
