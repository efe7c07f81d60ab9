package sketchpad

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
)

// Codec serializes buffer snapshots for the undo history.
type Codec interface {
	// Name identifies the codec in logs ("png", "bmp").
	Name() string
	Encode(img *image.RGBA) ([]byte, error)
	Decode(data []byte) (*image.RGBA, error)
}

// PNGCodec stores snapshots as PNG. It is the default: snapshots are small
// and round-trip opaque pixels exactly.
type PNGCodec struct {
	Level png.CompressionLevel
}

// Name implements Codec.
func (PNGCodec) Name() string { return "png" }

// Encode implements Codec.
func (c PNGCodec) Encode(img *image.RGBA) ([]byte, error) {
	var buf bytes.Buffer
	enc := png.Encoder{CompressionLevel: c.Level}
	if err := enc.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode implements Codec.
func (PNGCodec) Decode(data []byte) (*image.RGBA, error) {
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return toRGBA(img), nil
}

// BMPCodec stores snapshots as uncompressed BMP. It trades memory for
// cheaper commits on large surfaces.
type BMPCodec struct{}

// Name implements Codec.
func (BMPCodec) Name() string { return "bmp" }

// Encode implements Codec.
func (BMPCodec) Encode(img *image.RGBA) ([]byte, error) {
	var buf bytes.Buffer
	if err := bmp.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode implements Codec.
func (BMPCodec) Decode(data []byte) (*image.RGBA, error) {
	img, err := bmp.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return toRGBA(img), nil
}

// CodecByName returns the snapshot codec with the given name.
func CodecByName(name string) (Codec, error) {
	switch name {
	case "", "png":
		return PNGCodec{}, nil
	case "bmp":
		return BMPCodec{}, nil
	default:
		return nil, fmt.Errorf("sketchpad: unknown codec %q", name)
	}
}

// toRGBA returns img as a zero-origin *image.RGBA, converting if needed.
func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) && rgba.Stride == 4*rgba.Rect.Dx() {
		return rgba
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Copy(dst, image.Point{}, img, b, draw.Src, nil)
	return dst
}
