// Package imaging provides the image helpers consumed alongside the
// cache: cheap dimension probing, thumbnail-size math, and a resize
// that re-encodes to JPEG.
package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"

	// Register decoders for the formats the original supported.
	_ "image/gif"
	_ "image/png"

	xdraw "golang.org/x/image/draw"
)

// Info describes a decoded or probed image.
type Info struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Format string `json:"format"` // "png", "jpeg", "gif"
}

// Dimensions reads just enough of data to report size and format,
// without decoding pixels.
func Dimensions(data []byte) (Info, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return Info{}, fmt.Errorf("imaging: probe: %w", err)
	}
	return Info{Width: cfg.Width, Height: cfg.Height, Format: format}, nil
}

// ThumbnailSize fits (w, h) inside a maxSize square, preserving aspect
// ratio and never upscaling.
func ThumbnailSize(w, h, maxSize int) (int, int) {
	if w <= 0 || h <= 0 || maxSize <= 0 {
		return 0, 0
	}
	if w >= h {
		tw := maxSize
		if w < maxSize {
			tw = w
		}
		th := int(float64(tw) * float64(h) / float64(w))
		if th < 1 {
			th = 1
		}
		return tw, th
	}
	th := maxSize
	if h < maxSize {
		th = h
	}
	tw := int(float64(th) * float64(w) / float64(h))
	if tw < 1 {
		tw = 1
	}
	return tw, th
}

// jpegQuality matches the original encoder settings.
const jpegQuality = 85

// Resize decodes data, scales it to width×height with Catmull-Rom
// filtering, and re-encodes as JPEG.
func Resize(data []byte, width, height int) ([]byte, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("imaging: invalid target %dx%d", width, height)
	}
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("imaging: decode: %w", err)
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("imaging: encode: %w", err)
	}
	return buf.Bytes(), nil
}
