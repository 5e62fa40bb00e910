// Package imaging normalizes uploaded images for storage: raw bytes in,
// bounded-size encoded bytes out, or a size-exceeded error.
package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"

	_ "image/gif"
	_ "image/png"

	"golang.org/x/image/draw"
)

const (
	// MaxUploadBytes is checked before any decode work happens.
	MaxUploadBytes = 500 * 1024

	maxDimension = 800
	jpegQuality  = 80
)

var ErrTooLarge = errors.New("image exceeds the upload size limit")

// Normalize rejects oversized inputs, then downscales anything wider or
// taller than 800px to fit, re-encoding as JPEG. Images already inside the
// bounds pass through byte-for-byte unchanged.
func Normalize(raw []byte) ([]byte, error) {
	if len(raw) > MaxUploadBytes {
		return nil, ErrTooLarge
	}

	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= maxDimension && h <= maxDimension {
		return raw, nil
	}

	if w > h {
		h = h * maxDimension / w
		w = maxDimension
	} else {
		w = w * maxDimension / h
		h = maxDimension
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	var out bytes.Buffer
	if err := jpeg.Encode(&out, dst, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("encode image: %w", err)
	}
	return out.Bytes(), nil
}
