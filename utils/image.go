package utils

import (
	"bytes"
	"image"
	"image/draw"
	"image/jpeg"

	_ "image/gif"
	_ "image/png"
)

// MaxImageBytes is the hard ceiling for uploaded images, checked before any
// decoding happens.
const MaxImageBytes = 2 * 1024 * 1024

const (
	startQuality = 85
	qualityStep  = 10
	minQuality   = 10
)

// NormalizedImage is the result of a best-effort re-encode. Reencoded is false
// when the original bytes were kept because decoding or encoding failed; a
// broken re-encode must never block report submission.
type NormalizedImage struct {
	Data      []byte
	Reencoded bool
}

// NormalizeImage re-encodes the payload as JPEG, stepping the quality down
// until the result fits maxBytes or the quality floor is reached. The floor
// result is kept even if it is still over budget.
func NormalizeImage(data []byte, maxBytes int) NormalizedImage {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		LogError(err, "Image decoding failed, keeping original payload")
		return NormalizedImage{Data: data}
	}

	// Flatten alpha and palette images onto a white background, the JPEG
	// encoder has no alpha channel.
	bounds := img.Bounds()
	flat := image.NewRGBA(bounds)
	draw.Draw(flat, bounds, image.White, image.Point{}, draw.Src)
	draw.Draw(flat, bounds, img, bounds.Min, draw.Over)

	var buf bytes.Buffer
	for quality := startQuality; quality > minQuality; quality -= qualityStep {
		buf.Reset()
		if err := jpeg.Encode(&buf, flat, &jpeg.Options{Quality: quality}); err != nil {
			LogError(err, "Image encoding failed, keeping original payload")
			return NormalizedImage{Data: data}
		}
		if buf.Len() <= maxBytes {
			break
		}
	}

	return NormalizedImage{Data: buf.Bytes(), Reencoded: true}
}
