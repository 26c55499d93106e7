package assets

import (
	"image"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Placeholders generates count square tiles of the given size, each
// a diagonal gradient with its own hue. Used when no image directory
// is configured.
func Placeholders(count, size int) []image.Image {
	images := make([]image.Image, count)
	for i := range images {
		hue := float64(i) / float64(max(count, 1))
		images[i] = gradientTile(size, hue)
	}
	return images
}

func gradientTile(size int, hue float64) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	light := colorful.Hsv(degrees(hue), 0.45, 1.0)
	dark := colorful.Hsv(degrees(hue+0.08), 0.85, 0.55)
	span := float64(max(2*(size-1), 1))
	for y := range size {
		for x := range size {
			t := float64(x+y) / span
			img.SetNRGBA(x, y, color.NRGBA{
				R: lerp8(light.R, dark.R, t),
				G: lerp8(light.G, dark.G, t),
				B: lerp8(light.B, dark.B, t),
				A: 255,
			})
		}
	}
	return img
}

func lerp8(a, b, t float64) uint8 {
	return uint8(math.Round((a + (b-a)*t) * 255))
}

// Converts a hue in turns to degrees in [0, 360).
func degrees(turns float64) float64 {
	return (turns - math.Floor(turns)) * 360
}
