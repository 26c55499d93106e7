package utils

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Alias for image.Rectangle.
type Rectangle = image.Rectangle

// Syntax sugar for [ebiten.Image.SubImage]() passing explicit
// coordinates instead of [image.Rectangle] and returning [*ebiten.Image]
// instead of [image.Image].
func SubImage(source *ebiten.Image, minX, minY, maxX, maxY int) *ebiten.Image {
	return source.SubImage(Rect(minX, minY, maxX, maxY)).(*ebiten.Image)
}

// Returns the largest square subimage centered on the given source.
// This is the crop used to fill square item frames without
// distorting the image.
func CenterSquare(source *ebiten.Image) *ebiten.Image {
	return source.SubImage(CenterSquareRect(source.Bounds())).(*ebiten.Image)
}

// Returns the largest square centered within the given bounds.
func CenterSquareRect(bounds image.Rectangle) image.Rectangle {
	width, height := bounds.Dx(), bounds.Dy()
	side := min(width, height)
	minX := bounds.Min.X + (width-side)/2
	minY := bounds.Min.Y + (height-side)/2
	return Rect(minX, minY, minX+side, minY+side)
}

// Returns the GeoM that scales the given source to the given size
// and places it at (x, y) of a target.
//
// Target coordinates are global: if the target is itself a
// subimage, its bounds origin must be added to (x, y) manually.
func GeoMFit(source *ebiten.Image, x, y, width, height float64) ebiten.GeoM {
	var geom ebiten.GeoM
	bounds := source.Bounds()
	geom.Scale(width/float64(bounds.Dx()), height/float64(bounds.Dy()))
	geom.Translate(x, y)
	return geom
}

// Alias for [image.Rect]().
func Rect(minX, minY, maxX, maxY int) image.Rectangle {
	return image.Rect(minX, minY, maxX, maxY)
}

// Returns [color.RGBA]{r, g, b, 255}.
func RGB(r, g, b uint8) color.RGBA {
	return color.RGBA{r, g, b, 255}
}

// Returns [color.RGBA]{r, g, b, a} after checking that the
// given values constitute a valid premultiplied-alpha color
// (a >= r,g,b). On invalid colors, the function panics.
func RGBA(r, g, b, a uint8) color.RGBA {
	if r > a || g > a || b > a {
		panic("invalid color.RGBA values: premultiplied-alpha requires a >= r,g,b")
	}
	return color.RGBA{r, g, b, a}
}
