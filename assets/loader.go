// Package assets loads the images shown on a carousel.
//
// Decoding is headless, so the same loader feeds both the
// interactive demo and the preview renderer. PNG, JPEG, GIF, WebP
// and TGA files are supported.
package assets

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"slices"
	"strings"

	_ "github.com/ftrvxmtrx/tga"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// Returned by [LoadDir] when a directory holds no supported images.
var ErrNoImages = errors.New("assets: no images found")

var extensions = []string{".png", ".jpg", ".jpeg", ".gif", ".webp", ".tga"}

// Reports whether the file name has a supported image extension.
func IsImageFile(name string) bool {
	return slices.Contains(extensions, strings.ToLower(filepath.Ext(name)))
}

// LoadFile decodes a single image file.
func LoadFile(path string) (image.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("assets: read %s: %w", path, err)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", path, err)
	}
	return img, nil
}

// LoadDir decodes every supported image in the given directory,
// sorted by file name, and returns them with their names. If maxSide
// is positive, larger images are downscaled to fit it.
func LoadDir(dir string, maxSide int) ([]image.Image, []string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("assets: read dir %s: %w", dir, err)
	}

	var images []image.Image
	var names []string
	for _, entry := range entries { // os.ReadDir sorts by name
		if entry.IsDir() || !IsImageFile(entry.Name()) {
			continue
		}
		img, err := LoadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, nil, err
		}
		if maxSide > 0 {
			img = Fit(img, maxSide)
		}
		images = append(images, img)
		names = append(names, entry.Name())
	}
	if len(images) == 0 {
		return nil, nil, fmt.Errorf("%w in %s", ErrNoImages, dir)
	}
	return images, names, nil
}

// Fit downscales the image so that its shortest side is at most
// maxSide, preserving its aspect ratio. Images that already fit are
// returned unchanged.
func Fit(img image.Image, maxSide int) image.Image {
	bounds := img.Bounds()
	shortest := min(bounds.Dx(), bounds.Dy())
	if shortest <= maxSide || shortest == 0 {
		return img
	}
	ratio := float64(maxSide) / float64(shortest)
	width := max(int(float64(bounds.Dx())*ratio+0.5), 1)
	height := max(int(float64(bounds.Dy())*ratio+0.5), 1)
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Src, nil)
	return dst
}

// Load returns the images in dir, or count placeholders if dir is
// empty. Placeholders are maxSide pixels wide, or 256 if maxSide
// isn't positive.
func Load(dir string, count, maxSide int) ([]image.Image, error) {
	if dir == "" {
		if maxSide <= 0 {
			maxSide = 256
		}
		return Placeholders(count, maxSide), nil
	}
	images, _, err := LoadDir(dir, maxSide)
	return images, err
}
