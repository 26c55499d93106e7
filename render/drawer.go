// This package paints projected carousel items with Ebitengine.
//
// Each item is composed on a reusable offscreen tile: the source
// image is cropped to a centered square, clipped to a rounded
// rectangle whose corners grow as the item recedes, coated with a
// hue-rotated tint proportional to the item depth, and finally
// projected onto the target at the item position and scale.
package render

import (
	"image/color"
	"math"

	"github.com/edwinsyarief/carousel"
	"github.com/edwinsyarief/carousel/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/colorm"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Style configures how items are painted.
type Style struct {
	// Unscaled side of the item frames, in pixels. If zero, half
	// the target width is used.
	ItemSize float64

	// Corner radius of the item at full scale.
	CornerRadius float64

	// Overlay tint. It's hue-rotated per item and its opacity
	// follows the item tint intensity.
	Overlay color.Color

	// Flat coat laid under the overlay, also at the tint opacity.
	// Optional.
	OverlayBackground color.Color
}

// Returns the style the demo uses.
func DefaultStyle() Style {
	return Style{
		CornerRadius:      16,
		Overlay:           utils.RGB(96, 48, 160),
		OverlayBackground: utils.RGBA(0, 0, 0, 96),
	}
}

// Drawer paints carousel items. Drawers keep an offscreen tile
// that's reused between items, so create one per carousel and
// don't invoke this per frame.
type Drawer struct {
	style    Style
	tile     *ebiten.Image
	tileSize int
	white    *ebiten.Image
	opts     ebiten.DrawImageOptions
	cmOpts   colorm.DrawImageOptions
	order    []int
}

// Creates a new drawer with the given style.
func NewDrawer(style Style) *Drawer {
	white := ebiten.NewImage(1, 1)
	white.Fill(color.White)
	return &Drawer{style: style, white: white}
}

// Returns the drawer style.
func (self *Drawer) Style() Style {
	return self.style
}

// Returns the unscaled item size that will be used on the given
// target.
func (self *Drawer) ItemSize(target *ebiten.Image) float64 {
	if self.style.ItemSize > 0 {
		return self.style.ItemSize
	}
	return float64(target.Bounds().Dx()) / 2
}

// Draws all the given items back to front. sources[i] is used for
// the item with Index i; nil sources are skipped.
func (self *Drawer) DrawItems(target *ebiten.Image, sources []*ebiten.Image, items []carousel.ProjectedItem) {
	self.order = self.order[:0]
	self.order = append(self.order, carousel.DepthOrder(items)...)
	for _, i := range self.order {
		item := items[i]
		if item.Index < 0 || item.Index >= len(sources) || sources[item.Index] == nil {
			continue
		}
		self.DrawItem(target, sources[item.Index], item)
	}
}

// Draws a single item centered on its projected position. Positions
// are relative to the target bounds, so targets can be subimages
// for the carousel viewport.
func (self *Drawer) DrawItem(target, source *ebiten.Image, item carousel.ProjectedItem) {
	size := self.ItemSize(target)
	tile := self.ensureTile(int(math.Ceil(size)))
	side := float64(self.tileSize)
	tile.Clear()

	// rounded clip mask
	radius := carousel.CornerRadius(self.style.CornerRadius, size, item.Scale)
	fillRoundedRect(tile, float32(side), float32(min(radius, side/2)))

	// image, clipped by the mask
	square := utils.CenterSquare(source)
	self.opts.GeoM = utils.GeoMFit(square, 0, 0, side, side)
	self.opts.Blend = ebiten.BlendSourceIn
	self.opts.Filter = ebiten.FilterLinear
	tile.DrawImage(square, &self.opts)
	self.resetOpts()

	// depth tint
	if item.Tint > 0 {
		if self.style.OverlayBackground != nil {
			self.coat(tile, side, self.style.OverlayBackground, 0, item.Tint)
		}
		if self.style.Overlay != nil {
			self.coat(tile, side, self.style.Overlay, item.Hue, item.Tint)
		}
	}

	// projection
	origin := target.Bounds().Min
	self.opts.GeoM.Translate(-side/2, -side/2)
	self.opts.GeoM.Scale(item.Scale, item.Scale)
	self.opts.GeoM.Translate(item.Position.X+float64(origin.X), item.Position.Y+float64(origin.Y))
	self.opts.Filter = ebiten.FilterLinear
	target.DrawImage(tile, &self.opts)
	self.resetOpts()
}

// Coats the opaque area of the tile with the given color, rotated
// by hue radians and scaled by alpha.
func (self *Drawer) coat(tile *ebiten.Image, side float64, clr color.Color, hue, alpha float64) {
	var cm colorm.ColorM
	cm.ScaleWithColor(clr)
	if hue != 0 {
		cm.RotateHue(hue)
	}
	cm.Scale(1, 1, 1, alpha)
	self.cmOpts.GeoM.Scale(side, side)
	self.cmOpts.Blend = ebiten.BlendSourceAtop
	colorm.DrawImage(tile, self.white, cm, &self.cmOpts)
	self.cmOpts.GeoM.Reset()
	self.cmOpts.Blend = ebiten.Blend{}
}

func (self *Drawer) ensureTile(size int) *ebiten.Image {
	size = max(size, 1)
	if self.tile == nil || self.tileSize != size {
		if self.tile != nil {
			self.tile.Deallocate()
		}
		self.tile = ebiten.NewImage(size, size)
		self.tileSize = size
	}
	return self.tile
}

func (self *Drawer) resetOpts() {
	self.opts.GeoM.Reset()
	self.opts.Blend = ebiten.Blend{}
	self.opts.Filter = ebiten.FilterNearest
}

// Fills a white rounded square of the given side at the tile origin.
func fillRoundedRect(target *ebiten.Image, side, radius float32) {
	if radius <= 0 {
		vector.DrawFilledRect(target, 0, 0, side, side, color.White, false)
		return
	}
	vector.DrawFilledRect(target, radius, 0, side-2*radius, side, color.White, true)
	vector.DrawFilledRect(target, 0, radius, side, side-2*radius, color.White, true)
	vector.DrawFilledCircle(target, radius, radius, radius, color.White, true)
	vector.DrawFilledCircle(target, side-radius, radius, radius, color.White, true)
	vector.DrawFilledCircle(target, radius, side-radius, radius, color.White, true)
	vector.DrawFilledCircle(target, side-radius, side-radius, radius, color.White, true)
}
