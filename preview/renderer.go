// Package preview renders carousel frames off-screen, without a
// window or a GPU. Frames are plain *image.RGBA values that can be
// encoded to disk or compared in tests.
package preview

import (
	"context"
	"errors"
	"image"
	"image/color"
	"math"

	"github.com/edwinsyarief/carousel"
	"github.com/edwinsyarief/carousel/utils"
	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
	"golang.org/x/sync/errgroup"
)

var ErrNoSources = errors.New("preview: one source image per item is required")

// Samples per unit of phase when stroking the track.
const trackSamplesPerPhase = 24

// Options configures a [Renderer].
type Options struct {
	Viewport carousel.Viewport

	// Item images, one per item index.
	Sources []image.Image

	// Unscaled side of the item frames. If zero, half the viewport
	// width is used.
	ItemSize float64

	CornerRadius      float64
	Overlay           color.Color // hue-rotated per item, optional
	OverlayBackground color.Color // optional
	Background        color.Color // optional, transparent if nil

	// Track stroke color and width. The track is only painted when
	// TrackColor is set.
	TrackColor color.Color
	TrackWidth float64
}

// Renderer paints frames for a fixed projector and set of sources.
// Renderers hold no mutable state after creation and can render
// frames from multiple goroutines.
type Renderer struct {
	projector *carousel.Projector
	options   Options
	width     int
	height    int
	squares   []image.Rectangle
}

// Creates a renderer for the given projector. The number of sources
// must match the projector item count.
func NewRenderer(projector *carousel.Projector, options Options) (*Renderer, error) {
	if len(options.Sources) != projector.ItemCount() {
		return nil, ErrNoSources
	}
	viewport := options.Viewport
	if !viewport.Valid() || viewport.Width < 1 || viewport.Height < 1 {
		return nil, carousel.ErrInvalidViewport
	}
	if options.ItemSize <= 0 {
		options.ItemSize = viewport.Width / 2
	}
	if options.TrackWidth <= 0 {
		options.TrackWidth = 1
	}

	squares := make([]image.Rectangle, len(options.Sources))
	for i, source := range options.Sources {
		if source == nil {
			return nil, ErrNoSources
		}
		squares[i] = utils.CenterSquareRect(source.Bounds())
	}

	return &Renderer{
		projector: projector,
		options:   options,
		width:     int(math.Ceil(viewport.Width)),
		height:    int(math.Ceil(viewport.Height)),
		squares:   squares,
	}, nil
}

// Returns the frame bounds.
func (self *Renderer) Bounds() image.Rectangle {
	return image.Rect(0, 0, self.width, self.height)
}

// RenderFrame paints the carousel at the given scroll offset.
func (self *Renderer) RenderFrame(offset float64) *image.RGBA {
	frame := image.NewRGBA(self.Bounds())
	if self.options.Background != nil {
		draw.Draw(frame, frame.Bounds(), image.NewUniform(self.options.Background), image.Point{}, draw.Src)
	}

	raster := vector.NewRasterizer(self.width, self.height)
	if self.options.TrackColor != nil {
		self.strokeTrack(raster)
		raster.Draw(frame, frame.Bounds(), image.NewUniform(self.options.TrackColor), image.Point{})
	}

	items := self.projector.AppendItems(nil, offset, self.options.Viewport)
	for _, i := range carousel.DepthOrder(items) {
		self.paintItem(frame, raster, items[i])
	}
	return frame
}

// RenderFrames renders one frame per offset using up to workers
// goroutines. Frames are returned in offset order. If the context
// is cancelled, rendering stops and the context error is returned.
func (self *Renderer) RenderFrames(ctx context.Context, offsets []float64, workers int) ([]*image.RGBA, error) {
	frames := make([]*image.RGBA, len(offsets))
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(max(workers, 1))
	for i, offset := range offsets {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			frames[i] = self.RenderFrame(offset)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return frames, nil
}

// --- painting ---

func (self *Renderer) paintItem(frame *image.RGBA, raster *vector.Rasterizer, item carousel.ProjectedItem) {
	size := self.options.ItemSize * item.Scale
	side := int(math.Round(size))
	if side < 1 {
		return
	}

	// the tile lives in frame coordinates, so the rasterizer mask
	// and the tile pixels line up without extra offsets
	x0 := int(math.Round(item.Position.X - float64(side)/2))
	y0 := int(math.Round(item.Position.Y - float64(side)/2))
	tile := image.NewRGBA(image.Rect(x0, y0, x0+side, y0+side))
	source := self.options.Sources[item.Index]
	draw.ApproxBiLinear.Scale(tile, tile.Bounds(), source, self.squares[item.Index], draw.Src, nil)

	if item.Tint > 0 {
		if self.options.OverlayBackground != nil {
			coat(tile, self.options.OverlayBackground, item.Tint)
		}
		if self.options.Overlay != nil {
			coat(tile, RotateHue(self.options.Overlay, item.Hue), item.Tint)
		}
	}

	radius := carousel.CornerRadius(self.options.CornerRadius, self.options.ItemSize, item.Scale) * item.Scale
	raster.Reset(self.width, self.height)
	addRoundedRect(raster, float32(x0), float32(y0), float32(side), float32(min(radius, size/2)))
	raster.Draw(frame, frame.Bounds(), tile, image.Point{})
}

// Strokes the closed track as a chain of thin quads.
func (self *Renderer) strokeTrack(raster *vector.Rasterizer) {
	viewport, radius := self.options.Viewport, self.projector.PathRadius()
	half := self.options.TrackWidth / 2
	samples := int(5 * trackSamplesPerPhase)
	prev := carousel.PathPosition(0, viewport, radius)
	for i := 1; i <= samples; i++ {
		next := carousel.PathPosition(5*float64(i)/float64(samples), viewport, radius)
		dx, dy := next.X-prev.X, next.Y-prev.Y
		length := math.Hypot(dx, dy)
		if length == 0 {
			continue
		}
		nx, ny := -dy/length*half, dx/length*half
		raster.MoveTo(float32(prev.X+nx), float32(prev.Y+ny))
		raster.LineTo(float32(next.X+nx), float32(next.Y+ny))
		raster.LineTo(float32(next.X-nx), float32(next.Y-ny))
		raster.LineTo(float32(prev.X-nx), float32(prev.Y-ny))
		raster.ClosePath()
		prev = next
	}
}

// Blends the given color over the whole tile with its alpha scaled
// by the given factor.
func coat(tile *image.RGBA, clr color.Color, alpha float64) {
	nrgba := color.NRGBAModel.Convert(clr).(color.NRGBA)
	nrgba.A = uint8(math.Round(float64(nrgba.A) * clamp01(alpha)))
	if nrgba.A == 0 {
		return
	}
	draw.Draw(tile, tile.Bounds(), image.NewUniform(nrgba), image.Point{}, draw.Over)
}

// Cubic Bézier circle approximation constant.
const kappa = 0.5522847

func addRoundedRect(raster *vector.Rasterizer, x, y, side, radius float32) {
	if radius <= 0 {
		raster.MoveTo(x, y)
		raster.LineTo(x+side, y)
		raster.LineTo(x+side, y+side)
		raster.LineTo(x, y+side)
		raster.ClosePath()
		return
	}
	k := radius * kappa
	right, bottom := x+side, y+side
	raster.MoveTo(x+radius, y)
	raster.LineTo(right-radius, y)
	raster.CubeTo(right-radius+k, y, right, y+radius-k, right, y+radius)
	raster.LineTo(right, bottom-radius)
	raster.CubeTo(right, bottom-radius+k, right-radius+k, bottom, right-radius, bottom)
	raster.LineTo(x+radius, bottom)
	raster.CubeTo(x+radius-k, bottom, x, bottom-radius+k, x, bottom-radius)
	raster.LineTo(x, y+radius)
	raster.CubeTo(x, y+radius-k, x+radius-k, y, x+radius, y)
	raster.ClosePath()
}

func clamp01(value float64) float64 {
	return min(max(value, 0), 1)
}
