// Command carousel-preview renders carousel frames to image files
// without opening a window.
//
// Usage:
//
//	carousel-preview [-config carousel.yaml] [-out frames] [-mode sweep|fling]
//
// In sweep mode the offset grows by a fixed step per frame. In fling
// mode a drag is scripted and the settle animation recorded.
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/HugoSmits86/nativewebp"
	"github.com/edwinsyarief/carousel"
	"github.com/edwinsyarief/carousel/assets"
	"github.com/edwinsyarief/carousel/config"
	"github.com/edwinsyarief/carousel/preview"
)

var (
	configPath = flag.String("config", "", "configuration file (YAML)")
	outDir     = flag.String("out", "frames", "output directory")
	mode       = flag.String("mode", "sweep", "sweep or fling")
	format     = flag.String("format", "", "webp or png, overrides the config")
	frames     = flag.Int("frames", 0, "number of frames, overrides the config")
	fling      = flag.Float64("fling", -120, "drag distance in pixels for fling mode")
)

func main() {
	flag.Parse()

	file := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatal(err)
		}
		file = loaded
	}
	if *format != "" {
		file.Preview.Format = *format
	}
	if *frames > 0 {
		file.Preview.Frames = *frames
	}
	if err := file.Validate(); err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	count, err := run(ctx, file)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %d frames to %s in %v", count, *outDir, time.Since(start).Round(time.Millisecond))
}

func run(ctx context.Context, file *config.File) (int, error) {
	images, err := assets.Load(file.Images.Dir, file.Images.Placeholders, file.Images.MaxSide)
	if err != nil {
		return 0, err
	}
	engine, err := carousel.New(file.CarouselConfig(len(images)))
	if err != nil {
		return 0, err
	}

	offsets, err := timeline(engine, file)
	if err != nil {
		return 0, err
	}

	renderer, err := newRenderer(engine.Projector(), images, file)
	if err != nil {
		return 0, err
	}
	rendered, err := renderer.RenderFrames(ctx, offsets, file.Preview.Workers)
	if err != nil {
		return 0, err
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		return 0, fmt.Errorf("failed to create output dir: %w", err)
	}
	for i, frame := range rendered {
		name := filepath.Join(*outDir, fmt.Sprintf("frame_%04d.%s", i, file.Preview.Format))
		if err := writeFrame(name, frame, file.Preview.Format); err != nil {
			return i, err
		}
	}
	return len(rendered), nil
}

func timeline(engine *carousel.Carousel, file *config.File) ([]float64, error) {
	switch *mode {
	case "sweep":
		return preview.Sweep(0, file.Preview.Step, file.Preview.Frames), nil
	case "fling":
		dragFrames := max(file.Preview.Frames/6, 1)
		settleFrames := max(file.Preview.Frames-dragFrames, 0)
		return preview.Fling(engine, file.Carousel.Width, *fling, *fling*2, dragFrames, settleFrames)
	default:
		return nil, fmt.Errorf("unknown mode %q", *mode)
	}
}

func newRenderer(projector *carousel.Projector, images []image.Image, file *config.File) (*preview.Renderer, error) {
	colors, err := file.Colors()
	if err != nil {
		return nil, err
	}
	return preview.NewRenderer(projector, preview.Options{
		Viewport:          file.Viewport(),
		Sources:           images,
		ItemSize:          file.Style.ItemSize,
		CornerRadius:      file.Style.CornerRadius,
		Overlay:           colors.Overlay,
		OverlayBackground: colors.OverlayBackground,
		Background:        colors.Background,
		TrackColor:        colors.Track,
		TrackWidth:        2,
	})
}

func writeFrame(name string, frame image.Image, format string) error {
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	switch format {
	case "webp":
		err = nativewebp.Encode(f, frame, nil)
	case "png":
		err = png.Encode(f, frame)
	default:
		err = fmt.Errorf("unsupported format %q", format)
	}
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", name, err)
	}
	return f.Close()
}
