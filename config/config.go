// Package config loads the YAML files that configure the carousel
// command-line tools.
//
// Example file:
//
//	window:
//	  width: 600
//	  height: 450
//	  title: Carousel
//	carousel:
//	  width: 400
//	  height: 250
//	  pathRadius: 20
//	  dragDamping: 0.4
//	  momentumWeight: 0.3
//	  ups: 60
//	spring:
//	  mass: 0.1
//	  stiffness: 20
//	  damping: 1.5
//	gesture:
//	  deadZone: 1
//	  projectionMs: 250
//	style:
//	  cornerRadius: 16
//	  overlay: "#6030a0"
//	  overlayBackground: "#00000060"
//	  background: "#101018"
//	  track: "#ffffff30"
//	images:
//	  dir: ./images
//	  placeholders: 8
//	  maxSide: 512
//	preview:
//	  frames: 48
//	  step: 0.125
//	  workers: 4
//	  format: webp
//
// Fields omitted from a file keep the values of [Default].
package config

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/edwinsyarief/carousel"
	"gopkg.in/yaml.v3"
)

// File mirrors the YAML configuration file.
type File struct {
	Window   WindowConfig   `yaml:"window"`
	Carousel CarouselConfig `yaml:"carousel"`
	Spring   SpringConfig   `yaml:"spring"`
	Gesture  GestureConfig  `yaml:"gesture"`
	Style    StyleConfig    `yaml:"style"`
	Images   ImagesConfig   `yaml:"images"`
	Preview  PreviewConfig  `yaml:"preview"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// CarouselConfig holds the viewport and the engine parameters.
type CarouselConfig struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	PathRadius     float64 `yaml:"pathRadius"`
	DragDamping    float64 `yaml:"dragDamping"`
	MomentumWeight float64 `yaml:"momentumWeight"`
	UPS            int     `yaml:"ups"`
}

type SpringConfig struct {
	Mass      float64 `yaml:"mass"`
	Stiffness float64 `yaml:"stiffness"`
	Damping   float64 `yaml:"damping"`
}

type GestureConfig struct {
	// Minimum pointer travel in pixels before a press becomes a drag.
	DeadZone float64 `yaml:"deadZone"`
	// Velocity extrapolation horizon for predicted drag ends.
	ProjectionMs int `yaml:"projectionMs"`
}

// StyleConfig holds colors as "#rrggbb" or "#rrggbbaa" strings.
type StyleConfig struct {
	CornerRadius      float64 `yaml:"cornerRadius"`
	ItemSize          float64 `yaml:"itemSize"`
	Overlay           string  `yaml:"overlay"`
	OverlayBackground string  `yaml:"overlayBackground"`
	Background        string  `yaml:"background"`
	Track             string  `yaml:"track"` // preview only
}

type ImagesConfig struct {
	// Directory to load images from. If empty, placeholders are
	// generated instead.
	Dir          string `yaml:"dir"`
	Placeholders int    `yaml:"placeholders"`
	MaxSide      int    `yaml:"maxSide"`
}

type PreviewConfig struct {
	Frames  int     `yaml:"frames"`
	Step    float64 `yaml:"step"`
	Workers int     `yaml:"workers"`
	Format  string  `yaml:"format"`
}

// Default returns the configuration used when no file is given.
func Default() *File {
	engine := carousel.DefaultConfig(8)
	return &File{
		Window: WindowConfig{Width: 600, Height: 450, Title: "Carousel"},
		Carousel: CarouselConfig{
			Width:          400,
			Height:         250,
			PathRadius:     engine.PathRadius,
			DragDamping:    engine.DragDamping,
			MomentumWeight: engine.MomentumWeight,
			UPS:            engine.UPS,
		},
		Spring: SpringConfig{
			Mass:      engine.Spring.Mass,
			Stiffness: engine.Spring.Stiffness,
			Damping:   engine.Spring.Damping,
		},
		Gesture: GestureConfig{DeadZone: 1, ProjectionMs: 250},
		Style: StyleConfig{
			CornerRadius:      16,
			Overlay:           "#6030a0",
			OverlayBackground: "#00000060",
			Background:        "#101018",
		},
		Images:  ImagesConfig{Placeholders: 8, MaxSide: 512},
		Preview: PreviewConfig{Frames: 48, Step: 0.125, Workers: 4, Format: "webp"},
	}
}

// Load reads a YAML configuration file on top of [Default] and
// validates it.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML configuration data on top of [Default] and
// validates it.
func Parse(data []byte) (*File, error) {
	file := Default()
	if err := yaml.Unmarshal(data, file); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := file.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return file, nil
}

// Validate checks the values that the engine doesn't validate
// itself. Engine parameters are checked through [carousel.Config].
func (self *File) Validate() error {
	if self.Window.Width <= 0 || self.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", self.Window.Width, self.Window.Height)
	}
	viewport := carousel.VP(self.Carousel.Width, self.Carousel.Height)
	if !viewport.Valid() || viewport.Width == 0 || viewport.Height == 0 {
		return fmt.Errorf("carousel size must be positive, got %s", viewport)
	}
	if self.Gesture.DeadZone < 0 || self.Gesture.ProjectionMs < 0 {
		return fmt.Errorf("gesture dead zone and projection must be >= 0")
	}
	if _, err := self.Colors(); err != nil {
		return err
	}
	if self.Images.Dir == "" && self.Images.Placeholders < 4 {
		return fmt.Errorf("at least 4 placeholders are required, got %d", self.Images.Placeholders)
	}
	switch self.Preview.Format {
	case "webp", "png":
	default:
		return fmt.Errorf("preview format must be webp or png, got %q", self.Preview.Format)
	}
	if self.Preview.Frames < 1 || self.Preview.Workers < 1 {
		return fmt.Errorf("preview frames and workers must be >= 1")
	}
	return self.CarouselConfig(4).Validate()
}

// Returns the viewport the carousel is laid out in.
func (self *File) Viewport() carousel.Viewport {
	return carousel.VP(self.Carousel.Width, self.Carousel.Height)
}

// Returns the gesture velocity projection horizon.
func (self *File) Projection() time.Duration {
	return time.Duration(self.Gesture.ProjectionMs) * time.Millisecond
}

// CarouselConfig converts the file into an engine configuration for
// the given number of items.
func (self *File) CarouselConfig(itemCount int) carousel.Config {
	config := carousel.DefaultConfig(itemCount)
	config.PathRadius = self.Carousel.PathRadius
	config.DragDamping = self.Carousel.DragDamping
	config.MomentumWeight = self.Carousel.MomentumWeight
	config.UPS = self.Carousel.UPS
	config.Spring = carousel.SpringConfig{
		Mass:      self.Spring.Mass,
		Stiffness: self.Spring.Stiffness,
		Damping:   self.Spring.Damping,
	}
	return config
}

// Colors holds the parsed style colors. Unset colors are nil.
type Colors struct {
	Overlay           color.Color
	OverlayBackground color.Color
	Background        color.Color
	Track             color.Color
}

// Colors parses the style colors. Errors name the offending field.
func (self *File) Colors() (Colors, error) {
	var colors Colors
	fields := []struct {
		name  string
		value string
		dst   *color.Color
	}{
		{"overlay", self.Style.Overlay, &colors.Overlay},
		{"overlayBackground", self.Style.OverlayBackground, &colors.OverlayBackground},
		{"background", self.Style.Background, &colors.Background},
		{"track", self.Style.Track, &colors.Track},
	}
	for _, field := range fields {
		clr, err := ParseColor(field.value)
		if err != nil {
			return Colors{}, fmt.Errorf("style %s: %w", field.name, err)
		}
		*field.dst = clr
	}
	return colors, nil
}

// ParseColor parses "#rrggbb" and "#rrggbbaa" strings. The empty
// string parses as nil, which disables the color. Alpha is applied
// as straight (non-premultiplied) alpha.
func ParseColor(value string) (color.Color, error) {
	if value == "" {
		return nil, nil
	}
	hex, ok := strings.CutPrefix(value, "#")
	if !ok || (len(hex) != 6 && len(hex) != 8) {
		return nil, fmt.Errorf("invalid color %q, expected #rrggbb or #rrggbbaa", value)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	packed, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid color %q: %w", value, err)
	}
	return color.NRGBA{
		R: uint8(packed >> 24),
		G: uint8(packed >> 16),
		B: uint8(packed >> 8),
		A: uint8(packed),
	}, nil
}
