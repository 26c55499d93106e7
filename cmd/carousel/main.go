// Command carousel opens a window with an interactive carousel.
//
// Usage:
//
//	carousel [-config carousel.yaml] [-images dir] [-items n]
//
// Drag horizontally to scroll, click or tap to advance by one item.
// Arrow keys advance and retreat, R resets the carousel and Escape
// cancels the drag in progress.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"log"

	"github.com/edwinsyarief/carousel"
	"github.com/edwinsyarief/carousel/assets"
	"github.com/edwinsyarief/carousel/config"
	"github.com/edwinsyarief/carousel/gesture"
	"github.com/edwinsyarief/carousel/render"
	"github.com/edwinsyarief/carousel/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	_ "github.com/silbinarywolf/preferdiscretegpu"
)

var (
	configPath = flag.String("config", "", "configuration file (YAML)")
	imagesDir  = flag.String("images", "", "directory to load item images from")
	itemCount  = flag.Int("items", 0, "number of placeholder items, overrides the config")
	verbose    = flag.Bool("verbose", false, "log gesture events")
)

type Game struct {
	config     *config.File
	carousel   *carousel.Carousel
	drawer     *render.Drawer
	sources    []*ebiten.Image
	poller     gesture.Poller
	background color.Color
	viewport   carousel.Viewport
	originX    int
	originY    int
}

func NewGame(file *config.File) (*Game, error) {
	images, err := loadImages(file)
	if err != nil {
		return nil, err
	}

	engine, err := carousel.New(file.CarouselConfig(len(images)))
	if err != nil {
		return nil, fmt.Errorf("failed to create carousel: %w", err)
	}

	sources := make([]*ebiten.Image, len(images))
	for i, img := range images {
		sources[i] = ebiten.NewImageFromImage(img)
	}

	colors, err := file.Colors()
	if err != nil {
		return nil, err
	}
	style := render.Style{
		ItemSize:          file.Style.ItemSize,
		CornerRadius:      file.Style.CornerRadius,
		Overlay:           colors.Overlay,
		OverlayBackground: colors.OverlayBackground,
	}

	viewport := file.Viewport()
	originX := (file.Window.Width - int(viewport.Width)) / 2
	originY := (file.Window.Height - int(viewport.Height)) / 2

	game := &Game{
		config:     file,
		carousel:   engine,
		drawer:     render.NewDrawer(style),
		sources:    sources,
		background: colors.Background,
		viewport:   viewport,
		originX:    originX,
		originY:    originY,
	}
	game.poller.OriginX = float64(originX)
	game.poller.OriginY = float64(originY)
	game.poller.Recognizer.DeadZone = file.Gesture.DeadZone
	game.poller.Recognizer.Projection = file.Projection()
	return game, nil
}

func loadImages(file *config.File) ([]image.Image, error) {
	images, err := assets.Load(file.Images.Dir, file.Images.Placeholders, file.Images.MaxSide)
	if err != nil {
		return nil, fmt.Errorf("failed to load images: %w", err)
	}
	if len(images) < 4 {
		return nil, fmt.Errorf("at least 4 images are required, found %d", len(images))
	}
	return images, nil
}

func (self *Game) Update() error {
	event := self.poller.Poll()
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		event = self.poller.Cancel()
	}
	if *verbose && event.Kind != gesture.None {
		log.Printf("%s translation=%.1f predicted=%.1f", event.Kind, event.Translation.X, event.Predicted.X)
	}

	width := self.viewport.Width
	switch event.Kind {
	case gesture.DragChanged:
		if err := self.carousel.DragChanged(event.Translation.X, width); err != nil {
			return err
		}
	case gesture.DragEnded:
		if _, err := self.carousel.DragEnded(event.Predicted.X, width); err != nil {
			return err
		}
	case gesture.Tap:
		self.carousel.Advance()
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		self.carousel.Advance()
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		self.carousel.Retreat()
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		if err := self.carousel.Reset(0); err != nil {
			return err
		}
	}

	self.carousel.Update()
	return nil
}

func (self *Game) Draw(screen *ebiten.Image) {
	if self.background != nil {
		screen.Fill(self.background)
	}

	items, err := self.carousel.Items(self.viewport)
	if err != nil {
		panic(err) // viewport is validated with the config
	}
	target := utils.SubImage(screen,
		self.originX, self.originY,
		self.originX+int(self.viewport.Width), self.originY+int(self.viewport.Height),
	)
	self.drawer.DrawItems(target, self.sources, items)

	state := self.carousel.State()
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"offset %.3f  committed %.0f  dragging %t  settling %t\nTPS %.0f",
		self.carousel.Offset(), state.Committed, state.Dragging,
		self.carousel.IsSettling(), ebiten.ActualTPS(),
	))
}

func (self *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return self.config.Window.Width, self.config.Window.Height
}

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
	if *imagesDir != "" {
		file.Images.Dir = *imagesDir
	}
	if *itemCount > 0 {
		file.Images.Dir = ""
		file.Images.Placeholders = *itemCount
	}
	if err := file.Validate(); err != nil {
		log.Fatal(err)
	}

	game, err := NewGame(file)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("carousel with %d items, viewport %s", game.carousel.ItemCount(), game.viewport)

	ebiten.SetWindowSize(file.Window.Width, file.Window.Height)
	ebiten.SetWindowTitle(file.Window.Title)
	ebiten.SetTPS(file.Carousel.UPS)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
