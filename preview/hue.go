package preview

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// RotateHue rotates the hue of the given color by the given angle in
// radians, keeping its saturation and value. Alpha is preserved.
func RotateHue(clr color.Color, angle float64) color.NRGBA {
	nrgba := color.NRGBAModel.Convert(clr).(color.NRGBA)
	if angle == 0 {
		return nrgba
	}

	straight := colorful.Color{
		R: float64(nrgba.R) / 255,
		G: float64(nrgba.G) / 255,
		B: float64(nrgba.B) / 255,
	}
	hue, sat, val := straight.Hsv()
	hue = math.Mod(hue+angle*180/math.Pi, 360)
	if hue < 0 {
		hue += 360
	}
	if hue >= 360 {
		hue = 0
	}
	r, g, b := colorful.Hsv(hue, sat, val).RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: nrgba.A}
}
