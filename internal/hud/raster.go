package hud

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const padding = 4

var face = basicfont.Face7x13

// LineHeight is the pixel height of one overlay row.
func LineHeight() int {
	return face.Metrics().Height.Ceil()
}

// Rasterize draws lines onto a transparent-backed RGBA image sized to fit.
// Rows are separated by LineHeight and the background is a translucent panel.
func Rasterize(lines []string, fg, bg color.Color) *image.RGBA {
	d := &font.Drawer{Face: face, Src: image.NewUniform(fg)}

	width := 0
	for _, l := range lines {
		if w := d.MeasureString(l).Ceil(); w > width {
			width = w
		}
	}
	lh := LineHeight()
	rect := image.Rect(0, 0, width+2*padding, len(lines)*lh+2*padding)

	img := image.NewRGBA(rect)
	draw.Draw(img, rect, image.NewUniform(bg), image.Point{}, draw.Src)

	d.Dst = img
	ascent := face.Metrics().Ascent.Ceil()
	for i, l := range lines {
		d.Dot = fixed.P(padding, padding+i*lh+ascent)
		d.DrawString(l)
	}
	return img
}
