// Package icon renders the green-dot tray icon — a filled circle with a
// darker outline on a transparent background — and writes it as an ICO
// container or PNG.
package icon

import (
	"image"
	"image/color"
)

// BaseSize is the canvas edge of the reference icon in pixels.
const BaseSize = 16

// Bounding box of the dot on the reference canvas, inclusive corners.
const (
	boxMin = 3
	boxMax = 13
)

// Palette. The dot is opaque green with a darker one-pixel outline; the rest
// of the canvas stays transparent.
var (
	Fill    = color.NRGBA{G: 200, A: 255}
	Outline = color.NRGBA{G: 150, A: 255}
)

// New returns a fully transparent square canvas of the given edge size.
func New(size int) *image.NRGBA {
	return image.NewNRGBA(image.Rect(0, 0, size, size))
}

// Render draws the dot on a fresh transparent canvas. Geometry scales
// proportionally from the 16px reference, so Render(BaseSize) reproduces the
// reference icon exactly.
func Render(size int) *image.NRGBA {
	img := New(size)
	FillEllipse(img,
		boxMin*size/BaseSize, boxMin*size/BaseSize,
		boxMax*size/BaseSize, boxMax*size/BaseSize,
		Fill, Outline)
	return img
}
