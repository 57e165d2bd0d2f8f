package icon

import (
	"image"
	"math"

	xdraw "golang.org/x/image/draw"
)

// Scale resamples src onto a transparent size×size canvas using CatmullRom,
// preserving aspect ratio and centering the result. Used to upscale the 16px
// master for tray bars that render small icons blurry.
func Scale(src image.Image, size int) *image.NRGBA {
	sb := src.Bounds()
	scale := math.Min(float64(size)/float64(sb.Dx()), float64(size)/float64(sb.Dy()))
	w := int(math.Round(float64(sb.Dx()) * scale))
	h := int(math.Round(float64(sb.Dy()) * scale))

	dst := image.NewNRGBA(image.Rect(0, 0, size, size))
	off := image.Pt((size-w)/2, (size-h)/2)
	dr := image.Rectangle{Min: off, Max: off.Add(image.Pt(w, h))}
	xdraw.CatmullRom.Scale(dst, dr, src, sb, xdraw.Over, nil)
	return dst
}
