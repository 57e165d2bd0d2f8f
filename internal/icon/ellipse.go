package icon

import (
	"image"
	"image/color"
)

// FillEllipse rasterizes the ellipse inscribed in the inclusive box
// (x0,y0)-(x1,y1). Interior pixels take fill, the one-pixel boundary band
// takes outline, and pixels outside the ellipse are left untouched. A pixel
// belongs to the ellipse when its center lies on or within the boundary.
// Writes outside the canvas bounds are skipped.
func FillEllipse(img *image.NRGBA, x0, y0, x1, y1 int, fill, outline color.NRGBA) {
	cx := float64(x0+x1) / 2
	cy := float64(y0+y1) / 2
	rx := float64(x1-x0) / 2
	ry := float64(y1-y0) / 2
	if rx <= 0 || ry <= 0 {
		return
	}
	b := img.Bounds()
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if x < b.Min.X || x >= b.Max.X || y < b.Min.Y || y >= b.Max.Y {
				continue
			}
			dx := float64(x) - cx
			dy := float64(y) - cy
			if !inEllipse(dx, dy, rx, ry) {
				continue
			}
			if inEllipse(dx, dy, rx-1, ry-1) {
				img.SetNRGBA(x, y, fill)
			} else {
				img.SetNRGBA(x, y, outline)
			}
		}
	}
}

// inEllipse reports whether the offset (dx,dy) from the center lies on or
// within the ellipse with radii (rx,ry).
func inEllipse(dx, dy, rx, ry float64) bool {
	if rx <= 0 || ry <= 0 {
		return false
	}
	nx := dx / rx
	ny := dy / ry
	return nx*nx+ny*ny <= 1
}
