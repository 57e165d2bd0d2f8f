package icon

import (
	"image"
	"image/color"
	"testing"
)

var transparent = color.NRGBA{}

// at reads a pixel back as NRGBA.
func at(img *image.NRGBA, x, y int) color.NRGBA {
	return img.NRGBAAt(x, y)
}

func TestFillEllipseRegions(t *testing.T) {
	img := New(BaseSize)
	FillEllipse(img, 3, 3, 13, 13, Fill, Outline)

	tests := []struct {
		name string
		x, y int
		want color.NRGBA
	}{
		{"center", 8, 8, Fill},
		{"interior left", 4, 8, Fill},
		{"interior diagonal", 6, 6, Fill},
		{"boundary left", 3, 8, Outline},
		{"boundary right", 13, 8, Outline},
		{"boundary top", 8, 3, Outline},
		{"boundary bottom", 8, 13, Outline},
		{"boundary diagonal", 5, 5, Outline},
		{"box corner", 3, 3, transparent},
		{"box corner opposite", 13, 13, transparent},
		{"inside box outside ellipse", 4, 4, transparent},
		{"outside box", 2, 8, transparent},
		{"canvas corner", 0, 0, transparent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := at(img, tt.x, tt.y); got != tt.want {
				t.Errorf("pixel (%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestFillEllipseLeavesOutsideBoxTransparent(t *testing.T) {
	img := New(BaseSize)
	FillEllipse(img, 3, 3, 13, 13, Fill, Outline)

	for y := 0; y < BaseSize; y++ {
		for x := 0; x < BaseSize; x++ {
			if x >= 3 && x <= 13 && y >= 3 && y <= 13 {
				continue
			}
			if got := at(img, x, y); got.A != 0 {
				t.Fatalf("pixel (%d,%d) outside the box has alpha %d", x, y, got.A)
			}
		}
	}
}

func TestFillEllipseDegenerateBox(t *testing.T) {
	img := New(BaseSize)
	FillEllipse(img, 5, 3, 5, 13, Fill, Outline)

	for y := 0; y < BaseSize; y++ {
		for x := 0; x < BaseSize; x++ {
			if got := at(img, x, y); got != transparent {
				t.Fatalf("degenerate box painted pixel (%d,%d)", x, y)
			}
		}
	}
}

func TestFillEllipseClipsToCanvas(t *testing.T) {
	img := New(8)
	// Box extends past every canvas edge; must not panic, and pixels
	// written must stay inside the canvas.
	FillEllipse(img, -4, -4, 11, 11, Fill, Outline)

	if got := at(img, 4, 4); got != Fill {
		t.Errorf("canvas-interior pixel = %v, want fill", got)
	}
}
