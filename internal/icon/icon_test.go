package icon

import "testing"

func TestNewIsTransparent(t *testing.T) {
	img := New(BaseSize)
	b := img.Bounds()
	if b.Dx() != BaseSize || b.Dy() != BaseSize {
		t.Fatalf("canvas is %dx%d, want %dx%d", b.Dx(), b.Dy(), BaseSize, BaseSize)
	}
	for y := 0; y < BaseSize; y++ {
		for x := 0; x < BaseSize; x++ {
			if c := img.NRGBAAt(x, y); c.A != 0 {
				t.Fatalf("fresh canvas pixel (%d,%d) has alpha %d", x, y, c.A)
			}
		}
	}
}

func TestRenderReferenceIcon(t *testing.T) {
	img := Render(BaseSize)
	if got := img.NRGBAAt(8, 8); got != Fill {
		t.Errorf("center pixel = %v, want %v", got, Fill)
	}
	if got := img.NRGBAAt(3, 8); got != Outline {
		t.Errorf("boundary pixel = %v, want %v", got, Outline)
	}
}

func TestRenderScalesGeometry(t *testing.T) {
	img := Render(32)
	b := img.Bounds()
	if b.Dx() != 32 || b.Dy() != 32 {
		t.Fatalf("canvas is %dx%d, want 32x32", b.Dx(), b.Dy())
	}
	if got := img.NRGBAAt(16, 16); got != Fill {
		t.Errorf("center pixel = %v, want %v", got, Fill)
	}
	// The dot occupies the scaled box (6,6)-(26,26); corners stay clear.
	if got := img.NRGBAAt(1, 1); got.A != 0 {
		t.Errorf("corner pixel has alpha %d", got.A)
	}
}
