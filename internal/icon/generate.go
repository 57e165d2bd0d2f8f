package icon

import (
	"fmt"
	"image"
	"image/png"
	"os"
)

// Generate renders the 16×16 reference icon and writes it to path as a
// single-entry ICO container, overwriting any existing file.
func Generate(path string) error {
	return GenerateSizes(path, nil)
}

// GenerateSizes writes an ICO container with one embedded image per
// requested edge size. An empty size list means the single 16px default.
// ICO directory entries cap at 256px.
func GenerateSizes(path string, sizes []int) error {
	if len(sizes) == 0 {
		sizes = []int{BaseSize}
	}
	images := make([]image.Image, 0, len(sizes))
	for _, s := range sizes {
		if s < 1 || s > 256 {
			return fmt.Errorf("icon size %d out of range 1..256", s)
		}
		images = append(images, Render(s))
	}
	return writeFile(path, func(f *os.File) error {
		return EncodeICO(f, images...)
	})
}

// GeneratePNG renders the icon at the given edge size and writes it as PNG.
func GeneratePNG(path string, size int) error {
	if size < 1 {
		return fmt.Errorf("icon size %d out of range", size)
	}
	img := Render(size)
	return writeFile(path, func(f *os.File) error {
		return png.Encode(f, img)
	})
}

// writeFile creates path, runs encode against the handle, and guarantees the
// handle is closed on every exit path. The first error wins.
func writeFile(path string, encode func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := encode(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
