package icon

import (
	"image"
	"io"

	ico "github.com/sergeymakinen/go-ico"
)

// EncodeICO writes an ICO container with one directory entry per image. Each
// entry's declared size matches the image's bounds.
func EncodeICO(w io.Writer, images ...image.Image) error {
	if len(images) == 1 {
		return ico.Encode(w, images[0])
	}
	return ico.EncodeAll(w, images)
}
