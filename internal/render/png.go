package render

import (
	"image"
	"image/png"
	"io"
	"os"

	"github.com/pkg/errors"
)

// WritePNG encodes img as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return errors.Wrap(err, "render: encode png")
	}
	return nil
}

// SavePNG writes img to path.
func SavePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "render: create %s", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "render: close %s", path)
		}
	}()
	return WritePNG(f, img)
}
