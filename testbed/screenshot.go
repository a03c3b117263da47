package testbed

import (
	"errors"
	"fmt"
	"image"
	"os"

	"golang.org/x/image/bmp"
)

// writeScreenshot encodes img as a BMP file at path.
func writeScreenshot(path string, img *image.RGBA) error {
	if img == nil {
		return errors.New("no pixels read back")
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := bmp.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
