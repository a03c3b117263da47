package loaders

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
)

type TextureLoader struct{}

func (tl *TextureLoader) Load(path string, params interface{}) (*Resource, error) {
	var flip bool
	if p, ok := params.(*ImageParams); ok && p != nil {
		flip = p.FlipY
	}

	// Open and decode the texture image file
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, format, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	data := toRGBA(img, flip)
	return &Resource{
		Name:     filepath.Base(path) + "." + format,
		FullPath: path,
		Type:     ResourceTypeImage,
		DataSize: uint64(len(data.Pixels)),
		Data:     data,
	}, nil
}

func (tl *TextureLoader) Unload(*Resource) error {
	return nil
}

// toRGBA converts any decoded image to packed RGBA8 rows.
func toRGBA(img image.Image, flip bool) *ImageData {
	bounds := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)

	stride := bounds.Dx() * 4
	pixels := make([]byte, stride*bounds.Dy())
	for y := 0; y < bounds.Dy(); y++ {
		src := y
		if flip {
			src = bounds.Dy() - 1 - y
		}
		copy(pixels[y*stride:(y+1)*stride], rgba.Pix[src*rgba.Stride:])
	}
	return &ImageData{
		Width:  int32(bounds.Dx()),
		Height: int32(bounds.Dy()),
		Pixels: pixels,
	}
}
