package opengl

import (
	"image"

	"github.com/spaghettifunk/glrhi/engine/core"
	"github.com/spaghettifunk/glrhi/engine/math"
	"github.com/spaghettifunk/glrhi/engine/renderer/gl"
)

// ReadPixels copies rect of the current read framebuffer into an RGBA image.
// Rows are flipped so the image origin is the top left corner.
func (c *Context) ReadPixels(rect math.Rect) *image.RGBA {
	if rect.Width <= 0 || rect.Height <= 0 {
		core.LogWarn("read pixels: empty rectangle %dx%d", rect.Width, rect.Height)
		return nil
	}
	c.FlushCommand()

	stride := int(rect.Width) * 4
	pixels := make([]byte, stride*int(rect.Height))
	c.fns.ReadPixels(rect.X, rect.Y, rect.Width, rect.Height, gl.RGBA, gl.UNSIGNED_BYTE, pixels)

	img := image.NewRGBA(image.Rect(0, 0, int(rect.Width), int(rect.Height)))
	for y := 0; y < int(rect.Height); y++ {
		src := pixels[(int(rect.Height)-1-y)*stride:][:stride]
		copy(img.Pix[y*img.Stride:], src)
	}
	return img
}
