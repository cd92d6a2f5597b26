package sdlhost

import (
	"image"
	"image/color"

	"github.com/BrandonKowalski/swipeaction/pkg/swipeaction/internal"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// labelScale is the integer upscale applied when copying 7x13 glyphs to screen.
const labelScale = 2

type labelKey struct {
	text  string
	color color.RGBA
}

// LabelCache rasterises row labels with the built-in bitmap face.
type LabelCache struct {
	images *internal.LRU[labelKey, *image.RGBA]
}

func NewLabelCache(size int) *LabelCache {
	return &LabelCache{images: internal.NewLRUWithSize[labelKey, *image.RGBA](size, nil)}
}

// Render returns the label image for text, at least one pixel wide.
func (c *LabelCache) Render(text string, col color.RGBA) *image.RGBA {
	key := labelKey{text: text, color: col}
	if img, ok := c.images.Get(key); ok {
		return img
	}

	face := basicfont.Face7x13
	metrics := face.Metrics()
	width := max(font.MeasureString(face, text).Ceil(), 1)

	img := image.NewRGBA(image.Rect(0, 0, width, metrics.Height.Ceil()))
	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(0, metrics.Ascent.Ceil()),
	}
	drawer.DrawString(text)

	c.images.Set(key, img)
	return img
}
