package sdlhost

import (
	"errors"
	"image"
	"unsafe"

	"github.com/BrandonKowalski/swipeaction/pkg/swipeaction"
	"github.com/BrandonKowalski/swipeaction/pkg/swipeaction/internal"
	"github.com/veandco/go-sdl2/sdl"
)

const defaultTextureCacheSize = 12

var errEmptyImage = errors.New("empty image")

// TextureCache keeps GPU copies of rendered backgrounds. Images are keyed by
// identity, which matches the BackgroundRenderer returning the same image
// for a repeated render. Evicted textures are destroyed.
type TextureCache struct {
	renderer *sdl.Renderer
	textures *internal.LRU[*image.RGBA, *sdl.Texture]
}

func NewTextureCache(renderer *sdl.Renderer) *TextureCache {
	return NewTextureCacheWithSize(renderer, defaultTextureCacheSize)
}

func NewTextureCacheWithSize(renderer *sdl.Renderer, maxSize int) *TextureCache {
	return &TextureCache{
		renderer: renderer,
		textures: internal.NewLRUWithSize(maxSize, func(_ *image.RGBA, tex *sdl.Texture) {
			tex.Destroy()
		}),
	}
}

// Get returns the texture for img, uploading it on first use.
func (c *TextureCache) Get(img *image.RGBA) (*sdl.Texture, error) {
	if tex, ok := c.textures.Get(img); ok {
		return tex, nil
	}

	tex, err := Upload(c.renderer, img)
	if err != nil {
		return nil, err
	}
	c.textures.Set(img, tex)
	return tex, nil
}

// Destroy releases every cached texture.
func (c *TextureCache) Destroy() {
	c.textures.Purge()
}

// Upload copies img into a new static texture with alpha blending enabled.
func Upload(renderer *sdl.Renderer, img *image.RGBA) (*sdl.Texture, error) {
	b := img.Bounds()
	if b.Empty() {
		return nil, swipeaction.NewInfrastructureError("upload_texture", errEmptyImage)
	}

	tex, err := renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888), int(sdl.TEXTUREACCESS_STATIC), int32(b.Dx()), int32(b.Dy()))
	if err != nil {
		return nil, swipeaction.NewInfrastructureError("upload_texture", err)
	}

	start := img.PixOffset(b.Min.X, b.Min.Y)
	if err := tex.Update(nil, unsafe.Pointer(&img.Pix[start]), img.Stride); err != nil {
		tex.Destroy()
		return nil, swipeaction.NewInfrastructureError("upload_texture", err)
	}

	if err := tex.SetBlendMode(sdl.BLENDMODE_BLEND); err != nil {
		internal.GetInternalLogger().Warn("Failed to enable texture blending", "error", err)
	}

	return tex, nil
}
