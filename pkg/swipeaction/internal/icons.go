package internal

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// RasterizeIcon renders SVG source into an RGBA image of the given size.
func RasterizeIcon(svg []byte, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid icon size %dx%d", width, height)
	}

	icon, err := oksvg.ReadIconStream(bytes.NewReader(svg), oksvg.WarnErrorMode)
	if err != nil {
		return nil, err
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	icon.SetTarget(0, 0, float64(width), float64(height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(width, height, scanner), 1.0)

	return img, nil
}

// ComposeBackground fills a width x height canvas and places the icon, if any,
// vertically centred against the left or right edge inside the padding.
func ComposeBackground(fill color.Color, icon image.Image, width, height int, pad Padding, iconLeft bool) *image.RGBA {
	canvas := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(fill), image.Point{}, draw.Src)

	if icon == nil {
		return canvas
	}

	b := icon.Bounds()
	x := pad.Left
	if !iconLeft {
		x = width - pad.Right - b.Dx()
	}
	y := (height - b.Dy()) / 2

	dst := image.Rect(x, y, x+b.Dx(), y+b.Dy())
	draw.Draw(canvas, dst, icon, b.Min, draw.Over)

	return canvas
}

// Dim blends an overlay over a copy of img.
func Dim(img *image.RGBA, overlay color.Color) *image.RGBA {
	out := image.NewRGBA(img.Bounds())
	draw.Draw(out, out.Bounds(), img, img.Bounds().Min, draw.Src)
	draw.Draw(out, out.Bounds(), image.NewUniform(overlay), image.Point{}, draw.Over)
	return out
}
