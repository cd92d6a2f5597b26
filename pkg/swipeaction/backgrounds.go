package swipeaction

import (
	"fmt"
	"image"
	"image/color"

	"github.com/BrandonKowalski/swipeaction/pkg/swipeaction/internal"
)

// Theme is the zone colour palette.
type Theme = internal.Theme

// DefaultTheme returns the built-in palette.
func DefaultTheme() Theme {
	return internal.DefaultTheme()
}

// SetTheme changes the palette used by new renders.
func SetTheme(theme Theme) {
	internal.SetTheme(theme)
}

// CurrentTheme returns the active palette.
func CurrentTheme() Theme {
	return internal.GetTheme()
}

// ZoneColor returns the background colour for d in theme.
func ZoneColor(theme Theme, d Direction) color.RGBA {
	if d == DirectionNeutral || !d.Valid() {
		return theme.RowColor
	}
	return theme.Zone(d.IsLeft(), d.IsFar())
}

// ZoneColorHex returns ZoneColor as "#rrggbb" for hosts that style with hex strings.
func ZoneColorHex(theme Theme, d Direction) string {
	return internal.ColorToHex(ZoneColor(theme, d))
}

const (
	iconChevronLeft        = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24"><path fill="%s" d="M15.41 7.41L14 6l-6 6 6 6 1.41-1.41L10.83 12z"/></svg>`
	iconChevronRight       = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24"><path fill="%s" d="M10 6L8.59 7.41 13.17 12l-4.58 4.59L10 18l6-6z"/></svg>`
	iconDoubleChevronLeft  = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24"><path fill="%s" d="M17.59 18L19 16.59 14.42 12 19 7.41 17.59 6l-6 6z"/><path fill="%s" d="M11 18l1.41-1.41L7.83 12l4.58-4.59L11 6l-6 6z"/></svg>`
	iconDoubleChevronRight = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24"><path fill="%s" d="M6.41 6L5 7.41 9.58 12 5 16.59 6.41 18l6-6z"/><path fill="%s" d="M13 6l-1.41 1.41L16.17 12l-4.58 4.59L13 18l6-6z"/></svg>`
)

func defaultIcon(d Direction, fill string) []byte {
	switch d {
	case DirectionNormalLeft:
		return []byte(fmt.Sprintf(iconChevronLeft, fill))
	case DirectionFarLeft:
		return []byte(fmt.Sprintf(iconDoubleChevronLeft, fill, fill))
	case DirectionNormalRight:
		return []byte(fmt.Sprintf(iconChevronRight, fill))
	case DirectionFarRight:
		return []byte(fmt.Sprintf(iconDoubleChevronRight, fill, fill))
	default:
		return nil
	}
}

type backgroundKey struct {
	theme         Theme
	direction     Direction
	width, height int
	dimmed        bool
}

// BackgroundRenderer paints zone backgrounds: the theme colour for the
// direction with an icon against the edge the row uncovers. Renders are cached.
type BackgroundRenderer struct {
	icons   map[Direction][]byte
	padding internal.Padding
	cache   *internal.LRU[backgroundKey, *image.RGBA]
}

// NewBackgroundRenderer creates a renderer using the built-in chevron icons.
func NewBackgroundRenderer() *BackgroundRenderer {
	return &BackgroundRenderer{
		icons:   make(map[Direction][]byte),
		padding: internal.UniformPadding(12),
		cache:   internal.NewLRUWithSize[backgroundKey, *image.RGBA](len(allDirections)*2, nil),
	}
}

// SetIcon replaces the SVG drawn for d. Passing nil restores the default.
func (r *BackgroundRenderer) SetIcon(d Direction, svg []byte) {
	if svg == nil {
		delete(r.icons, d)
	} else {
		r.icons[d] = svg
	}
	r.cache.Purge()
}

// Render returns the background image for d at the given size.
func (r *BackgroundRenderer) Render(d Direction, width, height int, dimmed bool) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, invalidArgument("background size %dx%d", width, height)
	}

	theme := internal.GetTheme()
	key := backgroundKey{theme: theme, direction: d, width: width, height: height, dimmed: dimmed}
	if img, ok := r.cache.Get(key); ok {
		return img, nil
	}

	svg, ok := r.icons[d]
	if !ok {
		svg = defaultIcon(d, internal.ColorToHex(theme.IconColor))
	}

	var icon image.Image
	if svg != nil {
		_, innerH := r.padding.Inset(width, height)
		if innerH > 0 {
			rendered, err := internal.RasterizeIcon(svg, innerH, innerH)
			if err != nil {
				return nil, NewInfrastructureError("rasterize_icon", err)
			}
			icon = rendered
		}
	}

	img := internal.ComposeBackground(ZoneColor(theme, d), icon, width, height, r.padding, d.IsRight())
	if dimmed {
		img = internal.Dim(img, theme.DimColor)
	}

	r.cache.Set(key, img)
	return img, nil
}
