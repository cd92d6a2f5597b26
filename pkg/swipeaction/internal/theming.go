package internal

import (
	"fmt"
	"image/color"
	"sync"
)

// Theme defines the colours used to paint zone backgrounds behind swiped rows.
// Colors are typically loaded from CFW theme presets (Cannoli).
type Theme struct {
	NormalLeftColor  color.RGBA // Background revealed by a normal left swipe
	FarLeftColor     color.RGBA // Background revealed once the far-left zone is reached
	NormalRightColor color.RGBA // Background revealed by a normal right swipe
	FarRightColor    color.RGBA // Background revealed once the far-right zone is reached
	DimColor         color.RGBA // Overlay applied while the drag is still in the dead zone
	IconColor        color.RGBA // Fill used for zone icons
	TextColor        color.RGBA // Row text
	RowColor         color.RGBA // Row content background
}

var (
	themeMu      sync.RWMutex
	currentTheme = DefaultTheme()
)

// DefaultTheme is the palette used when no platform preset is applied.
func DefaultTheme() Theme {
	return Theme{
		NormalLeftColor:  HexToColor(0xE57373),
		FarLeftColor:     HexToColor(0xC62828),
		NormalRightColor: HexToColor(0x81C784),
		FarRightColor:    HexToColor(0x2E7D32),
		DimColor:         color.RGBA{R: 0, G: 0, B: 0, A: 96},
		IconColor:        HexToColor(0xFFFFFF),
		TextColor:        HexToColor(0x212121),
		RowColor:         HexToColor(0xFAFAFA),
	}
}

// SetTheme sets the active theme.
func SetTheme(theme Theme) {
	themeMu.Lock()
	defer themeMu.Unlock()
	currentTheme = theme
}

// GetTheme returns the currently active theme.
func GetTheme() Theme {
	themeMu.RLock()
	defer themeMu.RUnlock()
	return currentTheme
}

// Zone returns the background colour for a side and zone.
func (t Theme) Zone(left, far bool) color.RGBA {
	switch {
	case left && far:
		return t.FarLeftColor
	case left:
		return t.NormalLeftColor
	case far:
		return t.FarRightColor
	default:
		return t.NormalRightColor
	}
}

// HexToColor converts a 0xRRGGBB value into an opaque colour.
func HexToColor(hex uint32) color.RGBA {
	return color.RGBA{
		R: uint8(hex >> 16 & 0xFF),
		G: uint8(hex >> 8 & 0xFF),
		B: uint8(hex & 0xFF),
		A: 255,
	}
}

// ColorToHex renders a colour as "#rrggbb", ignoring alpha.
func ColorToHex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
