// Package cannoli provides theming support for the Cannoli custom firmware.
// Cannoli is a community-developed CFW for retro handheld gaming devices.
package cannoli

import (
	"image/color"

	"github.com/BrandonKowalski/swipeaction/pkg/swipeaction"
	"github.com/BrandonKowalski/swipeaction/pkg/swipeaction/internal"
)

// InitCannoliTheme creates a swipe palette from Cannoli's default colors.
// Destructive actions stay on the left, keeping actions on the right in the
// firmware's teal accent.
func InitCannoliTheme() swipeaction.Theme {
	return swipeaction.Theme{
		NormalLeftColor:  internal.HexToColor(0xB85C5C),
		FarLeftColor:     internal.HexToColor(0x8B0000),
		NormalRightColor: internal.HexToColor(0x4DA6A6),
		FarRightColor:    internal.HexToColor(0x008080),
		DimColor:         color.RGBA{A: 112},
		IconColor:        internal.HexToColor(0xFFFFFF),
		TextColor:        internal.HexToColor(0xFFFFFF),
		RowColor:         internal.HexToColor(0x000000),
	}
}
