package internal

// Padding defines spacing on all four sides of an element.
type Padding struct {
	Top    int
	Right  int
	Bottom int
	Left   int
}

// UniformPadding creates a Padding with the same value on all sides.
func UniformPadding(value int) Padding {
	return Padding{
		Top:    value,
		Right:  value,
		Bottom: value,
		Left:   value,
	}
}

// Inset returns the width and height left after applying the padding.
// Results never go below zero.
func (p Padding) Inset(width, height int) (int, int) {
	w := width - p.Left - p.Right
	h := height - p.Top - p.Bottom
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return w, h
}
