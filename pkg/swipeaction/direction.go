package swipeaction

// Direction is the zone a swipe resolved into. The sign of the value is the
// side of the swipe and the magnitude is the zone: 1 is normal, 2 is far.
type Direction int

const (
	DirectionFarLeft     Direction = -2
	DirectionNormalLeft  Direction = -1
	DirectionNeutral     Direction = 0
	DirectionNormalRight Direction = 1
	DirectionFarRight    Direction = 2
)

var allDirections = []Direction{
	DirectionFarLeft,
	DirectionFarRight,
	DirectionNeutral,
	DirectionNormalLeft,
	DirectionNormalRight,
}

// AllDirections returns every direction in a stable order. Use it for
// deterministic registration of per-direction backgrounds.
func AllDirections() []Direction {
	out := make([]Direction, len(allDirections))
	copy(out, allDirections)
	return out
}

// IsLeft reports whether d is a left swipe of either zone.
func (d Direction) IsLeft() bool {
	return d == DirectionNormalLeft || d == DirectionFarLeft
}

// IsRight reports whether d is a right swipe of either zone.
func (d Direction) IsRight() bool {
	return d == DirectionNormalRight || d == DirectionFarRight
}

// IsFar reports whether d is in a far zone.
func (d Direction) IsFar() bool {
	return d == DirectionFarLeft || d == DirectionFarRight
}

// Sign returns -1 for left, 1 for right and 0 for neutral.
func (d Direction) Sign() int {
	switch {
	case d.IsLeft():
		return -1
	case d.IsRight():
		return 1
	default:
		return 0
	}
}

// Valid reports whether d is one of the defined directions.
func (d Direction) Valid() bool {
	return d >= DirectionFarLeft && d <= DirectionFarRight
}

// directionFor picks the zone for a horizontal delta.
func directionFor(deltaX float64, far bool) Direction {
	switch {
	case far && deltaX > 0:
		return DirectionFarRight
	case far:
		return DirectionFarLeft
	case deltaX > 0:
		return DirectionNormalRight
	default:
		return DirectionNormalLeft
	}
}

// String returns a string representation of the direction.
func (d Direction) String() string {
	switch d {
	case DirectionFarLeft:
		return "far-left"
	case DirectionNormalLeft:
		return "left"
	case DirectionNormalRight:
		return "right"
	case DirectionFarRight:
		return "far-right"
	case DirectionNeutral:
		return "neutral"
	default:
		return "unknown"
	}
}

func (d Direction) messageID() string {
	switch d {
	case DirectionFarLeft:
		return "DirectionFarLeft"
	case DirectionNormalLeft:
		return "DirectionNormalLeft"
	case DirectionNormalRight:
		return "DirectionNormalRight"
	case DirectionFarRight:
		return "DirectionFarRight"
	default:
		return "DirectionNeutral"
	}
}
