package swipeaction

import "math"

// ClassificationUpdate is the live result of one pointer-move sample.
type ClassificationUpdate struct {
	Swiping      bool      // the drag has been recognised as a horizontal swipe
	Started      bool      // this sample is the one that started the swipe
	Direction    Direction // current side and zone, neutral until swiping
	TranslationX float64   // where the row should be drawn, slop already consumed
	Alpha        float64   // fade hint, 1 unless fade-out is enabled
	Dimmed       bool      // the drag is still inside the dead zone and dimming is enabled
}

// Resolution is the decision taken when the pointer is released.
type Resolution struct {
	Commit       bool
	DismissRight bool
	Direction    Direction // zone the row was in when released
}

// Classifier turns a stream of pointer samples from one touch sequence into
// a swipe classification. It holds no reference to rows or animations.
type Classifier struct {
	cfg *GeometryConfig

	downX, downY float64
	deltaX       float64
	swiping      bool
	slopOffset   float64
	direction    Direction
	far          bool
}

// NewClassifier creates a classifier reading live values from cfg.
func NewClassifier(cfg *GeometryConfig) *Classifier {
	return &Classifier{cfg: cfg}
}

// SessionSeed is the origin of a touch sequence.
type SessionSeed struct {
	X, Y float64
}

// Down records the origin of a touch sequence and clears previous state.
// Swiping is not decided until the first move.
func (c *Classifier) Down(x, y float64) SessionSeed {
	*c = Classifier{cfg: c.cfg, downX: x, downY: y}
	return SessionSeed{X: x, Y: y}
}

// Move classifies a pointer sample against a row of the given width.
func (c *Classifier) Move(x, y float64, rowWidth int) ClassificationUpdate {
	width := usableWidth(rowWidth)
	deltaX := x - c.downX
	deltaY := y - c.downY
	c.deltaX = deltaX

	var update ClassificationUpdate

	slop := float64(c.cfg.Slop())
	if !c.swiping && math.Abs(deltaX) > slop && math.Abs(deltaY) < math.Abs(deltaX)/2 {
		c.swiping = true
		update.Started = true
		if deltaX > 0 {
			c.slopOffset = slop
		} else {
			c.slopOffset = -slop
		}
	}

	if !c.swiping {
		update.Alpha = 1
		return update
	}

	c.classify(deltaX, width)

	update.Swiping = true
	update.Direction = c.direction
	update.TranslationX = deltaX - c.slopOffset
	update.Alpha = 1
	if c.cfg.FadeOut() {
		update.Alpha = fadeAlpha(deltaX, width)
	}
	update.Dimmed = c.cfg.DimBackgrounds() && math.Abs(deltaX) < width*c.cfg.NormalSwipeFraction()

	return update
}

// classify applies the far-zone hysteresis: reversing against the current
// direction clears far, and far latches once the far threshold is crossed.
func (c *Classifier) classify(deltaX, width float64) {
	if float64(c.direction.Sign())*deltaX < 0 {
		c.far = false
	}
	if !c.far && math.Abs(deltaX) > width*c.cfg.FarSwipeFraction() {
		c.far = true
	}
	c.direction = directionFor(deltaX, c.far)
}

// Up decides whether the gesture commits. x is the release position and
// vx, vy the release velocity in px/s.
func (c *Classifier) Up(x float64, vx, vy float64, rowWidth int) Resolution {
	if !c.swiping {
		return Resolution{Direction: DirectionNeutral}
	}

	width := usableWidth(rowWidth)
	deltaX := x - c.downX
	c.deltaX = deltaX
	c.classify(deltaX, width)

	res := Resolution{Direction: c.direction}

	absVX := math.Abs(vx)
	switch {
	case math.Abs(deltaX) > width*c.cfg.NormalSwipeFraction():
		res.Commit = true
		res.DismissRight = deltaX > 0
	case c.cfg.MinFlingVelocity() <= absVX && absVX <= c.cfg.MaxFlingVelocity() &&
		math.Abs(vy) < absVX && sign(vx) == sign(deltaX):
		res.Commit = true
		res.DismissRight = vx > 0
	}

	return res
}

// Cancel abandons the gesture regardless of distance or velocity.
func (c *Classifier) Cancel() Resolution {
	d := c.direction
	c.swiping = false
	c.far = false
	c.direction = DirectionNeutral
	return Resolution{Direction: d}
}

func (c *Classifier) Swiping() bool        { return c.swiping }
func (c *Classifier) Far() bool            { return c.far }
func (c *Classifier) Direction() Direction { return c.direction }
func (c *Classifier) DeltaX() float64      { return c.deltaX }

// fadeAlpha goes from 1 at rest to 0 at half the row width.
func fadeAlpha(deltaX, width float64) float64 {
	return math.Max(0, math.Min(1, 1-2*math.Abs(deltaX)/width))
}

// usableWidth keeps fractions meaningful before the list has been measured.
func usableWidth(w int) float64 {
	if w < 1 {
		return 1
	}
	return float64(w)
}

func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
