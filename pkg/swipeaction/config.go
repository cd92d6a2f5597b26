package swipeaction

import (
	"time"

	"github.com/BrandonKowalski/swipeaction/pkg/swipeaction/constants"
	"go.uber.org/atomic"
)

// GeometryConfig holds the tunables every gesture session reads. Values are
// read on each pointer sample, so a change made mid-gesture applies from the
// next sample on. Setters are safe to call from any goroutine.
type GeometryConfig struct {
	slop                atomic.Int32
	minFlingVelocity    atomic.Float64
	maxFlingVelocity    atomic.Float64
	animationDuration   atomic.Duration
	fadeOut             atomic.Bool
	fixedBackgrounds    atomic.Bool
	dimBackgrounds      atomic.Bool
	normalSwipeFraction atomic.Float64
	farSwipeFraction    atomic.Float64
}

// NewGeometryConfig returns a config populated with the defaults.
func NewGeometryConfig() *GeometryConfig {
	c := &GeometryConfig{}
	c.slop.Store(constants.DefaultSlop)
	c.minFlingVelocity.Store(constants.DefaultPlatformMinFling * constants.DefaultMinFlingVelocityScale)
	c.maxFlingVelocity.Store(constants.DefaultMaxFlingVelocity)
	c.animationDuration.Store(constants.DefaultAnimationDuration)
	c.normalSwipeFraction.Store(constants.DefaultNormalSwipeFraction)
	c.farSwipeFraction.Store(constants.DefaultFarSwipeFraction)
	return c
}

// Slop is how far in pixels a pointer may move before a drag counts as a swipe.
func (c *GeometryConfig) Slop() int { return int(c.slop.Load()) }

// MinFlingVelocity is the slowest release in px/s that still counts as a fling.
func (c *GeometryConfig) MinFlingVelocity() float64 { return c.minFlingVelocity.Load() }

// MaxFlingVelocity is the fastest release in px/s that counts as a fling.
func (c *GeometryConfig) MaxFlingVelocity() float64 { return c.maxFlingVelocity.Load() }

// AnimationDuration is the length of every row animation.
func (c *GeometryConfig) AnimationDuration() time.Duration { return c.animationDuration.Load() }

// FadeOut reports whether rows fade while they are dragged and slid out.
func (c *GeometryConfig) FadeOut() bool { return c.fadeOut.Load() }

// FixedBackgrounds reports whether only the content moves, leaving the
// backgrounds in place.
func (c *GeometryConfig) FixedBackgrounds() bool { return c.fixedBackgrounds.Load() }

// DimBackgrounds reports whether backgrounds are dimmed before the normal
// swipe threshold is reached.
func (c *GeometryConfig) DimBackgrounds() bool { return c.dimBackgrounds.Load() }

// NormalSwipeFraction is the share of the row width a drag must pass to commit.
func (c *GeometryConfig) NormalSwipeFraction() float64 { return c.normalSwipeFraction.Load() }

// FarSwipeFraction is the share of the row width that enters the far zone.
func (c *GeometryConfig) FarSwipeFraction() float64 { return c.farSwipeFraction.Load() }

// SetSlop sets the touch slop in pixels.
func (c *GeometryConfig) SetSlop(slop int) { c.slop.Store(int32(slop)) }

// SetMaxFlingVelocity sets the fling ceiling in px/s.
func (c *GeometryConfig) SetMaxFlingVelocity(v float64) { c.maxFlingVelocity.Store(v) }

// SetAnimationDuration sets the duration used by animations started afterwards.
func (c *GeometryConfig) SetAnimationDuration(d time.Duration) { c.animationDuration.Store(d) }

// SetFadeOut enables or disables fading rows.
func (c *GeometryConfig) SetFadeOut(enabled bool) { c.fadeOut.Store(enabled) }

// SetFixedBackgrounds enables or disables fixed backgrounds.
func (c *GeometryConfig) SetFixedBackgrounds(enabled bool) { c.fixedBackgrounds.Store(enabled) }

// SetDimBackgrounds enables or disables dimming below the normal threshold.
func (c *GeometryConfig) SetDimBackgrounds(enabled bool) { c.dimBackgrounds.Store(enabled) }

// SetMinFlingVelocity sets the effective minimum fling velocity in px/s.
func (c *GeometryConfig) SetMinFlingVelocity(v float64) { c.minFlingVelocity.Store(v) }

// SetScaledMinFlingVelocity derives the minimum fling velocity from a
// platform minimum and a multiplier. Touch toolkits report a very low
// platform minimum; the multiplier keeps slow drags from registering as flings.
func (c *GeometryConfig) SetScaledMinFlingVelocity(platformMin, scale float64) {
	c.minFlingVelocity.Store(platformMin * scale)
}

// SetNormalSwipeFraction sets the fraction of the row width that must be
// dragged before a release commits. It should not exceed the far fraction.
func (c *GeometryConfig) SetNormalSwipeFraction(f float64) error {
	if err := checkFraction("normal swipe fraction", f); err != nil {
		return err
	}
	c.normalSwipeFraction.Store(f)
	return nil
}

// SetFarSwipeFraction sets the fraction of the row width beyond which a swipe
// counts as far. It should be at least the normal fraction.
func (c *GeometryConfig) SetFarSwipeFraction(f float64) error {
	if err := checkFraction("far swipe fraction", f); err != nil {
		return err
	}
	c.farSwipeFraction.Store(f)
	return nil
}

func checkFraction(name string, f float64) error {
	// NaN fails both comparisons, so test the accepted range instead.
	if !(f >= 0 && f <= 1) {
		return invalidArgument("%s must be between 0 and 1, got %v", name, f)
	}
	return nil
}
