package swipeaction

import (
	"math"

	"github.com/BrandonKowalski/swipeaction/pkg/swipeaction/constants"
)

// rowAnimations plays the per-row transitions. Every animation runs for the
// configured duration, read when the animation starts.
type rowAnimations struct {
	animator Animator
	cfg      *GeometryConfig
}

// reappear slides v back to rest and fades it in.
func (a rowAnimations) reappear(v View, done func()) {
	fromX, fromAlpha := v.TranslationX(), v.Alpha()
	a.animator.Animate(Animation{
		Duration: a.cfg.AnimationDuration(),
		Update: func(f float64) {
			v.SetTranslationX(lerp(fromX, 0, f))
			v.SetAlpha(lerp(fromAlpha, 1, f))
		},
		Done: done,
	})
}

// slideOut moves v a full row width off to one side, fading it out when
// fade-out is enabled.
func (a rowAnimations) slideOut(v View, right bool, width int, done func()) {
	toX := float64(width)
	if !right {
		toX = -toX
	}
	toAlpha := 1.0
	if a.cfg.FadeOut() {
		toAlpha = 0
	}

	fromX, fromAlpha := v.TranslationX(), v.Alpha()
	a.animator.Animate(Animation{
		Duration: a.cfg.AnimationDuration(),
		Update: func(f float64) {
			v.SetTranslationX(lerp(fromX, toX, f))
			v.SetAlpha(lerp(fromAlpha, toAlpha, f))
		},
		Done: done,
	})
}

// shrink collapses the frame's layout extent from its original size down to
// the minimum, updating layout every frame.
func (a rowAnimations) shrink(frame View, from int, done func()) {
	a.animator.Animate(Animation{
		Duration: a.cfg.AnimationDuration(),
		Update: func(f float64) {
			extent := int(math.Round(lerp(float64(from), constants.MinRowExtent, f)))
			frame.SetLayoutExtent(extent)
		},
		Done: done,
	})
}
