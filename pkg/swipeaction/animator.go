package swipeaction

import (
	"math"
	"time"
)

// Animation is one fixed-duration transition. Update receives the eased
// fraction in [0,1] on every frame; Done runs once after the final Update.
type Animation struct {
	Duration time.Duration
	Update   func(fraction float64)
	Done     func()
}

// Animator is the backend that plays row animations. Animate must only
// schedule: neither Update nor Done may run before Animate returns.
type Animator interface {
	Animate(a Animation)
}

type runningAnimation struct {
	Animation
	start   time.Time
	started bool
}

// FrameAnimator is a cooperative Animator driven by the host frame loop.
// Callbacks only ever run from Tick, on the caller's goroutine.
type FrameAnimator struct {
	running []*runningAnimation
}

// NewFrameAnimator creates an idle animator.
func NewFrameAnimator() *FrameAnimator {
	return &FrameAnimator{}
}

// Animate schedules a; its clock starts on the next Tick.
func (f *FrameAnimator) Animate(a Animation) {
	f.running = append(f.running, &runningAnimation{Animation: a})
}

// Tick advances every running animation to now. Animations scheduled from
// inside a callback start on the following Tick.
func (f *FrameAnimator) Tick(now time.Time) {
	current := f.running
	f.running = nil

	var keep []*runningAnimation
	var finished []*runningAnimation
	for _, ra := range current {
		if !ra.started {
			ra.start = now
			ra.started = true
		}

		fraction := 1.0
		if ra.Duration > 0 {
			fraction = math.Min(1, float64(now.Sub(ra.start))/float64(ra.Duration))
		}
		if ra.Update != nil {
			ra.Update(easeAccelerateDecelerate(fraction))
		}

		if fraction >= 1 {
			finished = append(finished, ra)
		} else {
			keep = append(keep, ra)
		}
	}

	// Completions may schedule follow-up animations; keep those queued after
	// the survivors of this frame.
	scheduled := f.running
	f.running = append(keep, scheduled...)

	for _, ra := range finished {
		if ra.Done != nil {
			ra.Done()
		}
	}
}

// Active returns the number of scheduled or running animations.
func (f *FrameAnimator) Active() int {
	return len(f.running)
}

// easeAccelerateDecelerate starts and ends slowly, moving fastest mid-way.
func easeAccelerateDecelerate(t float64) float64 {
	return math.Cos((t+1)*math.Pi)/2 + 0.5
}

func lerp(from, to, fraction float64) float64 {
	return from + (to-from)*fraction
}
