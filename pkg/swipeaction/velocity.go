package swipeaction

import (
	"time"

	"github.com/BrandonKowalski/swipeaction/pkg/swipeaction/constants"
)

type velocitySample struct {
	x, y float64
	t    time.Time
}

// VelocityTracker estimates pointer velocity from recent samples. Only samples
// within the horizon of the newest one contribute, and the estimate is the
// least-squares slope of position over time.
type VelocityTracker struct {
	samples []velocitySample
	horizon time.Duration
}

// NewVelocityTracker creates a tracker with the default horizon.
func NewVelocityTracker() *VelocityTracker {
	return &VelocityTracker{horizon: constants.VelocityHorizon}
}

// Add records a pointer position.
func (v *VelocityTracker) Add(x, y float64, t time.Time) {
	v.samples = append(v.samples, velocitySample{x: x, y: y, t: t})

	cutoff := t.Add(-v.horizon)
	drop := 0
	for drop < len(v.samples)-1 && v.samples[drop].t.Before(cutoff) {
		drop++
	}
	if drop > 0 {
		v.samples = append(v.samples[:0], v.samples[drop:]...)
	}
}

// Velocity returns the horizontal and vertical velocity scaled to units,
// e.g. constants.VelocityUnits for pixels per second. With fewer than two
// samples, or samples sharing one timestamp, both components are zero.
func (v *VelocityTracker) Velocity(units time.Duration) (vx, vy float64) {
	n := len(v.samples)
	if n < 2 {
		return 0, 0
	}

	origin := v.samples[n-1].t
	var sumT, sumX, sumY float64
	for _, s := range v.samples {
		sumT += float64(s.t.Sub(origin))
		sumX += s.x
		sumY += s.y
	}
	meanT := sumT / float64(n)
	meanX := sumX / float64(n)
	meanY := sumY / float64(n)

	var varT, covX, covY float64
	for _, s := range v.samples {
		dt := float64(s.t.Sub(origin)) - meanT
		varT += dt * dt
		covX += dt * (s.x - meanX)
		covY += dt * (s.y - meanY)
	}
	if varT == 0 {
		return 0, 0
	}

	scale := float64(units)
	return covX / varT * scale, covY / varT * scale
}

// Clear drops all samples.
func (v *VelocityTracker) Clear() {
	v.samples = v.samples[:0]
}
