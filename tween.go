package transformblend

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// FactorAnimator drives a blend factor back and forth between 0 and 1 over time, easing at either end.
// It's not safe for concurrent use; it's meant to be updated once per frame by whatever owns it.
type FactorAnimator struct {
	Duration float32        // How long, in seconds, one sweep from 0 to 1 (or back) takes
	Easing   ease.TweenFunc // The easing function used for each sweep
	Paused   bool           // If the animator is paused, Update doesn't advance the factor

	tween     *gween.Tween
	remaining float32 // Time left in the current tween
	factor    float32
	forward   bool
}

// NewFactorAnimator returns a new FactorAnimator that starts at 0, sweeping over the duration given (in seconds)
// with an ease-in-out curve.
func NewFactorAnimator(duration float32) *FactorAnimator {
	animator := &FactorAnimator{
		Duration: duration,
		Easing:   ease.InOutQuad,
	}
	animator.SetFactor(0)
	return animator
}

// Update advances the animator by dt seconds and returns the current factor. When a sweep finishes, the
// animator turns around and spends whatever time is left over sweeping back the other way.
func (animator *FactorAnimator) Update(dt float32) float32 {

	if animator.Paused {
		return animator.factor
	}

	remaining := animator.remaining
	current, finished := animator.tween.Update(dt)
	animator.factor = current
	animator.remaining -= dt

	if finished {
		animator.forward = !animator.forward
		animator.restart()
		// At most one full sweep of leftover time is carried into the next one.
		leftover := dt - remaining
		if leftover > animator.remaining {
			leftover = animator.remaining
		}
		if leftover > 0 {
			animator.factor, _ = animator.tween.Update(leftover)
			animator.remaining -= leftover
		}
	}

	return animator.factor

}

// Factor returns the current factor.
func (animator *FactorAnimator) Factor() float32 {
	return animator.factor
}

// SetFactor jumps the animator to the factor given; the next sweep continues from there towards the end it was heading for
// (towards 1 if the animator was just created).
func (animator *FactorAnimator) SetFactor(factor float32) {
	animator.factor = factor
	if animator.tween == nil {
		animator.forward = true
	}
	animator.restart()
}

func (animator *FactorAnimator) restart() {

	target := float32(0)
	if animator.forward {
		target = 1
	}

	// Only the remaining distance needs to be covered, at the same speed as a full sweep.
	duration := animator.Duration
	if dist := target - animator.factor; dist < 0 {
		duration *= -dist
	} else {
		duration *= dist
	}

	// Easing functions divide by the duration.
	if duration < 1e-6 {
		duration = 1e-6
	}

	easing := animator.Easing
	if easing == nil {
		easing = ease.Linear
	}

	animator.tween = gween.New(animator.factor, target, duration, easing)
	animator.remaining = duration

}
