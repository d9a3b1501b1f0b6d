package transformblend

import (
	"testing"

	"github.com/solarlune/transformblend/math32"
	"github.com/tanema/gween/ease"
)

func TestFactorAnimatorPingPong(t *testing.T) {

	animator := NewFactorAnimator(2)
	animator.Easing = ease.Linear
	animator.SetFactor(0)

	if f := animator.Update(1); math32.Abs(f-0.5) > 1e-4 {
		t.Fatalf("halfway through the first sweep, factor should be 0.5, got %v", f)
	}

	if f := animator.Update(1); math32.Abs(f-1) > 1e-4 {
		t.Fatalf("at the end of the first sweep, factor should be 1, got %v", f)
	}

	if f := animator.Update(1.5); math32.Abs(f-0.25) > 1e-4 {
		t.Fatalf("sweeping back, factor should be 0.25, got %v", f)
	}

}

func TestFactorAnimatorPaused(t *testing.T) {

	animator := NewFactorAnimator(1)
	animator.Update(0.25)
	before := animator.Factor()

	animator.Paused = true

	if f := animator.Update(0.5); f != before {
		t.Fatalf("paused animator moved from %v to %v", before, f)
	}

}

func TestFactorAnimatorSetFactor(t *testing.T) {

	animator := NewFactorAnimator(4)
	animator.Easing = ease.Linear
	animator.SetFactor(0.5)

	// Half the distance remains, so half the duration finishes the sweep
	if f := animator.Update(2); math32.Abs(f-1) > 1e-4 {
		t.Fatalf("factor should have reached 1, got %v", f)
	}

}

func TestFactorAnimatorEasing(t *testing.T) {

	animator := NewFactorAnimator(1)

	// Ease-in-out starts slowly
	if f := animator.Update(0.1); f >= 0.1 || f <= 0 {
		t.Fatalf("eased factor should lag behind a linear one early on, got %v", f)
	}

}

func TestFactorAnimatorTurnaroundCarriesTime(t *testing.T) {

	animator := NewFactorAnimator(1)
	animator.Easing = ease.Linear
	animator.SetFactor(0)

	animator.Update(0.9)

	// 0.1 seconds finish the sweep up; the other 0.1 seconds are spent sweeping back down.
	if f := animator.Update(0.2); math32.Abs(f-0.9) > 1e-4 {
		t.Fatalf("after turning around, factor should be 0.9, got %v", f)
	}

	if f := animator.Update(0.4); math32.Abs(f-0.5) > 1e-4 {
		t.Fatalf("sweeping back, factor should be 0.5, got %v", f)
	}

}
