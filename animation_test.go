package gui

import "testing"

func animInput(time float64) *InputState {
	return &InputState{Time: time}
}

func TestAnimateBoolFirstCallSnaps(t *testing.T) {
	var a animationManager

	if got := a.animateBool(animInput(0), 0.1, IDFromString("on"), true); got != 1 {
		t.Errorf("fresh true = %v, want 1", got)
	}
	if got := a.animateBool(animInput(0), 0.1, IDFromString("off"), false); got != 0 {
		t.Errorf("fresh false = %v, want 0", got)
	}
}

func TestAnimateBoolProgresses(t *testing.T) {
	var a animationManager
	id := IDFromString("fade")
	const animationTime = 0.1

	a.animateBool(animInput(0), animationTime, id, false)

	// Flip the target: halfway through the animation time the value is
	// halfway there.
	mid := a.animateBool(animInput(0.05), animationTime, id, true)
	if mid <= 0 || mid >= 1 {
		t.Fatalf("mid-animation value = %v, want strictly between 0 and 1", mid)
	}

	later := a.animateBool(animInput(0.08), animationTime, id, true)
	if later < mid {
		t.Errorf("value went backwards: %v then %v", mid, later)
	}

	done := a.animateBool(animInput(0.5), animationTime, id, true)
	if done != 1 {
		t.Errorf("value after the animation time = %v, want 1", done)
	}
}

func TestAnimateBoolNoTimeNoChange(t *testing.T) {
	var a animationManager
	id := IDFromString("frozen")

	// Same timestamp twice: no elapsed time, no movement.
	a.animateBool(animInput(2.0), 0.1, id, false)
	v1 := a.animateBool(animInput(2.05), 0.1, id, true)
	v2 := a.animateBool(animInput(2.05), 0.1, id, true)
	if v1 != v2 {
		t.Errorf("no elapsed time moved the value: %v -> %v", v1, v2)
	}
}

func TestAnimateBoolZeroDurationSnaps(t *testing.T) {
	var a animationManager
	id := IDFromString("instant")

	a.animateBool(animInput(0), 0, id, false)
	if got := a.animateBool(animInput(0.001), 0, id, true); got != 1 {
		t.Errorf("zero duration = %v, want 1", got)
	}
}

func TestClearAnimations(t *testing.T) {
	var a animationManager
	id := IDFromString("fade")

	a.animateBool(animInput(0), 0.1, id, false)
	a.clear()

	// After clearing, the id is fresh again and snaps.
	if got := a.animateBool(animInput(0.01), 0.1, id, true); got != 1 {
		t.Errorf("after clear = %v, want snap to 1", got)
	}
}
