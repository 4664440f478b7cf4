package gui

// animationManager maps an ID plus a boolean target to a continuously
// varying value in [0, 1]. Each ID tracks its own time so independent
// widgets animate independently.
type animationManager struct {
	bools map[ID]*boolAnim
}

type boolAnim struct {
	value    float32
	lastTick float64
}

// animateBool returns "how on" the given thing is.
//
// The first call for a fresh id snaps to the target (1 if true, 0 if
// false): things start settled, not mid-animation. Subsequent calls move
// the value toward the target as a function of elapsed time, reaching it
// after animationTime seconds.
func (a *animationManager) animateBool(input *InputState, animationTime float32, id ID, target bool) float32 {
	targetValue := float32(0)
	if target {
		targetValue = 1
	}

	if a.bools == nil {
		a.bools = make(map[ID]*boolAnim)
	}
	anim, ok := a.bools[id]
	if !ok {
		a.bools[id] = &boolAnim{value: targetValue, lastTick: input.Time}
		return targetValue
	}

	elapsed := float32(input.Time - anim.lastTick)
	anim.lastTick = input.Time

	if animationTime <= 0 {
		anim.value = targetValue
		return anim.value
	}

	step := elapsed / animationTime
	if anim.value < targetValue {
		anim.value = minf(anim.value+step, targetValue)
	} else if anim.value > targetValue {
		anim.value = maxf(anim.value-step, targetValue)
	}
	return anim.value
}

// clear drops all animation state.
func (a *animationManager) clear() {
	a.bools = nil
}
