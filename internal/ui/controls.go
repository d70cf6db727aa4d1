package ui

import (
	"image"

	"bitlife/internal/core"
)

// StepControl returns current moved one Step in direction and clamped to
// [Min, Max]. ok is false when direction is zero or the value would not
// change. A non-positive Step counts as 1.
func StepControl(ctrl core.ParameterControl, current, direction int) (target int, ok bool) {
	if direction == 0 {
		return current, false
	}
	step := ctrl.Step
	if step <= 0 {
		step = 1
	}
	if direction < 0 {
		step = -step
	}
	target = max(ctrl.Min, min(current+step, ctrl.Max))
	return target, target != current
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}
