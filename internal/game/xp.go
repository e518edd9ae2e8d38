package game

import "math"

// XPRequired returns the XP needed to advance from the given level.
// Every threshold in the engine comes through here; leveling, claims and
// combat rewards all agree on the same curve.
func (e *Engine) XPRequired(level int) int {
	if level < 1 {
		level = 1
	}
	return int(float64(e.tuning.BaseXP) * math.Pow(float64(level), e.tuning.XPFactor))
}
