package wheel

import "luckywheel/internal/util"

// EaseOutCubic starts fast and settles slowly. p is clamped to [0, 1] and the
// result is monotonically non-decreasing with f(0)=0 and f(1)=1.
func EaseOutCubic(p float64) float64 {
	p = util.Clamp(p, 0, 1)
	inv := 1 - p
	return 1 - inv*inv*inv
}
