package selector

import (
	"math"

	"luckywheel/internal/util"
)

// MaxOffsetFraction bounds the total span of the landing offset as a fraction
// of the segment width.
const MaxOffsetFraction = 0.8

// Angles are in degrees. Screen angle 0 is the pointer at the top and grows
// clockwise. Segment i occupies local angles [i*w, (i+1)*w), and a wheel with
// cumulative rotation r draws local angle a at screen angle a+r.

// SegmentCount is the number of segments drawn for n entries, at least 1.
func SegmentCount(n int) int {
	return max(n, 1)
}

// SegmentWidth is the angular width of one segment.
func SegmentWidth(n int) float64 {
	return 360 / float64(SegmentCount(n))
}

// SegmentCenter is the local angle of the middle of segment index.
func SegmentCenter(index, n int) float64 {
	return (float64(index) + 0.5) * SegmentWidth(n)
}

// TargetDelta returns how far to rotate forward from current so that the
// chosen segment, displaced by offset degrees from its centre, comes to rest
// under the pointer. The result always lies in [revolutions*360,
// revolutions*360+360).
func TargetDelta(current float64, index, n, revolutions int, offset float64) float64 {
	landing := SegmentCenter(index, n) + offset
	return float64(revolutions)*360 + util.Wrap360(-landing-current)
}

// SegmentAt returns the segment drawn at screenAngle when the wheel has
// cumulative rotation rotation.
func SegmentAt(screenAngle, rotation float64, n int) int {
	count := SegmentCount(n)
	local := util.Wrap360(screenAngle - rotation)
	i := int(math.Floor(local / SegmentWidth(n)))
	return util.Clamp(i, 0, count-1)
}

// SegmentUnderPointer returns the segment at screen angle 0.
func SegmentUnderPointer(rotation float64, n int) int {
	return SegmentAt(0, rotation, n)
}

// PointerOffset returns how far, in degrees, the pointer sits from the centre
// of the segment it points at. Used to check landings stay inside the
// segment's span.
func PointerOffset(rotation float64, n int) float64 {
	i := SegmentUnderPointer(rotation, n)
	local := util.Wrap360(-rotation)
	return local - SegmentCenter(i, n)
}
