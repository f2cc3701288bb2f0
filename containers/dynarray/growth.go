package dynarray

// growthFactor is the rate at which capacity increases when an insertion
// needs room. One slot is always added on top so growth is strict from 0.
const growthFactor = 1.4

// Grow returns the capacity that follows capacity under the growth policy:
// floor(capacity * 1.4) + 1, with the product computed in float64 and
// truncated. 1.4 is not exact in binary, so some capacities land one below
// the exact decimal result (Grow(45) is 63, not 64). Existing traces depend
// on this rounding; do not switch to integer math.
func Grow(capacity int) int {
	return int(float64(capacity)*growthFactor) + 1
}

// GrowthTrace returns the first steps capacities reached from zero.
func GrowthTrace(steps int) []int {
	out := make([]int, 0, max(steps, 0))
	c := 0
	for range steps {
		c = Grow(c)
		out = append(out, c)
	}
	return out
}
