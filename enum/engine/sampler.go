package engine

import (
	"fmt"
	"math"
)

// SampleRange sub-samples the inclusive integer range [min, max] into
// splits+2 points: both endpoints plus `splits` interior division points,
// computed as min + i*(max-min)/(splits+1) and rounded to integers.
//
// When the range is too narrow for splits+2 distinct points, the split
// count is silently reduced to the largest value that produces no
// duplicates after rounding, bottoming out at endpoints only. The result
// is strictly ascending and always contains min and max exactly.
func SampleRange(min, max, splits int) ([]int, error) {
	if splits < 0 {
		return nil, &InvalidSpecError{Reason: fmt.Sprintf("splits must be non-negative, got %d", splits)}
	}
	if min > max {
		return nil, &InvalidSpecError{Reason: fmt.Sprintf("range min %d exceeds max %d", min, max)}
	}
	if min == max {
		return []int{min}, nil
	}

	// splits+2 distinct integers cannot exceed the range cardinality.
	if width := max - min; splits > width-1 {
		splits = width - 1
	}
	if splits < 0 {
		splits = 0
	}

	for s := splits; s > 0; s-- {
		points := samplePoints(min, max, s)
		if strictlyAscending(points) {
			return points, nil
		}
	}

	return []int{min, max}, nil
}

// samplePoints computes the s+2 rounded division points of [min, max].
func samplePoints(min, max, s int) []int {
	n := s + 2
	step := float64(max-min) / float64(s+1)
	points := make([]int, n)
	for i := range points {
		points[i] = min + int(math.Round(float64(i)*step))
	}
	// Rounding never overshoots, but pin the endpoint regardless.
	points[n-1] = max
	return points
}

func strictlyAscending(points []int) bool {
	for i := 1; i < len(points); i++ {
		if points[i] <= points[i-1] {
			return false
		}
	}
	return true
}
