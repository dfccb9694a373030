package quiz

import "math"

// Score converts a correct-answer count into a percentage rounded to the
// nearest integer. An empty quiz scores 0.
func Score(correct, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(correct) / float64(total) * 100))
}
