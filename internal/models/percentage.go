package models

// Percentage returns 100*part/whole rounded half up. A zero whole yields 0.
func Percentage(part, whole int) int {
	if whole <= 0 {
		return 0
	}
	return (200*part + whole) / (2 * whole)
}

// CompletionPercentage returns the completion percentage for the given counts,
// keeping current when there is nothing to count
func CompletionPercentage(counts ProgressCounts, current int) int {
	if counts.Total == 0 {
		return current
	}
	return Percentage(counts.Completed, counts.Total)
}
