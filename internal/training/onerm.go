package training

// maxEstimateReps is the highest rep count the estimate formula is trusted for.
const maxEstimateReps = 12

// EstimateOneRM estimates a one-repetition maximum from a set of reps at weight kilograms using
// weight * (1 + reps/30). Reps above 12 are clamped to 12.
func EstimateOneRM(weight float64, reps int) (float64, bool) {
	if !isFinite(weight) || weight <= 0 || reps <= 0 {
		return 0, false
	}
	r := min(reps, maxEstimateReps)
	return weight * (1 + float64(r)/30), true //nolint:mnd // Epley constant.
}
