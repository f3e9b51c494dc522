package training

// intensityTable maps the upper bound of a target rep range to the fraction of 1RM lifted for it.
//
//nolint:gochecknoglobals // read-only lookup table.
var intensityTable = []struct {
	maxReps  int
	fraction float64
}{
	{maxReps: 5, fraction: 0.85},
	{maxReps: 6, fraction: 0.80},
	{maxReps: 8, fraction: 0.75},
	{maxReps: 10, fraction: 0.70},
	{maxReps: 12, fraction: 0.65},
}

// highRepFraction applies above the last row of intensityTable.
const highRepFraction = 0.60

// PercentForReps maps a target rep count to the fraction of 1RM lifted for it. Fewer reps means heavier load.
func PercentForReps(targetReps int) (float64, bool) {
	if targetReps <= 0 {
		return 0, false
	}
	for _, row := range intensityTable {
		if targetReps <= row.maxReps {
			return row.fraction, true
		}
	}
	return highRepFraction, true
}

// WorkingWeight suggests the load for targetReps given a 1RM in kilograms, rounded for the equipment.
func WorkingWeight(oneRM float64, targetReps int, equipment Equipment) (float64, bool) {
	if !isFinite(oneRM) || oneRM <= 0 {
		return 0, false
	}
	pct, ok := PercentForReps(targetReps)
	if !ok {
		return 0, false
	}
	return RoundToIncrement(oneRM*pct, equipment.RoundingIncrement())
}
