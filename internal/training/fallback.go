package training

// FallbackWeight suggests a load when no 1RM is mapped to the exercise.
//
// With a known bodyweight the suggestion is a pattern-specific share of it, otherwise a fixed conservative default.
// Either is capped for the movement and rounded for the equipment. Pass a bodyweight of zero when it is unknown.
func FallbackWeight(m Movement, bodyweightKg float64, equipment Equipment) Suggestion {
	if m.IsCore() {
		return Placeholder()
	}

	var raw float64
	if isFinite(bodyweightKg) && bodyweightKg > 0 {
		raw = bodyweightKg * m.Pattern.BodyweightFactor()
	} else {
		raw = m.Pattern.DefaultKg()
	}
	if m.CapKg > 0 {
		raw = min(raw, m.CapKg)
	}

	rounded, ok := RoundToIncrement(raw, equipment.RoundingIncrement())
	if !ok || rounded == 0 {
		return NoSuggestion()
	}
	return WeightSuggestion(rounded)
}
