package training

// Performance is what was logged for one set.
type Performance struct {
	WeightKg float64
	Reps     int
}

// Request carries everything needed to suggest the load of one set.
type Request struct {
	Movement  Movement
	Equipment Equipment
	// TargetReps is the rep goal parsed from the prescription.
	TargetReps int
	// OneRMKg is the 1RM of the lift mapped to the exercise, zero when none is on file.
	OneRMKg float64
	// BodyweightKg is the lifter's bodyweight, zero when unknown.
	BodyweightKg float64
	Week         int
	// Previous is last week's result for the same set slot. Nil when the slot was not fully logged.
	Previous *Performance
}

// BaseSuggestion derives a load from the 1RM when one is on file, otherwise from FallbackWeight.
func BaseSuggestion(r Request) Suggestion {
	if r.Movement.IsCore() {
		return Placeholder()
	}
	if kg, ok := WorkingWeight(r.OneRMKg, r.TargetReps, r.Equipment); ok && kg != 0 {
		return WeightSuggestion(kg)
	}
	return FallbackWeight(r.Movement, r.BodyweightKg, r.Equipment)
}

// Suggest applies week-over-week progressive overload on top of BaseSuggestion.
//
// When last week's set met the rep target, the load advances by one equipment increment. Bodyweight equipment has no
// increment and repeats last week's load. A missed target or a missing entry falls back to the base suggestion,
// never to last week's lighter load.
func Suggest(r Request) Suggestion {
	if r.Movement.IsCore() {
		return Placeholder()
	}
	if r.Week <= 1 || r.Previous == nil || !meetsTarget(r.Previous.Reps, r.TargetReps) {
		return BaseSuggestion(r)
	}

	prev := r.Previous.WeightKg
	inc := r.Equipment.ProgressionIncrement()
	if !isFinite(prev) || inc <= 0 {
		return WeightSuggestion(prev)
	}
	next, ok := RoundToIncrement(prev+inc, inc)
	if !ok || next == 0 {
		return WeightSuggestion(prev)
	}
	return WeightSuggestion(next)
}

func meetsTarget(reps, target int) bool {
	return target > 0 && reps >= target
}
