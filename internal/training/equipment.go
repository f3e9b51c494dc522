package training

import "strings"

// Equipment classifies how an exercise is loaded.
type Equipment string

const (
	Dumbbell   Equipment = "DB"
	Barbell    Equipment = "BB"
	Kettlebell Equipment = "KB"
	Bodyweight Equipment = "BW"
	Machine    Equipment = "MC"
)

// AllEquipment lists the equipment codes in display order.
//
//nolint:gochecknoglobals // read-only lookup table.
var AllEquipment = []Equipment{Dumbbell, Barbell, Kettlebell, Bodyweight, Machine}

// ParseEquipment accepts an equipment code case-insensitively.
func ParseEquipment(s string) (Equipment, bool) {
	e := Equipment(strings.ToUpper(strings.TrimSpace(s)))
	switch e {
	case Dumbbell, Barbell, Kettlebell, Bodyweight, Machine:
		return e, true
	default:
		return "", false
	}
}

// Label returns a human-readable name for the equipment.
func (e Equipment) Label() string {
	switch e {
	case Dumbbell:
		return "Dumbbell"
	case Barbell:
		return "Barbell"
	case Kettlebell:
		return "Kettlebell"
	case Bodyweight:
		return "Bodyweight"
	case Machine:
		return "Machine/Cable"
	default:
		return string(e)
	}
}

// RoundingIncrement is the granularity suggestions are rounded to: plates for barbells and machine stacks, whole
// kilograms for everything else.
func (e Equipment) RoundingIncrement() float64 {
	if e == Barbell || e == Machine {
		return 2.5
	}
	return 1
}

// ProgressionIncrement is the load added week over week after a successful set. An unset code counts as machine.
// Bodyweight work has no increment.
func (e Equipment) ProgressionIncrement() float64 {
	if e == "" {
		e = Machine
	}
	switch Equipment(strings.ToUpper(string(e))) {
	case Barbell, Machine:
		return 2.5
	case Dumbbell, Kettlebell:
		return 1
	default:
		return 0
	}
}
