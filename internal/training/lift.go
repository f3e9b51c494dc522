package training

// Lift names a lift the user records a 1RM for.
type Lift string

const (
	LiftRow        Lift = "row"
	LiftBenchPress Lift = "bench_press"
	LiftSquat      Lift = "squat"
	LiftDeadlift   Lift = "deadlift"
)

// AllLifts lists the recorded lifts in display order.
//
//nolint:gochecknoglobals // read-only lookup table.
var AllLifts = []Lift{LiftRow, LiftBenchPress, LiftSquat, LiftDeadlift}

// ParseLift accepts one of the recorded lift keys.
func ParseLift(s string) (Lift, bool) {
	l := Lift(s)
	switch l {
	case LiftRow, LiftBenchPress, LiftSquat, LiftDeadlift:
		return l, true
	default:
		return "", false
	}
}
