package workout

import "github.com/myrjola/trackmate/internal/errors"

// ErrDayLocked is returned when editing a day that has been marked complete.
var ErrDayLocked = errors.NewSentinel("day is marked as completed")

// LockedMessage is shown to the lifter when an edit is refused by ErrDayLocked.
const LockedMessage = "This workout is marked as completed. Tap 'Edit Completed Workout' to make changes."

// CompletionState is the edit lock of a day.
type CompletionState int

const (
	Incomplete CompletionState = iota
	Completed
)

func (c CompletionState) String() string {
	if c == Completed {
		return "completed"
	}
	return "incomplete"
}

// State returns the day's completion state.
func (d *DayState) State() CompletionState {
	if d.Completed {
		return Completed
	}
	return Incomplete
}

// MarkComplete locks the day. It reports whether the state changed.
func (d *DayState) MarkComplete() bool {
	changed := !d.Completed
	d.Completed = true
	return changed
}

// Unlock reopens the day for editing. It reports whether the state changed.
func (d *DayState) Unlock() bool {
	changed := d.Completed
	d.Completed = false
	return changed
}

// Toggle flips the completion state and returns the new one.
func (d *DayState) Toggle() CompletionState {
	if d.Completed {
		d.Unlock()
	} else {
		d.MarkComplete()
	}
	return d.State()
}

// checkEditable returns ErrDayLocked when the day is completed.
func (d *DayState) checkEditable() error {
	if d.Completed {
		return ErrDayLocked
	}
	return nil
}
