package workout

import (
	"github.com/myrjola/trackmate/internal/training"
)

// Slot addresses one set of the program.
type Slot struct {
	Week     int `json:"week"`
	Day      int `json:"day"`
	Exercise int `json:"exercise"`
	Set      int `json:"set"`
}

// SetView is one set slot with its logged values and the suggestion for it.
type SetView struct {
	Index  int      `json:"index"`
	Weight *float64 `json:"weight"`
	Reps   *int     `json:"reps"`
	// SuggestedWeight renders as "" when nothing can be suggested and "00" for core work.
	SuggestedWeight training.Suggestion `json:"suggested_weight"`
	SuggestedReps   int                 `json:"suggested_reps"`
	Complete        bool                `json:"complete"`
}

// ExerciseView is one prescribed exercise of a day with its resolved equipment and set slots.
type ExerciseView struct {
	Index        int    `json:"index"`
	Name         string `json:"name"`
	Prescription string `json:"prescription"`
	Notes        string `json:"notes,omitempty"`
	Category     string `json:"category,omitempty"`
	// Equipment is the lifter's selection, or the catalog default when nothing was selected.
	Equipment         training.Equipment `json:"equipment"`
	EquipmentSelected bool               `json:"equipment_selected"`
	TargetReps        int                `json:"target_reps"`
	Lift              training.Lift      `json:"lift,omitempty"`
	Sets              []SetView          `json:"sets"`
}

// DayView is a training day of one week as presented to the lifter.
type DayView struct {
	Week          int            `json:"week"`
	Index         int            `json:"index"`
	DisplayNumber int            `json:"display_number"`
	ID            string         `json:"id"`
	Theme         string         `json:"theme"`
	Goal          string         `json:"goal"`
	Completed     bool           `json:"completed"`
	Exercises     []ExerciseView `json:"exercises"`
	Summary       Summary        `json:"summary"`
}

// SetInput is what the lifter entered for a set. Nil fields were left blank.
type SetInput struct {
	Weight *float64 `json:"weight"`
	Reps   *int     `json:"reps"`
}

// LiftAttempt is a set performed to estimate a 1RM.
type LiftAttempt struct {
	WeightKg float64 `json:"weight"`
	Reps     int     `json:"reps"`
}
