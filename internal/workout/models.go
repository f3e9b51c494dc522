package workout

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/myrjola/trackmate/internal/training"
)

// Units is the measurement system a profile is entered in.
type Units string

const (
	UnitsMetric   Units = "metric"
	UnitsImperial Units = "imperial"
)

const (
	kgPerPound    = 0.453592
	metresPerInch = 0.0254
)

// Profile describes the lifter. Height and weight are stored in the units they were entered in.
type Profile struct {
	Name string `json:"name"`
	// Sex is free-form, typically "male" or "female". Empty when not given.
	Sex   string `json:"sex"`
	Units Units  `json:"units"`
	// Height is in centimetres or inches.
	Height *float64 `json:"height"`
	// Weight is in kilograms or pounds.
	Weight *float64 `json:"weight"`
	Age    *int     `json:"age"`
	BMI    *float64 `json:"bmi"`
}

// WeightKg returns the bodyweight in kilograms. ok is false when no weight is on file.
func (p Profile) WeightKg() (float64, bool) {
	if p.Weight == nil || !isFinite(*p.Weight) || *p.Weight <= 0 {
		return 0, false
	}
	if p.Units == UnitsImperial {
		return *p.Weight * kgPerPound, true
	}
	return *p.Weight, true
}

// CalculateBMI computes the body mass index from weight and height in the given units.
func CalculateBMI(weight, height float64, units Units) (float64, bool) {
	if !isFinite(weight) || !isFinite(height) || weight <= 0 || height <= 0 {
		return 0, false
	}
	kg, metres := weight, height/100 //nolint:mnd // centimetres.
	if units == UnitsImperial {
		kg, metres = weight*kgPerPound, height*metresPerInch
	}
	return kg / (metres * metres), true
}

// OneRMRecord holds the recorded one-repetition maximum in kilograms per lift. Nil means not recorded.
type OneRMRecord map[training.Lift]*float64

// Kg returns the 1RM recorded for lift.
func (r OneRMRecord) Kg(lift training.Lift) (float64, bool) {
	v := r[lift]
	if v == nil || !isFinite(*v) || *v <= 0 {
		return 0, false
	}
	return *v, true
}

// OneRMEquipment remembers the equipment chosen per lift on the 1RM entry screen.
type OneRMEquipment map[training.Lift]training.Equipment

// Log is every logged value of the block: weeks, then day index.
type Log struct {
	Weeks map[int]map[int]*DayState `json:"weeks"`
}

// DayState is the logged state of one training day.
type DayState struct {
	Completed bool                   `json:"completed"`
	Exercises map[int]*ExerciseState `json:"exercises"`
}

// ExerciseState is the logged state of one exercise within a day.
type ExerciseState struct {
	// Equipment is the selection made for this exercise, nil until the lifter picks one.
	Equipment *training.Equipment `json:"equipment"`
	Sets      map[int]*SetEntry   `json:"sets"`
}

// Upper bounds of a logged set. They keep a day's volume finite.
const (
	MaxSetWeightKg = 1000
	MaxSetReps     = 1000
)

// SetEntry is one logged set. A nil field has not been logged. Zero is a valid logged value.
type SetEntry struct {
	Weight *float64 `json:"w"`
	Reps   *int     `json:"r"`
}

// inRange reports whether the logged values are within the bounds a set can be stored with.
func (s SetEntry) inRange() bool {
	if s.Weight != nil && (!isFinite(*s.Weight) || *s.Weight < 0 || *s.Weight > MaxSetWeightKg) {
		return false
	}
	return s.Reps == nil || (*s.Reps >= 0 && *s.Reps <= MaxSetReps)
}

// Complete reports whether the set counts towards the day's totals.
func (s SetEntry) Complete() bool {
	return s.Weight != nil && isFinite(*s.Weight) && *s.Weight >= 0 && s.Reps != nil && *s.Reps > 0
}

// performance returns the logged result when both weight and reps are present.
func (s SetEntry) performance() (*training.Performance, bool) {
	if s.Weight == nil || s.Reps == nil {
		return nil, false
	}
	return &training.Performance{WeightKg: *s.Weight, Reps: *s.Reps}, true
}

// UnmarshalJSON accepts numbers as well as numeric strings, where "" means not logged.
func (s *SetEntry) UnmarshalJSON(data []byte) error {
	var raw struct {
		W json.RawMessage `json:"w"`
		R json.RawMessage `json:"r"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode set entry: %w", err)
	}
	w, err := decodeOptionalNumber(raw.W)
	if err != nil {
		return fmt.Errorf("decode weight: %w", err)
	}
	r, err := decodeOptionalNumber(raw.R)
	if err != nil {
		return fmt.Errorf("decode reps: %w", err)
	}
	s.Weight = w
	s.Reps = nil
	if r != nil {
		reps := int(math.Trunc(*r))
		s.Reps = &reps
	}
	return nil
}

// decodeOptionalNumber decodes null, a number or a string holding a number. Blank or non-numeric strings decode to
// nil.
func decodeOptionalNumber(data json.RawMessage) (*float64, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil, nil //nolint:nilnil // absent value.
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("decode string: %w", err)
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil || !isFinite(f) {
			return nil, nil //nolint:nilnil // unparseable means not logged.
		}
		return &f, nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode number: %w", err)
	}
	return &f, nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
