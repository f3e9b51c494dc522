package training

import (
	"encoding/json"
	"strconv"
)

// SuggestionKind discriminates the possible suggestion outcomes.
type SuggestionKind int

const (
	// SuggestionNone means no weight could be derived.
	SuggestionNone SuggestionKind = iota
	// SuggestionPlaceholder is shown for core and bodyweight work instead of a load.
	SuggestionPlaceholder
	// SuggestionWeight carries a load in kilograms.
	SuggestionWeight
)

// placeholder is the literal rendered for core and bodyweight suggestions.
const placeholder = "00"

// Suggestion is a suggested load for one set.
type Suggestion struct {
	kind SuggestionKind
	kg   float64
}

// NoSuggestion returns the empty suggestion.
func NoSuggestion() Suggestion {
	return Suggestion{kind: SuggestionNone, kg: 0}
}

// Placeholder returns the suggestion used for core and bodyweight work.
func Placeholder() Suggestion {
	return Suggestion{kind: SuggestionPlaceholder, kg: 0}
}

// WeightSuggestion suggests kg kilograms.
func WeightSuggestion(kg float64) Suggestion {
	return Suggestion{kind: SuggestionWeight, kg: kg}
}

func (s Suggestion) Kind() SuggestionKind {
	return s.kind
}

// Kg returns the suggested load. ok is false unless the suggestion carries a weight.
func (s Suggestion) Kg() (float64, bool) {
	return s.kg, s.kind == SuggestionWeight
}

// String renders the suggestion as shown to the lifter: "" for none, "00" for the placeholder and the load with
// minimal decimals otherwise.
func (s Suggestion) String() string {
	switch s.kind {
	case SuggestionPlaceholder:
		return placeholder
	case SuggestionWeight:
		return strconv.FormatFloat(s.kg, 'f', -1, 64)
	case SuggestionNone:
		return ""
	default:
		return ""
	}
}

func (s Suggestion) MarshalJSON() ([]byte, error) {
	b, err := json.Marshal(s.String())
	if err != nil {
		return nil, err //nolint:wrapcheck // marshalling a string does not fail.
	}
	return b, nil
}
