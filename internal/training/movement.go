package training

import (
	"slices"
	"strings"
)

// Pattern is the movement bucket an exercise falls into. It selects the fallback load heuristics.
type Pattern int

const (
	PatternOther Pattern = iota
	// PatternCore is trunk and bodyweight work that is never loaded by suggestion.
	PatternCore
	// PatternRaise covers rear delt, lateral and front raises.
	PatternRaise
	PatternFly
	PatternCurl
	// PatternTriceps covers triceps work and any extension.
	PatternTriceps
	// PatternStraightArm covers straight-arm work.
	PatternStraightArm
	PatternLegPress
	PatternSquatDeadlift
	// PatternHipExtension covers hip thrusts and glute bridges.
	PatternHipExtension
	// PatternUpperCompound covers presses, rows, pulldowns and pull-ups.
	PatternUpperCompound
	// PatternRopePulldown is a rope pulldown that is not straight-arm. It loads like a pulldown from bodyweight but
	// starts lighter without one.
	PatternRopePulldown
)

func (p Pattern) String() string {
	switch p {
	case PatternOther:
		return "other"
	case PatternCore:
		return "core"
	case PatternRaise:
		return "raise"
	case PatternFly:
		return "fly"
	case PatternCurl:
		return "curl"
	case PatternTriceps:
		return "triceps"
	case PatternStraightArm:
		return "straight-arm"
	case PatternLegPress:
		return "leg press"
	case PatternSquatDeadlift:
		return "squat/deadlift"
	case PatternHipExtension:
		return "hip extension"
	case PatternUpperCompound:
		return "upper compound"
	case PatternRopePulldown:
		return "rope pulldown"
	default:
		return "unknown"
	}
}

// Movement is the classification of one exercise name.
type Movement struct {
	Pattern Pattern
	// CapKg is the heaviest fallback suggestion allowed, zero when uncapped.
	CapKg float64
}

// IsCore reports whether the exercise always gets the placeholder suggestion.
func (m Movement) IsCore() bool {
	return m.Pattern == PatternCore
}

type patternRule struct {
	pattern Pattern
	tokens  []string
}

// patternRules are checked in order, the first rule with a matching token wins.
//
//nolint:gochecknoglobals // read-only lookup table.
var patternRules = []patternRule{
	{PatternCore, []string{
		"plank", "reach-through", "knee raises", "crunch", "rollout", "hanging", "woodchopper", "twist",
	}},
	{PatternRaise, []string{"rear delt", "lateral raise", "front raise"}},
	{PatternFly, []string{"fly"}},
	{PatternCurl, []string{"curl"}},
	{PatternTriceps, []string{"triceps", "extension"}},
	{PatternStraightArm, []string{"straight-arm"}},
	{PatternRopePulldown, []string{"rope pulldown"}},
	{PatternLegPress, []string{"leg press"}},
	{PatternSquatDeadlift, []string{"squat", "deadlift"}},
	{PatternHipExtension, []string{"hip thrust", "glute bridge"}},
	{PatternUpperCompound, []string{"press", "row", "pulldown", "pull-up"}},
}

// capRules apply independently of the pattern. When several match, the lowest cap wins.
//
//nolint:gochecknoglobals // read-only lookup table.
var capRules = []struct {
	capKg  float64
	tokens []string
}{
	{12, []string{"rear delt", "lateral raise", "front raise"}},
	{20, []string{"curl"}},
	{25, []string{"triceps", "extension"}},
	{35, []string{"straight-arm", "rope pulldown"}},
	{30, []string{"fly"}},
}

// Classify buckets an exercise by case-insensitive substring matches on its name.
func Classify(name string) Movement {
	n := strings.ToLower(name)
	contains := func(token string) bool { return strings.Contains(n, token) }

	m := Movement{Pattern: PatternOther, CapKg: 0}
	for _, rule := range patternRules {
		if slices.ContainsFunc(rule.tokens, contains) {
			m.Pattern = rule.pattern
			break
		}
	}
	for _, rule := range capRules {
		if slices.ContainsFunc(rule.tokens, contains) && (m.CapKg == 0 || rule.capKg < m.CapKg) {
			m.CapKg = rule.capKg
		}
	}
	return m
}

// BodyweightFactor is the share of bodyweight suggested when no 1RM is on file.
func (p Pattern) BodyweightFactor() float64 {
	switch p {
	case PatternRaise, PatternFly, PatternCurl, PatternTriceps, PatternStraightArm:
		return 0.20 //nolint:mnd // isolation.
	case PatternLegPress, PatternSquatDeadlift, PatternHipExtension:
		return 0.70 //nolint:mnd // lower body compound.
	case PatternUpperCompound, PatternRopePulldown:
		return 0.50 //nolint:mnd // upper body compound.
	case PatternOther, PatternCore:
		return 0.45 //nolint:mnd // everything else.
	default:
		return 0.45 //nolint:mnd // everything else.
	}
}

// DefaultKg is the conservative load suggested when neither a 1RM nor the bodyweight is known.
func (p Pattern) DefaultKg() float64 {
	switch p {
	case PatternRaise:
		return 6
	case PatternFly:
		return 10
	case PatternCurl:
		return 12
	case PatternTriceps:
		return 15
	case PatternStraightArm, PatternRopePulldown:
		return 20
	case PatternUpperCompound:
		return 30
	case PatternLegPress:
		return 60
	case PatternSquatDeadlift:
		return 40
	case PatternOther, PatternCore, PatternHipExtension:
		return 20
	default:
		return 20
	}
}
