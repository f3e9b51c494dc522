package training

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// DefaultTargetReps is used when a prescription carries no usable rep count.
const DefaultTargetReps = 8

//nolint:gochecknoglobals // compiled once.
var (
	repRangeRe    = regexp.MustCompile(`(\d{1,2})\s*[–-]\s*(\d{1,2})`)
	repExplicitRe = regexp.MustCompile(`[x×]\s*(\d{1,2})\b`)
	repAnyRe      = regexp.MustCompile(`\b(\d{1,2})\b`)
)

// ParseTargetReps extracts one representative rep count from a prescription such as "4 × 6–8".
//
// The first rule that matches wins: a range a–b gives the rounded average, an explicit ×N or xN gives N, and
// otherwise the first standalone one or two digit number is used.
func ParseTargetReps(prescription string) (int, bool) {
	p := strings.Join(strings.Fields(prescription), " ")

	if m := repRangeRe.FindStringSubmatch(p); m != nil {
		a, _ := strconv.Atoi(m[1])
		b, _ := strconv.Atoi(m[2])
		return int(math.Round(float64(a+b) / 2)), true //nolint:mnd // average.
	}
	if m := repExplicitRe.FindStringSubmatch(p); m != nil {
		n, _ := strconv.Atoi(m[1])
		return n, true
	}
	if m := repAnyRe.FindStringSubmatch(p); m != nil {
		n, _ := strconv.Atoi(m[1])
		return n, true
	}
	return 0, false
}

// TargetReps is ParseTargetReps with the program-wide default applied. A parsed zero also falls back to the default.
func TargetReps(prescription string) int {
	if n, ok := ParseTargetReps(prescription); ok && n > 0 {
		return n
	}
	return DefaultTargetReps
}
