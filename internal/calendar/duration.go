package calendar

import (
	"regexp"
	"strconv"
	"strings"
)

// durationPattern matches one "<integer> <unit>" phrase, with optional
// whitespace between number and unit and an optional plural s.
var durationPattern = regexp.MustCompile(`(\d+)\s*(years?|weeks?|days?|hours?|minutes?|seconds?)`)

// unitSeconds maps a singular unit word to its length in Earth seconds.
// A year is the Julian 365.25 days, matching the solar-cycle reference
// fact.
var unitSeconds = map[string]float64{
	"second": 1,
	"minute": 60,
	"hour":   3600,
	"day":    86400,
	"week":   604800,
	"year":   EarthYearDays * SecondsPerDay,
}

// ParseDuration sums every duration phrase found in the text and
// returns the total in Earth seconds. Phrases are of the form
// "2 years", "45minutes"; recognized units are year, week, day, hour,
// minute, second. Text between phrases is ignored, so "2 years and
// 3 weeks" works. Text with no phrases at all yields 0, never an
// error; callers that need a positive duration must check for that.
func ParseDuration(text string) float64 {
	total := 0.0
	for _, match := range durationPattern.FindAllStringSubmatch(strings.ToLower(text), -1) {
		value, err := strconv.Atoi(match[1])
		if err != nil {
			continue // digits too long for an int; skip the phrase
		}
		unit := strings.TrimSuffix(match[2], "s")
		total += float64(value) * unitSeconds[unit]
	}
	return total
}
