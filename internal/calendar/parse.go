package calendar

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidDate indicates date text that does not follow arc notation:
// a non-numeric token, or a token count outside 1-4.
var ErrInvalidDate = errors.New("invalid date format")

// Parse converts arc-notation text to a Date.
//
// The text is lowercased, split on the literal separator "arc", and
// each segment is split on whitespace into integer tokens. The tokens,
// kept in left-to-right order, are assigned to fields by count alone,
// rightmost token to the largest unit present:
//
//	4 tokens: klik, chord, cycle, solar cycle
//	3 tokens: chord, cycle, solar cycle
//	2 tokens: klik, chord
//	1 token:  cycle
//
// Any other count fails. The fixed table lets users drop fields for
// brevity ("5 arc 3" is klik 5, chord 3; a bare "7" is cycle 7) at the
// cost of being ambiguous for other lengths; that trade-off is
// intentional. Unassigned fields stay nil rather than zero.
//
// Negative values are accepted as written. The conversion math is
// defined for them, but positions before the time origin have no
// physical meaning.
func Parse(text string) (Date, error) {
	normalized := strings.ToLower(strings.TrimSpace(text))

	var numbers []int
	for _, segment := range strings.Split(normalized, "arc") {
		for _, token := range strings.Fields(segment) {
			n, err := strconv.Atoi(token)
			if err != nil {
				return Date{}, fmt.Errorf("%w: %q is not a number", ErrInvalidDate, token)
			}
			numbers = append(numbers, n)
		}
	}

	switch len(numbers) {
	case 4:
		return Date{
			Klik:       &numbers[0],
			Chord:      &numbers[1],
			Cycle:      &numbers[2],
			SolarCycle: &numbers[3],
		}, nil
	case 3:
		return Date{
			Chord:      &numbers[0],
			Cycle:      &numbers[1],
			SolarCycle: &numbers[2],
		}, nil
	case 2:
		return Date{
			Klik:  &numbers[0],
			Chord: &numbers[1],
		}, nil
	case 1:
		return Date{
			Cycle: &numbers[0],
		}, nil
	default:
		return Date{}, fmt.Errorf("%w: expected 1-4 numbers, got %d", ErrInvalidDate, len(numbers))
	}
}
