package calendar

import (
	"fmt"
	"strings"
)

// InvalidDate is returned by String for field combinations that have no
// arc-notation shape. It is a normal value, not an error: such dates can
// only be built directly, never parsed.
const InvalidDate = "Invalid date"

// String renders the date in arc notation, choosing the output shape
// from which fields are present. The four shapes mirror the parser's
// arity table, so String(Parse(x)) reproduces a normalized x.
func (d Date) String() string {
	switch {
	case d.Klik != nil && d.Chord != nil && d.Cycle != nil && d.SolarCycle != nil:
		return fmt.Sprintf("%d arc %d %d arc %d", *d.Klik, *d.Chord, *d.Cycle, *d.SolarCycle)
	case d.Klik == nil && d.Chord != nil && d.Cycle != nil && d.SolarCycle != nil:
		return fmt.Sprintf("%d %d arc %d", *d.Chord, *d.Cycle, *d.SolarCycle)
	case d.Klik != nil && d.Chord != nil && d.Cycle == nil && d.SolarCycle == nil:
		return fmt.Sprintf("%d arc %d", *d.Klik, *d.Chord)
	case d.Klik == nil && d.Chord == nil && d.Cycle != nil && d.SolarCycle == nil:
		return fmt.Sprintf("%d", *d.Cycle)
	default:
		return InvalidDate
	}
}

// Explain describes the date one unit per line, largest unit first,
// with a fixed approximate Earth duration for each. Only present
// fields are listed; the order never depends on the input shape.
func (d Date) Explain() string {
	var lines []string
	if d.SolarCycle != nil {
		lines = append(lines, fmt.Sprintf("Solar Cycle: %d (10 Earth years each)", *d.SolarCycle))
	}
	if d.Cycle != nil {
		lines = append(lines, fmt.Sprintf("Cycle: %d (about 3.65 Earth days each)", *d.Cycle))
	}
	if d.Chord != nil {
		lines = append(lines, fmt.Sprintf("Chord: %d (about 8.8 Earth hours each)", *d.Chord))
	}
	if d.Klik != nil {
		lines = append(lines, fmt.Sprintf("Klik: %d (about 5.3 Earth minutes each)", *d.Klik))
	}
	return strings.Join(lines, "\n")
}
