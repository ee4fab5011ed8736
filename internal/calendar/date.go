package calendar

import "math"

// Date is a Cybertronian date. Each field is optional: a nil field was
// not supplied, which is distinct from an explicit zero for formatting
// purposes. Conversion treats nil as zero.
//
// A Date with every field nil is not a valid date; Parse and
// FromSeconds never produce one.
type Date struct {
	Klik       *int `json:"klik,omitempty"`
	Chord      *int `json:"chord,omitempty"`
	Cycle      *int `json:"cycle,omitempty"`
	SolarCycle *int `json:"solar_cycle,omitempty"`
}

// Seconds converts the date to Earth seconds elapsed since the
// Cybertronian time origin (solar cycle 0, cycle 0, chord 0, klik 0).
// Absent fields contribute nothing.
func (d Date) Seconds() float64 {
	days := 0.0
	if d.SolarCycle != nil {
		days += float64(*d.SolarCycle) * SolarCycleDays
	}
	if d.Cycle != nil {
		days += float64(*d.Cycle) * CycleDays
	}
	if d.Chord != nil {
		days += float64(*d.Chord) * ChordDays
	}
	if d.Klik != nil {
		days += float64(*d.Klik) * KlikDays
	}
	return days * SecondsPerDay
}

// FromSeconds converts Earth seconds since the origin to a Date,
// truncating to a whole number of kliks and splitting that count into
// units, largest first. Unlike Parse, the result always has all four
// fields populated; sub-klik residue is discarded. Every field is
// non-negative whenever the input is non-negative.
func FromSeconds(seconds float64) Date {
	// A chord is 100 kliks, a cycle 1000, a solar cycle a million, so
	// after the one floor the fields are plain integer quotients.
	kliks := int(math.Floor(seconds / KlikSeconds))

	solarCycle := kliks / 1000000
	cycle := kliks % 1000000 / 1000
	chord := kliks % 1000 / 100
	klik := kliks % 100

	return Date{
		Klik:       &klik,
		Chord:      &chord,
		Cycle:      &cycle,
		SolarCycle: &solarCycle,
	}
}
