// Package calendar provides Cybertronian calendar calculations: parsing
// and formatting of arc-notation dates, conversion to and from Earth
// seconds, and date arithmetic.
package calendar

// Unit constants
//
// The whole system derives from two reference facts: an Earth year is
// 365.25 days, and one solar cycle spans 10 Earth years. Every smaller
// unit is a fixed ratio of the solar cycle. The ratios are real-valued;
// only final field values are truncated to integers.
const (
	// EarthYearDays is the length of an Earth year in days.
	EarthYearDays = 365.25

	// SolarCycleYears is the number of Earth years in one solar cycle.
	SolarCycleYears = 10

	// SolarCycleDays is the length of one solar cycle in Earth days (3652.5).
	SolarCycleDays = EarthYearDays * SolarCycleYears

	// CycleDays is the length of one cycle in Earth days (~3.65).
	// A solar cycle holds exactly 1000 cycles.
	CycleDays = SolarCycleDays / 1000

	// ChordDays is the length of one chord in Earth days. Ten chords
	// make a cycle.
	ChordDays = CycleDays / 10

	// KlikDays is the length of one klik in Earth days. A thousand
	// kliks make a cycle, so a chord holds 100 kliks.
	KlikDays = CycleDays / 1000

	// SecondsPerDay converts Earth days to seconds.
	SecondsPerDay = 86400

	// KlikSeconds is the length of one klik in Earth seconds (~315.6).
	// FromSeconds truncates sub-klik residue, so round-trips through it
	// are accurate to within this bound.
	KlikSeconds = KlikDays * SecondsPerDay
)
