package calendar

import (
	"math"
	"testing"
)

func TestSeconds(t *testing.T) {
	tests := []struct {
		name string
		date Date
		want float64
	}{
		{
			name: "origin",
			date: Date{Klik: ip(0), Chord: ip(0), Cycle: ip(0), SolarCycle: ip(0)},
			want: 0,
		},
		{
			name: "one cycle",
			date: Date{Cycle: ip(1)},
			want: CycleDays * SecondsPerDay,
		},
		{
			name: "one solar cycle is ten Earth years",
			date: Date{SolarCycle: ip(1)},
			want: 10 * 365.25 * 86400,
		},
		{
			name: "one chord is a tenth of a cycle",
			date: Date{Chord: ip(10)},
			want: CycleDays * SecondsPerDay,
		},
		{
			name: "one klik is a thousandth of a cycle",
			date: Date{Klik: ip(1000)},
			want: CycleDays * SecondsPerDay,
		},
		{
			name: "absent fields contribute nothing",
			date: Date{Cycle: ip(2), SolarCycle: ip(1)},
			want: (SolarCycleDays + 2*CycleDays) * SecondsPerDay,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.date.Seconds()
			if math.Abs(got-tt.want) > 1e-6 {
				t.Errorf("Seconds() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFromSeconds(t *testing.T) {
	tests := []struct {
		name    string
		seconds float64
		want    Date
	}{
		{
			name:    "zero maps to the origin",
			seconds: 0,
			want:    Date{Klik: ip(0), Chord: ip(0), Cycle: ip(0), SolarCycle: ip(0)},
		},
		{
			name:    "one second past a cycle boundary",
			seconds: CycleDays*SecondsPerDay + 1,
			want:    Date{Klik: ip(0), Chord: ip(0), Cycle: ip(1), SolarCycle: ip(0)},
		},
		{
			name:    "one second past a solar cycle boundary",
			seconds: SolarCycleDays*SecondsPerDay + 1,
			want:    Date{Klik: ip(0), Chord: ip(0), Cycle: ip(0), SolarCycle: ip(1)},
		},
		{
			name:    "sub-klik residue truncates",
			seconds: KlikSeconds * 1.5,
			want:    Date{Klik: ip(1), Chord: ip(0), Cycle: ip(0), SolarCycle: ip(0)},
		},
		{
			name:    "composite value, half a klik off the boundary",
			seconds: (2*SolarCycleDays+7*CycleDays+3*ChordDays+5*KlikDays)*SecondsPerDay + KlikSeconds/2,
			want:    Date{Klik: ip(5), Chord: ip(3), Cycle: ip(7), SolarCycle: ip(2)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromSeconds(tt.seconds)
			if !dateEqual(got, tt.want) {
				t.Errorf("FromSeconds(%v) = %+v, want %+v", tt.seconds, got, tt.want)
			}
		})
	}
}

// Round-trips lose at most one klik of precision: FromSeconds truncates
// whatever fraction of a klik remains.
func TestFromSeconds_RoundTrip(t *testing.T) {
	samples := []float64{
		0, 1, 59, 86400, 315580, 1e6, 31557601, 3.155761e8, 9.87654321e9,
	}

	for _, s := range samples {
		got := FromSeconds(s).Seconds()
		if got > s {
			t.Errorf("round-trip of %v overshot to %v", s, got)
		}
		if s-got >= KlikSeconds {
			t.Errorf("round-trip of %v lost %v seconds, want < %v", s, s-got, KlikSeconds)
		}
	}
}

// Seconds sitting a float ulp below a unit boundary must not push any
// field negative: the decomposition floors once, so each field is a
// plain quotient of a non-negative klik count.
func TestFromSeconds_FieldsNonNegative(t *testing.T) {
	boundaries := []float64{
		KlikSeconds,
		ChordDays * SecondsPerDay,
		7 * ChordDays * SecondsPerDay,
		CycleDays * SecondsPerDay,
		33 * CycleDays * SecondsPerDay,
		SolarCycleDays * SecondsPerDay,
		2 * SolarCycleDays * SecondsPerDay,
		(2*SolarCycleDays + 7*CycleDays + 3*ChordDays) * SecondsPerDay,
	}

	for _, boundary := range boundaries {
		for _, s := range []float64{boundary, math.Nextafter(boundary, 0)} {
			d := FromSeconds(s)
			for name, field := range map[string]*int{
				"klik": d.Klik, "chord": d.Chord, "cycle": d.Cycle, "solar_cycle": d.SolarCycle,
			} {
				if field == nil {
					t.Fatalf("FromSeconds(%v) left %s nil", s, name)
				}
				if *field < 0 {
					t.Errorf("FromSeconds(%v) %s = %d, want >= 0", s, name, *field)
				}
			}
			if diff := math.Abs(d.Seconds() - s); diff >= KlikSeconds {
				t.Errorf("FromSeconds(%v) round-trips with error %v, want < %v", s, diff, KlikSeconds)
			}
		}
	}
}
