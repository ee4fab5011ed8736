package calendar

import (
	"errors"
	"math"
	"testing"
)

func TestDifference(t *testing.T) {
	t.Run("same date is zero", func(t *testing.T) {
		d, err := Parse("5 arc 3 7 arc 2")
		if err != nil {
			t.Fatal(err)
		}
		seconds, span := Difference(d, d)
		if seconds != 0 {
			t.Errorf("Difference(d, d) seconds = %v, want 0", seconds)
		}
		if !dateEqual(span, FromSeconds(0)) {
			t.Errorf("Difference(d, d) span = %+v, want origin", span)
		}
	})

	t.Run("order does not matter", func(t *testing.T) {
		a := Date{Cycle: ip(5)}
		b := Date{Cycle: ip(2)}
		sAB, spanAB := Difference(a, b)
		sBA, spanBA := Difference(b, a)
		if sAB != sBA {
			t.Errorf("Difference not symmetric: %v vs %v", sAB, sBA)
		}
		if !dateEqual(spanAB, spanBA) {
			t.Errorf("Difference spans differ: %+v vs %+v", spanAB, spanBA)
		}
		want := 3 * CycleDays * SecondsPerDay
		if math.Abs(sAB-want) > 1e-6 {
			t.Errorf("Difference = %v, want %v", sAB, want)
		}
	})
}

func TestAdd(t *testing.T) {
	t.Run("shifts forward by the duration", func(t *testing.T) {
		d := FromSeconds(1000)
		got, err := Add(d, "200 seconds")
		if err != nil {
			t.Fatal(err)
		}
		// d's own seconds are already sub-klik truncated, so the sum is
		// exact and only the final truncation applies.
		want := d.Seconds() + 200
		if diff := want - got.Seconds(); diff < 0 || diff >= KlikSeconds {
			t.Errorf("Add moved to %v seconds, want within a klik below %v", got.Seconds(), want)
		}
	})

	t.Run("rejects zero duration", func(t *testing.T) {
		_, err := Add(Date{Cycle: ip(1)}, "immediately")
		if !errors.Is(err, ErrInvalidDuration) {
			t.Errorf("Add with no duration: err = %v, want ErrInvalidDuration", err)
		}
	})
}

func TestSubtract(t *testing.T) {
	t.Run("rejects crossing the origin", func(t *testing.T) {
		_, err := Subtract(FromSeconds(100), "200 seconds")
		if !errors.Is(err, ErrNegativeResult) {
			t.Errorf("Subtract below origin: err = %v, want ErrNegativeResult", err)
		}
	})

	t.Run("rejects zero duration", func(t *testing.T) {
		_, err := Subtract(Date{Cycle: ip(1)}, "")
		if !errors.Is(err, ErrInvalidDuration) {
			t.Errorf("Subtract with no duration: err = %v, want ErrInvalidDuration", err)
		}
	})

	t.Run("add then subtract returns within a klik", func(t *testing.T) {
		start := FromSeconds(5e6)
		forward, err := Add(start, "3 days 4 hours")
		if err != nil {
			t.Fatal(err)
		}
		back, err := Subtract(forward, "3 days 4 hours")
		if err != nil {
			t.Fatal(err)
		}
		if diff := math.Abs(back.Seconds() - start.Seconds()); diff >= KlikSeconds {
			t.Errorf("add/subtract drifted %v seconds, want < %v", diff, KlikSeconds)
		}
	})
}
