// Package main is cybercal, a command-line front end for the
// Cybertronian calendar engine. It covers the same operations as the
// HTTP API: converting arc-notation dates to and from Earth seconds,
// explaining them, and doing date arithmetic with duration phrases.
//
// Usage examples:
//
//	cybercal -date "5 arc 3"
//	cybercal -seconds 123456
//	cybercal -now
//	cybercal -date "1 2 arc 3" -diff "7"
//	cybercal -date "7" -add "2 days"
//	cybercal -date "2 0 arc 1" -sub "1 week"
//	cybercal -duration "2 years, 3 weeks"
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/teletraan/cybertron-api/internal/calendar"
)

func main() {
	var (
		dateText = flag.String("date", "", "date in arc notation")
		seconds  = flag.Float64("seconds", -1, "Earth seconds since the origin")
		now      = flag.Bool("now", false, "current date, origin pinned to the Unix epoch")
		diffText = flag.String("diff", "", "second date to diff against -date")
		addText  = flag.String("add", "", "duration phrase to add to -date")
		subText  = flag.String("sub", "", "duration phrase to subtract from -date")
		durText  = flag.String("duration", "", "duration phrase to convert to seconds")
	)
	flag.Parse()

	if err := run(*dateText, *seconds, *now, *diffText, *addText, *subText, *durText); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(dateText string, seconds float64, now bool, diffText, addText, subText, durText string) error {
	switch {
	case durText != "":
		fmt.Printf("%.0f seconds\n", calendar.ParseDuration(durText))
		return nil

	case now:
		printDate(calendar.FromSeconds(float64(time.Now().Unix())))
		return nil

	case seconds >= 0:
		printDate(calendar.FromSeconds(seconds))
		return nil

	case dateText != "" && diffText != "":
		first, err := calendar.Parse(dateText)
		if err != nil {
			return fmt.Errorf("first date: %w", err)
		}
		second, err := calendar.Parse(diffText)
		if err != nil {
			return fmt.Errorf("second date: %w", err)
		}
		diffSeconds, span := calendar.Difference(first, second)
		fmt.Printf("difference: %s (%.0f seconds)\n", span, diffSeconds)
		return nil

	case dateText != "" && addText != "":
		date, err := calendar.Parse(dateText)
		if err != nil {
			return err
		}
		shifted, err := calendar.Add(date, addText)
		if err != nil {
			return err
		}
		printDate(shifted)
		return nil

	case dateText != "" && subText != "":
		date, err := calendar.Parse(dateText)
		if err != nil {
			return err
		}
		shifted, err := calendar.Subtract(date, subText)
		if err != nil {
			return err
		}
		printDate(shifted)
		return nil

	case dateText != "":
		date, err := calendar.Parse(dateText)
		if err != nil {
			return err
		}
		printDate(date)
		return nil

	default:
		flag.Usage()
		return fmt.Errorf("no operation given")
	}
}

func printDate(d calendar.Date) {
	fmt.Println(d)
	fmt.Printf("%.0f Earth seconds since the origin\n", d.Seconds())
	fmt.Println(d.Explain())
}
