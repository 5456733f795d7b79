package datemath_test

import (
	"testing"
	"time"

	"timeclerk/pkg/datemath"
)

func TestNewParser(t *testing.T) {
	if _, err := datemath.NewParser("Europe/Berlin"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := datemath.NewParser("Not/AZone"); err == nil {
		t.Errorf("expected error for invalid timezone")
	}
}

func TestWeek_MondayAnchor(t *testing.T) {
	p, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 2025-01-13 is a Monday. Walk "now" through every weekday of that week
	// and require the identical Monday anchor each time.
	monday := time.Date(2025, 1, 13, 10, 0, 0, 0, time.UTC)

	for offset := 0; offset < 7; offset++ {
		now := monday.AddDate(0, 0, offset)
		week := p.Week(now)

		if week.Monday.Weekday() != time.Monday {
			t.Errorf("now=%s: anchor %s is not a Monday", now.Format(datemath.DateFormatISO), week.Monday)
		}
		if got := week.Monday.Format(datemath.DateFormatISO); got != "2025-01-13" {
			t.Errorf("now=%s: expected Monday 2025-01-13, got %s", now.Format(datemath.DateFormatISO), got)
		}
		if got := week.Friday.Format(datemath.DateFormatISO); got != "2025-01-17" {
			t.Errorf("now=%s: expected Friday 2025-01-17, got %s", now.Format(datemath.DateFormatISO), got)
		}

		// Seven strictly consecutive days, no skip across the Sunday boundary.
		for i, day := range week.Days {
			want := week.Monday.AddDate(0, 0, i)
			if !day.Date.Equal(want) {
				t.Errorf("day %d: expected %s, got %s", i, want, day.Date)
			}
		}
		if week.Days[0].Name != "Monday" || week.Days[6].Name != "Sunday" {
			t.Errorf("unexpected day names: %s..%s", week.Days[0].Name, week.Days[6].Name)
		}
	}
}

func TestWeek_SundayWraparound(t *testing.T) {
	p, _ := datemath.NewParser("UTC")

	// Sunday 2025-01-19 must still map to the week starting Monday 2025-01-13.
	sunday := time.Date(2025, 1, 19, 23, 30, 0, 0, time.UTC)
	week := p.Week(sunday)

	if got := week.Monday.Format(datemath.DateFormatISO); got != "2025-01-13" {
		t.Errorf("expected Monday 2025-01-13 for a Sunday now, got %s", got)
	}
	if got := week.Sunday.Format(datemath.DateFormatISO); got != "2025-01-19" {
		t.Errorf("expected Sunday 2025-01-19, got %s", got)
	}
}

func TestRoundQuarter(t *testing.T) {
	p, _ := datemath.NewParser("UTC")

	cases := []struct {
		name   string
		minute int
		second int
		want   string
	}{
		{"rounds down", 7, 12, "14:00:00"},
		{"rounds up", 8, 0, "14:15:00"},
		{"mid range", 22, 45, "14:15:00"},
		{"exact boundary", 30, 0, "14:30:00"},
		{"rolls into next hour", 53, 59, "15:00:00"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := time.Date(2025, 1, 13, 14, tc.minute, tc.second, 500, time.UTC)
			got := p.RoundQuarter(in)

			if got.Format("15:04:05") != tc.want {
				t.Errorf("RoundQuarter(:%02d:%02d) = %s, want %s", tc.minute, tc.second, got.Format("15:04:05"), tc.want)
			}
			if got.Nanosecond() != 0 {
				t.Errorf("expected zero nanoseconds, got %d", got.Nanosecond())
			}
		})
	}
}

func TestRoundQuarter_Idempotent(t *testing.T) {
	p, _ := datemath.NewParser("UTC")

	for minute := 0; minute < 60; minute++ {
		in := time.Date(2025, 6, 2, 9, minute, 33, 0, time.UTC)
		once := p.RoundQuarter(in)
		twice := p.RoundQuarter(once)

		if !once.Equal(twice) {
			t.Errorf("minute %d: round(round(x))=%s differs from round(x)=%s", minute, twice, once)
		}
		if m := once.Minute(); m%15 != 0 {
			t.Errorf("minute %d: rounded minute %d not on quarter grid", minute, m)
		}
	}
}
