package datemath

import (
	"fmt"
	"time"
)

// Date format
const (
	DateFormatISO = "2006-01-02"
)

// Parser computes week boundaries and quarter-hour rounding in a fixed timezone.
type Parser struct {
	location *time.Location
}

// NewParser creates a new parser for the given IANA timezone string.
// e.g. "Europe/Berlin"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Week returns the Monday-anchored week containing the given instant.
// Day 0 is always Monday; a Sunday "now" belongs to the week that started
// six days earlier, not the week starting the next day.
func (p *Parser) Week(now time.Time) WeekInfo {
	now = now.In(p.location)

	weekday := int(now.Weekday())
	if weekday == 0 { // Sunday
		weekday = 7
	}
	monday := p.startOfDay(now.AddDate(0, 0, -(weekday - 1)))

	var days [7]WeekDay
	for i := 0; i < 7; i++ {
		d := monday.AddDate(0, 0, i)
		days[i] = WeekDay{
			Name: d.Weekday().String(),
			Date: d,
		}
	}

	return WeekInfo{
		Monday: monday,
		Friday: monday.AddDate(0, 0, 4),
		Sunday: monday.AddDate(0, 0, 6),
		Days:   days,
	}
}

// RoundQuarter snaps t to the nearest 15-minute boundary, zeroing seconds
// and sub-second components. Minutes round half up, so :07 collapses to
// :00 and :53 rolls into the next hour.
func (p *Parser) RoundQuarter(t time.Time) time.Time {
	t = t.In(p.location)

	minute := (t.Minute() + 7) / 15 * 15
	rounded := time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, p.location)

	return rounded.Add(time.Duration(minute) * time.Minute)
}

// startOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}
