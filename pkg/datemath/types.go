package datemath

import "time"

// WeekDay is one weekday name/date pair within a week.
type WeekDay struct {
	Name string
	Date time.Time
}

// WeekInfo describes the Monday-anchored week containing a reference instant.
type WeekInfo struct {
	Monday time.Time
	Friday time.Time
	Sunday time.Time
	Days   [7]WeekDay
}
