package domain

import "time"

// Shift codes written into worker cells. A non-working day has no code.
const (
	ShiftDay        = "D" // Monday to Thursday
	ShiftFriday     = "E"
	ShiftPreHoliday = "F" // shortened shift before a public holiday
)

// Mark represents a single legend entry of the roster.
// Name is the explanation shown in the legend; Key is the code used in the grid.
type Mark struct {
	Name string
	Key  string
}

// Marks is the legend of every code the generator writes.
var Marks = []Mark{
	{Name: "Darba diena (pirmdiena–ceturtdiena)", Key: ShiftDay},
	{Name: "Piektdiena", Key: ShiftFriday},
	{Name: "Pirmssvētku diena", Key: ShiftPreHoliday},
}

// WeekdayIndex converts a time.Weekday to a Monday-based index (Mon=0 .. Sun=6).
func WeekdayIndex(wd time.Weekday) int {
	return (int(wd) + 6) % 7
}

// IsWeekend reports whether a Monday-based weekday index is Saturday or Sunday.
func IsWeekend(weekday int) bool {
	return weekday >= 5
}

// ShiftCode returns the code for a working day. Callers handle weekends and
// holidays themselves; those days carry no code.
//
//	pre-holiday → "F"
//	Mon..Thu    → "D"
//	Fri         → "E"
func ShiftCode(weekday int, preHoliday bool) string {
	if preHoliday {
		return ShiftPreHoliday
	}
	if weekday <= 3 {
		return ShiftDay
	}
	return ShiftFriday
}
