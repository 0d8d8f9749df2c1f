package template

import (
	"fmt"
	"strconv"

	"github.com/Gatis224/uzskaite/calendar"
	"github.com/Gatis224/uzskaite/domain"
	"github.com/Gatis224/uzskaite/excel"
)

// Populate writes the day numbers and the worker shift codes of a month into
// the 31-column window, then hides the columns the month does not use.
//
// Weekends and holidays are gray with no code. Other days get "F" before a
// holiday, otherwise "D" Monday to Thursday and "E" on Friday.
func Populate(s *excel.Sheet, sm *StyleManager, l Layout, facts calendar.MonthFacts) error {
	for d := 1; d <= WindowDays; d++ {
		col := l.Column(d)

		day, ok := facts.Day(d)
		if !ok {
			if err := resetColumn(s, sm, l, col); err != nil {
				return fmt.Errorf("day %d: %w", d, err)
			}
			continue
		}

		if err := writeDay(s, sm, l, col, d, day); err != nil {
			return fmt.Errorf("day %d: %w", d, err)
		}
	}

	if n := facts.DaysInMonth(); n < WindowDays {
		if err := s.HideColumns(l.Column(n+1), l.Column(WindowDays)); err != nil {
			return err
		}
	}

	return nil
}

func writeDay(s *excel.Sheet, sm *StyleManager, l Layout, col, d int, day calendar.DayFacts) error {
	look := LookBlank
	if day.Off() {
		look = LookOff
	}

	if err := sm.Write(s, l.DayRow, col, strconv.Itoa(d), look); err != nil {
		return fmt.Errorf("header: %w", err)
	}

	for _, r := range l.Workers {
		var err error
		if day.Off() {
			err = sm.Reset(s, r, col, LookOff)
		} else {
			err = sm.Write(s, r, col, domain.ShiftCode(day.Weekday, day.PreHoliday), LookBlank)
		}
		if err != nil {
			return fmt.Errorf("row %d: %w", r, err)
		}
	}

	return nil
}

func resetColumn(s *excel.Sheet, sm *StyleManager, l Layout, col int) error {
	if err := sm.Reset(s, l.DayRow, col, LookBlank); err != nil {
		return fmt.Errorf("header: %w", err)
	}
	for _, r := range l.Workers {
		if err := sm.Reset(s, r, col, LookBlank); err != nil {
			return fmt.Errorf("row %d: %w", r, err)
		}
	}
	return nil
}
