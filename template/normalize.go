package template

import (
	"fmt"

	"github.com/Gatis224/uzskaite/excel"
)

// WindowDays is the number of day columns every roster reserves.
const WindowDays = 31

// DayColumnWidth is the width given to every day column.
const DayColumnWidth = 3.0

// ClearWindow empties all 31 day columns of the day row and every worker
// row, regardless of the month's length, and makes the columns visible
// again. Calling it twice leaves the same state as calling it once.
func ClearWindow(s *excel.Sheet, sm *StyleManager, l Layout) error {
	first, last := l.Column(1), l.Column(WindowDays)
	if err := s.ShowColumns(first, last, DayColumnWidth); err != nil {
		return err
	}

	for d := 1; d <= WindowDays; d++ {
		col := l.Column(d)
		if err := sm.Reset(s, l.DayRow, col, LookBlank); err != nil {
			return fmt.Errorf("clear day %d header: %w", d, err)
		}
		for _, r := range l.Workers {
			if err := sm.Reset(s, r, col, LookBlank); err != nil {
				return fmt.Errorf("clear day %d row %d: %w", d, r, err)
			}
		}
	}

	return nil
}
