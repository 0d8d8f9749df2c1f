package template

import (
	"regexp"
	"strings"

	"github.com/Gatis224/uzskaite/domain"
	"github.com/xuri/excelize/v2"
)

// Scan bounds of the region locator.
const (
	HeaderScanRows = 14
	DayRowScanRows = 40
)

// workerLabel matches the worker number in column 1: "5" or "5.".
var workerLabel = regexp.MustCompile(`^\d+\.?$`)

// Grid is the read side of a worksheet, addressed by 1-based row and column.
type Grid interface {
	Value(row, col int) string
	IsText(row, col int) bool
	MaxRow() int
	MaxCol() int
}

// Header is the cell holding the "<year>.<month>" title.
type Header struct {
	Row  int
	Col  int
	Text string
}

// Layout holds every region of a roster template.
type Layout struct {
	Header  Header
	DayRow  int   // row with the day numbers 1..31
	DayCol  int   // column of day 1; day d lives at DayCol+d-1
	Workers []int // worker rows, top to bottom
}

// Column returns the column of day d (1-based).
func (l Layout) Column(day int) int {
	return l.DayCol + day - 1
}

// Locate finds every region of the template in s.
func Locate(s Grid) (Layout, error) {
	header, err := FindHeader(s)
	if err != nil {
		return Layout{}, err
	}

	dayRow, err := FindDayRow(s)
	if err != nil {
		return Layout{}, err
	}

	dayCol, err := FindDayColumn(s, dayRow)
	if err != nil {
		return Layout{}, err
	}

	workers, err := FindWorkers(s, dayRow+1)
	if err != nil {
		return Layout{}, err
	}

	return Layout{Header: header, DayRow: dayRow, DayCol: dayCol, Workers: workers}, nil
}

// FindHeader returns the topmost, then leftmost, text cell within the first
// HeaderScanRows rows that contains a "<year>.<month word>" token.
func FindHeader(s Grid) (Header, error) {
	for r := 1; r <= HeaderScanRows; r++ {
		for c := 1; c <= s.MaxCol(); c++ {
			if !s.IsText(r, c) {
				continue
			}
			v := strings.TrimSpace(s.Value(r, c))
			if domain.MatchHeader(v) {
				return Header{Row: r, Col: c, Text: v}, nil
			}
		}
	}
	return Header{}, domain.NewLocateError("header", HeaderScanRows, domain.ErrStructureNotFound)
}

// FindDayRow returns the first row among the first DayRowScanRows whose
// values include "1", "2" and "3" in any position.
func FindDayRow(s Grid) (int, error) {
	for r := 1; r <= DayRowScanRows; r++ {
		var one, two, three bool
		for c := 1; c <= s.MaxCol(); c++ {
			switch strings.TrimSpace(s.Value(r, c)) {
			case "1":
				one = true
			case "2":
				two = true
			case "3":
				three = true
			}
		}
		if one && two && three {
			return r, nil
		}
	}
	return 0, domain.NewLocateError("day row", DayRowScanRows, domain.ErrStructureNotFound)
}

// FindDayColumn returns the first column of dayRow whose value is "1".
// The full window of WindowDays columns starting there must fit the sheet.
func FindDayColumn(s Grid, dayRow int) (int, error) {
	for c := 1; c <= s.MaxCol(); c++ {
		if strings.TrimSpace(s.Value(dayRow, c)) != "1" {
			continue
		}
		if c+WindowDays-1 > excelize.MaxColumns {
			return 0, domain.NewLocateError("day column", excelize.MaxColumns, domain.ErrStructureNotFound)
		}
		return c, nil
	}
	return 0, domain.NewLocateError("day column", s.MaxCol(), domain.ErrStructureNotFound)
}

// FindWorkers returns the contiguous rows from startRow whose column 1 holds
// a worker number ("5" or "5."). The first empty or non-matching row ends
// the block.
func FindWorkers(s Grid, startRow int) ([]int, error) {
	var rows []int
	for r := startRow; r <= s.MaxRow(); r++ {
		if !workerLabel.MatchString(strings.TrimSpace(s.Value(r, 1))) {
			break
		}
		rows = append(rows, r)
	}
	if len(rows) == 0 {
		return nil, domain.NewLocateError("workers", 0, domain.ErrNoWorkersFound)
	}
	return rows, nil
}
