package excel

import (
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Sheet is the active worksheet of a workbook addressed by 1-based row and
// column numbers. Reads come from a snapshot of raw cell values taken when
// the sheet is opened; writes go to the workbook and keep the snapshot in sync.
//
// A Sheet is not safe for concurrent use.
type Sheet struct {
	file *excelize.File
	name string
	rows [][]string
}

// Active opens the active worksheet of f.
func Active(f *excelize.File) (*Sheet, error) {
	name := f.GetSheetName(f.GetActiveSheetIndex())
	if name == "" {
		return nil, errors.New("workbook has no active sheet")
	}
	return Open(f, name)
}

// Open opens the named worksheet of f.
func Open(f *excelize.File, name string) (*Sheet, error) {
	rows, err := f.GetRows(name, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", name, err)
	}
	return &Sheet{file: f, name: name, rows: rows}, nil
}

// File returns the underlying workbook.
func (s *Sheet) File() *excelize.File {
	return s.file
}

// Name returns the worksheet name.
func (s *Sheet) Name() string {
	return s.name
}

// MaxRow returns the last row holding a value.
func (s *Sheet) MaxRow() int {
	return len(s.rows)
}

// MaxCol returns the widest row's last column holding a value.
func (s *Sheet) MaxCol() int {
	n := 0
	for _, r := range s.rows {
		n = max(n, len(r))
	}
	return n
}

// Value returns the raw value of a cell, "" for empty or out-of-range cells.
func (s *Sheet) Value(row, col int) string {
	if row < 1 || row > len(s.rows) || col < 1 || col > len(s.rows[row-1]) {
		return ""
	}
	return s.rows[row-1][col-1]
}

// IsText reports whether the cell holds a string value.
func (s *Sheet) IsText(row, col int) bool {
	t, err := s.file.GetCellType(s.name, CellName(row, col))
	if err != nil {
		return false
	}
	return t == excelize.CellTypeSharedString || t == excelize.CellTypeInlineString
}

// SetValue writes a string value into a cell.
func (s *Sheet) SetValue(row, col int, value string) error {
	if err := s.file.SetCellStr(s.name, CellName(row, col), value); err != nil {
		return fmt.Errorf("set %s: %w", CellName(row, col), err)
	}
	s.remember(row, col, value)
	return nil
}

// Clear empties a cell's value. Its style is left untouched.
func (s *Sheet) Clear(row, col int) error {
	if err := s.file.SetCellValue(s.name, CellName(row, col), nil); err != nil {
		return fmt.Errorf("clear %s: %w", CellName(row, col), err)
	}
	s.remember(row, col, "")
	return nil
}

// StyleID returns the style index of a cell.
func (s *Sheet) StyleID(row, col int) (int, error) {
	return s.file.GetCellStyle(s.name, CellName(row, col))
}

// SetStyleID applies a style index to a cell.
func (s *Sheet) SetStyleID(row, col, styleID int) error {
	cell := CellName(row, col)
	return s.file.SetCellStyle(s.name, cell, cell, styleID)
}

// ShowColumns makes columns from..to visible and sets their width.
func (s *Sheet) ShowColumns(from, to int, width float64) error {
	if err := s.file.SetColVisible(s.name, ColumnRange(from, to), true); err != nil {
		return fmt.Errorf("show columns %s: %w", ColumnRange(from, to), err)
	}
	if err := s.file.SetColWidth(s.name, ColumnName(from), ColumnName(to), width); err != nil {
		return fmt.Errorf("set width %s: %w", ColumnRange(from, to), err)
	}
	return nil
}

// HideColumns hides columns from..to.
func (s *Sheet) HideColumns(from, to int) error {
	if err := s.file.SetColVisible(s.name, ColumnRange(from, to), false); err != nil {
		return fmt.Errorf("hide columns %s: %w", ColumnRange(from, to), err)
	}
	return nil
}

// ColumnVisible reports whether a column is visible.
func (s *Sheet) ColumnVisible(col int) (bool, error) {
	return s.file.GetColVisible(s.name, ColumnName(col))
}

func (s *Sheet) remember(row, col int, value string) {
	for len(s.rows) < row {
		s.rows = append(s.rows, nil)
	}
	r := s.rows[row-1]
	for len(r) < col {
		r = append(r, "")
	}
	r[col-1] = value
	s.rows[row-1] = r
}
