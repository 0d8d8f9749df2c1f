package employee

import (
	"fmt"
	"strconv"

	"github.com/Gatis224/uzskaite/domain"
	"github.com/Gatis224/uzskaite/excel"
	excelize "github.com/xuri/excelize/v2"
)

// Sample template layout.
const (
	headerRow = 1
	dayRow    = 3
	dayCol    = 3 // column C
	days      = 31
)

// headers defines the fixed columns left of the day columns.
var headers = []string{"Nr.", "Vārds, uzvārds"}

// Template describes a sample roster template.
type Template struct {
	Year      int
	Month     int
	Employees []Employee
}

// WriteToFile writes a sample roster template to path.
func WriteToFile(t Template, path string) error {
	f, err := build(t)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}

	return nil
}

// WriteToBytes returns a sample roster template as bytes.
func WriteToBytes(t Template) ([]byte, error) {
	f, err := build(t)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write to buffer: %w", err)
	}

	return buf.Bytes(), nil
}

func build(t Template) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	if err := writeTitle(f, sheet, t.Year, t.Month); err != nil {
		f.Close()
		return nil, fmt.Errorf("write title: %w", err)
	}

	if err := writeHeaders(f, sheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("write headers: %w", err)
	}

	if err := writeRows(f, sheet, t.Employees); err != nil {
		f.Close()
		return nil, fmt.Errorf("write rows: %w", err)
	}

	if err := writeMarks(f, sheet, dayRow+len(t.Employees)+2); err != nil {
		f.Close()
		return nil, fmt.Errorf("write marks: %w", err)
	}

	if err := autoFitColumns(f, sheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("auto fit columns: %w", err)
	}

	return f, nil
}

func writeTitle(f *excelize.File, sheet string, year, month int) error {
	text, err := domain.HeaderText(year, month)
	if err != nil {
		return err
	}

	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Size: 14}})
	if err != nil {
		return err
	}

	cell := excel.CellName(headerRow, 1)
	if err := f.SetCellStr(sheet, cell, text); err != nil {
		return err
	}
	return f.SetCellStyle(sheet, cell, cell, style)
}

func writeHeaders(f *excelize.File, sheet string) error {
	style, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Border:    border(),
	})
	if err != nil {
		return err
	}

	for i, header := range headers {
		cell := excel.CellName(dayRow, i+1)
		if err := f.SetCellStr(sheet, cell, header); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, cell, cell, style); err != nil {
			return err
		}
	}

	for d := 1; d <= days; d++ {
		cell := excel.CellName(dayRow, dayCol+d-1)
		if err := f.SetCellStr(sheet, cell, strconv.Itoa(d)); err != nil {
			return err
		}
	}

	first := excel.CellName(dayRow, dayCol)
	last := excel.CellName(dayRow, dayCol+days-1)
	return f.SetCellStyle(sheet, first, last, style)
}

func writeRows(f *excelize.File, sheet string, employees []Employee) error {
	style, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    border(),
	})
	if err != nil {
		return err
	}

	for i, emp := range employees {
		row := dayRow + 1 + i
		values := []string{
			strconv.Itoa(emp.ID) + ".",
			emp.FullName,
		}
		for col, val := range values {
			cell := excel.CellName(row, col+1)
			if err := f.SetCellStr(sheet, cell, val); err != nil {
				return fmt.Errorf("employee %d, col %d: %w", emp.ID, col, err)
			}
		}

		first := excel.CellName(row, 1)
		last := excel.CellName(row, dayCol+days-1)
		if err := f.SetCellStyle(sheet, first, last, style); err != nil {
			return fmt.Errorf("employee %d style: %w", emp.ID, err)
		}
	}

	return nil
}

// writeMarks writes the shift-code legend starting at row, one mark per row.
func writeMarks(f *excelize.File, sheet string, row int) error {
	for i, m := range domain.Marks {
		r := row + i
		if err := f.SetCellStr(sheet, excel.CellName(r, 1), m.Key); err != nil {
			return fmt.Errorf("marks[%d] key: %w", i, err)
		}
		if err := f.SetCellStr(sheet, excel.CellName(r, 2), m.Name); err != nil {
			return fmt.Errorf("marks[%d] name: %w", i, err)
		}
	}
	return nil
}

func autoFitColumns(f *excelize.File, sheet string) error {
	widths := []float64{5, 30}
	for i, w := range widths {
		col := excel.ColumnName(i + 1)
		if err := f.SetColWidth(sheet, col, col, w); err != nil {
			return err
		}
	}
	return f.SetColWidth(sheet, excel.ColumnName(dayCol), excel.ColumnName(dayCol+days-1), 3)
}

func border() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}
}
