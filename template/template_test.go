package template

import (
	"fmt"
	"strings"
	"testing"

	"github.com/Gatis224/uzskaite/excel"
	"github.com/xuri/excelize/v2"
)

const testSheet = "Sheet1"

// newRoster builds a roster template: header in A1, day numbers 1..31 in
// dayRow starting at dayCol, and n worker rows labelled "1.", "2.", ...
// Every worker cell of the old month holds "X" on a gray background.
func newRoster(t *testing.T, header string, dayRow, dayCol, n int) *excelize.File {
	t.Helper()

	f := excelize.NewFile()
	t.Cleanup(func() { f.Close() })

	gray, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{GrayColor}},
		Font: &excelize.Font{Size: 11, Bold: true},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		t.Fatalf("NewStyle failed: %v", err)
	}

	f.SetCellValue(testSheet, "A1", header)
	f.SetCellValue(testSheet, excel.CellName(dayRow, 1), "Nr.")
	f.SetCellValue(testSheet, excel.CellName(dayRow, 2), "Vārds, uzvārds")
	for d := 1; d <= 31; d++ {
		f.SetCellValue(testSheet, excel.CellName(dayRow, dayCol+d-1), d)
	}
	for i := 1; i <= n; i++ {
		r := dayRow + i
		f.SetCellValue(testSheet, excel.CellName(r, 1), fmt.Sprintf("%d.", i))
		f.SetCellValue(testSheet, excel.CellName(r, 2), fmt.Sprintf("Darbinieks %d", i))
		for d := 1; d <= 31; d++ {
			cell := excel.CellName(r, dayCol+d-1)
			f.SetCellValue(testSheet, cell, "X")
			f.SetCellStyle(testSheet, cell, cell, gray)
		}
	}
	f.SetCellValue(testSheet, excel.CellName(dayRow+n+2, 1), "Kopā")

	return f
}

func openSheet(t *testing.T, f *excelize.File) *excel.Sheet {
	t.Helper()
	s, err := excel.Active(f)
	if err != nil {
		t.Fatalf("Active failed: %v", err)
	}
	return s
}

// cellLook describes what the generator controls in a cell.
type cellLook struct {
	value    string
	gray     bool
	fontSize float64
}

func lookAt(t *testing.T, f *excelize.File, row, col int) cellLook {
	t.Helper()
	cell := excel.CellName(row, col)

	value, err := f.GetCellValue(testSheet, cell)
	if err != nil {
		t.Fatalf("GetCellValue %s: %v", cell, err)
	}
	id, err := f.GetCellStyle(testSheet, cell)
	if err != nil {
		t.Fatalf("GetCellStyle %s: %v", cell, err)
	}
	style, err := f.GetStyle(id)
	if err != nil {
		t.Fatalf("GetStyle %s: %v", cell, err)
	}

	l := cellLook{value: value}
	if style.Font != nil {
		l.fontSize = style.Font.Size
	}
	for _, c := range style.Fill.Color {
		if style.Fill.Pattern == 1 && strings.HasSuffix(strings.ToUpper(c), GrayColor) {
			l.gray = true
		}
	}
	return l
}
