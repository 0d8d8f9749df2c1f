package processor

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/Gatis224/uzskaite/calendar"
	"github.com/Gatis224/uzskaite/domain"
	"github.com/Gatis224/uzskaite/excel"
	"github.com/xuri/excelize/v2"
)

const sheet = "Sheet1"

func newProcessor(t *testing.T) *Processor {
	t.Helper()
	r, err := calendar.New("LV")
	if err != nil {
		t.Fatalf("calendar.New failed: %v", err)
	}
	return New(r, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// templateBytes builds a roster with the header in A1, the day row at row 5
// with day 1 in column C and three workers in rows 6..8.
func templateBytes(t *testing.T, header string) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	f.SetCellValue(sheet, "A1", header)
	f.SetCellValue(sheet, "A5", "Nr.")
	f.SetCellValue(sheet, "B5", "Vārds, uzvārds")
	for d := 1; d <= 31; d++ {
		f.SetCellValue(sheet, excel.CellName(5, 2+d), d)
	}
	for i := 1; i <= 3; i++ {
		f.SetCellValue(sheet, excel.CellName(5+i, 1), fmt.Sprintf("%d.", i))
		f.SetCellValue(sheet, excel.CellName(5+i, 2), fmt.Sprintf("Darbinieks %d", i))
		for d := 1; d <= 31; d++ {
			f.SetCellValue(sheet, excel.CellName(5+i, 2+d), "D")
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("WriteToBuffer failed: %v", err)
	}
	return buf.Bytes()
}

func openResult(t *testing.T, res *Result) *excelize.File {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(res.Data))
	if err != nil {
		t.Fatalf("OpenReader failed: %v", err)
	}
	t.Cleanup(func() { f.Close() })
	return f
}

func value(t *testing.T, f *excelize.File, row, col int) string {
	t.Helper()
	v, err := f.GetCellValue(sheet, excel.CellName(row, col))
	if err != nil {
		t.Fatalf("GetCellValue failed: %v", err)
	}
	return v
}

func TestProcessBytes_DecemberToJanuary(t *testing.T) {
	p := newProcessor(t)

	res, err := p.ProcessBytes(templateBytes(t, "2025.decembris"))
	if err != nil {
		t.Fatalf("ProcessBytes failed: %v", err)
	}

	if res.FileName != "JANVARIS_Kanceleja_2026.xlsx" {
		t.Errorf("Expected JANVARIS_Kanceleja_2026.xlsx, got %q", res.FileName)
	}
	if res.Year != 2026 || res.Month != 1 {
		t.Errorf("Expected 2026-01, got %d-%02d", res.Year, res.Month)
	}

	f := openResult(t, res)

	if got := value(t, f, 1, 1); got != "2026.janvāris" {
		t.Errorf("Expected header 2026.janvāris, got %q", got)
	}

	for d := 1; d <= 31; d++ {
		col := 2 + d
		if got := value(t, f, 5, col); got != fmt.Sprint(d) {
			t.Errorf("day %d header = %q", d, got)
		}
		visible, err := f.GetColVisible(sheet, excel.ColumnName(col))
		if err != nil || !visible {
			t.Errorf("day %d column hidden (err %v)", d, err)
		}
	}

	expected := map[int]string{
		1:  "", // New Year
		2:  "E",
		3:  "",
		4:  "",
		5:  "D",
		6:  "D",
		9:  "E",
		31: "",
	}
	for day, code := range expected {
		for row := 6; row <= 8; row++ {
			if got := value(t, f, row, 2+day); got != code {
				t.Errorf("day %d row %d = %q, expected %q", day, row, got, code)
			}
		}
	}

	// Worker names are outside the window and stay.
	if got := value(t, f, 7, 2); got != "Darbinieks 2" {
		t.Errorf("Expected worker name to survive, got %q", got)
	}
}

func TestProcessBytes_ShortMonthsRoundTrip(t *testing.T) {
	p := newProcessor(t)

	// January 2026 → February 2026 → March 2026.
	feb, err := p.ProcessBytes(templateBytes(t, "2026.janvaris"))
	if err != nil {
		t.Fatalf("ProcessBytes (February) failed: %v", err)
	}
	if feb.FileName != "FEBRUARIS_Kanceleja_2026.xlsx" {
		t.Errorf("Expected FEBRUARIS_Kanceleja_2026.xlsx, got %q", feb.FileName)
	}

	f := openResult(t, feb)
	for d := 29; d <= 31; d++ {
		col := 2 + d
		if visible, _ := f.GetColVisible(sheet, excel.ColumnName(col)); visible {
			t.Errorf("February: day %d column should be hidden", d)
		}
		if got := value(t, f, 5, col); got != "" {
			t.Errorf("February: day %d header = %q, expected empty", d, got)
		}
		if got := value(t, f, 6, col); got != "" {
			t.Errorf("February: day %d worker = %q, expected empty", d, got)
		}
	}

	mar, err := p.ProcessBytes(feb.Data)
	if err != nil {
		t.Fatalf("ProcessBytes (March) failed: %v", err)
	}
	f = openResult(t, mar)

	if got := value(t, f, 1, 1); got != "2026.marts" {
		t.Errorf("Expected header 2026.marts, got %q", got)
	}
	for d := 29; d <= 31; d++ {
		col := 2 + d
		if visible, _ := f.GetColVisible(sheet, excel.ColumnName(col)); !visible {
			t.Errorf("March: day %d column should be visible again", d)
		}
		if got := value(t, f, 5, col); got != fmt.Sprint(d) {
			t.Errorf("March: day %d header = %q", d, got)
		}
	}
	// 31 March 2026 is a Tuesday.
	if got := value(t, f, 6, 2+31); got != "D" {
		t.Errorf("March: day 31 worker = %q, expected D", got)
	}
}

func TestProcessBytes_TemplateErrors(t *testing.T) {
	p := newProcessor(t)

	tests := []struct {
		name     string
		header   string
		expected error
	}{
		{"unknown month", "2025.smarch", domain.ErrUnknownMonth},
		{"missing header", "Grafiks", domain.ErrStructureNotFound},
	}

	for _, tt := range tests {
		data := templateBytes(t, tt.header)
		original := bytes.Clone(data)

		res, err := p.ProcessBytes(data)
		if !errors.Is(err, tt.expected) {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.expected, err)
		}
		if !domain.IsTemplateError(err) {
			t.Errorf("%s: expected a template error, got %v", tt.name, err)
		}
		if res != nil {
			t.Errorf("%s: expected no result", tt.name)
		}
		if !bytes.Equal(data, original) {
			t.Errorf("%s: input bytes were modified", tt.name)
		}
	}
}

func TestTransform_NoWorkersLeavesFileUntouched(t *testing.T) {
	p := newProcessor(t)

	f := excelize.NewFile()
	defer f.Close()
	f.SetCellValue(sheet, "A1", "2025.decembris")
	f.SetCellValue(sheet, "C5", 1)
	f.SetCellValue(sheet, "D5", 2)
	f.SetCellValue(sheet, "E5", 3)
	f.SetCellValue(sheet, "A6", "Kopā")

	if _, err := p.Transform(f); !errors.Is(err, domain.ErrNoWorkersFound) {
		t.Fatalf("Expected ErrNoWorkersFound, got %v", err)
	}

	if got, _ := f.GetCellValue(sheet, "A1"); got != "2025.decembris" {
		t.Errorf("header changed to %q", got)
	}
	if got, _ := f.GetCellValue(sheet, "C5"); got != "1" {
		t.Errorf("day row changed to %q", got)
	}
}

func TestTransform_WindowPastLastColumnLeavesFileUntouched(t *testing.T) {
	p := newProcessor(t)

	// Day 1 sits so close to the last column that 31 days do not fit.
	col := excelize.MaxColumns - 5
	f := excelize.NewFile()
	defer f.Close()
	f.SetCellValue(sheet, "A1", "2025.decembris")
	for d := 1; d <= 3; d++ {
		f.SetCellValue(sheet, excel.CellName(5, col+d-1), d)
	}
	f.SetCellValue(sheet, "A6", "1.")

	_, err := p.Transform(f)
	if !errors.Is(err, domain.ErrStructureNotFound) {
		t.Fatalf("Expected ErrStructureNotFound, got %v", err)
	}
	if !domain.IsTemplateError(err) {
		t.Errorf("Expected a template error, got %v", err)
	}

	if got, _ := f.GetCellValue(sheet, "A1"); got != "2025.decembris" {
		t.Errorf("header changed to %q", got)
	}
	if got := value(t, f, 5, col); got != "1" {
		t.Errorf("day row changed to %q", got)
	}
}

func TestProcessFile(t *testing.T) {
	p := newProcessor(t)

	path := filepath.Join(t.TempDir(), "novembris.xlsx")
	if err := os.WriteFile(path, templateBytes(t, "2026.novembris"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	res, err := p.ProcessFile(path)
	if err != nil {
		t.Fatalf("ProcessFile failed: %v", err)
	}
	if res.FileName != "DECEMBRIS_Kanceleja_2026.xlsx" {
		t.Errorf("Expected DECEMBRIS_Kanceleja_2026.xlsx, got %q", res.FileName)
	}

	f := openResult(t, res)
	// 23 December 2026 is a Wednesday before Christmas Eve.
	if got := value(t, f, 6, 2+23); got != "F" {
		t.Errorf("23 Dec = %q, expected F", got)
	}
	// 30 December 2026 is a Wednesday before New Year's Eve.
	if got := value(t, f, 6, 2+30); got != "F" {
		t.Errorf("30 Dec = %q, expected F", got)
	}
	if got := value(t, f, 6, 2+31); got != "" {
		t.Errorf("31 Dec = %q, expected empty", got)
	}

	if _, err := p.ProcessFile(filepath.Join(t.TempDir(), "missing.xlsx")); err == nil {
		t.Error("Expected error for missing file")
	}
}
