package excel

import "testing"

func TestColumnName(t *testing.T) {
	tests := []struct {
		col      int
		expected string
	}{
		{1, "A"},
		{3, "C"},
		{26, "Z"},
		{27, "AA"},
		{33, "AG"},
		{52, "AZ"},
		{53, "BA"},
		{702, "ZZ"},
		{703, "AAA"},
	}

	for _, tt := range tests {
		if got := ColumnName(tt.col); got != tt.expected {
			t.Errorf("ColumnName(%d) = %q, expected %q", tt.col, got, tt.expected)
		}
	}
}

func TestCellName(t *testing.T) {
	if got := CellName(5, 3); got != "C5" {
		t.Errorf("CellName(5, 3) = %q, expected C5", got)
	}
	if got := ColumnRange(3, 33); got != "C:AG" {
		t.Errorf("ColumnRange(3, 33) = %q, expected C:AG", got)
	}
}
