package excel

import "fmt"

// CellName converts 1-based row and column numbers to an Excel cell reference (e.g. 1,1 → "A1").
func CellName(row, col int) string {
	return fmt.Sprintf("%s%d", ColumnName(col), row)
}

// ColumnName converts a 1-based column number to Excel column letters (1→A, 26→Z, 27→AA).
func ColumnName(col int) string {
	result := ""
	for n := col - 1; n >= 0; n = n/26 - 1 {
		result = string(rune('A'+(n%26))) + result
	}
	return result
}

// ColumnRange returns an inclusive column range such as "C:AG".
func ColumnRange(from, to int) string {
	return ColumnName(from) + ":" + ColumnName(to)
}
