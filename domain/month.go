package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// headerPattern matches "<year>.<month word>" anywhere in a cell, e.g.
// "2025.decembris" or "Grafiks 2026.JANVĀRIS". The month word is any run of
// letters, digits or underscores, diacritics included.
var headerPattern = regexp.MustCompile(`(?i)(\d{4})\.([\p{L}\p{N}_]+)`)

// monthNames are the lowercase names written back into the header.
var monthNames = [...]string{
	"janvāris", "februāris", "marts", "aprīlis", "maijs", "jūnijs",
	"jūlijs", "augusts", "septembris", "oktobris", "novembris", "decembris",
}

// monthFileNames are the uppercase ASCII spellings used in output file names.
var monthFileNames = [...]string{
	"JANVARIS", "FEBRUARIS", "MARTS", "APRILIS", "MAIJS", "JUNIJS",
	"JULIJS", "AUGUSTS", "SEPTEMBRIS", "OKTOBRIS", "NOVEMBRIS", "DECEMBRIS",
}

// monthTokens maps every accepted header spelling to its month number.
// Both the accented and the plain ASCII form are accepted where they differ.
var monthTokens = map[string]int{
	"janvaris":   1,
	"janvāris":   1,
	"februaris":  2,
	"februāris":  2,
	"marts":      3,
	"aprilis":    4,
	"aprīlis":    4,
	"maijs":      5,
	"jūnijs":     6,
	"junijs":     6,
	"jūlijs":     7,
	"julijs":     7,
	"augusts":    8,
	"septembris": 9,
	"oktobris":   10,
	"novembris":  11,
	"decembris":  12,
}

// MatchHeader reports whether text contains a "<year>.<month word>" token.
func MatchHeader(text string) bool {
	return headerPattern.MatchString(norm.NFC.String(text))
}

// ParseHeader extracts the year and month number from header text.
func ParseHeader(text string) (year, month int, err error) {
	m := headerPattern.FindStringSubmatch(norm.NFC.String(text))
	if m == nil {
		return 0, 0, fmt.Errorf("%w: no year.month token in %q", ErrStructureNotFound, text)
	}

	year, err = strconv.Atoi(m[1])
	if err != nil {
		return 0, 0, fmt.Errorf("parse year %q: %w", m[1], err)
	}

	token := strings.ToLower(m[2])
	month, ok := monthTokens[token]
	if !ok {
		return 0, 0, fmt.Errorf("%w: %s", ErrUnknownMonth, token)
	}

	return year, month, nil
}

// Advance returns the calendar month following (year, month).
func Advance(year, month int) (int, int) {
	if month == 12 {
		return year + 1, 1
	}
	return year, month + 1
}

// MonthName returns the lowercase Latvian name of month (1..12).
func MonthName(month int) (string, error) {
	if month < 1 || month > 12 {
		return "", fmt.Errorf("%w: %d", ErrInvalidMonth, month)
	}
	return monthNames[month-1], nil
}

// HeaderText renders the header cell value for a roster month.
func HeaderText(year, month int) (string, error) {
	name, err := MonthName(month)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d.%s", year, name), nil
}

// FileName returns the suggested output file name for a roster month,
// e.g. "JANVARIS_Kanceleja_2026.xlsx".
func FileName(year, month int) (string, error) {
	if month < 1 || month > 12 {
		return "", fmt.Errorf("%w: %d", ErrInvalidMonth, month)
	}
	return fmt.Sprintf("%s_Kanceleja_%d.xlsx", monthFileNames[month-1], year), nil
}
