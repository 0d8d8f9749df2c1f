package template

import (
	"fmt"

	"github.com/Gatis224/uzskaite/excel"
	"github.com/xuri/excelize/v2"
)

// Highlight is the background of a roster cell.
type Highlight int

const (
	HighlightKeep Highlight = iota // leave the cell's fill as it is
	HighlightNone
	HighlightGray
)

// Font sizes written by the generator.
const (
	FontSmall  = 8.0
	FontHeader = 14.0
)

// Look is the part of a cell style the generator controls. Everything else
// (borders, alignment, number format) is taken from the cell's existing style.
type Look struct {
	Highlight Highlight
	FontSize  float64
}

// Looks used across the roster.
var (
	LookBlank  = Look{Highlight: HighlightNone, FontSize: FontSmall}
	LookOff    = Look{Highlight: HighlightGray, FontSize: FontSmall}
	LookHeader = Look{Highlight: HighlightKeep, FontSize: FontHeader}
)

// GrayColor is the fill colour of weekends and holidays.
const GrayColor = "A6A6A6"

func (l Look) apply(style *excelize.Style) {
	switch l.Highlight {
	case HighlightNone:
		style.Fill = excelize.Fill{}
	case HighlightGray:
		style.Fill = excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{GrayColor}}
	}
	style.Font = &excelize.Font{Size: l.FontSize}
}

// StyleManager caches derived styles so each (base style, look) pair is
// created only once per file.
type StyleManager struct {
	file  *excelize.File
	cache map[styleKey]int
}

type styleKey struct {
	base int
	look Look
}

// NewStyleManager creates a style manager bound to the given file.
func NewStyleManager(f *excelize.File) *StyleManager {
	return &StyleManager{file: f, cache: make(map[styleKey]int)}
}

// Derive returns a style that is base with look applied (cached).
func (sm *StyleManager) Derive(base int, look Look) (int, error) {
	key := styleKey{base: base, look: look}
	if id, ok := sm.cache[key]; ok {
		return id, nil
	}

	style, err := sm.file.GetStyle(base)
	if err != nil {
		return 0, fmt.Errorf("get style %d: %w", base, err)
	}
	look.apply(style)

	id, err := sm.file.NewStyle(style)
	if err != nil {
		return 0, fmt.Errorf("new style: %w", err)
	}

	sm.cache[key] = id
	return id, nil
}

// Apply restyles one cell of s with look.
func (sm *StyleManager) Apply(s *excel.Sheet, row, col int, look Look) error {
	base, err := s.StyleID(row, col)
	if err != nil {
		return fmt.Errorf("style of %s: %w", excel.CellName(row, col), err)
	}

	id, err := sm.Derive(base, look)
	if err != nil {
		return fmt.Errorf("derive style for %s: %w", excel.CellName(row, col), err)
	}

	if err := s.SetStyleID(row, col, id); err != nil {
		return fmt.Errorf("set style %s: %w", excel.CellName(row, col), err)
	}
	return nil
}

// Reset empties a cell and restyles it with look.
func (sm *StyleManager) Reset(s *excel.Sheet, row, col int, look Look) error {
	if err := s.Clear(row, col); err != nil {
		return err
	}
	return sm.Apply(s, row, col, look)
}

// Write sets a cell value and restyles it with look.
func (sm *StyleManager) Write(s *excel.Sheet, row, col int, value string, look Look) error {
	if err := s.SetValue(row, col, value); err != nil {
		return err
	}
	return sm.Apply(s, row, col, look)
}
