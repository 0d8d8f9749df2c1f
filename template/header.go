package template

import (
	"fmt"

	"github.com/Gatis224/uzskaite/domain"
	"github.com/Gatis224/uzskaite/excel"
)

// WriteHeader replaces the header text with "<year>.<month name>" and resets
// its font to the header size.
func WriteHeader(s *excel.Sheet, sm *StyleManager, h Header, year, month int) error {
	text, err := domain.HeaderText(year, month)
	if err != nil {
		return err
	}

	if err := sm.Write(s, h.Row, h.Col, text, LookHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	return nil
}
