package processor

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"

	"github.com/Gatis224/uzskaite/calendar"
	"github.com/Gatis224/uzskaite/domain"
	"github.com/Gatis224/uzskaite/excel"
	"github.com/Gatis224/uzskaite/template"
	"github.com/xuri/excelize/v2"
)

// ContentType is the MIME type of the generated workbook.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Processor turns a roster template into the roster of the following month.
type Processor struct {
	resolver *calendar.Resolver
	log      *slog.Logger
}

// New creates a Processor that resolves holidays with resolver.
func New(resolver *calendar.Resolver, log *slog.Logger) *Processor {
	return &Processor{resolver: resolver, log: log}
}

// Result is a generated roster workbook.
type Result struct {
	Data     []byte
	FileName string // e.g. "JANVARIS_Kanceleja_2026.xlsx"
	Year     int
	Month    int
}

// ProcessFile opens the template at path and returns the next month's roster.
// The file on disk is not modified.
func (p *Processor) ProcessFile(path string) (*Result, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	return p.process(f)
}

// ProcessBytes reads a template from raw bytes and returns the next month's
// roster. data is not modified.
func (p *Processor) ProcessBytes(data []byte) (*Result, error) {
	return p.ProcessReader(bytes.NewReader(data))
}

// ProcessReader reads a template from r and returns the next month's roster.
func (p *Processor) ProcessReader(r io.Reader) (*Result, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open from reader: %w", err)
	}
	defer f.Close()

	return p.process(f)
}

func (p *Processor) process(f *excelize.File) (*Result, error) {
	roster, err := p.Transform(f)
	if err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write to buffer: %w", err)
	}

	roster.Data = buf.Bytes()
	return roster, nil
}

// Transform rewrites the active sheet of f in place for the month after the
// one in its header. Every region is located and the month is resolved
// before the first write, so a malformed template fails with f untouched.
// The returned Result carries the suggested file name but no data.
func (p *Processor) Transform(f *excelize.File) (*Result, error) {
	s, err := excel.Active(f)
	if err != nil {
		return nil, err
	}

	layout, err := template.Locate(s)
	if err != nil {
		return nil, err
	}

	year, month, err := domain.ParseHeader(layout.Header.Text)
	if err != nil {
		return nil, fmt.Errorf("parse header %s: %w", excel.CellName(layout.Header.Row, layout.Header.Col), err)
	}
	nextYear, nextMonth := domain.Advance(year, month)

	facts, err := p.resolver.Resolve(nextYear, nextMonth)
	if err != nil {
		return nil, fmt.Errorf("resolve %d-%02d: %w", nextYear, nextMonth, err)
	}

	name, err := domain.FileName(nextYear, nextMonth)
	if err != nil {
		return nil, err
	}

	p.log.Debug("template layout",
		slog.String("sheet", s.Name()),
		slog.String("header", excel.CellName(layout.Header.Row, layout.Header.Col)),
		slog.Int("day_row", layout.DayRow),
		slog.String("day_col", excel.ColumnName(layout.DayCol)),
		slog.Int("workers", len(layout.Workers)),
	)

	sm := template.NewStyleManager(f)

	if err := template.WriteHeader(s, sm, layout.Header, nextYear, nextMonth); err != nil {
		return nil, err
	}
	if err := template.ClearWindow(s, sm, layout); err != nil {
		return nil, fmt.Errorf("clear window: %w", err)
	}
	if err := template.Populate(s, sm, layout, facts); err != nil {
		return nil, fmt.Errorf("populate: %w", err)
	}

	p.log.Info("roster generated",
		slog.Int("from_year", year),
		slog.Int("from_month", month),
		slog.Int("year", nextYear),
		slog.Int("month", nextMonth),
		slog.Int("days", facts.DaysInMonth()),
		slog.String("file", name),
	)

	return &Result{FileName: name, Year: nextYear, Month: nextMonth}, nil
}
