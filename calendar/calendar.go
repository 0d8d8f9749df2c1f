// Package calendar resolves the per-day facts of a roster month: weekday,
// weekend and public-holiday status, and whether the next day is a holiday.
package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/Gatis224/uzskaite/domain"
	"github.com/rickar/cal/v2"
)

// DefaultCountry is the ISO 3166 code of the holiday calendar used when none
// is configured.
const DefaultCountry = "LV"

var countries = map[string]func() []*cal.Holiday{
	"LV": latvia,
}

// DayFacts describes one calendar day of a roster month.
type DayFacts struct {
	Date       time.Time
	Weekday    int // Monday-based, Mon=0 .. Sun=6
	Weekend    bool
	Holiday    bool
	PreHoliday bool // the following calendar day is a holiday
}

// Off reports whether nobody works on the day.
func (d DayFacts) Off() bool {
	return d.Weekend || d.Holiday
}

// MonthFacts holds the resolved facts of one month.
type MonthFacts struct {
	Year  int
	Month int
	Days  []DayFacts // Days[d-1] describes day d
}

// DaysInMonth returns the number of days of the month (28..31).
func (m MonthFacts) DaysInMonth() int {
	return len(m.Days)
}

// Day returns the facts for day d (1-based). ok is false when d is outside
// the month.
func (m MonthFacts) Day(d int) (DayFacts, bool) {
	if d < 1 || d > len(m.Days) {
		return DayFacts{}, false
	}
	return m.Days[d-1], true
}

// Resolver computes MonthFacts against one country's public holidays.
// It is safe for concurrent use after construction.
type Resolver struct {
	country  string
	holidays *cal.BusinessCalendar
}

// New creates a Resolver for the given country code (e.g. "LV").
func New(country string) (*Resolver, error) {
	country = strings.ToUpper(strings.TrimSpace(country))
	if country == "" {
		country = DefaultCountry
	}

	defs, ok := countries[country]
	if !ok {
		return nil, fmt.Errorf("no holiday calendar for country %q", country)
	}

	bc := cal.NewBusinessCalendar()
	bc.AddHoliday(defs()...)

	return &Resolver{country: country, holidays: bc}, nil
}

// Country returns the country code the resolver was built for.
func (r *Resolver) Country() string {
	return r.country
}

// IsHoliday reports whether date is a public holiday, either on its own date
// or as the observed replacement of a holiday falling on a weekend.
// Holidays are computed per date, so any year works, including year+1 when
// checking the day after 31 December.
func (r *Resolver) IsHoliday(date time.Time) bool {
	actual, observed, _ := r.holidays.IsHoliday(date)
	return actual || observed
}

// Resolve computes the facts for every day of year/month.
func (r *Resolver) Resolve(year, month int) (MonthFacts, error) {
	if month < 1 || month > 12 {
		return MonthFacts{}, fmt.Errorf("%w: %d", domain.ErrInvalidMonth, month)
	}

	n := DaysIn(year, month)
	facts := MonthFacts{Year: year, Month: month, Days: make([]DayFacts, n)}

	for d := 1; d <= n; d++ {
		date := time.Date(year, time.Month(month), d, 0, 0, 0, 0, time.UTC)
		wd := domain.WeekdayIndex(date.Weekday())
		facts.Days[d-1] = DayFacts{
			Date:       date,
			Weekday:    wd,
			Weekend:    domain.IsWeekend(wd),
			Holiday:    r.IsHoliday(date),
			PreHoliday: r.IsHoliday(date.AddDate(0, 0, 1)),
		}
	}

	return facts, nil
}

// DaysIn returns the number of days in year/month under Gregorian rules.
func DaysIn(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
