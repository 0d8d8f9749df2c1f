package calendar

import (
	"time"

	"github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/aa"
	"github.com/rickar/cal/v2/lv"
)

// Latvian days off that lv.Holidays leaves out.
var (
	lvMothersDay = &cal.Holiday{
		Name:    "Mātes diena",
		Type:    cal.ObservancePublic,
		Month:   time.May,
		Weekday: time.Sunday,
		Offset:  2,
		Func:    cal.CalcWeekdayOffset,
	}
	lvWhitSunday = aa.Pentecost.Clone(&cal.Holiday{Name: "Vasarsvētki", Type: cal.ObservancePublic})
)

// lvSpecialDays are one-off days off declared by the Saeima.
var lvSpecialDays = []struct {
	name  string
	year  int
	month time.Month
	day   int
}{
	{"Vispārējo latviešu Dziesmu un deju svētku noslēguma diena", 2018, time.July, 9},
	{"Romas pāvesta Franciska pastorālās vizītes diena", 2018, time.September, 24},
	{"Diena, kad Latvijas hokeja komanda ieguva bronzas medaļu", 2023, time.May, 29},
	{"Vispārējo latviešu Dziesmu un deju svētku noslēguma diena", 2023, time.July, 10},
}

func latvia() []*cal.Holiday {
	hs := make([]*cal.Holiday, 0, len(lv.Holidays)+2+len(lvSpecialDays))
	hs = append(hs, lv.Holidays...)
	hs = append(hs, lvMothersDay, lvWhitSunday)

	for _, s := range lvSpecialDays {
		hs = append(hs, &cal.Holiday{
			Name:      s.name,
			Type:      cal.ObservancePublic,
			Month:     s.month,
			Day:       s.day,
			StartYear: s.year,
			EndYear:   s.year,
			Func:      cal.CalcDayOfMonth,
		})
	}

	return hs
}
