package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Period is a calendar bucket for aggregation.
type Period int

const (
	Month Period = iota
	Quarter
	Year
)

var periodNames = [...]string{"month", "quarter", "year"}

func (p Period) String() string {
	if p < 0 || int(p) >= len(periodNames) {
		return fmt.Sprintf("period(%d)", int(p))
	}
	return periodNames[p]
}

// ParsePeriod parses "month", "quarter" or "year".
func ParsePeriod(s string) (Period, error) {
	for i, name := range periodNames {
		if strings.EqualFold(s, name) {
			return Period(i), nil
		}
	}
	return 0, fmt.Errorf("unknown period %q (want month, quarter or year)", s)
}

// Start returns the first day of the period containing t.
func (p Period) Start(t time.Time) time.Time {
	y, m, _ := t.Date()
	switch p {
	case Quarter:
		m = time.Month((int(m)-1)/3*3 + 1)
	case Year:
		m = time.January
	}
	return time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
}

// Next returns the start of the period following the one starting at start.
func (p Period) Next(start time.Time) time.Time {
	switch p {
	case Quarter:
		return start.AddDate(0, 3, 0)
	case Year:
		return start.AddDate(1, 0, 0)
	default:
		return start.AddDate(0, 1, 0)
	}
}

// Stat holds the daily closing balances of one period.
type Stat struct {
	Start time.Time
	Min   decimal.Decimal
	Mean  decimal.Decimal
	Max   decimal.Decimal
}

// PeriodStats groups daily closes by period and reports min, mean and max.
func PeriodStats(days []Day, p Period) []Stat {
	var stats []Stat
	var sum decimal.Decimal
	var n int64
	flush := func() {
		if n > 0 {
			stats[len(stats)-1].Mean = sum.Div(decimal.NewFromInt(n))
		}
	}

	for _, d := range days {
		start := p.Start(d.Date)
		if len(stats) == 0 || !stats[len(stats)-1].Start.Equal(start) {
			flush()
			stats = append(stats, Stat{Start: start, Min: d.Close, Max: d.Close})
			sum, n = decimal.Zero, 0
		}
		s := &stats[len(stats)-1]
		s.Min = decimal.Min(s.Min, d.Close)
		s.Max = decimal.Max(s.Max, d.Close)
		sum = sum.Add(d.Close)
		n++
	}
	flush()
	return stats
}
