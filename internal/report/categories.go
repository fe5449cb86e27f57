package report

import (
	"fmt"
	"regexp"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/wealth-dev/wealth/internal/model"
)

// Category selects ledger rows whose search column matches Pattern.
type Category struct {
	Name    string
	Pattern *regexp.Regexp
}

// ParseCategories compiles name → regex pairs, sorted by name. Patterns are
// matched against the lowercased search column.
func ParseCategories(defs map[string]string) ([]Category, error) {
	names := make([]string, 0, len(defs))
	for name := range defs {
		names = append(names, name)
	}
	sort.Strings(names)

	cats := make([]Category, 0, len(names))
	for _, name := range names {
		re, err := regexp.Compile(defs[name])
		if err != nil {
			return nil, fmt.Errorf("category %s: %w", name, err)
		}
		cats = append(cats, Category{Name: name, Pattern: re})
	}
	return cats, nil
}

// Aggregate is the sum and monthly average of one period.
type Aggregate struct {
	Start time.Time
	Sum   decimal.Decimal
	Avg   decimal.Decimal
}

// CategoryReport holds the sums of one category. Monthly spans every month
// from the first to the last matching row, including empty months.
type CategoryReport struct {
	Name      string
	Rows      int
	Monthly   []Aggregate
	Quarterly []Aggregate
	Yearly    []Aggregate
}

// Categorize sums the rows matching each category per month, quarter and
// year.
func Categorize(txns []model.Transaction, cats []Category) []CategoryReport {
	reports := make([]CategoryReport, 0, len(cats))
	for _, cat := range cats {
		r := CategoryReport{Name: cat.Name}

		sums := make(map[time.Time]decimal.Decimal)
		var first, last time.Time
		for _, txn := range txns {
			if !cat.Pattern.MatchString(txn.AllData) {
				continue
			}
			r.Rows++
			m := Month.Start(txn.Date)
			sums[m] = sums[m].Add(txn.Amount)
			if first.IsZero() || m.Before(first) {
				first = m
			}
			if m.After(last) {
				last = m
			}
		}

		if r.Rows > 0 {
			for m := first; !m.After(last); m = Month.Next(m) {
				sum := sums[m]
				r.Monthly = append(r.Monthly, Aggregate{Start: m, Sum: sum, Avg: sum})
			}
			r.Quarterly = rollUp(r.Monthly, Quarter)
			r.Yearly = rollUp(r.Monthly, Year)
		}
		reports = append(reports, r)
	}
	return reports
}

// rollUp sums monthly aggregates into p and averages over the months present.
func rollUp(monthly []Aggregate, p Period) []Aggregate {
	var out []Aggregate
	var n int64
	for _, m := range monthly {
		start := p.Start(m.Start)
		if len(out) == 0 || !out[len(out)-1].Start.Equal(start) {
			out = append(out, Aggregate{Start: start, Sum: decimal.Zero})
			n = 0
		}
		a := &out[len(out)-1]
		a.Sum = a.Sum.Add(m.Sum)
		n++
		a.Avg = a.Sum.Div(decimal.NewFromInt(n))
	}
	return out
}
