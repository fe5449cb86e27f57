// Package track reads the hand-kept expense tracking file and derives
// per-bucket balances from it.
package track

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/wealth-dev/wealth/internal/importer"
)

// Tracking file columns.
const (
	ColDate   = "date"
	ColPrice  = "price"
	ColBucket = "bucket"
	ColType   = "type"
)

// Buckets an expense can be booked to.
const (
	BucketShopping = "shopping"
	BucketWealth   = "wealth"
)

// Buckets lists the known buckets in report order.
var Buckets = []string{BucketShopping, BucketWealth}

var requiredColumns = []string{ColDate, ColPrice, ColBucket, ColType}

var dialect = importer.Dialect{
	Comma:      ';',
	Decimal:    '.',
	DateFormat: "2006-01-02",
}

// Expense is one tracked row. Price is negated so spending lowers balances.
// The balances are running sums within the row's bucket.
type Expense struct {
	Date              time.Time
	Price             decimal.Decimal
	Bucket            string
	Type              string
	MonthlyBalance    decimal.Decimal
	ContinuousBalance decimal.Decimal
}

// MonthEnd holds each bucket's monthly balance at the end of a month.
// Buckets without expenses in the month are absent.
type MonthEnd struct {
	Month    time.Time
	Balances map[string]decimal.Decimal
}

// TypeSum totals the expenses of one type.
type TypeSum struct {
	Type       string
	Total      decimal.Decimal
	AvgMonthly decimal.Decimal
}

// Report is the evaluated tracking file.
type Report struct {
	Expenses   []Expense
	MonthEnds  []MonthEnd
	AvgMonthly map[string]decimal.Decimal // mean month-end balance per bucket
	Types      []TypeSum
	Days       int
}

// Load reads and evaluates the tracking file at path.
func Load(path string) (*Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening tracking file: %w", err)
	}
	defer f.Close()

	r, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return r, nil
}

// Parse evaluates a tracking CSV. All validation errors are joined into the
// returned error; each can be recovered with errors.As.
func Parse(r io.Reader) (*Report, error) {
	t, err := importer.ReadTable(r, dialect)
	if err != nil {
		return nil, err
	}
	t = importer.LowercaseText(t)

	if verrs := Validate(t); len(verrs) > 0 {
		errs := make([]error, len(verrs))
		for i, e := range verrs {
			errs[i] = e
		}
		return nil, errors.Join(errs...)
	}

	expenses := make([]Expense, 0, len(t.Rows))
	for _, row := range t.Rows {
		date, _ := parseDate(t.Value(row, ColDate))
		price, _ := importer.ParseAmount(t.Value(row, ColPrice), dialect)
		expenses = append(expenses, Expense{
			Date:   date,
			Price:  price.Neg(),
			Bucket: t.Value(row, ColBucket),
			Type:   t.Value(row, ColType),
		})
	}
	return Evaluate(expenses), nil
}

// Evaluate computes balances and sums for date-ordered expenses.
func Evaluate(expenses []Expense) *Report {
	r := &Report{Expenses: make([]Expense, len(expenses)), AvgMonthly: make(map[string]decimal.Decimal)}

	continuous := make(map[string]decimal.Decimal)
	monthly := make(map[string]decimal.Decimal)
	var month time.Time
	for i, e := range expenses {
		m := monthStart(e.Date)
		if !m.Equal(month) {
			month = m
			monthly = make(map[string]decimal.Decimal)
			r.MonthEnds = append(r.MonthEnds, MonthEnd{Month: m, Balances: make(map[string]decimal.Decimal)})
		}
		monthly[e.Bucket] = monthly[e.Bucket].Add(e.Price)
		continuous[e.Bucket] = continuous[e.Bucket].Add(e.Price)
		e.MonthlyBalance = monthly[e.Bucket]
		e.ContinuousBalance = continuous[e.Bucket]
		r.MonthEnds[len(r.MonthEnds)-1].Balances[e.Bucket] = e.MonthlyBalance
		r.Expenses[i] = e
	}

	for _, b := range Buckets {
		sum, n := decimal.Zero, int64(0)
		for _, me := range r.MonthEnds {
			if v, ok := me.Balances[b]; ok {
				sum = sum.Add(v)
				n++
			}
		}
		if n > 0 {
			r.AvgMonthly[b] = sum.Div(decimal.NewFromInt(n))
		}
	}

	r.Days = 1
	if n := len(expenses); n > 1 {
		if d := int(expenses[n-1].Date.Sub(expenses[0].Date).Hours() / 24); d > 1 {
			r.Days = d
		}
	}

	totals := make(map[string]decimal.Decimal)
	for _, e := range expenses {
		totals[e.Type] = totals[e.Type].Add(e.Price)
	}
	days := decimal.NewFromInt(int64(r.Days))
	for typ, total := range totals {
		r.Types = append(r.Types, TypeSum{
			Type:       typ,
			Total:      total,
			AvgMonthly: total.Div(days).Mul(decimal.NewFromInt(30)),
		})
	}
	sort.Slice(r.Types, func(i, j int) bool { return r.Types[i].Type < r.Types[j].Type })
	return r
}

func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
