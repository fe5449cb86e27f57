// Package report derives balances and aggregates from an assembled ledger.
package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/wealth-dev/wealth/internal/model"
)

// Point is the running balance right after one transaction.
type Point struct {
	Date    time.Time
	Balance decimal.Decimal
}

// Day summarizes the running balance over one calendar day. Days without
// transactions carry the previous close.
type Day struct {
	Date  time.Time
	Close decimal.Decimal
	Min   decimal.Decimal
	Max   decimal.Decimal
}

// Balance sums the amounts of txns.
func Balance(txns []model.Transaction) decimal.Decimal {
	sum := decimal.Zero
	for _, txn := range txns {
		sum = sum.Add(txn.Amount)
	}
	return sum
}

// Cumulative returns the running balance after each transaction, in input
// order. Expects date-sorted input.
func Cumulative(txns []model.Transaction) []Point {
	points := make([]Point, len(txns))
	sum := decimal.Zero
	for i, txn := range txns {
		sum = sum.Add(txn.Amount)
		points[i] = Point{Date: txn.Date, Balance: sum}
	}
	return points
}

// DailyBalances resamples the running balance of date-sorted txns to one Day
// per calendar day between the first and the last transaction. Min and Max
// are taken over the balances reached within the day, so same-day ordering
// of expenses and incomes is visible.
func DailyBalances(txns []model.Transaction) []Day {
	points := Cumulative(txns)
	if len(points) == 0 {
		return nil
	}

	var days []Day
	for _, p := range points {
		date := truncateDay(p.Date)
		if n := len(days); n > 0 {
			last := &days[n-1]
			if last.Date.Equal(date) {
				last.Close = p.Balance
				last.Min = decimal.Min(last.Min, p.Balance)
				last.Max = decimal.Max(last.Max, p.Balance)
				continue
			}
			for d := last.Date.AddDate(0, 0, 1); d.Before(date); d = d.AddDate(0, 0, 1) {
				prev := days[len(days)-1].Close
				days = append(days, Day{Date: d, Close: prev, Min: prev, Max: prev})
			}
		}
		days = append(days, Day{Date: date, Close: p.Balance, Min: p.Balance, Max: p.Balance})
	}
	return days
}

// BalanceAt returns the close of the last day at or before date. It reports
// false when date lies before the first day.
func BalanceAt(days []Day, date time.Time) (decimal.Decimal, bool) {
	date = truncateDay(date)
	for i := len(days) - 1; i >= 0; i-- {
		if !days[i].Date.After(date) {
			return days[i].Close, true
		}
	}
	return decimal.Zero, false
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
