package report

import (
	"sort"
	"time"

	"github.com/wealth-dev/wealth/internal/model"
)

// ExpensePeriod holds the biggest expenses of one period, largest first.
type ExpensePeriod struct {
	Start time.Time
	Rows  []model.Transaction
}

// BiggestExpenses groups classified expenses by period and keeps the n
// largest of each, newest period first. Internal transfers count only with
// includeInternal; offset rows never do.
func BiggestExpenses(txns []model.Transaction, p Period, n int, includeInternal bool) []ExpensePeriod {
	byStart := make(map[time.Time][]model.Transaction)
	for _, txn := range txns {
		if txn.IsOffset() || !txn.Type.IsSet() || txn.Type.IsIncome() {
			continue
		}
		if txn.Type.IsInternal() && !includeInternal {
			continue
		}
		start := p.Start(txn.Date)
		byStart[start] = append(byStart[start], txn)
	}

	periods := make([]ExpensePeriod, 0, len(byStart))
	for start, rows := range byStart {
		sort.SliceStable(rows, func(i, j int) bool { return rows[i].Amount.LessThan(rows[j].Amount) })
		if len(rows) > n {
			rows = rows[:n]
		}
		periods = append(periods, ExpensePeriod{Start: start, Rows: rows})
	}
	sort.Slice(periods, func(i, j int) bool { return periods[i].Start.After(periods[j].Start) })
	return periods
}
