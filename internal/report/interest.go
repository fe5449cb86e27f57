package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DepositTime places regular deposits before or after the interest payment
// due on the same day.
type DepositTime int

const (
	DepositAtStart DepositTime = iota
	DepositAtEnd
)

// ParseDepositTime parses "start" or "end".
func ParseDepositTime(s string) (DepositTime, error) {
	switch strings.ToLower(s) {
	case "start":
		return DepositAtStart, nil
	case "end":
		return DepositAtEnd, nil
	}
	return 0, fmt.Errorf("unknown deposit time %q (want start or end)", s)
}

// EventType is what happens to a savings account at one point in time.
type EventType int

const (
	EventDeposit EventType = iota
	EventRegularDeposit
	EventInterest
)

var eventNames = [...]string{"deposit", "regular deposit", "interest"}

func (t EventType) String() string {
	if t < 0 || int(t) >= len(eventNames) {
		return fmt.Sprintf("event(%d)", int(t))
	}
	return eventNames[t]
}

// Event is one entry of an account history. Deposits carry Amount, interest
// payments carry the Rate applied to the balance.
type Event struct {
	Date   time.Time
	Type   EventType
	Amount decimal.Decimal
	Rate   decimal.Decimal
}

// Plan describes a savings account to project.
type Plan struct {
	StartAmount      decimal.Decimal
	StartDate        time.Time
	RegularDeposit   decimal.Decimal
	DepositsPerYear  int
	InterestRate     decimal.Decimal // yearly
	CompoundsPerYear int
	Years            int
	DepositTime      DepositTime
	Events           []Event // one-off deposits or withdrawals
}

// CompoundInterest returns amount after years of interest at the yearly
// rate, compounded compoundsPerYear times a year.
func CompoundInterest(amount, rate decimal.Decimal, years, compoundsPerYear int) decimal.Decimal {
	n := decimal.NewFromInt(int64(compoundsPerYear))
	factor := decimal.NewFromInt(1).Add(rate.Div(n))
	return amount.Mul(factor.Pow(decimal.NewFromInt(int64(years * compoundsPerYear))))
}

// History returns the date-sorted events of p. The start deposit comes
// first, then p.Events. On equal dates regular deposits precede interest
// payments with DepositAtStart and follow them with DepositAtEnd.
func (p Plan) History() []Event {
	events := append([]Event{{Date: p.StartDate, Type: EventDeposit, Amount: p.StartAmount}}, p.Events...)

	end := p.StartDate.AddDate(p.Years, 0, 0)
	deposits := func() {
		for _, d := range schedule(p.StartDate, end, p.Years, p.DepositsPerYear) {
			events = append(events, Event{Date: d, Type: EventRegularDeposit, Amount: p.RegularDeposit})
		}
	}

	if p.DepositTime == DepositAtStart {
		deposits()
	}
	if p.CompoundsPerYear > 0 {
		rate := p.InterestRate.Div(decimal.NewFromInt(int64(p.CompoundsPerYear)))
		for _, d := range schedule(p.StartDate, end, p.Years, p.CompoundsPerYear) {
			events = append(events, Event{Date: d, Type: EventInterest, Rate: rate})
		}
	}
	if p.DepositTime == DepositAtEnd {
		deposits()
	}

	sort.SliceStable(events, func(i, j int) bool { return events[i].Date.Before(events[j].Date) })
	return events
}

// schedule spreads years*perYear dates evenly from one period after start
// up to end, truncated to days.
func schedule(start, end time.Time, years, perYear int) []time.Time {
	n := years * perYear
	if n <= 0 {
		return nil
	}
	first := start.Add(start.AddDate(1, 0, 0).Sub(start) / time.Duration(perYear))
	span := float64(end.Sub(first))

	dates := make([]time.Time, n)
	for i := range dates {
		d := first
		if n > 1 {
			d = first.Add(time.Duration(span * float64(i) / float64(n-1)))
		}
		dates[i] = truncateDay(d)
	}
	return dates
}

// Step is an event applied to the running balance. Discounted is Balance in
// money of the first event's year.
type Step struct {
	Event
	Change     decimal.Decimal
	Balance    decimal.Decimal
	Discounted decimal.Decimal
}

// Develop applies events in date order and discounts each balance by the
// yearly inflation rate.
func Develop(events []Event, inflationRate float64) []Step {
	sorted := append([]Event(nil), events...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Date.Before(sorted[j].Date) })
	if len(sorted) == 0 {
		return nil
	}

	startYear := sorted[0].Date.Year()
	steps := make([]Step, len(sorted))
	balance := decimal.Zero
	for i, e := range sorted {
		change := e.Amount
		if e.Type == EventInterest {
			change = balance.Mul(e.Rate)
		}
		balance = balance.Add(change)
		steps[i] = Step{
			Event:      e,
			Change:     change,
			Balance:    balance,
			Discounted: RealValue(balance, inflationRate, e.Date.Year()-startYear),
		}
	}
	return steps
}

// InterestSummary totals a projected account development.
type InterestSummary struct {
	Final      decimal.Decimal
	Discounted decimal.Decimal
	Invested   decimal.Decimal
	Interest   decimal.Decimal
}

// Summarize totals steps. Invested counts all deposits.
func Summarize(steps []Step) InterestSummary {
	s := InterestSummary{Invested: decimal.Zero, Interest: decimal.Zero}
	for _, st := range steps {
		if st.Type == EventInterest {
			s.Interest = s.Interest.Add(st.Change)
		} else {
			s.Invested = s.Invested.Add(st.Change)
		}
	}
	if n := len(steps); n > 0 {
		s.Final = steps[n-1].Balance
		s.Discounted = steps[n-1].Discounted
	}
	return s
}

// AfterTax returns the interest left once taxRate is deducted.
func (s InterestSummary) AfterTax(taxRate float64) decimal.Decimal {
	return s.Interest.Mul(decimal.NewFromInt(1).Sub(decimal.NewFromFloat(taxRate))).Round(2)
}
