package report

import (
	"errors"
	"math"

	"github.com/shopspring/decimal"
)

// ErrUndefinedRate is returned when a rate cannot be derived from the inputs.
var ErrUndefinedRate = errors.New("inflation rate undefined: costs must share a sign and years must differ")

// InflationRate returns the constant yearly rate that turns startCost in
// startYear into endCost in endYear.
func InflationRate(startCost, endCost decimal.Decimal, startYear, endYear int) (float64, error) {
	if startCost.IsZero() || startYear == endYear {
		return 0, ErrUndefinedRate
	}
	r := endCost.Div(startCost)
	if !r.IsPositive() {
		return 0, ErrUndefinedRate
	}
	ratio, _ := r.Float64()
	return math.Pow(ratio, 1/float64(endYear-startYear)) - 1, nil
}

// FutureCost returns what cost grows to after years at the given yearly rate.
func FutureCost(cost decimal.Decimal, rate float64, years int) decimal.Decimal {
	return cost.Mul(decimal.NewFromFloat(math.Pow(1+rate, float64(years)))).Round(2)
}

// RealValue discounts amount by years of inflation at the given yearly rate.
func RealValue(amount decimal.Decimal, rate float64, years int) decimal.Decimal {
	return amount.Div(decimal.NewFromFloat(math.Pow(1+rate, float64(years)))).Round(2)
}
