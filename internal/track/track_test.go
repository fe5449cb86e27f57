package track

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `date;price;bucket;type;what
2024-01-03;12.50;Shopping;Food;Groceries
2024-01-10;100;wealth;ETF;Savings plan
2024-01-20;7.50;shopping;food;Bakery
2024-02-01;20;shopping;clothes;Socks
`

func TestParse(t *testing.T) {
	r, err := Parse(strings.NewReader(sample))
	require.NoError(t, err)
	require.Len(t, r.Expenses, 4)

	e := r.Expenses[0]
	assert.Equal(t, "-12.5", e.Price.String(), "prices are negated")
	assert.Equal(t, BucketShopping, e.Bucket, "cells are lowercased")
	assert.Equal(t, "food", e.Type)

	assert.Equal(t, "-20", r.Expenses[2].MonthlyBalance.String())
	assert.Equal(t, "-20", r.Expenses[3].MonthlyBalance.String(), "monthly balance restarts")
	assert.Equal(t, "-40", r.Expenses[3].ContinuousBalance.String())
	assert.Equal(t, "-100", r.Expenses[1].ContinuousBalance.String(), "buckets are separate")
}

func TestParse_MonthEnds(t *testing.T) {
	r, err := Parse(strings.NewReader(sample))
	require.NoError(t, err)

	require.Len(t, r.MonthEnds, 2)
	assert.Equal(t, "2024-01-01", r.MonthEnds[0].Month.Format("2006-01-02"))
	assert.Equal(t, "-20", r.MonthEnds[0].Balances[BucketShopping].String())
	assert.Equal(t, "-100", r.MonthEnds[0].Balances[BucketWealth].String())
	_, ok := r.MonthEnds[1].Balances[BucketWealth]
	assert.False(t, ok)

	assert.Equal(t, "-20", r.AvgMonthly[BucketShopping].String())
	assert.Equal(t, "-100", r.AvgMonthly[BucketWealth].String())
}

func TestParse_TypeSums(t *testing.T) {
	r, err := Parse(strings.NewReader(sample))
	require.NoError(t, err)

	assert.Equal(t, 29, r.Days)
	require.Len(t, r.Types, 3)
	assert.Equal(t, "clothes", r.Types[0].Type)
	assert.Equal(t, "etf", r.Types[1].Type)
	assert.Equal(t, "food", r.Types[2].Type)
	assert.Equal(t, "-20", r.Types[2].Total.String())
	assert.Equal(t, "-20.69", r.Types[2].AvgMonthly.StringFixed(2))
}

func TestParse_SingleDay(t *testing.T) {
	r, err := Parse(strings.NewReader("date;price;bucket;type\n2024-01-03;3;wealth;etf\n"))
	require.NoError(t, err)
	assert.Equal(t, 1, r.Days)
	assert.Equal(t, "-90", r.Types[0].AvgMonthly.String())
}

func TestParse_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		column  string
		message string
	}{
		{
			name:    "non-numeric price",
			input:   "date;price;bucket;type\n2024-01-03;lots;wealth;etf\n",
			column:  ColPrice,
			message: "numeric",
		},
		{
			name:    "bad date",
			input:   "date;price;bucket;type\n03.01.2024;1;wealth;etf\n",
			column:  ColDate,
			message: "date values",
		},
		{
			name:    "unknown bucket",
			input:   "date;price;bucket;type\n2024-01-03;1;fun;etf\n",
			column:  ColBucket,
			message: `"shopping" or "wealth"`,
		},
		{
			name:    "decreasing dates",
			input:   "date;price;bucket;type\n2024-01-03;1;wealth;etf\n2024-01-02;1;wealth;etf\n",
			column:  ColDate,
			message: "increasing",
		},
		{
			name:    "missing column",
			input:   "date;price;type\n2024-01-03;1;etf\n",
			column:  ColBucket,
			message: "missing column",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input))
			require.Error(t, err)

			var verr ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.column, verr.Column)
			assert.Contains(t, verr.Description, tt.message)
			assert.Contains(t, err.Error(), "column looks like")
		})
	}
}

func TestValidate_CollectsAllColumns(t *testing.T) {
	_, err := Parse(strings.NewReader("date;price;bucket;type\nyesterday;lots;fun;etf\n"))
	require.Error(t, err)
	for _, col := range []string{ColPrice, ColDate, ColBucket} {
		assert.Contains(t, err.Error(), `column "`+col+`"`)
	}
}

func TestPreviewTruncates(t *testing.T) {
	var b strings.Builder
	b.WriteString("date;price;bucket;type\n")
	for i := 0; i < 8; i++ {
		b.WriteString("2024-01-03;1;wealth;etf\n")
	}
	b.WriteString("2024-01-04;x;wealth;etf\n")

	_, err := Parse(strings.NewReader(b.String()))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "... (4 more)")
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "track.csv")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	r, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, r.Expenses, 4)

	_, err = Load(filepath.Join(t.TempDir(), "missing.csv"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
