package importer

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wealth-dev/wealth/internal/model"
)

func parseTestdata(t *testing.T, p Parser, file, account string) []model.Transaction {
	t.Helper()
	f, err := os.Open("../../testdata/" + file)
	require.NoError(t, err)
	defer f.Close()

	txns, err := p.Parse(f, account)
	require.NoError(t, err)
	return txns
}

func assertCanonical(t *testing.T, txns []model.Transaction, account, accountType string) {
	t.Helper()
	for _, txn := range txns {
		assert.Equal(t, account, txn.Account)
		assert.Equal(t, accountType, txn.AccountType)
		assert.False(t, txn.Date.IsZero())
		assert.Equal(t, strings.ToLower(txn.AllData), txn.AllData)
		assert.Contains(t, txn.AllData, "account_type: "+accountType)
	}
}

func TestDKBGiroParser_Parse(t *testing.T) {
	txns := parseTestdata(t, &DKBGiroParser{}, "dkb_giro.csv", "checking")
	require.Len(t, txns, 3, "footer row without date is dropped")
	assertCanonical(t, txns, "checking", "dkb-giro")

	assert.Equal(t, "2024-01-02", txns[0].Date.Format("2006-01-02"))
	assert.Equal(t, "-30.50", txns[0].Amount.StringFixed(2))
	assert.Equal(t, "einkauf rewe", txns[0].Description)
	assert.Equal(t, "de89370400440532013000", txns[0].IBAN)
	assert.Equal(t, model.TypeUnknown, txns[0].Type)
	assert.Contains(t, txns[0].AllData, "correspondent: rewe markt gmbh")
	assert.Contains(t, txns[0].AllData, "; ")
}

func TestDKBGiroParser_IncomingCorrespondent(t *testing.T) {
	txns := parseTestdata(t, &DKBGiroParser{}, "dkb_giro.csv", "checking")
	require.Len(t, txns, 3)

	// Debits name the payee, credits the payer.
	assert.Equal(t, "rewe markt gmbh", txns[0].Correspondent)
	assert.Equal(t, "2500.00", txns[1].Amount.StringFixed(2))
	assert.Equal(t, "acme gmbh", txns[1].Correspondent)
	assert.Equal(t, "sparkonto", txns[2].Correspondent)
	assert.Contains(t, txns[1].AllData, "correspondent: acme gmbh")
}

func TestDKBVisaParser_Parse(t *testing.T) {
	txns := parseTestdata(t, &DKBVisaParser{}, "dkb_visa.csv", "card")
	require.Len(t, txns, 3)
	assertCanonical(t, txns, "card", "dkb-visa")

	assert.Equal(t, "2023-01-02", txns[0].Date.Format("2006-01-02"))
	assert.Equal(t, "bäckerei müller", txns[0].Description, "decoded from windows-1252")
	assert.Equal(t, "-1050.00", txns[1].Amount.StringFixed(2))
	assert.Equal(t, "25.00", txns[2].Amount.StringFixed(2))
	assert.Empty(t, txns[0].Correspondent)
	assert.Empty(t, txns[0].IBAN)
}

func TestSparkasseParser_Parse(t *testing.T) {
	txns := parseTestdata(t, &SparkasseParser{}, "sparkasse.csv", "giro")
	require.Len(t, txns, 2)
	assertCanonical(t, txns, "giro", "sparkasse")

	assert.Equal(t, "brot und brötchen", txns[0].Description)
	assert.Equal(t, "bäckerei schmidt gmbh", txns[0].Correspondent)
	assert.Equal(t, "de12500105170648489890", txns[0].IBAN)
	assert.Equal(t, "-3.80", txns[0].Amount.StringFixed(2))
	assert.Equal(t, "1200.50", txns[1].Amount.StringFixed(2))
	assert.Equal(t, "2024-01-04", txns[1].Date.Format("2006-01-02"))
}

func TestChaseParser_Parse(t *testing.T) {
	txns := parseTestdata(t, &ChaseParser{}, "chase_checking.csv", "business")
	require.Len(t, txns, 3)
	assertCanonical(t, txns, "business", "chase")

	assert.Equal(t, "github *pro subscription", txns[0].Description)
	assert.Equal(t, txns[0].Description, txns[0].Correspondent)
	assert.Equal(t, "-4.00", txns[0].Amount.StringFixed(2))
	assert.True(t, txns[2].Amount.IsPositive())
	assert.Equal(t, 2025, txns[2].Date.Year())
	assert.Equal(t, 10, txns[2].Date.Day())
}

func TestChaseParser_EmptyFile(t *testing.T) {
	p := &ChaseParser{}
	txns, err := p.Parse(strings.NewReader("Details,Posting Date,Description,Amount,Type,Balance,Check or Slip #\n"), "x")
	require.NoError(t, err)
	assert.Nil(t, txns)

	txns, err = p.Parse(strings.NewReader(""), "x")
	require.NoError(t, err)
	assert.Nil(t, txns)
}

func TestChaseParser_BadDateIsDropped(t *testing.T) {
	csv := "Details,Posting Date,Description,Amount\nDEBIT,NOTADATE,desc,-4.00\nDEBIT,01/03/2025,desc,-1.00\n"
	txns, err := (&ChaseParser{}).Parse(strings.NewReader(csv), "x")
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, "-1.00", txns[0].Amount.StringFixed(2))
}

func TestChaseParser_BadAmount(t *testing.T) {
	csv := "Details,Posting Date,Description,Amount\nDEBIT,01/03/2025,desc,NOTANUMBER\n"
	_, err := (&ChaseParser{}).Parse(strings.NewReader(csv), "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")
	assert.Contains(t, err.Error(), "parsing amount")
}

func TestChaseParser_MalformedQuotes(t *testing.T) {
	csv := "Details,Posting Date,Description,Amount\nDEBIT,01/03/2025,\"desc\"x,-1.00\n"
	_, err := (&ChaseParser{}).Parse(strings.NewReader(csv), "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading CSV")
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in      string
		dialect Dialect
		want    string
	}{
		{"-1.234,56", dkbGiro.Dialect, "-1234.56"},
		{"+12,5", sparkasse.Dialect, "12.5"},
		{" 9.99 ", n26.Dialect, "9.99"},
		{"-0,00", dkbVisa.Dialect, "0"},
	}
	for _, tt := range tests {
		got, err := ParseAmount(tt.in, tt.dialect)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got.String(), tt.in)
	}

	_, err := ParseAmount("", n26.Dialect)
	assert.Error(t, err)
}

func TestNegate(t *testing.T) {
	assert.Equal(t, "5.00", negate("-5.00"))
	assert.Equal(t, "-5.00", negate("5.00"))
	assert.Equal(t, "-5.00", negate("+5.00"))
}
