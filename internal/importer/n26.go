package importer

import (
	"io"

	"github.com/wealth-dev/wealth/internal/model"
)

// N26Parser parses N26 giro/Mastercard exports, including transfers between
// N26 spaces.
type N26Parser struct{}

var n26 = format{
	Dialect: Dialect{
		Comma:      ',',
		Decimal:    '.',
		DateFormat: "2006-01-02",
	},
	AccountType: "n26",
	Columns: map[string]string{
		"Booking Date":      ColDate,
		"Partner Name":      ColCorrespondent,
		"Payment Reference": ColDescription,
		"Partner Iban":      ColIBAN,
		"Amount (EUR)":      ColAmount,
	},
}

// Format returns the filename tag.
func (p *N26Parser) Format() string { return "n26-mastercard" }

// Parse reads an N26 CSV and splits transfers between spaces.
func (p *N26Parser) Parse(r io.Reader, account string) ([]model.Transaction, error) {
	return n26.parse(r, account, SplitSpaces)
}
