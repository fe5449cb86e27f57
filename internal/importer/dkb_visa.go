package importer

import (
	"io"

	"golang.org/x/text/encoding/charmap"

	"github.com/wealth-dev/wealth/internal/model"
)

// DKBVisaParser parses Deutsche Kreditbank Visa card exports.
type DKBVisaParser struct{}

var dkbVisa = format{
	Dialect: Dialect{
		Comma:      ';',
		Decimal:    ',',
		Thousands:  '.',
		SkipRows:   6,
		DateFormat: "02.01.2006",
		Charset:    charmap.Windows1252,
	},
	AccountType: "dkb-visa",
	Columns: map[string]string{
		"Betrag (EUR)": ColAmount,
		"Belegdatum":   ColDate,
		"Beschreibung": ColDescription,
	},
}

// Format returns the filename tag.
func (p *DKBVisaParser) Format() string { return "dkb-visa" }

// Parse reads a DKB Visa CSV. The export has no counterparty columns.
func (p *DKBVisaParser) Parse(r io.Reader, account string) ([]model.Transaction, error) {
	return dkbVisa.parse(r, account)
}
