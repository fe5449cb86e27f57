package importer

import (
	"io"

	"github.com/wealth-dev/wealth/internal/model"
)

// DKBGiroParser parses Deutsche Kreditbank giro exports in the format used
// since the second half of 2024.
type DKBGiroParser struct{}

const colIncomingCorrespondent = "incoming_correspondent"

var dkbGiro = format{
	Dialect: Dialect{
		Comma:      ',',
		Decimal:    ',',
		Thousands:  '.',
		SkipRows:   4,
		DateFormat: "02.01.06",
	},
	AccountType: "dkb-giro",
	Columns: map[string]string{
		"Betrag (€)":           ColAmount,
		"Buchungsdatum":        ColDate,
		"Zahlungsempfänger*in": ColCorrespondent,
		"Zahlungspflichtige*r": colIncomingCorrespondent,
		"Verwendungszweck":     ColDescription,
		"IBAN":                 ColIBAN,
	},
}

// Format returns the filename tag.
func (p *DKBGiroParser) Format() string { return "dkb-giro" }

// Parse reads a DKB giro CSV.
func (p *DKBGiroParser) Parse(r io.Reader, account string) ([]model.Transaction, error) {
	return dkbGiro.parse(r, account, incomingCorrespondent(dkbGiro.Dialect))
}

// incomingCorrespondent takes the correspondent of credits from the payer
// column instead of the payee column.
func incomingCorrespondent(d Dialect) Step {
	return func(t *Table) *Table {
		return t.Assign(ColCorrespondent, func(row []string) string {
			amount, err := ParseAmount(t.Value(row, ColAmount), d)
			if err == nil && amount.IsPositive() {
				return t.Value(row, colIncomingCorrespondent)
			}
			return t.Value(row, ColCorrespondent)
		})
	}
}
