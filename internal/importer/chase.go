package importer

import (
	"io"

	"github.com/wealth-dev/wealth/internal/model"
)

// ChaseParser parses Chase bank checking CSV exports.
type ChaseParser struct{}

var chase = format{
	Dialect: Dialect{
		Comma:      ',',
		Decimal:    '.',
		DateFormat: "01/02/2006",
	},
	AccountType: "chase",
	Columns: map[string]string{
		"Posting Date": ColDate,
		"Description":  ColDescription,
		"Amount":       ColAmount,
	},
}

// Format returns the filename tag.
func (p *ChaseParser) Format() string { return "chase" }

// Parse reads a Chase CSV. Chase reports no counterparty, so the
// description doubles as correspondent.
func (p *ChaseParser) Parse(r io.Reader, account string) ([]model.Transaction, error) {
	return chase.parse(r, account, func(t *Table) *Table {
		return t.Assign(ColCorrespondent, func(row []string) string {
			return t.Value(row, ColDescription)
		})
	})
}
