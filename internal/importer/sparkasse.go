package importer

import (
	"io"

	"golang.org/x/text/encoding/charmap"

	"github.com/wealth-dev/wealth/internal/model"
)

// SparkasseParser parses Sparkasse giro exports in the CSV-CAMT format.
type SparkasseParser struct{}

var sparkasse = format{
	Dialect: Dialect{
		Comma:      ';',
		Decimal:    ',',
		DateFormat: "02.01.06",
		Charset:    charmap.ISO8859_1,
	},
	AccountType: "sparkasse",
	Columns: map[string]string{
		"Betrag":                            ColAmount,
		"Valutadatum":                       ColDate,
		"Beguenstigter/Zahlungspflichtiger": ColCorrespondent,
		"Verwendungszweck":                  ColDescription,
		"Kontonummer/IBAN":                  ColIBAN,
	},
}

// Format returns the filename tag.
func (p *SparkasseParser) Format() string { return "sparkasse-giro" }

// Parse reads a Sparkasse CSV-CAMT export.
func (p *SparkasseParser) Parse(r io.Reader, account string) ([]model.Transaction, error) {
	return sparkasse.parse(r, account)
}
