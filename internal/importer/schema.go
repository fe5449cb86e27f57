package importer

import "strings"

// Canonical column names.
const (
	ColDate            = "date"
	ColAccount         = "account"
	ColAmount          = "amount"
	ColDescription     = "description"
	ColAccountType     = "account_type"
	ColTransactionType = "transaction_type"
	ColAllData         = "all_data"
	ColCorrespondent   = "correspondent"
	ColIBAN            = "iban"
)

// SearchDelimiter separates the "col: value" pairs of the all_data column.
const SearchDelimiter = "; "

// MinimalColumns must be produced by every importer.
var MinimalColumns = []string{
	ColDate,
	ColAccount,
	ColAmount,
	ColDescription,
	ColAccountType,
	ColTransactionType,
	ColAllData,
}

// Columns is the full canonical column order.
var Columns = append(append([]string(nil), MinimalColumns...), ColCorrespondent, ColIBAN)

// LowercaseText lowercases every cell. Dates and amounts are digits and
// punctuation and pass through unchanged; empty cells stay empty.
func LowercaseText(t *Table) *Table {
	return t.Map(func(_, cell string) string {
		return strings.ToLower(cell)
	})
}

// AddSearchColumn sets all_data to "col: value" for every other column,
// joined with delimiter in column order.
func AddSearchColumn(t *Table, delimiter string) *Table {
	return t.Assign(ColAllData, func(row []string) string {
		var b strings.Builder
		first := true
		for i, col := range t.Header {
			if col == ColAllData {
				continue
			}
			if !first {
				b.WriteString(delimiter)
			}
			first = false
			b.WriteString(col)
			b.WriteString(": ")
			if i < len(row) {
				b.WriteString(row[i])
			}
		}
		return b.String()
	})
}
