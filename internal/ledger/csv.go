package ledger

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/wealth-dev/wealth/internal/importer"
	"github.com/wealth-dev/wealth/internal/model"
)

const dateFormat = "2006-01-02"

// WriteCSV writes the ledger with the canonical header.
func WriteCSV(w io.Writer, txns []model.Transaction) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(importer.Columns); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, txn := range txns {
		if err := cw.Write(MarshalTransaction(txn)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// MarshalTransaction converts a Transaction to a CSV row in canonical column order.
func MarshalTransaction(txn model.Transaction) []string {
	row := make([]string, 0, len(importer.Columns))
	for _, col := range importer.Columns {
		switch col {
		case importer.ColDate:
			row = append(row, txn.Date.Format(dateFormat))
		case importer.ColAccount:
			row = append(row, txn.Account)
		case importer.ColAmount:
			row = append(row, txn.Amount.StringFixed(2))
		case importer.ColDescription:
			row = append(row, txn.Description)
		case importer.ColAccountType:
			row = append(row, txn.AccountType)
		case importer.ColTransactionType:
			row = append(row, txn.Type.String())
		case importer.ColAllData:
			row = append(row, txn.AllData)
		case importer.ColCorrespondent:
			row = append(row, txn.Correspondent)
		case importer.ColIBAN:
			row = append(row, txn.IBAN)
		default:
			row = append(row, "")
		}
	}
	return row
}
