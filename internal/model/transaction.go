package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OffsetDescription marks the synthetic row carrying an account's starting balance.
const OffsetDescription = "<initial offset>"

// Transaction is one row of the canonical ledger.
type Transaction struct {
	Date          time.Time
	Account       string          // user-assigned label, e.g. "checking"
	Amount        decimal.Decimal // negative = money leaving the account
	Description   string
	AccountType   string // tag of the importer that produced the row
	Correspondent string
	IBAN          string // counterparty IBAN, empty if unknown
	Type          TransactionType
	AllData       string // lowercased "col: value" search string
}

// IsOffset reports whether t is a synthetic initial offset row.
func (t Transaction) IsOffset() bool {
	return t.Description == OffsetDescription
}
