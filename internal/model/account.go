package model

import "github.com/shopspring/decimal"

// Account is the user's configuration for one logical account.
type Account struct {
	Name   string
	IBAN   string
	Offset decimal.Decimal // starting balance, zero if unset
}
