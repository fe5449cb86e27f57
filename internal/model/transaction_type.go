package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// TransactionType classifies a transaction as income or expense and whether
// it moved money between the user's own accounts.
//
// The zero value TypeUnknown means the row has not been classified yet.
type TransactionType int

const (
	TypeUnknown TransactionType = iota
	TypeIncome
	TypeExpense
	TypeInternalIncome
	TypeInternalExpense
)

var typeNames = map[TransactionType]string{
	TypeUnknown:         "",
	TypeIncome:          "income",
	TypeExpense:         "expense",
	TypeInternalIncome:  "internal-income",
	TypeInternalExpense: "internal-expense",
}

// NewTransactionType returns the type matching the given traits.
func NewTransactionType(isExpense, isInternal bool) TransactionType {
	if isExpense {
		if isInternal {
			return TypeInternalExpense
		}
		return TypeExpense
	}
	if isInternal {
		return TypeInternalIncome
	}
	return TypeIncome
}

// TypeFromAmount classifies by sign. Zero counts as an expense.
func TypeFromAmount(amount decimal.Decimal, isInternal bool) TransactionType {
	return NewTransactionType(amount.LessThanOrEqual(decimal.Zero), isInternal)
}

// ParseTransactionType parses the String form. The empty string yields TypeUnknown.
func ParseTransactionType(s string) (TransactionType, error) {
	for tt, name := range typeNames {
		if name == s {
			return tt, nil
		}
	}
	return TypeUnknown, fmt.Errorf("unknown transaction type %q", s)
}

// IsSet reports whether t holds a concrete classification.
func (t TransactionType) IsSet() bool {
	return t != TypeUnknown
}

// IsIncome reports whether t is income or internal income.
func (t TransactionType) IsIncome() bool {
	return t == TypeIncome || t == TypeInternalIncome
}

// IsInternal reports whether t is a transfer between the user's own accounts.
func (t TransactionType) IsInternal() bool {
	return t == TypeInternalIncome || t == TypeInternalExpense
}

func (t TransactionType) String() string {
	return typeNames[t]
}
