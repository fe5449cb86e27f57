// Package classify assigns transaction types from amounts and the IBANs of
// the user's own accounts.
package classify

import (
	"strings"

	"github.com/wealth-dev/wealth/internal/model"
)

// IBANSet holds normalized IBANs of the user's own accounts.
type IBANSet map[string]struct{}

// NewIBANSet builds a set from raw IBANs. Empty values are ignored.
func NewIBANSet(ibans ...string) IBANSet {
	s := make(IBANSet, len(ibans))
	for _, iban := range ibans {
		if n := NormalizeIBAN(iban); n != "" {
			s[n] = struct{}{}
		}
	}
	return s
}

// Contains reports whether iban belongs to the set.
func (s IBANSet) Contains(iban string) bool {
	n := NormalizeIBAN(iban)
	if n == "" {
		return false
	}
	_, ok := s[n]
	return ok
}

// NormalizeIBAN lowercases and strips whitespace, since importers lowercase
// every cell and banks print IBANs in groups of four.
func NormalizeIBAN(iban string) string {
	return strings.ToLower(strings.Join(strings.Fields(iban), ""))
}

// Classify returns txn's type. A type that is already set is kept.
func Classify(txn model.Transaction, own IBANSet) model.TransactionType {
	if txn.Type.IsSet() {
		return txn.Type
	}
	return model.TypeFromAmount(txn.Amount, own.Contains(txn.IBAN))
}

// All returns a copy of txns with every row classified.
func All(txns []model.Transaction, own IBANSet) []model.Transaction {
	out := make([]model.Transaction, len(txns))
	for i, txn := range txns {
		txn.Type = Classify(txn, own)
		out[i] = txn
	}
	return out
}
