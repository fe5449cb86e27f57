package classify

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/wealth-dev/wealth/internal/model"
)

func txn(amount, iban string) model.Transaction {
	return model.Transaction{Amount: decimal.RequireFromString(amount), IBAN: iban}
}

func TestClassify(t *testing.T) {
	own := NewIBANSet("DE00 1000 0000 0000 0000 01", "DE00100000000000000002")

	tests := []struct {
		name string
		txn  model.Transaction
		want model.TransactionType
	}{
		{"external debit", txn("-30", "de89370400440532013000"), model.TypeExpense},
		{"external credit", txn("200", ""), model.TypeIncome},
		{"zero is expense", txn("0", ""), model.TypeExpense},
		{"own iban credit", txn("200", "de00100000000000000002"), model.TypeInternalIncome},
		{"own iban debit", txn("-200", "DE00100000000000000001"), model.TypeInternalExpense},
		{"own iban zero", txn("0", "de00100000000000000001"), model.TypeInternalExpense},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.txn, own))
		})
	}
}

func TestClassify_KeepsExistingType(t *testing.T) {
	own := NewIBANSet()
	preset := txn("-5", "")
	preset.Type = model.TypeInternalExpense
	assert.Equal(t, model.TypeInternalExpense, Classify(preset, own))

	// Even when the sign would say otherwise.
	preset.Type = model.TypeInternalIncome
	assert.Equal(t, model.TypeInternalIncome, Classify(preset, own))
}

func TestClassify_Idempotent(t *testing.T) {
	own := NewIBANSet("DE02")
	txns := []model.Transaction{txn("1", "de02"), txn("-1", ""), txn("0", "x")}
	once := All(txns, own)
	twice := All(once, own)
	assert.Equal(t, once, twice)
	assert.Equal(t, model.TypeUnknown, txns[0].Type, "input is not mutated")
}

func TestIBANSet_EmptyNeverMatches(t *testing.T) {
	own := NewIBANSet("", "  ")
	assert.Empty(t, own)
	assert.False(t, own.Contains(""))
}
