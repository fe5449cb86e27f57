package importer

import "github.com/wealth-dev/wealth/internal/model"

const (
	// SpaceColumn holds the name of the N26 space that booked a row.
	SpaceColumn = "Account Name"
	// MainSpace is the lowercased name N26 gives the default space.
	MainSpace = "main account"
)

// SplitSpaces books transfers between two spaces of the same account twice:
// once on the booking space with the original sign and once on the partner
// space with the sign inverted. Space labels are appended to the account
// name except for the main space. Both rows are typed internal by their own
// sign. Rows that are not space transfers pass through unchanged.
//
// A row is a space transfer when both its space and its correspondent are
// known space names and it carries no IBAN. Expects lowercased cells.
func SplitSpaces(t *Table) *Table {
	if t.Index(SpaceColumn) < 0 {
		return t
	}

	spaces := make(map[string]bool)
	for _, row := range t.Rows {
		if s := t.Value(row, SpaceColumn); s != "" {
			spaces[s] = true
		}
	}

	out := &Table{Header: append([]string(nil), t.Header...)}
	for _, col := range []string{ColTransactionType, ColCorrespondent, ColAmount, ColAccount} {
		if out.Index(col) < 0 {
			out.Header = append(out.Header, col)
		}
	}

	set := func(row []string, col, v string) []string {
		i := out.Index(col)
		for len(row) <= i {
			row = append(row, "")
		}
		row[i] = v
		return row
	}

	for _, row := range t.Rows {
		space := t.Value(row, SpaceColumn)
		partner := t.Value(row, ColCorrespondent)
		if !spaces[space] || !spaces[partner] || t.Value(row, ColIBAN) != "" {
			out.Rows = append(out.Rows, append([]string(nil), row...))
			continue
		}

		account := t.Value(row, ColAccount)
		amount := t.Value(row, ColAmount)
		inverted := negate(amount)

		booked := append([]string(nil), row...)
		booked = set(booked, ColAccount, spaceAccount(account, space))
		booked = set(booked, ColCorrespondent, spaceAccount(account, partner))
		booked = set(booked, ColTransactionType, internalType(amount).String())

		mirrored := append([]string(nil), row...)
		mirrored = set(mirrored, ColAccount, spaceAccount(account, partner))
		mirrored = set(mirrored, ColCorrespondent, spaceAccount(account, space))
		mirrored = set(mirrored, ColAmount, inverted)
		mirrored = set(mirrored, SpaceColumn, partner)
		mirrored = set(mirrored, ColTransactionType, internalType(inverted).String())

		out.Rows = append(out.Rows, booked, mirrored)
	}
	return out
}

func spaceAccount(account, space string) string {
	if space == MainSpace {
		return account
	}
	return account + " " + space
}

func internalType(amount string) model.TransactionType {
	v, err := ParseAmount(amount, n26.Dialect)
	if err != nil {
		return model.TypeUnknown
	}
	return model.TypeFromAmount(v, true)
}
