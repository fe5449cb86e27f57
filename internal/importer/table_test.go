package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleTable() *Table {
	return &Table{
		Header: []string{"Datum", "Betrag", "Text"},
		Rows: [][]string{
			{"01.02.24", "-1,00", "REWE"},
			{"02.02.24", "2,00"},
		},
	}
}

func TestTable_RenameIsPure(t *testing.T) {
	in := sampleTable()
	out := in.Rename(map[string]string{"Datum": ColDate, "Betrag": ColAmount})

	assert.Equal(t, []string{ColDate, ColAmount, "Text"}, out.Header)
	assert.Equal(t, []string{"Datum", "Betrag", "Text"}, in.Header)
}

func TestTable_AssignAppendsAndPads(t *testing.T) {
	in := sampleTable()
	out := in.Assign(ColAccount, Const("checking"))

	assert.Equal(t, 4, len(out.Header))
	assert.Equal(t, "checking", out.Value(out.Rows[0], ColAccount))
	assert.Equal(t, "checking", out.Value(out.Rows[1], ColAccount))
	assert.Equal(t, "", out.Value(out.Rows[1], "Text"))
	assert.Equal(t, -1, in.Index(ColAccount))
}

func TestTable_AssignOverwrites(t *testing.T) {
	in := sampleTable()
	out := in.Assign("Text", func(row []string) string { return in.Value(row, "Betrag") })
	assert.Equal(t, "-1,00", out.Value(out.Rows[0], "Text"))
	assert.Equal(t, "2,00", out.Value(out.Rows[1], "Text"))
	assert.Equal(t, "REWE", in.Value(in.Rows[0], "Text"))
}

func TestTable_Filter(t *testing.T) {
	in := sampleTable()
	out := in.Filter(func(row []string) bool { return in.Value(row, "Text") != "" })
	assert.Len(t, out.Rows, 1)
	assert.Len(t, in.Rows, 2)
}

func TestLowercaseText(t *testing.T) {
	out := LowercaseText(sampleTable())
	assert.Equal(t, "rewe", out.Value(out.Rows[0], "Text"))
	assert.Equal(t, "-1,00", out.Value(out.Rows[0], "Betrag"))
	assert.Equal(t, "", out.Value(out.Rows[1], "Text"))
}

func TestAddSearchColumn(t *testing.T) {
	out := AddSearchColumn(sampleTable(), " | ")
	assert.Equal(t, "Datum: 01.02.24 | Betrag: -1,00 | Text: REWE", out.Value(out.Rows[0], ColAllData))
	assert.Equal(t, "Datum: 02.02.24 | Betrag: 2,00 | Text: ", out.Value(out.Rows[1], ColAllData))

	// Regenerating replaces the old value instead of nesting it.
	again := AddSearchColumn(out.Assign("Text", Const("x")), " | ")
	assert.Equal(t, "Datum: 01.02.24 | Betrag: -1,00 | Text: x", again.Value(again.Rows[0], ColAllData))
}

func TestColumns(t *testing.T) {
	assert.Equal(t, MinimalColumns, Columns[:len(MinimalColumns)])
	assert.Equal(t, []string{ColCorrespondent, ColIBAN}, Columns[len(MinimalColumns):])
}
