package importer

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/wealth-dev/wealth/internal/model"
)

// Dialect describes how one bank writes its CSV exports.
type Dialect struct {
	Comma      rune
	Decimal    rune
	Thousands  rune // 0 if the bank never groups digits
	SkipRows   int  // preamble lines before the header
	DateFormat string
	Charset    encoding.Encoding // nil means UTF-8 with optional BOM
}

// format binds a dialect to the header renames and account_type of one export.
type format struct {
	Dialect
	AccountType string
	Columns     map[string]string
}

// parse runs the shared import pipeline: read, rename, tag, lowercase, the
// format specific steps, then the search column.
func (f format) parse(r io.Reader, account string, steps ...Step) ([]model.Transaction, error) {
	t, err := ReadTable(r, f.Dialect)
	if err != nil {
		return nil, err
	}

	t = t.Rename(f.Columns).
		Assign(ColAccount, Const(account)).
		Assign(ColAccountType, Const(f.AccountType))
	t = LowercaseText(t)
	for _, step := range steps {
		t = step(t)
	}
	// Lowercase again so the column names inside all_data are too.
	t = LowercaseText(AddSearchColumn(t, SearchDelimiter))

	return toTransactions(t, f.Dialect)
}

// ReadTable decodes r per d and returns the header and rows after the preamble.
func ReadTable(r io.Reader, d Dialect) (*Table, error) {
	var dec transform.Transformer = unicode.BOMOverride(unicode.UTF8.NewDecoder())
	if d.Charset != nil {
		dec = d.Charset.NewDecoder()
	}
	br := bufio.NewReader(transform.NewReader(r, dec))

	for i := 0; i < d.SkipRows; i++ {
		if _, err := br.ReadString('\n'); err != nil {
			if errors.Is(err, io.EOF) {
				return &Table{}, nil
			}
			return nil, fmt.Errorf("skipping line %d: %w", i+1, err)
		}
	}

	cr := csv.NewReader(br)
	cr.Comma = d.Comma
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}
	if len(records) == 0 {
		return &Table{}, nil
	}

	header := make([]string, len(records[0]))
	for i, h := range records[0] {
		header[i] = strings.TrimSpace(h)
	}
	return &Table{Header: header, Rows: records[1:]}, nil
}

// toTransactions converts canonical columns to Transactions. Rows whose date
// does not parse are footers or summaries and are dropped; a bad amount on a
// dated row is an error.
func toTransactions(t *Table, d Dialect) ([]model.Transaction, error) {
	var txns []model.Transaction
	for i, row := range t.Rows {
		date, err := time.Parse(d.DateFormat, strings.TrimSpace(t.Value(row, ColDate)))
		if err != nil {
			continue
		}

		amount, err := ParseAmount(t.Value(row, ColAmount), d)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+d.SkipRows+2, err)
		}

		tt, err := model.ParseTransactionType(t.Value(row, ColTransactionType))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+d.SkipRows+2, err)
		}

		txns = append(txns, model.Transaction{
			Date:          date,
			Account:       t.Value(row, ColAccount),
			Amount:        amount,
			Description:   t.Value(row, ColDescription),
			AccountType:   t.Value(row, ColAccountType),
			Correspondent: t.Value(row, ColCorrespondent),
			IBAN:          t.Value(row, ColIBAN),
			Type:          tt,
			AllData:       t.Value(row, ColAllData),
		})
	}
	return txns, nil
}

// ParseAmount parses an amount cell written in the decimal style of d.
func ParseAmount(s string, d Dialect) (decimal.Decimal, error) {
	v := strings.TrimSpace(s)
	if d.Thousands != 0 {
		v = strings.ReplaceAll(v, string(d.Thousands), "")
	}
	if d.Decimal != 0 && d.Decimal != '.' {
		v = strings.ReplaceAll(v, string(d.Decimal), ".")
	}
	v = strings.TrimPrefix(v, "+")

	amount, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parsing amount %q: %w", s, err)
	}
	return amount, nil
}

// negate flips the sign of an amount cell without reparsing it.
func negate(s string) string {
	v := strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(v, "-"):
		return v[1:]
	case strings.HasPrefix(v, "+"):
		return "-" + v[1:]
	default:
		return "-" + v
	}
}
