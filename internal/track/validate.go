package track

import (
	"fmt"
	"strings"
	"time"

	"github.com/wealth-dev/wealth/internal/importer"
)

const previewRows = 5

// ValidationError describes a column that violates the tracking file's
// invariants. Preview shows the start of the offending column.
type ValidationError struct {
	Column      string
	Description string
	Preview     string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("column %q: %s; column looks like: %s", e.Column, e.Description, e.Preview)
}

// Validate checks that every required column exists, prices are numeric,
// dates parse and never decrease, and buckets are known. Expects lowercased
// cells.
func Validate(t *importer.Table) []ValidationError {
	var errs []ValidationError
	for _, col := range requiredColumns {
		if t.Index(col) < 0 {
			errs = append(errs, ValidationError{
				Column:      col,
				Description: "missing column",
				Preview:     strings.Join(t.Header, ", "),
			})
		}
	}
	if len(errs) > 0 {
		return errs
	}

	check := func(col, want string, bad func(row []string) bool) {
		for i, row := range t.Rows {
			if bad(row) {
				errs = append(errs, ValidationError{
					Column:      col,
					Description: fmt.Sprintf("must contain only %s, row %d is %q", want, i+2, t.Value(row, col)),
					Preview:     preview(t, col),
				})
				return
			}
		}
	}

	check(ColPrice, "numeric values", func(row []string) bool {
		_, err := importer.ParseAmount(t.Value(row, ColPrice), dialect)
		return err != nil
	})

	dateOK := true
	check(ColDate, "date values", func(row []string) bool {
		_, err := parseDate(t.Value(row, ColDate))
		dateOK = dateOK && err == nil
		return err != nil
	})

	check(ColBucket, `values "shopping" or "wealth"`, func(row []string) bool {
		return !isBucket(t.Value(row, ColBucket))
	})

	if dateOK {
		var prev time.Time
		check(ColDate, "increasing dates", func(row []string) bool {
			d, _ := parseDate(t.Value(row, ColDate))
			defer func() { prev = d }()
			return d.Before(prev)
		})
	}
	return errs
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(dialect.DateFormat, strings.TrimSpace(s))
}

func isBucket(s string) bool {
	for _, b := range Buckets {
		if s == b {
			return true
		}
	}
	return false
}

func preview(t *importer.Table, col string) string {
	var vals []string
	for i, row := range t.Rows {
		if i == previewRows {
			vals = append(vals, fmt.Sprintf("... (%d more)", len(t.Rows)-previewRows))
			break
		}
		vals = append(vals, t.Value(row, col))
	}
	return "[" + strings.Join(vals, ", ") + "]"
}
