package importer

// Table is a header plus string rows read from a bank export. Every method
// returns a new Table and leaves the receiver untouched.
type Table struct {
	Header []string
	Rows   [][]string
}

// Step transforms one table into another.
type Step func(*Table) *Table

// Index returns the position of col in the header, or -1.
func (t *Table) Index(col string) int {
	for i, h := range t.Header {
		if h == col {
			return i
		}
	}
	return -1
}

// Value returns the cell of row in col, or "" if the column or cell is missing.
func (t *Table) Value(row []string, col string) string {
	i := t.Index(col)
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}

// Rename replaces header names found in names.
func (t *Table) Rename(names map[string]string) *Table {
	out := t.clone()
	for i, h := range out.Header {
		if n, ok := names[h]; ok {
			out.Header[i] = n
		}
	}
	return out
}

// Assign sets col to value(row) for every row, appending the column if absent.
func (t *Table) Assign(col string, value func(row []string) string) *Table {
	out := t.clone()
	i := out.Index(col)
	if i < 0 {
		out.Header = append(out.Header, col)
		i = len(out.Header) - 1
	}
	for r, row := range out.Rows {
		v := value(t.Rows[r])
		for len(row) <= i {
			row = append(row, "")
		}
		row[i] = v
		out.Rows[r] = row
	}
	return out
}

// Filter keeps the rows for which keep returns true.
func (t *Table) Filter(keep func(row []string) bool) *Table {
	out := &Table{Header: append([]string(nil), t.Header...)}
	for _, row := range t.Rows {
		if keep(row) {
			out.Rows = append(out.Rows, append([]string(nil), row...))
		}
	}
	return out
}

// Map replaces every cell with fn(col, cell).
func (t *Table) Map(fn func(col, cell string) string) *Table {
	out := t.clone()
	for _, row := range out.Rows {
		for i := range row {
			col := ""
			if i < len(out.Header) {
				col = out.Header[i]
			}
			row[i] = fn(col, row[i])
		}
	}
	return out
}

// Const returns a value func yielding s for every row.
func Const(s string) func([]string) string {
	return func([]string) string { return s }
}

func (t *Table) clone() *Table {
	out := &Table{
		Header: append([]string(nil), t.Header...),
		Rows:   make([][]string, len(t.Rows)),
	}
	for i, row := range t.Rows {
		out.Rows[i] = append([]string(nil), row...)
	}
	return out
}
