// Package dataset models the tabular data read from the dataset tree.
//
// A Table carries an explicit, ordered set of column names; rows hold one Value
// per column. Columns are detected by presence, so every accessor reports
// whether a column exists instead of relying on implicit nulls.
package dataset

// Value is a single cell. CSV empty fields and cells of columns a row never
// had are null.
type Value struct {
	Text  string
	Valid bool
}

func String(text string) Value {
	return Value{Text: text, Valid: true}
}

func Null() Value {
	return Value{}
}

func (v Value) IsNull() bool {
	return !v.Valid
}

// Table is an in-memory table. The zero value is an empty table with no columns.
type Table struct {
	columns []string
	index   map[string]int
	rows    [][]Value
}

// New builds an empty table. Repeated column names are kept once.
func New(columns ...string) *Table {
	t := &Table{}
	for _, column := range columns {
		t.AddColumn(column)
	}
	return t
}

func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.rows)
}

func (t *Table) IsEmpty() bool {
	return t.Len() == 0
}

// Columns returns the column names in order.
func (t *Table) Columns() []string {
	if t == nil {
		return nil
	}
	return append([]string(nil), t.columns...)
}

func (t *Table) HasColumn(name string) bool {
	if t == nil || t.index == nil {
		return false
	}
	_, ok := t.index[name]
	return ok
}

// FirstColumn returns the first candidate present in the table.
func (t *Table) FirstColumn(candidates ...string) (string, bool) {
	for _, name := range candidates {
		if t.HasColumn(name) {
			return name, true
		}
	}
	return "", false
}

// AddColumn appends a null-filled column and reports whether it was added.
func (t *Table) AddColumn(name string) bool {
	if t.HasColumn(name) {
		return false
	}
	if t.index == nil {
		t.index = make(map[string]int)
	}
	t.index[name] = len(t.columns)
	t.columns = append(t.columns, name)
	for i := range t.rows {
		t.rows[i] = append(t.rows[i], Null())
	}
	return true
}

// AppendRow appends a row aligned with Columns. Missing trailing values are null
// and extra values are dropped.
func (t *Table) AppendRow(values []Value) {
	row := make([]Value, len(t.columns))
	copy(row, values)
	t.rows = append(t.rows, row)
}

// AppendRecord appends a row from a column map; unknown columns are ignored.
func (t *Table) AppendRecord(record map[string]Value) {
	row := make([]Value, len(t.columns))
	for name, v := range record {
		if i, ok := t.index[name]; ok {
			row[i] = v
		}
	}
	t.rows = append(t.rows, row)
}

// Value returns the cell at row/column. The boolean is false when the column is
// unknown or the row is out of range.
func (t *Table) Value(row int, column string) (Value, bool) {
	if t == nil || row < 0 || row >= len(t.rows) {
		return Null(), false
	}
	i, ok := t.index[column]
	if !ok {
		return Null(), false
	}
	return t.rows[row][i], true
}

// Set overwrites a cell. It is a no-op for unknown columns or rows.
func (t *Table) Set(row int, column string, v Value) {
	if t == nil || row < 0 || row >= len(t.rows) {
		return
	}
	if i, ok := t.index[column]; ok {
		t.rows[row][i] = v
	}
}

// Record returns row as a column map including null cells.
func (t *Table) Record(row int) map[string]Value {
	if t == nil || row < 0 || row >= len(t.rows) {
		return nil
	}
	out := make(map[string]Value, len(t.columns))
	for i, name := range t.columns {
		out[name] = t.rows[row][i]
	}
	return out
}

// Clone returns a deep copy that shares nothing with t.
func (t *Table) Clone() *Table {
	if t == nil {
		return New()
	}
	out := New(t.columns...)
	out.rows = make([][]Value, len(t.rows))
	for i, row := range t.rows {
		out.rows[i] = append([]Value(nil), row...)
	}
	return out
}
