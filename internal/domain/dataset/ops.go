package dataset

import "strings"

// Concat stacks tables row-wise. The result has the union of all columns in order
// of first appearance; rows keep their original order and cells of columns a
// source table lacked are null.
func Concat(tables ...*Table) *Table {
	out := New()
	for _, t := range tables {
		if t == nil {
			continue
		}
		for _, name := range t.columns {
			out.AddColumn(name)
		}
	}

	for _, t := range tables {
		if t == nil {
			continue
		}
		positions := make([]int, len(t.columns))
		for i, name := range t.columns {
			positions[i] = out.index[name]
		}
		for _, row := range t.rows {
			merged := make([]Value, len(out.columns))
			for i, v := range row {
				merged[positions[i]] = v
			}
			out.rows = append(out.rows, merged)
		}
	}

	return out
}

// Filter returns the rows for which keep returns true.
func (t *Table) Filter(keep func(row int) bool) *Table {
	out := New(t.Columns()...)
	for i := 0; i < t.Len(); i++ {
		if keep(i) {
			out.rows = append(out.rows, append([]Value(nil), t.rows[i]...))
		}
	}
	return out
}

// Select projects the named columns that exist, in the given order. Absent
// columns are skipped.
func (t *Table) Select(columns ...string) *Table {
	present := make([]string, 0, len(columns))
	for _, name := range columns {
		if t.HasColumn(name) {
			present = append(present, name)
		}
	}

	out := New(present...)
	for i := 0; i < t.Len(); i++ {
		row := make([]Value, len(out.columns))
		for j, name := range out.columns {
			row[j] = t.rows[i][t.index[name]]
		}
		out.rows = append(out.rows, row)
	}
	return out
}

// Rename returns a copy with columns renamed. Sources that do not exist, and
// targets that would collide with another column, are left unchanged.
func (t *Table) Rename(mapping map[string]string) *Table {
	out := t.Clone()
	for from, to := range mapping {
		i, ok := out.index[from]
		if !ok || from == to || out.HasColumn(to) {
			continue
		}
		delete(out.index, from)
		out.index[to] = i
		out.columns[i] = to
	}
	return out
}

// MapColumn rewrites every cell of column in place. It reports whether the
// column exists.
func (t *Table) MapColumn(column string, fn func(Value) Value) bool {
	if t == nil {
		return false
	}
	i, ok := t.index[column]
	if !ok {
		return false
	}
	for _, row := range t.rows {
		row[i] = fn(row[i])
	}
	return true
}

// Column returns a copy of the cells of column.
func (t *Table) Column(name string) ([]Value, bool) {
	if !t.HasColumn(name) {
		return nil, false
	}
	i := t.index[name]
	out := make([]Value, len(t.rows))
	for r, row := range t.rows {
		out[r] = row[i]
	}
	return out, true
}

// DropDuplicates removes repeated rows, keeping the first occurrence.
func (t *Table) DropDuplicates() *Table {
	seen := make(map[string]struct{}, t.Len())
	return t.Filter(func(row int) bool {
		key := rowKey(t.rows[row])
		if _, ok := seen[key]; ok {
			return false
		}
		seen[key] = struct{}{}
		return true
	})
}

func rowKey(row []Value) string {
	var b strings.Builder
	for _, v := range row {
		if v.Valid {
			b.WriteByte('v')
			b.WriteString(v.Text)
		} else {
			b.WriteByte('n')
		}
		b.WriteByte(0)
	}
	return b.String()
}
