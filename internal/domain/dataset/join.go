package dataset

// LeftJoin enriches left with the columns of right, matching left[leftKey]
// against right[rightKey] on exact text.
//
// Every left row appears exactly once in the result: when several right rows
// share a key the first one wins, and unmatched rows get null enrichment cells.
// The right key column and right columns whose name already exists on the left
// are not added. If either key column is missing, a copy of left is returned.
func LeftJoin(left, right *Table, leftKey, rightKey string) *Table {
	out := left.Clone()
	if !left.HasColumn(leftKey) || !right.HasColumn(rightKey) {
		return out
	}

	added := make([]string, 0, len(right.columns))
	for _, name := range right.columns {
		if name == rightKey || left.HasColumn(name) {
			continue
		}
		added = append(added, name)
	}
	if len(added) == 0 {
		return out
	}

	rightKeyIdx := right.index[rightKey]
	firstByKey := make(map[string]int, right.Len())
	for r, row := range right.rows {
		key := row[rightKeyIdx]
		if !key.Valid {
			continue
		}
		if _, ok := firstByKey[key.Text]; !ok {
			firstByKey[key.Text] = r
		}
	}

	for _, name := range added {
		out.AddColumn(name)
	}

	leftKeyIdx := out.index[leftKey]
	for _, row := range out.rows {
		key := row[leftKeyIdx]
		if !key.Valid {
			continue
		}
		r, ok := firstByKey[key.Text]
		if !ok {
			continue
		}
		for _, name := range added {
			row[out.index[name]] = right.rows[r][right.index[name]]
		}
	}

	return out
}
