package tabular

import "sort"

// Union returns every row key appearing in any of the tables, ascending.
// Tables whose name is listed in exclude contribute no keys; this keeps a
// table with out-of-cohort rows (a followup table, say) from force-
// expanding every other table in the collection.
func Union(tables []*Table, exclude ...string) []SampleKey {
	skip := make(map[string]bool, len(exclude))
	for _, name := range exclude {
		skip[name] = true
	}

	seen := make(map[SampleKey]bool)
	var keys []SampleKey
	for _, t := range tables {
		if skip[t.Name()] {
			continue
		}
		for _, k := range t.keys {
			if !seen[k] {
				seen[k] = true
				keys = append(keys, k)
			}
		}
	}

	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	return keys
}

// IntersectKeys returns the keys present in both sets, ascending. The
// ordering does not depend on argument order.
func IntersectKeys(a, b []SampleKey) []SampleKey {
	inA := make(map[SampleKey]bool, len(a))
	for _, k := range a {
		inA[k] = true
	}

	seen := make(map[SampleKey]bool)
	var keys []SampleKey
	for _, k := range b {
		if inA[k] && !seen[k] {
			seen[k] = true
			keys = append(keys, k)
		}
	}

	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	return keys
}

// Reindex builds a new table with exactly the target keys as rows. Rows
// absent from the target are dropped; target keys absent from the table
// are inserted with missing-value markers in every column. Reindexing an
// already-reindexed table with the same keys is a no-op.
func Reindex(t *Table, keys []SampleKey) (*Table, error) {
	idx := make([]int, len(keys))
	for j, k := range keys {
		if i, ok := t.pos[k]; ok {
			idx[j] = i
		} else {
			idx[j] = -1
		}
	}

	out, err := New(t.name, t.kind, keys)
	if err != nil {
		return nil, err
	}

	for _, name := range t.colNames {
		if err := out.AddColumn(name, t.cols[name].take(idx)); err != nil {
			return nil, err
		}
	}

	return out, nil
}
