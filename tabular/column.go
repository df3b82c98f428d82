package tabular

import "math"

// Column is one named vector of cell values, aligned with the owning
// table's row keys. Implementations are FloatColumn, StringColumn and
// StringListColumn.
type Column interface {
	Len() int

	// IsMissing reports whether the cell at i holds the column's
	// missing-value marker.
	IsMissing(i int) bool

	// take builds a new column of the same type whose cell j comes from
	// cell idx[j], with idx[j] == -1 producing a missing marker.
	take(idx []int) Column
}

// FloatColumn holds numeric measurements. NaN marks a missing cell.
type FloatColumn []float64

func (c FloatColumn) Len() int { return len(c) }
func (c FloatColumn) IsMissing(i int) bool { return math.IsNaN(c[i]) }

func (c FloatColumn) take(idx []int) Column {
	out := make(FloatColumn, len(idx))
	for j, i := range idx {
		if i < 0 {
			out[j] = math.NaN()
			continue
		}
		out[j] = c[i]
	}

	return out
}

// StringColumn holds categorical values. The empty string marks a missing
// cell.
type StringColumn []string

func (c StringColumn) Len() int { return len(c) }
func (c StringColumn) IsMissing(i int) bool { return c[i] == "" }

func (c StringColumn) take(idx []int) Column {
	out := make(StringColumn, len(idx))
	for j, i := range idx {
		if i < 0 {
			continue
		}
		out[j] = c[i]
	}

	return out
}

// StringListColumn holds multi-valued evidence cells, one list per sample.
// The engine aggregates evidence into these lists and never truncates
// them. A nil list marks a missing cell; an imputed cell is a non-nil
// single-element list.
type StringListColumn [][]string

func (c StringListColumn) Len() int { return len(c) }
func (c StringListColumn) IsMissing(i int) bool { return c[i] == nil }

func (c StringListColumn) take(idx []int) Column {
	out := make(StringListColumn, len(idx))
	for j, i := range idx {
		if i < 0 {
			continue
		}
		out[j] = c[i]
	}

	return out
}
