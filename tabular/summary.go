package tabular

import (
	"math"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
)

// ColumnSummary describes one column for diagnostics: how many cells are
// populated and, for numeric columns, the usual moments.
type ColumnSummary struct {
	Column string
	N      int

	// Mean, StdDev and Median are NaN for non-numeric columns and for
	// numeric columns with no populated cells.
	Mean   float64
	StdDev float64
	Median float64
}

// Summarize computes a per-column summary of t, in column order.
func Summarize(t *Table) []ColumnSummary {
	out := make([]ColumnSummary, 0, t.NumCols())

	for _, name := range t.colNames {
		col := t.cols[name]
		s := ColumnSummary{
			Column: name,
			Mean:   math.NaN(),
			StdDev: math.NaN(),
			Median: math.NaN(),
		}

		for i := 0; i < col.Len(); i++ {
			if !col.IsMissing(i) {
				s.N++
			}
		}

		if fc, ok := col.(FloatColumn); ok && s.N > 0 {
			vals := make([]float64, 0, s.N)
			for _, v := range fc {
				if !math.IsNaN(v) {
					vals = append(vals, v)
				}
			}

			s.Mean, s.StdDev = stat.MeanStdDev(vals, nil)
			if med, err := stats.Median(vals); err == nil {
				s.Median = med
			}
		}

		out = append(out, s)
	}

	return out
}
