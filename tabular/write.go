package tabular

import (
	"encoding/csv"
	"io"
	"math"
	"strconv"
	"strings"
)

// MissingMarker is how missing cells are rendered on output.
const MissingMarker = "NA"

// WriteTSV renders the table as tab-separated values with a leading
// Sample_ID column. Missing cells become MissingMarker; list-valued cells
// are joined with ";" so one physical column holds the full evidence
// list.
func WriteTSV(w io.Writer, t *Table) error {
	cw := csv.NewWriter(w)
	cw.Comma = '\t'
	defer cw.Flush()

	header := append([]string{"Sample_ID"}, t.colNames...)
	if err := cw.Write(header); err != nil {
		return err
	}

	row := make([]string, len(header))
	for i, key := range t.keys {
		row[0] = string(key)
		for j, name := range t.colNames {
			row[j+1] = formatCell(t.cols[name], i)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()

	return cw.Error()
}

func formatCell(c Column, i int) string {
	if c.IsMissing(i) {
		return MissingMarker
	}

	switch col := c.(type) {
	case FloatColumn:
		if math.IsNaN(col[i]) {
			return MissingMarker
		}
		return strconv.FormatFloat(col[i], 'g', -1, 64)
	case StringColumn:
		return col[i]
	case StringListColumn:
		return strings.Join(col[i], ";")
	}

	return MissingMarker
}
