// Package cctparser reads wide measurement matrices (.cct, .cbt and
// similar delimited files, optionally gzipped) into kind-tagged tables.
// It is a mechanical adapter: the merge engine never touches files and
// consumes only the tables produced here.
package cctparser

import (
	"bytes"
	"compress/gzip"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/carbocation/pfx"
	"gopkg.in/guregu/null.v3"

	cptac "github.com/maddyras/cptac"
	"github.com/maddyras/cptac/tabular"
)

var missingFloat = math.NaN()

// Options directs one parse.
type Options struct {
	// Name labels the resulting table; when empty, ParseFile derives it
	// from the file name with extensions stripped.
	Name string

	// Kind tags the resulting table. Omics and BinaryMutation tables must
	// be fully numeric; Metadata tables may mix numeric and categorical
	// columns.
	Kind tabular.Kind

	// Transpose is set for deliveries laid out feature-by-sample (the
	// usual .cct orientation); the parsed matrix is flipped so rows are
	// samples.
	Transpose bool
}

// ParseFile reads one matrix file, transparently decompressing a .gz
// suffix.
func ParseFile(path string, opts Options) (*tabular.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, pfx.Err(err)
		}
		defer gz.Close()
		r = gz
	}

	if opts.Name == "" {
		opts.Name = tableName(path)
	}

	return Parse(r, opts)
}

// Parse reads one delimited matrix. The first row is the header (its
// first cell names the index and is discarded); the first cell of every
// other row is the row key.
func Parse(r io.Reader, opts Options) (*tabular.Table, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, pfx.Err(err)
	}

	cr := csv.NewReader(bytes.NewReader(raw))
	cr.Comma = cptac.DetermineDelimiter(bytes.NewReader(raw))
	cr.LazyQuotes = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, pfx.Err(err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("matrix %q: need a header and at least one row", opts.Name)
	}

	if opts.Transpose {
		records = transpose(records)
	}

	features := records[0][1:]
	rows := records[1:]

	keys := make([]tabular.SampleKey, len(rows))
	for i, row := range rows {
		keys[i] = tabular.SampleKey(row[0])
	}

	t, err := tabular.New(opts.Name, opts.Kind, keys)
	if err != nil {
		return nil, pfx.Err(err)
	}

	for j, feature := range features {
		if err := addColumn(t, feature, rows, j+1, opts.Kind); err != nil {
			return nil, pfx.Err(err)
		}
	}

	return t, nil
}

// addColumn infers one column's type: numeric when every populated cell
// parses as a float, categorical otherwise. Table kinds that promise
// numeric cells reject categorical columns outright.
func addColumn(t *tabular.Table, feature string, rows [][]string, col int, kind tabular.Kind) error {
	vals := make([]null.Float, len(rows))
	numeric := true

	for i, row := range rows {
		s := strings.TrimSpace(row[col])
		if missingCell(s) {
			continue
		}

		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			numeric = false
			break
		}
		vals[i] = null.FloatFrom(f)
	}

	if numeric {
		floats := make([]float64, len(rows))
		for i, v := range vals {
			if v.Valid {
				floats[i] = v.Float64
			} else {
				floats[i] = missingFloat
			}
		}
		return t.AddFloats(feature, floats)
	}

	if kind == tabular.Omics || kind == tabular.BinaryMutation {
		return fmt.Errorf("matrix %q: %s tables are numeric, but column %q is not", t.Name(), kind, feature)
	}

	strs := make([]string, len(rows))
	for i, row := range rows {
		s := strings.TrimSpace(row[col])
		if !missingCell(s) {
			strs[i] = s
		}
	}

	return t.AddStrings(feature, strs)
}

func missingCell(s string) bool {
	return s == "" || s == "NA" || s == "NaN" || s == "nan"
}

func transpose(records [][]string) [][]string {
	out := make([][]string, len(records[0]))
	for j := range out {
		row := make([]string, len(records))
		for i := range records {
			row[i] = records[i][j]
		}
		out[j] = row
	}

	return out
}

// tableName strips the directory and every extension: proteomics.cct.gz
// loads as "proteomics".
func tableName(path string) string {
	name := filepath.Base(path)
	for {
		ext := filepath.Ext(name)
		if ext == "" {
			return name
		}
		name = strings.TrimSuffix(name, ext)
	}
}
