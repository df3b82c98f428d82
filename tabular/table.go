package tabular

import "fmt"

// SampleKey identifies one row. Within a table, keys are unique. Depending
// on the cohort's identifier scheme a key is either a patient identifier
// (C3L-00006) or an index-derived sample identifier (S001), with normal
// draws carrying a status marker such as a ".N" suffix.
type SampleKey string

// Table is a two-dimensional structure with rows keyed by SampleKey and
// typed, named columns. A table is append-only while a loader or merge
// operation builds it, and is treated as immutable from then on: every
// engine operation returns a freshly constructed table and never writes
// to its inputs.
type Table struct {
	name string
	kind Kind

	keys []SampleKey
	pos  map[SampleKey]int

	colNames []string
	cols     map[string]Column
}

// New creates an empty table with the given row keys. Duplicate keys are
// rejected.
func New(name string, kind Kind, keys []SampleKey) (*Table, error) {
	pos := make(map[SampleKey]int, len(keys))
	for i, k := range keys {
		if _, dup := pos[k]; dup {
			return nil, fmt.Errorf("table %q: duplicate row key %q", name, k)
		}
		pos[k] = i
	}

	return &Table{
		name: name,
		kind: kind,
		keys: append([]SampleKey(nil), keys...),
		pos:  pos,
		cols: make(map[string]Column),
	}, nil
}

func (t *Table) Name() string { return t.name }
func (t *Table) Kind() Kind   { return t.kind }
func (t *Table) NumRows() int { return len(t.keys) }
func (t *Table) NumCols() int { return len(t.colNames) }

// Keys returns a copy of the row keys in table order.
func (t *Table) Keys() []SampleKey {
	return append([]SampleKey(nil), t.keys...)
}

func (t *Table) HasKey(k SampleKey) bool {
	_, ok := t.pos[k]
	return ok
}

// ColumnNames returns a copy of the column names in table order.
func (t *Table) ColumnNames() []string {
	return append([]string(nil), t.colNames...)
}

func (t *Table) HasColumn(name string) bool {
	_, ok := t.cols[name]
	return ok
}

// Column returns the named column vector. Callers must not modify it.
func (t *Table) Column(name string) (Column, bool) {
	c, ok := t.cols[name]
	return c, ok
}

// AddColumn appends a column. The column must match the table's row count
// and its name must be new.
func (t *Table) AddColumn(name string, c Column) error {
	if _, dup := t.cols[name]; dup {
		return fmt.Errorf("table %q: duplicate column %q", t.name, name)
	}
	if c.Len() != len(t.keys) {
		return fmt.Errorf("table %q: column %q has %d values for %d rows", t.name, name, c.Len(), len(t.keys))
	}

	t.colNames = append(t.colNames, name)
	t.cols[name] = c

	return nil
}

func (t *Table) AddFloats(name string, v []float64) error {
	return t.AddColumn(name, FloatColumn(v))
}

func (t *Table) AddStrings(name string, v []string) error {
	return t.AddColumn(name, StringColumn(v))
}

func (t *Table) AddStringLists(name string, v [][]string) error {
	return t.AddColumn(name, StringListColumn(v))
}

// FloatAt returns the numeric cell at (key, column). Missing cells are
// NaN, which is a value, not an error.
func (t *Table) FloatAt(col string, key SampleKey) (float64, error) {
	c, i, err := t.cell(col, key)
	if err != nil {
		return 0, err
	}

	fc, ok := c.(FloatColumn)
	if !ok {
		return 0, fmt.Errorf("table %q: column %q is not numeric", t.name, col)
	}

	return fc[i], nil
}

// StringAt returns the categorical cell at (key, column).
func (t *Table) StringAt(col string, key SampleKey) (string, error) {
	c, i, err := t.cell(col, key)
	if err != nil {
		return "", err
	}

	sc, ok := c.(StringColumn)
	if !ok {
		return "", fmt.Errorf("table %q: column %q is not categorical", t.name, col)
	}

	return sc[i], nil
}

// ListAt returns the list-valued cell at (key, column). Callers must not
// modify the returned slice.
func (t *Table) ListAt(col string, key SampleKey) ([]string, error) {
	c, i, err := t.cell(col, key)
	if err != nil {
		return nil, err
	}

	lc, ok := c.(StringListColumn)
	if !ok {
		return nil, fmt.Errorf("table %q: column %q is not list-valued", t.name, col)
	}

	return lc[i], nil
}

func (t *Table) cell(col string, key SampleKey) (Column, int, error) {
	c, ok := t.cols[col]
	if !ok {
		return nil, 0, fmt.Errorf("table %q: no column %q", t.name, col)
	}

	i, ok := t.pos[key]
	if !ok {
		return nil, 0, fmt.Errorf("table %q: no row %q", t.name, key)
	}

	return c, i, nil
}

// Select builds a new table holding only the named columns, in the given
// order. Column vectors are shared with the receiver, which is safe
// because constructed tables are never mutated.
func (t *Table) Select(cols []string) (*Table, error) {
	out, err := New(t.name, t.kind, t.keys)
	if err != nil {
		return nil, err
	}

	for _, name := range cols {
		c, ok := t.cols[name]
		if !ok {
			return nil, fmt.Errorf("table %q: no column %q", t.name, name)
		}
		if err := out.AddColumn(name, c); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// RenameKeys builds a new table whose row keys are rename(k) for each
// existing key k, preserving row order and sharing column vectors. The
// rename must not introduce collisions.
func (t *Table) RenameKeys(rename func(SampleKey) SampleKey) (*Table, error) {
	keys := make([]SampleKey, len(t.keys))
	for i, k := range t.keys {
		keys[i] = rename(k)
	}

	out, err := New(t.name, t.kind, keys)
	if err != nil {
		return nil, err
	}

	for _, name := range t.colNames {
		if err := out.AddColumn(name, t.cols[name]); err != nil {
			return nil, err
		}
	}

	return out, nil
}
