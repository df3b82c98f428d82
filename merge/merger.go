package merge

import (
	"github.com/carbocation/pfx"
	"github.com/maddyras/cptac/tabular"
)

// Compare selects colsA from a (all columns when nil) and colsB from b,
// aligns rows on the intersection of the two key sets, and concatenates
// the columns side by side. Rows present in only one table are dropped
// silently; that is the documented inner-join policy, not an error.
// Column name collisions between the two selections are disambiguated by
// suffixing with the source table's name.
func Compare(a, b *tabular.Table, colsA, colsB []string) (*tabular.Table, error) {
	if err := Check(OpCompare, a, b); err != nil {
		return nil, err
	}

	return innerJoin(a, b, colsA, colsB)
}

// AnnotateMetadata joins selected metadata columns onto all or part of an
// omics table, under the same inner-join contract as Compare. The first
// argument must be a metadata table and the second an omics table.
func AnnotateMetadata(meta, omics *tabular.Table, metaCols, omicsCols []string) (*tabular.Table, error) {
	if err := Check(OpAnnotateMetadata, meta, omics); err != nil {
		return nil, err
	}

	return innerJoin(meta, omics, metaCols, omicsCols)
}

func innerJoin(a, b *tabular.Table, colsA, colsB []string) (*tabular.Table, error) {
	aSel, err := selectCols(a, colsA)
	if err != nil {
		return nil, pfx.Err(err)
	}
	bSel, err := selectCols(b, colsB)
	if err != nil {
		return nil, pfx.Err(err)
	}

	keys := tabular.IntersectKeys(aSel.Keys(), bSel.Keys())

	aAligned, err := tabular.Reindex(aSel, keys)
	if err != nil {
		return nil, pfx.Err(err)
	}
	bAligned, err := tabular.Reindex(bSel, keys)
	if err != nil {
		return nil, pfx.Err(err)
	}

	out, err := tabular.New(a.Name()+"_"+b.Name(), joinedKind(a, b), keys)
	if err != nil {
		return nil, pfx.Err(err)
	}

	collide := collisions(aAligned, bAligned)
	if err := appendColumns(out, aAligned, collide, suffixFor(a, b, true)); err != nil {
		return nil, pfx.Err(err)
	}
	if err := appendColumns(out, bAligned, collide, suffixFor(a, b, false)); err != nil {
		return nil, pfx.Err(err)
	}

	return out, nil
}

func selectCols(t *tabular.Table, cols []string) (*tabular.Table, error) {
	if cols == nil {
		return t, nil
	}

	return t.Select(cols)
}

// joinedKind keeps merged output usable for further omics-accepting
// operations whenever omics measurements are present.
func joinedKind(a, b *tabular.Table) tabular.Kind {
	if a.Kind() == tabular.Omics || b.Kind() == tabular.Omics {
		return tabular.Omics
	}

	return tabular.Metadata
}

func collisions(a, b *tabular.Table) map[string]bool {
	out := make(map[string]bool)
	for _, name := range a.ColumnNames() {
		if b.HasColumn(name) {
			out[name] = true
		}
	}

	return out
}

// suffixFor picks the disambiguation suffix for one side of a join. A
// self-join (same table name on both sides) falls back to positional
// suffixes so the two sides stay distinguishable.
func suffixFor(a, b *tabular.Table, left bool) string {
	if a.Name() == b.Name() {
		if left {
			return "_1"
		}
		return "_2"
	}

	if left {
		return "_" + a.Name()
	}

	return "_" + b.Name()
}

func appendColumns(out, src *tabular.Table, collide map[string]bool, suffix string) error {
	for _, name := range src.ColumnNames() {
		col, _ := src.Column(name)
		outName := name
		if collide[name] {
			outName = name + suffix
		}
		if err := out.AddColumn(outName, col); err != nil {
			return err
		}
	}

	return nil
}
