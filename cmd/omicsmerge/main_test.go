package main

import (
	"reflect"
	"testing"

	"github.com/maddyras/cptac/tabular"
)

// fakeCohort records which operation run dispatched to.
type fakeCohort struct {
	called string
	tables map[string]*tabular.Table
}

func (f *fakeCohort) Table(name string) (*tabular.Table, error) {
	t, ok := f.tables[name]
	if !ok {
		return tabular.New(name, tabular.Omics, nil)
	}
	return t, nil
}

func (f *fakeCohort) CompareOmics(a, b *tabular.Table, colsA, colsB []string) (*tabular.Table, error) {
	f.called = "compare"
	return a, nil
}

func (f *fakeCohort) AppendMetadataToOmics(meta, omics *tabular.Table, metaCols, omicsCols []string) (*tabular.Table, error) {
	f.called = "metadata"
	return omics, nil
}

func (f *fakeCohort) AppendMutationsToOmics(omics *tabular.Table, genes, omicsGenes []string, showLocation bool) (*tabular.Table, error) {
	f.called = "mutations"
	return omics, nil
}

func (f *fakeCohort) CompareMutations(omics *tabular.Table, omicsGene, mutationGene string) (*tabular.Table, error) {
	f.called = "mutations-scalar"
	return omics, nil
}

func TestRunDispatch(t *testing.T) {
	cases := []struct {
		op     string
		genes  []string
		scalar bool
		want   string
	}{
		{op: "compare", want: "compare"},
		{op: "metadata", want: "metadata"},
		{op: "mutations", genes: []string{"TP53"}, want: "mutations"},
		{op: "mutations", genes: []string{"TP53"}, scalar: true, want: "mutations-scalar"},
	}

	for _, c := range cases {
		f := &fakeCohort{}
		if _, err := run(f, c.op, "a", "b", nil, nil, c.genes, nil, true, c.scalar); err != nil {
			t.Fatalf("%s: %v", c.op, err)
		}
		if f.called != c.want {
			t.Fatalf("op %s dispatched to %q, expected %q", c.op, f.called, c.want)
		}
	}
}

func TestRunRejectsBadArgs(t *testing.T) {
	f := &fakeCohort{}

	if _, err := run(f, "plot", "a", "b", nil, nil, nil, nil, true, false); err == nil {
		t.Fatal("expected an error for an unknown operation")
	}
	if _, err := run(f, "mutations", "a", "", nil, nil, []string{"TP53", "AURKA"}, nil, true, true); err == nil {
		t.Fatal("-scalar takes exactly one gene")
	}
}

func TestSplitList(t *testing.T) {
	if got := splitList(""); got != nil {
		t.Fatalf("empty input: %v", got)
	}
	if got := splitList("TP53, AURKA ,EGFR"); !reflect.DeepEqual(got, []string{"TP53", "AURKA", "EGFR"}) {
		t.Fatalf("got %v", got)
	}
}
