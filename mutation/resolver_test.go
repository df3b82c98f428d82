package mutation

import (
	"errors"
	"reflect"
	"testing"
)

func TestHierarchyRank(t *testing.T) {
	h := DefaultHierarchy

	if h.Rank("Frame_Shift_Del") <= h.Rank("Missense_Mutation") {
		t.Fatal("truncating events must outrank missense")
	}
	if h.Rank("Missense_Mutation") <= h.Rank("Silent") {
		t.Fatal("missense must outrank silent")
	}
	if h.Rank("Silent") <= h.Rank(WildtypeTumor) {
		t.Fatal("silent must outrank wildtype")
	}
	if h.Rank("Some_New_Classification") != h.Rank("Missense_Mutation") {
		t.Fatal("unlisted types rank with missense")
	}
}

func TestResolveNoRecords(t *testing.T) {
	r := NewResolver(nil)

	if _, ok := r.Resolve(nil); ok {
		t.Fatal("no records should report not-found, not a result")
	}
	if _, ok, err := r.ResolveScalar(nil); ok || err != nil {
		t.Fatalf("no records should report not-found without error, got ok=%v err=%v", ok, err)
	}
}

func TestResolveKeepsAllEvidence(t *testing.T) {
	r := NewResolver(nil)

	recs := []Record{
		{Sample: "S001", Gene: "TP53", Type: "Silent", Location: "p.P36P"},
		{Sample: "S001", Gene: "TP53", Type: "Missense_Mutation", Location: "p.R175H"},
		{Sample: "S001", Gene: "TP53", Type: "Missense_Mutation", Location: "p.R175H"},
	}

	res, ok := r.Resolve(recs)
	if !ok {
		t.Fatal("expected a result")
	}

	if want := []string{"Missense_Mutation", "Silent"}; !reflect.DeepEqual(res.Types, want) {
		t.Fatalf("types: got %v, expected %v", res.Types, want)
	}
	if want := []string{"p.R175H", "p.P36P"}; !reflect.DeepEqual(res.Locations, want) {
		t.Fatalf("locations: got %v, expected %v", res.Locations, want)
	}
}

func TestResolveScalarPicksTopSeverity(t *testing.T) {
	r := NewResolver(nil)

	recs := []Record{
		{Sample: "S001", Gene: "TP53", Type: "Silent", Location: "p.P36P"},
		{Sample: "S001", Gene: "TP53", Type: "Frame_Shift_Del", Location: "p.R306fs"},
		{Sample: "S001", Gene: "TP53", Type: "Missense_Mutation", Location: "p.R175H"},
	}

	rec, ok, err := r.ResolveScalar(recs)
	if err != nil || !ok {
		t.Fatalf("ok=%v err=%v", ok, err)
	}
	if rec.Type != "Frame_Shift_Del" {
		t.Fatalf("got %v, expected the frameshift to win", rec.Type)
	}
}

func TestResolveScalarTieBreakIsDeterministic(t *testing.T) {
	r := NewResolver(nil)

	recs := []Record{
		{Sample: "S001", Gene: "TP53", Type: "Missense_Mutation", Location: "p.R282W"},
		{Sample: "S001", Gene: "TP53", Type: "Missense_Mutation", Location: "p.R175H"},
	}

	for i := 0; i < 10; i++ {
		rec, ok, err := r.ResolveScalar(recs)
		if err != nil || !ok {
			t.Fatalf("ok=%v err=%v", ok, err)
		}
		if rec.Location != "p.R175H" {
			t.Fatalf("tie-break must pick the lexicographically-first location, got %v", rec.Location)
		}
	}
}

func TestResolveScalarAmbiguity(t *testing.T) {
	r := NewResolver(nil)

	recs := []Record{
		{Sample: "S001", Gene: "TP53", Type: "Frame_Shift_Del", Location: "p.R306fs"},
		{Sample: "S001", Gene: "TP53", Type: "Nonsense_Mutation", Location: "p.R306fs"},
	}

	_, _, err := r.ResolveScalar(recs)
	var ambiguous AmbiguousMutationError
	if !errors.As(err, &ambiguous) {
		t.Fatalf("expected AmbiguousMutationError, got %v", err)
	}
	if ambiguous.Gene != "TP53" || ambiguous.Location != "p.R306fs" {
		t.Fatalf("error detail: %+v", ambiguous)
	}
}

func TestLedgerIndex(t *testing.T) {
	l := NewLedger("somatic_mutation", []Record{
		{Sample: "S001", Gene: "TP53", Type: "Missense_Mutation", Location: "p.R175H"},
		{Sample: "S001", Gene: "TP53", Type: "Silent", Location: "p.P36P"},
		{Sample: "S059", Gene: "AURKA", Type: "Nonsense_Mutation", Location: "p.Q127*"},
		{Sample: "NA", Gene: "TP53", Type: "Missense_Mutation", Location: "p.C141Y"},
	})

	if l.Kind().String() != "mutation_ledger" {
		t.Fatalf("kind: %v", l.Kind())
	}
	if got := len(l.Records("S001", "TP53")); got != 2 {
		t.Fatalf("records for (S001, TP53): got %d, expected 2", got)
	}
	if l.Records("S001", "AURKA") != nil {
		t.Fatal("expected no records for (S001, AURKA)")
	}
	if !l.HasGene("AURKA") || l.HasGene("BRCA1") {
		t.Fatal("gene presence index is wrong")
	}
	if got := l.NumRecords(); got != 4 {
		t.Fatalf("record count: got %d, expected 4", got)
	}

	samples := l.Samples()
	if len(samples) != 3 || samples[0] != "NA" || samples[1] != "S001" || samples[2] != "S059" {
		t.Fatalf("samples: %v", samples)
	}
}
