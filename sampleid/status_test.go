package sampleid

import (
	"reflect"
	"testing"

	"github.com/maddyras/cptac/tabular"
)

func TestBoundaryRule(t *testing.T) {
	rule := BoundaryRule("S104")

	for _, v := range []struct {
		key  tabular.SampleKey
		want Status
	}{
		{"S001", Tumor},
		{"S104", Tumor},
		{"S105", Normal},
		{"S110", Normal},
	} {
		if got := rule(v.key); got != v.want {
			t.Fatalf("%s: got %v, expected %v", v.key, got, v.want)
		}
	}
}

func TestSuffixRule(t *testing.T) {
	rule := SuffixRule(NormalSuffix)

	if got := rule("C3L-00378"); got != Tumor {
		t.Fatalf("unmarked key: got %v, expected Tumor", got)
	}
	if got := rule("C3L-00378.N"); got != Normal {
		t.Fatalf("marked key: got %v, expected Normal", got)
	}
}

func TestSortTumorFirst(t *testing.T) {
	rule := BoundaryRule("S104")
	keys := []tabular.SampleKey{"S106", "S002", "S105", "S001"}

	got := SortTumorFirst(keys, rule)
	want := []tabular.SampleKey{"S001", "S002", "S105", "S106"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, expected %v", got, want)
	}

	// The input order is untouched.
	if !reflect.DeepEqual(keys, []tabular.SampleKey{"S106", "S002", "S105", "S001"}) {
		t.Fatalf("input mutated: %v", keys)
	}
}

func TestStandardizeNormalKey(t *testing.T) {
	for _, v := range []struct {
		key    tabular.SampleKey
		marker string
		loc    MarkerLocation
		want   tabular.SampleKey
	}{
		{"NC3L-00378", "N", MarkerStart, "C3L-00378.N"},
		{"C3L-00378", "N", MarkerStart, "C3L-00378"},
		{"C3L-00378-N", "-N", MarkerEnd, "C3L-00378.N"},
		{"C3L-00378", "-N", MarkerEnd, "C3L-00378"},
	} {
		if got := StandardizeNormalKey(v.key, v.marker, v.loc); got != v.want {
			t.Fatalf("%s: got %v, expected %v", v.key, got, v.want)
		}
	}
}
