package tabular

import (
	"math"
	"testing"
)

func TestNewRejectsDuplicateKeys(t *testing.T) {
	if _, err := New("proteomics", Omics, []SampleKey{"S001", "S002", "S001"}); err == nil {
		t.Fatal("expected an error for duplicate row keys")
	}
}

func TestAddColumnChecksLengthAndName(t *testing.T) {
	tbl, err := New("proteomics", Omics, []SampleKey{"S001", "S002"})
	if err != nil {
		t.Fatal(err)
	}

	if err := tbl.AddFloats("A1BG", []float64{1.5}); err == nil {
		t.Fatal("expected an error for a short column")
	}
	if err := tbl.AddFloats("A1BG", []float64{1.5, 2.5}); err != nil {
		t.Fatal(err)
	}
	if err := tbl.AddFloats("A1BG", []float64{0, 0}); err == nil {
		t.Fatal("expected an error for a duplicate column name")
	}

	got, err := tbl.FloatAt("A1BG", "S002")
	if err != nil {
		t.Fatal(err)
	}
	if got != 2.5 {
		t.Fatalf("FloatAt: got %v, expected 2.5", got)
	}
}

func TestSelectKeepsOrderAndRejectsUnknown(t *testing.T) {
	tbl, err := New("clinical", Metadata, []SampleKey{"S001"})
	if err != nil {
		t.Fatal(err)
	}
	if err := tbl.AddFloats("Age", []float64{64}); err != nil {
		t.Fatal(err)
	}
	if err := tbl.AddFloats("BMI", []float64{27.1}); err != nil {
		t.Fatal(err)
	}

	sel, err := tbl.Select([]string{"BMI", "Age"})
	if err != nil {
		t.Fatal(err)
	}
	cols := sel.ColumnNames()
	if len(cols) != 2 || cols[0] != "BMI" || cols[1] != "Age" {
		t.Fatalf("Select order: got %v", cols)
	}

	if _, err := tbl.Select([]string{"Diabetes"}); err == nil {
		t.Fatal("expected an error selecting a missing column")
	}
}

func TestRenameKeys(t *testing.T) {
	tbl, err := New("transcriptomics", Omics, []SampleKey{"NC3L-00001", "C3L-00002"})
	if err != nil {
		t.Fatal(err)
	}
	if err := tbl.AddFloats("TP53", []float64{1, 2}); err != nil {
		t.Fatal(err)
	}

	renamed, err := tbl.RenameKeys(func(k SampleKey) SampleKey {
		if k == "NC3L-00001" {
			return "C3L-00001.N"
		}
		return k
	})
	if err != nil {
		t.Fatal(err)
	}

	if !renamed.HasKey("C3L-00001.N") || renamed.HasKey("NC3L-00001") {
		t.Fatalf("rename did not apply: keys %v", renamed.Keys())
	}
	if v, err := renamed.FloatAt("TP53", "C3L-00001.N"); err != nil || v != 1 {
		t.Fatalf("renamed row lost its value: %v, %v", v, err)
	}

	if _, err := tbl.RenameKeys(func(SampleKey) SampleKey { return "same" }); err == nil {
		t.Fatal("expected an error for a rename collision")
	}
}

func TestListCells(t *testing.T) {
	tbl, err := New("joined", Omics, []SampleKey{"S001", "S002"})
	if err != nil {
		t.Fatal(err)
	}
	if err := tbl.AddStringLists("TP53_Mutation", [][]string{{"Missense_Mutation"}, nil}); err != nil {
		t.Fatal(err)
	}

	got, err := tbl.ListAt("TP53_Mutation", "S001")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0] != "Missense_Mutation" {
		t.Fatalf("ListAt: got %v", got)
	}

	col, _ := tbl.Column("TP53_Mutation")
	if !col.IsMissing(1) {
		t.Fatal("nil list cell should be missing")
	}
	if col.IsMissing(0) {
		t.Fatal("populated list cell should not be missing")
	}
}

func TestFloatMissingIsNaN(t *testing.T) {
	tbl, err := New("omics", Omics, []SampleKey{"S001"})
	if err != nil {
		t.Fatal(err)
	}
	if err := tbl.AddFloats("GENE", []float64{math.NaN()}); err != nil {
		t.Fatal(err)
	}

	col, _ := tbl.Column("GENE")
	if !col.IsMissing(0) {
		t.Fatal("NaN cell should be missing")
	}
}
