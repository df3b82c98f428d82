package main

import (
	"flag"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/carbocation/pfx"

	"github.com/maddyras/cptac/cctparser"
	"github.com/maddyras/cptac/cohort"
	"github.com/maddyras/cptac/mafparser"
	"github.com/maddyras/cptac/mutation"
	"github.com/maddyras/cptac/sampleid"
	"github.com/maddyras/cptac/tabular"
)

// loaderFlags describe how a cohort directory is laid out. The defaults
// match the endometrial delivery: a clinical.txt metadata table whose
// leading rows are tumor samples, gene-by-sample .cct matrices, a
// sample-by-site .cbt binary matrix, and a curated somatic .maf export.
type loaderFlags struct {
	clinical     string
	patientCol   string
	tumorCount   int
	lastTumor    string
	normalSuffix string
	maf          string
	mafLayout    string
	definitions  string
	align        bool
}

func (lf *loaderFlags) register() {
	flag.StringVar(&lf.clinical, "clinical", "clinical.txt", "Metadata table file within -dir")
	flag.StringVar(&lf.patientCol, "patient-col", "Patient_ID", "Metadata column holding patient identifiers")
	flag.IntVar(&lf.tumorCount, "tumor-count", 0, "Number of leading tumor rows in the metadata table")
	flag.StringVar(&lf.lastTumor, "last-tumor", "", "Last tumor sample key; keys sorting after it are normal draws")
	flag.StringVar(&lf.normalSuffix, "normal-suffix", "", "Normal-draw key suffix (e.g. .N); overrides -last-tumor")
	flag.StringVar(&lf.maf, "maf", "", "Somatic mutation ledger file within -dir")
	flag.StringVar(&lf.mafLayout, "maf-layout", "SOMATIC", fmt.Sprint("Ledger layout. Currently, options include: ", mafparser.LayoutNames()))
	flag.StringVar(&lf.definitions, "definitions", "", "Optional term definitions file within -dir")
	flag.BoolVar(&lf.align, "align", false, "Reindex every table to the union of all sample keys, tumor draws first")
}

func (lf *loaderFlags) statusRule() (sampleid.StatusRule, error) {
	if lf.normalSuffix != "" {
		return sampleid.SuffixRule(lf.normalSuffix), nil
	}
	if lf.lastTumor != "" {
		return sampleid.BoundaryRule(tabular.SampleKey(lf.lastTumor)), nil
	}

	return nil, fmt.Errorf("please provide -last-tumor or -normal-suffix")
}

func loadCohort(dir string, lf loaderFlags) (*cohort.Cohort, error) {
	rule, err := lf.statusRule()
	if err != nil {
		return nil, err
	}

	tables := []*tabular.Table{}

	meta, err := cctparser.ParseFile(filepath.Join(dir, lf.clinical), cctparser.Options{
		Name: "clinical",
		Kind: tabular.Metadata,
	})
	if err != nil {
		return nil, pfx.Err(err)
	}
	tables = append(tables, meta)

	matrixes, err := filepath.Glob(filepath.Join(dir, "*.cct*"))
	if err != nil {
		return nil, pfx.Err(err)
	}
	for _, path := range matrixes {
		log.Println("Loading", filepath.Base(path))
		t, err := cctparser.ParseFile(path, cctparser.Options{Kind: tabular.Omics, Transpose: true})
		if err != nil {
			return nil, pfx.Err(err)
		}
		tables = append(tables, t)
	}

	binaries, err := filepath.Glob(filepath.Join(dir, "*.cbt*"))
	if err != nil {
		return nil, pfx.Err(err)
	}
	for _, path := range binaries {
		log.Println("Loading", filepath.Base(path))
		t, err := cctparser.ParseFile(path, cctparser.Options{Kind: tabular.BinaryMutation, Transpose: true})
		if err != nil {
			return nil, pfx.Err(err)
		}
		tables = append(tables, t)
	}

	var records []mutation.Record
	if lf.maf != "" {
		parser, err := mafparser.New(lf.mafLayout)
		if err != nil {
			return nil, err
		}
		log.Println("Loading", lf.maf)
		records, err = parser.ParseFile(filepath.Join(dir, lf.maf))
		if err != nil {
			return nil, pfx.Err(err)
		}
	}

	var defs map[string]string
	if lf.definitions != "" {
		defs, err = cctparser.ParseDefinitionsFile(filepath.Join(dir, lf.definitions))
		if err != nil {
			return nil, pfx.Err(err)
		}
	}

	tumorCount := lf.tumorCount
	if tumorCount == 0 {
		// Without an explicit count, every metadata row whose key the
		// status rule calls Tumor contributes a patient mapping.
		for _, k := range meta.Keys() {
			if rule(k) == sampleid.Tumor {
				tumorCount++
			} else {
				break
			}
		}
	}

	return cohort.New(cohort.Config{
		Name:             strings.TrimSuffix(filepath.Base(dir), "/"),
		Tables:           tables,
		MetadataTable:    "clinical",
		PatientIDColumn:  lf.patientCol,
		TumorSampleCount: tumorCount,
		Status:           rule,
		AlignTables:      lf.align,
		LedgerName:       "somatic_mutation",
		LedgerRecords:    records,
		Definitions:      defs,
	})
}
