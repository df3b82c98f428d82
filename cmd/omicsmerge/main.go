// omicsmerge loads a cohort directory and runs one cross-table merge,
// writing the joined table as TSV on stdout.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/carbocation/pfx"

	"github.com/maddyras/cptac/tabular"
)

var STDOUT = bufio.NewWriterSize(os.Stdout, 4096)

func main() {
	defer STDOUT.Flush()

	var (
		dir         string
		op          string
		tableA      string
		tableB      string
		colsA       string
		colsB       string
		genes       string
		omicsGenes  string
		hideLoc     bool
		scalar      bool
		loadFlags   loaderFlags
	)

	flag.StringVar(&dir, "dir", "", "Path to the cohort directory")
	flag.StringVar(&op, "op", "compare", "Operation: compare, metadata, or mutations")
	flag.StringVar(&tableA, "a", "", "First table name (metadata table for -op metadata; omics table for -op mutations)")
	flag.StringVar(&tableB, "b", "", "Second table name (unused for -op mutations)")
	flag.StringVar(&colsA, "cols-a", "", "Optional comma-separated columns to keep from the first table")
	flag.StringVar(&colsB, "cols-b", "", "Optional comma-separated columns to keep from the second table")
	flag.StringVar(&genes, "genes", "", "Comma-separated genes to pull mutation records for (-op mutations)")
	flag.StringVar(&omicsGenes, "omics-genes", "", "Optional comma-separated omics columns to keep (-op mutations)")
	flag.BoolVar(&hideLoc, "hide-location", false, "Omit the per-gene location columns (-op mutations)")
	flag.BoolVar(&scalar, "scalar", false, "Resolve each sample to a single highest-severity call instead of the full evidence list (-op mutations, single gene)")
	loadFlags.register()
	flag.Parse()

	if dir == "" {
		flag.PrintDefaults()
		log.Fatalln("Please provide -dir")
	}

	c, err := loadCohort(dir, loadFlags)
	if err != nil {
		log.Fatalln(pfx.Err(err))
	}

	out, err := run(c, op, tableA, tableB, splitList(colsA), splitList(colsB), splitList(genes), splitList(omicsGenes), !hideLoc, scalar)
	if err != nil {
		log.Fatalln(pfx.Err(err))
	}

	if err := tabular.WriteTSV(STDOUT, out); err != nil {
		log.Fatalln(pfx.Err(err))
	}
}

func run(c cohortAPI, op, tableA, tableB string, colsA, colsB, genes, omicsGenes []string, showLocation, scalar bool) (*tabular.Table, error) {
	switch op {
	case "compare":
		a, err := c.Table(tableA)
		if err != nil {
			return nil, err
		}
		b, err := c.Table(tableB)
		if err != nil {
			return nil, err
		}
		return c.CompareOmics(a, b, colsA, colsB)

	case "metadata":
		meta, err := c.Table(tableA)
		if err != nil {
			return nil, err
		}
		omics, err := c.Table(tableB)
		if err != nil {
			return nil, err
		}
		return c.AppendMetadataToOmics(meta, omics, colsA, colsB)

	case "mutations":
		omics, err := c.Table(tableA)
		if err != nil {
			return nil, err
		}
		if scalar {
			if len(genes) != 1 {
				return nil, fmt.Errorf("-scalar takes exactly one gene, got %d", len(genes))
			}
			omicsGene := genes[0]
			if len(omicsGenes) == 1 {
				omicsGene = omicsGenes[0]
			}
			return c.CompareMutations(omics, omicsGene, genes[0])
		}
		return c.AppendMutationsToOmics(omics, genes, omicsGenes, showLocation)
	}

	return nil, fmt.Errorf("unknown -op %q (want compare, metadata, or mutations)", op)
}

// cohortAPI is the slice of *cohort.Cohort this tool uses; tests swap in
// a fake.
type cohortAPI interface {
	Table(name string) (*tabular.Table, error)
	CompareOmics(a, b *tabular.Table, colsA, colsB []string) (*tabular.Table, error)
	AppendMetadataToOmics(meta, omics *tabular.Table, metaCols, omicsCols []string) (*tabular.Table, error)
	AppendMutationsToOmics(omics *tabular.Table, genes, omicsGenes []string, showLocation bool) (*tabular.Table, error)
	CompareMutations(omics *tabular.Table, omicsGene, mutationGene string) (*tabular.Table, error)
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}

	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	return parts
}
