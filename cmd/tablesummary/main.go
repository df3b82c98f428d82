// tablesummary prints the dimensions and per-column summary of one
// measurement matrix, for eyeballing a delivery before merging it.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"github.com/carbocation/pfx"

	"github.com/maddyras/cptac/cctparser"
	"github.com/maddyras/cptac/tabular"
)

var STDOUT = bufio.NewWriterSize(os.Stdout, 4096)

func main() {
	defer STDOUT.Flush()

	var (
		file      string
		kindName  string
		transpose bool
		limit     int
	)
	flag.StringVar(&file, "file", "", "Path to the matrix file (.cct, .cbt, .tsv; .gz accepted)")
	flag.StringVar(&kindName, "kind", "omics", "Table kind: omics, metadata, or binary_mutation")
	flag.BoolVar(&transpose, "transpose", true, "Whether the file is laid out feature-by-sample")
	flag.IntVar(&limit, "limit", 20, "Maximum number of columns to summarize (0 for all)")
	flag.Parse()

	if file == "" {
		flag.PrintDefaults()
		log.Fatalln("Please provide -file")
	}

	kind, err := parseKind(kindName)
	if err != nil {
		log.Fatalln(err)
	}

	t, err := cctparser.ParseFile(file, cctparser.Options{Kind: kind, Transpose: transpose})
	if err != nil {
		log.Fatalln(pfx.Err(err))
	}

	fmt.Fprintf(STDOUT, "%s (%s): %d samples x %d features\n", t.Name(), t.Kind(), t.NumRows(), t.NumCols())

	summaries := tabular.Summarize(t)
	if limit > 0 && len(summaries) > limit {
		summaries = summaries[:limit]
	}

	w := tabwriter.NewWriter(STDOUT, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "column\tn\tmean\tstddev\tmedian")
	for _, s := range summaries {
		fmt.Fprintf(w, "%s\t%d\t%.4g\t%.4g\t%.4g\n", s.Column, s.N, s.Mean, s.StdDev, s.Median)
	}
	if err := w.Flush(); err != nil {
		log.Fatalln(pfx.Err(err))
	}
}

func parseKind(name string) (tabular.Kind, error) {
	for _, k := range []tabular.Kind{tabular.Omics, tabular.Metadata, tabular.BinaryMutation} {
		if k.String() == name {
			return k, nil
		}
	}

	return tabular.KindUnknown, fmt.Errorf("unknown -kind %q", name)
}
