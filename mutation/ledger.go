package mutation

import (
	"sort"

	"github.com/maddyras/cptac/tabular"
)

// Ledger is an immutable, indexed collection of mutation records keyed by
// (sample, gene). Its row space is not unique per sample, so it is not a
// tabular.Table; it satisfies tabular.Kinded so kind gates can route it.
type Ledger struct {
	name    string
	byPair  map[tabular.SampleKey]map[string][]Record
	genes   map[string]bool
	samples []tabular.SampleKey
}

// NewLedger indexes the given records. Record sample ids are expected to
// be already normalized to the cohort's sample key space (with NA for
// out-of-map ids); records keyed NA are retained and simply never match a
// real sample.
func NewLedger(name string, records []Record) *Ledger {
	l := &Ledger{
		name:   name,
		byPair: make(map[tabular.SampleKey]map[string][]Record),
		genes:  make(map[string]bool),
	}

	for _, rec := range records {
		key := tabular.SampleKey(rec.Sample)
		genes, ok := l.byPair[key]
		if !ok {
			genes = make(map[string][]Record)
			l.byPair[key] = genes
			l.samples = append(l.samples, key)
		}
		genes[rec.Gene] = append(genes[rec.Gene], rec)
		l.genes[rec.Gene] = true
	}

	sort.Slice(l.samples, func(i, j int) bool { return l.samples[i] < l.samples[j] })

	return l
}

func (l *Ledger) Name() string       { return l.name }
func (l *Ledger) Kind() tabular.Kind { return tabular.MutationLedger }

// Records returns every record for the (sample, gene) pair; nil when the
// pair has none. Callers must not modify the returned slice.
func (l *Ledger) Records(sample tabular.SampleKey, gene string) []Record {
	return l.byPair[sample][gene]
}

// HasGene reports whether any sample carries a record for gene.
func (l *Ledger) HasGene(gene string) bool { return l.genes[gene] }

// Samples returns the distinct sample keys with at least one record,
// ascending.
func (l *Ledger) Samples() []tabular.SampleKey {
	return append([]tabular.SampleKey(nil), l.samples...)
}

// NumRecords counts every record in the ledger.
func (l *Ledger) NumRecords() int {
	n := 0
	for _, genes := range l.byPair {
		for _, recs := range genes {
			n += len(recs)
		}
	}

	return n
}
