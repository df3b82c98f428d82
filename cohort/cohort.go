// Package cohort ties one loaded dataset together: its tables, its
// patient/sample identifier map, its tumor/normal status rule and its
// term definitions. A Cohort is constructed once per session from
// already-parsed tables and is immutable afterward; all cross-table
// operations go through it so every merge sees the same identifier
// authority.
package cohort

import (
	"fmt"
	"sort"

	"github.com/carbocation/pfx"
	"go.uber.org/zap"

	"github.com/maddyras/cptac/merge"
	"github.com/maddyras/cptac/mutation"
	"github.com/maddyras/cptac/sampleid"
	"github.com/maddyras/cptac/tabular"
)

// Config carries everything a session needs, passed explicitly: no
// package-level state is consulted or created.
type Config struct {
	// Name labels the cohort in diagnostics.
	Name string

	// Tables are the parsed wide tables (omics, metadata, binary
	// mutation), each already tagged with its kind. Names must be unique.
	Tables []*tabular.Table

	// MetadataTable names the metadata table the patient/sample map is
	// derived from (conventionally "clinical").
	MetadataTable string

	// PatientIDColumn is the column of MetadataTable holding patient
	// identifiers.
	PatientIDColumn string

	// TumorSampleCount is the fixed number of leading tumor rows in
	// MetadataTable; only those rows contribute patient map entries.
	TumorSampleCount int

	// Status is the cohort's total tumor/normal rule over sample keys.
	Status sampleid.StatusRule

	// AlignTables reindexes every table to the union of all table keys,
	// ordered tumor draws first, so row sets agree before any merge.
	// Tables named in AlignExclude neither contribute keys nor get
	// reindexed; a followup table with out-of-cohort rows belongs there.
	AlignTables  bool
	AlignExclude []string

	// LedgerName and LedgerRecords describe the somatic mutation ledger.
	// Record sample ids may be patient ids; they are normalized through
	// the patient map at construction, with unmapped ids becoming the NA
	// sentinel rather than failing the batch.
	LedgerName    string
	LedgerRecords []mutation.Record

	// Hierarchy orders mutation severities; nil means
	// mutation.DefaultHierarchy.
	Hierarchy mutation.Hierarchy

	// Definitions maps clinical terms to their definitions.
	Definitions map[string]string

	// Logger receives load progress and merge warnings; nil discards.
	Logger *zap.Logger
}

// Cohort is one loaded dataset and the engine operations over it.
type Cohort struct {
	name      string
	tables    map[string]*tabular.Table
	ledger    *mutation.Ledger
	ids       *sampleid.Map
	status    sampleid.StatusRule
	resolver  mutation.Resolver
	annotator *merge.Annotator
	defs      map[string]string
	logger    *zap.Logger
}

// New builds a session from cfg. The patient/sample map is derived from
// the metadata table's leading tumor rows, and the ledger's sample ids
// are normalized through it.
func New(cfg Config) (*Cohort, error) {
	if cfg.Status == nil {
		return nil, fmt.Errorf("cohort %q: a tumor/normal status rule is required", cfg.Name)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	c := &Cohort{
		name:     cfg.Name,
		tables:   make(map[string]*tabular.Table, len(cfg.Tables)),
		status:   cfg.Status,
		resolver: mutation.NewResolver(cfg.Hierarchy),
		defs:     cfg.Definitions,
		logger:   logger,
	}

	for _, t := range cfg.Tables {
		if _, dup := c.tables[t.Name()]; dup {
			return nil, fmt.Errorf("cohort %q: duplicate table name %q", cfg.Name, t.Name())
		}
		c.tables[t.Name()] = t
		logger.Info("loaded table",
			zap.String("table", t.Name()),
			zap.Stringer("kind", t.Kind()),
			zap.Int("rows", t.NumRows()),
			zap.Int("cols", t.NumCols()),
		)
	}

	meta, ok := c.tables[cfg.MetadataTable]
	if !ok {
		return nil, fmt.Errorf("cohort %q: metadata table %q not among loaded tables", cfg.Name, cfg.MetadataTable)
	}

	// The patient map reads the metadata table's original leading rows,
	// so it is derived before alignment can insert rows.
	ids, err := sampleid.NewMap(meta, cfg.PatientIDColumn, cfg.TumorSampleCount)
	if err != nil {
		return nil, pfx.Err(err)
	}
	c.ids = ids

	if cfg.AlignTables {
		if err := c.align(cfg.AlignExclude); err != nil {
			return nil, pfx.Err(err)
		}
	}

	if len(cfg.LedgerRecords) > 0 {
		linked := make([]mutation.Record, len(cfg.LedgerRecords))
		for i, rec := range cfg.LedgerRecords {
			rec.Sample = string(ids.SampleIDOrNA(rec.Sample))
			linked[i] = rec
		}
		name := cfg.LedgerName
		if name == "" {
			name = "somatic_mutation"
		}
		c.ledger = mutation.NewLedger(name, linked)
		logger.Info("linked mutation ledger",
			zap.String("ledger", name),
			zap.Int("records", c.ledger.NumRecords()),
			zap.Int("samples", len(c.ledger.Samples())),
		)
	}

	c.annotator = merge.NewAnnotator(cfg.Status, cfg.Hierarchy, logger)

	return c, nil
}

// align reindexes every non-excluded table to the union of their keys,
// tumor draws first then ascending within each status. Rows a table
// lacks come back as missing-value markers, so afterwards every aligned
// table shares one row set.
func (c *Cohort) align(exclude []string) error {
	skip := make(map[string]bool, len(exclude))
	for _, name := range exclude {
		skip[name] = true
	}

	tables := make([]*tabular.Table, 0, len(c.tables))
	for _, t := range c.tables {
		tables = append(tables, t)
	}

	keys := sampleid.SortTumorFirst(tabular.Union(tables, exclude...), c.status)

	for name, t := range c.tables {
		if skip[name] {
			continue
		}
		aligned, err := tabular.Reindex(t, keys)
		if err != nil {
			return err
		}
		c.tables[name] = aligned
	}

	c.logger.Info("aligned tables to a common row set",
		zap.Int("rows", len(keys)),
		zap.Int("excluded", len(exclude)),
	)

	return nil
}

func (c *Cohort) Name() string { return c.name }

// Table returns a loaded table by name.
func (c *Cohort) Table(name string) (*tabular.Table, error) {
	t, ok := c.tables[name]
	if !ok {
		return nil, fmt.Errorf("cohort %q: no table %q (have: %v)", c.name, name, c.Tables())
	}

	return t, nil
}

// Tables lists the loaded table names, ascending.
func (c *Cohort) Tables() []string {
	names := make([]string, 0, len(c.tables))
	for name := range c.tables {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Mutations returns the linked somatic mutation ledger, or nil when the
// cohort has none.
func (c *Cohort) Mutations() *mutation.Ledger { return c.ledger }

// IDs returns the cohort's patient/sample identifier map.
func (c *Cohort) IDs() *sampleid.Map { return c.ids }

// SampleStatus resolves a sample key's tumor/normal status under the
// cohort's rule.
func (c *Cohort) SampleStatus(key tabular.SampleKey) sampleid.Status {
	return c.status(key)
}

// Define looks a term up in the cohort's definitions dictionary.
func (c *Cohort) Define(term string) (string, bool) {
	def, ok := c.defs[term]
	return def, ok
}
