package merge

import (
	"github.com/carbocation/pfx"
	"go.uber.org/zap"

	"github.com/maddyras/cptac/mutation"
	"github.com/maddyras/cptac/sampleid"
	"github.com/maddyras/cptac/tabular"
)

// Annotator joins mutation evidence onto omics tables. It needs the
// cohort's tumor/normal status rule to impute the correct wildtype value
// for samples with no recorded mutation.
type Annotator struct {
	status   sampleid.StatusRule
	resolver mutation.Resolver
	logger   *zap.Logger
}

// NewAnnotator builds an annotator. A nil hierarchy falls back to
// mutation.DefaultHierarchy, and a nil logger discards warnings.
func NewAnnotator(rule sampleid.StatusRule, h mutation.Hierarchy, logger *zap.Logger) *Annotator {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Annotator{
		status:   rule,
		resolver: mutation.NewResolver(h),
		logger:   logger,
	}
}

// AnnotateMutations joins the ledger's records for the requested genes
// onto all or part of the omics table. Each gene contributes a
// <Gene>_Mutation list-valued column holding the distinct mutation types
// found for that sample, and, when showLocation is set, a parallel
// <Gene>_Location column. A sample with no record for a gene gets a
// single-element Wildtype_Tumor or Wildtype_Normal list according to its
// status; the location list for such a sample is empty. A Sample_Status
// column is always appended.
//
// A requested gene with no record anywhere in the ledger is dropped from
// the output with a logged warning; the operation continues, so the
// result can have a narrower column set than requested.
func (an *Annotator) AnnotateMutations(omics *tabular.Table, ledger *mutation.Ledger, genes, omicsGenes []string, showLocation bool) (*tabular.Table, error) {
	if err := Check(OpAnnotateMutations, omics, ledger); err != nil {
		return nil, err
	}

	base, err := selectCols(omics, omicsGenes)
	if err != nil {
		return nil, pfx.Err(err)
	}

	// The gene columns are computed over the omics row set, so the final
	// inner join is the identity on keys: every omics row appears, with
	// wildtype imputed where the ledger is silent.
	keys := base.Keys()

	out, err := tabular.New(omics.Name()+"_"+ledger.Name(), tabular.Omics, keys)
	if err != nil {
		return nil, pfx.Err(err)
	}

	for _, name := range base.ColumnNames() {
		col, _ := base.Column(name)
		if err := out.AddColumn(name, col); err != nil {
			return nil, pfx.Err(err)
		}
	}

	for _, gene := range genes {
		if !ledger.HasGene(gene) {
			an.logger.Warn("no mutation records anywhere for requested gene; dropping its columns",
				zap.String("gene", gene),
				zap.String("ledger", ledger.Name()),
			)
			continue
		}

		types := make([][]string, len(keys))
		locations := make([][]string, len(keys))
		for i, key := range keys {
			res, found := an.resolver.Resolve(ledger.Records(key, gene))
			if !found {
				types[i] = []string{an.wildtype(key)}
				locations[i] = []string{}
				continue
			}
			types[i] = res.Types
			locations[i] = res.Locations
		}

		if err := out.AddStringLists(gene+"_Mutation", types); err != nil {
			return nil, pfx.Err(err)
		}
		if showLocation {
			if err := out.AddStringLists(gene+"_Location", locations); err != nil {
				return nil, pfx.Err(err)
			}
		}
	}

	status := make([]string, len(keys))
	for i, key := range keys {
		status[i] = an.status(key).String()
	}
	if err := out.AddStrings("Sample_Status", status); err != nil {
		return nil, pfx.Err(err)
	}

	return out, nil
}

func (an *Annotator) wildtype(key tabular.SampleKey) string {
	if an.status(key) == sampleid.Normal {
		return mutation.WildtypeNormal
	}

	return mutation.WildtypeTumor
}
