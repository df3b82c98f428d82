package cohort

import (
	"fmt"

	"github.com/carbocation/pfx"
	"go.uber.org/zap"

	"github.com/maddyras/cptac/merge"
	"github.com/maddyras/cptac/mutation"
	"github.com/maddyras/cptac/sampleid"
	"github.com/maddyras/cptac/tabular"
)

// CompareOmics appends selected columns of one wide table to selected
// columns of another, on the intersection of their row keys.
func (c *Cohort) CompareOmics(a, b *tabular.Table, colsA, colsB []string) (*tabular.Table, error) {
	return merge.Compare(a, b, colsA, colsB)
}

// AppendMetadataToOmics joins metadata columns onto all or part of an
// omics table.
func (c *Cohort) AppendMetadataToOmics(meta, omics *tabular.Table, metaCols, omicsCols []string) (*tabular.Table, error) {
	return merge.AnnotateMetadata(meta, omics, metaCols, omicsCols)
}

// AppendMutationsToOmics joins the cohort ledger's records for the
// requested genes onto all or part of an omics table, as list-valued
// evidence columns with wildtype imputation for silent samples.
func (c *Cohort) AppendMutationsToOmics(omics *tabular.Table, genes, omicsGenes []string, showLocation bool) (*tabular.Table, error) {
	if c.ledger == nil {
		return nil, fmt.Errorf("cohort %q has no mutation ledger", c.name)
	}

	return c.annotator.AnnotateMutations(omics, c.ledger, genes, omicsGenes, showLocation)
}

// CompareMutationsFull compares one gene's omics measurements against the
// full mutation evidence for a gene (the same gene when mutationGene is
// empty), keeping every record as a list.
func (c *Cohort) CompareMutationsFull(omics *tabular.Table, omicsGene, mutationGene string) (*tabular.Table, error) {
	if c.ledger == nil {
		return nil, fmt.Errorf("cohort %q has no mutation ledger", c.name)
	}
	if mutationGene == "" {
		mutationGene = omicsGene
	}

	return c.annotator.AnnotateMutations(omics, c.ledger, []string{mutationGene}, []string{omicsGene}, true)
}

// CompareMutations is the scalar comparison path: one gene's omics
// measurements next to a single mutation call per sample. When a sample
// carries several records for the gene, the highest-severity one wins,
// ties broken by the lexicographically-first location; samples without a
// record get the status-matched wildtype value. Scalar resolution drops
// evidence; prefer CompareMutationsFull when the full evidence set
// matters.
func (c *Cohort) CompareMutations(omics *tabular.Table, omicsGene, mutationGene string) (*tabular.Table, error) {
	if c.ledger == nil {
		return nil, fmt.Errorf("cohort %q has no mutation ledger", c.name)
	}
	if mutationGene == "" {
		mutationGene = omicsGene
	}

	if err := merge.Check(merge.OpAnnotateMutations, omics, c.ledger); err != nil {
		return nil, err
	}

	base, err := omics.Select([]string{omicsGene})
	if err != nil {
		return nil, pfx.Err(err)
	}

	if !c.ledger.HasGene(mutationGene) {
		c.logger.Warn("no mutation records anywhere for requested gene; reporting wildtype for every sample",
			zap.String("gene", mutationGene),
			zap.String("ledger", c.ledger.Name()),
		)
	}

	keys := base.Keys()

	out, err := tabular.New(omics.Name()+"_"+c.ledger.Name(), tabular.Omics, keys)
	if err != nil {
		return nil, pfx.Err(err)
	}

	col, _ := base.Column(omicsGene)
	if err := out.AddColumn(omicsGene, col); err != nil {
		return nil, pfx.Err(err)
	}

	calls := make([]string, len(keys))
	status := make([]string, len(keys))
	for i, key := range keys {
		status[i] = c.status(key).String()

		rec, found, err := c.resolver.ResolveScalar(c.ledger.Records(key, mutationGene))
		if err != nil {
			return nil, err
		}
		if !found {
			calls[i] = c.wildtype(key)
			continue
		}
		calls[i] = rec.Type
	}

	if err := out.AddStrings("Mutation", calls); err != nil {
		return nil, pfx.Err(err)
	}
	if err := out.AddStrings("Sample_Status", status); err != nil {
		return nil, pfx.Err(err)
	}

	return out, nil
}

func (c *Cohort) wildtype(key tabular.SampleKey) string {
	if c.status(key) == sampleid.Normal {
		return mutation.WildtypeNormal
	}

	return mutation.WildtypeTumor
}
