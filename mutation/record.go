// Package mutation holds the long-form somatic mutation model: individual
// call records, the severity hierarchy over mutation types, and the
// resolver that collapses the zero-one-many records a (sample, gene) pair
// can carry into a single analysis-ready value.
package mutation

// Record is one somatic mutation call. A sample can carry zero, one or
// many records for the same gene; that multiplicity is resolved by
// Resolver, never by silently dropping rows.
type Record struct {
	Sample   string `csv:"Sample_ID"`
	Gene     string `csv:"Gene"`
	Type     string `csv:"Mutation"`
	Location string `csv:"Location"`
}

// Standard wildtype values imputed when a sample has no record for a
// queried gene. Absence of a record is evidence of wildtype genotype, not
// a missing measurement, and the qualifier must match the sample's true
// tumor/normal status.
const (
	WildtypeTumor  = "Wildtype_Tumor"
	WildtypeNormal = "Wildtype_Normal"
)
