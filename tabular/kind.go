package tabular

// Kind tags a table with the contract it obeys. The tag is fixed at
// construction and routes kind-gated operations; string allow-lists are
// never consulted.
type Kind int

const (
	KindUnknown Kind = iota

	// Omics is a wide matrix of sample x molecular feature measurements.
	Omics

	// Metadata is a wide matrix of sample x clinical or experimental
	// attribute.
	Metadata

	// MutationLedger is a long-form table of individual mutation call
	// records, with zero or more records per (sample, gene).
	MutationLedger

	// BinaryMutation is a wide 0/1 matrix of sample x mutation site.
	BinaryMutation
)

func (k Kind) String() string {
	switch k {
	case Omics:
		return "omics"
	case Metadata:
		return "metadata"
	case MutationLedger:
		return "mutation_ledger"
	case BinaryMutation:
		return "binary_mutation"
	}

	return "unknown"
}

// Kinded is anything carrying a table identity: a name for diagnostics and
// a Kind for gate checks. Both *Table and the mutation ledger satisfy it.
type Kinded interface {
	Name() string
	Kind() Kind
}
