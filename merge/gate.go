// Package merge implements the cross-table join engine: kind-gated
// column-selecting inner joins between wide tables, and annotation of a
// wide omics table with long-form mutation evidence. Every operation is a
// pure function over immutable inputs and returns a freshly constructed
// table or a structured error, never a partial table.
package merge

import (
	"fmt"

	"github.com/maddyras/cptac/tabular"
)

// Operation names a kind-gated merge operation.
type Operation string

const (
	OpCompare           Operation = "compare"
	OpAnnotateMetadata  Operation = "annotate_metadata"
	OpAnnotateMutations Operation = "annotate_mutations"
)

// allowedKinds is the static allow-list: for each operation, the kinds
// each argument slot accepts. Kind routing happens here and nowhere else.
var allowedKinds = map[Operation][][]tabular.Kind{
	OpCompare: {
		{tabular.Omics, tabular.Metadata},
		{tabular.Omics, tabular.Metadata},
	},
	OpAnnotateMetadata: {
		{tabular.Metadata},
		{tabular.Omics},
	},
	OpAnnotateMutations: {
		{tabular.Omics},
		{tabular.MutationLedger},
	},
}

// InvalidTableKindError reports a table offered to an operation that does
// not accept its kind. The operation is aborted before any output exists.
type InvalidTableKindError struct {
	Operation Operation
	TableName string
	TableKind tabular.Kind
	Allowed   []tabular.Kind
}

func (e InvalidTableKindError) Error() string {
	return fmt.Sprintf("%s does not accept %s table %q (accepted kinds: %v)",
		e.Operation, e.TableKind, e.TableName, e.Allowed)
}

// IsAllowed reports whether the operation accepts the given kinds, one
// per argument slot.
func IsAllowed(op Operation, kinds ...tabular.Kind) bool {
	slots, ok := allowedKinds[op]
	if !ok || len(kinds) != len(slots) {
		return false
	}

	for i, k := range kinds {
		if !kindIn(k, slots[i]) {
			return false
		}
	}

	return true
}

// Check gates an operation's arguments, returning an
// InvalidTableKindError for the first offending table. It runs before
// any merge constructs output, so merges are all-or-nothing.
func Check(op Operation, tables ...tabular.Kinded) error {
	slots, ok := allowedKinds[op]
	if !ok {
		return fmt.Errorf("unknown operation %q", op)
	}
	if len(tables) != len(slots) {
		return fmt.Errorf("%s takes %d tables, got %d", op, len(slots), len(tables))
	}

	for i, t := range tables {
		if !kindIn(t.Kind(), slots[i]) {
			return InvalidTableKindError{
				Operation: op,
				TableName: t.Name(),
				TableKind: t.Kind(),
				Allowed:   append([]tabular.Kind(nil), slots[i]...),
			}
		}
	}

	return nil
}

func kindIn(k tabular.Kind, set []tabular.Kind) bool {
	for _, s := range set {
		if s == k {
			return true
		}
	}

	return false
}
