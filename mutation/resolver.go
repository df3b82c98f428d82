package mutation

import (
	"fmt"
	"sort"
)

// AmbiguousMutationError reports a scalar resolution whose tie-break is
// itself ambiguous: two records share the top severity and the same
// location but disagree on the mutation type.
type AmbiguousMutationError struct {
	Sample   string
	Gene     string
	Location string
	Types    []string
}

func (e AmbiguousMutationError) Error() string {
	return fmt.Sprintf("ambiguous top-severity mutations for sample %q gene %q at %q: %v",
		e.Sample, e.Gene, e.Location, e.Types)
}

// Resolved is the list-mode result for one (sample, gene) pair: the
// distinct mutation types and the distinct locations, ordered by severity
// descending then location ascending. Nothing is dropped.
type Resolved struct {
	Types     []string
	Locations []string
}

// Resolver collapses the records of one (sample, gene) pair.
type Resolver struct {
	Hierarchy Hierarchy
}

// NewResolver returns a resolver over h, or over DefaultHierarchy when h
// is nil.
func NewResolver(h Hierarchy) Resolver {
	if h == nil {
		h = DefaultHierarchy
	}

	return Resolver{Hierarchy: h}
}

// Resolve is list mode: it returns the full evidence set for the pair.
// ok is false when there are no records (no mutation found), which is a
// policy decision for the caller, not an error.
func (r Resolver) Resolve(records []Record) (res Resolved, ok bool) {
	if len(records) == 0 {
		return Resolved{}, false
	}

	ordered := r.order(records)

	seenType := make(map[string]bool)
	seenLoc := make(map[string]bool)
	for _, rec := range ordered {
		if !seenType[rec.Type] {
			seenType[rec.Type] = true
			res.Types = append(res.Types, rec.Type)
		}
		if !seenLoc[rec.Location] {
			seenLoc[rec.Location] = true
			res.Locations = append(res.Locations, rec.Location)
		}
	}

	return res, true
}

// ResolveScalar is scalar mode: the highest-severity record wins, with
// ties broken by the lexicographically-first location. Scalar mode drops
// evidence and exists only for the single-value comparison path; every
// annotation path uses Resolve. ok is false when there are no records.
func (r Resolver) ResolveScalar(records []Record) (rec Record, ok bool, err error) {
	if len(records) == 0 {
		return Record{}, false, nil
	}

	ordered := r.order(records)
	top := ordered[0]

	for _, other := range ordered[1:] {
		if r.Hierarchy.Rank(other.Type) != r.Hierarchy.Rank(top.Type) || other.Location != top.Location {
			break
		}
		if other.Type != top.Type {
			return Record{}, false, AmbiguousMutationError{
				Sample:   top.Sample,
				Gene:     top.Gene,
				Location: top.Location,
				Types:    []string{top.Type, other.Type},
			}
		}
	}

	return top, true, nil
}

// order sorts a copy of the records by severity descending, then location
// ascending, then type ascending, so repeated resolutions of the same
// multiset always agree.
func (r Resolver) order(records []Record) []Record {
	out := append([]Record(nil), records...)
	sort.SliceStable(out, func(i, j int) bool {
		ri, rj := r.Hierarchy.Rank(out[i].Type), r.Hierarchy.Rank(out[j].Type)
		if ri != rj {
			return ri > rj
		}
		if out[i].Location != out[j].Location {
			return out[i].Location < out[j].Location
		}
		return out[i].Type < out[j].Type
	})

	return out
}
