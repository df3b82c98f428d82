package sampleid

import (
	"sort"
	"strings"

	"github.com/maddyras/cptac/tabular"
)

// Status marks a sample as a tumor or normal draw. Every key in a
// cohort's declared sample space resolves to exactly one status; there is
// no third state.
type Status int

const (
	Tumor Status = iota + 1
	Normal
)

func (s Status) String() string {
	if s == Normal {
		return "Normal"
	}

	return "Tumor"
}

// StatusRule is a total, pure function from sample key to status. The
// cohort declares its rule at load time, based on how the dataset marks
// normal draws in its key scheme.
type StatusRule func(tabular.SampleKey) Status

// BoundaryRule declares that keys sorting after lastTumor are normal
// draws. Cohorts whose sample ids are assigned in order, tumors first
// (S001..S104 tumor, S105.. normal), use this form.
func BoundaryRule(lastTumor tabular.SampleKey) StatusRule {
	return func(k tabular.SampleKey) Status {
		if k > lastTumor {
			return Normal
		}
		return Tumor
	}
}

// SuffixRule declares that keys carrying the marker suffix (conventionally
// ".N") are normal draws.
func SuffixRule(marker string) StatusRule {
	return func(k tabular.SampleKey) Status {
		if strings.HasSuffix(string(k), marker) {
			return Normal
		}
		return Tumor
	}
}

// SortTumorFirst orders keys with tumor draws before normal draws and
// ascending within each status, returning a new slice.
func SortTumorFirst(keys []tabular.SampleKey, rule StatusRule) []tabular.SampleKey {
	out := append([]tabular.SampleKey(nil), keys...)
	sort.SliceStable(out, func(i, j int) bool {
		si, sj := rule(out[i]), rule(out[j])
		if si != sj {
			return si == Tumor
		}
		return out[i] < out[j]
	})

	return out
}

// MarkerLocation says where a dataset's own normal marker sits in its
// patient identifiers.
type MarkerLocation int

const (
	MarkerStart MarkerLocation = iota + 1
	MarkerEnd
)

// NormalSuffix is the standard normal-draw marker, appended to the
// patient id: the normal sample of C3L-00378 is C3L-00378.N.
const NormalSuffix = ".N"

// StandardizeNormalKey rewrites a dataset-specific normal marker (an "N"
// prepended to the id, a "-N" appended, and so on) into the standard
// NormalSuffix form. Keys without the marker pass through unchanged.
func StandardizeNormalKey(k tabular.SampleKey, marker string, loc MarkerLocation) tabular.SampleKey {
	s := string(k)
	switch loc {
	case MarkerStart:
		if strings.HasPrefix(s, marker) {
			return tabular.SampleKey(strings.TrimPrefix(s, marker) + NormalSuffix)
		}
	case MarkerEnd:
		if strings.HasSuffix(s, marker) {
			return tabular.SampleKey(strings.TrimSuffix(s, marker) + NormalSuffix)
		}
	}

	return k
}
