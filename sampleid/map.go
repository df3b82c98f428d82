// Package sampleid reconciles the two identifier spaces a cohort uses for
// its rows: stable patient identifiers shared by every draw from one
// subject, and index-derived sample identifiers unique per physical
// sample. The mapping between the two is built once from the cohort's
// metadata table and is the sole authority for cross-referencing them.
package sampleid

import (
	"fmt"

	"github.com/carbocation/pfx"
	"github.com/maddyras/cptac/tabular"
)

// NA is the sentinel sample key substituted for a patient identifier with
// no mapped sample, so a batch link never fails on a single stray id.
const NA = tabular.SampleKey("NA")

// UnknownIdentifierError reports an identifier found in neither the
// patient nor the sample key space.
type UnknownIdentifierError struct {
	ID string
}

func (e UnknownIdentifierError) Error() string {
	return fmt.Sprintf("identifier %q is neither a known patient id nor a known sample id", e.ID)
}

// Map is an immutable patient-to-sample identifier map. Build it once per
// session with NewMap and pass it by reference; it has no mutation API.
type Map struct {
	patientToSample map[string]tabular.SampleKey
	samples         map[tabular.SampleKey]bool
}

// NewMap derives the map from a metadata table: the first tumorCount rows
// pair each row key (the sample id) with the patient id found in
// patientIDColumn. Rows past tumorCount are normal draws of patients
// already mapped, so they extend the known sample space but not the
// patient map. The table's full key set becomes the sample key space.
func NewMap(meta *tabular.Table, patientIDColumn string, tumorCount int) (*Map, error) {
	if meta.Kind() != tabular.Metadata {
		return nil, fmt.Errorf("patient map must be built from a metadata table, not %s table %q", meta.Kind(), meta.Name())
	}

	keys := meta.Keys()
	if tumorCount < 0 || tumorCount > len(keys) {
		return nil, fmt.Errorf("tumor sample count %d out of range for %d rows", tumorCount, len(keys))
	}

	m := &Map{
		patientToSample: make(map[string]tabular.SampleKey, tumorCount),
		samples:         make(map[tabular.SampleKey]bool, len(keys)),
	}

	for _, k := range keys {
		m.samples[k] = true
	}

	for _, k := range keys[:tumorCount] {
		patient, err := meta.StringAt(patientIDColumn, k)
		if err != nil {
			return nil, pfx.Err(err)
		}
		if patient == "" {
			continue
		}
		if _, dup := m.patientToSample[patient]; !dup {
			m.patientToSample[patient] = k
		}
	}

	return m, nil
}

// SampleID normalizes an identifier to the sample key space. A known
// sample key passes through; a known patient id is looked up; anything
// else is an UnknownIdentifierError.
func (m *Map) SampleID(id string) (tabular.SampleKey, error) {
	if m.samples[tabular.SampleKey(id)] {
		return tabular.SampleKey(id), nil
	}
	if s, ok := m.patientToSample[id]; ok {
		return s, nil
	}

	return "", UnknownIdentifierError{ID: id}
}

// SampleIDOrNA is the batch-link form of SampleID: identifiers outside
// both key spaces become the NA sentinel instead of halting the caller.
func (m *Map) SampleIDOrNA(id string) tabular.SampleKey {
	s, err := m.SampleID(id)
	if err != nil {
		return NA
	}

	return s
}

// NumPatients reports how many patient identifiers are mapped.
func (m *Map) NumPatients() int { return len(m.patientToSample) }
