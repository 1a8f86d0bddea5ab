package models

import "sort"

// ConflictReport holds the outcome of pairwise conflict detection over a
// selection of courses. Keys are "<code>-<day>-<start>" lookup entries for
// grid highlighting; Descriptions are canonical, deduplicated summaries.
type ConflictReport struct {
	Keys         map[string]struct{}
	Descriptions map[string]struct{}
}

// NewConflictReport returns an empty report.
func NewConflictReport() ConflictReport {
	return ConflictReport{
		Keys:         make(map[string]struct{}),
		Descriptions: make(map[string]struct{}),
	}
}

// HasKey reports whether the given slot key is part of a conflict.
func (r ConflictReport) HasKey(key string) bool {
	_, ok := r.Keys[key]
	return ok
}

// SortedKeys returns the conflict keys in deterministic order.
func (r ConflictReport) SortedKeys() []string {
	return sortedSet(r.Keys)
}

// SortedDescriptions returns the conflict summaries in deterministic order.
func (r ConflictReport) SortedDescriptions() []string {
	return sortedSet(r.Descriptions)
}

func sortedSet(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
