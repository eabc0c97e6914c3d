package model

import "sort"

// TableEntry is one ranked row of a FrequencyTable.
type TableEntry[K comparable] struct {
	// Key is the grouping key.
	Key K

	// Count is the number of occurrences of the key.
	Count int
}

// FrequencyTable counts occurrences of keys while remembering the order in
// which keys were first seen.
//
// Design decision: Ranking must be deterministic. Counts are sorted in
// descending order and exact ties keep the order in which the keys first
// appeared in the event stream, so the same input always produces the same
// table. A plain map iteration would not give that guarantee, which is why
// the table tracks insertion order explicitly.
type FrequencyTable[K comparable] struct {
	// counts maps each key to its occurrence count.
	counts map[K]int

	// keys holds the distinct keys in first-seen order.
	keys []K
}

// NewFrequencyTable creates an empty FrequencyTable.
func NewFrequencyTable[K comparable]() *FrequencyTable[K] {
	return &FrequencyTable[K]{
		counts: make(map[K]int),
	}
}

// Add records one occurrence of key.
func (t *FrequencyTable[K]) Add(key K) {
	if _, seen := t.counts[key]; !seen {
		t.keys = append(t.keys, key)
	}
	t.counts[key]++
}

// Len returns the number of distinct keys.
func (t *FrequencyTable[K]) Len() int {
	return len(t.keys)
}

// Total returns the sum of all counts.
func (t *FrequencyTable[K]) Total() int {
	var total int
	for _, count := range t.counts {
		total += count
	}
	return total
}

// Count returns the occurrence count of key, or 0 if the key was never added.
func (t *FrequencyTable[K]) Count(key K) int {
	return t.counts[key]
}

// Top returns up to n entries ranked by descending count, ties broken by
// first-seen order. If n is negative or at least Len, every distinct key is
// returned exactly once. Truncation only shortens the ranked slice; it never
// changes the order or counts of the retained entries.
func (t *FrequencyTable[K]) Top(n int) []TableEntry[K] {
	entries := make([]TableEntry[K], 0, len(t.keys))
	for _, key := range t.keys {
		entries = append(entries, TableEntry[K]{Key: key, Count: t.counts[key]})
	}

	// Stable sort preserves first-seen order among equal counts because
	// entries start out in insertion order.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})

	if n >= 0 && n < len(entries) {
		entries = entries[:n]
	}
	return entries
}
