// Package freqlib counts lemma occurrences for a single run.
package freqlib

import "sort"

// KV is a lemma with its count.
type KV struct {
	Key   string
	Value int
}

// Table maps lemmas to counts. It remembers the order in which lemmas were
// first seen so that sorting is reproducible.
type Table struct {
	counts map[string]int
	order  []string
	total  int
}

// New returns an empty table.
func New() *Table {
	return &Table{counts: make(map[string]int)}
}

// Add counts one occurrence of word.
func (t *Table) Add(word string) {
	if _, ok := t.counts[word]; !ok {
		t.order = append(t.order, word)
	}
	t.counts[word]++
	t.total++
}

// Count returns the count of word, zero when it was never added.
func (t *Table) Count(word string) int {
	return t.counts[word]
}

// Total is the number of accepted tokens, the sum of all counts.
func (t *Table) Total() int {
	return t.total
}

// Unique is the number of distinct lemmas.
func (t *Table) Unique() int {
	return len(t.counts)
}

// Map returns a copy of the counts.
func (t *Table) Map() map[string]int {
	m := make(map[string]int, len(t.counts))
	for k, v := range t.counts {
		m[k] = v
	}
	return m
}

// Sorted lists the entries by count, highest first. Entries with equal
// counts keep their first-seen order.
func (t *Table) Sorted() []KV {
	ss := make([]KV, 0, len(t.order))
	for _, k := range t.order {
		ss = append(ss, KV{k, t.counts[k]})
	}

	sort.SliceStable(ss, func(i, j int) bool {
		return ss[i].Value > ss[j].Value
	})

	return ss
}
