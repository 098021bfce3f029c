package goterm

import (
	"github.com/biogo/store/llrb"
	"github.com/grailbio/goenrich/interval"
)

type term string

// Compare implements llrb.Comparable.
func (t term) Compare(c llrb.Comparable) int {
	t2 := c.(term)
	switch {
	case t < t2:
		return -1
	case t > t2:
		return 1
	}
	return 0
}

// Set is an ordered collection of distinct GO terms.  A Set owns its strings;
// it is not affected by later changes to the records it was built from.
type Set struct {
	tree llrb.Tree
}

// NewSet returns a set holding the given terms.
func NewSet(terms ...string) *Set {
	s := &Set{}
	for _, t := range terms {
		s.Add(t)
	}
	return s
}

// Extract returns the union of the terms carried by records.
func Extract(records []interval.Record) *Set {
	s := &Set{}
	for i := range records {
		for _, t := range records[i].Terms {
			s.Add(t)
		}
	}
	return s
}

// Add inserts t.  Adding a term that is already present is a no-op, as is
// adding interval.AnyTerm.
func (s *Set) Add(t string) {
	if t == interval.AnyTerm {
		return
	}
	if s.tree.Get(term(t)) != nil {
		return
	}
	s.tree.Insert(term(t))
}

// Contains reports whether t is in the set.
func (s *Set) Contains(t string) bool {
	return s.tree.Get(term(t)) != nil
}

// Len returns the number of terms.
func (s *Set) Len() int {
	return s.tree.Len()
}

// Terms returns the terms in ascending order.
func (s *Set) Terms() []string {
	terms := make([]string, 0, s.tree.Len())
	s.tree.Do(func(c llrb.Comparable) bool {
		terms = append(terms, string(c.(term)))
		return false
	})
	return terms
}

// CountWithTerm returns the number of records carrying t.
func CountWithTerm(records []interval.Record, t string) int {
	n := 0
	for i := range records {
		if records[i].HasTerm(t) {
			n++
		}
	}
	return n
}
