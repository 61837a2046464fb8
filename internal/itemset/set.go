package itemset

import (
	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/sets/hashset"
)

// Set is an insertion-ordered, structurally-deduplicated, destructively
// iterable collection.
type Set struct {
	items  *arraylist.List
	seen   *hashset.Set
	cursor int
}

// New creates an empty set. sizeHint is accepted for symmetry with the
// teacher idiom's preallocating constructors; arraylist grows on its own.
func New(sizeHint int) *Set {
	return &Set{items: arraylist.New(), seen: hashset.New()}
}

func key(e interface{}) string {
	h, err := structhash.Hash(e, 1)
	if err != nil {
		panic(err)
	}
	return h
}

// Add inserts e if no structurally equal value is already present. It
// reports whether e was newly added.
func (s *Set) Add(e interface{}) bool {
	k := key(e)
	if s.seen.Contains(k) {
		return false
	}
	s.seen.Add(k)
	s.items.Add(e)
	return true
}

// Size returns the number of distinct elements.
func (s *Set) Size() int {
	return s.items.Size()
}

// Values returns the elements in insertion order.
func (s *Set) Values() []interface{} {
	return s.items.Values()
}

// IterateOnce begins a destructive worklist pass: Next visits elements by
// index, so elements Added after the pass started (even by the very
// iteration body) are still visited once their turn comes.
func (s *Set) IterateOnce() {
	s.cursor = -1
}

// Next advances to the next element, returning false once the (possibly
// since-grown) set is exhausted.
func (s *Set) Next() bool {
	s.cursor++
	return s.cursor < s.items.Size()
}

// Item returns the element at the current iteration position.
func (s *Set) Item() interface{} {
	v, _ := s.items.Get(s.cursor)
	return v
}

// Each calls fn once for every current element, in insertion order.
func (s *Set) Each(fn func(interface{})) {
	for _, v := range s.items.Values() {
		fn(v)
	}
}

// Copy returns an independent set with the same elements.
func (s *Set) Copy() *Set {
	c := New(0)
	for _, v := range s.items.Values() {
		c.Add(v)
	}
	return c
}

// Subset returns a new set holding every element for which pred holds.
func (s *Set) Subset(pred func(interface{}) bool) *Set {
	c := New(0)
	for _, v := range s.items.Values() {
		if pred(v) {
			c.Add(v)
		}
	}
	return c
}

// FirstMatch returns the first element for which pred holds.
func (s *Set) FirstMatch(pred func(interface{}) bool) (interface{}, bool) {
	for _, v := range s.items.Values() {
		if pred(v) {
			return v, true
		}
	}
	return nil, false
}
