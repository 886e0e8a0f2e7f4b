// Copyright 2014 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package pma implements an ordered set of comparable keys backed by a
// Packed Memory Array (PMA): a sorted sequence stored in a single
// contiguous slice with deliberate gaps, maintained by local rebalances
// that keep the density of each region within depth-parameterized
// thresholds.
//
// Unlike a tree-based ordered container, a PMA never allocates a node:
// insertion, deletion and ordered traversal all walk a single flat slice.
// Gaps absorb local insertions without shifting the whole array, and a
// rebalance only touches the smallest window whose density has drifted out
// of bounds, growing or shrinking the backing slice only at the root.
//
// This implementation is designed to be a drop-in ordered-set companion to
// [PMA.All]'s range-over-func iteration and mirrors the dual API of other
// ordered containers in this vein: [New] and [NewOrdered] build the
// comparator-driven engine directly, while [OrderedSet] wraps it for types
// that implement [Item] themselves.  Unlike a B-tree, it currently doesn't
// support duplicate keys or range iteration narrower than the whole
// sequence.
package pma

// Less reports whether a sorts strictly before b. It must implement a
// strict weak ordering; if !less(a, b) && !less(b, a), a and b are treated
// as equal, and the set can hold at most one of them.
type Less[T any] func(a, b T) bool

// DefaultLeafSize is a leaf window width to pass to [New], [NewOrdered]
// or [NewOrderedSet], which take the width as an argument; the cmd/pma
// driver uses it. Leaves are the smallest window the rebalancer operates
// on; 8 matches the constant used throughout the packed-memory-array
// literature this package implements.
const DefaultLeafSize = 8

// PMA is an ordered set of keys of type T, backed by a packed memory
// array. The zero value is not usable; construct one with [New] or
// [NewOrdered].
//
// A PMA is not safe for concurrent use by multiple goroutines without
// external synchronization. A mutation invalidates any iterator returned
// by a prior call to [PMA.All].
type PMA[T any] struct {
	less     Less[T]
	leafSize int
	keys     []T
	occupied []bool
	count    int
}

// New constructs an empty PMA with the given leaf window size and
// comparator. leafSize must be positive.
func New[T any](leafSize int, less Less[T]) *PMA[T] {
	if leafSize <= 0 {
		panic("pma: leafSize must be positive")
	}
	if less == nil {
		panic("pma: less must not be nil")
	}
	size := leafSize * 2
	return &PMA[T]{
		less:     less,
		leafSize: leafSize,
		keys:     make([]T, size),
		occupied: make([]bool, size),
	}
}

// NewOrdered constructs an empty PMA over an ordered type, using its
// natural '<' ordering as the comparator.
func NewOrdered[T Ordered](leafSize int) *PMA[T] {
	return New[T](leafSize, Less[T](natural[T]))
}

// Len returns the number of keys currently held in the set.
func (p *PMA[T]) Len() int {
	return p.count
}

// Insert adds key to the set. If an equal key is already present, Insert
// is a no-op: the set never holds duplicates under the comparator's
// notion of equality.
func (p *PMA[T]) Insert(key T) {
	i := p.indexOf(key)
	lb, le := p.leafWindow(i)
	count := p.countItems(lb, le) + 1
	_, upper := p.thresholds(p.treeHeight())
	density := float64(count) / float64(p.leafSize)
	if density > upper {
		p.scan(lb, le, count, p.treeHeight()-1)
		i = p.indexOf(key)
	}
	p.place(key, i)
}

// Erase removes key from the set. It is a no-op if key is not present.
func (p *PMA[T]) Erase(key T) {
	i := p.indexOf(key)
	if !p.occupied[i] || !p.equal(p.keys[i], key) {
		return
	}
	var zero T
	p.keys[i] = zero
	p.occupied[i] = false
	p.count--

	lb, le := p.leafWindow(i)
	count := p.countItems(lb, le)
	lower, _ := p.thresholds(p.treeHeight())
	density := float64(count) / float64(p.leafSize)
	if density < lower {
		p.scan(lb, le, count, p.treeHeight()-1)
	}
}

// Contains reports whether key is present in the set.
func (p *PMA[T]) Contains(key T) bool {
	i := p.indexOf(key)
	return p.occupied[i] && p.equal(p.keys[i], key)
}

// Successor returns the smallest key strictly greater than key, and true.
// If no such key exists, it returns the zero value of T and false.
func (p *PMA[T]) Successor(key T) (T, bool) {
	i := p.indexOf(key)
	n := len(p.keys)
	for i < n && (!p.occupied[i] || !p.less(key, p.keys[i])) {
		i++
	}
	if i >= n {
		var zero T
		return zero, false
	}
	return p.keys[i], true
}

func (p *PMA[T]) leafWindow(i int) (begin, end int) {
	begin = (i / p.leafSize) * p.leafSize
	return begin, begin + p.leafSize
}

// place writes key into the slot at i, making room for it if i is already
// occupied by a different key. It assumes i is the position indexOf(key)
// would return and that any leaf-overflow rebalance has already happened.
func (p *PMA[T]) place(key T, i int) {
	if !p.occupied[i] {
		p.keys[i] = key
		p.occupied[i] = true
		p.count++
		return
	}
	if p.equal(p.keys[i], key) {
		return
	}

	gap, onRight := p.closestGap(i)
	if onRight && p.less(p.keys[i], key) {
		i++
	} else if !onRight && p.less(key, p.keys[i]) {
		i--
	}
	if onRight {
		p.shiftRight(i, gap)
	} else {
		p.shiftLeft(i, gap)
	}
	p.keys[i] = key
	p.occupied[i] = true
	p.count++
}

func (p *PMA[T]) shiftRight(from, to int) {
	for to > from {
		p.keys[to], p.keys[to-1] = p.keys[to-1], p.keys[to]
		p.occupied[to], p.occupied[to-1] = p.occupied[to-1], p.occupied[to]
		to--
	}
}

func (p *PMA[T]) shiftLeft(from, to int) {
	for to < from {
		p.keys[to], p.keys[to+1] = p.keys[to+1], p.keys[to]
		p.occupied[to], p.occupied[to+1] = p.occupied[to+1], p.occupied[to]
		to++
	}
}

func (p *PMA[T]) equal(a, b T) bool {
	return !p.less(a, b) && !p.less(b, a)
}

func (p *PMA[T]) countItems(begin, end int) int {
	count := 0
	for i := begin; i < end; i++ {
		if p.occupied[i] {
			count++
		}
	}
	return count
}
