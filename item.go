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

package pma

import (
	"cmp"
	"iter"
)

// Ordered is the set of types for which the '<' operator works, reused
// here as the constraint for [NewOrdered]'s default comparator.
type Ordered = cmp.Ordered

func natural[T Ordered](a, b T) bool {
	return cmp.Less(a, b)
}

// All returns a range-over-func sequence of the set's keys in ascending
// order. Each range over the sequence walks the slots from the start; a
// mutation of the set during a range invalidates that range.
func (p *PMA[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < len(p.keys); i++ {
			if p.occupied[i] && !yield(p.keys[i]) {
				return
			}
		}
	}
}

// Item is implemented by key types that know how to order themselves,
// for use with [OrderedSet].
type Item[T any] interface {
	// Less reports whether the receiver sorts strictly before other.
	Less(other T) bool
}

// OrderedSet is a convenience wrapper around [PMA] for key types that
// implement [Item], mirroring the split between a comparator-driven
// engine and an interface-driven convenience type.
type OrderedSet[T Item[T]] struct {
	pma *PMA[T]
}

// NewOrderedSet constructs an empty OrderedSet with the given leaf
// window size.
func NewOrderedSet[T Item[T]](leafSize int) *OrderedSet[T] {
	return &OrderedSet[T]{
		pma: New[T](leafSize, func(a, b T) bool { return a.Less(b) }),
	}
}

// Insert adds v to the set; see [PMA.Insert].
func (s *OrderedSet[T]) Insert(v T) { s.pma.Insert(v) }

// Erase removes v from the set; see [PMA.Erase].
func (s *OrderedSet[T]) Erase(v T) { s.pma.Erase(v) }

// Contains reports whether v is present; see [PMA.Contains].
func (s *OrderedSet[T]) Contains(v T) bool { return s.pma.Contains(v) }

// Successor returns the smallest stored key strictly greater than v; see
// [PMA.Successor].
func (s *OrderedSet[T]) Successor(v T) (T, bool) { return s.pma.Successor(v) }

// Len returns the number of keys in the set.
func (s *OrderedSet[T]) Len() int { return s.pma.Len() }

// All returns a single-pass sequence of the set's keys in ascending
// order; see [PMA.All].
func (s *OrderedSet[T]) All() iter.Seq[T] { return s.pma.All() }
