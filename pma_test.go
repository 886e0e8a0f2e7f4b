// Copyright 2014-2022 Google Inc.
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
	"slices"
	"testing"
)

func intRange(s int, reverse bool) []int {
	out := make([]int, s)
	for i := 0; i < s; i++ {
		v := i
		if reverse {
			v = s - i - 1
		}
		out[i] = v
	}
	return out
}

func collect[T any](p *PMA[T]) []T {
	var out []T
	for v := range p.All() {
		out = append(out, v)
	}
	return out
}

func TestInsertContains(t *testing.T) {
	p := NewOrdered[int](4)
	for _, v := range []int{5, 3, 9, 1, 7} {
		p.Insert(v)
	}
	for _, v := range []int{5, 3, 9, 1, 7} {
		if !p.Contains(v) {
			t.Fatalf("expected set to contain %d", v)
		}
	}
	for _, v := range []int{0, 2, 4, 6, 8, 10} {
		if p.Contains(v) {
			t.Fatalf("expected set to not contain %d", v)
		}
	}
}

func TestInsertDuplicateIsNoop(t *testing.T) {
	p := NewOrdered[int](4)
	p.Insert(7)
	p.Insert(7)
	p.Insert(7)
	if got, want := p.Len(), 1; got != want {
		t.Fatalf("Len() = %d, want %d", got, want)
	}
	got := collect(p)
	want := []int{7}
	if !slices.Equal(got, want) {
		t.Fatalf("All() = %v, want %v", got, want)
	}
}

func TestEraseAbsentIsNoop(t *testing.T) {
	p := NewOrdered[int](4)
	p.Insert(1)
	p.Insert(2)
	p.Erase(99)
	if got, want := p.Len(), 2; got != want {
		t.Fatalf("Len() = %d, want %d", got, want)
	}
}

func TestEraseIdempotent(t *testing.T) {
	p := NewOrdered[int](4)
	p.Insert(1)
	p.Erase(1)
	p.Erase(1)
	if p.Contains(1) {
		t.Fatalf("expected 1 to be erased")
	}
	if got, want := p.Len(), 0; got != want {
		t.Fatalf("Len() = %d, want %d", got, want)
	}
}

func TestOrderedTraversalAscending(t *testing.T) {
	p := NewOrdered[int](DefaultLeafSize)
	for _, v := range intRange(50, true) {
		p.Insert(v)
	}
	got := collect(p)
	want := intRange(50, false)
	if !slices.Equal(got, want) {
		t.Fatalf("All() = %v, want %v", got, want)
	}
}

func TestSuccessorScenario(t *testing.T) {
	p := NewOrdered[int](DefaultLeafSize)
	for _, v := range []int{5, 3, 9} {
		p.Insert(v)
	}
	cases := []struct {
		query int
		want  int
		ok    bool
	}{
		{3, 5, true},
		{5, 9, true},
		{9, 0, false},
	}
	for _, c := range cases {
		got, ok := p.Successor(c.query)
		if ok != c.ok {
			t.Fatalf("Successor(%d) ok = %v, want %v", c.query, ok, c.ok)
		}
		if ok && got != c.want {
			t.Fatalf("Successor(%d) = %d, want %d", c.query, got, c.want)
		}
	}
}

func TestSuccessorAfterErase(t *testing.T) {
	p := NewOrdered[int](DefaultLeafSize)
	for i := 0; i < 100; i++ {
		p.Insert(i)
	}
	for i := 0; i < 100; i += 2 {
		p.Erase(i)
	}
	if got, ok := p.Successor(50); !ok || got != 51 {
		t.Fatalf("Successor(50) = (%d, %v), want (51, true)", got, ok)
	}
	// 99 is odd, so it survives the even-number erase and is the largest
	// key left in the set: it has no successor.
	if got, ok := p.Successor(99); ok {
		t.Fatalf("Successor(99) = (%d, %v), want not ok", got, ok)
	}
	// 98 was erased; the next surviving key is 99.
	if got, ok := p.Successor(98); !ok || got != 99 {
		t.Fatalf("Successor(98) = (%d, %v), want (99, true)", got, ok)
	}
}

func TestGrowsOnSustainedInsertion(t *testing.T) {
	p := NewOrdered[int](4)
	initial := len(p.keys)
	for _, v := range intRange(200, false) {
		p.Insert(v)
	}
	if len(p.keys) <= initial {
		t.Fatalf("expected backing slice to grow from %d, got %d", initial, len(p.keys))
	}
	if got, want := p.Len(), 200; got != want {
		t.Fatalf("Len() = %d, want %d", got, want)
	}
	if !slices.Equal(collect(p), intRange(200, false)) {
		t.Fatalf("traversal out of order after growth")
	}
}

func TestShrinksAfterBulkErase(t *testing.T) {
	p := NewOrdered[int](4)
	for _, v := range intRange(200, false) {
		p.Insert(v)
	}
	grown := len(p.keys)
	for _, v := range intRange(180, false) {
		p.Erase(v)
	}
	if len(p.keys) >= grown {
		t.Fatalf("expected backing slice to shrink from %d, got %d", grown, len(p.keys))
	}
	want := intRange(200, false)[180:]
	if !slices.Equal(collect(p), want) {
		t.Fatalf("All() = %v, want %v", collect(p), want)
	}
}

func TestSizeNeverBelowTwoLeaves(t *testing.T) {
	p := NewOrdered[int](4)
	for i := 0; i < 4; i++ {
		p.Insert(i)
		p.Erase(i)
	}
	if got, want := len(p.keys), 2*4; got != want {
		t.Fatalf("len(keys) = %d, want %d (size must never drop below 2*leafSize)", got, want)
	}
}

func TestCustomComparator(t *testing.T) {
	// Descending order: less(a, b) reports a > b.
	p := New[int](4, func(a, b int) bool { return a > b })
	for _, v := range []int{3, 1, 4, 1, 5, 9, 2, 6} {
		p.Insert(v)
	}
	got := collect(p)
	want := []int{9, 6, 5, 4, 3, 2, 1}
	if !slices.Equal(got, want) {
		t.Fatalf("All() = %v, want %v", got, want)
	}
}

type testString string

func (s testString) Less(other testString) bool { return s < other }

func TestOrderedSet(t *testing.T) {
	s := NewOrderedSet[testString](4)
	for _, v := range []testString{"banana", "apple", "cherry"} {
		s.Insert(v)
	}
	var got []testString
	for v := range s.All() {
		got = append(got, v)
	}
	want := []testString{"apple", "banana", "cherry"}
	if !slices.Equal(got, want) {
		t.Fatalf("All() = %v, want %v", got, want)
	}
	if !s.Contains("banana") {
		t.Fatalf("expected set to contain banana")
	}
	s.Erase("banana")
	if s.Contains("banana") {
		t.Fatalf("expected banana to be erased")
	}
}
