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

import "math/bits"

// The window tree is never materialized. A window at depth d covers
// size/2^d contiguous slots; "is this window a left or right child of its
// parent" and "where does its sibling sit" are both pure index arithmetic
// over begin/end offsets, carried out directly by scan (rebalance.go).

// treeHeight returns H, the depth of the leaf windows: size/leafSize is
// always an exact power of two (invariant 3), so H is its integer log2.
func (p *PMA[T]) treeHeight() int {
	return bits.Len(uint(len(p.keys)/p.leafSize)) - 1
}

// thresholds returns the density bounds for a window at the given depth,
// per the schedule lower(d) = 0.5 - 0.25*d/H, upper(d) = 0.75 + 0.25*d/H.
// Depth 0 is the root (tightest bounds); depth H is a leaf (loosest
// bounds).
func (p *PMA[T]) thresholds(depth int) (lower, upper float64) {
	h := float64(p.treeHeight())
	d := float64(depth)
	lower = 0.5 - 0.25*d/h
	upper = 0.75 + 0.25*d/h
	return lower, upper
}

// isLeftChild reports whether the window [begin, begin+width) is the left
// child of its depth-d-1 parent.
func isLeftChild(begin, width int) bool {
	return (begin/width)%2 == 0
}

// siblingWindow returns the same-width window that shares a parent with
// [begin, end): the one to its right if [begin, end) is a left child
// (isLeft), otherwise the one to its left.
func siblingWindow(begin, end int, isLeft bool) (sibBegin, sibEnd int) {
	width := end - begin
	if isLeft {
		return end, end + width
	}
	return begin - width, begin
}

// parentWindow returns the depth-d-1 window covering [begin, end) and its
// sibling [sibBegin, sibEnd).
func parentWindow(begin, end, sibBegin, sibEnd int, isLeft bool) (parentBegin, parentEnd int) {
	if isLeft {
		return begin, sibEnd
	}
	return sibBegin, end
}
