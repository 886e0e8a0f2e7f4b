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

// indexOf returns a slot index i such that either items[i] is occupied
// and equal to target, or i is a plausible insertion neighborhood: a
// position where target could be placed without violating sort order
// given its surrounding occupied neighbors.
//
// This is an internal contract, not a public operation: its exact
// fall-through behavior (which slot it clamps to when the set is empty,
// or when a scanned window holds no occupied slots) is only meaningful to
// the callers in this package.
func (p *PMA[T]) indexOf(target T) int {
	low, high := 0, len(p.keys)-1
	for low <= high {
		mid := low + (high-low)/2
		m := mid
		for m <= high && !p.occupied[m] {
			m++
		}
		if m > high {
			m = mid
			for m >= low && !p.occupied[m] {
				m--
			}
			if m < low {
				return low
			}
		}

		switch {
		case p.less(p.keys[m], target):
			low = m + 1
		case p.less(target, p.keys[m]):
			high = m - 1
		default:
			return m
		}
	}
	if low >= len(p.keys) {
		return len(p.keys) - 1
	}
	return low
}

// closestGap returns the nearest empty slot to index, scanning outward in
// both directions, and reports whether it lies to the right. Ties favor
// the right.
func (p *PMA[T]) closestGap(index int) (gap int, onRight bool) {
	n := len(p.keys)
	right := index + 1
	for right < n && p.occupied[right] {
		right++
	}
	left := index - 1
	for left >= 0 && p.occupied[left] {
		left--
	}

	switch {
	case left < 0:
		return right, true
	case right >= n:
		return left, false
	default:
		onRight = right-index <= index-left
		if onRight {
			return right, true
		}
		return left, false
	}
}
