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

import "math"

// scan walks up the window tree from the child window [begin, end),
// which currently holds accumCount occupied slots, until it finds a
// window whose density falls within its threshold, or reaches the root.
// depth is the depth of the *parent* window being considered, one level
// above [begin, end).
//
// On finding an in-range window, scan redistributes it evenly and
// returns. At the root, it grows or shrinks the backing slice before
// redistributing. Otherwise it recurses one level further up.
func (p *PMA[T]) scan(begin, end, accumCount, depth int) {
	width := end - begin
	isLeft := isLeftChild(begin, width)
	sibBegin, sibEnd := siblingWindow(begin, end, isLeft)
	sibCount := p.countItems(sibBegin, sibEnd)

	lower, upper := p.thresholds(depth)
	density := float64(accumCount+sibCount) / float64(2*width)

	if density >= lower && density <= upper {
		parentBegin, parentEnd := parentWindow(begin, end, sibBegin, sibEnd, isLeft)
		buf := p.getItems(parentBegin, parentEnd)
		p.rearrangeItems(parentBegin, parentEnd, buf)
		return
	}

	if depth == 0 {
		buf := p.getItems(0, len(p.keys))
		switch {
		case density > upper:
			p.resize(len(p.keys) * 2)
		case density < lower && len(p.keys) > 2*p.leafSize:
			p.resize(len(p.keys) / 2)
		}
		if len(buf) > 0 {
			p.rearrangeItems(0, len(p.keys), buf)
		}
		return
	}

	parentBegin, parentEnd := parentWindow(begin, end, sibBegin, sibEnd, isLeft)
	p.scan(parentBegin, parentEnd, accumCount+sibCount, depth-1)
}

// getItems extracts the occupied keys from [begin, end) in left-to-right
// (and therefore sorted) order, clearing those slots.
func (p *PMA[T]) getItems(begin, end int) []T {
	buf := make([]T, 0, end-begin)
	var zero T
	for i := begin; i < end; i++ {
		if p.occupied[i] {
			buf = append(buf, p.keys[i])
			p.keys[i] = zero
			p.occupied[i] = false
		}
	}
	return buf
}

// rearrangeItems writes buf's sorted keys back into [begin, end), spaced
// as evenly as possible: buf[j] lands at begin + round(j * k / n), where k
// = end - begin. Positions are strictly increasing because k >= n
// whenever rearrangeItems runs.
func (p *PMA[T]) rearrangeItems(begin, end int, buf []T) {
	n := len(buf)
	if n == 0 {
		return
	}
	k := end - begin
	step := float64(k) / float64(n)
	for j, item := range buf {
		pos := begin + int(math.Round(float64(j)*step))
		p.keys[pos] = item
		p.occupied[pos] = true
	}
}

// resize reallocates the backing slice to newSize, discarding its
// current contents. Callers must immediately repopulate it via
// rearrangeItems with the keys extracted before the resize.
func (p *PMA[T]) resize(newSize int) {
	p.keys = make([]T, newSize)
	p.occupied = make([]bool, newSize)
}
