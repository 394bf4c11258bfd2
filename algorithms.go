/*
 * Copyright 2024 Dgraph Labs, Inc. and Contributors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package lsq

import "github.com/pkg/errors"

// Sort orders the values ascending with a bidirectional bubble sort. Each
// round sweeps forward, pushing the largest value to the right boundary, then
// backward, pushing the smallest to the left boundary. Sorting stops as soon
// as a sweep swaps nothing, so a sorted list costs one pass. Values are
// swapped in place; nodes do not move.
func (l *List[T]) Sort() {
	if l.chain.count < 2 {
		return
	}
	left, right := l.chain.head, l.chain.tail
	for left != right {
		swapped := false
		for n := left; n != right; n = n.next {
			if n.value > n.next.value {
				n.value, n.next.value = n.next.value, n.value
				l.metrics.add(sortSwap, 1)
				swapped = true
			}
		}
		l.metrics.add(sortSweep, 1)
		right = right.prev
		if !swapped || left == right {
			return
		}

		swapped = false
		for n := right; n != left; n = n.prev {
			if n.value < n.prev.value {
				n.value, n.prev.value = n.prev.value, n.value
				l.metrics.add(sortSwap, 1)
				swapped = true
			}
		}
		l.metrics.add(sortSweep, 1)
		left = left.next
		if !swapped {
			return
		}
	}
}

// Unique removes every element equal to the element right before it. Only
// runs of consecutive duplicates collapse; equal values further apart stay.
func (l *List[T]) Unique() {
	if l.chain.count < 2 {
		return
	}
	for n := l.chain.head.next; n != l.end; {
		next := n.next
		if n.value == n.prev.value {
			l.unlink(n)
			l.metrics.add(nodeFree, 1)
			l.metrics.add(uniqueDrop, 1)
		}
		n = next
	}
}

// transfer moves the first node of other before at without copying it.
func (l *List[T]) transfer(at *node[T], other *List[T]) {
	n := other.chain.head
	other.unlink(n)
	l.linkBefore(n, at)
	l.metrics.add(spliced, 1)
}

// Merge merges the sorted list other into the sorted list l. An element of l
// is passed over only while it is strictly less than the front of other, so
// on equal values the element coming from other is placed first. other is
// always left empty. Merging a list into itself does nothing.
func (l *List[T]) Merge(other *List[T]) {
	if other == l {
		return
	}
	l.metrics.add(merges, 1)
	if l.chain.count == 0 {
		l.Swap(other)
		return
	}
	at := l.chain.head
	for at != l.end && other.chain.count > 0 {
		if at.value < other.chain.head.value {
			at = at.next
			continue
		}
		l.transfer(at, other)
	}
	for other.chain.count > 0 {
		l.transfer(l.end, other)
	}
}

// Splice moves every element of other, in order, before pos. other is left
// empty. When l is empty the elements are moved in whatever pos is.
func (l *List[T]) Splice(pos Iterator[T], other *List[T]) error {
	if other == l {
		return errors.Wrap(ErrInvalidSelfOperation, "Splice")
	}
	if l.chain.count+other.chain.count >= l.MaxSize() {
		return errors.Wrapf(ErrOutOfRange, "Splice of %d elements into %d",
			other.chain.count, l.chain.count)
	}
	at := l.end
	if l.chain.count > 0 {
		if !l.owns(pos.n) {
			return errors.Wrap(ErrInvalidIterator, "Splice")
		}
		at = pos.n
	}
	for other.chain.count > 0 {
		l.transfer(at, other)
	}
	return nil
}

// Emplace inserts each of args before pos, keeping their order, and returns a
// cursor to the last one inserted. With no args a single zero value is
// inserted.
func (l *List[T]) Emplace(pos Iterator[T], args ...T) (Iterator[T], error) {
	if len(args) == 0 {
		var zero T
		return l.Insert(pos, zero)
	}
	if l.chain.count == 0 {
		pos = l.End()
	} else if !l.owns(pos.n) {
		return Iterator[T]{}, errors.Wrap(ErrInvalidIterator, "Emplace")
	}
	var last Iterator[T]
	for _, v := range args {
		n := l.newNode(v)
		l.linkBefore(n, pos.n)
		last = Iterator[T]{n: n}
	}
	return last, nil
}

// EmplaceBack appends args in order. With no args a single zero value is
// appended.
func (l *List[T]) EmplaceBack(args ...T) {
	if len(args) == 0 {
		var zero T
		l.PushBack(zero)
		return
	}
	for _, v := range args {
		l.PushBack(v)
	}
}

// EmplaceFront prepends args so that they read in their original order at the
// front of the list. With no args a single zero value is prepended.
func (l *List[T]) EmplaceFront(args ...T) {
	if len(args) == 0 {
		var zero T
		l.PushFront(zero)
		return
	}
	for i := len(args) - 1; i >= 0; i-- {
		l.PushFront(args[i])
	}
}
