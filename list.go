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

import (
	"cmp"
	"fmt"
	"iter"
	"math"
	"unsafe"

	"github.com/pkg/errors"
)

// List is a doubly linked list. Internally the elements are closed into a
// ring by a sentinel node, so that the sentinel is both the next node of the
// last element and the previous node of the first. The sentinel is the
// past-the-end position returned by End; it is never counted by Len.
//
// Unlike the zero Chain, a List must be created with New, NewWithSize or From
// before use.
type List[T cmp.Ordered] struct {
	// chain keeps head, tail and count. Once the ring is closed the chain's
	// own Push and Pop must not be used on it.
	chain   Chain[T]
	end     *node[T]
	metrics *Metrics
}

// New returns an empty list.
func New[T cmp.Ordered](opts ...Option) *List[T] {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	return &List[T]{end: newSentinel[T](), metrics: c.metrics}
}

// NewWithSize returns a list of n zero values.
func NewWithSize[T cmp.Ordered](n int, opts ...Option) (*List[T], error) {
	l := New[T](opts...)
	if n < 0 || n >= l.MaxSize() {
		return nil, errors.Wrapf(ErrOutOfRange, "NewWithSize(%d)", n)
	}
	var zero T
	for i := 0; i < n; i++ {
		l.PushFront(zero)
	}
	return l, nil
}

// From returns a list holding items in order.
func From[T cmp.Ordered](items ...T) *List[T] {
	l := New[T]()
	for _, v := range items {
		l.chain.Push(v)
	}
	l.closeRing()
	return l
}

// closeRing adopts the nodes of a freshly loaded open chain into the ring.
func (l *List[T]) closeRing() {
	if l.chain.count == 0 {
		return
	}
	for n := l.chain.head; n != nil; n = n.next {
		n.owner = l.end
	}
	l.chain.head.prev = l.end
	l.chain.tail.next = l.end
	l.end.next = l.chain.head
	l.end.prev = l.chain.tail
}

// Clone returns a deep copy of l sharing no nodes with it.
func (l *List[T]) Clone() *List[T] {
	out := New[T](WithMetrics(l.metrics))
	for n := l.end.next; n != l.end; n = n.next {
		out.PushBack(n.value)
	}
	return out
}

// Move returns a list that took over every node of l. l is left empty with
// a new sentinel and can be used again.
func (l *List[T]) Move() *List[T] {
	out := &List[T]{chain: l.chain, end: l.end, metrics: l.metrics}
	l.chain = Chain[T]{}
	l.end = newSentinel[T]()
	return out
}

// MoveFrom releases the elements of l and takes over every node of src, which
// is left empty with a new sentinel.
func (l *List[T]) MoveFrom(src *List[T]) error {
	if src == l {
		return errors.Wrap(ErrInvalidSelfOperation, "MoveFrom")
	}
	l.Clear()
	l.chain, l.end = src.chain, src.end
	src.chain = Chain[T]{}
	src.end = newSentinel[T]()
	return nil
}

// Len returns the number of elements. The sentinel is not counted.
func (l *List[T]) Len() int { return l.chain.count }

// Empty reports whether the list holds no elements.
func (l *List[T]) Empty() bool { return l.chain.count == 0 }

// MaxSize is the theoretical element limit: the address space divided by
// twice the footprint of a node.
func (l *List[T]) MaxSize() int {
	n := ^uintptr(0) / (2 * unsafe.Sizeof(node[T]{}))
	if n > math.MaxInt {
		return math.MaxInt
	}
	return int(n)
}

// Front returns the first element. An empty list returns the zero value held
// by the sentinel instead of failing.
func (l *List[T]) Front() T {
	if l.chain.head == nil {
		return l.end.value
	}
	return l.chain.head.value
}

// Back returns the last element, or the sentinel's zero value when empty.
func (l *List[T]) Back() T {
	if l.chain.tail == nil {
		return l.end.value
	}
	return l.chain.tail.value
}

// Begin returns a cursor at the first element, or End when the list is empty.
func (l *List[T]) Begin() Iterator[T] {
	if l.chain.head == nil {
		return Iterator[T]{n: l.end}
	}
	return Iterator[T]{n: l.chain.head}
}

// End returns the past-the-end cursor.
func (l *List[T]) End() Iterator[T] {
	return Iterator[T]{n: l.end}
}

func (l *List[T]) newNode(v T) *node[T] {
	l.metrics.add(nodeAlloc, 1)
	return &node[T]{value: v}
}

// owns reports whether n is a node of this ring, sentinel included.
func (l *List[T]) owns(n *node[T]) bool {
	return n != nil && n.owner == l.end
}

// linkBefore links n into the ring just before at.
func (l *List[T]) linkBefore(n, at *node[T]) {
	n.prev = at.prev
	n.next = at
	at.prev.next = n
	at.prev = n
	n.owner = l.end
	l.chain.count++
	l.syncEnds()
}

// unlink takes n out of the ring and detaches it so that stale cursors to it
// are rejected.
func (l *List[T]) unlink(n *node[T]) {
	n.prev.next = n.next
	n.next.prev = n.prev
	n.next, n.prev, n.owner = nil, nil, nil
	l.chain.count--
	l.syncEnds()
}

func (l *List[T]) syncEnds() {
	if l.chain.count == 0 {
		l.chain.head, l.chain.tail = nil, nil
		l.end.next, l.end.prev = l.end, l.end
		return
	}
	l.chain.head, l.chain.tail = l.end.next, l.end.prev
}

// PushFront inserts v before the first element.
func (l *List[T]) PushFront(v T) {
	l.linkBefore(l.newNode(v), l.end.next)
}

// PushBack inserts v after the last element.
func (l *List[T]) PushBack(v T) {
	l.linkBefore(l.newNode(v), l.end)
}

// PopFront removes the first element.
func (l *List[T]) PopFront() error {
	if l.chain.count == 0 {
		return errors.Wrap(ErrEmptyList, "PopFront")
	}
	l.unlink(l.chain.head)
	l.metrics.add(nodeFree, 1)
	return nil
}

// PopBack removes the last element.
func (l *List[T]) PopBack() error {
	if l.chain.count == 0 {
		return errors.Wrap(ErrEmptyList, "PopBack")
	}
	l.unlink(l.chain.tail)
	l.metrics.add(nodeFree, 1)
	return nil
}

// Insert inserts v before pos and returns a cursor to it. Inserting into an
// empty list always inserts at the front, whatever pos is.
func (l *List[T]) Insert(pos Iterator[T], v T) (Iterator[T], error) {
	if l.chain.count == 0 {
		l.PushFront(v)
		return Iterator[T]{n: l.chain.head}, nil
	}
	if !l.owns(pos.n) {
		return Iterator[T]{}, errors.Wrap(ErrInvalidIterator, "Insert")
	}
	n := l.newNode(v)
	l.linkBefore(n, pos.n)
	return Iterator[T]{n: n}, nil
}

// Erase removes the element at pos. The end position cannot be erased.
func (l *List[T]) Erase(pos Iterator[T]) error {
	if pos.n == nil || pos.n.sentinel || !l.owns(pos.n) {
		return errors.Wrap(ErrInvalidIterator, "Erase")
	}
	switch pos.n {
	case l.chain.head:
		return l.PopFront()
	case l.chain.tail:
		return l.PopBack()
	}
	l.unlink(pos.n)
	l.metrics.add(nodeFree, 1)
	return nil
}

// Clear removes every element.
func (l *List[T]) Clear() {
	for l.chain.count > 0 {
		_ = l.PopFront()
	}
}

// Swap exchanges the contents of l and other, sentinels included, in O(1).
// Cursors keep referencing the same nodes, which now belong to the other list.
func (l *List[T]) Swap(other *List[T]) {
	l.chain.Swap(&other.chain)
	l.end, other.end = other.end, l.end
}

// Reverse reverses the order of the values by swapping them pairwise from both
// ends. Nodes stay in place.
func (l *List[T]) Reverse() {
	left, right := l.chain.head, l.chain.tail
	for i, j := 0, l.chain.count-1; i < j; i, j = i+1, j-1 {
		left.value, right.value = right.value, left.value
		left, right = left.next, right.prev
	}
}

// All iterates the values from front to back.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.end.next; n != l.end; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Backward iterates the values from back to front.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.end.prev; n != l.end; n = n.prev {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Values returns the elements from front to back.
func (l *List[T]) Values() []T {
	out := make([]T, 0, l.chain.count)
	for v := range l.All() {
		out = append(out, v)
	}
	return out
}

// Equal reports whether l and other hold equal elements in the same order.
func (l *List[T]) Equal(other *List[T]) bool {
	if l.chain.count != other.chain.count {
		return false
	}
	a, b := l.end.next, other.end.next
	for a != l.end {
		if a.value != b.value {
			return false
		}
		a, b = a.next, b.next
	}
	return true
}

func (l *List[T]) String() string {
	return fmt.Sprint(l.Values())
}
