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

// Iterator is a bidirectional cursor over the nodes of a List. It is a small
// value: copying an Iterator copies the reference, and two iterators are equal
// when they reference the same node. The zero Iterator references nothing.
type Iterator[T any] struct {
	n *node[T]
}

// Value returns the element under the cursor. The end position is
// dereferenceable and yields the zero value.
func (it Iterator[T]) Value() (T, error) {
	var zero T
	switch {
	case it.n == nil:
		return zero, errors.Wrap(ErrEmptyIterator, "Value")
	case it.n.owner == nil:
		return zero, errors.Wrap(ErrInvalidIterator, "Value")
	}
	return it.n.value, nil
}

// Set replaces the element under the cursor.
func (it Iterator[T]) Set(v T) error {
	switch {
	case it.n == nil:
		return errors.Wrap(ErrEmptyIterator, "Set")
	case it.n.owner == nil || it.n.sentinel:
		return errors.Wrap(ErrInvalidIterator, "Set")
	}
	it.n.value = v
	return nil
}

// Next returns the cursor advanced by one. Advancing past the end position
// stays at the end.
func (it Iterator[T]) Next() Iterator[T] {
	if it.n == nil || it.n.sentinel || it.n.next == nil {
		return it
	}
	return Iterator[T]{n: it.n.next}
}

// Prev returns the cursor moved back by one. The end position steps back to
// the last element, and the first element steps back to the end position.
func (it Iterator[T]) Prev() Iterator[T] {
	if it.n == nil || it.n.prev == nil {
		return it
	}
	return Iterator[T]{n: it.n.prev}
}

// Equal reports whether it and other reference the same node.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.n == other.n
}

// IsEnd reports whether the cursor is at a past-the-end position.
func (it Iterator[T]) IsEnd() bool {
	return it.n != nil && it.n.sentinel
}
