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
	"iter"

	"github.com/pkg/errors"
)

// Chain is an open doubly linked chain supporting only tail append and tail
// removal. It backs Stack and Queue and loads the initial contents of a List.
// The zero value is an empty chain ready to use.
type Chain[T any] struct {
	head, tail *node[T]
	count      int
}

// NewChain returns a chain holding items in order.
func NewChain[T any](items ...T) *Chain[T] {
	c := &Chain[T]{}
	for _, v := range items {
		c.Push(v)
	}
	return c
}

// Len returns the number of elements in the chain.
func (c *Chain[T]) Len() int { return c.count }

// Empty reports whether the chain holds no elements.
func (c *Chain[T]) Empty() bool { return c.count == 0 }

// Push appends v at the tail.
func (c *Chain[T]) Push(v T) {
	n := &node[T]{value: v}
	if c.tail == nil {
		c.head, c.tail = n, n
	} else {
		n.prev = c.tail
		c.tail.next = n
		c.tail = n
	}
	c.count++
}

// Pop removes the tail element.
func (c *Chain[T]) Pop() error {
	if c.count == 0 {
		return errors.Wrap(ErrEmptyContainer, "Pop")
	}
	n := c.tail
	c.tail = n.prev
	if c.tail == nil {
		c.head = nil
	} else {
		c.tail.next = nil
	}
	n.prev = nil
	c.count--
	return nil
}

// popFront removes the head element and reports whether there was one.
func (c *Chain[T]) popFront() bool {
	if c.count == 0 {
		return false
	}
	n := c.head
	c.head = n.next
	if c.head == nil {
		c.tail = nil
	} else {
		c.head.prev = nil
	}
	n.next = nil
	c.count--
	return true
}

func (c *Chain[T]) first() (T, bool) {
	if c.head == nil {
		var zero T
		return zero, false
	}
	return c.head.value, true
}

func (c *Chain[T]) last() (T, bool) {
	if c.tail == nil {
		var zero T
		return zero, false
	}
	return c.tail.value, true
}

// Swap exchanges the contents of c and other in O(1).
func (c *Chain[T]) Swap(other *Chain[T]) {
	c.head, other.head = other.head, c.head
	c.tail, other.tail = other.tail, c.tail
	c.count, other.count = other.count, c.count
}

// Clone returns a deep copy of c.
func (c *Chain[T]) Clone() *Chain[T] {
	out := &Chain[T]{}
	for n := c.head; n != nil; n = n.next {
		out.Push(n.value)
	}
	return out
}

// Move transfers every node of c to a new chain in O(1). c is left empty and
// can be used again.
func (c *Chain[T]) Move() *Chain[T] {
	out := &Chain[T]{}
	out.Swap(c)
	return out
}

// All iterates the chain from head to tail.
func (c *Chain[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := c.head; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Values returns the elements from head to tail.
func (c *Chain[T]) Values() []T {
	out := make([]T, 0, c.count)
	for v := range c.All() {
		out = append(out, v)
	}
	return out
}
