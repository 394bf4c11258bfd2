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

// Queue is a FIFO view over a Chain: elements are pushed at the tail and
// popped from the head.
type Queue[T any] struct {
	c Chain[T]
}

// NewQueue returns a queue holding items, the first of which is at the front.
func NewQueue[T any](items ...T) *Queue[T] {
	q := &Queue[T]{}
	for _, v := range items {
		q.c.Push(v)
	}
	return q
}

func (q *Queue[T]) Len() int    { return q.c.Len() }
func (q *Queue[T]) Empty() bool { return q.c.Empty() }
func (q *Queue[T]) Push(v T)    { q.c.Push(v) }

// Front returns the oldest element.
func (q *Queue[T]) Front() (T, error) {
	v, ok := q.c.first()
	if !ok {
		return v, errors.Wrap(ErrEmptyQueue, "Front")
	}
	return v, nil
}

// Back returns the newest element.
func (q *Queue[T]) Back() (T, error) {
	v, ok := q.c.last()
	if !ok {
		return v, errors.Wrap(ErrEmptyQueue, "Back")
	}
	return v, nil
}

// Pop removes the front element.
func (q *Queue[T]) Pop() error {
	if !q.c.popFront() {
		return errors.Wrap(ErrEmptyQueue, "Pop")
	}
	return nil
}

// Swap exchanges the contents of q and other.
func (q *Queue[T]) Swap(other *Queue[T]) { q.c.Swap(&other.c) }

// Clone returns a deep copy of q.
func (q *Queue[T]) Clone() *Queue[T] {
	return &Queue[T]{c: *q.c.Clone()}
}
