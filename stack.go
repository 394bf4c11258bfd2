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

// Stack is a LIFO view over a Chain: elements are pushed to and popped from
// the chain's tail.
type Stack[T any] struct {
	c Chain[T]
}

// NewStack returns a stack holding items, the last of which is on top.
func NewStack[T any](items ...T) *Stack[T] {
	s := &Stack[T]{}
	for _, v := range items {
		s.c.Push(v)
	}
	return s
}

func (s *Stack[T]) Len() int    { return s.c.Len() }
func (s *Stack[T]) Empty() bool { return s.c.Empty() }
func (s *Stack[T]) Push(v T)    { s.c.Push(v) }

// Top returns the most recently pushed element.
func (s *Stack[T]) Top() (T, error) {
	v, ok := s.c.last()
	if !ok {
		return v, errors.Wrap(ErrEmptyStack, "Top")
	}
	return v, nil
}

// Pop removes the top element.
func (s *Stack[T]) Pop() error {
	if s.c.Empty() {
		return errors.Wrap(ErrEmptyStack, "Pop")
	}
	return s.c.Pop()
}

// Swap exchanges the contents of s and other.
func (s *Stack[T]) Swap(other *Stack[T]) { s.c.Swap(&other.c) }

// Clone returns a deep copy of s.
func (s *Stack[T]) Clone() *Stack[T] {
	return &Stack[T]{c: *s.c.Clone()}
}
