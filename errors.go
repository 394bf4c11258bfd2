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

// Package lsq provides a generic doubly linked list closed into a ring by a
// sentinel node, together with the open chain it is built from and the stack
// and queue adapters layered on that chain.
//
// None of the containers are safe for concurrent use.
package lsq

import "github.com/pkg/errors"

// Contract violations. Every error returned by this package wraps one of these
// with the name of the failing operation, so callers should compare with
// errors.Is or errors.Cause.
var (
	ErrEmptyContainer       = errors.New("container is empty")
	ErrEmptyList            = errors.New("list is empty")
	ErrEmptyStack           = errors.New("stack is empty")
	ErrEmptyQueue           = errors.New("queue is empty")
	ErrEmptyIterator        = errors.New("iterator references no node")
	ErrInvalidIterator      = errors.New("iterator does not reference an element of this list")
	ErrInvalidSelfOperation = errors.New("operation on itself")
	ErrOutOfRange           = errors.New("maximum size exceeded")
)
