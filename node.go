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

// node is a link cell. A node is owned by exactly one container at a time.
type node[T any] struct {
	next, prev *node[T]

	// owner is the sentinel of the ring holding this node. It is nil for
	// nodes of an open Chain and for nodes that have been unlinked.
	owner *node[T]

	// sentinel marks the past-the-end node of a ring. Its value is never
	// written and it is never counted.
	sentinel bool

	value T
}

func newSentinel[T any]() *node[T] {
	s := &node[T]{sentinel: true}
	s.next, s.prev, s.owner = s, s, s
	return s
}
