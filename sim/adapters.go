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

package sim

import (
	"math/rand"
	"slices"

	"github.com/dgraph-io/lsq"
	"github.com/pkg/errors"
)

// RunStack pushes and pops n times at random on an lsq.Stack and a slice,
// checking Top, Len and empty-pop errors after every step.
func RunStack(seed int64, n int) error {
	r := rand.New(rand.NewSource(seed))
	s := lsq.NewStack[int]()
	var ref []int
	for i := 1; i <= n; i++ {
		if r.Intn(5) < 3 {
			v := r.Int()
			s.Push(v)
			ref = append(ref, v)
		} else {
			err := s.Pop()
			if len(ref) == 0 {
				if !errors.Is(err, lsq.ErrEmptyStack) {
					return errors.Errorf("stack step %d: pop on empty returned %v", i, err)
				}
			} else {
				if err != nil {
					return errors.Wrapf(err, "stack step %d", i)
				}
				ref = ref[:len(ref)-1]
			}
		}
		if s.Len() != len(ref) {
			return errors.Errorf("stack step %d: len %d, reference has %d", i, s.Len(), len(ref))
		}
		top, err := s.Top()
		switch {
		case len(ref) == 0:
			if !errors.Is(err, lsq.ErrEmptyStack) {
				return errors.Errorf("stack step %d: top on empty returned %v", i, err)
			}
		case err != nil:
			return errors.Wrapf(err, "stack step %d", i)
		case top != ref[len(ref)-1]:
			return errors.Errorf("stack step %d: top %d, reference has %d", i, top, ref[len(ref)-1])
		}
	}
	return nil
}

// RunQueue is RunStack for lsq.Queue, checking Front and Back.
func RunQueue(seed int64, n int) error {
	r := rand.New(rand.NewSource(seed))
	q := lsq.NewQueue[int]()
	var ref []int
	for i := 1; i <= n; i++ {
		if r.Intn(5) < 3 {
			v := r.Int()
			q.Push(v)
			ref = append(ref, v)
		} else {
			err := q.Pop()
			if len(ref) == 0 {
				if !errors.Is(err, lsq.ErrEmptyQueue) {
					return errors.Errorf("queue step %d: pop on empty returned %v", i, err)
				}
			} else {
				if err != nil {
					return errors.Wrapf(err, "queue step %d", i)
				}
				ref = slices.Delete(ref, 0, 1)
			}
		}
		if q.Len() != len(ref) {
			return errors.Errorf("queue step %d: len %d, reference has %d", i, q.Len(), len(ref))
		}
		front, ferr := q.Front()
		back, berr := q.Back()
		if len(ref) == 0 {
			if !errors.Is(ferr, lsq.ErrEmptyQueue) || !errors.Is(berr, lsq.ErrEmptyQueue) {
				return errors.Errorf("queue step %d: empty front/back returned %v, %v", i, ferr, berr)
			}
			continue
		}
		if ferr != nil || berr != nil {
			return errors.Errorf("queue step %d: front/back returned %v, %v", i, ferr, berr)
		}
		if front != ref[0] || back != ref[len(ref)-1] {
			return errors.Errorf("queue step %d: front/back %d/%d, reference has %d/%d",
				i, front, back, ref[0], ref[len(ref)-1])
		}
	}
	return nil
}
