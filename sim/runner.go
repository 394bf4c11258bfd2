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
	"container/list"
	"iter"
	"slices"

	"github.com/dgraph-io/lsq"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Runner applies steps to an lsq.List and to a container/list reference,
// failing on the first step after which the two disagree.
type Runner struct {
	opts  []lsq.Option
	list  *lsq.List[int]
	ref   *list.List
	log   zerolog.Logger
	steps int
}

// NewRunner returns a Runner over an empty list built with opts. Lists created
// for Splice and Merge arguments are built with the same opts, so a shared
// lsq.Metrics sees every node.
func NewRunner(log zerolog.Logger, opts ...lsq.Option) *Runner {
	return &Runner{
		opts: opts,
		list: lsq.New[int](opts...),
		ref:  list.New(),
		log:  log,
	}
}

// List returns the list under test.
func (r *Runner) List() *lsq.List[int] { return r.list }

// Steps is the number of steps applied so far.
func (r *Runner) Steps() int { return r.steps }

// Run draws n steps from g and applies them.
func (r *Runner) Run(g *Generator, n int) error {
	every := n / 10
	for i := 0; i < n; i++ {
		if err := r.Apply(g.Next(r.list.Len())); err != nil {
			return err
		}
		if every > 0 && (i+1)%every == 0 {
			r.log.Debug().Int("step", r.steps).Int("len", r.list.Len()).Msg("sim progress")
		}
	}
	return nil
}

// Apply runs s against both lists and compares them.
func (r *Runner) Apply(s Step) error {
	r.steps++
	if err := Exec(r.list, s, r.opts...); err != nil {
		return errors.Wrapf(err, "step %d (%s)", r.steps, s.Op)
	}
	r.applyRef(s)
	if got, want := r.list.Len(), r.ref.Len(); got != want {
		return errors.Errorf("step %d (%s): len %d, reference has %d", r.steps, s.Op, got, want)
	}
	if got, want := Digest(r.list.All()), Digest(refAll(r.ref)); got != want {
		r.log.Error().Int("step", r.steps).Str("op", s.Op.String()).
			Str("list", r.list.String()).Msg("digest mismatch")
		return errors.Errorf("step %d (%s): digest %#x, reference has %#x",
			r.steps, s.Op, got, want)
	}
	return nil
}

func newList(values []int, opts []lsq.Option) *lsq.List[int] {
	l := lsq.New[int](opts...)
	for _, v := range values {
		l.PushBack(v)
	}
	return l
}

// at returns an iterator i positions past Begin.
func at(l *lsq.List[int], i int) lsq.Iterator[int] {
	it := l.Begin()
	for ; i > 0; i-- {
		it = it.Next()
	}
	return it
}

// Exec runs s on l. Failures that the current state of l calls for, such as
// popping an empty list, are checked and not returned: an error means l
// misbehaved. Lists built for Splice and Merge arguments use opts.
func Exec(l *lsq.List[int], s Step, opts ...lsq.Option) error {
	n := l.Len()
	switch s.Op {
	case PushFront:
		l.PushFront(s.Value)
	case PushBack:
		l.PushBack(s.Value)
	case PopFront, PopBack:
		pop := l.PopFront
		if s.Op == PopBack {
			pop = l.PopBack
		}
		err := pop()
		if n == 0 {
			if !errors.Is(err, lsq.ErrEmptyList) {
				return errors.Errorf("pop on empty list returned %v", err)
			}
			return nil
		}
		return err
	case Insert:
		it, err := l.Insert(at(l, s.Pos%(n+1)), s.Value)
		if err != nil {
			return err
		}
		if v, err := it.Value(); err != nil || v != s.Value {
			return errors.Errorf("inserted iterator reads %d, %v", v, err)
		}
	case Erase:
		err := l.Erase(at(l, s.Pos%(n+1)))
		if n == 0 || s.Pos%(n+1) == n {
			if !errors.Is(err, lsq.ErrInvalidIterator) {
				return errors.Errorf("erase at end returned %v", err)
			}
			return nil
		}
		return err
	case Reverse:
		l.Reverse()
	case Sort:
		l.Sort()
	case Unique:
		l.Unique()
	case Clear:
		l.Clear()
	case Splice:
		other := newList(s.Args, opts)
		if err := l.Splice(at(l, s.Pos%(n+1)), other); err != nil {
			return err
		}
		if !other.Empty() {
			return errors.Errorf("splice left %d elements behind", other.Len())
		}
	case Merge:
		other := newList(s.Args, opts)
		l.Sort()
		other.Sort()
		l.Merge(other)
		if !other.Empty() {
			return errors.Errorf("merge left %d elements behind", other.Len())
		}
	case EmplaceBack:
		l.EmplaceBack(s.Args...)
	case EmplaceFront:
		l.EmplaceFront(s.Args...)
	default:
		return errors.Errorf("unknown op %d", s.Op)
	}
	return nil
}

func (r *Runner) applyRef(s Step) {
	ref := r.ref
	n := ref.Len()
	switch s.Op {
	case PushFront:
		ref.PushFront(s.Value)
	case PushBack:
		ref.PushBack(s.Value)
	case PopFront:
		if e := ref.Front(); e != nil {
			ref.Remove(e)
		}
	case PopBack:
		if e := ref.Back(); e != nil {
			ref.Remove(e)
		}
	case Insert:
		if e := refAt(ref, s.Pos%(n+1)); e != nil {
			ref.InsertBefore(s.Value, e)
		} else {
			ref.PushBack(s.Value)
		}
	case Erase:
		if e := refAt(ref, s.Pos%(n+1)); e != nil {
			ref.Remove(e)
		}
	case Reverse:
		vals := slices.Collect(refAll(ref))
		slices.Reverse(vals)
		refReset(ref, vals)
	case Sort:
		vals := slices.Collect(refAll(ref))
		slices.Sort(vals)
		refReset(ref, vals)
	case Unique:
		refReset(ref, slices.Compact(slices.Collect(refAll(ref))))
	case Clear:
		ref.Init()
	case Splice:
		if e := refAt(ref, s.Pos%(n+1)); e != nil {
			for _, v := range s.Args {
				ref.InsertBefore(v, e)
			}
		} else {
			for _, v := range s.Args {
				ref.PushBack(v)
			}
		}
	case Merge:
		vals := append(slices.Collect(refAll(ref)), s.Args...)
		slices.Sort(vals)
		refReset(ref, vals)
	case EmplaceBack:
		if len(s.Args) == 0 {
			ref.PushBack(0)
		}
		for _, v := range s.Args {
			ref.PushBack(v)
		}
	case EmplaceFront:
		if len(s.Args) == 0 {
			ref.PushFront(0)
		}
		for i := len(s.Args) - 1; i >= 0; i-- {
			ref.PushFront(s.Args[i])
		}
	}
}

// refAt returns the i-th element, or nil when i is the length.
func refAt(ref *list.List, i int) *list.Element {
	e := ref.Front()
	for ; i > 0 && e != nil; i-- {
		e = e.Next()
	}
	return e
}

func refAll(ref *list.List) iter.Seq[int] {
	return func(yield func(int) bool) {
		for e := ref.Front(); e != nil; e = e.Next() {
			if !yield(e.Value.(int)) {
				return
			}
		}
	}
}

func refReset(ref *list.List, vals []int) {
	ref.Init()
	for _, v := range vals {
		ref.PushBack(v)
	}
}
