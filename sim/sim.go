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

// Package sim drives lsq containers with generated operation streams and
// checks them step by step against reference implementations built on the
// standard library.
package sim

import (
	"encoding/binary"
	"iter"
	"math/rand"
	"sort"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/dgryski/go-farm"
	"github.com/pkg/errors"
)

// Op is a list operation.
type Op int

const (
	PushFront Op = iota
	PushBack
	PopFront
	PopBack
	Insert
	Erase
	Reverse
	Sort
	Unique
	Clear
	Splice
	Merge
	EmplaceBack
	EmplaceFront
	numOps
)

var opNames = [numOps]string{
	"push-front", "push-back", "pop-front", "pop-back", "insert", "erase",
	"reverse", "sort", "unique", "clear", "splice", "merge",
	"emplace-back", "emplace-front",
}

func (o Op) String() string {
	if o < 0 || o >= numOps {
		return "unidentified"
	}
	return opNames[o]
}

// ParseOp returns the Op named name. Short forms `push` and `pop` stand for
// the back variants.
func ParseOp(name string) (Op, error) {
	switch name = strings.ToLower(strings.TrimSpace(name)); name {
	case "push":
		return PushBack, nil
	case "pop":
		return PopBack, nil
	}
	for i, n := range opNames {
		if n == name {
			return Op(i), nil
		}
	}
	return 0, errors.Errorf("unknown op %q", name)
}

// ParseMix converts named weights, as read from a z.SuperFlag, to a mix.
func ParseMix(weights map[string]int) (map[Op]int, error) {
	mix := make(map[Op]int, len(weights))
	for name, w := range weights {
		op, err := ParseOp(name)
		if err != nil {
			return nil, err
		}
		mix[op] += w
	}
	return mix, nil
}

// DefaultMix exercises every operation, favouring growth slightly.
func DefaultMix() map[Op]int {
	return map[Op]int{
		PushFront: 4, PushBack: 4, PopFront: 3, PopBack: 3,
		Insert: 3, Erase: 3, Reverse: 1, Sort: 1, Unique: 1, Clear: 1,
		Splice: 1, Merge: 1, EmplaceBack: 2, EmplaceFront: 2,
	}
}

// Step is one generated operation.
type Step struct {
	Op Op
	// Value is pushed or inserted.
	Value int
	// Pos selects a position; it is reduced modulo the number of valid
	// positions when applied.
	Pos int
	// Args feeds Emplace*, Splice and Merge.
	Args []int
}

// Seed derives a deterministic random seed from a workload name, so that a
// named workload replays identically.
func Seed(name string) int64 {
	return int64(farm.Fingerprint64([]byte(name)))
}

// Digest hashes a sequence of values in order.
func Digest(seq iter.Seq[int]) uint64 {
	d := xxhash.New()
	var buf [8]byte
	for v := range seq {
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
		_, _ = d.Write(buf[:])
	}
	return d.Sum64()
}

// shrinking are the only ops generated once a list reaches its length cap.
var shrinking = []Op{PopFront, PopBack, Erase, Clear}

// Generator produces a reproducible stream of steps.
type Generator struct {
	r      *rand.Rand
	table  []Op
	maxLen int
	values int
}

// NewGenerator returns a generator drawing ops according to the weights in
// mix. Lists are kept at or below maxLen elements, and values are drawn from
// [0, values) so that duplicates are common.
func NewGenerator(seed int64, mix map[Op]int, maxLen, values int) (*Generator, error) {
	if maxLen < 1 || values < 1 {
		return nil, errors.Errorf("maxLen and values must be positive, got %d and %d", maxLen, values)
	}
	ops := make([]Op, 0, len(mix))
	for op := range mix {
		if op < 0 || op >= numOps {
			return nil, errors.Errorf("unknown op %d in mix", op)
		}
		ops = append(ops, op)
	}
	// Map iteration order is random; sort so a seed replays the same stream.
	sort.Slice(ops, func(i, j int) bool { return ops[i] < ops[j] })
	var table []Op
	for _, op := range ops {
		for i := 0; i < mix[op]; i++ {
			table = append(table, op)
		}
	}
	if len(table) == 0 {
		return nil, errors.New("mix has no positive weight")
	}
	return &Generator{
		r:      rand.New(rand.NewSource(seed)),
		table:  table,
		maxLen: maxLen,
		values: values,
	}, nil
}

// Next returns the next step for a list currently holding size elements.
func (g *Generator) Next(size int) Step {
	op := g.table[g.r.Intn(len(g.table))]
	if size >= g.maxLen {
		op = shrinking[g.r.Intn(len(shrinking))]
	}
	s := Step{Op: op, Value: g.r.Intn(g.values), Pos: g.r.Intn(g.maxLen + 1)}
	switch op {
	case EmplaceBack, EmplaceFront:
		s.Args = g.args(4)
	case Splice, Merge:
		s.Args = g.args(8)
	}
	return s
}

func (g *Generator) args(max int) []int {
	n := g.r.Intn(max)
	if n == 0 {
		return nil
	}
	out := make([]int, n)
	for i := range out {
		out[i] = g.r.Intn(g.values)
	}
	return out
}
