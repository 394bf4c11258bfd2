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
	"bytes"
	"fmt"
	"sync/atomic"
)

type metricType int

const (
	// The following 2 keep track of node lifetimes.
	nodeAlloc = iota
	nodeFree
	// The following 2 keep track of the work done by Sort.
	sortSwap
	sortSweep
	// Elements moved between lists without copying.
	spliced
	merges
	uniqueDrop
	// This should be the final enum. Other enums should be set before this.
	doNotUse
)

func stringFor(t metricType) string {
	switch t {
	case nodeAlloc:
		return "nodes-allocated"
	case nodeFree:
		return "nodes-freed"
	case sortSwap:
		return "sort-swaps"
	case sortSweep:
		return "sort-sweeps"
	case spliced:
		return "elements-spliced"
	case merges:
		return "merges"
	case uniqueDrop:
		return "unique-removed"
	default:
		return "unidentified"
	}
}

// Metrics counts the work done by the lists it is attached to. A nil *Metrics
// is valid and records nothing. Counters are atomic, so one Metrics may be
// shared by lists used from different goroutines.
type Metrics struct {
	all [doNotUse]atomic.Uint64
}

// NewMetrics returns a zeroed Metrics.
func NewMetrics() *Metrics {
	return &Metrics{}
}

func (p *Metrics) add(t metricType, delta uint64) {
	if p == nil {
		return
	}
	p.all[t].Add(delta)
}

func (p *Metrics) get(t metricType) uint64 {
	if p == nil {
		return 0
	}
	return p.all[t].Load()
}

// NodesAllocated is the number of element nodes created.
func (p *Metrics) NodesAllocated() uint64 {
	return p.get(nodeAlloc)
}

// NodesFreed is the number of element nodes destroyed by pops, erases and
// clears. Nodes moved to another list are not freed.
func (p *Metrics) NodesFreed() uint64 {
	return p.get(nodeFree)
}

// LiveNodes is NodesAllocated minus NodesFreed.
func (p *Metrics) LiveNodes() uint64 {
	return p.get(nodeAlloc) - p.get(nodeFree)
}

// SortSwaps is the number of adjacent value swaps performed by Sort.
func (p *Metrics) SortSwaps() uint64 {
	return p.get(sortSwap)
}

// SortSweeps is the number of directional passes performed by Sort.
func (p *Metrics) SortSweeps() uint64 {
	return p.get(sortSweep)
}

// Spliced is the number of elements relinked from another list by Splice and
// Merge.
func (p *Metrics) Spliced() uint64 {
	return p.get(spliced)
}

// Merges is the number of Merge calls.
func (p *Metrics) Merges() uint64 {
	return p.get(merges)
}

// UniqueRemoved is the number of consecutive duplicates dropped by Unique.
func (p *Metrics) UniqueRemoved() uint64 {
	return p.get(uniqueDrop)
}

// Clear resets all the metrics.
func (p *Metrics) Clear() {
	if p == nil {
		return
	}
	for i := range p.all {
		p.all[i].Store(0)
	}
}

// String returns a string representation of the metrics.
func (p *Metrics) String() string {
	if p == nil {
		return ""
	}
	var buf bytes.Buffer
	for i := 0; i < doNotUse; i++ {
		t := metricType(i)
		fmt.Fprintf(&buf, "%s: %d ", stringFor(t), p.get(t))
	}
	fmt.Fprintf(&buf, "nodes-live: %d", p.LiveNodes())
	return buf.String()
}
