package lsq

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMetricsNil(t *testing.T) {
	var m *Metrics
	m.add(nodeAlloc, 1)
	require.Zero(t, m.NodesAllocated())
	require.Equal(t, "", m.String())
	m.Clear()

	// Lists without metrics work the same.
	l := From(3, 1, 2)
	l.Sort()
	checkRing(t, l, []int{1, 2, 3})
}

func TestMetricsNodes(t *testing.T) {
	m := NewMetrics()
	l := New[int](WithMetrics(m))
	l.EmplaceBack(1, 2, 3)
	require.NoError(t, l.PopFront())
	require.Equal(t, uint64(3), m.NodesAllocated())
	require.Equal(t, uint64(1), m.NodesFreed())
	require.Equal(t, uint64(2), m.LiveNodes())

	cp := l.Clone()
	require.Equal(t, uint64(4), m.LiveNodes(), "clones share the metrics")

	other := From(7, 8)
	require.NoError(t, l.Splice(l.End(), other))
	require.Equal(t, uint64(2), m.Spliced())
	require.Equal(t, uint64(4), m.LiveNodes(), "spliced nodes were not allocated here")

	cp.Clear()
	l.Clear()
	require.Equal(t, uint64(7), m.NodesFreed())

	require.Contains(t, m.String(), "nodes-allocated: 5")
	m.Clear()
	require.Zero(t, m.NodesAllocated())
	require.Zero(t, m.NodesFreed())
}
