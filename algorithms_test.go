package lsq

import (
	"fmt"
	"math/rand"
	"slices"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func inversions(in []int) uint64 {
	var n uint64
	for i := range in {
		for j := i + 1; j < len(in); j++ {
			if in[i] > in[j] {
				n++
			}
		}
	}
	return n
}

func TestSort(t *testing.T) {
	tests := [][]int{
		nil,
		{1},
		{2, 1},
		{1, 2},
		{9, 6, 3, 7},
		{4, 3, 2, 1},
		{3, 3, 1, 1, 2, 2},
		{-5, 10, 0, -5, 7},
	}
	for _, in := range tests {
		t.Run(fmt.Sprint(in), func(t *testing.T) {
			m := NewMetrics()
			l := New[int](WithMetrics(m))
			for _, v := range in {
				l.PushBack(v)
			}
			head := l.chain.head
			l.Sort()

			want := slices.Clone(in)
			slices.Sort(want)
			checkRing(t, l, want)
			require.Same(t, head, l.chain.head, "values move, nodes do not")
			require.Equal(t, inversions(in), m.SortSwaps())
		})
	}
}

func TestSortRandom(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for round := 0; round < 50; round++ {
		in := make([]int, r.Intn(64))
		for i := range in {
			in[i] = r.Intn(20) - 10
		}
		l := From(in...)
		l.Sort()
		want := slices.Clone(in)
		slices.Sort(want)
		checkRing(t, l, want)
	}
}

func TestSortSorted(t *testing.T) {
	m := NewMetrics()
	l := New[string](WithMetrics(m))
	l.EmplaceBack("a", "b", "c", "d", "e")
	l.Sort()
	checkRing(t, l, []string{"a", "b", "c", "d", "e"})
	require.Zero(t, m.SortSwaps())
	require.Equal(t, uint64(1), m.SortSweeps(), "a sorted list needs one sweep")
}

func TestUnique(t *testing.T) {
	tests := []struct {
		in, want []int
	}{
		{nil, nil},
		{[]int{1}, []int{1}},
		{[]int{1, 1, 1}, []int{1}},
		{[]int{0, 0, 1, 2, 2, 3, 3, 2, 0}, []int{0, 1, 2, 3, 2, 0}},
		{[]int{1, 2, 1, 2}, []int{1, 2, 1, 2}},
		{[]int{5, 5, 6, 6}, []int{5, 6}},
	}
	for _, tc := range tests {
		t.Run(fmt.Sprint(tc.in), func(t *testing.T) {
			m := NewMetrics()
			l := New[int](WithMetrics(m))
			for _, v := range tc.in {
				l.PushBack(v)
			}
			l.Unique()
			checkRing(t, l, tc.want)
			require.Equal(t, uint64(len(tc.in)-len(tc.want)), m.UniqueRemoved())
			require.Equal(t, uint64(len(tc.want)), m.LiveNodes())
		})
	}
}

func TestMerge(t *testing.T) {
	t.Run("IntoEmpty", func(t *testing.T) {
		l, other := New[int](), From(3, 6, 9)
		l.Merge(other)
		checkRing(t, l, []int{3, 6, 9})
		checkRing(t, other, nil)
	})

	t.Run("EmptyOther", func(t *testing.T) {
		l := From(9, 6, 3)
		l.Sort()
		other := New[int]()
		l.Merge(other)
		checkRing(t, l, []int{3, 6, 9})
		checkRing(t, other, nil)
	})

	t.Run("Sorted", func(t *testing.T) {
		m := NewMetrics()
		l := New[int](WithMetrics(m))
		l.EmplaceBack(3, 6, 9)
		other := From(2, 4, 7)
		moved := other.Begin()
		l.Merge(other)
		checkRing(t, l, []int{2, 3, 4, 6, 7, 9})
		checkRing(t, other, nil)
		require.Same(t, moved.n, l.chain.head, "nodes are relinked, not copied")
		require.Equal(t, uint64(3), m.Spliced())
		require.Equal(t, uint64(1), m.Merges())
	})

	t.Run("Unsorted", func(t *testing.T) {
		l, other := From(4, 2, 7), From(9, 6, 3)
		l.Merge(other)
		checkRing(t, l, []int{4, 2, 7, 9, 6, 3})
		checkRing(t, other, nil)

		l, other = From(-4, -2, -7), From(-9, -6, -3)
		l.Merge(other)
		checkRing(t, l, []int{-9, -6, -4, -3, -2, -7})
	})

	t.Run("TieBreak", func(t *testing.T) {
		l, other := From(1, 2), From(2)
		fromOther := other.chain.head
		l.Merge(other)
		checkRing(t, l, []int{1, 2, 2})
		require.Same(t, fromOther, l.chain.head.next, "equal element from other goes first")
	})

	t.Run("Self", func(t *testing.T) {
		l := From(1, 2, 3)
		l.Merge(l)
		checkRing(t, l, []int{1, 2, 3})
	})
}

func TestSplice(t *testing.T) {
	digits := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	tests := []struct {
		name string
		pos  func(l *List[int]) Iterator[int]
		want []int
	}{
		{"Begin", func(l *List[int]) Iterator[int] { return l.Begin() },
			[]int{9, 6, 3, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9}},
		{"End", func(l *List[int]) Iterator[int] { return l.End() },
			[]int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 9, 6, 3}},
		{"Last", func(l *List[int]) Iterator[int] { return l.End().Prev() },
			[]int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 6, 3, 9}},
		{"Second", func(l *List[int]) Iterator[int] { return l.Begin().Next() },
			[]int{0, 9, 6, 3, 1, 2, 3, 4, 5, 6, 7, 8, 9}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l, other := From(digits...), From(9, 6, 3)
			require.NoError(t, l.Splice(tc.pos(l), other))
			checkRing(t, l, tc.want)
			checkRing(t, other, nil)
		})
	}

	t.Run("EmptyReceiver", func(t *testing.T) {
		l, other := New[int](), From(1, 2)
		require.NoError(t, l.Splice(Iterator[int]{}, other))
		checkRing(t, l, []int{1, 2})
		checkRing(t, other, nil)
	})

	t.Run("EmptyOther", func(t *testing.T) {
		l := From(1, 2)
		require.NoError(t, l.Splice(l.Begin(), New[int]()))
		checkRing(t, l, []int{1, 2})
	})

	t.Run("Errors", func(t *testing.T) {
		l, other := From(1, 2), From(3)
		require.True(t, errors.Is(l.Splice(l.Begin(), l), ErrInvalidSelfOperation))
		require.True(t, errors.Is(l.Splice(other.Begin(), other), ErrInvalidIterator))
		require.True(t, errors.Is(l.Splice(Iterator[int]{}, other), ErrInvalidIterator))
		checkRing(t, l, []int{1, 2})
		checkRing(t, other, []int{3})
	})
}

func TestEmplace(t *testing.T) {
	type posFn func(l *List[int]) Iterator[int]
	begin := func(l *List[int]) Iterator[int] { return l.Begin() }
	second := func(l *List[int]) Iterator[int] { return l.Begin().Next() }
	end := func(l *List[int]) Iterator[int] { return l.End() }
	last := func(l *List[int]) Iterator[int] { return l.End().Prev() }

	tests := []struct {
		name     string
		in       []int
		pos      posFn
		args     []int
		want     []int
		returned int
	}{
		{"EmptyNoArgs", nil, begin, nil, []int{0}, 0},
		{"NoArgs", []int{9, 6, 3, 7}, begin, nil, []int{0, 9, 6, 3, 7}, 0},
		{"EmptyBegin", nil, begin, []int{5, 10}, []int{5, 10}, 10},
		{"EmptyEnd", nil, end, []int{5, 10}, []int{5, 10}, 10},
		{"EmptyLast", nil, last, []int{5, 10}, []int{5, 10}, 10},
		{"Begin", []int{9, 6, 3, 7}, begin, []int{5, 10}, []int{5, 10, 9, 6, 3, 7}, 10},
		{"Second", []int{9, 6, 3, 7}, second, []int{5, 10, 15}, []int{9, 5, 10, 15, 6, 3, 7}, 15},
		{"End", []int{9, 6, 3, 7}, end, []int{5, 10, 15}, []int{9, 6, 3, 7, 5, 10, 15}, 15},
		{"Last", []int{9, 6, 3, 7}, last, []int{5, 10, 15}, []int{9, 6, 3, 5, 10, 15, 7}, 15},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l := From(tc.in...)
			it, err := l.Emplace(tc.pos(l), tc.args...)
			require.NoError(t, err)
			checkRing(t, l, tc.want)
			v, err := it.Value()
			require.NoError(t, err)
			require.Equal(t, tc.returned, v)
		})
	}

	t.Run("Invalid", func(t *testing.T) {
		l := From(1)
		_, err := l.Emplace(From(2).Begin(), 3, 4)
		require.True(t, errors.Is(err, ErrInvalidIterator))
		_, err = l.Emplace(l.End().Next().Prev().Prev().Next(), 3)
		require.NoError(t, err)
		checkRing(t, l, []int{1, 3})
	})
}

func TestEmplaceBack(t *testing.T) {
	l := New[int]()
	l.EmplaceBack()
	checkRing(t, l, []int{0})
	l.EmplaceBack(5, 10)
	checkRing(t, l, []int{0, 5, 10})

	s := New[string]()
	s.EmplaceBack()
	s.EmplaceBack()
	checkRing(t, s, []string{"", ""})
}

func TestEmplaceFront(t *testing.T) {
	l := From(99, 100)
	l.EmplaceFront(10, 5)
	checkRing(t, l, []int{10, 5, 99, 100})

	l = From(99, 100)
	l.EmplaceFront()
	l.EmplaceFront(5)
	l.EmplaceFront(10)
	checkRing(t, l, []int{10, 5, 0, 99, 100})

	e := New[int]()
	e.EmplaceFront(5, 10)
	checkRing(t, e, []int{5, 10})
}
