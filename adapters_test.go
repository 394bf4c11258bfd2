package lsq

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

// drainStack pops s until empty, comparing against want read from the top.
func drainStack[T any](t *testing.T, s *Stack[T], want []T) {
	t.Helper()
	for i := len(want) - 1; i >= 0; i-- {
		require.Equal(t, i+1, s.Len())
		v, err := s.Top()
		require.NoError(t, err)
		require.Equal(t, want[i], v)
		require.NoError(t, s.Pop())
	}
	require.True(t, s.Empty())
}

func drainQueue[T any](t *testing.T, q *Queue[T], want []T) {
	t.Helper()
	for i := range want {
		require.Equal(t, len(want)-i, q.Len())
		front, err := q.Front()
		require.NoError(t, err)
		require.Equal(t, want[i], front)
		back, err := q.Back()
		require.NoError(t, err)
		require.Equal(t, want[len(want)-1], back)
		require.NoError(t, q.Pop())
	}
	require.True(t, q.Empty())
}

func TestStack(t *testing.T) {
	s := NewStack[int]()
	require.True(t, s.Empty())
	_, err := s.Top()
	require.True(t, errors.Is(err, ErrEmptyStack))
	require.True(t, errors.Is(s.Pop(), ErrEmptyStack))

	s = NewStack(1, 2, 3)
	s.Push(4)
	cp := s.Clone()
	drainStack(t, s, []int{1, 2, 3, 4})
	drainStack(t, cp, []int{1, 2, 3, 4})

	a, b := NewStack("a"), NewStack("b", "c")
	a.Swap(b)
	drainStack(t, a, []string{"b", "c"})
	drainStack(t, b, []string{"a"})
}

func TestQueue(t *testing.T) {
	q := NewQueue[int]()
	_, err := q.Front()
	require.True(t, errors.Is(err, ErrEmptyQueue))
	_, err = q.Back()
	require.True(t, errors.Is(err, ErrEmptyQueue))
	require.True(t, errors.Is(q.Pop(), ErrEmptyQueue))

	q = NewQueue(1, 2, 3)
	q.Push(4)
	cp := q.Clone()
	drainQueue(t, q, []int{1, 2, 3, 4})
	drainQueue(t, cp, []int{1, 2, 3, 4})

	// A drained queue is reusable.
	q.Push(7)
	drainQueue(t, q, []int{7})

	a, b := NewQueue(1.5), NewQueue(2.5, 3.5)
	a.Swap(b)
	drainQueue(t, a, []float64{2.5, 3.5})
	drainQueue(t, b, []float64{1.5})
}
