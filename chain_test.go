package lsq

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkChain[T any](t *testing.T, c *Chain[T], want []T) {
	t.Helper()

	require.Equal(t, len(want), c.Len())
	if len(want) == 0 {
		assert.Nil(t, c.head)
		assert.Nil(t, c.tail)
		assert.True(t, c.Empty())
		return
	}
	assert.Nil(t, c.head.prev, "open at the head")
	assert.Nil(t, c.tail.next, "open at the tail")
	assert.Equal(t, want, c.Values())

	var back []T
	for n := c.tail; n != nil; n = n.prev {
		back = append([]T{n.value}, back...)
	}
	assert.Equal(t, want, back, "prev links")
}

func TestChainPushPop(t *testing.T) {
	var c Chain[int]
	checkChain(t, &c, nil)

	for i := 0; i < 4; i++ {
		c.Push(i)
	}
	checkChain(t, &c, []int{0, 1, 2, 3})

	require.NoError(t, c.Pop())
	checkChain(t, &c, []int{0, 1, 2})

	require.True(t, c.popFront())
	checkChain(t, &c, []int{1, 2})

	require.NoError(t, c.Pop())
	require.NoError(t, c.Pop())
	checkChain(t, &c, nil)

	require.True(t, errors.Is(c.Pop(), ErrEmptyContainer))
	require.False(t, c.popFront())
}

func TestChainCopyMoveSwap(t *testing.T) {
	a := NewChain(1, 2, 3)
	b := a.Clone()
	b.Push(4)
	checkChain(t, a, []int{1, 2, 3})
	checkChain(t, b, []int{1, 2, 3, 4})

	moved := a.Move()
	checkChain(t, moved, []int{1, 2, 3})
	checkChain(t, a, nil)
	a.Push(9)
	checkChain(t, a, []int{9})

	a.Swap(b)
	checkChain(t, a, []int{1, 2, 3, 4})
	checkChain(t, b, []int{9})
}

func TestChainAll(t *testing.T) {
	c := NewChain("x", "y", "z")
	var got []string
	for v := range c.All() {
		got = append(got, v)
		if v == "y" {
			break
		}
	}
	require.Equal(t, []string{"x", "y"}, got)
}
