package ring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_PanicsOnBadSize(t *testing.T) {
	assert.Panics(t, func() { New[int](0) })
	assert.Panics(t, func() { New[int](-3) })
}

func TestBuffer_PushWithinCapacity(t *testing.T) {
	r := New[int](5)

	for i := 0; i < 3; i++ {
		_, evicted := r.Push(i)
		assert.False(t, evicted)
	}

	assert.Equal(t, 3, r.Len())
	assert.Equal(t, 5, r.Cap())
	assert.False(t, r.Full())
	assert.Equal(t, []int{0, 1, 2}, r.Items())
}

func TestBuffer_Overflow(t *testing.T) {
	r := New[int](5)

	var evictions []int
	for i := 0; i < 8; i++ {
		if old, evicted := r.Push(i); evicted {
			evictions = append(evictions, old)
		}
	}

	assert.True(t, r.Full())
	assert.Equal(t, 5, r.Len())
	assert.Equal(t, []int{3, 4, 5, 6, 7}, r.Items())
	assert.Equal(t, []int{0, 1, 2}, evictions)
}

func TestBuffer_Last(t *testing.T) {
	r := New[string](4)
	for _, s := range []string{"a", "b", "c", "d", "e", "f"} {
		r.Push(s)
	}

	assert.Equal(t, []string{"e", "f"}, r.Last(2))
	assert.Equal(t, []string{"c", "d", "e", "f"}, r.Last(10))
	assert.Nil(t, r.Last(0))
	assert.Nil(t, New[string](2).Last(1))
}

func TestBuffer_At(t *testing.T) {
	r := New[int](3)
	for i := 10; i < 15; i++ {
		r.Push(i)
	}

	require.Equal(t, 3, r.Len())
	assert.Equal(t, 12, r.At(0))
	assert.Equal(t, 13, r.At(1))
	assert.Equal(t, 14, r.At(2))
	assert.Panics(t, func() { r.At(3) })
	assert.Panics(t, func() { r.At(-1) })
}

func TestBuffer_ItemsIsCopy(t *testing.T) {
	r := New[int](2)
	r.Push(1)
	r.Push(2)

	items := r.Items()
	items[0] = 99

	assert.Equal(t, []int{1, 2}, r.Items())
}
