package indexheap_test

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shortpath/indexheap"
)

func TestPop_Empty(t *testing.T) {
	h := indexheap.New[string](nil)
	e, ok := h.Pop()
	assert.False(t, ok)
	assert.Equal(t, indexheap.Entry[string]{}, e)
	assert.True(t, h.IsEmpty())

	_, ok = h.Peek()
	assert.False(t, ok)
}

func TestPop_Order(t *testing.T) {
	h := indexheap.New([]indexheap.Entry[string]{
		{Vertex: "a", Key: 5}, {Vertex: "b", Key: 2}, {Vertex: "c", Key: 8}, {Vertex: "d", Key: 2},
	})
	require.Equal(t, 4, h.Len())

	var got []float64
	for !h.IsEmpty() {
		e, ok := h.Pop()
		require.True(t, ok)
		got = append(got, e.Key)
	}
	assert.Equal(t, []float64{2, 2, 5, 8}, got)
}

func TestDecreaseKey(t *testing.T) {
	inf := math.Inf(1)
	h := indexheap.New([]indexheap.Entry[int]{
		{Vertex: 0, Key: inf}, {Vertex: 1, Key: inf}, {Vertex: 2, Key: inf},
	})
	require.NoError(t, h.DecreaseKey(2, 0))
	require.NoError(t, h.DecreaseKey(1, 4))

	k, ok := h.Key(1)
	require.True(t, ok)
	assert.Equal(t, 4.0, k)

	e, _ := h.Pop()
	assert.Equal(t, indexheap.Entry[int]{Vertex: 2, Key: 0}, e)
	e, _ = h.Pop()
	assert.Equal(t, indexheap.Entry[int]{Vertex: 1, Key: 4}, e)
	e, _ = h.Pop()
	assert.Equal(t, 0, e.Vertex)
	assert.True(t, math.IsInf(e.Key, 1))
}

func TestDecreaseKey_NotQueued(t *testing.T) {
	h := indexheap.New([]indexheap.Entry[string]{{Vertex: "a", Key: 1}})
	_, _ = h.Pop()

	err := h.DecreaseKey("a", 0)
	assert.True(t, errors.Is(err, indexheap.ErrNotQueued))
	assert.True(t, errors.Is(h.DecreaseKey("zzz", 0), indexheap.ErrNotQueued))
	assert.False(t, h.Contains("a"))
}

func ExampleHeap() {
	inf := math.Inf(1)
	h := indexheap.New([]indexheap.Entry[string]{
		{Vertex: "A", Key: 0}, {Vertex: "B", Key: inf}, {Vertex: "C", Key: inf},
	})
	_ = h.DecreaseKey("C", 3)
	_ = h.DecreaseKey("B", 7)

	for !h.IsEmpty() {
		e, _ := h.Pop()
		fmt.Printf("%s=%g ", e.Vertex, e.Key)
	}
	fmt.Println()
	// Output: A=0 C=3 B=7
}
