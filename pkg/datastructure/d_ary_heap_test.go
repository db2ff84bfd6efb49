package datastructure

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeapExtractsInRankOrder(t *testing.T) {
	for _, d := range []int{2, 3, 4} {
		h := NewdAryHeap[int](d)
		rng := rand.New(rand.NewSource(7))

		ranks := make([]float64, 0, 100)
		for i := 0; i < 100; i++ {
			rank := rng.Float64() * 1000
			ranks = append(ranks, rank)
			h.Insert(NewPriorityQueueNode(rank, i))
		}
		sort.Float64s(ranks)

		for i := 0; i < 100; i++ {
			node, err := h.ExtractMin()
			require.NoError(t, err)
			assert.Equal(t, ranks[i], node.GetRank(), "d=%d extraction=%d", d, i)
		}
		assert.True(t, h.IsEmpty())
	}
}

func TestHeapEmpty(t *testing.T) {
	h := NewFourAryHeap[int]()

	_, err := h.ExtractMin()
	assert.Error(t, err)
	_, err = h.GetMin()
	assert.Error(t, err)
	assert.True(t, h.IsEmpty())
	assert.Zero(t, h.Size())
}

func TestHeapDecreaseKey(t *testing.T) {
	h := NewFourAryHeap[string]()

	a := NewPriorityQueueNode(10.0, "a")
	b := NewPriorityQueueNode(20.0, "b")
	c := NewPriorityQueueNode(30.0, "c")
	h.Insert(a)
	h.Insert(b)
	h.Insert(c)

	require.NoError(t, h.DecreaseKey(c, 5.0))

	min, err := h.ExtractMin()
	require.NoError(t, err)
	assert.Equal(t, "c", min.GetItem())
	assert.Equal(t, 5.0, min.GetRank())
}

func TestHeapDecreaseKeyRejectsIncrease(t *testing.T) {
	h := NewBinaryHeap[string]()
	a := NewPriorityQueueNode(10.0, "a")
	h.Insert(a)

	assert.Error(t, h.DecreaseKey(a, 50.0))
}

func TestHeapExtractedNodePosIsInvalid(t *testing.T) {
	h := NewFourAryHeap[string]()
	a := NewPriorityQueueNode(1.0, "a")
	h.Insert(a)

	node, err := h.ExtractMin()
	require.NoError(t, err)
	assert.Negative(t, node.GetPos())
}
