package domain

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleItems(n int) []QuizItem {
	items := make([]QuizItem, n)
	for i := range items {
		items[i] = QuizItem{
			Question: string(rune('A' + i)),
			Options:  []string{"yes", "no"},
			Answer:   "yes",
		}
	}
	return items
}

func TestQuizStock_SnapshotLeavesStockIntact(t *testing.T) {
	stock := NewQuizStock()
	for _, item := range sampleItems(3) {
		stock.Append(item)
	}

	snapshot := stock.Snapshot()
	assert.Len(t, snapshot, 3)
	assert.Equal(t, 3, stock.Len(), "taking a snapshot must not clear the stock")

	// Mutating the snapshot must not leak into the stock.
	snapshot[0].Question = "mutated"
	assert.Equal(t, "A", stock.Snapshot()[0].Question)
}

func TestServingPool_RefillAndDrain(t *testing.T) {
	pool := NewServingPool()
	rng := rand.New(rand.NewSource(1))

	items := sampleItems(4)
	pool.Refill(items, rng)
	assert.Equal(t, 4, pool.Len())

	seen := map[string]bool{}
	for i := 0; i < 4; i++ {
		item, ok := pool.Pop()
		assert.True(t, ok)
		assert.False(t, seen[item.Question], "each item is served at most once per batch")
		seen[item.Question] = true
	}

	_, ok := pool.Pop()
	assert.False(t, ok, "drained pool must report empty")
	assert.Equal(t, 0, pool.Len())
	assert.Len(t, seen, 4, "every stocked item is served exactly once per batch")
}

func TestServingPool_PopOnEmpty(t *testing.T) {
	pool := NewServingPool()
	_, ok := pool.Pop()
	assert.False(t, ok)
}
