package domain

import "math/rand"

// QuizStock buffers freshly generated, unserved quiz items in insertion
// order. It is populated only by successful parses and is never cleared
// by batching; it stays the source of truth for future serving pools.
type QuizStock struct {
	items []QuizItem
}

// NewQuizStock creates an empty stock.
func NewQuizStock() *QuizStock {
	return &QuizStock{}
}

// Append adds a parsed quiz item to the stock.
func (s *QuizStock) Append(item QuizItem) {
	s.items = append(s.items, item)
}

// Len returns the number of buffered items.
func (s *QuizStock) Len() int { return len(s.items) }

// Snapshot returns a copy of the current items, leaving the stock
// untouched.
func (s *QuizStock) Snapshot() []QuizItem {
	out := make([]QuizItem, len(s.items))
	copy(out, s.items)
	return out
}

// ServingPool is a shuffled batch drawn from the stock, consumed one
// item at a time from the end until empty.
type ServingPool struct {
	items []QuizItem
}

// NewServingPool creates an empty pool.
func NewServingPool() *ServingPool {
	return &ServingPool{}
}

// Refill replaces the pool contents with a uniform random permutation
// of the given items.
func (p *ServingPool) Refill(items []QuizItem, rng *rand.Rand) {
	p.items = items
	rng.Shuffle(len(p.items), func(i, j int) {
		p.items[i], p.items[j] = p.items[j], p.items[i]
	})
}

// Pop removes and returns the last item. The second return is false
// when the pool is empty.
func (p *ServingPool) Pop() (QuizItem, bool) {
	if len(p.items) == 0 {
		return QuizItem{}, false
	}
	item := p.items[len(p.items)-1]
	p.items = p.items[:len(p.items)-1]
	return item, true
}

// Len returns the number of items left in the pool.
func (p *ServingPool) Len() int { return len(p.items) }
