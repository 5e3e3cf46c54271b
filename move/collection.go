package move

import (
	"sort"
)

// MaxCollectionSize is how many moves a search keeps by default.
const MaxCollectionSize = 250

// A Collection keeps the best-scoring moves seen, up to a fixed capacity.
// It is not safe for concurrent use; give each searcher its own and Merge
// them afterwards.
type Collection struct {
	moves    []*Move
	capacity int
}

// NewCollection returns an empty collection of MaxCollectionSize moves.
func NewCollection() *Collection {
	return NewCollectionWithCapacity(MaxCollectionSize)
}

func NewCollectionWithCapacity(capacity int) *Collection {
	if capacity < 1 {
		capacity = 1
	}
	return &Collection{moves: make([]*Move, 0, min(capacity, 64)), capacity: capacity}
}

// Add offers a move to the collection. A move with the same word at the
// same cell as one already kept is dropped; the first one seen stays. Once
// full, a new move replaces the lowest-scoring one only if it scores
// strictly more. Add returns whether the move was kept.
func (c *Collection) Add(m *Move) bool {
	lowest := -1
	for i, o := range c.moves {
		if o.sameSpot(m) {
			return false
		}
		if lowest == -1 || o.score < c.moves[lowest].score {
			lowest = i
		}
	}
	if len(c.moves) < c.capacity {
		c.moves = append(c.moves, m)
		return true
	}
	if m.score > c.moves[lowest].score {
		c.moves[lowest] = m
		return true
	}
	return false
}

// Merge adds every move of other, in the order other received them.
func (c *Collection) Merge(other *Collection) {
	for _, m := range other.moves {
		c.Add(m)
	}
}

func (c *Collection) Len() int {
	return len(c.moves)
}

func (c *Collection) Cap() int {
	return c.capacity
}

// Moves returns the kept moves sorted by ascending score. The collection
// itself is left alone.
func (c *Collection) Moves() []*Move {
	out := make([]*Move, len(c.moves))
	copy(out, c.moves)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].score < out[j].score
	})
	return out
}

// Best returns up to n of the highest-scoring moves, best first.
func (c *Collection) Best(n int) []*Move {
	sorted := c.Moves()
	if n > len(sorted) {
		n = len(sorted)
	}
	best := make([]*Move, 0, n)
	for i := len(sorted) - 1; i >= len(sorted)-n; i-- {
		best = append(best, sorted[i])
	}
	return best
}
