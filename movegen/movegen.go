// Package movegen contains all the move-generating functions. Board search
// makes heavy use of the GADDAG; rack-only search works with a DAWG too.
package movegen

import (
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/domino14/wordplay/board"
	"github.com/domino14/wordplay/gaddag"
	"github.com/domino14/wordplay/move"
	"github.com/domino14/wordplay/tiles"
)

var ErrNotGaddag = errors.New("board search needs a gaddag")

// GordonGenerator generates moves, following Steven Gordon's paper. The
// automaton is only ever read, so one generator can serve any number of
// concurrent queries.
type GordonGenerator struct {
	gaddag   gaddag.WordGraph
	threads  int
	maxPlays int
}

type Option func(*GordonGenerator)

// WithThreads sets how many goroutines board search fans out to.
func WithThreads(n int) Option {
	return func(gen *GordonGenerator) {
		if n > 0 {
			gen.threads = n
		}
	}
}

// WithMaxPlays sets how many plays a query keeps.
func WithMaxPlays(n int) Option {
	return func(gen *GordonGenerator) {
		if n > 0 {
			gen.maxPlays = n
		}
	}
}

// NewGordonGenerator returns a generator using the given automaton.
func NewGordonGenerator(gd gaddag.WordGraph, opts ...Option) *GordonGenerator {
	gen := &GordonGenerator{gaddag: gd, threads: 1, maxPlays: move.MaxCollectionSize}
	for _, o := range opts {
		o(gen)
	}
	return gen
}

func (gen *GordonGenerator) WordGraph() gaddag.WordGraph {
	return gen.gaddag
}

func (gen *GordonGenerator) newCollection() *move.Collection {
	return move.NewCollectionWithCapacity(gen.maxPlays)
}

// BestStartingPosition finds where to put a word on an empty board. The
// word runs horizontally along the center row and has to cover the center
// square; it returns the column to start in that scores the most, and the
// score. Among equal scores the rightmost start wins.
func BestStartingPosition(word string) (col, score int) {
	b := board.New()
	col = -1
	for x := board.Center; x > board.Center-len(word) && x >= 0; x-- {
		s, err := b.Score(word, board.Center, x, board.HorizontalDirection)
		if err != nil {
			// off the right edge; keep sliding left
			continue
		}
		if col == -1 || s > score {
			col, score = x, s
		}
	}
	return col, score
}

// FindAll finds every word the rack can spell by itself, each placed at its
// best opening position.
func (gen *GordonGenerator) FindAll(rack string) (*move.Collection, error) {
	r, err := ParseRack(rack)
	if err != nil {
		return nil, err
	}
	results := gen.newCollection()
	gen.rackGen(gen.gaddag.GetRootNodeIndex(), "", r, results)
	log.Debug().Str("rack", rack).Int("plays", results.Len()).Msg("rack-only search done")
	return results, nil
}

// rackGen tries every distinct tile left on the rack as the next letter.
// A GADDAG path with no separator spells a word backwards, so there letters
// go on the front; in a DAWG they go on the back.
func (gen *GordonGenerator) rackGen(nodeIdx uint32, word string, rack Rack, results *move.Collection) {
	try := func(letter byte, next uint32, rest Rack) {
		w := word + string(letter)
		if gen.gaddag.Type() == gaddag.TypeGaddag {
			w = string(letter) + word
		}
		if gen.gaddag.Accepts(next) {
			gen.recordOpening(w, rest, results)
		}
		if !rest.Empty() {
			gen.rackGen(next, w, rest, results)
		}
	}
	for _, letter := range rack.Letters() {
		if next := gen.gaddag.NextNodeIdx(nodeIdx, letter); next != 0 {
			try(letter, next, rack.Take(letter))
		}
	}
	if rack.Has(tiles.BlankToken) {
		rest := rack.Take(tiles.BlankToken)
		gen.gaddag.IterateSiblings(nodeIdx, func(symbol byte, next uint32) {
			if symbol == gaddag.SeparationToken {
				return
			}
			try(toBlank(symbol), next, rest)
		})
	}
}

func (gen *GordonGenerator) recordOpening(word string, leave Rack, results *move.Collection) {
	col, score := BestStartingPosition(word)
	if col < 0 {
		return
	}
	results.Add(move.NewScoringMove(score, word, leave.String(), board.Center, col,
		board.HorizontalDirection, len(word)))
}

// toBlank turns a letter into the lower-case form a blank playing it is
// written as.
func toBlank(letter byte) byte {
	return letter - 'A' + 'a'
}
