package movegen

import (
	"github.com/domino14/wordplay/board"
	"github.com/domino14/wordplay/gaddag"
	"github.com/domino14/wordplay/move"
	"github.com/domino14/wordplay/tiles"
)

// A searchTask is one pivot cell searched in one direction.
type searchTask struct {
	row, col int
	dir      board.BoardDirection
}

// lineSearch searches one line of the board (a row for horizontal words, a
// column for vertical ones) outward from a pivot. Positions along the line
// are plain ints.
type lineSearch struct {
	gd      gaddag.WordGraph
	b       *board.Board
	dir     board.BoardDirection
	line    int
	pivot   int
	results *move.Collection
}

func newLineSearch(gd gaddag.WordGraph, b *board.Board, t searchTask, results *move.Collection) *lineSearch {
	s := &lineSearch{gd: gd, b: b, dir: t.dir, results: results}
	if t.dir == board.HorizontalDirection {
		s.line, s.pivot = t.row, t.col
	} else {
		s.line, s.pivot = t.col, t.row
	}
	return s
}

func (s *lineSearch) cell(pos int) (int, int) {
	if s.dir == board.HorizontalDirection {
		return s.line, pos
	}
	return pos, s.line
}

func (s *lineSearch) letterAt(pos int) byte {
	r, c := s.cell(pos)
	return s.b.Letter(r, c)
}

func (s *lineSearch) run(rack Rack) {
	s.extendLeft(s.pivot, s.gd.GetRootNodeIndex(), "", rack, 0, 0)
}

// extendLeft walks from pos towards the start of the line, prepending
// letters. crossScore adds up the cross-words made so far.
func (s *lineSearch) extendLeft(pos int, nodeIdx uint32, word string, rack Rack, placed, crossScore int) {
	if pos < 0 {
		s.finishLeft(0, nodeIdx, word, rack, placed, crossScore)
		return
	}
	if l := s.letterAt(pos); l != 0 {
		if next := s.gd.NextNodeIdx(nodeIdx, l); next != 0 {
			s.extendLeft(pos-1, next, string(l)+word, rack, placed, crossScore)
		}
		return
	}
	if word != "" {
		// The word can start right after this empty cell.
		s.finishLeft(pos+1, nodeIdx, word, rack, placed, crossScore)
	}
	s.placeTiles(pos, nodeIdx, rack, func(next uint32, letter byte, rest Rack, cs int) {
		s.extendLeft(pos-1, next, string(letter)+word, rest, placed+1, crossScore+cs)
	})
}

// finishLeft is called once the word's first letter, at start, is fixed.
// The word may end at the pivot, or cross the separator and carry on to
// the right.
func (s *lineSearch) finishLeft(start int, nodeIdx uint32, word string, rack Rack, placed, crossScore int) {
	if s.gd.Accepts(nodeIdx) && (s.pivot+1 >= board.Dim || s.letterAt(s.pivot+1) == 0) {
		s.record(start, word, rack, placed, crossScore)
	}
	if sep := s.gd.NextNodeIdx(nodeIdx, gaddag.SeparationToken); sep != 0 {
		s.extendRight(s.pivot+1, sep, start, word, rack, placed, crossScore)
	}
}

// extendRight walks from pos towards the end of the line, appending
// letters.
func (s *lineSearch) extendRight(pos int, nodeIdx uint32, start int, word string, rack Rack, placed, crossScore int) {
	if pos >= board.Dim {
		if s.gd.Accepts(nodeIdx) {
			s.record(start, word, rack, placed, crossScore)
		}
		return
	}
	if l := s.letterAt(pos); l != 0 {
		if next := s.gd.NextNodeIdx(nodeIdx, l); next != 0 {
			s.extendRight(pos+1, next, start, word+string(l), rack, placed, crossScore)
		}
		return
	}
	if s.gd.Accepts(nodeIdx) {
		s.record(start, word, rack, placed, crossScore)
	}
	s.placeTiles(pos, nodeIdx, rack, func(next uint32, letter byte, rest Rack, cs int) {
		s.extendRight(pos+1, next, start, word+string(letter), rest, placed+1, crossScore+cs)
	})
}

// placeTiles tries every tile on the rack on the empty cell at pos. Each
// letter has to have a transition out of nodeIdx and make a valid
// cross-word, if it makes one at all. A blank tries every transition.
func (s *lineSearch) placeTiles(pos int, nodeIdx uint32, rack Rack,
	cb func(next uint32, letter byte, rest Rack, crossScore int)) {

	for _, letter := range rack.Letters() {
		next := s.gd.NextNodeIdx(nodeIdx, letter)
		if next == 0 {
			continue
		}
		if cs, ok := s.crossWord(pos, letter); ok {
			cb(next, letter, rack.Take(letter), cs)
		}
	}
	if !rack.Has(tiles.BlankToken) {
		return
	}
	rest := rack.Take(tiles.BlankToken)
	s.gd.IterateSiblings(nodeIdx, func(symbol byte, next uint32) {
		if symbol == gaddag.SeparationToken {
			return
		}
		letter := toBlank(symbol)
		if cs, ok := s.crossWord(pos, letter); ok {
			cb(next, letter, rest, cs)
		}
	})
}

// crossWord checks the word formed across the line by putting letter on
// the empty cell at pos. It returns that word's score, or 0 if the cell has
// no neighbors across the line, and whether the placement is allowed.
func (s *lineSearch) crossWord(pos int, letter byte) (int, bool) {
	r, c := s.cell(pos)
	cross := s.dir.Other()
	dr, dc := cross.Vector()

	startR, startC := r, c
	for board.InBounds(startR-dr, startC-dc) && !s.b.IsEmpty(startR-dr, startC-dc) {
		startR, startC = startR-dr, startC-dc
	}
	endR, endC := r, c
	for board.InBounds(endR+dr, endC+dc) && !s.b.IsEmpty(endR+dr, endC+dc) {
		endR, endC = endR+dr, endC+dc
	}
	if startR == endR && startC == endC {
		return 0, true
	}
	word := make([]byte, 0, board.Dim)
	for cr, cc := startR, startC; cr <= endR && cc <= endC; cr, cc = cr+dr, cc+dc {
		if cr == r && cc == c {
			word = append(word, letter)
		} else {
			word = append(word, s.b.Letter(cr, cc))
		}
	}
	if !gaddag.FindWord(s.gd, string(word)) {
		return 0, false
	}
	score, err := s.b.Score(string(word), startR, startC, cross)
	if err != nil {
		return 0, false
	}
	return score, true
}

// record adds a play, if it put down at least one tile and is a real
// word of two letters or more.
func (s *lineSearch) record(start int, word string, rack Rack, placed, crossScore int) {
	if placed == 0 || len(word) < 2 {
		return
	}
	r, c := s.cell(start)
	score, err := s.b.Score(word, r, c, s.dir)
	if err != nil {
		return
	}
	s.results.Add(move.NewScoringMove(score+crossScore, word, rack.String(), r, c, s.dir, placed))
}
