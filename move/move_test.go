package move

import (
	"errors"
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/wordplay/board"
)

type coordTestStruct struct {
	row    int
	col    int
	dir    board.BoardDirection
	output string
}

var coordTests = []coordTestStruct{
	{0, 0, board.HorizontalDirection, "1A"},
	{0, 0, board.VerticalDirection, "A1"},
	{14, 14, board.HorizontalDirection, "15O"},
	{14, 14, board.VerticalDirection, "O15"},
	{9, 8, board.HorizontalDirection, "10I"},
	{9, 8, board.VerticalDirection, "I10"},
	{7, 7, board.HorizontalDirection, "8H"},
	{7, 7, board.VerticalDirection, "H8"},
}

func TestToBoardGameCoords(t *testing.T) {
	for _, tc := range coordTests {
		calc := ToBoardGameCoords(tc.row, tc.col, tc.dir)
		if calc != tc.output {
			t.Errorf("For row=%v col=%v dir=%v got %v, expected %v",
				tc.row, tc.col, tc.dir, calc, tc.output)
		}
	}
}

func TestFromBoardGameCoords(t *testing.T) {
	for _, tc := range coordTests {
		row, col, dir, err := FromBoardGameCoords(tc.output)
		if err != nil || row != tc.row || col != tc.col || dir != tc.dir {
			t.Errorf("For coord %v expected (%v, %v, %v) got (%v, %v, %v, %v)",
				tc.output, tc.row, tc.col, tc.dir, row, col, dir, err)
		}
	}
}

func TestBadCoords(t *testing.T) {
	is := is.New(t)
	for _, c := range []string{"", "8", "H", "16A", "A16", "P1", "0H", "h8"} {
		_, _, _, err := FromBoardGameCoords(c)
		is.True(errors.Is(err, ErrBadCoords))
	}
}

func TestMoveAccessors(t *testing.T) {
	is := is.New(t)
	m := NewScoringMove(86, "BOXiEST", "", 1, 1, board.HorizontalDirection, 7)
	is.Equal(m.ShortDescription(), "2B BOXiEST")
	is.True(m.Bingo())
	is.Equal(m.AdjustedScore(), 86)
	m.SetAdjustedScore(80)
	is.Equal(m.AdjustedScore(), 80)
	is.Equal(m.Score(), 86)
}

func TestCollectionKeepsBest(t *testing.T) {
	is := is.New(t)
	c := NewCollection()
	for i := 0; i <= MaxCollectionSize; i++ {
		is.True(c.Add(NewScoringMove(i, "CAT", "", i%15, i/15, board.HorizontalDirection, 3)))
	}
	is.Equal(c.Len(), MaxCollectionSize)
	moves := c.Moves()
	is.Equal(moves[0].Score(), 1)
	is.Equal(moves[len(moves)-1].Score(), MaxCollectionSize)
	for i := 1; i < len(moves); i++ {
		is.True(moves[i-1].Score() <= moves[i].Score())
	}

	// ties with the lowest don't get in
	is.True(!c.Add(NewScoringMove(1, "AT", "", 0, 0, board.VerticalDirection, 2)))
	is.True(c.Add(NewScoringMove(2, "AT", "", 0, 0, board.VerticalDirection, 2)))
	is.Equal(c.Moves()[0].Score(), 2)
}

func TestCollectionDuplicates(t *testing.T) {
	is := is.New(t)
	c := NewCollectionWithCapacity(3)
	is.True(c.Add(NewScoringMove(5, "CAT", "S", 7, 7, board.HorizontalDirection, 3)))
	before := c.Moves()
	// same word, same cell, even a better score or other direction
	is.True(!c.Add(NewScoringMove(50, "CAT", "", 7, 7, board.VerticalDirection, 3)))
	is.Equal(c.Moves(), before)
	is.Equal(c.Moves()[0].Score(), 5)
	// a blank makes it a different word
	is.True(c.Add(NewScoringMove(4, "cAT", "S", 7, 7, board.HorizontalDirection, 3)))
	is.Equal(c.Len(), 2)
}

func TestCollectionMergeAndBest(t *testing.T) {
	is := is.New(t)
	a := NewCollectionWithCapacity(3)
	b := NewCollection()
	a.Add(NewScoringMove(10, "AT", "", 0, 0, board.HorizontalDirection, 2))
	b.Add(NewScoringMove(20, "AT", "", 0, 0, board.HorizontalDirection, 2))
	b.Add(NewScoringMove(30, "CAT", "", 0, 0, board.HorizontalDirection, 3))
	b.Add(NewScoringMove(5, "TA", "", 3, 3, board.HorizontalDirection, 2))
	b.Add(NewScoringMove(40, "TAT", "", 3, 3, board.HorizontalDirection, 3))
	a.Merge(b)
	is.Equal(a.Len(), 3)
	best := a.Best(2)
	is.Equal(len(best), 2)
	is.Equal(best[0].Word(), "TAT")
	is.Equal(best[1].Word(), "CAT")
	is.Equal(a.Moves()[0].Score(), 10)
	is.Equal(len(a.Best(10)), 3)
}
