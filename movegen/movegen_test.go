package movegen

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domino14/wordplay/board"
	"github.com/domino14/wordplay/gaddag"
	"github.com/domino14/wordplay/move"
	"github.com/domino14/wordplay/testcommon"
)

func words(c *move.Collection) []string {
	ws := []string{}
	for _, m := range c.Moves() {
		ws = append(ws, m.Word())
	}
	sort.Strings(ws)
	return ws
}

func descriptions(c *move.Collection) []string {
	ds := []string{}
	for _, m := range c.Moves() {
		ds = append(ds, m.ShortDescription()+" "+m.Leave())
	}
	sort.Strings(ds)
	return ds
}

func findMove(c *move.Collection, row, col int, word string) *move.Move {
	for _, m := range c.Moves() {
		if m.Row() == row && m.Col() == col && m.Word() == word {
			return m
		}
	}
	return nil
}

func TestBestStartingPosition(t *testing.T) {
	is := is.New(t)
	type tc struct {
		word  string
		col   int
		score int
	}
	for _, c := range []tc{
		{"CAT", 7, 10},
		{"CATS", 7, 12},
		{"cAT", 7, 4},
		// the double letters at columns 3 and 11 tie; rightmost wins
		{"AAAAAAA", 7, 66},
		{"AAAAAAAAAAAAAAA", 0, 17 * 18},
	} {
		col, score := BestStartingPosition(c.word)
		is.Equal(col, c.col)
		is.Equal(score, c.score)
	}
}

func TestFindAllRackOnly(t *testing.T) {
	for _, typ := range []gaddag.Type{gaddag.TypeDawg, gaddag.TypeGaddag} {
		t.Run(typ.String(), func(t *testing.T) {
			is := is.New(t)
			gen := NewGordonGenerator(testcommon.Build(typ, testcommon.CatWords...))
			plays, err := gen.FindAll("TACS")
			is.NoErr(err)
			is.Equal(words(plays), []string{"AT", "CAT", "CATS"})

			cat := findMove(plays, 7, 7, "CAT")
			is.True(cat != nil)
			is.Equal(cat.Score(), 10)
			is.Equal(cat.Leave(), "S")
			is.Equal(cat.Direction(), board.HorizontalDirection)
			is.Equal(findMove(plays, 7, 7, "CATS").Score(), 12)
			is.Equal(findMove(plays, 7, 7, "AT").Leave(), "CS")

			// sorted ascending
			ms := plays.Moves()
			is.Equal(ms[len(ms)-1].Word(), "CATS")
		})
	}
}

func TestFindAllBlank(t *testing.T) {
	for _, typ := range []gaddag.Type{gaddag.TypeDawg, gaddag.TypeGaddag} {
		is := is.New(t)
		gen := NewGordonGenerator(testcommon.Build(typ, testcommon.CatWords...))
		plays, err := gen.FindAll("T*")
		is.NoErr(err)
		is.Equal(words(plays), []string{"aT"})
		is.Equal(plays.Moves()[0].Score(), 2)

		plays, err = gen.FindAll("**")
		is.NoErr(err)
		is.Equal(words(plays), []string{"at"})
		is.Equal(plays.Moves()[0].Score(), 0)
	}
}

func TestRackOnlySameForDawgAndGaddag(t *testing.T) {
	dawg := NewGordonGenerator(testcommon.Build(gaddag.TypeDawg, testcommon.LittleWords...))
	gdg := NewGordonGenerator(testcommon.Build(gaddag.TypeGaddag, testcommon.LittleWords...))
	p1, err := dawg.FindAll("SATED")
	require.NoError(t, err)
	p2, err := gdg.FindAll("SATED")
	require.NoError(t, err)
	assert.Equal(t, descriptions(p1), descriptions(p2))
	assert.Contains(t, words(p1), "SATE")
	assert.NotContains(t, words(p1), "BAD")
}

func TestFindAllBadRack(t *testing.T) {
	is := is.New(t)
	gen := NewGordonGenerator(testcommon.Build(gaddag.TypeGaddag, testcommon.CatWords...))
	_, err := gen.FindAll("TA3")
	is.True(errors.Is(err, ErrInvalidRack))
	_, err = gen.FindAllBoard(context.Background(), board.New(), "")
	is.True(errors.Is(err, ErrInvalidRack))
}

func TestBoardSearchNeedsGaddag(t *testing.T) {
	is := is.New(t)
	gen := NewGordonGenerator(testcommon.Build(gaddag.TypeDawg, testcommon.CatWords...))
	_, err := gen.FindAllBoard(context.Background(), board.New(), "CAT")
	is.True(errors.Is(err, ErrNotGaddag))
}

func TestAppendToCat(t *testing.T) {
	is := is.New(t)
	gen := NewGordonGenerator(testcommon.Build(gaddag.TypeGaddag, testcommon.CatWords...))
	b := board.New()
	is.NoErr(b.AddWord("CAT", 7, 7, board.HorizontalDirection))

	plays, err := gen.FindAllBoard(context.Background(), b, "S")
	is.NoErr(err)
	is.Equal(plays.Len(), 1)
	m := plays.Moves()[0]
	is.Equal(m.Word(), "CATS")
	is.Equal(m.Row(), 7)
	is.Equal(m.Col(), 7)
	is.Equal(m.Direction(), board.HorizontalDirection)
	is.Equal(m.TilesPlayed(), 1)
	is.Equal(m.Score(), 6)
	is.Equal(m.Leave(), "")
}

func TestCrossWords(t *testing.T) {
	is := is.New(t)
	gen := NewGordonGenerator(testcommon.Build(gaddag.TypeGaddag, "CAT", "CATS", "AT", "TA"))
	b := board.New()
	is.NoErr(b.AddWord("CAT", 7, 7, board.HorizontalDirection))

	plays, err := gen.FindAllBoard(context.Background(), b, "AT")
	is.NoErr(err)

	// AT on row 6 makes AT down through the T of CAT; both words score.
	m := findMove(plays, 6, 9, "AT")
	is.True(m != nil)
	is.Equal(m.Direction(), board.HorizontalDirection)
	is.Equal(m.Score(), 4)

	// one row over it would make AA down, which isn't a word
	is.True(findMove(plays, 6, 8, "AT") == nil)

	// TA down from the T of CAT
	m = findMove(plays, 7, 9, "TA")
	is.True(m != nil)
	is.Equal(m.Direction(), board.VerticalDirection)
	is.Equal(m.Score(), 2)

	for _, m := range plays.Moves() {
		is.True(m.TilesPlayed() > 0)
		is.True(gaddag.FindWord(gen.WordGraph(), m.Word()))
	}
}

func TestOpeningPlaysCoverCenter(t *testing.T) {
	is := is.New(t)
	gen := NewGordonGenerator(testcommon.Build(gaddag.TypeGaddag, testcommon.CatWords...))
	plays, err := gen.FindAllBoard(context.Background(), board.New(), "TACS")
	is.NoErr(err)
	is.True(findMove(plays, 7, 7, "CAT") != nil)
	is.True(findMove(plays, 7, 5, "CAT") != nil)
	is.True(findMove(plays, 7, 4, "CATS") != nil)
	for _, m := range plays.Moves() {
		dr, dc := m.Direction().Vector()
		endRow, endCol := m.Row()+dr*(len(m.Word())-1), m.Col()+dc*(len(m.Word())-1)
		is.True(m.Row() <= board.Center && endRow >= board.Center)
		is.True(m.Col() <= board.Center && endCol >= board.Center)
		is.True(m.Word() != "ACTS")
	}
	// C on the double word
	is.Equal(findMove(plays, 7, 7, "CAT").Score(), 10)
}

func TestThreadsAgree(t *testing.T) {
	gd := testcommon.Build(gaddag.TypeGaddag, testcommon.LittleWords...)
	b := board.New()
	require.NoError(t, b.AddWord("BEDS", 7, 5, board.HorizontalDirection))
	require.NoError(t, b.AddWord("BED", 6, 6, board.VerticalDirection))
	require.NoError(t, b.AddWord("CAB", 10, 4, board.HorizontalDirection))

	one, err := NewGordonGenerator(gd).FindAllBoard(context.Background(), b, "SATED*")
	require.NoError(t, err)
	four, err := NewGordonGenerator(gd, WithThreads(4)).FindAllBoard(context.Background(), b, "SATED*")
	require.NoError(t, err)
	assert.Greater(t, one.Len(), 0)
	assert.Equal(t, descriptions(one), descriptions(four))

	for _, m := range one.Moves() {
		assert.True(t, gaddag.FindWord(gd, m.Word()), m.Word())
	}
}

func TestMaxPlays(t *testing.T) {
	is := is.New(t)
	gen := NewGordonGenerator(testcommon.Build(gaddag.TypeGaddag, testcommon.LittleWords...), WithMaxPlays(3))
	plays, err := gen.FindAllBoard(context.Background(), board.New(), "SATED*")
	is.NoErr(err)
	is.Equal(plays.Len(), 3)
	is.Equal(plays.Cap(), 3)
}

func TestCancelledSearch(t *testing.T) {
	is := is.New(t)
	gen := NewGordonGenerator(testcommon.Build(gaddag.TypeGaddag, testcommon.CatWords...))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := gen.FindAllBoard(ctx, board.New(), "TACS")
	is.True(errors.Is(err, context.Canceled))
}
