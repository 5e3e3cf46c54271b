// Package move holds candidate plays and the bounded collection that
// search results are gathered into.
package move

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"github.com/domino14/wordplay/board"
	"github.com/domino14/wordplay/tiles"
)

var ErrBadCoords = errors.New("bad board coordinates")

// Move is a play of a word on the board. The word is written out in full,
// including letters that were already on the board. Letters played with a
// blank are lower-case.
type Move struct {
	score         int
	adjustedScore int
	word          string
	leave         string
	row           int
	col           int
	dir           board.BoardDirection
	tilesPlayed   int
}

var reVertical, reHorizontal *regexp.Regexp

func init() {
	reVertical = regexp.MustCompile(`^(?P<col>[A-Z])(?P<row>[0-9]+)$`)
	reHorizontal = regexp.MustCompile(`^(?P<row>[0-9]+)(?P<col>[A-Z])$`)
}

// NewScoringMove creates a scoring *Move and returns it. row and col are
// the first cell of the word.
func NewScoringMove(score int, word, leave string, row, col int,
	dir board.BoardDirection, tilesPlayed int) *Move {

	return &Move{
		score: score, adjustedScore: score, word: word, leave: leave,
		row: row, col: col, dir: dir, tilesPlayed: tilesPlayed,
	}
}

// String provides a string just for debugging purposes.
func (m *Move) String() string {
	return fmt.Sprintf("<word: %v %v score: %v adj: %v tp: %v leave: %v>",
		m.BoardCoords(), m.word, m.score, m.adjustedScore, m.tilesPlayed, m.leave)
}

// ShortDescription provides a short description, useful for logging or
// user display.
func (m *Move) ShortDescription() string {
	return fmt.Sprintf("%v %v", m.BoardCoords(), m.word)
}

func (m *Move) Score() int {
	return m.score
}

// AdjustedScore is a score callers may tweak to rank moves differently.
// It starts out equal to the score and is never used by search.
func (m *Move) AdjustedScore() int {
	return m.adjustedScore
}

func (m *Move) SetAdjustedScore(s int) {
	m.adjustedScore = s
}

func (m *Move) Word() string {
	return m.word
}

// Leave is what's left on the rack after the move.
func (m *Move) Leave() string {
	return m.leave
}

func (m *Move) Row() int {
	return m.row
}

func (m *Move) Col() int {
	return m.col
}

func (m *Move) Direction() board.BoardDirection {
	return m.dir
}

// TilesPlayed returns the number of tiles played by this move.
func (m *Move) TilesPlayed() int {
	return m.tilesPlayed
}

// Bingo returns whether the whole rack was played.
func (m *Move) Bingo() bool {
	return m.tilesPlayed == tiles.RackSize
}

// sameSpot returns whether the two moves put the same word at the same
// cell. Direction doesn't count.
func (m *Move) sameSpot(o *Move) bool {
	return m.row == o.row && m.col == o.col && m.word == o.word
}

func (m *Move) BoardCoords() string {
	return ToBoardGameCoords(m.row, m.col, m.dir)
}

// ToBoardGameCoords gives 1-based row numbers and lettered columns. The
// row comes first for horizontal plays ("8H") and the column first for
// vertical ones ("H8").
func ToBoardGameCoords(row int, col int, dir board.BoardDirection) string {
	colCoords := string(rune('A' + col))
	rowCoords := strconv.Itoa(row + 1)
	if dir == board.VerticalDirection {
		return colCoords + rowCoords
	}
	return rowCoords + colCoords
}

// FromBoardGameCoords does the inverse operation of ToBoardGameCoords above.
func FromBoardGameCoords(c string) (int, int, board.BoardDirection, error) {
	if m := reVertical.FindStringSubmatch(c); len(m) == 3 {
		row, _ := strconv.Atoi(m[2])
		return checkCoords(c, row-1, int(m[1][0]-'A'), board.VerticalDirection)
	}
	if m := reHorizontal.FindStringSubmatch(c); len(m) == 3 {
		row, _ := strconv.Atoi(m[1])
		return checkCoords(c, row-1, int(m[2][0]-'A'), board.HorizontalDirection)
	}
	return 0, 0, 0, fmt.Errorf("%w: %q", ErrBadCoords, c)
}

func checkCoords(c string, row, col int, dir board.BoardDirection) (int, int, board.BoardDirection, error) {
	if !board.InBounds(row, col) {
		return 0, 0, 0, fmt.Errorf("%w: %q is off the board", ErrBadCoords, c)
	}
	return row, col, dir, nil
}
