// Package board models the 15x15 playing grid: the letters placed on it, the
// static premium-square overlay, and the scoring of words laid on it.
package board

import (
	"errors"
	"fmt"
	"strings"

	"github.com/domino14/wordplay/tiles"
)

// Dim is the dimension of the board. Boards are always square.
const Dim = 15

// Center is the row and column of the center square.
const Center = Dim / 2

var (
	ErrBadDirection = errors.New("incorrect direction supplied")
	ErrOffBoard     = errors.New("word goes off the board")
	ErrConflict     = errors.New("word conflicts with a tile on the board")
	ErrEmptyWord    = errors.New("empty word")
)

type BoardDirection uint8

const (
	HorizontalDirection BoardDirection = iota
	VerticalDirection
)

func (bd BoardDirection) String() string {
	if bd == HorizontalDirection {
		return "h"
	} else if bd == VerticalDirection {
		return "v"
	}
	return "none"
}

// Other returns the perpendicular direction.
func (bd BoardDirection) Other() BoardDirection {
	if bd == HorizontalDirection {
		return VerticalDirection
	}
	return HorizontalDirection
}

// Vector returns the row and column increments for the direction.
func (bd BoardDirection) Vector() (int, int) {
	if bd == VerticalDirection {
		return 1, 0
	}
	return 0, 1
}

// ParseDirection turns "h"/"horizontal" or "v"/"vertical" into a direction.
func ParseDirection(s string) (BoardDirection, error) {
	switch strings.ToLower(s) {
	case "h", "horizontal":
		return HorizontalDirection, nil
	case "v", "vertical":
		return VerticalDirection, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadDirection, s)
}

// A Board holds the letters placed on it. A zero cell is empty. Placed
// letters are always stored as upper-case face letters, even when they came
// from a blank.
type Board struct {
	cells [Dim][Dim]byte
	tiles int
}

// New creates a new, blank board.
func New() *Board {
	return &Board{}
}

// Clear erases the board.
func (b *Board) Clear() {
	b.cells = [Dim][Dim]byte{}
	b.tiles = 0
}

// Copy returns an independent copy of the board.
func (b *Board) Copy() *Board {
	c := *b
	return &c
}

// InBounds returns whether the cell is on the board.
func InBounds(row, col int) bool {
	return row >= 0 && row < Dim && col >= 0 && col < Dim
}

// Letter returns the letter at the cell, or 0 if it is empty.
func (b *Board) Letter(row, col int) byte {
	return b.cells[row][col]
}

// IsEmpty returns whether the cell is empty.
func (b *Board) IsEmpty(row, col int) bool {
	return b.cells[row][col] == 0
}

// IsEmptyBoard returns whether no tile has been placed yet.
func (b *Board) IsEmptyBoard() bool {
	return b.tiles == 0
}

// TilesPlayed returns the number of tiles on the board.
func (b *Board) TilesPlayed() int {
	return b.tiles
}

// SetLetter places a letter on a cell; 0 empties the cell. Lower-case
// letters are stored as their face letter.
func (b *Board) SetLetter(row, col int, letter byte) {
	letter = faceLetter(letter)
	if b.cells[row][col] == 0 && letter != 0 {
		b.tiles++
	} else if b.cells[row][col] != 0 && letter == 0 {
		b.tiles--
	}
	b.cells[row][col] = letter
}

func faceLetter(letter byte) byte {
	if letter >= 'a' && letter <= 'z' {
		return letter - 'a' + 'A'
	}
	return letter
}

// checkPlacement makes sure the word fits on the board and agrees with any
// letters already in its path.
func (b *Board) checkPlacement(word string, row, col int, dir BoardDirection) error {
	if dir != HorizontalDirection && dir != VerticalDirection {
		return fmt.Errorf("%w: %d", ErrBadDirection, dir)
	}
	if len(word) == 0 {
		return ErrEmptyWord
	}
	dr, dc := dir.Vector()
	endRow, endCol := row+dr*(len(word)-1), col+dc*(len(word)-1)
	if !InBounds(row, col) || !InBounds(endRow, endCol) {
		return fmt.Errorf("%w: %s @(%d,%d)", ErrOffBoard, word, row, col)
	}
	for i := 0; i < len(word); i++ {
		existing := b.cells[row+dr*i][col+dc*i]
		if existing != 0 && existing != faceLetter(word[i]) {
			return fmt.Errorf("%w: %s @(%d,%d) has %c at position %d",
				ErrConflict, word, row, col, existing, i)
		}
	}
	return nil
}

// AddWord places the word on the board starting at the given cell.
func (b *Board) AddWord(word string, row, col int, dir BoardDirection) error {
	if err := b.checkPlacement(word, row, col, dir); err != nil {
		return err
	}
	dr, dc := dir.Vector()
	for i := 0; i < len(word); i++ {
		b.SetLetter(row+dr*i, col+dc*i, word[i])
	}
	return nil
}

// Score returns the score of the word if it were played on this board,
// starting at the given cell. Cells already occupied count only the face
// value of their tile. Newly covered cells take their letter premium, and
// any word premiums they carry multiply the whole word. Lower-case letters
// in word are designated blanks and score nothing. A play that puts down a
// full rack gets the bingo bonus on top.
func (b *Board) Score(word string, row, col int, dir BoardDirection) (int, error) {
	if err := b.checkPlacement(word, row, col, dir); err != nil {
		return 0, err
	}
	dr, dc := dir.Vector()
	score := 0
	wordMultiplier := 1
	lettersUsed := 0
	for i := 0; i < len(word); i++ {
		r, c := row+dr*i, col+dc*i
		if b.cells[r][c] != 0 {
			score += tiles.Score(b.cells[r][c])
			continue
		}
		bonus := premiums[r][c]
		score += tiles.Score(word[i]) * bonus.LetterMultiplier()
		wordMultiplier *= bonus.WordMultiplier()
		lettersUsed++
	}
	score *= wordMultiplier
	if lettersUsed == tiles.RackSize {
		score += tiles.BingoBonus
	}
	return score, nil
}

// TilesUsed returns the letters of word that would have to come from a
// rack to play it at the given cell; that is, the letters falling on empty
// cells.
func (b *Board) TilesUsed(word string, row, col int, dir BoardDirection) (string, error) {
	if err := b.checkPlacement(word, row, col, dir); err != nil {
		return "", err
	}
	dr, dc := dir.Vector()
	var sb strings.Builder
	for i := 0; i < len(word); i++ {
		if b.cells[row+dr*i][col+dc*i] == 0 {
			sb.WriteByte(word[i])
		}
	}
	return sb.String(), nil
}
