package movegen

import (
	"github.com/domino14/wordplay/board"
)

// HookType says in which directions new words can be searched for
// through a cell.
type HookType uint8

const (
	NotHook        HookType = 0
	VerticalHook   HookType = 1
	HorizontalHook HookType = 2
	MultiHook      HookType = VerticalHook | HorizontalHook
)

func (h HookType) String() string {
	switch h {
	case VerticalHook:
		return "vertical"
	case HorizontalHook:
		return "horizontal"
	case MultiHook:
		return "multi"
	}
	return "none"
}

// Allows returns whether a search in the given direction pivots here.
func (h HookType) Allows(dir board.BoardDirection) bool {
	if dir == board.VerticalDirection {
		return h&VerticalHook != 0
	}
	return h&HorizontalHook != 0
}

// A Hook is a cell searches pivot on.
type Hook struct {
	Row  int
	Col  int
	Type HookType
}

func occupied(b *board.Board, row, col int) bool {
	return board.InBounds(row, col) && !b.IsEmpty(row, col)
}

// HookAt classifies a cell.
//
// An occupied cell hooks in a direction if it's the last tile before the
// edge or an empty cell that way, since a word in that direction can pivot
// on it and run on past.
//
// An empty cell hooks in exactly one direction when it has a tile next to
// it along one axis only: it then hooks along the other axis, where a word
// through it makes a cross-word with its neighbors. With neighbors along
// both axes, or none, it isn't a hook; words through it are found pivoting
// on the neighboring tiles.
func HookAt(b *board.Board, row, col int) HookType {
	if !b.IsEmpty(row, col) {
		var h HookType
		if !occupied(b, row+1, col) {
			h |= VerticalHook
		}
		if !occupied(b, row, col+1) {
			h |= HorizontalHook
		}
		return h
	}
	freeVertically := !occupied(b, row-1, col) && !occupied(b, row+1, col)
	freeHorizontally := !occupied(b, row, col-1) && !occupied(b, row, col+1)
	switch {
	case freeVertically && !freeHorizontally:
		return VerticalHook
	case freeHorizontally && !freeVertically:
		return HorizontalHook
	}
	return NotHook
}

// Hooks returns every hook on the board, row by row.
func Hooks(b *board.Board) []Hook {
	hooks := []Hook{}
	for row := 0; row < board.Dim; row++ {
		for col := 0; col < board.Dim; col++ {
			if h := HookAt(b, row, col); h != NotHook {
				hooks = append(hooks, Hook{Row: row, Col: col, Type: h})
			}
		}
	}
	return hooks
}
