package movegen

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/domino14/wordplay/tiles"
)

const (
	NumTotalLetters = 27 // includes blank
	BlankPosition   = 26 // The blank is located at this position in a rack.
)

var ErrInvalidRack = errors.New("invalid rack")

// Rack is a multiset of tiles. It's a small value; taking a tile returns a
// new Rack and leaves the old one alone, so recursive search never has to
// put tiles back.
type Rack struct {
	counts [NumTotalLetters]uint8
	n      int
}

// ParseRack reads a rack of 1 to 7 tiles: letters, and '*' or '?' for a
// blank. Case doesn't matter.
func ParseRack(s string) (Rack, error) {
	var r Rack
	if len(s) == 0 || len(s) > tiles.RackSize {
		return r, fmt.Errorf("%w: %q must have 1 to %d tiles", ErrInvalidRack, s, tiles.RackSize)
	}
	for _, ch := range strings.ToUpper(s) {
		switch {
		case ch < 128 && tiles.IsBlank(byte(ch)):
			r.counts[BlankPosition]++
		case ch < 128 && tiles.IsLetter(byte(ch)):
			r.counts[ch-'A']++
		default:
			return Rack{}, fmt.Errorf("%w: %q has a bad tile %q", ErrInvalidRack, s, ch)
		}
		r.n++
	}
	return r, nil
}

func position(tile byte) int {
	if tiles.IsBlank(tile) {
		return BlankPosition
	}
	return int(tile - 'A')
}

// Count returns how many of the tile (a letter or a blank token) the rack
// holds.
func (r Rack) Count(tile byte) int {
	return int(r.counts[position(tile)])
}

// Has returns whether the rack holds at least one of the tile.
func (r Rack) Has(tile byte) bool {
	return r.counts[position(tile)] > 0
}

// Take returns the rack with one of the tile removed. The tile must be on
// the rack.
func (r Rack) Take(tile byte) Rack {
	r.counts[position(tile)]--
	r.n--
	return r
}

func (r Rack) Len() int {
	return r.n
}

func (r Rack) Empty() bool {
	return r.n == 0
}

// Letters returns the distinct letters on the rack, in order, not counting
// blanks.
func (r Rack) Letters() []byte {
	return lo.FilterMap(r.counts[:BlankPosition], func(c uint8, i int) (byte, bool) {
		return byte('A' + i), c > 0
	})
}

// String writes the rack out alphabetically, with blanks last.
func (r Rack) String() string {
	var sb strings.Builder
	for i, c := range r.counts {
		ch := byte('A' + i)
		if i == BlankPosition {
			ch = tiles.BlankToken
		}
		for j := uint8(0); j < c; j++ {
			sb.WriteByte(ch)
		}
	}
	return sb.String()
}
