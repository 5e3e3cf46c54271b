package board

import (
	"fmt"
	"os"
)

var (
	ColorSupport = os.Getenv("WORDPLAY_DISABLE_COLOR") != "on"
)

// A BonusSquare is a bonus square (duh)
type BonusSquare rune

const (
	NoBonus BonusSquare = ' '
	// Bonus3WS is a triple word score
	Bonus3WS BonusSquare = '='
	// Bonus3LS is a triple letter score
	Bonus3LS BonusSquare = '"'
	// Bonus2LS is a double letter score
	Bonus2LS BonusSquare = '\''
	// Bonus2WS is a double word score
	Bonus2WS BonusSquare = '-'
)

// standardLayout is the premium layout of the 15x15 board. Rows are
// listed top to bottom, using the BonusSquare runes.
var standardLayout = []string{
	`=  '   =   '  =`,
	` -   "   "   - `,
	`  -   ' '   -  `,
	`'  -   '   -  '`,
	`    -     -    `,
	` "   "   "   " `,
	`  '   ' '   '  `,
	`=  '   -   '  =`,
	`  '   ' '   '  `,
	` "   "   "   " `,
	`    -     -    `,
	`'  -   '   -  '`,
	`  -   ' '   -  `,
	` -   "   "   - `,
	`=  '   =   '  =`,
}

// premiums is the static overlay shared by every Board. It is never
// written after package initialization.
var premiums = makePremiums(standardLayout)

func makePremiums(desc []string) [Dim][Dim]BonusSquare {
	var p [Dim][Dim]BonusSquare
	if len(desc) != Dim {
		panic(fmt.Sprintf("board layout has %d rows, want %d", len(desc), Dim))
	}
	for row, s := range desc {
		if len(s) != Dim {
			panic(fmt.Sprintf("board layout row %d has %d columns, want %d", row, len(s), Dim))
		}
		for col, c := range s {
			p[row][col] = BonusSquare(c)
		}
	}
	return p
}

// Bonus returns the premium square at the given cell.
func Bonus(row, col int) BonusSquare {
	return premiums[row][col]
}

// LetterMultiplier is how much a newly placed tile's value is multiplied by.
func (b BonusSquare) LetterMultiplier() int {
	switch b {
	case Bonus2LS:
		return 2
	case Bonus3LS:
		return 3
	}
	return 1
}

// WordMultiplier is how much the whole word is multiplied by when a new
// tile covers this square.
func (b BonusSquare) WordMultiplier() int {
	switch b {
	case Bonus2WS:
		return 2
	case Bonus3WS:
		return 3
	}
	return 1
}

func (b BonusSquare) displayString() string {
	if b == NoBonus {
		return "."
	}
	if !ColorSupport {
		return string(b)
	}
	switch b {
	case Bonus3WS:
		return fmt.Sprintf("\033[31m%s\033[0m", string(b))
	case Bonus2WS:
		return fmt.Sprintf("\033[35m%s\033[0m", string(b))
	case Bonus3LS:
		return fmt.Sprintf("\033[34m%s\033[0m", string(b))
	case Bonus2LS:
		return fmt.Sprintf("\033[36m%s\033[0m", string(b))
	default:
		return "?"
	}
}
