package board

import (
	"fmt"
	"strings"
)

// ToDisplayText prints the board with 1-based coordinates, showing premium
// squares where no tile has been placed.
func (b *Board) ToDisplayText() string {
	var str strings.Builder
	row := "   "
	for i := 0; i < Dim; i++ {
		row = row + fmt.Sprintf("%c", 'A'+i) + " "
	}
	str.WriteString(row + "\n")
	str.WriteString("   " + strings.Repeat("-", Dim*2) + "\n")
	for i := 0; i < Dim; i++ {
		row := fmt.Sprintf("%2d|", i+1)
		for j := 0; j < Dim; j++ {
			if b.cells[i][j] != 0 {
				row = row + string(b.cells[i][j]) + " "
			} else {
				row = row + premiums[i][j].displayString() + " "
			}
		}
		row = row + "|"
		str.WriteString(row + "\n")
	}
	str.WriteString("   " + strings.Repeat("-", Dim*2) + "\n")
	return "\n" + str.String()
}

// String returns the placed letters only, one row per line, with '.' for
// empty cells.
func (b *Board) String() string {
	var str strings.Builder
	for i := 0; i < Dim; i++ {
		for j := 0; j < Dim; j++ {
			if b.cells[i][j] == 0 {
				str.WriteByte('.')
			} else {
				str.WriteByte(b.cells[i][j])
			}
		}
		str.WriteByte('\n')
	}
	return str.String()
}

// SetRow sets the row in the board to the passed in letters. A space or a
// '.' leaves the cell empty. Cells past the end of letters are emptied.
func (b *Board) SetRow(rowNum int, letters string) error {
	if rowNum < 0 || rowNum >= Dim {
		return fmt.Errorf("%w: row %d", ErrOffBoard, rowNum)
	}
	if len(letters) > Dim {
		return fmt.Errorf("%w: row %d has %d cells", ErrOffBoard, rowNum, len(letters))
	}
	for idx := 0; idx < Dim; idx++ {
		b.SetLetter(rowNum, idx, 0)
	}
	for idx := 0; idx < len(letters); idx++ {
		ch := letters[idx]
		if ch == ' ' || ch == '.' {
			continue
		}
		ch = faceLetter(ch)
		if ch < 'A' || ch > 'Z' {
			return fmt.Errorf("invalid letter %q in row %d", ch, rowNum)
		}
		b.SetLetter(rowNum, idx, ch)
	}
	return nil
}

// Equals checks the boards for equality.
func (b *Board) Equals(b2 *Board) bool {
	return b.cells == b2.cells
}
