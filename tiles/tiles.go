// Package tiles holds the static tile data for the game: the point value of
// every letter and the distribution of tiles in a full bag.
package tiles

const (
	// BlankToken is how a blank tile is written in a rack.
	BlankToken = '*'
	// AltBlankToken is also accepted as a blank on input.
	AltBlankToken = '?'
	// RackSize is the maximum number of tiles a player holds.
	RackSize = 7
	// BingoBonus is awarded for a play that uses every tile in a full rack.
	BingoBonus = 50
	// NumLetters is the size of the alphabet.
	NumLetters = 26
)

var pointValues = [NumLetters]int{
	1, 3, 3, 2, 1, 4, 2, 4, 1, 8, 5, 1, 3,
	1, 1, 3, 10, 1, 1, 1, 1, 4, 4, 8, 4, 10,
}

var distribution = [NumLetters]int{
	9, 2, 2, 4, 12, 2, 3, 2, 9, 1, 1, 4, 2,
	6, 8, 2, 1, 6, 4, 6, 4, 2, 2, 1, 2, 1,
}

const numBlanks = 2

// Score returns the face value of a tile. Only upper-case letters score;
// lower-case letters stand for a designated blank and score nothing, as does
// anything else.
func Score(letter byte) int {
	if letter < 'A' || letter > 'Z' {
		return 0
	}
	return pointValues[letter-'A']
}

// IsLetter returns whether b is an upper-case letter of the alphabet.
func IsLetter(b byte) bool {
	return b >= 'A' && b <= 'Z'
}

// IsBlank returns whether b is a blank token.
func IsBlank(b byte) bool {
	return b == BlankToken || b == AltBlankToken
}

// Count returns how many copies of the letter are in a full bag. Use
// BlankToken for blanks.
func Count(letter byte) int {
	if IsBlank(letter) {
		return numBlanks
	}
	if !IsLetter(letter) {
		return 0
	}
	return distribution[letter-'A']
}

// TotalTiles returns the number of tiles in a full bag.
func TotalTiles() int {
	t := numBlanks
	for _, ct := range distribution {
		t += ct
	}
	return t
}
