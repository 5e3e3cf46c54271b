package tiles

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"
)

// A Bag is the bag o'tiles!
type Bag struct {
	tiles []byte
}

// NewBag returns a full, shuffled bag.
func NewBag() *Bag {
	b := &Bag{}
	b.Refill()
	return b
}

// Refill puts every tile back in the bag and shuffles it.
func (b *Bag) Refill() {
	b.tiles = b.tiles[:0]
	for i := 0; i < numBlanks; i++ {
		b.tiles = append(b.tiles, BlankToken)
	}
	for i, ct := range distribution {
		for j := 0; j < ct; j++ {
			b.tiles = append(b.tiles, byte('A'+i))
		}
	}
	b.Shuffle()
}

// Shuffle shuffles the tiles remaining in the bag.
func (b *Bag) Shuffle() {
	frand.Shuffle(len(b.tiles), func(i, j int) {
		b.tiles[i], b.tiles[j] = b.tiles[j], b.tiles[i]
	})
}

// Draw draws n tiles from the bag.
func (b *Bag) Draw(n int) ([]byte, error) {
	if n > len(b.tiles) {
		return nil, fmt.Errorf("tried to draw %v tiles, tile bag has %v",
			n, len(b.tiles))
	}
	drawn := make([]byte, n)
	copy(drawn, b.tiles[len(b.tiles)-n:])
	b.tiles = b.tiles[:len(b.tiles)-n]
	log.Debug().Str("drawn", string(drawn)).Int("remaining", len(b.tiles)).Msg("draw")
	return drawn, nil
}

// DrawAtMost draws at most n tiles from the bag. It can draw fewer if there
// are fewer tiles than n, and even draw no tiles at all :o
func (b *Bag) DrawAtMost(n int) []byte {
	if n > len(b.tiles) {
		n = len(b.tiles)
	}
	drawn, _ := b.Draw(n)
	return drawn
}

// DrawRack draws a full rack, as a string.
func (b *Bag) DrawRack() string {
	return string(b.DrawAtMost(RackSize))
}

// TilesRemaining returns the number of tiles left in the bag.
func (b *Bag) TilesRemaining() int {
	return len(b.tiles)
}
