// Utility functions for doing cool things with gaddags.
package gaddag

import (
	"sort"
	"strings"

	"github.com/samber/lo"
)

// walk follows word from nodeIdx and returns the node it ends on, or 0.
func walk(d WordGraph, nodeIdx uint32, word string) uint32 {
	for i := 0; i < len(word) && nodeIdx != 0; i++ {
		nodeIdx = d.NextNodeIdx(nodeIdx, word[i])
	}
	return nodeIdx
}

// reverse reverses an ASCII word.
func reverse(word string) string {
	return string(lo.Reverse([]byte(word)))
}

// FindWord returns whether the word is in the automaton. A GADDAG stores
// every whole word reversed, with no separator, so that's what gets looked
// up there.
func FindWord(d WordGraph, word string) bool {
	if word == "" {
		return false
	}
	word = strings.ToUpper(word)
	if d.Type() == TypeGaddag {
		word = reverse(word)
	}
	return d.Accepts(walk(d, d.GetRootNodeIndex(), word))
}

// FindPrefix returns whether some word in the automaton starts with prefix.
func FindPrefix(d WordGraph, prefix string) bool {
	if prefix == "" {
		return true
	}
	prefix = strings.ToUpper(prefix)
	if d.Type() == TypeDawg {
		return walk(d, d.GetRootNodeIndex(), prefix) != 0
	}
	// A prefix p of a longer word w is stored as reverse(p) # rest-of-w.
	nodeIdx := walk(d, d.GetRootNodeIndex(), reverse(prefix))
	if nodeIdx == 0 {
		return false
	}
	return d.Accepts(nodeIdx) || d.NextNodeIdx(nodeIdx, SeparationToken) != 0
}

// FindHooks returns the letters that can be added to the front and to the
// back of word to make another word.
func FindHooks(d WordGraph, word string) (front, back []byte) {
	word = strings.ToUpper(word)
	for l := byte('A'); l <= 'Z'; l++ {
		if FindWord(d, string(l)+word) {
			front = append(front, l)
		}
		if FindWord(d, word+string(l)) {
			back = append(back, l)
		}
	}
	return front, back
}

// Enumerate calls cb with every word the automaton accepts, in no
// particular order for a GADDAG and in alphabetical order for a DAWG.
// Enumeration stops early if cb returns false.
func Enumerate(d WordGraph, cb func(word string) bool) {
	buf := make([]byte, 0, 32)
	var rec func(nodeIdx uint32) bool
	rec = func(nodeIdx uint32) bool {
		cont := true
		d.IterateSiblings(nodeIdx, func(symbol byte, childIdx uint32) {
			if !cont || symbol == SeparationToken {
				// For a GADDAG, the separator-free paths are the whole
				// reversed words.
				return
			}
			buf = append(buf, symbol)
			if d.Accepts(childIdx) {
				w := string(buf)
				if d.Type() == TypeGaddag {
					w = reverse(w)
				}
				cont = cb(w)
			}
			if cont {
				cont = rec(childIdx)
			}
			buf = buf[:len(buf)-1]
		})
		return cont
	}
	rec(d.GetRootNodeIndex())
}

// Words returns every word the automaton accepts, sorted.
func Words(d WordGraph) []string {
	words := []string{}
	Enumerate(d, func(w string) bool {
		words = append(words, w)
		return true
	})
	if d.Type() == TypeGaddag {
		// reversed-word order isn't alphabetical
		sort.Strings(words)
	}
	return words
}
