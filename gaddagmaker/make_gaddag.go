// Package gaddagmaker builds DAWGs and GADDAGs from word lists, minimizes
// them, and writes them out in the record format the gaddag package loads.
package gaddagmaker

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/language"
	"golang.org/x/text/transform"

	"github.com/domino14/wordplay/gaddag"
)

const (
	SeparationToken = gaddag.SeparationToken
	RootSymbol      = gaddag.RootSymbol
	// MaxWordLength is the longest word that fits on the board.
	MaxWordLength = 15
)

var (
	ErrInvalidSymbol = errors.New("word has a symbol outside A-Z")
	ErrWordLength    = errors.New("word length must be between 1 and 15")
	ErrMinimized     = errors.New("cannot insert into a minimized graph")
)

// rootIdx is the arena index of the root. Index 0 means no node.
const rootIdx uint32 = 1

// node is a temporary type used in the creation of an automaton. It will
// not be used when loading one. Children hang off firstChild as a chain of
// nextSibling links sorted by symbol.
type node struct {
	symbol      byte
	terminal    bool
	// depth is the length of the longest string still to be consumed below
	// this node. Only minimization uses it.
	depth       uint8
	firstChild  uint32
	nextSibling uint32
}

// Graph is an automaton under construction. It owns all of its nodes in an
// arena; minimization makes parents share child chains by repointing
// indices. A Graph must not be shared between goroutines.
type Graph struct {
	typ       gaddag.Type
	nodes     []node
	words     int
	minimized bool
	sigBuf    []byte
}

// New returns an empty graph of the given type.
func New(typ gaddag.Type) *Graph {
	g := &Graph{typ: typ, nodes: make([]node, 2, 1024)}
	g.nodes[rootIdx] = node{symbol: RootSymbol}
	return g
}

// Type returns what kind of automaton is being built.
func (g *Graph) Type() gaddag.Type {
	return g.typ
}

// NumWords returns the number of distinct words inserted.
func (g *Graph) NumWords() int {
	return g.words
}

// AllocatedNodes returns the number of nodes ever created, including the
// root and any made unreachable by minimization.
func (g *Graph) AllocatedNodes() int {
	return len(g.nodes) - 1
}

// child returns the child of parent with the given symbol, or 0.
func (g *Graph) child(parent uint32, symbol byte) uint32 {
	for c := g.nodes[parent].firstChild; c != 0; c = g.nodes[c].nextSibling {
		if g.nodes[c].symbol == symbol {
			return c
		}
		if g.nodes[c].symbol > symbol {
			return 0
		}
	}
	return 0
}

// addChild returns the child of parent with the given symbol, creating it
// in its sorted place if it doesn't exist.
func (g *Graph) addChild(parent uint32, symbol byte) uint32 {
	var prev uint32
	c := g.nodes[parent].firstChild
	for ; c != 0 && g.nodes[c].symbol < symbol; c = g.nodes[c].nextSibling {
		prev = c
	}
	if c != 0 && g.nodes[c].symbol == symbol {
		return c
	}
	idx := uint32(len(g.nodes))
	g.nodes = append(g.nodes, node{symbol: symbol, nextSibling: c})
	if prev == 0 {
		g.nodes[parent].firstChild = idx
	} else {
		g.nodes[prev].nextSibling = idx
	}
	return idx
}

// insertString adds s below the root, trie style. It returns whether s
// wasn't already there.
func (g *Graph) insertString(s string) bool {
	cur := rootIdx
	if int(g.nodes[rootIdx].depth) < len(s) {
		g.nodes[rootIdx].depth = uint8(len(s))
	}
	for i := 0; i < len(s); i++ {
		cur = g.addChild(cur, s[i])
		if remaining := uint8(len(s) - i - 1); remaining > g.nodes[cur].depth {
			g.nodes[cur].depth = remaining
		}
	}
	isNew := !g.nodes[cur].terminal
	g.nodes[cur].terminal = true
	return isNew
}

// Insert adds a word. Words are upper-cased; anything outside A-Z is
// rejected. For a GADDAG the word of length L goes in L times, once per
// split point i: the reversed prefix word[0..i], then, unless i is the last
// letter, the separator followed by the rest of the word.
func (g *Graph) Insert(word string) error {
	if g.minimized {
		return ErrMinimized
	}
	word = strings.ToUpper(word)
	if len(word) == 0 || len(word) > MaxWordLength {
		return fmt.Errorf("%w: %q", ErrWordLength, word)
	}
	for i := 0; i < len(word); i++ {
		if word[i] < 'A' || word[i] > 'Z' {
			return fmt.Errorf("%w: %q", ErrInvalidSymbol, word)
		}
	}
	var isNew bool
	switch g.typ {
	case gaddag.TypeDawg:
		isNew = g.insertString(word)
	case gaddag.TypeGaddag:
		for i := 0; i < len(word); i++ {
			s := string(lo.Reverse([]byte(word[:i+1])))
			if i < len(word)-1 {
				s += string(SeparationToken) + word[i+1:]
			}
			isNew = g.insertString(s)
		}
	default:
		return fmt.Errorf("unknown automaton type %d", g.typ)
	}
	if isNew {
		g.words++
	}
	return nil
}

// InsertAll inserts every word. Words that can't be inserted are logged and
// skipped; the number skipped is returned.
func (g *Graph) InsertAll(words []string) (int, error) {
	skipped := 0
	for idx, w := range words {
		if idx%10000 == 0 && idx > 0 {
			log.Debug().Int("words", idx).Msg("inserting")
		}
		err := g.Insert(w)
		switch {
		case errors.Is(err, ErrInvalidSymbol), errors.Is(err, ErrWordLength):
			log.Warn().Str("word", w).Err(err).Msg("skipping word")
			skipped++
		case err != nil:
			return skipped, err
		}
	}
	return skipped, nil
}

// NodeCount returns the number of nodes reachable from the root, the root
// included.
func (g *Graph) NodeCount() int {
	seen := make([]bool, len(g.nodes))
	count := 0
	stack := []uint32{rootIdx}
	for len(stack) > 0 {
		idx := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[idx] {
			continue
		}
		seen[idx] = true
		count++
		for c := g.nodes[idx].firstChild; c != 0; c = g.nodes[c].nextSibling {
			if !seen[c] {
				stack = append(stack, c)
			}
		}
	}
	return count
}

// ReadWords reads a word list, one word per line; only the first field of
// a line counts. A leading byte order mark is ignored and words are
// upper-cased.
func ReadWords(r io.Reader) ([]string, error) {
	dec := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
	upper := cases.Upper(language.Und)
	words := []string{}
	scanner := bufio.NewScanner(dec)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) > 0 {
			words = append(words, upper.String(fields[0]))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

func getWords(filename string) ([]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return ReadWords(file)
}

// Generate builds an automaton of the given type out of the word list in
// filename, minimizing it if asked to.
func Generate(typ gaddag.Type, filename string, minimize bool) (*Graph, error) {
	words, err := getWords(filename)
	if err != nil {
		return nil, err
	}
	log.Info().Int("words", len(words)).Str("filename", filename).Msg("read word list")
	g := New(typ)
	skipped, err := g.InsertAll(words)
	if err != nil {
		return nil, err
	}
	log.Info().Int("inserted", g.NumWords()).Int("skipped", skipped).
		Int("nodes", g.AllocatedNodes()).Str("type", typ.String()).Msg("built")
	if minimize {
		g.Minimize()
	} else {
		log.Info().Msg("not minimizing")
	}
	return g, nil
}

// GenerateGaddag makes a GADDAG out of the word list in filename.
func GenerateGaddag(filename string, minimize bool) (*Graph, error) {
	return Generate(gaddag.TypeGaddag, filename, minimize)
}

// GenerateDawg makes a DAWG out of the word list in filename.
func GenerateDawg(filename string, minimize bool) (*Graph, error) {
	return Generate(gaddag.TypeDawg, filename, minimize)
}

// OutputFilename swaps the extension of a word list's filename for the
// automaton type's.
func OutputFilename(wordList string, typ gaddag.Type) string {
	return strings.TrimSuffix(wordList, filepath.Ext(wordList)) + typ.Extension()
}
