package gaddagmaker

import (
	"bytes"
	"errors"
	"sort"
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domino14/wordplay/gaddag"
)

var littleWords = []string{
	"AA", "AB", "AD", "BA", "BAD", "BADE", "BADS", "BE", "BED", "BEDS",
	"CAB", "CABS", "CAD", "CADE", "CADES", "CADS", "DA", "DAB", "DABS",
	"DE", "DEB", "DEBS", "EDS", "SAB", "SABE", "SAD", "SADE",
}

// storedStrings returns every string accepted along any path of the
// records, separators included.
func storedStrings(recs []gaddag.Record) []string {
	out := []string{}
	var rec func(id uint32, prefix string)
	rec = func(id uint32, prefix string) {
		for c := recs[id-1].FirstChild; c != 0; c = recs[c-1].NextSibling {
			s := prefix + string(recs[c-1].Symbol)
			if recs[c-1].Terminal {
				out = append(out, s)
			}
			rec(c, s)
		}
	}
	rec(1, "")
	sort.Strings(out)
	return out
}

func build(t *testing.T, typ gaddag.Type, words []string) *Graph {
	g := New(typ)
	for _, w := range words {
		require.NoError(t, g.Insert(w))
	}
	return g
}

func TestGaddagSplits(t *testing.T) {
	is := is.New(t)
	g := build(t, gaddag.TypeGaddag, []string{"cat"})
	is.Equal(storedStrings(g.Records()), []string{"AC#T", "C#AT", "TAC"})
	is.Equal(g.NumWords(), 1)
}

func TestDawgInsert(t *testing.T) {
	is := is.New(t)
	g := build(t, gaddag.TypeDawg, []string{"CAT", "CATS", "AT", "CAT"})
	is.Equal(storedStrings(g.Records()), []string{"AT", "CAT", "CATS"})
	is.Equal(g.NumWords(), 3)
	// root, C, A, T, S, A, T
	is.Equal(g.NodeCount(), 7)
}

func TestChildrenSorted(t *testing.T) {
	is := is.New(t)
	g := build(t, gaddag.TypeDawg, []string{"Z", "M", "A", "Q"})
	recs := g.Records()
	is.Equal(recs[0].Symbol, byte(RootSymbol))
	syms := []byte{}
	for c := recs[0].FirstChild; c != 0; c = recs[c-1].NextSibling {
		syms = append(syms, recs[c-1].Symbol)
	}
	is.Equal(string(syms), "AMQZ")
}

func TestInsertErrors(t *testing.T) {
	is := is.New(t)
	g := New(gaddag.TypeGaddag)
	is.True(errors.Is(g.Insert("CA T"), ErrInvalidSymbol))
	is.True(errors.Is(g.Insert("CA#T"), ErrInvalidSymbol))
	is.True(errors.Is(g.Insert(""), ErrWordLength))
	is.True(errors.Is(g.Insert(strings.Repeat("A", 16)), ErrWordLength))
	is.NoErr(g.Insert(strings.Repeat("A", 15)))

	skipped, err := g.InsertAll([]string{"OK", "NOT-OK", "FINE"})
	is.NoErr(err)
	is.Equal(skipped, 1)

	g.Minimize()
	is.True(errors.Is(g.Insert("LATE"), ErrMinimized))
}

func TestMinimizeSharesSuffixes(t *testing.T) {
	is := is.New(t)
	g := build(t, gaddag.TypeDawg, []string{"CAT", "BAT"})
	stats := g.Minimize()
	is.Equal(stats.Before, 7)
	// root, B, C, and one shared A-T
	is.Equal(stats.After, 5)
	is.Equal(stats.Eliminated, 2)
	is.Equal(g.NodeCount(), 5)
	is.Equal(g.AllocatedNodes(), 7)
}

func TestMinimizePreservesLanguage(t *testing.T) {
	for _, typ := range []gaddag.Type{gaddag.TypeDawg, gaddag.TypeGaddag} {
		t.Run(typ.String(), func(t *testing.T) {
			g := build(t, typ, littleWords)
			want := storedStrings(g.Records())
			stats := g.Minimize()
			assert.Greater(t, stats.Eliminated, 0)
			assert.Equal(t, want, storedStrings(g.Records()))

			d, err := g.Finish("little")
			require.NoError(t, err)
			assert.Equal(t, uint32(stats.After), d.NumNodes())
			for _, w := range littleWords {
				assert.True(t, gaddag.FindWord(d, w), w)
			}
			for _, w := range []string{"ABS", "DEBE", "SADES", "A", "CA", "ACE"} {
				assert.False(t, gaddag.FindWord(d, w), w)
			}
			assert.Equal(t, littleWords, gaddag.Words(d))
		})
	}
}

func TestRoundTrip(t *testing.T) {
	g := build(t, gaddag.TypeGaddag, littleWords)
	g.Minimize()
	var buf bytes.Buffer
	require.NoError(t, g.Write(&buf))
	recs := g.Records()
	assert.Equal(t, gaddag.HeaderSize+gaddag.RecordSize*len(recs), buf.Len())

	d, err := gaddag.Read(&buf, gaddag.TypeGaddag)
	require.NoError(t, err)
	require.Equal(t, uint32(len(recs)), d.NumNodes())
	for i, r := range recs {
		assert.Equal(t, r, d.Node(uint32(i+1)))
	}
}

func TestPreorderIDs(t *testing.T) {
	is := is.New(t)
	g := build(t, gaddag.TypeDawg, []string{"AB", "B"})
	recs := g.Records()
	// @ A B(under A) B(under root)
	is.Equal(len(recs), 4)
	is.Equal(recs[0], gaddag.Record{Symbol: '@', FirstChild: 2})
	is.Equal(recs[1], gaddag.Record{Symbol: 'A', NextSibling: 4, FirstChild: 3})
	is.Equal(recs[2], gaddag.Record{Symbol: 'B', Terminal: true})
	is.Equal(recs[3], gaddag.Record{Symbol: 'B', Terminal: true})
}

func TestReadWords(t *testing.T) {
	is := is.New(t)
	words, err := ReadWords(strings.NewReader("\ufeffcat 3\r\n\nDog\n  bat\n"))
	is.NoErr(err)
	is.Equal(words, []string{"CAT", "DOG", "BAT"})
}

func TestOutputFilename(t *testing.T) {
	is := is.New(t)
	is.Equal(OutputFilename("lex/twl.txt", gaddag.TypeGaddag), "lex/twl.gaddag")
	is.Equal(OutputFilename("words", gaddag.TypeDawg), "words.dawg")
}
