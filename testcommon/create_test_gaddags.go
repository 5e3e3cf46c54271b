// Package testcommon builds small automata for tests.
package testcommon

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/domino14/wordplay/config"
	"github.com/domino14/wordplay/gaddag"
	"github.com/domino14/wordplay/gaddagmaker"
)

// CatWords is the tiny dictionary most move generation tests use.
var CatWords = []string{"CAT", "CATS", "AT"}

// LittleWords is a slightly bigger dictionary with lots of shared suffixes.
var LittleWords = []string{
	"AA", "AB", "AD", "AE", "AS", "AT", "BA", "BAD", "BADE", "BADS", "BAT",
	"BATS", "BE", "BED", "BEDS", "BET", "BETS", "CAB", "CABS", "CAD", "CADE",
	"CADES", "CADS", "CAT", "CATS", "DA", "DAB", "DABS", "DE", "DEB", "DEBS",
	"EAT", "EATS", "ES", "ET", "ETA", "ETAS", "SAB", "SAD", "SADE", "SAT",
	"SATE", "SEA", "SEAT", "SET", "TA", "TAB", "TABS", "TAE", "TAS", "TEA",
	"TEAS", "TED", "TEDS",
}

// Build makes a minimized automaton out of words. It panics on bad words,
// which is fine for test fixtures.
func Build(typ gaddag.Type, words ...string) *gaddag.Gaddag {
	g := gaddagmaker.New(typ)
	for _, w := range words {
		if err := g.Insert(w); err != nil {
			panic(err)
		}
	}
	g.Minimize()
	d, err := g.Finish("test")
	if err != nil {
		panic(err)
	}
	return d
}

// CreateAutomata writes each named word list into the configured lexicon
// path and builds both its DAWG and GADDAG there, unless they already
// exist.
func CreateAutomata(cfg *config.Config, lexica map[string][]string) error {
	dir := cfg.GetString(config.ConfigLexiconPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for name, words := range lexica {
		txt := filepath.Join(dir, name+".txt")
		if err := os.WriteFile(txt, []byte(strings.Join(words, "\n")+"\n"), 0o644); err != nil {
			return err
		}
		for _, typ := range []gaddag.Type{gaddag.TypeDawg, gaddag.TypeGaddag} {
			out := gaddagmaker.OutputFilename(txt, typ)
			if _, err := os.Stat(out); err == nil {
				continue
			}
			g, err := gaddagmaker.Generate(typ, txt, true)
			if err != nil {
				return err
			}
			if err := g.Save(out); err != nil {
				return err
			}
		}
	}
	return nil
}
