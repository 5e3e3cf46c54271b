package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domino14/wordplay/config"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd(config.DefaultConfig())
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeWordList(t *testing.T, dir, name string, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestMakeFindAllLookup(t *testing.T) {
	dir := t.TempDir()
	words := writeWordList(t, dir, "cmdcat.txt", "CAT\nCATS\nAT\n")

	_, err := run(t, "make", "gaddag", words)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "cmdcat.gaddag"))
	_, err = run(t, "make", "dawg", words)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "cmdcat.dawg"))

	out, err := run(t, "--lexicon-path", dir, "-l", "cmdcat.gaddag", "findall", "TACS", "--histogram")
	require.NoError(t, err)
	assert.Contains(t, out, "CATS")
	assert.Contains(t, out, "3 plays")

	out, err = run(t, "--lexicon-path", dir, "-l", "cmdcat.gaddag", "lookup", "cat", "dog")
	assert.Error(t, err)
	assert.Contains(t, out, "CAT\tvalid")
	assert.Contains(t, out, "DOG\tinvalid")

	out, err = run(t, "--lexicon-path", dir, "dump", "cmdcat.dawg")
	require.NoError(t, err)
	assert.Contains(t, out, "cmdcat")
}

func TestBoardCommand(t *testing.T) {
	dir := t.TempDir()
	words := writeWordList(t, dir, "cmdboard.txt", "CAT\nCATS\nAT\n")
	_, err := run(t, "make", "gaddag", words)
	require.NoError(t, err)

	snap := writeWordList(t, dir, "snap.yaml", `rack: S
words:
  - {word: CAT, row: 7, col: 7, direction: h}
`)
	out, err := run(t, "--lexicon-path", dir, "-l", "cmdboard.gaddag", "-t", "2", "board", snap)
	require.NoError(t, err)
	assert.Contains(t, out, "8H")
	assert.Contains(t, out, "CATS")
	assert.Contains(t, out, "1 plays")
}

func TestMakeBadType(t *testing.T) {
	_, err := run(t, "make", "trie", "words.txt")
	assert.Error(t, err)
}
