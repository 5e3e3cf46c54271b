package shell

import (
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/wordplay/config"
	"github.com/domino14/wordplay/testcommon"
)

func TestExtractFields(t *testing.T) {
	is := is.New(t)
	type testdata struct {
		line   string
		expCmd *shellcmd
		expErr error
	}
	cases := []testdata{
		{"", nil, errNoData},
		{"load -file /path/to/words.gaddag",
			&shellcmd{"load", nil, CmdOptions{"file": {"/path/to/words.gaddag"}}},
			nil},
		{"rack AEINRST",
			&shellcmd{"rack", []string{"AEINRST"}, CmdOptions{}},
			nil},
		{"gen ACST 5 -n 10 ",
			&shellcmd{"gen",
				[]string{"ACST", "5"},
				CmdOptions{"n": {"10"}}},
			nil,
		},
		{`lookup "cat" dog`,
			&shellcmd{"lookup", []string{"cat", "dog"}, CmdOptions{}},
			nil},
		{"findall ACST -n",
			nil, errWrongOptionSyntax},
	}
	for _, t := range cases {
		cmd, err := extractFields(t.line)
		is.Equal(cmd, t.expCmd)
		is.Equal(err, t.expErr)
	}
}

func newTestController(t *testing.T) *ShellController {
	cfg := config.DefaultConfig()
	cfg.Set(config.ConfigLexiconPath, t.TempDir())
	if err := testcommon.CreateAutomata(cfg, map[string][]string{
		"shellcat": testcommon.CatWords,
	}); err != nil {
		t.Fatal(err)
	}
	return newController(cfg)
}

func TestNeedsAutomaton(t *testing.T) {
	is := is.New(t)
	sc := newTestController(t)

	_, err := sc.handle("findall ACST")
	is.Equal(err, errNoAutomaton)
	_, err = sc.handle("lookup CAT")
	is.Equal(err, errNoAutomaton)
	_, err = sc.handle("frobnicate")
	is.True(err != nil)
	_, err = sc.handle("exit")
	is.Equal(err, errExit)
}

func TestShellSession(t *testing.T) {
	is := is.New(t)
	sc := newTestController(t)

	resp, err := sc.handle("load shellcat")
	is.NoErr(err)
	is.Equal(resp.message, "loaded shellcat.gaddag")

	_, err = sc.handle("gen")
	is.Equal(err, errNoRack)

	resp, err = sc.handle("rack tacs")
	is.NoErr(err)
	is.Equal(resp.message, "rack: ACST")

	_, err = sc.handle("findall")
	is.NoErr(err)
	is.Equal(len(sc.curPlays), 3)
	is.Equal(sc.curPlays[0].Word(), "CATS")

	_, err = sc.handle("place 8H CAT")
	is.NoErr(err)
	is.Equal(sc.board.Letter(7, 7), byte('C'))
	is.Equal(sc.board.Letter(7, 9), byte('T'))

	_, err = sc.handle("gen S")
	is.NoErr(err)
	is.Equal(len(sc.curPlays), 1)
	is.Equal(sc.curPlays[0].ShortDescription(), "8H CATS")
	is.Equal(sc.curPlays[0].Score(), 6)

	_, err = sc.handle("place 1")
	is.NoErr(err)
	is.Equal(sc.board.Letter(7, 10), byte('S'))
	is.Equal(len(sc.curPlays), 0)

	_, err = sc.handle("place 1")
	is.True(err != nil)

	resp, err = sc.handle("lookup cat dog")
	is.NoErr(err)
	is.Equal(resp.message,
		"CAT is valid (front hooks: -, back hooks: S)\nDOG is not valid")

	_, err = sc.handle("clear")
	is.NoErr(err)
	is.True(sc.board.IsEmptyBoard())
}

func TestRandomRack(t *testing.T) {
	is := is.New(t)
	sc := newTestController(t)
	for i := 0; i < 20; i++ {
		_, err := sc.handle("random")
		is.NoErr(err)
		is.Equal(len(sc.rack), 7)
	}
}

func TestCompleter(t *testing.T) {
	is := is.New(t)
	sc := newTestController(t)
	c := NewShellCompleter(sc)

	out, n := c.Do([]rune("lo"), 2)
	is.Equal(n, 2)
	is.Equal(out, [][]rune{[]rune("ad "), []rune("okup ")})

	line := []rune("load shellcat.g")
	out, n = c.Do(line, len(line))
	is.Equal(n, len("shellcat.g"))
	is.Equal(out, [][]rune{[]rune("addag ")})
}
