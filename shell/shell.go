// Package shell is an interactive shell for querying a loaded automaton:
// setting racks, placing words on a board and generating plays from them.
package shell

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog/log"

	"github.com/domino14/wordplay/board"
	"github.com/domino14/wordplay/cache"
	"github.com/domino14/wordplay/config"
	"github.com/domino14/wordplay/gaddag"
	"github.com/domino14/wordplay/move"
	"github.com/domino14/wordplay/movegen"
	"github.com/domino14/wordplay/tiles"
)

var (
	errNoData            = errors.New("no data in this line")
	errWrongOptionSyntax = errors.New("wrong format; all options need arguments")
	errNoAutomaton       = errors.New("no automaton loaded; use load <name>")
	errNoRack            = errors.New("no rack set; use rack <letters> or random")
	errExit              = errors.New("exit")
)

type ShellController struct {
	l      *readline.Instance
	config *config.Config

	lexicon  string
	gen      *movegen.GordonGenerator
	board    *board.Board
	bag      *tiles.Bag
	rack     string
	curPlays []*move.Move
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func writeln(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

func (sc *ShellController) stderr() io.Writer {
	if sc.l == nil {
		return os.Stderr
	}
	return sc.l.Stderr()
}

func (sc *ShellController) showMessage(msg string) {
	writeln(msg, sc.stderr())
}

func (sc *ShellController) showError(err error) {
	sc.showMessage("Error: " + err.Error())
}

func newController(cfg *config.Config) *ShellController {
	return &ShellController{
		config: cfg,
		board:  board.New(),
		bag:    tiles.NewBag(),
	}
}

// NewShellController sets up the readline shell. The default lexicon from
// the config is loaded if it can be; otherwise the user has to load one.
func NewShellController(cfg *config.Config) *ShellController {
	sc := newController(cfg)
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31mwordplay>\033[0m ",
		HistoryFile:     "/tmp/wordplay-readline.tmp",
		AutoComplete:    NewShellCompleter(sc),
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	sc.l = l
	if name := cfg.GetString(config.ConfigLexicon); name != "" {
		if err := sc.loadAutomaton(name); err != nil {
			log.Warn().Err(err).Str("lexicon", name).Msg("could not load default lexicon")
		}
	}
	return sc
}

func (sc *ShellController) loadAutomaton(name string) error {
	if _, err := gaddag.TypeFromFilename(name); err != nil {
		name += gaddag.TypeGaddag.Extension()
	}
	gd, err := cache.LoadAs[*gaddag.Gaddag](sc.config, gaddag.CacheKeyPrefix+name,
		gaddag.CacheLoadFunc)
	if err != nil {
		return err
	}
	sc.lexicon = name
	sc.gen = movegen.NewGordonGenerator(gd,
		movegen.WithThreads(sc.config.Threads()),
		movegen.WithMaxPlays(move.MaxCollectionSize))
	sc.curPlays = nil
	log.Info().Str("lexicon", name).Uint32("nodes", gd.NumNodes()).
		Str("type", gd.Type().String()).Msg("loaded automaton")
	return nil
}

// Loop reads commands until the user exits.
func (sc *ShellController) Loop(sig chan os.Signal) {

	defer sc.l.Close()

	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				sig <- syscall.SIGINT
				break
			} else {
				continue
			}
		} else if err == io.EOF {
			sig <- syscall.SIGINT
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		resp, err := sc.handle(line)
		if err == errExit {
			sig <- syscall.SIGINT
			break
		} else if err != nil {
			sc.showError(err)
		} else if resp != nil {
			sc.showMessage(resp.message)
		}
	}
	log.Debug().Msgf("Exiting readline loop...")
}

// Execute runs a single command line and prints its result.
func (sc *ShellController) Execute(line string) error {
	resp, err := sc.handle(strings.TrimSpace(line))
	if err == errExit {
		return nil
	} else if err != nil {
		sc.showError(err)
		return err
	}
	if resp != nil {
		sc.showMessage(resp.message)
	}
	return nil
}

func (sc *ShellController) Cleanup() {
	if sc.l != nil {
		sc.l.Close()
	}
}

func (sc *ShellController) handle(line string) (*Response, error) {
	cmd, err := extractFields(line)
	if err != nil {
		return nil, err
	}
	switch cmd.cmd {
	case "exit", "quit":
		return nil, errExit
	case "help":
		return sc.help(cmd)
	case "load":
		return sc.load(cmd)
	case "rack":
		return sc.setRack(cmd)
	case "random":
		return sc.randomRack(cmd)
	case "findall":
		return sc.findAll(cmd)
	case "gen":
		return sc.generate(cmd)
	case "place":
		return sc.place(cmd)
	case "board", "b":
		return msg(sc.board.ToDisplayText()), nil
	case "clear":
		sc.board.Clear()
		sc.curPlays = nil
		return msg("board cleared"), nil
	case "lookup":
		return sc.lookup(cmd)
	default:
		return nil, fmt.Errorf("command %q not found", cmd.cmd)
	}
}
