package shell

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/kballard/go-shellquote"
	"github.com/samber/lo"

	"github.com/domino14/wordplay/config"
	"github.com/domino14/wordplay/gaddag"
	"github.com/domino14/wordplay/move"
	"github.com/domino14/wordplay/movegen"
)

type Response struct {
	message string
}

func msg(message string) *Response {
	return &Response{message: message}
}

type CmdOptions map[string][]string

func (c CmdOptions) String(key string) string {
	v := c[key]
	if len(v) > 0 {
		return v[0]
	}
	return ""
}

func (c CmdOptions) IntDefault(key string, defaultI int) (int, error) {
	v := c[key]
	if len(v) == 0 {
		return defaultI, nil
	}
	return strconv.Atoi(v[0])
}

type shellcmd struct {
	cmd     string
	args    []string
	options CmdOptions
}

// extractFields splits a command line into the command, its positional
// arguments, and its -option value pairs. Quoting follows shell rules.
func extractFields(line string) (*shellcmd, error) {
	fields, err := shellquote.Split(line)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, errNoData
	}
	cmd := &shellcmd{cmd: fields[0], options: CmdOptions{}}
	for i := 1; i < len(fields); i++ {
		if !strings.HasPrefix(fields[i], "-") || len(fields[i]) == 1 {
			cmd.args = append(cmd.args, fields[i])
			continue
		}
		if i == len(fields)-1 {
			return nil, errWrongOptionSyntax
		}
		opt := strings.TrimPrefix(fields[i], "-")
		cmd.options[opt] = append(cmd.options[opt], fields[i+1])
		i++
	}
	return cmd, nil
}

func (sc *ShellController) numPlays(cmd *shellcmd) (int, error) {
	n, err := cmd.options.IntDefault("n", sc.config.GetInt(config.ConfigNumPlays))
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, errors.New("number of plays must be positive")
	}
	return n, nil
}

func (sc *ShellController) help(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		return msg(usage()), nil
	}
	return msg(usageTopic(cmd.args[0])), nil
}

func (sc *ShellController) load(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 1 {
		return nil, errors.New("load <automaton>")
	}
	if err := sc.loadAutomaton(cmd.args[0]); err != nil {
		return nil, err
	}
	return msg("loaded " + sc.lexicon), nil
}

func (sc *ShellController) setRack(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		if sc.rack == "" {
			return nil, errNoRack
		}
		return msg("rack: " + sc.rack), nil
	}
	r, err := movegen.ParseRack(cmd.args[0])
	if err != nil {
		return nil, err
	}
	sc.rack = r.String()
	return msg("rack: " + sc.rack), nil
}

func (sc *ShellController) randomRack(cmd *shellcmd) (*Response, error) {
	if sc.bag.TilesRemaining() < 7 {
		sc.bag.Refill()
	}
	r, err := movegen.ParseRack(sc.bag.DrawRack())
	if err != nil {
		return nil, err
	}
	sc.rack = r.String()
	return msg("rack: " + sc.rack), nil
}

// rackFor returns the rack a search should use: the one given on the
// command line, which also becomes the current rack, or the current one.
func (sc *ShellController) rackFor(cmd *shellcmd) (string, error) {
	if len(cmd.args) > 0 {
		if _, err := sc.setRack(cmd); err != nil {
			return "", err
		}
	}
	if sc.rack == "" {
		return "", errNoRack
	}
	return sc.rack, nil
}

func (sc *ShellController) findAll(cmd *shellcmd) (*Response, error) {
	if sc.gen == nil {
		return nil, errNoAutomaton
	}
	rack, err := sc.rackFor(cmd)
	if err != nil {
		return nil, err
	}
	n, err := sc.numPlays(cmd)
	if err != nil {
		return nil, err
	}
	t := time.Now()
	plays, err := sc.gen.FindAll(rack)
	if err != nil {
		return nil, err
	}
	sc.curPlays = plays.Best(n)
	return msg(sc.genDisplayMoveList(plays.Len(), time.Since(t))), nil
}

func (sc *ShellController) generate(cmd *shellcmd) (*Response, error) {
	if sc.gen == nil {
		return nil, errNoAutomaton
	}
	n, err := sc.numPlays(cmd)
	if err != nil {
		return nil, err
	}
	// gen [n] as a shorthand for gen -n <n>
	if len(cmd.args) == 1 {
		if i, err := strconv.Atoi(cmd.args[0]); err == nil {
			n = i
			cmd.args = nil
		}
	}
	rack, err := sc.rackFor(cmd)
	if err != nil {
		return nil, err
	}
	t := time.Now()
	plays, err := sc.gen.FindAllBoard(context.Background(), sc.board, rack)
	if err != nil {
		return nil, err
	}
	sc.curPlays = plays.Best(n)
	return msg(sc.genDisplayMoveList(plays.Len(), time.Since(t))), nil
}

func (sc *ShellController) genDisplayMoveList(found int, elapsed time.Duration) string {
	var s strings.Builder
	s.WriteString(fmt.Sprintf("%d plays found in %v, rack %s\n", found, elapsed, sc.rack))
	s.WriteString(fmt.Sprintf("%-4s%-8s%-16s%-8s%-6s\n", "#", "Coords", "Word", "Leave", "Score"))
	for i, m := range sc.curPlays {
		s.WriteString(fmt.Sprintf("%-4d%-8s%-16s%-8s%-6d\n",
			i+1, m.BoardCoords(), m.Word(), m.Leave(), m.Score()))
	}
	return s.String()
}

// place puts a word on the board, either given by coordinates and word or
// by its number in the last list of generated plays.
func (sc *ShellController) place(cmd *shellcmd) (*Response, error) {
	var word string
	switch len(cmd.args) {
	case 1:
		idx, err := strconv.Atoi(cmd.args[0])
		if err != nil {
			return nil, errors.New("place <coords> <word> or place <play number>")
		}
		if idx < 1 || idx > len(sc.curPlays) {
			return nil, fmt.Errorf("no play numbered %d", idx)
		}
		m := sc.curPlays[idx-1]
		if err := sc.board.AddWord(m.Word(), m.Row(), m.Col(), m.Direction()); err != nil {
			return nil, err
		}
		word = m.Word()
	case 2:
		row, col, dir, err := move.FromBoardGameCoords(cmd.args[0])
		if err != nil {
			return nil, err
		}
		word = cmd.args[1]
		if sc.gen != nil && !gaddag.FindWord(sc.gen.WordGraph(), word) {
			sc.showMessage(fmt.Sprintf("warning: %s is not in %s", strings.ToUpper(word), sc.lexicon))
		}
		if err := sc.board.AddWord(word, row, col, dir); err != nil {
			return nil, err
		}
	default:
		return nil, errors.New("place <coords> <word> or place <play number>")
	}
	sc.curPlays = nil
	return msg("placed " + word + "\n" + sc.board.ToDisplayText()), nil
}

func (sc *ShellController) lookup(cmd *shellcmd) (*Response, error) {
	if sc.gen == nil {
		return nil, errNoAutomaton
	}
	if len(cmd.args) == 0 {
		return nil, errors.New("lookup <word> [<word>...]")
	}
	gd := sc.gen.WordGraph()
	lines := lo.Map(cmd.args, func(w string, _ int) string {
		w = strings.ToUpper(w)
		if !gaddag.FindWord(gd, w) {
			return w + " is not valid"
		}
		front, back := gaddag.FindHooks(gd, w)
		return fmt.Sprintf("%s is valid (front hooks: %s, back hooks: %s)",
			w, hookString(front), hookString(back))
	})
	return msg(strings.Join(lines, "\n")), nil
}

func hookString(h []byte) string {
	if len(h) == 0 {
		return "-"
	}
	return string(h)
}
