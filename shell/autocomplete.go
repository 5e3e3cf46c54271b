package shell

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/kballard/go-shellquote"

	"github.com/domino14/wordplay/config"
	"github.com/domino14/wordplay/gaddag"
)

// ShellCompleter implements readline.AutoCompleter
type ShellCompleter struct {
	sc *ShellController
}

func NewShellCompleter(sc *ShellController) *ShellCompleter {
	return &ShellCompleter{sc: sc}
}

var commandNames = []string{
	"board",
	"clear",
	"exit",
	"findall",
	"gen",
	"help",
	"load",
	"lookup",
	"place",
	"rack",
	"random",
}

// Do implements the readline.AutoCompleter interface. It completes command
// names, help topics, and the automata found under the lexicon path.
func (c *ShellCompleter) Do(line []rune, pos int) ([][]rune, int) {
	text := string(line[:pos])

	fields, err := shellquote.Split(text)
	if err != nil {
		// unbalanced quotes while typing
		fields = strings.Fields(text)
	}
	endsWithSpace := len(text) > 0 && text[len(text)-1] == ' '

	var prefix string
	var completions []string

	if len(fields) == 0 || (len(fields) == 1 && !endsWithSpace) {
		if len(fields) == 1 {
			prefix = fields[0]
		}
		completions = commandNames
	} else {
		if !endsWithSpace {
			prefix = fields[len(fields)-1]
		}
		switch fields[0] {
		case "help":
			completions = commandNames
		case "load":
			completions = c.automata()
		}
	}

	var out [][]rune
	for _, comp := range completions {
		if strings.HasPrefix(comp, prefix) {
			out = append(out, []rune(comp[len(prefix):]+" "))
		}
	}
	return out, len([]rune(prefix))
}

// automata lists the .dawg and .gaddag files under the lexicon path.
func (c *ShellCompleter) automata() []string {
	dir := c.sc.config.GetString(config.ConfigLexiconPath)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if _, err := gaddag.TypeFromFilename(e.Name()); err == nil {
			names = append(names, filepath.Base(e.Name()))
		}
	}
	sort.Strings(names)
	return names
}
