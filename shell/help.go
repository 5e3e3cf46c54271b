package shell

import "strings"

var helpTopics = map[string]string{
	"board":   "board\n    Show the board.",
	"clear":   "clear\n    Remove every tile from the board.",
	"exit":    "exit\n    Leave the shell.",
	"findall": "findall [rack] [-n plays]\n    List the words the rack spells by itself, each at its best opening spot.",
	"gen":     "gen [rack] [-n plays] | gen <n>\n    Generate plays on the current board from the current rack.",
	"help":    "help [command]\n    Show help.",
	"load":    "load <automaton>\n    Load a .gaddag or .dawg, from the lexicon path if no directory is given.",
	"lookup":  "lookup <word>...\n    Check words and show their hooks.",
	"place":   "place <coords> <word> | place <n>\n    Put a word on the board (8H horizontal, H8 vertical), or the nth listed play.",
	"rack":    "rack [letters]\n    Set or show the rack. Use * or ? for a blank.",
	"random":  "random\n    Draw a random rack from the bag.",
}

func usage() string {
	var s strings.Builder
	s.WriteString("Commands:\n")
	for _, c := range commandNames {
		s.WriteString("  " + helpTopics[c] + "\n")
	}
	return s.String()
}

func usageTopic(topic string) string {
	if h, ok := helpTopics[topic]; ok {
		return h
	}
	return "There is no help text for the topic " + topic
}
