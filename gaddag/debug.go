package gaddag

import (
	"fmt"
	"io"
)

// Dump prints every record in index order in a user-readable form:
//
//	idx symbol terminal next-sibling first-child
func (g *Gaddag) Dump(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%s %q: %d nodes\n", g.typ, g.lexiconName, g.NumNodes()); err != nil {
		return err
	}
	for i := uint32(1); i <= g.NumNodes(); i++ {
		n := g.nodes[i]
		term := " "
		if n.Terminal {
			term = "*"
		}
		if _, err := fmt.Fprintf(w, "%8d %c %s sib:%-8d child:%d\n",
			i, n.Symbol, term, n.NextSibling, n.FirstChild); err != nil {
			return err
		}
	}
	return nil
}
