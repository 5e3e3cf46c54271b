package gaddagmaker

import (
	"bufio"
	"encoding/binary"
	"io"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/domino14/wordplay/gaddag"
)

// assignIDs numbers every reachable node in depth-first preorder, starting
// with the root at 1. A node shared by several parents keeps the id it got
// the first time it was reached. It returns the arena indices in id order
// and the id of every arena index (0 for unreachable nodes).
func (g *Graph) assignIDs() (order []uint32, ids []uint32) {
	ids = make([]uint32, len(g.nodes))
	order = make([]uint32, 0, len(g.nodes))
	var visit func(idx uint32)
	visit = func(idx uint32) {
		order = append(order, idx)
		ids[idx] = uint32(len(order))
		for c := g.nodes[idx].firstChild; c != 0; c = g.nodes[c].nextSibling {
			if ids[c] == 0 {
				visit(c)
			}
		}
	}
	visit(rootIdx)
	return order, ids
}

// Records flattens the reachable graph into records; records[0] has id 1.
func (g *Graph) Records() []gaddag.Record {
	order, ids := g.assignIDs()
	records := make([]gaddag.Record, len(order))
	for i, idx := range order {
		n := g.nodes[idx]
		records[i] = gaddag.Record{
			Symbol:      n.symbol,
			NextSibling: ids[n.nextSibling],
			FirstChild:  ids[n.firstChild],
			Terminal:    n.terminal,
		}
	}
	return records
}

// Write serializes the graph.
func (g *Graph) Write(w io.Writer) error {
	return WriteRecords(w, g.Records())
}

// WriteRecords writes records in the format gaddag.Read reads.
func WriteRecords(w io.Writer, records []gaddag.Record) error {
	bw := bufio.NewWriter(w)
	var buf [gaddag.RecordSize]byte
	binary.LittleEndian.PutUint32(buf[:gaddag.HeaderSize], uint32(len(records)))
	if _, err := bw.Write(buf[:gaddag.HeaderSize]); err != nil {
		return err
	}
	for _, r := range records {
		buf[0] = r.Symbol
		binary.LittleEndian.PutUint32(buf[1:5], r.NextSibling)
		binary.LittleEndian.PutUint32(buf[5:9], r.FirstChild)
		buf[9] = 0
		if r.Terminal {
			buf[9] = 1
		}
		if _, err := bw.Write(buf[:]); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Save writes the graph to filename.
func (g *Graph) Save(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := g.Write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	log.Info().Str("filename", filename).Str("type", g.typ.String()).Msg("saved")
	return nil
}

// Finish returns the loaded form of the graph, as if it had been saved and
// loaded again.
func (g *Graph) Finish(lexiconName string) (*gaddag.Gaddag, error) {
	return gaddag.FromRecords(g.typ, lexiconName, g.Records())
}
