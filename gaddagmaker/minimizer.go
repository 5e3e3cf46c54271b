// This has utility functions for minimizing the automaton.

package gaddagmaker

import (
	"encoding/binary"

	"github.com/cespare/xxhash"
	"github.com/rs/zerolog/log"
)

// MinimizeStats reports what a minimization pass did.
type MinimizeStats struct {
	Before     int
	After      int
	Eliminated int
}

// Minimize shares common suffixes. It works depth by depth, from the nodes
// just above the leaves up towards the root. Two nodes at the same depth are
// the same if their child chains match child for child: same symbol, same
// terminal flag, and the very same grandchild chain. Since the chains one
// level down have already been merged, that identity check is enough. The
// later node then points at the earlier node's chain and its own becomes
// unreachable.
//
// To narrow down the number of direct comparisons, nodes of each depth are
// bucketed by a hash of their child chain.
func (g *Graph) Minimize() MinimizeStats {
	before := g.NodeCount()
	log.Debug().Int("nodes", before).Msg("minimizing")

	byDepth := make([][]uint32, int(g.nodes[rootIdx].depth)+1)
	for idx := rootIdx + 1; idx < uint32(len(g.nodes)); idx++ {
		d := g.nodes[idx].depth
		byDepth[d] = append(byDepth[d], idx)
	}
	// Leaves have no children, so start one level up.
	for depth := 1; depth < len(byDepth); depth++ {
		merged := 0
		buckets := make(map[uint64][]uint32, len(byDepth[depth]))
		for _, idx := range byDepth[depth] {
			head := g.nodes[idx].firstChild
			key := g.chainHash(head)
			canonical := uint32(0)
			for _, other := range buckets[key] {
				if g.sameChain(g.nodes[other].firstChild, head) {
					canonical = other
					break
				}
			}
			if canonical == 0 {
				buckets[key] = append(buckets[key], idx)
				continue
			}
			g.nodes[idx].firstChild = g.nodes[canonical].firstChild
			merged++
		}
		log.Debug().Int("depth", depth).Int("nodes", len(byDepth[depth])).
			Int("buckets", len(buckets)).Int("merged", merged).Msg("minimized depth")
	}
	g.minimized = true

	after := g.NodeCount()
	stats := MinimizeStats{Before: before, After: after, Eliminated: before - after}
	log.Info().Int("before", stats.Before).Int("eliminated", stats.Eliminated).
		Int("after", stats.After).Msg("minimized")
	return stats
}

// chainHash hashes the symbol, terminal flag and first child of every node
// in a sibling chain.
func (g *Graph) chainHash(head uint32) uint64 {
	buf := g.sigBuf[:0]
	for c := head; c != 0; c = g.nodes[c].nextSibling {
		n := &g.nodes[c]
		term := byte(0)
		if n.terminal {
			term = 1
		}
		buf = append(buf, n.symbol, term)
		buf = binary.LittleEndian.AppendUint32(buf, n.firstChild)
	}
	g.sigBuf = buf
	return xxhash.Sum64(buf)
}

// sameChain compares two sibling chains node by node. Chains of different
// lengths are never the same.
func (g *Graph) sameChain(a, b uint32) bool {
	for a != 0 && b != 0 {
		na, nb := &g.nodes[a], &g.nodes[b]
		if na.symbol != nb.symbol || na.terminal != nb.terminal ||
			na.firstChild != nb.firstChild {
			return false
		}
		a, b = na.nextSibling, nb.nextSibling
	}
	return a == b
}
