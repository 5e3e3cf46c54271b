// Package gaddag implements the GADDAG, a pretty cool data structure
// invented by Steven Gordon, along with the plain DAWG it generalizes.
//
// Both are stored as a flat array of records addressed by 1-based index:
//
//	u32  node count
//	then, for every index from 1 to count:
//	  u8   symbol       ('A'-'Z', SeparationToken, or RootSymbol)
//	  u32  next sibling (0 = none)
//	  u32  first child  (0 = none)
//	  u8   terminal     (0 or 1)
//
// All integers are little-endian. Record 1 is the root. Children of a node
// are a sibling chain sorted by symbol.
package gaddag

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	// SeparationToken is the GADDAG separation token. It sorts before 'A'.
	SeparationToken = '#'
	// RootSymbol is the symbol stored on the root record.
	RootSymbol = '@'
	// HeaderSize is the size in bytes of the node count.
	HeaderSize = 4
	// RecordSize is the size in bytes of one serialized record.
	RecordSize = 10
	// RootIdx is the index of the root record.
	RootIdx uint32 = 1
)

// ErrCorrupt is returned for any automaton file that can't be loaded in
// full. No partially loaded automaton is ever returned with it.
var ErrCorrupt = errors.New("corrupt automaton")

// Type tells apart a DAWG (words stored forwards) from a GADDAG (every
// split of every word stored as reversed prefix, separator, suffix).
type Type uint8

const (
	TypeDawg Type = iota
	TypeGaddag
)

func (t Type) String() string {
	switch t {
	case TypeDawg:
		return "dawg"
	case TypeGaddag:
		return "gaddag"
	}
	return "unknown"
}

// Extension is the filename extension automata of this type are saved with.
func (t Type) Extension() string {
	return "." + t.String()
}

// ParseType parses "dawg" or "gaddag".
func ParseType(s string) (Type, error) {
	switch strings.ToLower(s) {
	case "dawg":
		return TypeDawg, nil
	case "gaddag":
		return TypeGaddag, nil
	}
	return 0, fmt.Errorf("unknown automaton type %q", s)
}

// TypeFromFilename infers the type from a .dawg or .gaddag extension.
func TypeFromFilename(filename string) (Type, error) {
	return ParseType(strings.TrimPrefix(filepath.Ext(filename), "."))
}

// A Record is one node of a loaded automaton.
type Record struct {
	Symbol      byte
	NextSibling uint32
	FirstChild  uint32
	Terminal    bool
}

// Gaddag is an immutable, loaded automaton. It is safe to share between
// goroutines. Despite the name it may hold a DAWG; see Type.
type Gaddag struct {
	typ         Type
	lexiconName string
	// nodes[0] is a placeholder so that indices match record ids.
	nodes []Record
}

// FromRecords builds an automaton out of records, where records[0] is the
// record with index 1. The record links are validated.
func FromRecords(typ Type, lexiconName string, records []Record) (*Gaddag, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: no records", ErrCorrupt)
	}
	nodes := make([]Record, len(records)+1)
	copy(nodes[1:], records)
	count := uint32(len(records))
	for i := uint32(1); i <= count; i++ {
		if nodes[i].NextSibling > count || nodes[i].FirstChild > count {
			return nil, fmt.Errorf("%w: record %d links past the last record (%d)",
				ErrCorrupt, i, count)
		}
	}
	return &Gaddag{typ: typ, lexiconName: lexiconName, nodes: nodes}, nil
}

// Read decodes an automaton of the given type from r. r must hold exactly
// one automaton; trailing bytes are an error.
func Read(r io.Reader, typ Type) (*Gaddag, error) {
	return read(r, typ, "")
}

func read(r io.Reader, typ Type, lexiconName string) (*Gaddag, error) {
	var count uint32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, fmt.Errorf("%w: reading node count: %v", ErrCorrupt, err)
	}
	if count == 0 {
		return nil, fmt.Errorf("%w: node count is zero", ErrCorrupt)
	}
	want := int64(count) * RecordSize
	data, err := io.ReadAll(io.LimitReader(r, want))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if int64(len(data)) != want {
		return nil, fmt.Errorf("%w: expected %d records, file holds %d bytes of records",
			ErrCorrupt, count, len(data))
	}
	var extra [1]byte
	if n, _ := io.ReadFull(r, extra[:]); n > 0 {
		return nil, fmt.Errorf("%w: trailing data after %d records", ErrCorrupt, count)
	}
	records := make([]Record, count)
	for i := range records {
		rec := data[i*RecordSize : (i+1)*RecordSize]
		records[i] = Record{
			Symbol:      rec[0],
			NextSibling: binary.LittleEndian.Uint32(rec[1:5]),
			FirstChild:  binary.LittleEndian.Uint32(rec[5:9]),
			Terminal:    rec[9] != 0,
		}
	}
	return FromRecords(typ, lexiconName, records)
}

// Load loads an automaton of the given type from a file.
func Load(filename string, typ Type) (*Gaddag, error) {
	log.Debug().Str("filename", filename).Str("type", typ.String()).Msg("loading automaton")
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	name := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	g, err := read(f, typ, name)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	log.Debug().Uint32("nodes", g.NumNodes()).Msg("loaded automaton")
	return g, nil
}

// LoadFile loads an automaton, inferring its type from the file extension.
func LoadFile(filename string) (*Gaddag, error) {
	typ, err := TypeFromFilename(filename)
	if err != nil {
		return nil, err
	}
	return Load(filename, typ)
}

// Type returns whether this is a DAWG or a GADDAG.
func (g *Gaddag) Type() Type {
	return g.typ
}

// LexiconName is the base name of the file this was loaded from, if any.
func (g *Gaddag) LexiconName() string {
	return g.lexiconName
}

// NumNodes returns the number of records.
func (g *Gaddag) NumNodes() uint32 {
	return uint32(len(g.nodes) - 1)
}

// GetRootNodeIndex returns the index of the root node.
func (g *Gaddag) GetRootNodeIndex() uint32 {
	return RootIdx
}

// Node returns the record at nodeIdx.
func (g *Gaddag) Node(nodeIdx uint32) Record {
	return g.nodes[nodeIdx]
}

// Symbol returns the symbol on the record at nodeIdx.
func (g *Gaddag) Symbol(nodeIdx uint32) byte {
	return g.nodes[nodeIdx].Symbol
}

// Accepts returns whether a word ends at nodeIdx.
func (g *Gaddag) Accepts(nodeIdx uint32) bool {
	return nodeIdx != 0 && g.nodes[nodeIdx].Terminal
}

// NextNodeIdx returns the index of the child of nodeIdx with the given
// symbol, or 0 if there isn't one.
func (g *Gaddag) NextNodeIdx(nodeIdx uint32, symbol byte) uint32 {
	if nodeIdx == 0 {
		return 0
	}
	for i := g.nodes[nodeIdx].FirstChild; i != 0; i = g.nodes[i].NextSibling {
		if g.nodes[i].Symbol == symbol {
			return i
		}
	}
	return 0
}

// IterateSiblings calls cb for each child of nodeIdx, in symbol order.
func (g *Gaddag) IterateSiblings(nodeIdx uint32, cb func(symbol byte, childIdx uint32)) {
	if nodeIdx == 0 {
		return
	}
	for i := g.nodes[nodeIdx].FirstChild; i != 0; i = g.nodes[i].NextSibling {
		cb(g.nodes[i].Symbol, i)
	}
}
