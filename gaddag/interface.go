package gaddag

// WordGraph is what move generation and lookups need from an automaton.
type WordGraph interface {
	GetRootNodeIndex() uint32
	NextNodeIdx(nodeIdx uint32, symbol byte) uint32
	IterateSiblings(nodeIdx uint32, cb func(symbol byte, childIdx uint32))
	Accepts(nodeIdx uint32) bool
	Type() Type
	LexiconName() string
}

var _ WordGraph = (*Gaddag)(nil)
