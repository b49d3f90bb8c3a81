package util

import (
	"encoding/binary"
	"math/bits"

	"github.com/prysmaticlabs/synclight/encoding/ssz"
)

// SparseTree is a Merkle tree defined by a few leaves at generalized indices.
// Every other subtree is replaced by a filler node derived from its index.
type SparseTree struct {
	leaves map[uint64][32]byte
	cache  map[uint64][32]byte
}

// NewSparseTree builds a tree holding leaves, keyed by generalized index.
func NewSparseTree(leaves map[uint64][32]byte) *SparseTree {
	t := &SparseTree{leaves: make(map[uint64][32]byte, len(leaves)), cache: make(map[uint64][32]byte)}
	for g, l := range leaves {
		t.leaves[g] = l
	}
	return t
}

// Root returns the tree root.
func (t *SparseTree) Root() [32]byte {
	return t.node(1)
}

// Branch returns the siblings of gindex from the bottom up.
func (t *SparseTree) Branch(gindex uint64) [][32]byte {
	depth := bits.Len64(gindex) - 1
	branch := make([][32]byte, depth)
	for i := 0; i < depth; i++ {
		branch[i] = t.node(gindex ^ 1)
		gindex >>= 1
	}
	return branch
}

func (t *SparseTree) node(g uint64) [32]byte {
	if l, ok := t.leaves[g]; ok {
		return l
	}
	if n, ok := t.cache[g]; ok {
		return n
	}
	var n [32]byte
	if t.hasLeafBelow(g) {
		n = ssz.HashPair(t.node(2*g), t.node(2*g+1))
	} else {
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], g)
		n = ssz.Hash(buf[:])
	}
	t.cache[g] = n
	return n
}

func (t *SparseTree) hasLeafBelow(g uint64) bool {
	gl := bits.Len64(g)
	for l := range t.leaves {
		ll := bits.Len64(l)
		if ll > gl && l>>uint(ll-gl) == g {
			return true
		}
	}
	return false
}
