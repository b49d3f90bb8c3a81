// Package ssz holds the Merkle branch checks used by the light client.
package ssz

import (
	"github.com/minio/sha256-simd"
)

// VerifyProof checks that leaf sits at the generalized index gindex of the tree
// with the given root. Bit i of gindex tells whether the node is a right child
// at level i, so branch[i] is its left sibling when the bit is set.
func VerifyProof(root, leaf [32]byte, branch [][32]byte, depth, gindex uint64) bool {
	if uint64(len(branch)) != depth {
		return false
	}
	return RootFromBranch(leaf, branch, gindex) == root
}

// RootFromBranch folds branch into leaf bottom-up and returns the resulting root.
func RootFromBranch(leaf [32]byte, branch [][32]byte, gindex uint64) [32]byte {
	node := leaf
	var tmp [64]byte
	for i, h := range branch {
		if isRightAtLevel(gindex, i) {
			copy(tmp[:32], h[:])
			copy(tmp[32:], node[:])
		} else {
			copy(tmp[:32], node[:])
			copy(tmp[32:], h[:])
		}
		node = sha256.Sum256(tmp[:])
	}
	return node
}

// Hash returns the SHA-256 digest of data.
func Hash(data []byte) [32]byte {
	return sha256.Sum256(data)
}

// HashPair returns sha256(a || b).
func HashPair(a, b [32]byte) [32]byte {
	var tmp [64]byte
	copy(tmp[:32], a[:])
	copy(tmp[32:], b[:])
	return sha256.Sum256(tmp[:])
}

// Returns the position (false for left, true for right) of an index at a
// given level. Level 0 is the index's own level.
func isRightAtLevel(index uint64, level int) bool {
	if level >= 64 {
		return false
	}
	return index&(1<<uint(level)) > 0
}
