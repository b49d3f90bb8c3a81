package ssz

import (
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomBranch(t *testing.T, f *fuzz.Fuzzer, depth int) ([32]byte, [][32]byte) {
	t.Helper()
	var leaf [32]byte
	f.Fuzz(&leaf)
	branch := make([][32]byte, depth)
	for i := range branch {
		f.Fuzz(&branch[i])
	}
	return leaf, branch
}

func TestVerifyProof_RoundTrip(t *testing.T) {
	f := fuzz.NewWithSeed(7).NilChance(0)
	tests := []struct {
		gindex uint64
		depth  uint64
	}{
		{gindex: 105, depth: 6},
		{gindex: 54, depth: 5},
		{gindex: 55, depth: 5},
		{gindex: 25, depth: 4},
		{gindex: 169, depth: 7},
		{gindex: 86, depth: 6},
		{gindex: 87, depth: 6},
	}
	for _, tt := range tests {
		leaf, branch := randomBranch(t, f, int(tt.depth))
		root := RootFromBranch(leaf, branch, tt.gindex)
		require.True(t, VerifyProof(root, leaf, branch, tt.depth, tt.gindex), "gindex %d", tt.gindex)
		assert.False(t, VerifyProof(root, leaf, branch, tt.depth, tt.gindex^1), "sibling gindex %d", tt.gindex)
	}
}

func TestVerifyProof_ByteFlip(t *testing.T) {
	f := fuzz.NewWithSeed(11).NilChance(0)
	leaf, branch := randomBranch(t, f, 6)
	root := RootFromBranch(leaf, branch, 105)
	for i := range branch {
		for b := 0; b < 32; b++ {
			branch[i][b] ^= 0x01
			assert.False(t, VerifyProof(root, leaf, branch, 6, 105), "branch %d byte %d", i, b)
			branch[i][b] ^= 0x01
		}
	}
	leaf[0] ^= 0xff
	assert.False(t, VerifyProof(root, leaf, branch, 6, 105))
	leaf[0] ^= 0xff
	require.True(t, VerifyProof(root, leaf, branch, 6, 105))
}

func TestVerifyProof_WrongLength(t *testing.T) {
	leaf := [32]byte{1}
	branch := [][32]byte{{2}, {3}, {4}, {5}}
	root := RootFromBranch(leaf, branch, 25)
	require.True(t, VerifyProof(root, leaf, branch, 4, 25))
	assert.False(t, VerifyProof(root, leaf, branch, 5, 25))
	assert.False(t, VerifyProof(root, leaf, branch[:3], 3, 25))
	assert.False(t, VerifyProof(root, leaf, nil, 4, 25))
}

func TestRootFromBranch_MatchesHashPair(t *testing.T) {
	a := [32]byte{0xaa}
	b := [32]byte{0xbb}
	// Index 2 is the left child of the root.
	assert.Equal(t, HashPair(a, b), RootFromBranch(a, [][32]byte{b}, 2))
	// Index 3 is the right child.
	assert.Equal(t, HashPair(b, a), RootFromBranch(a, [][32]byte{b}, 3))
	assert.Equal(t, Hash(append(a[:], b[:]...)), HashPair(a, b))
}
