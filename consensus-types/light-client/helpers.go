package light_client

import (
	"fmt"

	fieldparams "github.com/prysmaticlabs/synclight/config/fieldparams"
)

// BranchFromBytes converts a decoded Merkle branch into fixed size roots,
// checking it has exactly depth elements of 32 bytes.
func BranchFromBytes(name string, input [][]byte, depth uint64) ([][fieldparams.RootLength]byte, error) {
	if uint64(len(input)) != depth {
		return nil, fmt.Errorf("%s branch has %d leaves instead of expected %d", name, len(input), depth)
	}
	branch := make([][fieldparams.RootLength]byte, len(input))
	for i, leaf := range input {
		if len(leaf) != fieldparams.RootLength {
			return nil, fmt.Errorf("%s branch leaf at index %d has length %d instead of expected %d", name, i, len(leaf), fieldparams.RootLength)
		}
		copy(branch[i][:], leaf)
	}
	return branch, nil
}

// BranchToBytes is the inverse of BranchFromBytes.
func BranchToBytes(branch [][fieldparams.RootLength]byte) [][]byte {
	out := make([][]byte, len(branch))
	for i := range branch {
		out[i] = append([]byte{}, branch[i][:]...)
	}
	return out
}
