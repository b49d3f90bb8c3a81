package signing_test

import (
	"encoding/hex"
	"testing"

	"github.com/prysmaticlabs/synclight/beacon-chain/core/signing"
	"github.com/prysmaticlabs/synclight/config/params"
	light_client "github.com/prysmaticlabs/synclight/consensus-types/light-client"
	"github.com/prysmaticlabs/synclight/encoding/ssz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSigningRoot_ComputeDomain_ZeroForkData(t *testing.T) {
	for _, domainType := range [][4]byte{{4, 0, 0, 0}, {5, 0, 0, 0}, {7, 0, 0, 0}} {
		got, err := signing.ComputeDomain(domainType, [4]byte{}, [32]byte{})
		require.NoError(t, err)
		want := append(domainType[:], []byte{245, 165, 253, 66, 209, 106, 32, 48, 39, 152, 239, 110, 211, 9, 151, 155, 67, 0, 61, 35, 32, 217, 240, 232, 234, 152, 49, 169}...)
		assert.Equal(t, want, got[:])
	}
}

func TestSigningRoot_ComputeDomain_Mainnet(t *testing.T) {
	cfg := params.MainnetConfig()
	tests := []struct {
		fork    string
		version [4]byte
		want    string
	}{
		{fork: "altair", version: [4]byte{1, 0, 0, 0}, want: "07000000afcaaba0efab1ca832a15152469bb09bb84641c405171dfa2d3fb45f"},
		{fork: "bellatrix", version: [4]byte{2, 0, 0, 0}, want: "070000004a26c58b08add8089b75caa540848881a8d4f0af0be83417a85c0f45"},
		{fork: "capella", version: [4]byte{3, 0, 0, 0}, want: "07000000bba4da96354c9f25476cf1bc69bf583a7f9e0af049305b62de676640"},
		{fork: "deneb", version: [4]byte{4, 0, 0, 0}, want: "070000006a95a1a967855d676d48be69883b712607f952d5198d0f5677564636"},
		{fork: "electra", version: [4]byte{5, 0, 0, 0}, want: "07000000ad532ceb9ec5d246daad29da8aa157bfdab35e5f069f9db81f1da754"},
	}
	for _, tt := range tests {
		t.Run(tt.fork, func(t *testing.T) {
			got, err := signing.ComputeDomain(cfg.DomainSyncCommittee, tt.version, cfg.GenesisValidatorsRoot)
			require.NoError(t, err)
			assert.Equal(t, tt.want, hex.EncodeToString(got[:]))
		})
	}
}

func TestSigningRoot_ComputeForkDataRoot(t *testing.T) {
	version := [4]byte{1, 2, 3, 4}
	gvr := [32]byte{0xaa, 31: 0xbb}
	got, err := signing.ComputeForkDataRoot(version, gvr)
	require.NoError(t, err)
	var versionChunk [32]byte
	copy(versionChunk[:], version[:])
	assert.Equal(t, ssz.HashPair(versionChunk, gvr), got)
}

func TestSigningRoot_ComputeSigningRoot(t *testing.T) {
	header := &light_client.BeaconBlockHeader{Slot: 110, ProposerIndex: 3, StateRoot: [32]byte{1}}
	domain := [32]byte{'T', 'E', 'S', 'T'}
	got, err := signing.ComputeSigningRoot(header, domain)
	require.NoError(t, err)

	headerRoot, err := header.HashTreeRoot()
	require.NoError(t, err)
	assert.Equal(t, ssz.HashPair(headerRoot, domain), got)

	other, err := signing.ComputeSigningRoot(header, [32]byte{'T', 'E', 'S', 'U'})
	require.NoError(t, err)
	assert.NotEqual(t, got, other)
}
