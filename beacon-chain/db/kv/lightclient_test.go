package kv

import (
	"context"
	"testing"

	"github.com/prysmaticlabs/synclight/beacon-chain/db/iface"
	light_client "github.com/prysmaticlabs/synclight/consensus-types/light-client"
	"github.com/prysmaticlabs/synclight/consensus-types/primitives"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testHeader(slot primitives.Slot) *light_client.BeaconBlockHeader {
	h := &light_client.BeaconBlockHeader{Slot: slot, ProposerIndex: 42}
	h.StateRoot[0] = byte(slot)
	h.BodyRoot[31] = 0xee
	return h
}

func testCommittee(n int, seed byte) *light_client.SyncCommittee {
	c := &light_client.SyncCommittee{Pubkeys: make([][48]byte, n)}
	for i := range c.Pubkeys {
		c.Pubkeys[i][0] = seed
		c.Pubkeys[i][1] = byte(i)
		c.Pubkeys[i][2] = byte(i >> 8)
	}
	c.AggregatePubkey[0] = seed
	return c
}

func TestStore_LightClient_NotInitialized(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	s := db.LightClientStore("mainnet")
	_, err := s.CurrentSyncCommittee(ctx)
	require.ErrorIs(t, err, iface.ErrStoreNotInitialized)
	_, err = s.NextSyncCommittee(ctx)
	require.ErrorIs(t, err, iface.ErrStoreNotInitialized)
	_, err = s.FinalizedHeader(ctx)
	require.ErrorIs(t, err, iface.ErrStoreNotInitialized)
	_, err = s.OptimisticHeader(ctx)
	require.ErrorIs(t, err, iface.ErrStoreNotInitialized)
}

func TestStore_LightClient_CanSaveRetrieve(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	s := db.LightClientStore("mainnet")

	current := testCommittee(512, 1)
	require.NoError(t, s.SaveCurrentSyncCommittee(ctx, current))
	require.NoError(t, s.SaveFinalizedHeader(ctx, testHeader(105)))
	require.NoError(t, s.SaveOptimisticHeader(ctx, testHeader(110)))

	got, err := s.CurrentSyncCommittee(ctx)
	require.NoError(t, err)
	assert.True(t, current.Equals(got))
	next, err := s.NextSyncCommittee(ctx)
	require.NoError(t, err)
	assert.Nil(t, next)
	fin, err := s.FinalizedHeader(ctx)
	require.NoError(t, err)
	assert.Equal(t, testHeader(105), fin)
	opt, err := s.OptimisticHeader(ctx)
	require.NoError(t, err)
	assert.Equal(t, testHeader(110), opt)

	nextCommittee := testCommittee(512, 2)
	require.NoError(t, s.SaveNextSyncCommittee(ctx, nextCommittee))
	next, err = s.NextSyncCommittee(ctx)
	require.NoError(t, err)
	assert.True(t, nextCommittee.Equals(next))

	require.NoError(t, s.SaveNextSyncCommittee(ctx, nil))
	next, err = s.NextSyncCommittee(ctx)
	require.NoError(t, err)
	assert.Nil(t, next)

	require.ErrorContains(t, s.SaveFinalizedHeader(ctx, nil), "cannot encode nil message")
}

func TestStore_LightClient_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	db, err := NewKVStore(ctx, dir)
	require.NoError(t, err)
	s := db.LightClientStore("sepolia")
	require.NoError(t, s.SaveCurrentSyncCommittee(ctx, testCommittee(32, 9)))
	require.NoError(t, s.SaveFinalizedHeader(ctx, testHeader(64)))
	require.NoError(t, db.Close())

	db, err = NewKVStore(ctx, dir)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, db.Close())
	}()
	s = db.LightClientStore("sepolia")
	got, err := s.CurrentSyncCommittee(ctx)
	require.NoError(t, err)
	assert.True(t, testCommittee(32, 9).Equals(got))
	fin, err := s.FinalizedHeader(ctx)
	require.NoError(t, err)
	assert.Equal(t, primitives.Slot(64), fin.Slot)
}

func TestStore_LightClient_NetworksAreIsolated(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	mainnet := db.LightClientStore("mainnet")
	holesky := db.LightClientStore("holesky")
	require.NoError(t, mainnet.SaveCurrentSyncCommittee(ctx, testCommittee(512, 1)))
	require.NoError(t, mainnet.SaveFinalizedHeader(ctx, testHeader(1)))
	require.NoError(t, holesky.SaveCurrentSyncCommittee(ctx, testCommittee(512, 2)))

	_, err := holesky.FinalizedHeader(ctx)
	require.ErrorIs(t, err, iface.ErrStoreNotInitialized)
	got, err := holesky.CurrentSyncCommittee(ctx)
	require.NoError(t, err)
	assert.Equal(t, byte(2), got.AggregatePubkey[0])

	names, err := db.Networks(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"mainnet", "holesky"}, names)

	require.NoError(t, db.DeleteNetwork(ctx, "holesky"))
	require.NoError(t, db.DeleteNetwork(ctx, "holesky"))
	_, err = holesky.CurrentSyncCommittee(ctx)
	require.ErrorIs(t, err, iface.ErrStoreNotInitialized)
	_, err = mainnet.CurrentSyncCommittee(ctx)
	require.NoError(t, err)
}

func TestStore_LightClient_SaveTrustedState(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	s := db.LightClientStore("mainnet")

	pre := &iface.TrustedState{
		CurrentSyncCommittee: testCommittee(512, 1),
		NextSyncCommittee:    testCommittee(512, 2),
		FinalizedHeader:      testHeader(105),
		OptimisticHeader:     testHeader(110),
	}
	require.NoError(t, s.SaveTrustedState(ctx, pre))

	// A rotation with a header that cannot be encoded writes nothing.
	bad := &iface.TrustedState{
		CurrentSyncCommittee: testCommittee(512, 2),
		NextSyncCommittee:    testCommittee(512, 3),
		OptimisticHeader:     testHeader(8300),
	}
	require.ErrorContains(t, s.SaveTrustedState(ctx, bad), "cannot encode nil message")
	require.ErrorContains(t, s.SaveTrustedState(ctx, nil), "nil trusted state")

	current, err := s.CurrentSyncCommittee(ctx)
	require.NoError(t, err)
	assert.True(t, pre.CurrentSyncCommittee.Equals(current))
	next, err := s.NextSyncCommittee(ctx)
	require.NoError(t, err)
	assert.True(t, pre.NextSyncCommittee.Equals(next))
	fin, err := s.FinalizedHeader(ctx)
	require.NoError(t, err)
	assert.Equal(t, testHeader(105), fin)
	opt, err := s.OptimisticHeader(ctx)
	require.NoError(t, err)
	assert.Equal(t, testHeader(110), opt)

	post := &iface.TrustedState{
		CurrentSyncCommittee: testCommittee(512, 2),
		FinalizedHeader:      testHeader(8200),
		OptimisticHeader:     testHeader(8300),
	}
	require.NoError(t, s.SaveTrustedState(ctx, post))
	current, err = s.CurrentSyncCommittee(ctx)
	require.NoError(t, err)
	assert.True(t, post.CurrentSyncCommittee.Equals(current))
	next, err = s.NextSyncCommittee(ctx)
	require.NoError(t, err)
	assert.Nil(t, next)
	fin, err = s.FinalizedHeader(ctx)
	require.NoError(t, err)
	assert.Equal(t, testHeader(8200), fin)
	opt, err = s.OptimisticHeader(ctx)
	require.NoError(t, err)
	assert.Equal(t, testHeader(8300), opt)
}
