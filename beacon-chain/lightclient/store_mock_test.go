package lightclient

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/prysmaticlabs/synclight/beacon-chain/db/iface"
	light_client "github.com/prysmaticlabs/synclight/consensus-types/light-client"
	"github.com/prysmaticlabs/synclight/consensus-types/primitives"
	"github.com/prysmaticlabs/synclight/testing/mock"
	"github.com/prysmaticlabs/synclight/testing/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// expectState makes the mock store report a bootstrapped state at slot 100.
func expectState(store *mock.MockLightClientStore, current *light_client.SyncCommittee) {
	header := util.NewBeaconHeader(100, [32]byte{0x01})
	store.EXPECT().CurrentSyncCommittee(gomock.Any()).Return(current, nil).AnyTimes()
	store.EXPECT().NextSyncCommittee(gomock.Any()).Return(nil, nil).AnyTimes()
	store.EXPECT().FinalizedHeader(gomock.Any()).Return(header, nil).AnyTimes()
	store.EXPECT().OptimisticHeader(gomock.Any()).Return(header, nil).AnyTimes()
}

func TestImportUpdate_RejectedUpdateDoesNotWrite(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	cfg := mainnetPresetConfig()
	c0, c1, _ := testCommittees(t, 512)

	store := mock.NewMockLightClientStore(ctrl)
	expectState(store, c0.committee)
	lc, err := New(cfg, store)
	require.NoError(t, err)

	u, err := util.NewUpdate(cfg, &util.UpdateConfig{
		AttestedSlot: 110, Finalized: true, FinalizedSlot: 105,
		NextSyncCommittee: c1.committee, Participants: 400, SigningKeys: c1.keys,
	})
	require.NoError(t, err)
	require.ErrorIs(t, lc.ImportUpdate(context.Background(), u), ErrSignatureVerificationFailed)
}

func TestImportUpdate_SingleBatchedWrite(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	cfg := mainnetPresetConfig()
	c0, c1, _ := testCommittees(t, 512)

	store := mock.NewMockLightClientStore(ctrl)
	expectState(store, c0.committee)
	store.EXPECT().SaveTrustedState(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, s *iface.TrustedState) error {
			assert.True(t, s.CurrentSyncCommittee.Equals(c0.committee))
			assert.True(t, s.NextSyncCommittee.Equals(c1.committee))
			assert.Equal(t, primitives.Slot(105), s.FinalizedHeader.Slot)
			assert.Equal(t, primitives.Slot(110), s.OptimisticHeader.Slot)
			return nil
		}).Times(1)
	lc, err := New(cfg, store)
	require.NoError(t, err)

	u, err := util.NewUpdate(cfg, &util.UpdateConfig{
		AttestedSlot: 110, Finalized: true, FinalizedSlot: 105,
		NextSyncCommittee: c1.committee, Participants: 400, SigningKeys: c0.keys,
	})
	require.NoError(t, err)
	require.NoError(t, lc.ImportUpdate(context.Background(), u))
}

func TestImportUpdate_StoreWriteError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	cfg := mainnetPresetConfig()
	c0, _, _ := testCommittees(t, 512)

	store := mock.NewMockLightClientStore(ctrl)
	expectState(store, c0.committee)
	store.EXPECT().SaveTrustedState(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))
	lc, err := New(cfg, store)
	require.NoError(t, err)

	u, err := util.NewUpdate(cfg, &util.UpdateConfig{AttestedSlot: 110, Participants: 200, SigningKeys: c0.keys})
	require.NoError(t, err)
	err = lc.ImportUpdate(context.Background(), u)
	require.ErrorContains(t, err, "could not save light client state: disk full")
}
