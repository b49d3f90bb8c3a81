package light

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/prysmaticlabs/synclight/beacon-chain/db/kv"
	"github.com/prysmaticlabs/synclight/beacon-chain/db/memory"
	"github.com/prysmaticlabs/synclight/beacon-chain/lightclient"
	"github.com/prysmaticlabs/synclight/config/params"
	light_client "github.com/prysmaticlabs/synclight/consensus-types/light-client"
	"github.com/prysmaticlabs/synclight/consensus-types/primitives"
	"github.com/prysmaticlabs/synclight/crypto/bls"
	"github.com/prysmaticlabs/synclight/testing/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testNetwork(name string, gvr byte) *params.ConsensusConfig {
	cfg := params.MinimalSpecConfig()
	cfg.ConfigName = name
	cfg.GenesisValidatorsRoot = [32]byte{gvr}
	return cfg
}

type fixture struct {
	cfg       *params.ConsensusConfig
	committee *light_client.SyncCommittee
	keys      []bls.SecretKey
}

func newFixture(t *testing.T, name string, gvr byte) *fixture {
	cfg := testNetwork(name, gvr)
	c0, k0, err := util.DeterministicSyncCommittee(32, gvr)
	require.NoError(t, err)
	return &fixture{cfg: cfg, committee: c0, keys: k0}
}

func (f *fixture) bootstrap(t *testing.T, s *Service) {
	b, root, err := util.NewBootstrap(f.cfg, f.committee, 20)
	require.NoError(t, err)
	require.NoError(t, s.Initialize(context.Background(), f.cfg.ConfigName, b, f.cfg.GenesisValidatorsRoot, root))
}

func (f *fixture) update(t *testing.T, attested, finalized primitives.Slot, participants uint64) *light_client.Update {
	u, err := util.NewUpdate(f.cfg, &util.UpdateConfig{
		AttestedSlot:  attested,
		Finalized:     finalized != 0,
		FinalizedSlot: finalized,
		Participants:  participants,
		SigningKeys:   f.keys,
	})
	require.NoError(t, err)
	return u
}

func newService(t *testing.T, fixtures ...*fixture) *Service {
	s, err := New(&Config{Stores: memory.NewProvider()})
	require.NoError(t, err)
	for _, f := range fixtures {
		require.NoError(t, s.Register(f.cfg))
	}
	return s
}

func TestNew_NoStores(t *testing.T) {
	_, err := New(&Config{})
	require.ErrorContains(t, err, "no store provider")
}

func TestService_Register(t *testing.T) {
	s := newService(t)
	require.NoError(t, s.Register(testNetwork("beta", 2)))
	require.NoError(t, s.Register(testNetwork("alpha", 1)))
	require.ErrorContains(t, s.Register(testNetwork("alpha", 3)), "already registered")
	bad := testNetwork("broken", 4)
	bad.ForkSchedule = nil
	require.Error(t, s.Register(bad))
	assert.Equal(t, []string{"alpha", "beta"}, s.Networks())
}

func TestService_UnknownNetwork(t *testing.T) {
	ctx := context.Background()
	s := newService(t)
	require.ErrorIs(t, s.ImportUpdate(ctx, "nope", nil), ErrUnknownNetwork)
	_, err := s.FinalizedHeader(ctx, "nope")
	require.ErrorIs(t, err, ErrUnknownNetwork)
	_, err = s.OptimisticHeader(ctx, "nope")
	require.ErrorIs(t, err, ErrUnknownNetwork)
	require.ErrorIs(t, s.ImportBatches(ctx, map[string][]*light_client.Update{"nope": nil}), ErrUnknownNetwork)
}

func TestService_InitializeOnce(t *testing.T) {
	f := newFixture(t, "svc-init", 10)
	s := newService(t, f)
	f.bootstrap(t, s)

	b, root, err := util.NewBootstrap(f.cfg, f.committee, 30)
	require.NoError(t, err)
	err = s.Initialize(context.Background(), f.cfg.ConfigName, b, f.cfg.GenesisValidatorsRoot, root)
	require.ErrorIs(t, err, ErrAlreadyInitialized)

	h, err := s.FinalizedHeader(context.Background(), f.cfg.ConfigName)
	require.NoError(t, err)
	assert.Equal(t, primitives.Slot(20), h.Slot)
	assert.Equal(t, float64(20), testutil.ToFloat64(finalizedSlot.WithLabelValues(f.cfg.ConfigName)))
}

func TestService_ImportUpdate(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, "svc-import", 20)
	s := newService(t, f)
	require.ErrorIs(t, s.ImportUpdate(ctx, f.cfg.ConfigName, f.update(t, 30, 25, 32)), lightclient.ErrStoreNotInitialized)
	f.bootstrap(t, s)

	require.NoError(t, s.ImportUpdate(ctx, f.cfg.ConfigName, f.update(t, 30, 25, 32)))
	err := s.ImportUpdate(ctx, f.cfg.ConfigName, f.update(t, 31, 0, 0))
	require.ErrorIs(t, err, lightclient.ErrZeroParticipants)

	h, err := s.OptimisticHeader(ctx, f.cfg.ConfigName)
	require.NoError(t, err)
	assert.Equal(t, primitives.Slot(30), h.Slot)
	h, err = s.FinalizedHeader(ctx, f.cfg.ConfigName)
	require.NoError(t, err)
	assert.Equal(t, primitives.Slot(25), h.Slot)

	name := f.cfg.ConfigName
	assert.Equal(t, float64(1), testutil.ToFloat64(updatesImported.WithLabelValues(name)))
	assert.Equal(t, float64(1), testutil.ToFloat64(updatesRejected.WithLabelValues(name, "zero_participants")))
	assert.Equal(t, float64(1), testutil.ToFloat64(updatesRejected.WithLabelValues(name, "not_initialized")))
	assert.Equal(t, float64(30), testutil.ToFloat64(optimisticSlot.WithLabelValues(name)))
	assert.Equal(t, float64(25), testutil.ToFloat64(finalizedSlot.WithLabelValues(name)))
}

func TestService_BestUpdate(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, "svc-best", 30)
	s := newService(t, f)
	f.bootstrap(t, s)

	weak := f.update(t, 30, 0, 12)
	strong := f.update(t, 40, 35, 30)
	require.NoError(t, s.ImportUpdate(ctx, f.cfg.ConfigName, weak))
	best, err := s.BestUpdate(f.cfg.ConfigName, 0)
	require.NoError(t, err)
	assert.Equal(t, weak, best)

	require.NoError(t, s.ImportUpdate(ctx, f.cfg.ConfigName, strong))
	best, err = s.BestUpdate(f.cfg.ConfigName, 0)
	require.NoError(t, err)
	assert.Equal(t, strong, best)

	_, err = s.BestUpdate(f.cfg.ConfigName, 1)
	require.ErrorContains(t, err, "no update known")
}

func TestService_ImportBatches(t *testing.T) {
	ctx := context.Background()
	a := newFixture(t, "svc-batch-a", 40)
	b := newFixture(t, "svc-batch-b", 50)
	s := newService(t, a, b)
	a.bootstrap(t, s)
	b.bootstrap(t, s)

	err := s.ImportBatches(ctx, map[string][]*light_client.Update{
		a.cfg.ConfigName: {a.update(t, 30, 25, 32), a.update(t, 40, 35, 32)},
		b.cfg.ConfigName: {b.update(t, 50, 45, 32)},
	})
	require.NoError(t, err)

	st, err := s.State(ctx, a.cfg.ConfigName)
	require.NoError(t, err)
	assert.Equal(t, primitives.Slot(35), st.FinalizedHeader.Slot)
	st, err = s.State(ctx, b.cfg.ConfigName)
	require.NoError(t, err)
	assert.Equal(t, primitives.Slot(45), st.FinalizedHeader.Slot)

	// Updates signed for network a do not verify on network b.
	err = s.ImportBatches(ctx, map[string][]*light_client.Update{
		b.cfg.ConfigName: {a.update(t, 60, 55, 32)},
	})
	require.ErrorIs(t, err, lightclient.ErrSignatureVerificationFailed)
	require.ErrorContains(t, err, "network svc-batch-b")
}

func TestService_ImportUpdates_StopsAtFirstFailure(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, "svc-seq", 60)
	s := newService(t, f)
	f.bootstrap(t, s)

	n, err := s.ImportUpdates(ctx, f.cfg.ConfigName, []*light_client.Update{
		f.update(t, 30, 25, 32),
		f.update(t, 24, 0, 32),
		f.update(t, 40, 35, 32),
	})
	require.ErrorIs(t, err, lightclient.ErrInvalidUpdate)
	assert.Equal(t, 1, n)
	h, err := s.FinalizedHeader(ctx, f.cfg.ConfigName)
	require.NoError(t, err)
	assert.Equal(t, primitives.Slot(25), h.Slot)
}

func TestService_DurableStore(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	f := newFixture(t, "svc-kv", 70)

	db, err := kv.NewKVStore(ctx, dir)
	require.NoError(t, err)
	s, err := New(&Config{Stores: db})
	require.NoError(t, err)
	require.NoError(t, s.Register(f.cfg))
	f.bootstrap(t, s)
	require.NoError(t, s.ImportUpdate(ctx, f.cfg.ConfigName, f.update(t, 30, 25, 32)))
	require.NoError(t, db.Close())

	db, err = kv.NewKVStore(ctx, dir)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, db.Close())
	}()
	s, err = New(&Config{Stores: db})
	require.NoError(t, err)
	require.NoError(t, s.Register(f.cfg))

	b, root, err := util.NewBootstrap(f.cfg, f.committee, 20)
	require.NoError(t, err)
	require.ErrorIs(t, s.Initialize(ctx, f.cfg.ConfigName, b, f.cfg.GenesisValidatorsRoot, root), ErrAlreadyInitialized)
	h, err := s.FinalizedHeader(ctx, f.cfg.ConfigName)
	require.NoError(t, err)
	assert.Equal(t, primitives.Slot(25), h.Slot)
}
