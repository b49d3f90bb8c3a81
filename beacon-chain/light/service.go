// Package light runs light clients for several networks side by side. Each
// network has its own store and lock, so updates for one network are applied
// in order while different networks proceed in parallel.
package light

import (
	"context"
	"sort"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru"
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/synclight/beacon-chain/db/iface"
	"github.com/prysmaticlabs/synclight/beacon-chain/lightclient"
	"github.com/prysmaticlabs/synclight/config/params"
	light_client "github.com/prysmaticlabs/synclight/consensus-types/light-client"
	"github.com/prysmaticlabs/synclight/time/slots"
	"github.com/sirupsen/logrus"
	"go.opencensus.io/trace"
	"golang.org/x/sync/errgroup"
)

var log = logrus.WithField("prefix", "light")

// bestUpdatePeriods is how many sync committee periods keep a best update.
const bestUpdatePeriods = 16

var (
	// ErrUnknownNetwork is returned for a network that was not registered.
	ErrUnknownNetwork = errors.New("unknown network")
	// ErrAlreadyInitialized is returned when bootstrapping a network twice.
	ErrAlreadyInitialized = errors.New("light client store already initialized")
)

// StoreProvider hands out the store of a network.
type StoreProvider interface {
	LightClientStore(network string) iface.LightClientStore
}

// Config holds the dependencies of the service.
type Config struct {
	Stores StoreProvider
}

type network struct {
	sync.Mutex
	cfg    *params.ConsensusConfig
	store  iface.LightClientStore
	client *lightclient.LightClient
	// best holds the best accepted update per sync committee period.
	best *lru.Cache
}

// Service tracks the light client state of every registered network.
type Service struct {
	cfg      *Config
	lock     sync.RWMutex
	networks map[string]*network
}

// New returns a service without registered networks.
func New(cfg *Config) (*Service, error) {
	if cfg == nil || cfg.Stores == nil {
		return nil, errors.New("no store provider configured")
	}
	return &Service{
		cfg:      cfg,
		networks: make(map[string]*network),
	}, nil
}

// Register adds a network, keyed by its config name.
func (s *Service) Register(cfg *params.ConsensusConfig) error {
	if cfg == nil {
		return errors.New("nil consensus config")
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	if _, ok := s.networks[cfg.ConfigName]; ok {
		return errors.Errorf("network %s already registered", cfg.ConfigName)
	}
	store := s.cfg.Stores.LightClientStore(cfg.ConfigName)
	client, err := lightclient.New(cfg, store)
	if err != nil {
		return err
	}
	best, err := lru.New(bestUpdatePeriods)
	if err != nil {
		return err
	}
	s.networks[cfg.ConfigName] = &network{
		cfg:    client.Config(),
		store:  store,
		client: client,
		best:   best,
	}
	log.WithField("network", cfg.ConfigName).Debug("Registered network")
	return nil
}

// Networks returns the registered network names in order.
func (s *Service) Networks() []string {
	s.lock.RLock()
	defer s.lock.RUnlock()
	names := make([]string, 0, len(s.networks))
	for name := range s.networks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (s *Service) network(name string) (*network, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	n, ok := s.networks[name]
	if !ok {
		return nil, errors.Wrap(ErrUnknownNetwork, name)
	}
	return n, nil
}

// Initialize bootstraps a network. It fails with ErrAlreadyInitialized when
// the network store already holds a state.
func (s *Service) Initialize(
	ctx context.Context,
	networkName string,
	bootstrap *light_client.Bootstrap,
	genesisValidatorsRoot, trustedBlockRoot [32]byte,
) error {
	ctx, span := trace.StartSpan(ctx, "light.Initialize")
	defer span.End()

	n, err := s.network(networkName)
	if err != nil {
		return err
	}
	n.Lock()
	defer n.Unlock()
	_, err = n.store.CurrentSyncCommittee(ctx)
	switch {
	case err == nil:
		return errors.Wrap(ErrAlreadyInitialized, networkName)
	case !errors.Is(err, iface.ErrStoreNotInitialized):
		return err
	}
	if err := n.client.Initialize(ctx, bootstrap, genesisValidatorsRoot, trustedBlockRoot); err != nil {
		return err
	}
	slot := float64(bootstrap.Header.Slot())
	finalizedSlot.WithLabelValues(networkName).Set(slot)
	optimisticSlot.WithLabelValues(networkName).Set(slot)
	return nil
}

// ImportUpdate verifies and applies one update for a network.
func (s *Service) ImportUpdate(ctx context.Context, networkName string, update *light_client.Update) error {
	n, err := s.network(networkName)
	if err != nil {
		return err
	}
	n.Lock()
	defer n.Unlock()
	return s.importUpdate(ctx, networkName, n, update)
}

// ImportUpdates applies updates for a network in order and stops at the first failure.
// It returns how many updates were accepted.
func (s *Service) ImportUpdates(ctx context.Context, networkName string, updates []*light_client.Update) (int, error) {
	n, err := s.network(networkName)
	if err != nil {
		return 0, err
	}
	n.Lock()
	defer n.Unlock()
	for i, u := range updates {
		if err := ctx.Err(); err != nil {
			return i, err
		}
		if err := s.importUpdate(ctx, networkName, n, u); err != nil {
			return i, errors.Wrapf(err, "update %d", i)
		}
	}
	return len(updates), nil
}

// ImportBatches imports a batch of updates per network. Networks are
// processed concurrently and the first error cancels the others.
func (s *Service) ImportBatches(ctx context.Context, batches map[string][]*light_client.Update) error {
	ctx, span := trace.StartSpan(ctx, "light.ImportBatches")
	defer span.End()

	for name := range batches {
		if _, err := s.network(name); err != nil {
			return err
		}
	}
	g, ctx := errgroup.WithContext(ctx)
	for name, updates := range batches {
		name, updates := name, updates
		g.Go(func() error {
			imported, err := s.ImportUpdates(ctx, name, updates)
			log.WithFields(logrus.Fields{
				"network":  name,
				"imported": imported,
				"total":    len(updates),
			}).Debug("Imported batch")
			return errors.Wrapf(err, "network %s", name)
		})
	}
	return g.Wait()
}

func (s *Service) importUpdate(ctx context.Context, networkName string, n *network, update *light_client.Update) error {
	start := time.Now()
	t, err := n.client.ProcessUpdate(ctx, update)
	updateProcessingTime.Observe(float64(time.Since(start).Milliseconds()))
	if err != nil {
		updatesRejected.WithLabelValues(networkName, rejectReason(err)).Inc()
		return err
	}
	updatesImported.WithLabelValues(networkName).Inc()
	if t.OptimisticHeader != nil {
		optimisticSlot.WithLabelValues(networkName).Set(float64(t.OptimisticHeader.Slot))
	}
	if t.FinalizedHeader != nil {
		finalizedSlot.WithLabelValues(networkName).Set(float64(t.FinalizedHeader.Slot))
	}
	if t.Rotated {
		committeeRotations.WithLabelValues(networkName).Inc()
		log.WithFields(logrus.Fields{
			"network": networkName,
			"period":  slots.SyncCommitteePeriodAtSlot(n.cfg.Preset, update.FinalizedSlot()),
		}).Info("Rotated sync committee")
	}

	period := slots.SyncCommitteePeriodAtSlot(n.cfg.Preset, update.AttestedHeader.Slot())
	var current *light_client.Update
	if v, ok := n.best.Get(period); ok {
		current, _ = v.(*light_client.Update)
	}
	if lightclient.IsBetterUpdate(n.cfg.Preset, update, current) {
		n.best.Add(period, update)
	}
	return nil
}

// BestUpdate returns the best accepted update attested in period.
func (s *Service) BestUpdate(networkName string, period uint64) (*light_client.Update, error) {
	n, err := s.network(networkName)
	if err != nil {
		return nil, err
	}
	v, ok := n.best.Get(period)
	if !ok {
		return nil, errors.Errorf("no update known for period %d", period)
	}
	return v.(*light_client.Update), nil
}

// State returns the trusted state of a network.
func (s *Service) State(ctx context.Context, networkName string) (*lightclient.TrustedState, error) {
	n, err := s.network(networkName)
	if err != nil {
		return nil, err
	}
	n.Lock()
	defer n.Unlock()
	return n.client.State(ctx)
}

// FinalizedHeader returns the finalized header of a network.
func (s *Service) FinalizedHeader(ctx context.Context, networkName string) (*light_client.BeaconBlockHeader, error) {
	n, err := s.network(networkName)
	if err != nil {
		return nil, err
	}
	return n.client.FinalizedHeader(ctx)
}

// OptimisticHeader returns the optimistic header of a network.
func (s *Service) OptimisticHeader(ctx context.Context, networkName string) (*light_client.BeaconBlockHeader, error) {
	n, err := s.network(networkName)
	if err != nil {
		return nil, err
	}
	return n.client.OptimisticHeader(ctx)
}

func rejectReason(err error) string {
	reasons := []struct {
		err    error
		reason string
	}{
		{lightclient.ErrInvalidMerkleBranch, "invalid_merkle_branch"},
		{lightclient.ErrArith, "arith"},
		{lightclient.ErrZeroParticipants, "zero_participants"},
		{lightclient.ErrNotEnoughParticipants, "not_enough_participants"},
		{lightclient.ErrInvalidUpdate, "invalid_update"},
		{lightclient.ErrInvalidPublicKeyBytes, "invalid_public_key"},
		{lightclient.ErrSignatureVerificationFailed, "bad_signature"},
		{lightclient.ErrDuplicateSyncCommitteeUpdate, "duplicate"},
		{lightclient.ErrInvalidSpecId, "invalid_spec_id"},
		{lightclient.ErrStoreNotInitialized, "not_initialized"},
	}
	for _, r := range reasons {
		if errors.Is(err, r.err) {
			return r.reason
		}
	}
	return "other"
}
