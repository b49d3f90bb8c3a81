// Package lightclient implements the sync committee light client of the
// Ethereum beacon chain: bootstrap from a trusted header, then verify and apply
// light client updates against a pluggable store.
//
// It follows the Altair light client protocol, without the update timeout and
// best-update bookkeeping, and with independent optimistic and finality gates.
package lightclient

import (
	"context"

	"github.com/pkg/errors"
	"github.com/prysmaticlabs/synclight/beacon-chain/db/iface"
	"github.com/prysmaticlabs/synclight/config/params"
	light_client "github.com/prysmaticlabs/synclight/consensus-types/light-client"
	"github.com/prysmaticlabs/synclight/time/slots"
	"github.com/sirupsen/logrus"
	"go.opencensus.io/trace"
)

var log = logrus.WithField("prefix", "lightclient")

// TrustedState is a snapshot of the four stored fields.
type TrustedState = iface.TrustedState

// LightClient verifies updates for one network and applies them to its store.
// Calls for the same store must be serialized by the caller.
type LightClient struct {
	cfg   *params.ConsensusConfig
	store iface.LightClientStore
}

// New returns a light client for cfg persisting into store.
func New(cfg *params.ConsensusConfig, store iface.LightClientStore) (*LightClient, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid consensus config")
	}
	if store == nil {
		return nil, errors.New("nil light client store")
	}
	return &LightClient{cfg: cfg.Copy(), store: store}, nil
}

// Config returns a copy of the consensus config.
func (lc *LightClient) Config() *params.ConsensusConfig {
	return lc.cfg.Copy()
}

// CurrentSyncCommittee returns the committee signing the current period.
func (lc *LightClient) CurrentSyncCommittee(ctx context.Context) (*light_client.SyncCommittee, error) {
	return lc.store.CurrentSyncCommittee(ctx)
}

// NextSyncCommittee returns the next period's committee, or nil when not yet known.
func (lc *LightClient) NextSyncCommittee(ctx context.Context) (*light_client.SyncCommittee, error) {
	return lc.store.NextSyncCommittee(ctx)
}

// FinalizedHeader returns the latest finalized header.
func (lc *LightClient) FinalizedHeader(ctx context.Context) (*light_client.BeaconBlockHeader, error) {
	return lc.store.FinalizedHeader(ctx)
}

// OptimisticHeader returns the latest optimistic header.
func (lc *LightClient) OptimisticHeader(ctx context.Context) (*light_client.BeaconBlockHeader, error) {
	return lc.store.OptimisticHeader(ctx)
}

// State reads all stored fields.
func (lc *LightClient) State(ctx context.Context) (*TrustedState, error) {
	current, err := lc.store.CurrentSyncCommittee(ctx)
	if err != nil {
		return nil, err
	}
	next, err := lc.store.NextSyncCommittee(ctx)
	if err != nil {
		return nil, err
	}
	finalized, err := lc.store.FinalizedHeader(ctx)
	if err != nil {
		return nil, err
	}
	optimistic, err := lc.store.OptimisticHeader(ctx)
	if err != nil {
		return nil, err
	}
	return &TrustedState{
		CurrentSyncCommittee: current,
		NextSyncCommittee:    next,
		FinalizedHeader:      finalized,
		OptimisticHeader:     optimistic,
	}, nil
}

// ImportUpdate validates update against the stored state and applies it.
// Nothing is written when validation fails.
func (lc *LightClient) ImportUpdate(ctx context.Context, update *light_client.Update) error {
	_, err := lc.ProcessUpdate(ctx, update)
	return err
}

// ImportFinalityUpdate imports a finality update.
func (lc *LightClient) ImportFinalityUpdate(ctx context.Context, update *light_client.FinalityUpdate) error {
	if update == nil {
		return errors.Wrap(ErrInvalidUpdate, "nil finality update")
	}
	return lc.ImportUpdate(ctx, update.ToUpdate())
}

// ImportOptimisticUpdate imports an optimistic update.
func (lc *LightClient) ImportOptimisticUpdate(ctx context.Context, update *light_client.OptimisticUpdate) error {
	if update == nil {
		return errors.Wrap(ErrInvalidUpdate, "nil optimistic update")
	}
	return lc.ImportUpdate(ctx, update.ToUpdate())
}

// ProcessUpdate is ImportUpdate returning the state change that was applied.
func (lc *LightClient) ProcessUpdate(ctx context.Context, update *light_client.Update) (*Transition, error) {
	ctx, span := trace.StartSpan(ctx, "lightclient.ProcessUpdate")
	defer span.End()

	state, err := lc.State(ctx)
	if err != nil {
		return nil, err
	}
	v, err := lc.validateUpdate(state, update)
	if err != nil {
		return nil, err
	}
	span.AddAttributes(
		trace.Int64Attribute("attestedSlot", int64(update.AttestedHeader.Slot())),
		trace.Int64Attribute("participants", int64(v.participants)),
	)
	t, err := lc.computeTransition(state, update, v)
	if err != nil {
		return nil, err
	}
	if err := lc.commit(ctx, state, t); err != nil {
		return nil, errors.Wrap(err, "could not save light client state")
	}
	log.WithFields(logrus.Fields{
		"network":      lc.cfg.ConfigName,
		"attestedSlot": update.AttestedHeader.Slot(),
		"period":       slots.SyncCommitteePeriodAtSlot(lc.cfg.Preset, update.AttestedHeader.Slot()),
		"participants": v.participants,
		"optimistic":   t.OptimisticHeader != nil,
		"finalized":    t.FinalizedHeader != nil,
		"rotated":      t.Rotated,
	}).Debug("Imported light client update")
	return t, nil
}
