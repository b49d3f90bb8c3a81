package lightclient

import (
	"context"

	"github.com/pkg/errors"
	light_client "github.com/prysmaticlabs/synclight/consensus-types/light-client"
	"github.com/prysmaticlabs/synclight/encoding/ssz"
	"github.com/sirupsen/logrus"
	"go.opencensus.io/trace"
)

// Initialize seeds the store from a bootstrap. A non-zero trustedBlockRoot must
// equal the hash tree root of the bootstrap beacon header. Callers must make
// sure a store is initialized at most once.
func (lc *LightClient) Initialize(
	ctx context.Context,
	bootstrap *light_client.Bootstrap,
	genesisValidatorsRoot [32]byte,
	trustedBlockRoot [32]byte,
) error {
	ctx, span := trace.StartSpan(ctx, "lightclient.Initialize")
	defer span.End()

	if genesisValidatorsRoot != lc.cfg.GenesisValidatorsRoot {
		return errors.Wrapf(ErrInvalidSpecId, "genesis validators root %#x does not match network %s", genesisValidatorsRoot, lc.cfg.ConfigName)
	}
	if bootstrap == nil || bootstrap.CurrentSyncCommittee == nil {
		return errors.Wrap(ErrInvalidUpdate, "incomplete bootstrap")
	}
	if size := bootstrap.CurrentSyncCommittee.Size(); size != lc.cfg.Preset.SyncCommitteeSize {
		return errors.Wrapf(ErrInvalidSpecId, "sync committee has %d members, want %d", size, lc.cfg.Preset.SyncCommitteeSize)
	}
	if err := lc.validateHeader(bootstrap.Header); err != nil {
		return errors.Wrap(err, "bootstrap header")
	}
	header := bootstrap.Header.Beacon

	if trustedBlockRoot != [32]byte{} {
		root, err := header.HashTreeRoot()
		if err != nil {
			return errors.Wrap(err, "could not hash bootstrap header")
		}
		if root != trustedBlockRoot {
			return errors.Wrapf(ErrInvalidUpdate, "bootstrap header root %#x is not the trusted block root %#x", root, trustedBlockRoot)
		}
	}

	committeeRoot, err := bootstrap.CurrentSyncCommittee.HashTreeRoot()
	if err != nil {
		return errors.Wrap(err, "could not hash current sync committee")
	}
	p := lc.cfg.Preset
	if !ssz.VerifyProof(header.StateRoot, committeeRoot, bootstrap.CurrentSyncCommitteeBranch, p.CurrentSyncCommitteeDepth, p.CurrentSyncCommitteeIndex) {
		return errors.Wrap(ErrInvalidMerkleBranch, "current sync committee branch")
	}

	state := &TrustedState{
		CurrentSyncCommittee: bootstrap.CurrentSyncCommittee,
		FinalizedHeader:      header,
		OptimisticHeader:     header,
	}
	if err := lc.store.SaveTrustedState(ctx, state); err != nil {
		return errors.Wrap(err, "could not save bootstrap state")
	}
	log.WithFields(logrus.Fields{
		"network": lc.cfg.ConfigName,
		"slot":    header.Slot,
	}).Info("Initialized light client store")
	return nil
}
