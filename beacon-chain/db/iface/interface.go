// Package iface defines the storage interface of the light client: the four
// trusted state fields kept per network.
package iface

import (
	"context"

	"github.com/pkg/errors"
	light_client "github.com/prysmaticlabs/synclight/consensus-types/light-client"
)

// ErrStoreNotInitialized is returned when reading a store that was never bootstrapped.
var ErrStoreNotInitialized = errors.New("light client store not initialized")

// TrustedState is a snapshot of the four stored fields.
type TrustedState struct {
	CurrentSyncCommittee *light_client.SyncCommittee
	NextSyncCommittee    *light_client.SyncCommittee
	FinalizedHeader      *light_client.BeaconBlockHeader
	OptimisticHeader     *light_client.BeaconBlockHeader
}

// Copy returns a deep copy of the state.
func (s *TrustedState) Copy() *TrustedState {
	if s == nil {
		return nil
	}
	return &TrustedState{
		CurrentSyncCommittee: s.CurrentSyncCommittee.Copy(),
		NextSyncCommittee:    s.NextSyncCommittee.Copy(),
		FinalizedHeader:      s.FinalizedHeader.Copy(),
		OptimisticHeader:     s.OptimisticHeader.Copy(),
	}
}

// ReadOnlyLightClientStore exposes read access to the trusted state.
//
// Before bootstrap every getter returns ErrStoreNotInitialized. Afterwards
// NextSyncCommittee returns (nil, nil) while no next committee is known.
type ReadOnlyLightClientStore interface {
	CurrentSyncCommittee(ctx context.Context) (*light_client.SyncCommittee, error)
	NextSyncCommittee(ctx context.Context) (*light_client.SyncCommittee, error)
	FinalizedHeader(ctx context.Context) (*light_client.BeaconBlockHeader, error)
	OptimisticHeader(ctx context.Context) (*light_client.BeaconBlockHeader, error)
}

// LightClientStore is the trusted state of one network. Implementations copy
// values on the way in and out so callers may keep using their own.
type LightClientStore interface {
	ReadOnlyLightClientStore
	SaveCurrentSyncCommittee(ctx context.Context, committee *light_client.SyncCommittee) error
	// SaveNextSyncCommittee stores the next committee; nil clears it.
	SaveNextSyncCommittee(ctx context.Context, committee *light_client.SyncCommittee) error
	SaveFinalizedHeader(ctx context.Context, header *light_client.BeaconBlockHeader) error
	SaveOptimisticHeader(ctx context.Context, header *light_client.BeaconBlockHeader) error
	// SaveTrustedState replaces all four fields at once. Either every field is
	// written or none is. A nil NextSyncCommittee clears it.
	SaveTrustedState(ctx context.Context, state *TrustedState) error
}
