// Package memory implements an ephemeral, in-process light client store.
package memory

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"github.com/prysmaticlabs/synclight/beacon-chain/db/iface"
	light_client "github.com/prysmaticlabs/synclight/consensus-types/light-client"
)

var _ iface.LightClientStore = (*Store)(nil)

// Store keeps the trusted state in memory.
type Store struct {
	lock             sync.RWMutex
	current          *light_client.SyncCommittee
	next             *light_client.SyncCommittee
	finalizedHeader  *light_client.BeaconBlockHeader
	optimisticHeader *light_client.BeaconBlockHeader
}

// New returns an empty store.
func New() *Store {
	return &Store{}
}

// CurrentSyncCommittee returns the current sync committee.
func (s *Store) CurrentSyncCommittee(_ context.Context) (*light_client.SyncCommittee, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	if s.current == nil {
		return nil, iface.ErrStoreNotInitialized
	}
	return s.current.Copy(), nil
}

// NextSyncCommittee returns the next sync committee, or nil when unknown.
func (s *Store) NextSyncCommittee(_ context.Context) (*light_client.SyncCommittee, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	if s.current == nil {
		return nil, iface.ErrStoreNotInitialized
	}
	return s.next.Copy(), nil
}

// FinalizedHeader returns the latest finalized header.
func (s *Store) FinalizedHeader(_ context.Context) (*light_client.BeaconBlockHeader, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	if s.finalizedHeader == nil {
		return nil, iface.ErrStoreNotInitialized
	}
	return s.finalizedHeader.Copy(), nil
}

// OptimisticHeader returns the latest optimistic header.
func (s *Store) OptimisticHeader(_ context.Context) (*light_client.BeaconBlockHeader, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	if s.optimisticHeader == nil {
		return nil, iface.ErrStoreNotInitialized
	}
	return s.optimisticHeader.Copy(), nil
}

// SaveCurrentSyncCommittee stores the current sync committee.
func (s *Store) SaveCurrentSyncCommittee(_ context.Context, committee *light_client.SyncCommittee) error {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.current = committee.Copy()
	return nil
}

// SaveNextSyncCommittee stores the next sync committee.
func (s *Store) SaveNextSyncCommittee(_ context.Context, committee *light_client.SyncCommittee) error {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.next = committee.Copy()
	return nil
}

// SaveFinalizedHeader stores the finalized header.
func (s *Store) SaveFinalizedHeader(_ context.Context, header *light_client.BeaconBlockHeader) error {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.finalizedHeader = header.Copy()
	return nil
}

// SaveOptimisticHeader stores the optimistic header.
func (s *Store) SaveOptimisticHeader(_ context.Context, header *light_client.BeaconBlockHeader) error {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.optimisticHeader = header.Copy()
	return nil
}

// SaveTrustedState replaces all four fields under one lock.
func (s *Store) SaveTrustedState(_ context.Context, state *iface.TrustedState) error {
	if state == nil || state.CurrentSyncCommittee == nil || state.FinalizedHeader == nil || state.OptimisticHeader == nil {
		return errors.New("incomplete trusted state")
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	s.current = state.CurrentSyncCommittee.Copy()
	s.next = state.NextSyncCommittee.Copy()
	s.finalizedHeader = state.FinalizedHeader.Copy()
	s.optimisticHeader = state.OptimisticHeader.Copy()
	return nil
}
