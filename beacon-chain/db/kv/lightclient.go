package kv

import (
	"context"

	"github.com/pkg/errors"
	"github.com/prysmaticlabs/synclight/beacon-chain/db/iface"
	light_client "github.com/prysmaticlabs/synclight/consensus-types/light-client"
	bolt "go.etcd.io/bbolt"
	"go.opencensus.io/trace"
)

var _ iface.LightClientStore = (*networkStore)(nil)

// networkStore is the view of one network's trusted state.
type networkStore struct {
	db      *bolt.DB
	network []byte
}

// LightClientStore returns the store of the named network. The network bucket
// is created by the first write.
func (s *Store) LightClientStore(network string) iface.LightClientStore {
	return &networkStore{db: s.db, network: []byte(network)}
}

// Networks lists the networks that have stored state.
func (s *Store) Networks(ctx context.Context) ([]string, error) {
	_, span := trace.StartSpan(ctx, "LightClientDB.Networks")
	defer span.End()

	var names []string
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(lightClientBucket).ForEach(func(k, v []byte) error {
			// Nested buckets have a nil value.
			if v == nil {
				names = append(names, string(k))
			}
			return nil
		})
	})
	return names, err
}

// DeleteNetwork drops every stored field of the named network.
func (s *Store) DeleteNetwork(ctx context.Context, network string) error {
	_, span := trace.StartSpan(ctx, "LightClientDB.DeleteNetwork")
	defer span.End()

	return s.db.Update(func(tx *bolt.Tx) error {
		err := tx.Bucket(lightClientBucket).DeleteBucket([]byte(network))
		if errors.Is(err, bolt.ErrBucketNotFound) {
			return nil
		}
		return err
	})
}

// CurrentSyncCommittee returns the current sync committee.
func (n *networkStore) CurrentSyncCommittee(ctx context.Context) (*light_client.SyncCommittee, error) {
	_, span := trace.StartSpan(ctx, "LightClientDB.CurrentSyncCommittee")
	defer span.End()

	committee := &light_client.SyncCommittee{}
	found, err := n.get(currentSyncCommitteeKey, committee)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, iface.ErrStoreNotInitialized
	}
	return committee, nil
}

// NextSyncCommittee returns the next sync committee, or nil when unknown.
func (n *networkStore) NextSyncCommittee(ctx context.Context) (*light_client.SyncCommittee, error) {
	_, span := trace.StartSpan(ctx, "LightClientDB.NextSyncCommittee")
	defer span.End()

	var committee *light_client.SyncCommittee
	err := n.db.View(func(tx *bolt.Tx) error {
		bkt := n.bucket(tx)
		if bkt == nil || bkt.Get(currentSyncCommitteeKey) == nil {
			return iface.ErrStoreNotInitialized
		}
		enc := bkt.Get(nextSyncCommitteeKey)
		if enc == nil {
			return nil
		}
		committee = &light_client.SyncCommittee{}
		return decode(enc, committee)
	})
	if err != nil {
		return nil, err
	}
	return committee, nil
}

// FinalizedHeader returns the latest finalized header.
func (n *networkStore) FinalizedHeader(ctx context.Context) (*light_client.BeaconBlockHeader, error) {
	_, span := trace.StartSpan(ctx, "LightClientDB.FinalizedHeader")
	defer span.End()
	return n.header(finalizedHeaderKey)
}

// OptimisticHeader returns the latest optimistic header.
func (n *networkStore) OptimisticHeader(ctx context.Context) (*light_client.BeaconBlockHeader, error) {
	_, span := trace.StartSpan(ctx, "LightClientDB.OptimisticHeader")
	defer span.End()
	return n.header(optimisticHeaderKey)
}

// SaveCurrentSyncCommittee stores the current sync committee.
func (n *networkStore) SaveCurrentSyncCommittee(ctx context.Context, committee *light_client.SyncCommittee) error {
	_, span := trace.StartSpan(ctx, "LightClientDB.SaveCurrentSyncCommittee")
	defer span.End()
	return n.put(currentSyncCommitteeKey, committee)
}

// SaveNextSyncCommittee stores the next sync committee; nil deletes it.
func (n *networkStore) SaveNextSyncCommittee(ctx context.Context, committee *light_client.SyncCommittee) error {
	_, span := trace.StartSpan(ctx, "LightClientDB.SaveNextSyncCommittee")
	defer span.End()

	if committee == nil {
		return n.db.Update(func(tx *bolt.Tx) error {
			bkt, err := n.createBucket(tx)
			if err != nil {
				return err
			}
			return bkt.Delete(nextSyncCommitteeKey)
		})
	}
	return n.put(nextSyncCommitteeKey, committee)
}

// SaveFinalizedHeader stores the finalized header.
func (n *networkStore) SaveFinalizedHeader(ctx context.Context, header *light_client.BeaconBlockHeader) error {
	_, span := trace.StartSpan(ctx, "LightClientDB.SaveFinalizedHeader")
	defer span.End()
	return n.put(finalizedHeaderKey, header)
}

// SaveOptimisticHeader stores the optimistic header.
func (n *networkStore) SaveOptimisticHeader(ctx context.Context, header *light_client.BeaconBlockHeader) error {
	_, span := trace.StartSpan(ctx, "LightClientDB.SaveOptimisticHeader")
	defer span.End()
	return n.put(optimisticHeaderKey, header)
}

// SaveTrustedState writes all four fields in a single transaction.
func (n *networkStore) SaveTrustedState(ctx context.Context, state *iface.TrustedState) error {
	_, span := trace.StartSpan(ctx, "LightClientDB.SaveTrustedState")
	defer span.End()

	if state == nil {
		return errors.New("cannot save nil trusted state")
	}
	values := []struct {
		key   []byte
		value sszMarshaler
	}{
		{currentSyncCommitteeKey, state.CurrentSyncCommittee},
		{finalizedHeaderKey, state.FinalizedHeader},
		{optimisticHeaderKey, state.OptimisticHeader},
	}
	encs := make([][]byte, len(values))
	for i, v := range values {
		enc, err := encode(v.value)
		if err != nil {
			return errors.Wrapf(err, "could not encode %s", v.key)
		}
		encs[i] = enc
	}
	var next []byte
	if state.NextSyncCommittee != nil {
		enc, err := encode(state.NextSyncCommittee)
		if err != nil {
			return errors.Wrapf(err, "could not encode %s", nextSyncCommitteeKey)
		}
		next = enc
	}

	return n.db.Update(func(tx *bolt.Tx) error {
		bkt, err := n.createBucket(tx)
		if err != nil {
			return err
		}
		for i, v := range values {
			if err := bkt.Put(v.key, encs[i]); err != nil {
				return err
			}
		}
		if next == nil {
			return bkt.Delete(nextSyncCommitteeKey)
		}
		return bkt.Put(nextSyncCommitteeKey, next)
	})
}

func (n *networkStore) header(key []byte) (*light_client.BeaconBlockHeader, error) {
	header := &light_client.BeaconBlockHeader{}
	found, err := n.get(key, header)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, iface.ErrStoreNotInitialized
	}
	return header, nil
}

func (n *networkStore) bucket(tx *bolt.Tx) *bolt.Bucket {
	return tx.Bucket(lightClientBucket).Bucket(n.network)
}

func (n *networkStore) createBucket(tx *bolt.Tx) (*bolt.Bucket, error) {
	return tx.Bucket(lightClientBucket).CreateBucketIfNotExists(n.network)
}

func (n *networkStore) get(key []byte, dst sszUnmarshaler) (bool, error) {
	found := false
	err := n.db.View(func(tx *bolt.Tx) error {
		bkt := n.bucket(tx)
		if bkt == nil {
			return nil
		}
		enc := bkt.Get(key)
		if enc == nil {
			return nil
		}
		found = true
		return decode(enc, dst)
	})
	return found, errors.Wrapf(err, "could not read %s", key)
}

func (n *networkStore) put(key []byte, value sszMarshaler) error {
	enc, err := encode(value)
	if err != nil {
		return errors.Wrapf(err, "could not encode %s", key)
	}
	return n.db.Update(func(tx *bolt.Tx) error {
		bkt, err := n.createBucket(tx)
		if err != nil {
			return err
		}
		return bkt.Put(key, enc)
	})
}
