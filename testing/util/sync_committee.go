package util

import (
	"encoding/binary"

	"github.com/pkg/errors"
	"github.com/prysmaticlabs/go-bitfield"
	"github.com/prysmaticlabs/synclight/beacon-chain/core/signing"
	"github.com/prysmaticlabs/synclight/config/params"
	light_client "github.com/prysmaticlabs/synclight/consensus-types/light-client"
	"github.com/prysmaticlabs/synclight/consensus-types/primitives"
	"github.com/prysmaticlabs/synclight/crypto/bls"
	"github.com/prysmaticlabs/synclight/time/slots"
)

// DeterministicSyncCommittee derives n secret keys from seed and returns the
// committee made of their public keys along with the keys.
func DeterministicSyncCommittee(n uint64, seed byte) (*light_client.SyncCommittee, []bls.SecretKey, error) {
	keys := make([]bls.SecretKey, n)
	committee := &light_client.SyncCommittee{Pubkeys: make([][48]byte, n)}
	raw := make([][]byte, n)
	for i := uint64(0); i < n; i++ {
		ikm := make([]byte, 32)
		ikm[0] = seed
		binary.LittleEndian.PutUint64(ikm[8:], i)
		sk, err := bls.KeyFromSeed(ikm)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "could not derive key %d", i)
		}
		keys[i] = sk
		raw[i] = sk.PublicKey().Marshal()
		copy(committee.Pubkeys[i][:], raw[i])
	}
	agg, err := bls.AggregatePublicKeys(raw)
	if err != nil {
		return nil, nil, err
	}
	copy(committee.AggregatePubkey[:], agg.Marshal())
	return committee, keys, nil
}

// NewBits returns an empty bitvector sized for the preset.
func NewBits(p *params.Preset) bitfield.Bitfield {
	if p.SyncCommitteeSize == 32 {
		return bitfield.NewBitvector32()
	}
	return bitfield.NewBitvector512()
}

// SignSyncAggregate has the first participants keys sign header with the sync
// committee domain that verifiers derive for signatureSlot.
func SignSyncAggregate(
	cfg *params.ConsensusConfig,
	keys []bls.SecretKey,
	participants uint64,
	header *light_client.BeaconBlockHeader,
	signatureSlot primitives.Slot,
) (*light_client.SyncAggregate, error) {
	bits := NewBits(cfg.Preset)
	if participants > bits.Len() || participants > uint64(len(keys)) {
		return nil, errors.Errorf("%d participants do not fit a committee of %d", participants, bits.Len())
	}
	agg := &light_client.SyncAggregate{SyncCommitteeBits: bits}
	if participants == 0 {
		// Compressed point at infinity.
		agg.SyncCommitteeSignature[0] = 0xc0
		return agg, nil
	}

	prev, err := signatureSlot.SafeSub(1)
	if err != nil {
		return nil, err
	}
	forkVersion := cfg.ForkVersion(slots.ToEpoch(cfg.Preset, prev))
	domain, err := signing.ComputeDomain(cfg.DomainSyncCommittee, forkVersion, cfg.GenesisValidatorsRoot)
	if err != nil {
		return nil, err
	}
	root, err := signing.ComputeSigningRoot(header, domain)
	if err != nil {
		return nil, err
	}
	sigs := make([]bls.Signature, 0, participants)
	for i := uint64(0); i < participants; i++ {
		bits.SetBitAt(i, true)
		sigs = append(sigs, keys[i].Sign(root[:]))
	}
	copy(agg.SyncCommitteeSignature[:], bls.AggregateSignatures(sigs).Marshal())
	return agg, nil
}
