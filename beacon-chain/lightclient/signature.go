package lightclient

import (
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/synclight/beacon-chain/core/signing"
	light_client "github.com/prysmaticlabs/synclight/consensus-types/light-client"
	"github.com/prysmaticlabs/synclight/consensus-types/primitives"
	"github.com/prysmaticlabs/synclight/crypto/bls"
	"github.com/prysmaticlabs/synclight/time/slots"
)

// verifySyncAggregate checks the aggregate signature of the participating
// members of committee over the attested beacon header. The fork version is
// the one active at the slot before signatureSlot.
func (lc *LightClient) verifySyncAggregate(
	committee *light_client.SyncCommittee,
	aggregate *light_client.SyncAggregate,
	attested *light_client.BeaconBlockHeader,
	signatureSlot primitives.Slot,
) error {
	pubKeys := make([]bls.PublicKey, 0, aggregate.ParticipantCount())
	for i := uint64(0); i < aggregate.Len(); i++ {
		if !aggregate.SyncCommitteeBits.BitAt(i) {
			continue
		}
		if i >= uint64(len(committee.Pubkeys)) {
			return errors.Wrapf(ErrInvalidSpecId, "participant %d outside committee of %d", i, len(committee.Pubkeys))
		}
		pk, err := bls.PublicKeyFromBytes(committee.Pubkeys[i][:])
		if err != nil {
			return errors.Wrapf(ErrInvalidPublicKeyBytes, "committee member %d: %v", i, err)
		}
		pubKeys = append(pubKeys, pk)
	}

	prevSlot, err := signatureSlot.SafeSub(1)
	if err != nil {
		return errors.Wrap(ErrArith, "signature slot is zero")
	}
	forkVersion := lc.cfg.ForkVersion(slots.ToEpoch(lc.cfg.Preset, prevSlot))
	domain, err := signing.ComputeDomain(lc.cfg.DomainSyncCommittee, forkVersion, lc.cfg.GenesisValidatorsRoot)
	if err != nil {
		return errors.Wrap(err, "could not compute sync committee domain")
	}
	signingRoot, err := signing.ComputeSigningRoot(attested, domain)
	if err != nil {
		return errors.Wrap(err, "could not compute signing root")
	}
	sig, err := bls.SignatureFromBytes(aggregate.SyncCommitteeSignature[:])
	if err != nil {
		return errors.Wrapf(ErrSignatureVerificationFailed, "could not decode signature: %v", err)
	}
	if !sig.FastAggregateVerify(pubKeys, signingRoot) {
		return ErrSignatureVerificationFailed
	}
	return nil
}
