package lightclient

import (
	"github.com/pkg/errors"
	light_client "github.com/prysmaticlabs/synclight/consensus-types/light-client"
	"github.com/prysmaticlabs/synclight/encoding/ssz"
	"github.com/prysmaticlabs/synclight/time/slots"
)

// validation holds what the checks derived from an update and the store.
type validation struct {
	participants            uint64
	storePeriod             uint64
	signaturePeriod         uint64
	attestedPeriod          uint64
	finalizedPeriod         uint64
	introducesNextCommittee bool
}

// checkShape rejects payloads sized for a different preset before anything else runs.
func (lc *LightClient) checkShape(u *light_client.Update) error {
	if u == nil || u.AttestedHeader == nil || u.SyncAggregate == nil || u.SyncAggregate.SyncCommitteeBits == nil {
		return errors.Wrap(ErrInvalidUpdate, "incomplete update")
	}
	size := lc.cfg.Preset.SyncCommitteeSize
	if u.SyncAggregate.Len() != size {
		return errors.Wrapf(ErrInvalidSpecId, "sync committee bits cover %d members, want %d", u.SyncAggregate.Len(), size)
	}
	if u.NextSyncCommittee != nil && u.NextSyncCommittee.Size() != size {
		return errors.Wrapf(ErrInvalidSpecId, "next sync committee has %d members, want %d", u.NextSyncCommittee.Size(), size)
	}
	return nil
}

// validateUpdate runs every check on u against state without modifying anything.
func (lc *LightClient) validateUpdate(state *TrustedState, u *light_client.Update) (*validation, error) {
	if err := lc.checkShape(u); err != nil {
		return nil, err
	}
	p := lc.cfg.Preset
	v := &validation{}

	v.participants = u.SyncAggregate.ParticipantCount()
	if v.participants == 0 {
		return nil, ErrZeroParticipants
	}
	if v.participants < p.MinSyncCommitteeParticipants {
		return nil, errors.Wrapf(ErrNotEnoughParticipants, "%d participants, minimum %d", v.participants, p.MinSyncCommitteeParticipants)
	}

	if err := lc.validateHeader(u.AttestedHeader); err != nil {
		return nil, errors.Wrap(err, "attested header")
	}

	attestedSlot := u.AttestedHeader.Slot()
	finalizedSlot := u.FinalizedSlot()
	if u.SignatureSlot <= attestedSlot || attestedSlot < finalizedSlot {
		return nil, errors.Wrapf(ErrInvalidUpdate, "bad slot order: signature %d attested %d finalized %d",
			u.SignatureSlot, attestedSlot, finalizedSlot)
	}

	v.storePeriod = slots.SyncCommitteePeriodAtSlot(p, state.FinalizedHeader.Slot)
	v.signaturePeriod = slots.SyncCommitteePeriodAtSlot(p, u.SignatureSlot)
	if state.NextSyncCommittee != nil {
		if v.signaturePeriod != v.storePeriod && v.signaturePeriod != v.storePeriod+1 {
			return nil, errors.Wrapf(ErrInvalidUpdate, "signature period %d not in [%d, %d]", v.signaturePeriod, v.storePeriod, v.storePeriod+1)
		}
	} else if v.signaturePeriod != v.storePeriod {
		return nil, errors.Wrapf(ErrInvalidUpdate, "signature period %d, store period %d", v.signaturePeriod, v.storePeriod)
	}

	v.attestedPeriod = slots.SyncCommitteePeriodAtSlot(p, attestedSlot)
	v.finalizedPeriod = slots.SyncCommitteePeriodAtSlot(p, finalizedSlot)
	v.introducesNextCommittee = state.NextSyncCommittee == nil &&
		u.HasNextSyncCommittee() &&
		v.attestedPeriod == v.storePeriod

	if !v.introducesNextCommittee && attestedSlot <= state.FinalizedHeader.Slot {
		return nil, errors.Wrapf(ErrInvalidUpdate, "attested slot %d not newer than finalized slot %d", attestedSlot, state.FinalizedHeader.Slot)
	}

	if err := lc.validateFinality(u); err != nil {
		return nil, err
	}
	if err := lc.validateNextSyncCommittee(state, u, v); err != nil {
		return nil, err
	}

	committee := state.CurrentSyncCommittee
	if v.signaturePeriod != v.storePeriod {
		committee = state.NextSyncCommittee
	}
	if committee == nil {
		return nil, errors.Wrap(ErrInvalidUpdate, "no sync committee for signature period")
	}
	if err := lc.verifySyncAggregate(committee, u.SyncAggregate, u.AttestedHeader.Beacon, u.SignatureSlot); err != nil {
		return nil, err
	}
	return v, nil
}

// validateFinality checks the optional finalized header against the attested state root.
// A finalized header at slot 0 must be empty and is proven as the zero root.
func (lc *LightClient) validateFinality(u *light_client.Update) error {
	hasHeader := u.FinalizedHeader != nil
	hasBranch := len(u.FinalityBranch) > 0
	if hasHeader != hasBranch {
		return errors.Wrap(ErrInvalidUpdate, "finalized header and finality branch must be present together")
	}
	if !hasHeader {
		return nil
	}
	var leaf [32]byte
	if u.FinalizedHeader.Slot() == 0 {
		if u.FinalizedHeader.Beacon == nil || *u.FinalizedHeader.Beacon != (light_client.BeaconBlockHeader{}) || u.FinalizedHeader.HasExecution() {
			return errors.Wrap(ErrInvalidUpdate, "genesis finalized header must be empty")
		}
	} else {
		if err := lc.validateHeader(u.FinalizedHeader); err != nil {
			return errors.Wrap(err, "finalized header")
		}
		root, err := u.FinalizedHeader.Beacon.HashTreeRoot()
		if err != nil {
			return errors.Wrap(err, "could not hash finalized header")
		}
		leaf = root
	}
	p := lc.cfg.Preset
	if !ssz.VerifyProof(u.AttestedHeader.Beacon.StateRoot, leaf, u.FinalityBranch, p.FinalizedRootDepth, p.FinalizedRootIndex) {
		return errors.Wrap(ErrInvalidMerkleBranch, "finality branch")
	}
	return nil
}

// validateNextSyncCommittee checks the optional next committee against the attested state root.
func (lc *LightClient) validateNextSyncCommittee(state *TrustedState, u *light_client.Update, v *validation) error {
	hasCommittee := u.NextSyncCommittee != nil
	hasBranch := len(u.NextSyncCommitteeBranch) > 0
	if hasCommittee != hasBranch {
		return errors.Wrap(ErrInvalidUpdate, "next sync committee and its branch must be present together")
	}
	if !hasCommittee {
		return nil
	}
	if state.NextSyncCommittee != nil && v.attestedPeriod == v.storePeriod && !u.NextSyncCommittee.Equals(state.NextSyncCommittee) {
		return errors.Wrap(ErrInvalidUpdate, "next sync committee conflicts with stored committee")
	}
	root, err := u.NextSyncCommittee.HashTreeRoot()
	if err != nil {
		return errors.Wrap(err, "could not hash next sync committee")
	}
	p := lc.cfg.Preset
	if !ssz.VerifyProof(u.AttestedHeader.Beacon.StateRoot, root, u.NextSyncCommitteeBranch, p.NextSyncCommitteeDepth, p.NextSyncCommitteeIndex) {
		return errors.Wrap(ErrInvalidMerkleBranch, "next sync committee branch")
	}
	return nil
}
