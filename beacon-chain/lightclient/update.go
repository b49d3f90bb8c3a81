package lightclient

import (
	"github.com/prysmaticlabs/synclight/config/params"
	light_client "github.com/prysmaticlabs/synclight/consensus-types/light-client"
	"github.com/prysmaticlabs/synclight/time/slots"
)

// hasRelevantSyncCommittee reports whether u proves a next committee for the
// period its signature belongs to.
func hasRelevantSyncCommittee(p *params.Preset, u *light_client.Update) bool {
	return u.HasNextSyncCommittee() &&
		slots.SyncCommitteePeriodAtSlot(p, u.AttestedHeader.Slot()) == slots.SyncCommitteePeriodAtSlot(p, u.SignatureSlot)
}

// hasSyncCommitteeFinality reports whether the finalized and attested headers share a period.
func hasSyncCommitteeFinality(p *params.Preset, u *light_client.Update) bool {
	return slots.SyncCommitteePeriodAtSlot(p, u.FinalizedSlot()) == slots.SyncCommitteePeriodAtSlot(p, u.AttestedHeader.Slot())
}

// IsBetterUpdate reports whether newUpdate should replace oldUpdate as the
// best known update of a period. Both updates must already be validated.
func IsBetterUpdate(p *params.Preset, newUpdate, oldUpdate *light_client.Update) bool {
	if oldUpdate == nil {
		return true
	}
	maxActiveParticipants := p.SyncCommitteeSize
	newNumActiveParticipants := newUpdate.SyncAggregate.ParticipantCount()
	oldNumActiveParticipants := oldUpdate.SyncAggregate.ParticipantCount()
	newHasSupermajority := newNumActiveParticipants*3 >= maxActiveParticipants*2
	oldHasSupermajority := oldNumActiveParticipants*3 >= maxActiveParticipants*2
	if newHasSupermajority != oldHasSupermajority {
		return newHasSupermajority
	}
	if !newHasSupermajority && newNumActiveParticipants != oldNumActiveParticipants {
		return newNumActiveParticipants > oldNumActiveParticipants
	}

	newHasRelevantSyncCommittee := hasRelevantSyncCommittee(p, newUpdate)
	oldHasRelevantSyncCommittee := hasRelevantSyncCommittee(p, oldUpdate)
	if newHasRelevantSyncCommittee != oldHasRelevantSyncCommittee {
		return newHasRelevantSyncCommittee
	}

	newHasFinality := newUpdate.HasFinality()
	oldHasFinality := oldUpdate.HasFinality()
	if newHasFinality != oldHasFinality {
		return newHasFinality
	}
	if newHasFinality {
		newHasSyncCommitteeFinality := hasSyncCommitteeFinality(p, newUpdate)
		oldHasSyncCommitteeFinality := hasSyncCommitteeFinality(p, oldUpdate)
		if newHasSyncCommitteeFinality != oldHasSyncCommitteeFinality {
			return newHasSyncCommitteeFinality
		}
	}

	// Tiebreakers: more participation, then older data.
	if newNumActiveParticipants != oldNumActiveParticipants {
		return newNumActiveParticipants > oldNumActiveParticipants
	}
	if newUpdate.AttestedHeader.Slot() != oldUpdate.AttestedHeader.Slot() {
		return newUpdate.AttestedHeader.Slot() < oldUpdate.AttestedHeader.Slot()
	}
	return newUpdate.SignatureSlot < oldUpdate.SignatureSlot
}
