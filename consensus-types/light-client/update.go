package light_client

import (
	fieldparams "github.com/prysmaticlabs/synclight/config/fieldparams"
	"github.com/prysmaticlabs/synclight/consensus-types/primitives"
)

// Bootstrap seeds a light client with a trusted header and the sync committee
// that is current at that header.
type Bootstrap struct {
	Header                     *LightClientHeader
	CurrentSyncCommittee       *SyncCommittee
	CurrentSyncCommitteeBranch [][fieldparams.RootLength]byte
}

// Update is a light client update. The next committee and the finalized
// header are optional and each comes with its own Merkle branch into the
// attested header's state root.
type Update struct {
	AttestedHeader          *LightClientHeader
	NextSyncCommittee       *SyncCommittee
	NextSyncCommitteeBranch [][fieldparams.RootLength]byte
	FinalizedHeader         *LightClientHeader
	FinalityBranch          [][fieldparams.RootLength]byte
	SyncAggregate           *SyncAggregate
	SignatureSlot           primitives.Slot
}

// HasNextSyncCommittee reports whether both halves of the next committee pair are present.
func (u *Update) HasNextSyncCommittee() bool {
	return u.NextSyncCommittee != nil && len(u.NextSyncCommitteeBranch) > 0
}

// HasFinality reports whether both halves of the finality pair are present.
func (u *Update) HasFinality() bool {
	return u.FinalizedHeader != nil && len(u.FinalityBranch) > 0
}

// FinalizedSlot returns the finalized header slot, or 0 when absent.
func (u *Update) FinalizedSlot() primitives.Slot {
	return u.FinalizedHeader.Slot()
}

// FinalityUpdate carries the finalized header without a next committee.
type FinalityUpdate struct {
	AttestedHeader  *LightClientHeader
	FinalizedHeader *LightClientHeader
	FinalityBranch  [][fieldparams.RootLength]byte
	SyncAggregate   *SyncAggregate
	SignatureSlot   primitives.Slot
}

// ToUpdate converts to the general update form.
func (u *FinalityUpdate) ToUpdate() *Update {
	return &Update{
		AttestedHeader:  u.AttestedHeader,
		FinalizedHeader: u.FinalizedHeader,
		FinalityBranch:  u.FinalityBranch,
		SyncAggregate:   u.SyncAggregate,
		SignatureSlot:   u.SignatureSlot,
	}
}

// OptimisticUpdate carries only the attested header.
type OptimisticUpdate struct {
	AttestedHeader *LightClientHeader
	SyncAggregate  *SyncAggregate
	SignatureSlot  primitives.Slot
}

// ToUpdate converts to the general update form.
func (u *OptimisticUpdate) ToUpdate() *Update {
	return &Update{
		AttestedHeader: u.AttestedHeader,
		SyncAggregate:  u.SyncAggregate,
		SignatureSlot:  u.SignatureSlot,
	}
}
