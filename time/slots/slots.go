// Package slots converts between slots, epochs and sync committee periods.
package slots

import (
	"math/bits"

	"github.com/pkg/errors"
	"github.com/prysmaticlabs/synclight/config/params"
	"github.com/prysmaticlabs/synclight/consensus-types/primitives"
)

// ToEpoch returns the epoch number of the input slot.
//
// Spec pseudocode definition:
//  def compute_epoch_at_slot(slot: Slot) -> Epoch:
//    return Epoch(slot // SLOTS_PER_EPOCH)
func ToEpoch(p *params.Preset, slot primitives.Slot) primitives.Epoch {
	return primitives.Epoch(slot / p.SlotsPerEpoch)
}

// SyncCommitteePeriod returns the sync committee period of the input epoch.
//
// Spec pseudocode definition:
//  def compute_sync_committee_period(epoch: Epoch) -> uint64:
//    return epoch // EPOCHS_PER_SYNC_COMMITTEE_PERIOD
func SyncCommitteePeriod(p *params.Preset, epoch primitives.Epoch) uint64 {
	return uint64(epoch / p.EpochsPerSyncCommitteePeriod)
}

// SyncCommitteePeriodAtSlot returns the sync committee period of the input slot.
func SyncCommitteePeriodAtSlot(p *params.Preset, slot primitives.Slot) uint64 {
	return SyncCommitteePeriod(p, ToEpoch(p, slot))
}

// PeriodStartSlot returns the first slot of the given sync committee period.
func PeriodStartSlot(p *params.Preset, period uint64) (primitives.Slot, error) {
	hi, lo := bits.Mul64(period, p.SlotsPerSyncCommitteePeriod())
	if hi != 0 {
		return 0, errors.Wrapf(primitives.ErrOverflow, "start slot of period %d", period)
	}
	return primitives.Slot(lo), nil
}
