package lightclient

import (
	"context"

	"github.com/pkg/errors"
	light_client "github.com/prysmaticlabs/synclight/consensus-types/light-client"
	"go.opencensus.io/trace"
)

// Transition is the state change produced by an accepted update. Nil headers
// were left unchanged.
type Transition struct {
	OptimisticHeader *light_client.BeaconBlockHeader
	FinalizedHeader  *light_client.BeaconBlockHeader
	// Rotated is set when the next committee became the current one.
	Rotated bool
	// NextSyncCommitteeSet is set when the finality gate rewrote the next committee slot.
	NextSyncCommitteeSet bool
	CurrentSyncCommittee *light_client.SyncCommittee
	NextSyncCommittee    *light_client.SyncCommittee
}

// Changed reports whether the transition writes anything.
func (t *Transition) Changed() bool {
	return t.OptimisticHeader != nil || t.FinalizedHeader != nil || t.Rotated || t.NextSyncCommitteeSet
}

// computeTransition decides both gates from the pre-update state.
// The optimistic gate needs one third participation, the finality gate two thirds.
func (lc *LightClient) computeTransition(state *TrustedState, u *light_client.Update, v *validation) (*Transition, error) {
	t := &Transition{}
	size := lc.cfg.Preset.SyncCommitteeSize
	attested := u.AttestedHeader.Beacon

	if v.participants*3 >= size && attested.Slot > state.OptimisticHeader.Slot {
		t.OptimisticHeader = attested.Copy()
	}

	finalizedSlot := u.FinalizedSlot()
	if v.participants*3 >= size*2 && (finalizedSlot > state.FinalizedHeader.Slot || v.introducesNextCommittee) {
		if state.NextSyncCommittee != nil {
			if v.finalizedPeriod == v.storePeriod+1 {
				t.Rotated = true
				t.CurrentSyncCommittee = state.NextSyncCommittee.Copy()
				t.NextSyncCommittee = u.NextSyncCommittee.Copy()
			}
		} else {
			if v.finalizedPeriod != v.storePeriod {
				return nil, errors.Wrapf(ErrInvalidUpdate, "finalized period %d, store period %d", v.finalizedPeriod, v.storePeriod)
			}
			t.NextSyncCommitteeSet = true
			t.NextSyncCommittee = u.NextSyncCommittee.Copy()
		}
		if u.FinalizedHeader != nil && finalizedSlot > state.FinalizedHeader.Slot {
			t.FinalizedHeader = u.FinalizedHeader.Beacon.Copy()
		}
	}
	return t, nil
}

// apply returns the post-update state: pre with t laid over it.
func (t *Transition) apply(pre *TrustedState) *TrustedState {
	post := pre.Copy()
	if t.Rotated {
		post.CurrentSyncCommittee = t.CurrentSyncCommittee.Copy()
	}
	if t.Rotated || t.NextSyncCommitteeSet {
		post.NextSyncCommittee = t.NextSyncCommittee.Copy()
	}
	if t.FinalizedHeader != nil {
		post.FinalizedHeader = t.FinalizedHeader.Copy()
	}
	if t.OptimisticHeader != nil {
		post.OptimisticHeader = t.OptimisticHeader.Copy()
	}
	return post
}

// commit writes the post-update state in one store call, so a failed write
// leaves pre in place.
func (lc *LightClient) commit(ctx context.Context, pre *TrustedState, t *Transition) error {
	ctx, span := trace.StartSpan(ctx, "lightclient.commit")
	defer span.End()

	if !t.Changed() {
		return nil
	}
	return lc.store.SaveTrustedState(ctx, t.apply(pre))
}
