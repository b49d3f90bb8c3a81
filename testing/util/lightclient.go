package util

import (
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/synclight/config/params"
	light_client "github.com/prysmaticlabs/synclight/consensus-types/light-client"
	"github.com/prysmaticlabs/synclight/consensus-types/primitives"
	"github.com/prysmaticlabs/synclight/crypto/bls"
	"github.com/prysmaticlabs/synclight/time/slots"
)

// NewBeaconHeader returns a header at slot committing to stateRoot.
func NewBeaconHeader(slot primitives.Slot, stateRoot [32]byte) *light_client.BeaconBlockHeader {
	h := &light_client.BeaconBlockHeader{
		Slot:          slot,
		ProposerIndex: primitives.ValidatorIndex(uint64(slot) % 64),
		StateRoot:     stateRoot,
	}
	h.ParentRoot[0] = byte(slot)
	h.ParentRoot[1] = byte(slot >> 8)
	h.BodyRoot[31] = byte(slot)
	return h
}

// NewLightClientHeader wraps a beacon header. Headers from the Capella fork
// onwards get an execution payload header proven against their body root.
func NewLightClientHeader(cfg *params.ConsensusConfig, slot primitives.Slot, stateRoot [32]byte) (*light_client.LightClientHeader, error) {
	beacon := NewBeaconHeader(slot, stateRoot)
	if slots.ToEpoch(cfg.Preset, slot) < cfg.CapellaForkEpoch {
		return light_client.NewLightClientHeader(beacon), nil
	}
	payload := &light_client.ExecutionPayloadHeaderCapella{
		BlockNumberVal: uint64(slot),
		GasLimit:       30_000_000,
		Timestamp:      1_700_000_000 + uint64(slot)*12,
	}
	payload.BlockHashVal[0] = byte(slot)
	payload.StateRootVal[1] = byte(slot)
	root, err := payload.HashTreeRoot()
	if err != nil {
		return nil, err
	}
	body := NewSparseTree(map[uint64][32]byte{cfg.Preset.ExecutionPayloadIndex: root})
	beacon.BodyRoot = body.Root()
	return &light_client.LightClientHeader{
		Beacon:          beacon,
		Execution:       payload,
		ExecutionBranch: body.Branch(cfg.Preset.ExecutionPayloadIndex),
	}, nil
}

// NewBootstrap returns a bootstrap at slot for committee and the block root of its header.
func NewBootstrap(cfg *params.ConsensusConfig, committee *light_client.SyncCommittee, slot primitives.Slot) (*light_client.Bootstrap, [32]byte, error) {
	committeeRoot, err := committee.HashTreeRoot()
	if err != nil {
		return nil, [32]byte{}, err
	}
	idx := cfg.Preset.CurrentSyncCommitteeIndex
	state := NewSparseTree(map[uint64][32]byte{idx: committeeRoot})
	header, err := NewLightClientHeader(cfg, slot, state.Root())
	if err != nil {
		return nil, [32]byte{}, err
	}
	blockRoot, err := header.Beacon.HashTreeRoot()
	if err != nil {
		return nil, [32]byte{}, err
	}
	return &light_client.Bootstrap{
		Header:                     header,
		CurrentSyncCommittee:       committee,
		CurrentSyncCommitteeBranch: state.Branch(idx),
	}, blockRoot, nil
}

// UpdateConfig describes an update for NewUpdate.
type UpdateConfig struct {
	AttestedSlot primitives.Slot
	// SignatureSlot defaults to AttestedSlot+1.
	SignatureSlot primitives.Slot
	// FinalizedSlot is only used when Finalized is set.
	FinalizedSlot     primitives.Slot
	Finalized         bool
	NextSyncCommittee *light_client.SyncCommittee
	// Participants is the number of leading committee members that sign.
	Participants uint64
	// SigningKeys belong to the committee of the signature period.
	SigningKeys []bls.SecretKey
}

// NewUpdate builds a signed update whose attested state proves the requested
// finalized header and next sync committee.
func NewUpdate(cfg *params.ConsensusConfig, c *UpdateConfig) (*light_client.Update, error) {
	p := cfg.Preset
	leaves := make(map[uint64][32]byte)
	var finalized *light_client.LightClientHeader
	if c.Finalized {
		var err error
		finalized, err = NewLightClientHeader(cfg, c.FinalizedSlot, [32]byte{0xf1, byte(c.FinalizedSlot)})
		if err != nil {
			return nil, err
		}
		root, err := finalized.Beacon.HashTreeRoot()
		if err != nil {
			return nil, err
		}
		leaves[p.FinalizedRootIndex] = root
	}
	if c.NextSyncCommittee != nil {
		root, err := c.NextSyncCommittee.HashTreeRoot()
		if err != nil {
			return nil, err
		}
		leaves[p.NextSyncCommitteeIndex] = root
	}
	if len(leaves) == 0 {
		leaves[p.CurrentSyncCommitteeIndex] = [32]byte{0xcc}
	}
	state := NewSparseTree(leaves)
	attested, err := NewLightClientHeader(cfg, c.AttestedSlot, state.Root())
	if err != nil {
		return nil, err
	}

	sigSlot := c.SignatureSlot
	if sigSlot == 0 {
		sigSlot = c.AttestedSlot + 1
	}
	agg, err := SignSyncAggregate(cfg, c.SigningKeys, c.Participants, attested.Beacon, sigSlot)
	if err != nil {
		return nil, errors.Wrap(err, "could not sign update")
	}

	u := &light_client.Update{
		AttestedHeader: attested,
		SyncAggregate:  agg,
		SignatureSlot:  sigSlot,
	}
	if finalized != nil {
		u.FinalizedHeader = finalized
		u.FinalityBranch = state.Branch(p.FinalizedRootIndex)
	}
	if c.NextSyncCommittee != nil {
		u.NextSyncCommittee = c.NextSyncCommittee
		u.NextSyncCommitteeBranch = state.Branch(p.NextSyncCommitteeIndex)
	}
	return u, nil
}
