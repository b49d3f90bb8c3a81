package params

import (
	"fmt"

	"github.com/prysmaticlabs/synclight/consensus-types/primitives"
)

// Variant tags one of the fixed committee-size / proof-depth configurations a
// network can run with. Different networks may use different variants at the
// same time.
type Variant uint8

const (
	// MainnetVariant is the 512 member committee with Altair through Deneb state depths.
	MainnetVariant Variant = iota
	// MinimalVariant is the 32 member committee used by minimal preset devnets.
	MinimalVariant
	// ElectraVariant is the 512 member committee with the deeper Electra state tree.
	ElectraVariant
)

var variantNames = map[Variant]string{
	MainnetVariant: "mainnet",
	MinimalVariant: "minimal",
	ElectraVariant: "mainnet-electra",
}

func (v Variant) String() string {
	s, ok := variantNames[v]
	if !ok {
		return "undefined"
	}
	return s
}

// VariantFromString returns the variant registered under name.
func VariantFromString(name string) (Variant, error) {
	for v, n := range variantNames {
		if n == name {
			return v, nil
		}
	}
	return 0, fmt.Errorf("unknown preset %q", name)
}

// Preset holds the variant specific constants used by light client verification.
// Generalized indices are positions in the beacon state (or block body) tree and
// depths are the matching branch lengths.
type Preset struct {
	Variant                      Variant
	SyncCommitteeSize            uint64
	SlotsPerEpoch                primitives.Slot
	EpochsPerSyncCommitteePeriod primitives.Epoch
	MinSyncCommitteeParticipants uint64

	FinalizedRootIndex        uint64
	FinalizedRootDepth        uint64
	CurrentSyncCommitteeIndex uint64
	CurrentSyncCommitteeDepth uint64
	NextSyncCommitteeIndex    uint64
	NextSyncCommitteeDepth    uint64
	ExecutionPayloadIndex     uint64
	ExecutionPayloadDepth     uint64
}

// MainnetPreset returns the mainnet preset values.
func MainnetPreset() *Preset {
	return &Preset{
		Variant:                      MainnetVariant,
		SyncCommitteeSize:            512,
		SlotsPerEpoch:                32,
		EpochsPerSyncCommitteePeriod: 256,
		MinSyncCommitteeParticipants: 1,
		FinalizedRootIndex:           105,
		FinalizedRootDepth:           6,
		CurrentSyncCommitteeIndex:    54,
		CurrentSyncCommitteeDepth:    5,
		NextSyncCommitteeIndex:       55,
		NextSyncCommitteeDepth:       5,
		ExecutionPayloadIndex:        25,
		ExecutionPayloadDepth:        4,
	}
}

// MinimalPreset returns the minimal preset values.
func MinimalPreset() *Preset {
	p := MainnetPreset()
	p.Variant = MinimalVariant
	p.SyncCommitteeSize = 32
	p.SlotsPerEpoch = 8
	p.EpochsPerSyncCommitteePeriod = 8
	return p
}

// ElectraPreset returns the mainnet preset with Electra state tree indices.
func ElectraPreset() *Preset {
	p := MainnetPreset()
	p.Variant = ElectraVariant
	p.FinalizedRootIndex = 169
	p.FinalizedRootDepth = 7
	p.CurrentSyncCommitteeIndex = 86
	p.CurrentSyncCommitteeDepth = 6
	p.NextSyncCommitteeIndex = 87
	p.NextSyncCommitteeDepth = 6
	return p
}

// PresetFor returns a fresh copy of the preset for the given variant.
func PresetFor(v Variant) (*Preset, error) {
	switch v {
	case MainnetVariant:
		return MainnetPreset(), nil
	case MinimalVariant:
		return MinimalPreset(), nil
	case ElectraVariant:
		return ElectraPreset(), nil
	default:
		return nil, fmt.Errorf("unknown preset variant %d", v)
	}
}

// Copy returns a copy of the preset.
func (p *Preset) Copy() *Preset {
	cp := *p
	return &cp
}

// SlotsPerSyncCommitteePeriod is the number of slots one committee serves.
func (p *Preset) SlotsPerSyncCommitteePeriod() uint64 {
	return uint64(p.SlotsPerEpoch) * uint64(p.EpochsPerSyncCommitteePeriod)
}
