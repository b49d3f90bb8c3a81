// Package params defines the network configuration consumed by the light client:
// the committee preset, the fork schedule, and the genesis validators root.
package params

import (
	"math"

	"github.com/pkg/errors"
	fieldparams "github.com/prysmaticlabs/synclight/config/fieldparams"
	"github.com/prysmaticlabs/synclight/consensus-types/primitives"
)

// DomainSyncCommittee is the signature domain type for sync committee messages.
var DomainSyncCommittee = [4]byte{0x07, 0x00, 0x00, 0x00}

// ConsensusConfig is the immutable, per network input to the light client.
type ConsensusConfig struct {
	ConfigName            string
	Preset                *Preset
	ForkSchedule          ForkSchedule
	GenesisValidatorsRoot [fieldparams.RootLength]byte
	// CapellaForkEpoch is the first epoch whose light client headers carry an
	// execution payload header.
	CapellaForkEpoch    primitives.Epoch
	DomainSyncCommittee [4]byte
}

// Copy returns a deep copy of the config.
func (c *ConsensusConfig) Copy() *ConsensusConfig {
	cp := *c
	if c.Preset != nil {
		cp.Preset = c.Preset.Copy()
	}
	cp.ForkSchedule = c.ForkSchedule.Copy()
	return &cp
}

// Validate checks the config is usable by the light client.
func (c *ConsensusConfig) Validate() error {
	if c == nil {
		return errors.New("nil consensus config")
	}
	if c.Preset == nil {
		return errors.Errorf("config %s has no preset", c.ConfigName)
	}
	if c.Preset.SyncCommitteeSize == 0 || c.Preset.SyncCommitteeSize > fieldparams.SyncCommitteeMaxLength {
		return errors.Errorf("config %s has invalid sync committee size %d", c.ConfigName, c.Preset.SyncCommitteeSize)
	}
	if c.Preset.SlotsPerEpoch == 0 || c.Preset.EpochsPerSyncCommitteePeriod == 0 {
		return errors.Errorf("config %s has a zero length epoch or period", c.ConfigName)
	}
	if c.DomainSyncCommittee == [4]byte{} {
		return errors.Errorf("config %s has no sync committee domain type", c.ConfigName)
	}
	return errors.Wrapf(c.ForkSchedule.Validate(), "config %s", c.ConfigName)
}

// ForkVersion returns the fork version active at epoch.
func (c *ConsensusConfig) ForkVersion(epoch primitives.Epoch) [fieldparams.VersionLength]byte {
	return c.ForkSchedule.VersionAt(epoch)
}

func farFutureEpoch() primitives.Epoch {
	return primitives.Epoch(math.MaxUint64)
}
