package params

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresetFor(t *testing.T) {
	tests := []struct {
		variant   Variant
		size      uint64
		finalized uint64
		depth     uint64
		period    uint64
	}{
		{variant: MainnetVariant, size: 512, finalized: 105, depth: 6, period: 8192},
		{variant: MinimalVariant, size: 32, finalized: 105, depth: 6, period: 64},
		{variant: ElectraVariant, size: 512, finalized: 169, depth: 7, period: 8192},
	}
	for _, tt := range tests {
		t.Run(tt.variant.String(), func(t *testing.T) {
			p, err := PresetFor(tt.variant)
			require.NoError(t, err)
			assert.Equal(t, tt.variant, p.Variant)
			assert.Equal(t, tt.size, p.SyncCommitteeSize)
			assert.Equal(t, tt.finalized, p.FinalizedRootIndex)
			assert.Equal(t, tt.depth, p.FinalizedRootDepth)
			assert.Equal(t, tt.period, p.SlotsPerSyncCommitteePeriod())
			assert.Equal(t, uint64(25), p.ExecutionPayloadIndex)
		})
	}
	_, err := PresetFor(Variant(42))
	require.ErrorContains(t, err, "unknown preset variant")
}

func TestVariantFromString(t *testing.T) {
	for v, name := range variantNames {
		got, err := VariantFromString(name)
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
	_, err := VariantFromString("gnosis")
	require.ErrorContains(t, err, "unknown preset")
	assert.Equal(t, "undefined", Variant(9).String())
}

func TestKnownConfigs_Validate(t *testing.T) {
	for name, cfg := range AllConfigs() {
		require.NoError(t, cfg.Validate(), name.String())
		assert.Equal(t, name.String(), cfg.ConfigName)
	}
	_, err := KnownConfig("ropsten")
	require.ErrorContains(t, err, "unknown network")
}

func TestConsensusConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*ConsensusConfig)
		wantErr string
	}{
		{name: "no preset", modify: func(c *ConsensusConfig) { c.Preset = nil }, wantErr: "has no preset"},
		{name: "zero committee", modify: func(c *ConsensusConfig) { c.Preset.SyncCommitteeSize = 0 }, wantErr: "invalid sync committee size"},
		{name: "zero period", modify: func(c *ConsensusConfig) { c.Preset.EpochsPerSyncCommitteePeriod = 0 }, wantErr: "zero length epoch or period"},
		{name: "unset domain", modify: func(c *ConsensusConfig) { c.DomainSyncCommittee = [4]byte{} }, wantErr: "has no sync committee domain type"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := MainnetConfig()
			tt.modify(cfg)
			require.ErrorContains(t, cfg.Validate(), tt.wantErr)
		})
	}
}

func TestConsensusConfig_Copy(t *testing.T) {
	cfg := MainnetConfig()
	cp := cfg.Copy()
	cp.Preset.SyncCommitteeSize = 1
	cp.ForkSchedule[0].Version = [4]byte{1, 1, 1, 1}
	assert.Equal(t, uint64(512), cfg.Preset.SyncCommitteeSize)
	assert.Equal(t, [4]byte{}, cfg.ForkSchedule[0].Version)
}
