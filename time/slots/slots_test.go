package slots

import (
	"math"
	"testing"

	"github.com/prysmaticlabs/synclight/config/params"
	"github.com/prysmaticlabs/synclight/consensus-types/primitives"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncCommitteePeriodAtSlot(t *testing.T) {
	mainnet := params.MainnetPreset()
	minimal := params.MinimalPreset()
	tests := []struct {
		name   string
		preset *params.Preset
		slot   primitives.Slot
		epoch  primitives.Epoch
		period uint64
	}{
		{name: "genesis", preset: mainnet, slot: 0, epoch: 0, period: 0},
		{name: "last slot of period 0", preset: mainnet, slot: 8191, epoch: 255, period: 0},
		{name: "first slot of period 1", preset: mainnet, slot: 8192, epoch: 256, period: 1},
		{name: "minimal period 1", preset: minimal, slot: 64, epoch: 8, period: 1},
		{name: "minimal mid period", preset: minimal, slot: 100, epoch: 12, period: 1},
		{name: "max slot", preset: mainnet, slot: math.MaxUint64, epoch: primitives.Epoch(math.MaxUint64 / 32), period: math.MaxUint64 / 8192},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.epoch, ToEpoch(tt.preset, tt.slot))
			assert.Equal(t, tt.period, SyncCommitteePeriodAtSlot(tt.preset, tt.slot))
		})
	}
}

func TestPeriodStartSlot(t *testing.T) {
	s, err := PeriodStartSlot(params.MainnetPreset(), 3)
	require.NoError(t, err)
	assert.Equal(t, primitives.Slot(3*8192), s)

	_, err = PeriodStartSlot(params.MainnetPreset(), math.MaxUint64)
	require.ErrorIs(t, err, primitives.ErrOverflow)
}
