package params

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const devnetYaml = `
CONFIG_NAME: kurtosis
PRESET_BASE: minimal
GENESIS_VALIDATORS_ROOT: 0x83431ec7fcf92cfc44947fc0418e831c25e1d0806590231c439830db7ad54fda
GENESIS_FORK_VERSION: 0x10000038
ALTAIR_FORK_VERSION: 0x20000038
ALTAIR_FORK_EPOCH: 0
BELLATRIX_FORK_VERSION: 0x30000038
BELLATRIX_FORK_EPOCH: 0
CAPELLA_FORK_VERSION: 0x40000038
CAPELLA_FORK_EPOCH: 4
DENEB_FORK_VERSION: 0x50000038
DENEB_FORK_EPOCH: 8
ELECTRA_FORK_VERSION: 0x60000038
ELECTRA_FORK_EPOCH: 18446744073709551615
SECONDS_PER_SLOT: 6
DEPOSIT_CHAIN_ID: 3151908
`

func TestLoadChainConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(devnetYaml), 0600))

	cfg, err := LoadChainConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, "kurtosis", cfg.ConfigName)
	assert.Equal(t, MinimalVariant, cfg.Preset.Variant)
	assert.Equal(t, byte(0x83), cfg.GenesisValidatorsRoot[0])
	assert.Equal(t, 6, len(cfg.ForkSchedule))
	assert.Equal(t, [4]byte{0x30, 0, 0, 0x38}, cfg.ForkVersion(3))
	assert.Equal(t, [4]byte{0x40, 0, 0, 0x38}, cfg.ForkVersion(4))
	assert.Equal(t, [4]byte{0x50, 0, 0, 0x38}, cfg.ForkVersion(1000))
	assert.Equal(t, uint64(4), uint64(cfg.CapellaForkEpoch))
}

func TestUnmarshalConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		err  string
	}{
		{name: "no genesis version", yaml: "CONFIG_NAME: x\n", err: "GENESIS_FORK_VERSION is required"},
		{name: "bad preset", yaml: "PRESET_BASE: gnosis\nGENESIS_FORK_VERSION: 0x00000000\n", err: "unknown preset"},
		{name: "short version", yaml: "GENESIS_FORK_VERSION: 0x0000\n", err: "want 4"},
		{name: "bad root", yaml: "GENESIS_VALIDATORS_ROOT: 0x12\nGENESIS_FORK_VERSION: 0x00000000\n", err: "GENESIS_VALIDATORS_ROOT"},
		{name: "not yaml", yaml: "{{", err: "could not parse"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := UnmarshalConfig([]byte(tt.yaml))
			require.ErrorContains(t, err, tt.err)
		})
	}
}

func TestUnmarshalConfig_Defaults(t *testing.T) {
	cfg, err := UnmarshalConfig([]byte("GENESIS_FORK_VERSION: 0x00000000\n"))
	require.NoError(t, err)
	assert.Equal(t, "devnet", cfg.ConfigName)
	assert.Equal(t, MainnetVariant, cfg.Preset.Variant)
	assert.Equal(t, farFutureEpoch(), cfg.CapellaForkEpoch)
}

func TestLoadChainConfigFile_Missing(t *testing.T) {
	_, err := LoadChainConfigFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.ErrorContains(t, err, "could not read chain config file")
}
