package params

import (
	"github.com/ethereum/go-ethereum/common/hexutil"
)

func mustRoot(hex string) [32]byte {
	var r [32]byte
	copy(r[:], hexutil.MustDecode(hex))
	return r
}

// MainnetConfig returns the config of Ethereum mainnet.
func MainnetConfig() *ConsensusConfig {
	return &ConsensusConfig{
		ConfigName:            ConfigNames[Mainnet],
		Preset:                ElectraPreset(),
		GenesisValidatorsRoot: mustRoot("0x4b363db94e286120d76eb905340fdd4e54bfe9f06bf33ff6cf5ad27f511bfe95"),
		CapellaForkEpoch:      194048,
		DomainSyncCommittee:   DomainSyncCommittee,
		ForkSchedule: ForkSchedule{
			{Name: "phase0", Epoch: 0, Version: [4]byte{0x00, 0x00, 0x00, 0x00}},
			{Name: "altair", Epoch: 74240, Version: [4]byte{0x01, 0x00, 0x00, 0x00}},
			{Name: "bellatrix", Epoch: 144896, Version: [4]byte{0x02, 0x00, 0x00, 0x00}},
			{Name: "capella", Epoch: 194048, Version: [4]byte{0x03, 0x00, 0x00, 0x00}},
			{Name: "deneb", Epoch: 269568, Version: [4]byte{0x04, 0x00, 0x00, 0x00}},
			{Name: "electra", Epoch: 364032, Version: [4]byte{0x05, 0x00, 0x00, 0x00}},
		},
	}
}

// SepoliaConfig returns the config of the Sepolia testnet.
func SepoliaConfig() *ConsensusConfig {
	return &ConsensusConfig{
		ConfigName:            ConfigNames[Sepolia],
		Preset:                ElectraPreset(),
		GenesisValidatorsRoot: mustRoot("0xd8ea171f3c94aea21ebc42a1ed61052acf3f9209c00e4efbaaddac09ed9b8078"),
		CapellaForkEpoch:      56832,
		DomainSyncCommittee:   DomainSyncCommittee,
		ForkSchedule: ForkSchedule{
			{Name: "phase0", Epoch: 0, Version: [4]byte{0x90, 0x00, 0x00, 0x69}},
			{Name: "altair", Epoch: 50, Version: [4]byte{0x90, 0x00, 0x00, 0x70}},
			{Name: "bellatrix", Epoch: 100, Version: [4]byte{0x90, 0x00, 0x00, 0x71}},
			{Name: "capella", Epoch: 56832, Version: [4]byte{0x90, 0x00, 0x00, 0x72}},
			{Name: "deneb", Epoch: 132608, Version: [4]byte{0x90, 0x00, 0x00, 0x73}},
			{Name: "electra", Epoch: 222464, Version: [4]byte{0x90, 0x00, 0x00, 0x74}},
		},
	}
}

// HoleskyConfig returns the config of the Holesky testnet.
func HoleskyConfig() *ConsensusConfig {
	return &ConsensusConfig{
		ConfigName:            ConfigNames[Holesky],
		Preset:                ElectraPreset(),
		GenesisValidatorsRoot: mustRoot("0x9143aa7c615a7f7115e2b6aac319c03529df8242ae705fba9df39b79c59fa8b1"),
		CapellaForkEpoch:      256,
		DomainSyncCommittee:   DomainSyncCommittee,
		ForkSchedule: ForkSchedule{
			{Name: "phase0", Epoch: 0, Version: [4]byte{0x01, 0x01, 0x70, 0x00}},
			{Name: "altair", Epoch: 0, Version: [4]byte{0x02, 0x01, 0x70, 0x00}},
			{Name: "bellatrix", Epoch: 0, Version: [4]byte{0x03, 0x01, 0x70, 0x00}},
			{Name: "capella", Epoch: 256, Version: [4]byte{0x04, 0x01, 0x70, 0x00}},
			{Name: "deneb", Epoch: 29696, Version: [4]byte{0x05, 0x01, 0x70, 0x00}},
			{Name: "electra", Epoch: 115968, Version: [4]byte{0x06, 0x01, 0x70, 0x00}},
		},
	}
}

// MinimalSpecConfig returns a minimal preset devnet config. Every fork up to
// Deneb is active from genesis, matching local interop networks.
func MinimalSpecConfig() *ConsensusConfig {
	return &ConsensusConfig{
		ConfigName:          ConfigNames[Minimal],
		Preset:              MinimalPreset(),
		CapellaForkEpoch:    0,
		DomainSyncCommittee: DomainSyncCommittee,
		ForkSchedule: ForkSchedule{
			{Name: "phase0", Epoch: 0, Version: [4]byte{0x00, 0x00, 0x00, 0x01}},
			{Name: "altair", Epoch: 0, Version: [4]byte{0x01, 0x00, 0x00, 0x01}},
			{Name: "bellatrix", Epoch: 0, Version: [4]byte{0x02, 0x00, 0x00, 0x01}},
			{Name: "capella", Epoch: 0, Version: [4]byte{0x03, 0x00, 0x00, 0x01}},
			{Name: "deneb", Epoch: 0, Version: [4]byte{0x04, 0x00, 0x00, 0x01}},
			{Name: "electra", Epoch: farFutureEpoch(), Version: [4]byte{0x05, 0x00, 0x00, 0x01}},
		},
	}
}
