package params

import (
	"io/ioutil"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"
	fieldparams "github.com/prysmaticlabs/synclight/config/fieldparams"
	"github.com/prysmaticlabs/synclight/consensus-types/primitives"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

// chainConfigFile mirrors the subset of a consensus-specs style config file the
// light client needs. Unknown keys are ignored so full network config files load.
type chainConfigFile struct {
	ConfigName            string  `yaml:"CONFIG_NAME"`
	PresetBase            string  `yaml:"PRESET_BASE"`
	GenesisValidatorsRoot string  `yaml:"GENESIS_VALIDATORS_ROOT"`
	GenesisForkVersion    string  `yaml:"GENESIS_FORK_VERSION"`
	AltairForkVersion     string  `yaml:"ALTAIR_FORK_VERSION"`
	AltairForkEpoch       *uint64 `yaml:"ALTAIR_FORK_EPOCH"`
	BellatrixForkVersion  string  `yaml:"BELLATRIX_FORK_VERSION"`
	BellatrixForkEpoch    *uint64 `yaml:"BELLATRIX_FORK_EPOCH"`
	CapellaForkVersion    string  `yaml:"CAPELLA_FORK_VERSION"`
	CapellaForkEpoch      *uint64 `yaml:"CAPELLA_FORK_EPOCH"`
	DenebForkVersion      string  `yaml:"DENEB_FORK_VERSION"`
	DenebForkEpoch        *uint64 `yaml:"DENEB_FORK_EPOCH"`
	ElectraForkVersion    string  `yaml:"ELECTRA_FORK_VERSION"`
	ElectraForkEpoch      *uint64 `yaml:"ELECTRA_FORK_EPOCH"`
}

// LoadChainConfigFile reads a YAML chain config from disk.
func LoadChainConfigFile(chainConfigFileName string) (*ConsensusConfig, error) {
	yamlFile, err := ioutil.ReadFile(chainConfigFileName) // #nosec G304
	if err != nil {
		return nil, errors.Wrap(err, "could not read chain config file")
	}
	return UnmarshalConfig(yamlFile)
}

// UnmarshalConfig parses a YAML chain config. PRESET_BASE selects the variant
// and defaults to mainnet; a missing CONFIG_NAME becomes "devnet".
func UnmarshalConfig(data []byte) (*ConsensusConfig, error) {
	var f chainConfigFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(err, "could not parse chain config yaml")
	}
	variant := MainnetVariant
	if f.PresetBase != "" {
		v, err := VariantFromString(f.PresetBase)
		if err != nil {
			return nil, err
		}
		variant = v
	}
	preset, err := PresetFor(variant)
	if err != nil {
		return nil, err
	}
	conf := &ConsensusConfig{
		ConfigName:          f.ConfigName,
		Preset:              preset,
		DomainSyncCommittee: DomainSyncCommittee,
		CapellaForkEpoch:    farFutureEpoch(),
	}
	if conf.ConfigName == "" {
		conf.ConfigName = "devnet"
	}
	if f.GenesisValidatorsRoot != "" {
		root, err := decodeFixed(f.GenesisValidatorsRoot, fieldparams.RootLength)
		if err != nil {
			return nil, errors.Wrap(err, "GENESIS_VALIDATORS_ROOT")
		}
		copy(conf.GenesisValidatorsRoot[:], root)
	}

	forks := []struct {
		name    string
		version string
		epoch   *uint64
	}{
		{"altair", f.AltairForkVersion, f.AltairForkEpoch},
		{"bellatrix", f.BellatrixForkVersion, f.BellatrixForkEpoch},
		{"capella", f.CapellaForkVersion, f.CapellaForkEpoch},
		{"deneb", f.DenebForkVersion, f.DenebForkEpoch},
		{"electra", f.ElectraForkVersion, f.ElectraForkEpoch},
	}
	if f.GenesisForkVersion == "" {
		return nil, errors.New("GENESIS_FORK_VERSION is required")
	}
	genesisVersion, err := decodeFixed(f.GenesisForkVersion, fieldparams.VersionLength)
	if err != nil {
		return nil, errors.Wrap(err, "GENESIS_FORK_VERSION")
	}
	schedule := ForkSchedule{{Name: "phase0", Epoch: 0, Version: toVersion(genesisVersion)}}
	for _, fk := range forks {
		if fk.version == "" || fk.epoch == nil {
			continue
		}
		v, err := decodeFixed(fk.version, fieldparams.VersionLength)
		if err != nil {
			return nil, errors.Wrapf(err, "%s fork version", fk.name)
		}
		schedule = append(schedule, ForkScheduleEntry{
			Name:    fk.name,
			Epoch:   primitives.Epoch(*fk.epoch),
			Version: toVersion(v),
		})
		if fk.name == "capella" {
			conf.CapellaForkEpoch = primitives.Epoch(*fk.epoch)
		}
	}
	schedule.Sort()
	conf.ForkSchedule = schedule
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	log.WithField("config", conf.ConfigName).Debugf("Config file values: %+v", conf)
	return conf, nil
}

func decodeFixed(s string, length int) ([]byte, error) {
	b, err := hexutil.Decode(s)
	if err != nil {
		return nil, err
	}
	if len(b) != length {
		return nil, errors.Errorf("got %d bytes, want %d", len(b), length)
	}
	return b, nil
}

func toVersion(b []byte) [fieldparams.VersionLength]byte {
	var v [fieldparams.VersionLength]byte
	copy(v[:], b)
	return v
}
