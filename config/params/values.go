package params

import (
	"github.com/pkg/errors"
)

const (
	Mainnet ConfigName = iota
	Sepolia
	Holesky
	Minimal
)

// ConfigNames provides network configuration names.
var ConfigNames = map[ConfigName]string{
	Mainnet: "mainnet",
	Sepolia: "sepolia",
	Holesky: "holesky",
	Minimal: "minimal",
}

// ConfigName enum describes the type of known network in use.
type ConfigName int

func (n ConfigName) String() string {
	s, ok := ConfigNames[n]
	if !ok {
		return "undefined"
	}
	return s
}

// KnownConfig returns the built-in config registered under name.
func KnownConfig(name string) (*ConsensusConfig, error) {
	for n, s := range ConfigNames {
		if s != name {
			continue
		}
		switch n {
		case Mainnet:
			return MainnetConfig(), nil
		case Sepolia:
			return SepoliaConfig(), nil
		case Holesky:
			return HoleskyConfig(), nil
		case Minimal:
			return MinimalSpecConfig(), nil
		}
	}
	return nil, errors.Errorf("unknown network %q", name)
}

// AllConfigs returns a fresh copy of every built-in config keyed by name.
func AllConfigs() map[ConfigName]*ConsensusConfig {
	all := make(map[ConfigName]*ConsensusConfig)
	for name, s := range ConfigNames {
		cfg, err := KnownConfig(s)
		if err != nil {
			continue
		}
		all[name] = cfg
	}
	return all
}
