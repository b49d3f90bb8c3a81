package main

import (
	"encoding/json"
	"io/ioutil"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/synclight/api/structs"
	"github.com/prysmaticlabs/synclight/beacon-chain/db/kv"
	"github.com/prysmaticlabs/synclight/beacon-chain/light"
	"github.com/prysmaticlabs/synclight/cmd/lightclient/flags"
	"github.com/prysmaticlabs/synclight/config/params"
	light_client "github.com/prysmaticlabs/synclight/consensus-types/light-client"
	"github.com/prysmaticlabs/synclight/time/slots"
	"github.com/urfave/cli/v2"
)

var commands = []*cli.Command{
	{
		Name:   "bootstrap",
		Usage:  "initializes the light client of a network from a trusted bootstrap",
		Flags:  []cli.Flag{flags.BootstrapFileFlag, flags.TrustedBlockRootFlag},
		Action: bootstrap,
	},
	{
		Name:   "import",
		Usage:  "verifies and applies a file of light client updates in order",
		Flags:  []cli.Flag{flags.UpdatesFileFlag, flags.UpdateTypeFlag},
		Action: importUpdates,
	},
	{
		Name:   "status",
		Usage:  "prints the trusted state of a network as JSON",
		Action: status,
	},
	{
		Name:   "networks",
		Usage:  "lists the networks with a stored light client state",
		Action: networks,
	},
	{
		Name:   "reset",
		Usage:  "drops the stored light client state of a network",
		Action: reset,
	},
	{
		Name:   "backup",
		Usage:  "writes a copy of the light client database",
		Flags:  []cli.Flag{flags.BackupDirFlag},
		Action: backup,
	},
}

// networkConfig resolves the consensus config selected on the command line.
func networkConfig(ctx *cli.Context) (*params.ConsensusConfig, error) {
	if path := ctx.String(flags.ChainConfigFileFlag.Name); path != "" {
		return params.LoadChainConfigFile(path)
	}
	return params.KnownConfig(ctx.String(flags.NetworkFlag.Name))
}

func openDB(ctx *cli.Context) (*kv.Store, error) {
	dir := ctx.String(flags.DataDirFlag.Name)
	if dir == "" {
		return nil, errors.New("no data directory configured")
	}
	return kv.NewKVStore(ctx.Context, dir)
}

// withService opens the database, registers the selected network and runs f.
func withService(ctx *cli.Context, f func(*light.Service, *params.ConsensusConfig) error) error {
	cfg, err := networkConfig(ctx)
	if err != nil {
		return err
	}
	db, err := openDB(ctx)
	if err != nil {
		return errors.Wrap(err, "could not open database")
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.WithError(err).Error("Could not close database")
		}
	}()
	svc, err := light.New(&light.Config{Stores: db})
	if err != nil {
		return err
	}
	if err := svc.Register(cfg); err != nil {
		return err
	}
	return f(svc, cfg)
}

func readJSON(path string, dst interface{}) error {
	data, err := ioutil.ReadFile(path) // #nosec G304
	if err != nil {
		return errors.Wrapf(err, "could not read %s", path)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return errors.Wrapf(err, "could not parse %s", path)
	}
	return nil
}

func bootstrap(ctx *cli.Context) error {
	root, err := hexutil.Decode(ctx.String(flags.TrustedBlockRootFlag.Name))
	if err != nil || len(root) != 32 {
		return errors.Errorf("trusted block root must be 32 bytes of 0x prefixed hex")
	}
	var trustedRoot [32]byte
	copy(trustedRoot[:], root)
	return withService(ctx, func(svc *light.Service, cfg *params.ConsensusConfig) error {
		var resp structs.LightClientBootstrapResponse
		if err := readJSON(ctx.String(flags.BootstrapFileFlag.Name), &resp); err != nil {
			return err
		}
		b, err := resp.ToConsensus(cfg.Preset)
		if err != nil {
			return err
		}
		if err := svc.Initialize(ctx.Context, cfg.ConfigName, b, cfg.GenesisValidatorsRoot, trustedRoot); err != nil {
			return err
		}
		return printStatus(ctx, svc, cfg)
	})
}

func decodeUpdates(path, kind string, p *params.Preset) ([]*light_client.Update, error) {
	var updates []*light_client.Update
	switch kind {
	case "update":
		var list []*structs.LightClientUpdateWithVersion
		if err := readJSON(path, &list); err != nil {
			return nil, err
		}
		for i, item := range list {
			u, err := item.ToConsensus(p)
			if err != nil {
				return nil, errors.Wrapf(err, "update %d", i)
			}
			updates = append(updates, u)
		}
	case "finality":
		var list []*structs.LightClientFinalityUpdateResponse
		if err := readJSON(path, &list); err != nil {
			return nil, err
		}
		for i, item := range list {
			u, err := item.ToConsensus(p)
			if err != nil {
				return nil, errors.Wrapf(err, "update %d", i)
			}
			updates = append(updates, u.ToUpdate())
		}
	case "optimistic":
		var list []*structs.LightClientOptimisticUpdateResponse
		if err := readJSON(path, &list); err != nil {
			return nil, err
		}
		for i, item := range list {
			u, err := item.ToConsensus(p)
			if err != nil {
				return nil, errors.Wrapf(err, "update %d", i)
			}
			updates = append(updates, u.ToUpdate())
		}
	default:
		return nil, errors.Errorf("unknown update type %s", kind)
	}
	return updates, nil
}

func importUpdates(ctx *cli.Context) error {
	kind := ctx.String(flags.UpdateTypeFlag.Name)
	return withService(ctx, func(svc *light.Service, cfg *params.ConsensusConfig) error {
		updates, err := decodeUpdates(ctx.String(flags.UpdatesFileFlag.Name), kind, cfg.Preset)
		if err != nil {
			return err
		}
		n, err := svc.ImportUpdates(ctx.Context, cfg.ConfigName, updates)
		log.WithField("network", cfg.ConfigName).WithField("imported", n).WithField("total", len(updates)).Info("Imported light client updates")
		if err != nil {
			return err
		}
		return printStatus(ctx, svc, cfg)
	})
}

type statusResponse struct {
	Network                  string                     `json:"network"`
	FinalizedHeader          *structs.BeaconBlockHeader `json:"finalized_header"`
	OptimisticHeader         *structs.BeaconBlockHeader `json:"optimistic_header"`
	FinalizedPeriod          uint64                     `json:"finalized_period"`
	CurrentSyncCommitteeRoot string                     `json:"current_sync_committee_root"`
	NextSyncCommitteeRoot    string                     `json:"next_sync_committee_root,omitempty"`
}

func printStatus(ctx *cli.Context, svc *light.Service, cfg *params.ConsensusConfig) error {
	state, err := svc.State(ctx.Context, cfg.ConfigName)
	if err != nil {
		return err
	}
	resp := &statusResponse{
		Network:          cfg.ConfigName,
		FinalizedHeader:  structs.BeaconBlockHeaderFromConsensus(state.FinalizedHeader),
		OptimisticHeader: structs.BeaconBlockHeaderFromConsensus(state.OptimisticHeader),
		FinalizedPeriod:  slots.SyncCommitteePeriodAtSlot(cfg.Preset, state.FinalizedHeader.Slot),
	}
	root, err := state.CurrentSyncCommittee.HashTreeRoot()
	if err != nil {
		return err
	}
	resp.CurrentSyncCommitteeRoot = hexutil.Encode(root[:])
	if state.NextSyncCommittee != nil {
		root, err := state.NextSyncCommittee.HashTreeRoot()
		if err != nil {
			return err
		}
		resp.NextSyncCommitteeRoot = hexutil.Encode(root[:])
	}
	enc := json.NewEncoder(ctx.App.Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(resp)
}

func status(ctx *cli.Context) error {
	return withService(ctx, func(svc *light.Service, cfg *params.ConsensusConfig) error {
		return printStatus(ctx, svc, cfg)
	})
}

func networks(ctx *cli.Context) error {
	db, err := openDB(ctx)
	if err != nil {
		return errors.Wrap(err, "could not open database")
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.WithError(err).Error("Could not close database")
		}
	}()
	names, err := db.Networks(ctx.Context)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(ctx.App.Writer)
	return enc.Encode(names)
}

func backup(ctx *cli.Context) error {
	db, err := openDB(ctx)
	if err != nil {
		return errors.Wrap(err, "could not open database")
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.WithError(err).Error("Could not close database")
		}
	}()
	path, err := db.Backup(ctx.Context, ctx.String(flags.BackupDirFlag.Name), false)
	if err != nil {
		return errors.Wrap(err, "could not back up database")
	}
	log.WithField("path", path).Info("Database backup written")
	return json.NewEncoder(ctx.App.Writer).Encode(path)
}

func reset(ctx *cli.Context) error {
	cfg, err := networkConfig(ctx)
	if err != nil {
		return err
	}
	db, err := openDB(ctx)
	if err != nil {
		return errors.Wrap(err, "could not open database")
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.WithError(err).Error("Could not close database")
		}
	}()
	if err := db.DeleteNetwork(ctx.Context, cfg.ConfigName); err != nil {
		return err
	}
	log.WithField("network", cfg.ConfigName).Info("Light client state dropped")
	return nil
}
