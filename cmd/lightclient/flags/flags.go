// Package flags defines the command line flags of the light client binary.
package flags

import (
	"github.com/urfave/cli/v2"
)

var (
	// DataDirFlag defines a path on disk where the light client database is stored.
	DataDirFlag = &cli.StringFlag{
		Name:  "datadir",
		Usage: "Data directory for the light client database",
		Value: DefaultDataDir(),
	}
	// NetworkFlag selects a built-in network.
	NetworkFlag = &cli.StringFlag{
		Name:  "network",
		Usage: "Built-in network to use: mainnet, sepolia, holesky or minimal",
		Value: "mainnet",
	}
	// ChainConfigFileFlag loads a network from a YAML chain config instead.
	ChainConfigFileFlag = &cli.StringFlag{
		Name:  "chain-config-file",
		Usage: "Path to a YAML chain config file. Takes precedence over --network",
	}
	// VerbosityFlag sets the log level.
	VerbosityFlag = &cli.StringFlag{
		Name:  "verbosity",
		Usage: "Logging verbosity (trace, debug, info=default, warn, error, fatal, panic)",
		Value: "info",
	}
	// LogFormatFlag selects the stdout log format.
	LogFormatFlag = &cli.StringFlag{
		Name:  "log-format",
		Usage: "Specify log formatting. Supports: text, json, fluentd",
		Value: "text",
	}
	// LogFileFlag writes logs to a file as well.
	LogFileFlag = &cli.StringFlag{
		Name:  "log-file",
		Usage: "Specify log file name, relative or absolute",
	}
	// LogFileFormatFlag selects the log file format.
	LogFileFormatFlag = &cli.StringFlag{
		Name:  "log-file-format",
		Usage: "Specify log file formatting. Supports: text, json, fluentd",
		Value: "text",
	}
	// MetricsFileFlag writes the prometheus metrics to a textfile on exit.
	MetricsFileFlag = &cli.StringFlag{
		Name:  "metrics-file",
		Usage: "Write prometheus metrics in text format to this file when the command finishes",
	}
	// EnableTracingFlag enables tracing via jaeger.
	EnableTracingFlag = &cli.BoolFlag{
		Name:  "enable-tracing",
		Usage: "Enable request tracing",
	}
	// TracingEndpointFlag is the jaeger collector endpoint.
	TracingEndpointFlag = &cli.StringFlag{
		Name:  "tracing-endpoint",
		Usage: "Tracing endpoint defines where light client traces are exposed to Jaeger",
		Value: "http://127.0.0.1:14268/api/traces",
	}
	// TraceSampleFractionFlag is the share of traces sampled.
	TraceSampleFractionFlag = &cli.Float64Flag{
		Name:  "trace-sample-fraction",
		Usage: "Indicate what fraction of p2p messages are sampled for tracing",
		Value: 0.20,
	}

	// BootstrapFileFlag is a beacon API bootstrap response.
	BootstrapFileFlag = &cli.StringFlag{
		Name:     "bootstrap-file",
		Usage:    "Path to a JSON light client bootstrap as returned by the beacon API",
		Required: true,
	}
	// TrustedBlockRootFlag is the block root the bootstrap header must hash to.
	TrustedBlockRootFlag = &cli.StringFlag{
		Name:     "trusted-block-root",
		Usage:    "0x prefixed block root obtained from a trusted source",
		Required: true,
	}
	// UpdatesFileFlag is a JSON list of beacon API update envelopes.
	UpdatesFileFlag = &cli.StringFlag{
		Name:     "updates-file",
		Usage:    "Path to a JSON array of light client updates",
		Required: true,
	}
	// UpdateTypeFlag selects how the updates file is decoded.
	UpdateTypeFlag = &cli.StringFlag{
		Name:  "update-type",
		Usage: "Kind of updates in the file. Supports: update, finality, optimistic",
		Value: "update",
	}
	// BackupDirFlag overrides the backup output directory.
	BackupDirFlag = &cli.StringFlag{
		Name:  "backup-dir",
		Usage: "Directory for the database backup. Defaults to $DATADIR/backups",
	}
)

// GlobalFlags are accepted by every command.
var GlobalFlags = []cli.Flag{
	DataDirFlag,
	NetworkFlag,
	ChainConfigFileFlag,
	VerbosityFlag,
	LogFormatFlag,
	LogFileFlag,
	LogFileFormatFlag,
	MetricsFileFlag,
	EnableTracingFlag,
	TracingEndpointFlag,
	TraceSampleFractionFlag,
}
