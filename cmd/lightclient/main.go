// Package main is the synclight command: it bootstraps light clients, feeds
// them updates from beacon API JSON files and reports their trusted state.
package main

import (
	"os"

	"github.com/prysmaticlabs/synclight/cmd/lightclient/flags"
	"github.com/prysmaticlabs/synclight/io/logs"
	"github.com/prysmaticlabs/synclight/monitoring/prometheus"
	"github.com/prysmaticlabs/synclight/monitoring/tracing"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"go.uber.org/automaxprocs/maxprocs"
)

var log = logrus.WithField("prefix", "main")

func newApp() *cli.App {
	var flushTraces func()
	app := &cli.App{
		Name:     "synclight",
		Usage:    "verifies beacon chain light client updates for one or more networks",
		Flags:    flags.GlobalFlags,
		Commands: commands,
	}
	app.Before = func(ctx *cli.Context) error {
		level, err := logrus.ParseLevel(ctx.String(flags.VerbosityFlag.Name))
		if err != nil {
			return err
		}
		logrus.SetLevel(level)

		logFileName := ctx.String(flags.LogFileFlag.Name)
		formatter, err := logs.NewFormatter(ctx.String(flags.LogFormatFlag.Name), logFileName != "")
		if err != nil {
			return err
		}
		logrus.SetFormatter(formatter)
		if logFileName != "" {
			format := ctx.String(flags.LogFileFormatFlag.Name)
			if err := logs.ConfigurePersistentLogging(logFileName, format); err != nil {
				log.WithError(err).Error("Failed to configuring logging to disk.")
			}
		}
		if ctx.String(flags.MetricsFileFlag.Name) != "" {
			logrus.AddHook(prometheus.NewLogrusCollector())
		}

		if _, err := maxprocs.Set(maxprocs.Logger(log.Debugf)); err != nil {
			log.WithError(err).Debug("Could not set GOMAXPROCS")
		}

		flushTraces, err = tracing.Setup(
			app.Name,
			ctx.String(flags.TracingEndpointFlag.Name),
			ctx.Float64(flags.TraceSampleFractionFlag.Name),
			ctx.Bool(flags.EnableTracingFlag.Name),
		)
		return err
	}
	app.After = func(ctx *cli.Context) error {
		if flushTraces != nil {
			flushTraces()
		}
		if path := ctx.String(flags.MetricsFileFlag.Name); path != "" {
			return prometheus.WriteMetricsFile(path)
		}
		return nil
	}
	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}
