// Package prometheus holds the metric plumbing shared by the light client
// commands. Commands are short lived, so metrics are exported by writing the
// default registry to a node exporter textfile instead of serving them.
package prometheus

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

// WriteMetricsFile writes every metric of the default gatherer to path in the
// text exposition format.
func WriteMetricsFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return errors.Wrap(err, "could not create metrics directory")
	}
	if err := prometheus.WriteToTextfile(path, prometheus.DefaultGatherer); err != nil {
		return errors.Wrapf(err, "could not write metrics to %s", path)
	}
	return nil
}
