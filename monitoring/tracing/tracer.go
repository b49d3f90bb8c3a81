// Package tracing sets up opencensus tracing with a jaeger exporter.
package tracing

import (
	"contrib.go.opencensus.io/exporter/jaeger"
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/synclight/io/logs"
	"github.com/sirupsen/logrus"
	"go.opencensus.io/trace"
)

var log = logrus.WithField("prefix", "tracing")

// Setup applies the sampler and registers a jaeger exporter when tracing is
// enabled. The returned flush function must be called before the process
// exits so buffered spans reach the collector.
func Setup(name, endpoint string, sampleFraction float64, enable bool) (func(), error) {
	if !enable {
		trace.ApplyConfig(trace.Config{DefaultSampler: trace.NeverSample()})
		return func() {}, nil
	}
	if name == "" {
		return nil, errors.New("tracing service name cannot be empty")
	}
	if sampleFraction < 0 || sampleFraction > 1 {
		return nil, errors.Errorf("trace sample fraction %v is not within [0, 1]", sampleFraction)
	}

	trace.ApplyConfig(trace.Config{DefaultSampler: trace.ProbabilitySampler(sampleFraction)})

	log.Infof("Starting Jaeger exporter endpoint at address = %s", logs.MaskCredentialsLogging(endpoint))
	exporter, err := jaeger.NewExporter(jaeger.Options{
		CollectorEndpoint: endpoint,
		Process: jaeger.Process{
			ServiceName: name,
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "could not create jaeger exporter")
	}
	trace.RegisterExporter(exporter)
	return func() {
		exporter.Flush()
		trace.UnregisterExporter(exporter)
	}, nil
}
