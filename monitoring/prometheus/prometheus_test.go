package prometheus

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogrusCollector(t *testing.T) {
	hook := NewLogrusCollector()
	assert.Equal(t, supportedLevels, hook.Levels())

	before := testutil.ToFloat64(counterVec.WithLabelValues("warning", "light"))
	require.NoError(t, hook.Fire(&logrus.Entry{Level: logrus.WarnLevel, Data: logrus.Fields{"prefix": "light"}}))
	assert.Equal(t, before+1, testutil.ToFloat64(counterVec.WithLabelValues("warning", "light")))

	before = testutil.ToFloat64(counterVec.WithLabelValues("info", defaultprefix))
	require.NoError(t, hook.Fire(&logrus.Entry{Level: logrus.InfoLevel, Data: logrus.Fields{}}))
	assert.Equal(t, before+1, testutil.ToFloat64(counterVec.WithLabelValues("info", defaultprefix)))

	require.ErrorContains(t, hook.Fire(&logrus.Entry{Level: logrus.InfoLevel, Data: logrus.Fields{"prefix": 3}}), "prefix is not a string")
}

func TestWriteMetricsFile(t *testing.T) {
	NewLogrusCollector().counterVec.WithLabelValues("error", "textfile").Inc()
	path := filepath.Join(t.TempDir(), "metrics", "synclight.prom")
	require.NoError(t, WriteMetricsFile(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `synclight_log_entries_total{level="error",prefix="textfile"} 1`)
}
