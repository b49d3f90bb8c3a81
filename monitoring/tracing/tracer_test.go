package tracing

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetup(t *testing.T) {
	flush, err := Setup("synclight", "", 1, false)
	require.NoError(t, err)
	flush()

	_, err = Setup("", "http://127.0.0.1:14268/api/traces", 1, true)
	require.ErrorContains(t, err, "service name cannot be empty")

	_, err = Setup("synclight", "http://127.0.0.1:14268/api/traces", 1.5, true)
	require.ErrorContains(t, err, "not within [0, 1]")

	flush, err = Setup("synclight", "http://127.0.0.1:14268/api/traces", 0.5, true)
	require.NoError(t, err)
	flush()
}
