package structs

import (
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/prysmaticlabs/synclight/config/params"
	"github.com/stretchr/testify/require"
)

func TestToConsensus_Fuzz(t *testing.T) {
	p := params.MinimalPreset()
	fuzzer := fuzz.NewWithSeed(0).NilChance(0.1)
	for i := 0; i < 1000; i++ {
		update := &LightClientUpdateWithVersion{}
		fuzzer.Fuzz(update)
		require.NotPanics(t, func() {
			_, _ = update.ToConsensus(p)
		})
		bootstrap := &LightClientBootstrapResponse{}
		fuzzer.Fuzz(bootstrap)
		require.NotPanics(t, func() {
			_, _ = bootstrap.ToConsensus(p)
		})
		finality := &LightClientFinalityUpdateResponse{}
		fuzzer.Fuzz(finality)
		require.NotPanics(t, func() {
			_, _ = finality.ToConsensus(p)
		})
	}
}
