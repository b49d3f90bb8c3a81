package lightclient

import (
	"github.com/pkg/errors"
	light_client "github.com/prysmaticlabs/synclight/consensus-types/light-client"
	"github.com/prysmaticlabs/synclight/encoding/ssz"
	"github.com/prysmaticlabs/synclight/time/slots"
)

// validateHeader checks a light client header. Headers before the Capella
// fork must not carry an execution payload. Later headers that carry one must
// prove it against the beacon block body root.
func (lc *LightClient) validateHeader(header *light_client.LightClientHeader) error {
	if header == nil || header.Beacon == nil {
		return errors.Wrap(ErrInvalidUpdate, "missing beacon header")
	}
	epoch := slots.ToEpoch(lc.cfg.Preset, header.Beacon.Slot)
	if epoch < lc.cfg.CapellaForkEpoch {
		if header.HasExecution() || len(header.ExecutionBranch) > 0 {
			return errors.Wrapf(ErrInvalidUpdate, "execution payload in pre-capella header at slot %d", header.Beacon.Slot)
		}
		return nil
	}
	if !header.HasExecution() {
		return nil
	}
	root, err := header.Execution.HashTreeRoot()
	if err != nil {
		return errors.Wrap(err, "could not hash execution payload header")
	}
	p := lc.cfg.Preset
	if !ssz.VerifyProof(header.Beacon.BodyRoot, root, header.ExecutionBranch, p.ExecutionPayloadDepth, p.ExecutionPayloadIndex) {
		return errors.Wrap(ErrInvalidMerkleBranch, "execution payload branch")
	}
	return nil
}
