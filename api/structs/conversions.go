package structs

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"
	"github.com/pkg/errors"
	fieldparams "github.com/prysmaticlabs/synclight/config/fieldparams"
	"github.com/prysmaticlabs/synclight/config/params"
	light_client "github.com/prysmaticlabs/synclight/consensus-types/light-client"
	"github.com/prysmaticlabs/synclight/consensus-types/primitives"
)

func (h *BeaconBlockHeader) ToConsensus() (*light_client.BeaconBlockHeader, error) {
	if h == nil {
		return nil, errNilValue
	}
	s, err := decodeUint(h.Slot)
	if err != nil {
		return nil, NewDecodeError(err, "Slot")
	}
	pi, err := decodeUint(h.ProposerIndex)
	if err != nil {
		return nil, NewDecodeError(err, "ProposerIndex")
	}
	pr, err := decodeRoot(h.ParentRoot)
	if err != nil {
		return nil, NewDecodeError(err, "ParentRoot")
	}
	sr, err := decodeRoot(h.StateRoot)
	if err != nil {
		return nil, NewDecodeError(err, "StateRoot")
	}
	br, err := decodeRoot(h.BodyRoot)
	if err != nil {
		return nil, NewDecodeError(err, "BodyRoot")
	}
	return &light_client.BeaconBlockHeader{
		Slot:          primitives.Slot(s),
		ProposerIndex: primitives.ValidatorIndex(pi),
		ParentRoot:    pr,
		StateRoot:     sr,
		BodyRoot:      br,
	}, nil
}

func BeaconBlockHeaderFromConsensus(h *light_client.BeaconBlockHeader) *BeaconBlockHeader {
	return &BeaconBlockHeader{
		Slot:          fmt.Sprintf("%d", h.Slot),
		ProposerIndex: fmt.Sprintf("%d", h.ProposerIndex),
		ParentRoot:    hexutil.Encode(h.ParentRoot[:]),
		StateRoot:     hexutil.Encode(h.StateRoot[:]),
		BodyRoot:      hexutil.Encode(h.BodyRoot[:]),
	}
}

// ToConsensus decodes the payload header of the given fork version.
func (e *ExecutionPayloadHeader) ToConsensus(version string) (light_client.ExecutionHeader, error) {
	if e == nil {
		return nil, errNilValue
	}
	capella, err := e.capella()
	if err != nil {
		return nil, err
	}
	switch version {
	case "capella":
		return capella, nil
	case "deneb", "electra", "fulu":
		blobGasUsed, err := decodeUint(e.BlobGasUsed)
		if err != nil {
			return nil, NewDecodeError(err, "BlobGasUsed")
		}
		excessBlobGas, err := decodeUint(e.ExcessBlobGas)
		if err != nil {
			return nil, NewDecodeError(err, "ExcessBlobGas")
		}
		return &light_client.ExecutionPayloadHeaderDeneb{
			ExecutionPayloadHeaderCapella: *capella,
			BlobGasUsed:                   blobGasUsed,
			ExcessBlobGas:                 excessBlobGas,
		}, nil
	default:
		return nil, errors.Errorf("no execution payload in %s headers", version)
	}
}

func (e *ExecutionPayloadHeader) capella() (*light_client.ExecutionPayloadHeaderCapella, error) {
	out := &light_client.ExecutionPayloadHeaderCapella{}
	roots := []struct {
		name string
		src  string
		dst  *[32]byte
	}{
		{"ParentHash", e.ParentHash, &out.ParentHash},
		{"StateRoot", e.StateRoot, &out.StateRootVal},
		{"ReceiptsRoot", e.ReceiptsRoot, &out.ReceiptsRoot},
		{"PrevRandao", e.PrevRandao, &out.PrevRandao},
		{"BlockHash", e.BlockHash, &out.BlockHashVal},
		{"TransactionsRoot", e.TransactionsRoot, &out.TransactionsRoot},
		{"WithdrawalsRoot", e.WithdrawalsRoot, &out.WithdrawalsRoot},
	}
	for _, r := range roots {
		v, err := decodeRoot(r.src)
		if err != nil {
			return nil, NewDecodeError(err, r.name)
		}
		*r.dst = v
	}
	ints := []struct {
		name string
		src  string
		dst  *uint64
	}{
		{"BlockNumber", e.BlockNumber, &out.BlockNumberVal},
		{"GasLimit", e.GasLimit, &out.GasLimit},
		{"GasUsed", e.GasUsed, &out.GasUsed},
		{"Timestamp", e.Timestamp, &out.Timestamp},
	}
	for _, i := range ints {
		v, err := decodeUint(i.src)
		if err != nil {
			return nil, NewDecodeError(err, i.name)
		}
		*i.dst = v
	}
	feeRecipient, err := DecodeHexWithLength(e.FeeRecipient, fieldparams.FeeRecipientLength)
	if err != nil {
		return nil, NewDecodeError(err, "FeeRecipient")
	}
	copy(out.FeeRecipient[:], feeRecipient)
	logsBloom, err := DecodeHexWithLength(e.LogsBloom, fieldparams.LogsBloomLength)
	if err != nil {
		return nil, NewDecodeError(err, "LogsBloom")
	}
	copy(out.LogsBloom[:], logsBloom)
	extraData, err := hexutil.Decode(e.ExtraData)
	if err != nil {
		return nil, NewDecodeError(err, "ExtraData")
	}
	if len(extraData) > fieldparams.MaxExtraDataBytes {
		return nil, NewDecodeError(errors.Errorf("%d bytes exceed the limit of %d", len(extraData), fieldparams.MaxExtraDataBytes), "ExtraData")
	}
	out.ExtraData = extraData
	baseFee, err := decodeBaseFee(e.BaseFeePerGas)
	if err != nil {
		return nil, NewDecodeError(err, "BaseFeePerGas")
	}
	out.BaseFeePerGas = baseFee
	return out, nil
}

// decodeBaseFee parses a decimal uint256 into its little endian SSZ form.
func decodeBaseFee(s string) ([32]byte, error) {
	var le [32]byte
	bi, ok := new(big.Int).SetString(s, 10)
	if !ok || bi.Sign() < 0 {
		return le, errors.Errorf("%q is not a decimal uint256", s)
	}
	v, overflow := uint256.FromBig(bi)
	if overflow {
		return le, errors.Errorf("%s overflows uint256", s)
	}
	be := v.Bytes32()
	for i := range be {
		le[i] = be[len(be)-1-i]
	}
	return le, nil
}

func encodeBaseFee(le [32]byte) string {
	var be [32]byte
	for i := range le {
		be[i] = le[len(le)-1-i]
	}
	return new(uint256.Int).SetBytes(be[:]).ToBig().String()
}

func ExecutionPayloadHeaderFromConsensus(h light_client.ExecutionHeader) (*ExecutionPayloadHeader, error) {
	var capella *light_client.ExecutionPayloadHeaderCapella
	var out *ExecutionPayloadHeader
	switch e := h.(type) {
	case *light_client.ExecutionPayloadHeaderCapella:
		capella = e
		out = &ExecutionPayloadHeader{}
	case *light_client.ExecutionPayloadHeaderDeneb:
		capella = &e.ExecutionPayloadHeaderCapella
		out = &ExecutionPayloadHeader{
			BlobGasUsed:   fmt.Sprintf("%d", e.BlobGasUsed),
			ExcessBlobGas: fmt.Sprintf("%d", e.ExcessBlobGas),
		}
	default:
		return nil, errors.Errorf("unsupported execution payload header %T", h)
	}
	out.ParentHash = hexutil.Encode(capella.ParentHash[:])
	out.FeeRecipient = hexutil.Encode(capella.FeeRecipient[:])
	out.StateRoot = hexutil.Encode(capella.StateRootVal[:])
	out.ReceiptsRoot = hexutil.Encode(capella.ReceiptsRoot[:])
	out.LogsBloom = hexutil.Encode(capella.LogsBloom[:])
	out.PrevRandao = hexutil.Encode(capella.PrevRandao[:])
	out.BlockNumber = fmt.Sprintf("%d", capella.BlockNumberVal)
	out.GasLimit = fmt.Sprintf("%d", capella.GasLimit)
	out.GasUsed = fmt.Sprintf("%d", capella.GasUsed)
	out.Timestamp = fmt.Sprintf("%d", capella.Timestamp)
	out.ExtraData = hexutil.Encode(capella.ExtraData)
	out.BaseFeePerGas = encodeBaseFee(capella.BaseFeePerGas)
	out.BlockHash = hexutil.Encode(capella.BlockHashVal[:])
	out.TransactionsRoot = hexutil.Encode(capella.TransactionsRoot[:])
	out.WithdrawalsRoot = hexutil.Encode(capella.WithdrawalsRoot[:])
	return out, nil
}

// ToConsensus decodes a light client header of the given fork version.
func (h *LightClientHeader) ToConsensus(version string, p *params.Preset) (*light_client.LightClientHeader, error) {
	if h == nil {
		return nil, errNilValue
	}
	beacon, err := h.Beacon.ToConsensus()
	if err != nil {
		return nil, NewDecodeError(err, "Beacon")
	}
	out := light_client.NewLightClientHeader(beacon)
	if h.Execution == nil {
		return out, nil
	}
	out.Execution, err = h.Execution.ToConsensus(version)
	if err != nil {
		return nil, NewDecodeError(err, "Execution")
	}
	out.ExecutionBranch, err = decodeBranch("execution", h.ExecutionBranch, p.ExecutionPayloadDepth)
	if err != nil {
		return nil, NewDecodeError(err, "ExecutionBranch")
	}
	return out, nil
}

func LightClientHeaderFromConsensus(h *light_client.LightClientHeader) (*LightClientHeader, error) {
	out := &LightClientHeader{Beacon: BeaconBlockHeaderFromConsensus(h.Beacon)}
	if !h.HasExecution() {
		return out, nil
	}
	execution, err := ExecutionPayloadHeaderFromConsensus(h.Execution)
	if err != nil {
		return nil, err
	}
	out.Execution = execution
	out.ExecutionBranch = encodeBranch(h.ExecutionBranch)
	return out, nil
}

func (c *SyncCommittee) ToConsensus() (*light_client.SyncCommittee, error) {
	if c == nil {
		return nil, errNilValue
	}
	out := &light_client.SyncCommittee{Pubkeys: make([][fieldparams.BLSPubkeyLength]byte, len(c.Pubkeys))}
	for i, pk := range c.Pubkeys {
		b, err := DecodeHexWithLength(pk, fieldparams.BLSPubkeyLength)
		if err != nil {
			return nil, NewDecodeError(err, fmt.Sprintf("Pubkeys[%d]", i))
		}
		copy(out.Pubkeys[i][:], b)
	}
	agg, err := DecodeHexWithLength(c.AggregatePubkey, fieldparams.BLSPubkeyLength)
	if err != nil {
		return nil, NewDecodeError(err, "AggregatePubkey")
	}
	copy(out.AggregatePubkey[:], agg)
	return out, nil
}

func SyncCommitteeFromConsensus(c *light_client.SyncCommittee) *SyncCommittee {
	out := &SyncCommittee{
		Pubkeys:         make([]string, len(c.Pubkeys)),
		AggregatePubkey: hexutil.Encode(c.AggregatePubkey[:]),
	}
	for i := range c.Pubkeys {
		out.Pubkeys[i] = hexutil.Encode(c.Pubkeys[i][:])
	}
	return out
}

func (a *SyncAggregate) ToConsensus() (*light_client.SyncAggregate, error) {
	if a == nil {
		return nil, errNilValue
	}
	bits, err := hexutil.Decode(a.SyncCommitteeBits)
	if err != nil {
		return nil, NewDecodeError(err, "SyncCommitteeBits")
	}
	sig, err := DecodeHexWithLength(a.SyncCommitteeSignature, fieldparams.BLSSignatureLength)
	if err != nil {
		return nil, NewDecodeError(err, "SyncCommitteeSignature")
	}
	var s [fieldparams.BLSSignatureLength]byte
	copy(s[:], sig)
	out, err := light_client.NewSyncAggregate(bits, s)
	if err != nil {
		return nil, NewDecodeError(err, "SyncCommitteeBits")
	}
	return out, nil
}

func SyncAggregateFromConsensus(a *light_client.SyncAggregate) *SyncAggregate {
	return &SyncAggregate{
		SyncCommitteeBits:      hexutil.Encode(a.SyncCommitteeBits.Bytes()),
		SyncCommitteeSignature: hexutil.Encode(a.SyncCommitteeSignature[:]),
	}
}

// ToConsensus decodes the bootstrap in the envelope.
func (r *LightClientBootstrapResponse) ToConsensus(p *params.Preset) (*light_client.Bootstrap, error) {
	if r == nil || r.Data == nil {
		return nil, NewDecodeError(errNilValue, "Data")
	}
	header, err := r.Data.Header.ToConsensus(r.Version, p)
	if err != nil {
		return nil, NewDecodeError(err, "Data.Header")
	}
	committee, err := r.Data.CurrentSyncCommittee.ToConsensus()
	if err != nil {
		return nil, NewDecodeError(err, "Data.CurrentSyncCommittee")
	}
	branch, err := decodeBranch("current sync committee", r.Data.CurrentSyncCommitteeBranch, p.CurrentSyncCommitteeDepth)
	if err != nil {
		return nil, NewDecodeError(err, "Data.CurrentSyncCommitteeBranch")
	}
	return &light_client.Bootstrap{
		Header:                     header,
		CurrentSyncCommittee:       committee,
		CurrentSyncCommitteeBranch: branch,
	}, nil
}

func LightClientBootstrapFromConsensus(version string, b *light_client.Bootstrap) (*LightClientBootstrapResponse, error) {
	header, err := LightClientHeaderFromConsensus(b.Header)
	if err != nil {
		return nil, err
	}
	return &LightClientBootstrapResponse{
		Version: version,
		Data: &LightClientBootstrap{
			Header:                     header,
			CurrentSyncCommittee:       SyncCommitteeFromConsensus(b.CurrentSyncCommittee),
			CurrentSyncCommitteeBranch: encodeBranch(b.CurrentSyncCommitteeBranch),
		},
	}, nil
}

// ToConsensus decodes the update in the envelope. A next sync committee or a
// finalized header whose branch is all zero roots is treated as absent.
func (r *LightClientUpdateWithVersion) ToConsensus(p *params.Preset) (*light_client.Update, error) {
	if r == nil || r.Data == nil {
		return nil, NewDecodeError(errNilValue, "Data")
	}
	d := r.Data
	out := &light_client.Update{}
	var err error
	if out.AttestedHeader, err = d.AttestedHeader.ToConsensus(r.Version, p); err != nil {
		return nil, NewDecodeError(err, "Data.AttestedHeader")
	}
	if out.SyncAggregate, err = d.SyncAggregate.ToConsensus(); err != nil {
		return nil, NewDecodeError(err, "Data.SyncAggregate")
	}
	signatureSlot, err := decodeUint(d.SignatureSlot)
	if err != nil {
		return nil, NewDecodeError(err, "Data.SignatureSlot")
	}
	out.SignatureSlot = primitives.Slot(signatureSlot)

	nextBranch, err := decodeOptionalBranch("next sync committee", d.NextSyncCommitteeBranch, p.NextSyncCommitteeDepth)
	if err != nil {
		return nil, NewDecodeError(err, "Data.NextSyncCommitteeBranch")
	}
	out.NextSyncCommitteeBranch = nextBranch
	// An unpaired committee is kept so the update is rejected as incomplete.
	if d.NextSyncCommittee != nil && (nextBranch != nil || len(d.NextSyncCommitteeBranch) == 0) {
		if out.NextSyncCommittee, err = d.NextSyncCommittee.ToConsensus(); err != nil {
			return nil, NewDecodeError(err, "Data.NextSyncCommittee")
		}
	}

	finality := &LightClientFinalityUpdate{
		FinalizedHeader: d.FinalizedHeader,
		FinalityBranch:  d.FinalityBranch,
	}
	if out.FinalizedHeader, out.FinalityBranch, err = finality.finality(r.Version, p); err != nil {
		return nil, NewDecodeError(err, "Data")
	}
	return out, nil
}

func (u *LightClientFinalityUpdate) finality(version string, p *params.Preset) (*light_client.LightClientHeader, [][32]byte, error) {
	branch, err := decodeOptionalBranch("finality", u.FinalityBranch, p.FinalizedRootDepth)
	if err != nil {
		return nil, nil, NewDecodeError(err, "FinalityBranch")
	}
	if u.FinalizedHeader == nil || (branch == nil && len(u.FinalityBranch) > 0) {
		return nil, branch, nil
	}
	header, err := u.FinalizedHeader.ToConsensus(version, p)
	if err != nil {
		return nil, nil, NewDecodeError(err, "FinalizedHeader")
	}
	return header, branch, nil
}

func LightClientUpdateFromConsensus(version string, u *light_client.Update) (*LightClientUpdateWithVersion, error) {
	attested, err := LightClientHeaderFromConsensus(u.AttestedHeader)
	if err != nil {
		return nil, err
	}
	out := &LightClientUpdate{
		AttestedHeader:          attested,
		NextSyncCommitteeBranch: encodeBranch(u.NextSyncCommitteeBranch),
		FinalityBranch:          encodeBranch(u.FinalityBranch),
		SyncAggregate:           SyncAggregateFromConsensus(u.SyncAggregate),
		SignatureSlot:           fmt.Sprintf("%d", u.SignatureSlot),
	}
	if u.NextSyncCommittee != nil {
		out.NextSyncCommittee = SyncCommitteeFromConsensus(u.NextSyncCommittee)
	}
	if u.FinalizedHeader != nil {
		if out.FinalizedHeader, err = LightClientHeaderFromConsensus(u.FinalizedHeader); err != nil {
			return nil, err
		}
	}
	return &LightClientUpdateWithVersion{Version: version, Data: out}, nil
}

// ToConsensus decodes the finality update in the envelope.
func (r *LightClientFinalityUpdateResponse) ToConsensus(p *params.Preset) (*light_client.FinalityUpdate, error) {
	if r == nil || r.Data == nil {
		return nil, NewDecodeError(errNilValue, "Data")
	}
	opt := &LightClientOptimisticUpdateResponse{
		Version: r.Version,
		Data: &LightClientOptimisticUpdate{
			AttestedHeader: r.Data.AttestedHeader,
			SyncAggregate:  r.Data.SyncAggregate,
			SignatureSlot:  r.Data.SignatureSlot,
		},
	}
	base, err := opt.ToConsensus(p)
	if err != nil {
		return nil, err
	}
	finalized, branch, err := r.Data.finality(r.Version, p)
	if err != nil {
		return nil, NewDecodeError(err, "Data")
	}
	return &light_client.FinalityUpdate{
		AttestedHeader:  base.AttestedHeader,
		FinalizedHeader: finalized,
		FinalityBranch:  branch,
		SyncAggregate:   base.SyncAggregate,
		SignatureSlot:   base.SignatureSlot,
	}, nil
}

// ToConsensus decodes the optimistic update in the envelope.
func (r *LightClientOptimisticUpdateResponse) ToConsensus(p *params.Preset) (*light_client.OptimisticUpdate, error) {
	if r == nil || r.Data == nil {
		return nil, NewDecodeError(errNilValue, "Data")
	}
	attested, err := r.Data.AttestedHeader.ToConsensus(r.Version, p)
	if err != nil {
		return nil, NewDecodeError(err, "Data.AttestedHeader")
	}
	agg, err := r.Data.SyncAggregate.ToConsensus()
	if err != nil {
		return nil, NewDecodeError(err, "Data.SyncAggregate")
	}
	signatureSlot, err := decodeUint(r.Data.SignatureSlot)
	if err != nil {
		return nil, NewDecodeError(err, "Data.SignatureSlot")
	}
	return &light_client.OptimisticUpdate{
		AttestedHeader: attested,
		SyncAggregate:  agg,
		SignatureSlot:  primitives.Slot(signatureSlot),
	}, nil
}

func decodeBranch(name string, list []string, depth uint64) ([][32]byte, error) {
	raw, err := decodeHexList(list)
	if err != nil {
		return nil, err
	}
	return light_client.BranchFromBytes(name, raw, depth)
}

// decodeOptionalBranch returns nil for an empty or all zero branch.
func decodeOptionalBranch(name string, list []string, depth uint64) ([][32]byte, error) {
	if len(list) == 0 {
		return nil, nil
	}
	branch, err := decodeBranch(name, list, depth)
	if err != nil {
		return nil, err
	}
	for _, r := range branch {
		if r != ([32]byte{}) {
			return branch, nil
		}
	}
	return nil, nil
}

func encodeBranch(branch [][32]byte) []string {
	if len(branch) == 0 {
		return nil
	}
	out := make([]string, len(branch))
	for i, r := range light_client.BranchToBytes(branch) {
		out[i] = hexutil.Encode(r)
	}
	return out
}
