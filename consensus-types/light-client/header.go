package light_client

import (
	ssz "github.com/ferranbt/fastssz"
	fieldparams "github.com/prysmaticlabs/synclight/config/fieldparams"
	"github.com/prysmaticlabs/synclight/consensus-types/primitives"
)

// BeaconBlockHeader is the consensus layer block header.
type BeaconBlockHeader struct {
	Slot          primitives.Slot
	ProposerIndex primitives.ValidatorIndex
	ParentRoot    [fieldparams.RootLength]byte
	StateRoot     [fieldparams.RootLength]byte
	BodyRoot      [fieldparams.RootLength]byte
}

// Copy returns a copy of the header.
func (h *BeaconBlockHeader) Copy() *BeaconBlockHeader {
	if h == nil {
		return nil
	}
	cp := *h
	return &cp
}

// HashTreeRoot ssz hashes the header.
func (h *BeaconBlockHeader) HashTreeRoot() ([32]byte, error) {
	hh := ssz.NewHasher()
	if err := h.HashTreeRootWith(hh); err != nil {
		return [32]byte{}, err
	}
	return hh.HashRoot()
}

// HashTreeRootWith ssz hashes the header with a hasher.
func (h *BeaconBlockHeader) HashTreeRootWith(hh *ssz.Hasher) error {
	indx := hh.Index()
	hh.PutUint64(uint64(h.Slot))
	hh.PutUint64(uint64(h.ProposerIndex))
	hh.PutBytes(h.ParentRoot[:])
	hh.PutBytes(h.StateRoot[:])
	hh.PutBytes(h.BodyRoot[:])
	hh.Merkleize(indx)
	return nil
}

// SizeSSZ returns the ssz encoded size in bytes.
func (h *BeaconBlockHeader) SizeSSZ() int {
	return fieldparams.BeaconBlockHeaderSize
}

// MarshalSSZ ssz marshals the header.
func (h *BeaconBlockHeader) MarshalSSZ() ([]byte, error) {
	return h.MarshalSSZTo(make([]byte, 0, h.SizeSSZ()))
}

// MarshalSSZTo ssz marshals the header to a target array.
func (h *BeaconBlockHeader) MarshalSSZTo(dst []byte) ([]byte, error) {
	dst = ssz.MarshalUint64(dst, uint64(h.Slot))
	dst = ssz.MarshalUint64(dst, uint64(h.ProposerIndex))
	dst = append(dst, h.ParentRoot[:]...)
	dst = append(dst, h.StateRoot[:]...)
	dst = append(dst, h.BodyRoot[:]...)
	return dst, nil
}

// UnmarshalSSZ ssz unmarshals the header.
func (h *BeaconBlockHeader) UnmarshalSSZ(buf []byte) error {
	if len(buf) != fieldparams.BeaconBlockHeaderSize {
		return ssz.ErrSize
	}
	h.Slot = primitives.Slot(ssz.UnmarshallUint64(buf[0:8]))
	h.ProposerIndex = primitives.ValidatorIndex(ssz.UnmarshallUint64(buf[8:16]))
	copy(h.ParentRoot[:], buf[16:48])
	copy(h.StateRoot[:], buf[48:80])
	copy(h.BodyRoot[:], buf[80:112])
	return nil
}

// LightClientHeader wraps a beacon header together with the execution payload
// header committed to by its body, when the header is from Capella onwards.
type LightClientHeader struct {
	Beacon          *BeaconBlockHeader
	Execution       ExecutionHeader
	ExecutionBranch [][fieldparams.RootLength]byte
}

// NewLightClientHeader returns a header without an execution payload.
func NewLightClientHeader(beacon *BeaconBlockHeader) *LightClientHeader {
	return &LightClientHeader{Beacon: beacon}
}

// HasExecution reports whether the header carries an execution payload header.
func (h *LightClientHeader) HasExecution() bool {
	return h != nil && h.Execution != nil
}

// Slot returns the slot of the beacon header, or zero for a nil header.
func (h *LightClientHeader) Slot() primitives.Slot {
	if h == nil || h.Beacon == nil {
		return 0
	}
	return h.Beacon.Slot
}

// Copy returns a deep copy of the header.
func (h *LightClientHeader) Copy() *LightClientHeader {
	if h == nil {
		return nil
	}
	cp := &LightClientHeader{
		Beacon:    h.Beacon.Copy(),
		Execution: h.Execution,
	}
	if h.ExecutionBranch != nil {
		cp.ExecutionBranch = make([][fieldparams.RootLength]byte, len(h.ExecutionBranch))
		copy(cp.ExecutionBranch, h.ExecutionBranch)
	}
	return cp
}
