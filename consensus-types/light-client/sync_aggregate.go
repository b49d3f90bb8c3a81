package light_client

import (
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/go-bitfield"
	fieldparams "github.com/prysmaticlabs/synclight/config/fieldparams"
)

// SyncAggregate holds the participation bits of a sync committee and the
// aggregate signature of the participants. SyncCommitteeBits is a
// bitfield.Bitvector512 for 512 member presets and a bitfield.Bitvector32 for
// the minimal preset.
type SyncAggregate struct {
	SyncCommitteeBits      bitfield.Bitfield
	SyncCommitteeSignature [fieldparams.BLSSignatureLength]byte
}

// NewSyncAggregate builds an aggregate from raw bitvector bytes. The vector
// type is chosen from the byte length: 64 bytes for 512 members and 4 bytes
// for 32 members.
func NewSyncAggregate(bits []byte, sig [fieldparams.BLSSignatureLength]byte) (*SyncAggregate, error) {
	var bf bitfield.Bitfield
	switch len(bits) {
	case len(bitfield.NewBitvector512()):
		bv := bitfield.NewBitvector512()
		copy(bv, bits)
		bf = bv
	case len(bitfield.NewBitvector32()):
		bv := bitfield.NewBitvector32()
		copy(bv, bits)
		bf = bv
	default:
		return nil, errors.Errorf("unsupported sync committee bits length %d", len(bits))
	}
	return &SyncAggregate{SyncCommitteeBits: bf, SyncCommitteeSignature: sig}, nil
}

// Bitvector512 returns the bits as a 512 bit vector.
func (a *SyncAggregate) Bitvector512() (bitfield.Bitvector512, bool) {
	bv, ok := a.SyncCommitteeBits.(bitfield.Bitvector512)
	return bv, ok
}

// Bitvector32 returns the bits as a 32 bit vector.
func (a *SyncAggregate) Bitvector32() (bitfield.Bitvector32, bool) {
	bv, ok := a.SyncCommitteeBits.(bitfield.Bitvector32)
	return bv, ok
}

// Len returns the number of committee positions the bitfield covers.
func (a *SyncAggregate) Len() uint64 {
	if a == nil || a.SyncCommitteeBits == nil {
		return 0
	}
	return a.SyncCommitteeBits.Len()
}

// ParticipantCount returns the number of set bits.
func (a *SyncAggregate) ParticipantCount() uint64 {
	if a == nil || a.SyncCommitteeBits == nil {
		return 0
	}
	return a.SyncCommitteeBits.Count()
}

// Copy returns a deep copy of the aggregate.
func (a *SyncAggregate) Copy() *SyncAggregate {
	if a == nil {
		return nil
	}
	cp := &SyncAggregate{SyncCommitteeSignature: a.SyncCommitteeSignature}
	switch bv := a.SyncCommitteeBits.(type) {
	case bitfield.Bitvector512:
		cp.SyncCommitteeBits = bitfield.Bitvector512(append([]byte{}, bv...))
	case bitfield.Bitvector32:
		cp.SyncCommitteeBits = bitfield.Bitvector32(append([]byte{}, bv...))
	default:
		cp.SyncCommitteeBits = a.SyncCommitteeBits
	}
	return cp
}
