package light_client

import (
	ssz "github.com/ferranbt/fastssz"
	fieldparams "github.com/prysmaticlabs/synclight/config/fieldparams"
)

// SyncCommittee is the ordered set of validator keys that sign headers during
// one sync committee period, plus their aggregate key.
type SyncCommittee struct {
	Pubkeys         [][fieldparams.BLSPubkeyLength]byte
	AggregatePubkey [fieldparams.BLSPubkeyLength]byte
}

// Size returns the number of committee members.
func (c *SyncCommittee) Size() uint64 {
	return uint64(len(c.Pubkeys))
}

// Copy returns a deep copy of the committee.
func (c *SyncCommittee) Copy() *SyncCommittee {
	if c == nil {
		return nil
	}
	cp := &SyncCommittee{
		Pubkeys:         make([][fieldparams.BLSPubkeyLength]byte, len(c.Pubkeys)),
		AggregatePubkey: c.AggregatePubkey,
	}
	copy(cp.Pubkeys, c.Pubkeys)
	return cp
}

// Equals reports whether both committees hold the same keys in the same order.
func (c *SyncCommittee) Equals(other *SyncCommittee) bool {
	if c == nil || other == nil {
		return c == other
	}
	if c.AggregatePubkey != other.AggregatePubkey || len(c.Pubkeys) != len(other.Pubkeys) {
		return false
	}
	for i := range c.Pubkeys {
		if c.Pubkeys[i] != other.Pubkeys[i] {
			return false
		}
	}
	return true
}

// HashTreeRoot ssz hashes the committee.
func (c *SyncCommittee) HashTreeRoot() ([32]byte, error) {
	hh := ssz.NewHasher()
	if err := c.HashTreeRootWith(hh); err != nil {
		return [32]byte{}, err
	}
	return hh.HashRoot()
}

// HashTreeRootWith ssz hashes the committee with a hasher. The pubkey vector
// length is whatever the committee holds; callers check it against the preset.
func (c *SyncCommittee) HashTreeRootWith(hh *ssz.Hasher) error {
	if len(c.Pubkeys) == 0 || len(c.Pubkeys) > fieldparams.SyncCommitteeMaxLength {
		return ssz.ErrVectorLength
	}
	indx := hh.Index()
	{
		subIndx := hh.Index()
		for i := range c.Pubkeys {
			hh.PutBytes(c.Pubkeys[i][:])
		}
		hh.Merkleize(subIndx)
	}
	hh.PutBytes(c.AggregatePubkey[:])
	hh.Merkleize(indx)
	return nil
}

// SizeSSZ returns the ssz encoded size in bytes.
func (c *SyncCommittee) SizeSSZ() int {
	return (len(c.Pubkeys) + 1) * fieldparams.BLSPubkeyLength
}

// MarshalSSZ ssz marshals the committee.
func (c *SyncCommittee) MarshalSSZ() ([]byte, error) {
	if len(c.Pubkeys) == 0 || len(c.Pubkeys) > fieldparams.SyncCommitteeMaxLength {
		return nil, ssz.ErrVectorLength
	}
	dst := make([]byte, 0, c.SizeSSZ())
	for i := range c.Pubkeys {
		dst = append(dst, c.Pubkeys[i][:]...)
	}
	dst = append(dst, c.AggregatePubkey[:]...)
	return dst, nil
}

// UnmarshalSSZ ssz unmarshals the committee. The member count is implied by
// the buffer length.
func (c *SyncCommittee) UnmarshalSSZ(buf []byte) error {
	if len(buf) < 2*fieldparams.BLSPubkeyLength || len(buf)%fieldparams.BLSPubkeyLength != 0 {
		return ssz.ErrSize
	}
	n := len(buf)/fieldparams.BLSPubkeyLength - 1
	if n > fieldparams.SyncCommitteeMaxLength {
		return ssz.ErrSize
	}
	c.Pubkeys = make([][fieldparams.BLSPubkeyLength]byte, n)
	for i := 0; i < n; i++ {
		copy(c.Pubkeys[i][:], buf[i*fieldparams.BLSPubkeyLength:(i+1)*fieldparams.BLSPubkeyLength])
	}
	copy(c.AggregatePubkey[:], buf[n*fieldparams.BLSPubkeyLength:])
	return nil
}
