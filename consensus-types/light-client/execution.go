package light_client

import (
	ssz "github.com/ferranbt/fastssz"
	fieldparams "github.com/prysmaticlabs/synclight/config/fieldparams"
)

// ExecutionHeader is the execution payload header embedded in a light client
// header. Implementations are treated as immutable once built.
type ExecutionHeader interface {
	HashTreeRoot() ([32]byte, error)
	HashTreeRootWith(hh *ssz.Hasher) error
	BlockNumber() uint64
	BlockHash() [32]byte
	StateRoot() [32]byte
	Fork() string
}

// ExecutionPayloadHeaderCapella is the Capella execution payload header.
type ExecutionPayloadHeaderCapella struct {
	ParentHash       [32]byte
	FeeRecipient     [fieldparams.FeeRecipientLength]byte
	StateRootVal     [32]byte
	ReceiptsRoot     [32]byte
	LogsBloom        [fieldparams.LogsBloomLength]byte
	PrevRandao       [32]byte
	BlockNumberVal   uint64
	GasLimit         uint64
	GasUsed          uint64
	Timestamp        uint64
	ExtraData        []byte
	BaseFeePerGas    [32]byte // little endian uint256
	BlockHashVal     [32]byte
	TransactionsRoot [32]byte
	WithdrawalsRoot  [32]byte
}

func (e *ExecutionPayloadHeaderCapella) BlockNumber() uint64 { return e.BlockNumberVal }
func (e *ExecutionPayloadHeaderCapella) BlockHash() [32]byte { return e.BlockHashVal }
func (e *ExecutionPayloadHeaderCapella) StateRoot() [32]byte { return e.StateRootVal }
func (e *ExecutionPayloadHeaderCapella) Fork() string        { return "capella" }

// HashTreeRoot ssz hashes the header.
func (e *ExecutionPayloadHeaderCapella) HashTreeRoot() ([32]byte, error) {
	hh := ssz.NewHasher()
	if err := e.HashTreeRootWith(hh); err != nil {
		return [32]byte{}, err
	}
	return hh.HashRoot()
}

// HashTreeRootWith ssz hashes the header with a hasher.
func (e *ExecutionPayloadHeaderCapella) HashTreeRootWith(hh *ssz.Hasher) error {
	indx := hh.Index()
	if err := e.putFields(hh); err != nil {
		return err
	}
	hh.Merkleize(indx)
	return nil
}

func (e *ExecutionPayloadHeaderCapella) putFields(hh *ssz.Hasher) error {
	hh.PutBytes(e.ParentHash[:])
	hh.PutBytes(e.FeeRecipient[:])
	hh.PutBytes(e.StateRootVal[:])
	hh.PutBytes(e.ReceiptsRoot[:])
	hh.PutBytes(e.LogsBloom[:])
	hh.PutBytes(e.PrevRandao[:])
	hh.PutUint64(e.BlockNumberVal)
	hh.PutUint64(e.GasLimit)
	hh.PutUint64(e.GasUsed)
	hh.PutUint64(e.Timestamp)
	{
		elemIndx := hh.Index()
		byteLen := uint64(len(e.ExtraData))
		if byteLen > fieldparams.MaxExtraDataBytes {
			return ssz.ErrIncorrectListSize
		}
		hh.PutBytes(e.ExtraData)
		hh.MerkleizeWithMixin(elemIndx, byteLen, (fieldparams.MaxExtraDataBytes+31)/32)
	}
	hh.PutBytes(e.BaseFeePerGas[:])
	hh.PutBytes(e.BlockHashVal[:])
	hh.PutBytes(e.TransactionsRoot[:])
	hh.PutBytes(e.WithdrawalsRoot[:])
	return nil
}

// ExecutionPayloadHeaderDeneb is the Deneb execution payload header.
type ExecutionPayloadHeaderDeneb struct {
	ExecutionPayloadHeaderCapella
	BlobGasUsed   uint64
	ExcessBlobGas uint64
}

func (e *ExecutionPayloadHeaderDeneb) Fork() string { return "deneb" }

// HashTreeRoot ssz hashes the header.
func (e *ExecutionPayloadHeaderDeneb) HashTreeRoot() ([32]byte, error) {
	hh := ssz.NewHasher()
	if err := e.HashTreeRootWith(hh); err != nil {
		return [32]byte{}, err
	}
	return hh.HashRoot()
}

// HashTreeRootWith ssz hashes the header with a hasher.
func (e *ExecutionPayloadHeaderDeneb) HashTreeRootWith(hh *ssz.Hasher) error {
	indx := hh.Index()
	if err := e.putFields(hh); err != nil {
		return err
	}
	hh.PutUint64(e.BlobGasUsed)
	hh.PutUint64(e.ExcessBlobGas)
	hh.Merkleize(indx)
	return nil
}
