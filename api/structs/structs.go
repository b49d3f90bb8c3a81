// Package structs holds the JSON forms of the light client objects served by
// the beacon node API, and their conversion to and from consensus types.
package structs

type BeaconBlockHeader struct {
	Slot          string `json:"slot"`
	ProposerIndex string `json:"proposer_index"`
	ParentRoot    string `json:"parent_root"`
	StateRoot     string `json:"state_root"`
	BodyRoot      string `json:"body_root"`
}

// ExecutionPayloadHeader covers the Capella and Deneb payload headers. The
// blob gas fields are only present from Deneb on.
type ExecutionPayloadHeader struct {
	ParentHash       string `json:"parent_hash"`
	FeeRecipient     string `json:"fee_recipient"`
	StateRoot        string `json:"state_root"`
	ReceiptsRoot     string `json:"receipts_root"`
	LogsBloom        string `json:"logs_bloom"`
	PrevRandao       string `json:"prev_randao"`
	BlockNumber      string `json:"block_number"`
	GasLimit         string `json:"gas_limit"`
	GasUsed          string `json:"gas_used"`
	Timestamp        string `json:"timestamp"`
	ExtraData        string `json:"extra_data"`
	BaseFeePerGas    string `json:"base_fee_per_gas"`
	BlockHash        string `json:"block_hash"`
	TransactionsRoot string `json:"transactions_root"`
	WithdrawalsRoot  string `json:"withdrawals_root"`
	BlobGasUsed      string `json:"blob_gas_used,omitempty"`
	ExcessBlobGas    string `json:"excess_blob_gas,omitempty"`
}

type LightClientHeader struct {
	Beacon          *BeaconBlockHeader      `json:"beacon"`
	Execution       *ExecutionPayloadHeader `json:"execution,omitempty"`
	ExecutionBranch []string                `json:"execution_branch,omitempty"`
}

type SyncCommittee struct {
	Pubkeys         []string `json:"pubkeys"`
	AggregatePubkey string   `json:"aggregate_pubkey"`
}

type SyncAggregate struct {
	SyncCommitteeBits      string `json:"sync_committee_bits"`
	SyncCommitteeSignature string `json:"sync_committee_signature"`
}

type LightClientBootstrap struct {
	Header                     *LightClientHeader `json:"header"`
	CurrentSyncCommittee       *SyncCommittee     `json:"current_sync_committee"`
	CurrentSyncCommitteeBranch []string           `json:"current_sync_committee_branch"`
}

type LightClientUpdate struct {
	AttestedHeader          *LightClientHeader `json:"attested_header"`
	NextSyncCommittee       *SyncCommittee     `json:"next_sync_committee,omitempty"`
	NextSyncCommitteeBranch []string           `json:"next_sync_committee_branch,omitempty"`
	FinalizedHeader         *LightClientHeader `json:"finalized_header,omitempty"`
	FinalityBranch          []string           `json:"finality_branch,omitempty"`
	SyncAggregate           *SyncAggregate     `json:"sync_aggregate"`
	SignatureSlot           string             `json:"signature_slot"`
}

type LightClientFinalityUpdate struct {
	AttestedHeader  *LightClientHeader `json:"attested_header"`
	FinalizedHeader *LightClientHeader `json:"finalized_header"`
	FinalityBranch  []string           `json:"finality_branch"`
	SyncAggregate   *SyncAggregate     `json:"sync_aggregate"`
	SignatureSlot   string             `json:"signature_slot"`
}

type LightClientOptimisticUpdate struct {
	AttestedHeader *LightClientHeader `json:"attested_header"`
	SyncAggregate  *SyncAggregate     `json:"sync_aggregate"`
	SignatureSlot  string             `json:"signature_slot"`
}

type LightClientBootstrapResponse struct {
	Version string                `json:"version"`
	Data    *LightClientBootstrap `json:"data"`
}

type LightClientUpdateWithVersion struct {
	Version string             `json:"version"`
	Data    *LightClientUpdate `json:"data"`
}

type LightClientFinalityUpdateResponse struct {
	Version string                     `json:"version"`
	Data    *LightClientFinalityUpdate `json:"data"`
}

type LightClientOptimisticUpdateResponse struct {
	Version string                       `json:"version"`
	Data    *LightClientOptimisticUpdate `json:"data"`
}
