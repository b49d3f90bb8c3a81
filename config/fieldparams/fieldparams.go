// Package field_params holds byte lengths of consensus objects. Values that vary
// between network presets live in config/params instead, since presets coexist
// at runtime.
package field_params

const (
	RootLength             = 32  // RootLength defines the byte length of a Merkle root.
	BLSSignatureLength     = 96  // BLSSignatureLength defines the byte length of a BLSSignature.
	BLSPubkeyLength        = 48  // BLSPubkeyLength defines the byte length of a BLSPubkey.
	BLSSecretKeyLength     = 32  // BLSSecretKeyLength defines the byte length of a BLS secret key.
	VersionLength          = 4   // VersionLength defines the byte length of a fork version number.
	DomainLength           = 32  // DomainLength defines the byte length of a signature domain.
	FeeRecipientLength     = 20  // FeeRecipientLength defines the byte length of a fee recipient.
	LogsBloomLength        = 256 // LogsBloomLength defines the byte length of a logs bloom.
	MaxExtraDataBytes      = 32  // MaxExtraDataBytes defines the maximum length of execution extra data.
	BeaconBlockHeaderSize  = 112 // BeaconBlockHeaderSize is the SSZ size of a beacon block header.
	SyncCommitteeMaxLength = 512 // SyncCommitteeMaxLength is the largest committee any preset uses.
)
