package lightclient

import (
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/synclight/beacon-chain/db/iface"
)

var (
	// ErrInvalidMerkleBranch is returned when a Merkle branch does not prove its leaf.
	ErrInvalidMerkleBranch = errors.New("invalid merkle branch")
	// ErrArith is returned when slot, epoch or period arithmetic overflows.
	ErrArith = errors.New("arithmetic error")
	// ErrZeroParticipants is returned for a sync aggregate without set bits.
	ErrZeroParticipants = errors.New("sync aggregate has no participants")
	// ErrNotEnoughParticipants is returned when participation is below the preset minimum.
	ErrNotEnoughParticipants = errors.New("sync aggregate has too few participants")
	// ErrInvalidUpdate covers ordering, period, pairing and equivocation violations.
	ErrInvalidUpdate = errors.New("invalid light client update")
	// ErrInvalidPublicKeyBytes is returned when a participating committee key does not decode.
	ErrInvalidPublicKeyBytes = errors.New("invalid sync committee public key")
	// ErrSignatureVerificationFailed is returned for a malformed or non-matching aggregate signature.
	ErrSignatureVerificationFailed = errors.New("sync committee signature verification failed")
	// ErrDuplicateSyncCommitteeUpdate is reserved for rejecting repeated committee updates.
	ErrDuplicateSyncCommitteeUpdate = errors.New("duplicate sync committee update")
	// ErrInvalidSpecId is returned when a payload or network identity does not match the configured network.
	ErrInvalidSpecId = errors.New("payload does not match network configuration")
	// ErrStoreNotInitialized is returned when the store has not been bootstrapped.
	ErrStoreNotInitialized = iface.ErrStoreNotInitialized
)
