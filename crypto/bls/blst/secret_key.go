package blst

import (
	"crypto/rand"
	"fmt"

	"github.com/pkg/errors"
	"github.com/prysmaticlabs/synclight/crypto/bls/common"
	fieldparams "github.com/prysmaticlabs/synclight/config/fieldparams"
	blst "github.com/supranational/blst/bindings/go"
)

// bls12SecretKey used in the BLS signature scheme.
type bls12SecretKey struct {
	p *blst.SecretKey
}

// RandKey creates a new private key using a random input.
func RandKey() (common.SecretKey, error) {
	// Generate 32 bytes of randomness
	var ikm [32]byte
	if _, err := rand.Read(ikm[:]); err != nil {
		return nil, err
	}
	return KeyFromSeed(ikm[:])
}

// KeyFromSeed derives a private key from at least 32 bytes of input keying material.
func KeyFromSeed(ikm []byte) (common.SecretKey, error) {
	if len(ikm) < 32 {
		return nil, errors.New("key seed must be at least 32 bytes")
	}
	sk := blst.KeyGen(ikm)
	if sk == nil {
		return nil, common.ErrZeroKey
	}
	return &bls12SecretKey{p: sk}, nil
}

// SecretKeyFromBytes creates a BLS private key from a BigEndian byte slice.
func SecretKeyFromBytes(privKey []byte) (common.SecretKey, error) {
	if len(privKey) != fieldparams.BLSSecretKeyLength {
		return nil, fmt.Errorf("secret key must be %d bytes", fieldparams.BLSSecretKeyLength)
	}
	secKey := new(blst.SecretKey).Deserialize(privKey)
	if secKey == nil {
		return nil, errors.New("could not unmarshal bytes into secret key")
	}
	return &bls12SecretKey{p: secKey}, nil
}

// PublicKey obtains the public key corresponding to the BLS secret key.
func (s *bls12SecretKey) PublicKey() common.PublicKey {
	return &PublicKey{p: new(blstPublicKey).From(s.p)}
}

// Sign a message using a secret key.
//
// In IETF draft BLS specification:
// Sign(SK, message) -> signature: a signing algorithm that generates
//      a deterministic signature given a secret key SK and a message.
func (s *bls12SecretKey) Sign(msg []byte) common.Signature {
	signature := new(blstSignature).Sign(s.p, msg, dst)
	return &Signature{s: signature}
}

// Marshal a secret key into a BigEndian byte slice.
func (s *bls12SecretKey) Marshal() []byte {
	keyBytes := s.p.Serialize()
	if len(keyBytes) < fieldparams.BLSSecretKeyLength {
		emptyBytes := make([]byte, fieldparams.BLSSecretKeyLength-len(keyBytes))
		keyBytes = append(emptyBytes, keyBytes...)
	}
	return keyBytes
}
