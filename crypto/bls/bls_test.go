package bls

import (
	"bytes"
	"testing"

	"github.com/prysmaticlabs/synclight/crypto/bls/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededKey(t *testing.T, i byte) SecretKey {
	t.Helper()
	sk, err := KeyFromSeed(bytes.Repeat([]byte{i + 1}, 32))
	require.NoError(t, err)
	return sk
}

func TestFastAggregateVerify(t *testing.T) {
	msg := [32]byte{'h', 'e', 'l', 'l', 'o'}
	pubs := make([]PublicKey, 0, 10)
	sigs := make([]Signature, 0, 10)
	for i := byte(0); i < 10; i++ {
		sk := seededKey(t, i)
		pubs = append(pubs, sk.PublicKey())
		sigs = append(sigs, sk.Sign(msg[:]))
	}
	agg := AggregateSignatures(sigs)
	assert.True(t, agg.FastAggregateVerify(pubs, msg))
	assert.False(t, agg.FastAggregateVerify(pubs[:9], msg))
	assert.False(t, agg.FastAggregateVerify(pubs, [32]byte{'b', 'y', 'e'}))
	assert.False(t, agg.FastAggregateVerify(nil, msg))

	decoded, err := SignatureFromBytes(agg.Marshal())
	require.NoError(t, err)
	assert.True(t, decoded.FastAggregateVerify(pubs, msg))
}

func TestPublicKeyFromBytes(t *testing.T) {
	sk := seededKey(t, 3)
	raw := sk.PublicKey().Marshal()
	pk, err := PublicKeyFromBytes(raw)
	require.NoError(t, err)
	assert.True(t, pk.Equals(sk.PublicKey()))

	// Served from the cache the second time.
	again, err := PublicKeyFromBytes(raw)
	require.NoError(t, err)
	assert.True(t, again.Equals(pk))

	_, err = PublicKeyFromBytes(raw[:47])
	require.ErrorContains(t, err, "public key must be 48 bytes")

	// Compressed G1 point at infinity.
	infinite := [48]byte{0xC0}
	_, err = PublicKeyFromBytes(infinite[:])
	require.ErrorIs(t, err, common.ErrInfinitePubKey)

	_, err = PublicKeyFromBytes(bytes.Repeat([]byte{0xff}, 48))
	require.Error(t, err)
}

func TestSignatureFromBytes_Invalid(t *testing.T) {
	_, err := SignatureFromBytes(make([]byte, 95))
	require.ErrorContains(t, err, "signature must be 96 bytes")
	_, err = SignatureFromBytes(bytes.Repeat([]byte{0xff}, 96))
	require.Error(t, err)
}

func TestSecretKey_RoundTrip(t *testing.T) {
	sk, err := RandKey()
	require.NoError(t, err)
	restored, err := SecretKeyFromBytes(sk.Marshal())
	require.NoError(t, err)
	assert.True(t, restored.PublicKey().Equals(sk.PublicKey()))
	msg := []byte("light client")
	assert.True(t, sk.Sign(msg).Verify(restored.PublicKey(), msg))

	_, err = KeyFromSeed(make([]byte, 8))
	require.Error(t, err)
}

func TestAggregatePublicKeys(t *testing.T) {
	a, b := seededKey(t, 1), seededKey(t, 2)
	agg, err := AggregatePublicKeys([][]byte{a.PublicKey().Marshal(), b.PublicKey().Marshal()})
	require.NoError(t, err)
	manual := a.PublicKey().Copy().Aggregate(b.PublicKey())
	assert.True(t, agg.Equals(manual))

	_, err = AggregatePublicKeys(nil)
	require.Error(t, err)
}
