// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package decryption_test

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chvote/crypto-primitives/elgamal"
	"github.com/chvote/crypto-primitives/group"
	"github.com/chvote/crypto-primitives/internal/common"
	"github.com/chvote/crypto-primitives/random"
	"github.com/chvote/crypto-primitives/zkp"
	"github.com/chvote/crypto-primitives/zkp/decryption"
)

func demoGroup(t *testing.T) *group.GqGroup {
	t.Helper()
	g, err := group.NewGqGroup(big.NewInt(59), big.NewInt(29), big.NewInt(3))
	require.NoError(t, err)
	return g
}

func gq(t *testing.T, g *group.GqGroup, v int64) *group.GqElement {
	t.Helper()
	e, err := group.NewGqElement(big.NewInt(v), g)
	require.NoError(t, err)
	return e
}

func TestDecryptionProofRoundTrip(t *testing.T) {
	g := demoGroup(t)
	rng := random.NewCryptoSource()

	pk, sk, err := elgamal.GenKeyPair(g, 3, rng)
	require.NoError(t, err)

	m, err := elgamal.NewMessage([]*group.GqElement{gq(t, g, 3), gq(t, g, 4), gq(t, g, 5)})
	require.NoError(t, err)
	r, err := group.NewZqElement(big.NewInt(5), group.ZqGroupOf(g))
	require.NoError(t, err)
	c, err := elgamal.Encrypt(g, m, r, pk)
	require.NoError(t, err)

	decrypted, err := elgamal.Decrypt(c, sk)
	require.NoError(t, err)
	assert.True(t, m.Equal(decrypted))

	aux := zkp.Auxiliary{"election-2026", "round-1"}
	proof, err := decryption.Generate(g, c, pk, sk, decrypted, aux, rng)
	require.NoError(t, err)

	ok, reason, err := decryption.Verify(proof, g, c, pk, decrypted, aux)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, reason)
}

func TestDecryptionProofGenerateRejectsWrongClaimedMessage(t *testing.T) {
	g := demoGroup(t)
	rng := random.NewCryptoSource()
	pk, sk, err := elgamal.GenKeyPair(g, 2, rng)
	require.NoError(t, err)

	m, err := elgamal.NewMessage([]*group.GqElement{gq(t, g, 2), gq(t, g, 4)})
	require.NoError(t, err)
	r, err := group.NewZqElement(big.NewInt(7), group.ZqGroupOf(g))
	require.NoError(t, err)
	c, err := elgamal.Encrypt(g, m, r, pk)
	require.NoError(t, err)

	wrong, err := elgamal.NewMessage([]*group.GqElement{gq(t, g, 4), gq(t, g, 2)})
	require.NoError(t, err)

	_, err = decryption.Generate(g, c, pk, sk, wrong, nil, rng)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrDecryptionMismatch))
}

func TestDecryptionProofRejectsWrongMessageAtVerify(t *testing.T) {
	g := demoGroup(t)
	rng := random.NewCryptoSource()
	pk, sk, err := elgamal.GenKeyPair(g, 2, rng)
	require.NoError(t, err)

	m, err := elgamal.NewMessage([]*group.GqElement{gq(t, g, 2), gq(t, g, 4)})
	require.NoError(t, err)
	r, err := group.NewZqElement(big.NewInt(11), group.ZqGroupOf(g))
	require.NoError(t, err)
	c, err := elgamal.Encrypt(g, m, r, pk)
	require.NoError(t, err)

	decrypted, err := elgamal.Decrypt(c, sk)
	require.NoError(t, err)
	proof, err := decryption.Generate(g, c, pk, sk, decrypted, nil, rng)
	require.NoError(t, err)

	wrong, err := elgamal.NewMessage([]*group.GqElement{gq(t, g, 4), gq(t, g, 2)})
	require.NoError(t, err)
	ok, reason, err := decryption.Verify(proof, g, c, pk, wrong, nil)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NotEmpty(t, reason)
}

func TestDecryptionProofRejectsMismatchedAuxiliary(t *testing.T) {
	g := demoGroup(t)
	rng := random.NewCryptoSource()
	pk, sk, err := elgamal.GenKeyPair(g, 2, rng)
	require.NoError(t, err)

	m, err := elgamal.NewMessage([]*group.GqElement{gq(t, g, 2), gq(t, g, 4)})
	require.NoError(t, err)
	r, err := group.NewZqElement(big.NewInt(11), group.ZqGroupOf(g))
	require.NoError(t, err)
	c, err := elgamal.Encrypt(g, m, r, pk)
	require.NoError(t, err)

	decrypted, err := elgamal.Decrypt(c, sk)
	require.NoError(t, err)
	aux := zkp.Auxiliary{"context-a"}
	proof, err := decryption.Generate(g, c, pk, sk, decrypted, aux, rng)
	require.NoError(t, err)

	ok, reason, err := decryption.Verify(proof, g, c, pk, decrypted, zkp.Auxiliary{"context-b"})
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NotEmpty(t, reason)
}

func TestDecryptionProofShortMessageUnderLongKey(t *testing.T) {
	g := demoGroup(t)
	rng := random.NewCryptoSource()
	pk, sk, err := elgamal.GenKeyPair(g, 4, rng)
	require.NoError(t, err)

	m, err := elgamal.NewMessage([]*group.GqElement{gq(t, g, 3)})
	require.NoError(t, err)
	r, err := group.NewZqElement(big.NewInt(3), group.ZqGroupOf(g))
	require.NoError(t, err)
	c, err := elgamal.Encrypt(g, m, r, pk)
	require.NoError(t, err)

	decrypted, err := elgamal.Decrypt(c, sk)
	require.NoError(t, err)
	proof, err := decryption.Generate(g, c, pk, sk, decrypted, nil, rng)
	require.NoError(t, err)
	ok, reason, err := decryption.Verify(proof, g, c, pk, decrypted, nil)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, reason)
}

func TestDecryptionProofRejectsCiphertextLongerThanKey(t *testing.T) {
	g := demoGroup(t)
	rng := random.NewCryptoSource()
	pk, sk, err := elgamal.GenKeyPair(g, 1, rng)
	require.NoError(t, err)

	m, err := elgamal.NewMessage([]*group.GqElement{gq(t, g, 2), gq(t, g, 4)})
	require.NoError(t, err)
	r, err := group.NewZqElement(big.NewInt(5), group.ZqGroupOf(g))
	require.NoError(t, err)
	longPk, longSk, err := elgamal.GenKeyPair(g, 2, rng)
	require.NoError(t, err)
	c, err := elgamal.Encrypt(g, m, r, longPk)
	require.NoError(t, err)
	_ = longSk

	_, err = decryption.Generate(g, c, pk, sk, m, nil, rng)
	assert.Error(t, err)
}

// TestDecryptionProofPinnedVector drives Generate with a fixed commitment
// transcript (p=23, q=11, g=2, sk=(3,7,2), b=(4,7,5)) so the hash
// composition and response formula are checked against literal expected
// values, not just round-trip self-consistency.
func TestDecryptionProofPinnedVector(t *testing.T) {
	g, err := group.NewGqGroup(big.NewInt(23), big.NewInt(11), big.NewInt(2))
	require.NoError(t, err)
	zq := group.ZqGroupOf(g)

	skVals := []int64{3, 7, 2}
	skElems := make([]*group.ZqElement, len(skVals))
	pkElems := make([]*group.GqElement, len(skVals))
	for i, v := range skVals {
		ski, err := group.NewZqElement(big.NewInt(v), zq)
		require.NoError(t, err)
		skElems[i] = ski
		pki, err := g.Generator().Exponentiate(ski)
		require.NoError(t, err)
		pkElems[i] = pki
	}
	sk, err := elgamal.NewPrivateKey(skElems)
	require.NoError(t, err)
	pk, err := elgamal.NewPublicKey(pkElems)
	require.NoError(t, err)

	m, err := elgamal.NewMessage([]*group.GqElement{gq(t, g, 4), gq(t, g, 8), gq(t, g, 3)})
	require.NoError(t, err)
	r, err := group.NewZqElement(big.NewInt(5), zq)
	require.NoError(t, err)
	c, err := elgamal.Encrypt(g, m, r, pk)
	require.NoError(t, err)

	gamma := c.Gamma().Value()
	assert.Equal(t, big.NewInt(9), gamma)
	phi := c.PhiElements()
	wantPhi := []int64{18, 9, 13}
	for i, w := range wantPhi {
		assert.Equal(t, big.NewInt(w), phi[i].Value())
	}

	decrypted, err := elgamal.Decrypt(c, sk)
	require.NoError(t, err)
	assert.True(t, m.Equal(decrypted))

	rng := random.NewFixedSource(big.NewInt(4), big.NewInt(7), big.NewInt(5))
	proof, err := decryption.Generate(g, c, pk, sk, decrypted, zkp.Auxiliary{}, rng)
	require.NoError(t, err)

	wantZ := []int64{6, 8, 10}
	for i, w := range wantZ {
		zi, err := proof.Z.Get(i)
		require.NoError(t, err)
		assert.Equalf(t, big.NewInt(w), zi.Value(), "z[%d]", i)
	}

	ok, reason, err := decryption.Verify(proof, g, c, pk, decrypted, zkp.Auxiliary{})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, reason)
}
