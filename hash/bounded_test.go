// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package hash_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chvote/crypto-primitives/hash"
)

func TestBoundedHashIsUnderBound(t *testing.T) {
	v := hash.List(hash.Text("challenge"), hash.Int(big.NewInt(9)))
	for _, l := range []int{1, 4, 8, 17, 64, 255} {
		n, err := hash.BoundedHash(l, v)
		require.NoError(t, err)
		bound := new(big.Int).Lsh(big.NewInt(1), uint(l))
		assert.Equal(t, -1, n.Cmp(bound), "bound bit length %d", l)
		assert.True(t, n.Sign() >= 0)
	}
}

func TestBoundedHashDeterministic(t *testing.T) {
	v := hash.List(hash.Text("a"), hash.Text("b"))
	a, err := hash.BoundedHash(37, v)
	require.NoError(t, err)
	b, err := hash.BoundedHash(37, v)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

// TestBoundedHashExtendsPastDigestViaShake pins that requesting more bits
// than the underlying SHA-256 digest provides still produces a value
// bounded by 2^l, using the SHAKE256 extension path.
func TestBoundedHashExtendsPastDigestViaShake(t *testing.T) {
	v := hash.Text("wide-challenge")
	l := hash.DigestBitLen + 64
	n, err := hash.BoundedHash(l, v)
	require.NoError(t, err)
	bound := new(big.Int).Lsh(big.NewInt(1), uint(l))
	assert.Equal(t, -1, n.Cmp(bound))
}

func TestBoundedHashRejectsNonPositiveBound(t *testing.T) {
	v := hash.Text("x")
	_, err := hash.BoundedHash(0, v)
	assert.Error(t, err)
	_, err = hash.BoundedHash(-3, v)
	assert.Error(t, err)
}

func TestBoundedHashRejectsNoValues(t *testing.T) {
	_, err := hash.BoundedHash(8)
	assert.Error(t, err)
}

func TestBoundedHashMultipleValuesMatchesList(t *testing.T) {
	x := hash.Int(big.NewInt(3))
	y := hash.Int(big.NewInt(5))
	viaMany, err := hash.BoundedHash(16, x, y)
	require.NoError(t, err)
	viaList, err := hash.BoundedHash(16, hash.List(x, y))
	require.NoError(t, err)
	assert.Equal(t, viaMany, viaList)
}

func TestBoundedHashBitLenReporting(t *testing.T) {
	assert.Equal(t, hash.DigestBitLen, hash.BoundedHashBitLen(hash.DigestBitLen-1))
	assert.Equal(t, hash.DigestBitLen, hash.BoundedHashBitLen(hash.DigestBitLen))
	assert.True(t, hash.BoundedHashBitLen(hash.DigestBitLen+1) >= hash.DigestBitLen+1)
}
