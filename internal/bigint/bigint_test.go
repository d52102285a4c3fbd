// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package bigint_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chvote/crypto-primitives/internal/bigint"
)

func TestIntToBytesEdgeCases(t *testing.T) {
	// Scenario F
	b, err := bigint.IntToBytes(big.NewInt(0))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00}, b)

	b, err = bigint.IntToBytes(big.NewInt(256))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x00}, b)

	maxInt32Plus1 := new(big.Int).Add(big.NewInt(int64(1)<<31-1), big.NewInt(1))
	b, err = bigint.IntToBytes(maxInt32Plus1)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x80, 0x00, 0x00, 0x00}, b)

	_, err = bigint.IntToBytes(big.NewInt(-1))
	assert.Error(t, err)
}

func TestBytesToIntRoundTrip(t *testing.T) {
	for _, n := range []int64{0, 1, 255, 256, 65535, 1 << 30} {
		encoded, err := bigint.IntToBytes(big.NewInt(n))
		require.NoError(t, err)
		decoded, err := bigint.BytesToInt(encoded)
		require.NoError(t, err)
		assert.Equal(t, n, decoded.Int64())
	}
	_, err := bigint.BytesToInt(nil)
	assert.Error(t, err)
}

func TestDistinctIntegersProduceDistinctEncodings(t *testing.T) {
	seen := map[string]int64{}
	for n := int64(0); n < 1000; n++ {
		enc, err := bigint.IntToBytes(big.NewInt(n))
		require.NoError(t, err)
		if prev, ok := seen[string(enc)]; ok {
			t.Fatalf("collision: %d and %d both encode to %x", prev, n, enc)
		}
		seen[string(enc)] = n
	}
}

func TestModExpNegativeExponent(t *testing.T) {
	// p = 23, b = 2, e = -1 -> modular inverse of 2 mod 23 is 12 (2*12=24=1 mod 23)
	got, err := bigint.ModExp(big.NewInt(2), big.NewInt(-1), big.NewInt(23))
	require.NoError(t, err)
	assert.Equal(t, int64(12), got.Int64())
}

func TestModExpEvenModulusRejected(t *testing.T) {
	_, err := bigint.ModExp(big.NewInt(2), big.NewInt(3), big.NewInt(8))
	assert.Error(t, err)
}

func TestJacobiAgreesWithExponentiation(t *testing.T) {
	// Scenario A/B toy group: p = 23, q = 11.
	p := big.NewInt(23)
	q := big.NewInt(11)
	for a := int64(1); a < 23; a++ {
		j, err := bigint.Jacobi(big.NewInt(a), p)
		require.NoError(t, err)
		exp, err := bigint.ModExp(big.NewInt(a), q, p)
		require.NoError(t, err)
		isMember := exp.Cmp(big.NewInt(1)) == 0
		assert.Equal(t, isMember, j == 1, "a=%d", a)
	}
}

func TestCertaintyForSchedule(t *testing.T) {
	assert.Equal(t, 80, bigint.CertaintyFor(1024))
	assert.Equal(t, 112, bigint.CertaintyFor(2048))
	assert.Equal(t, 128, bigint.CertaintyFor(3072))
	assert.Equal(t, 128, bigint.CertaintyFor(4096))
}

func TestIsProbablePrime(t *testing.T) {
	assert.True(t, bigint.IsProbablePrime(big.NewInt(23)))
	assert.False(t, bigint.IsProbablePrime(big.NewInt(22)))
}
