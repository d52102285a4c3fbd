// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package hash_test

import (
	"crypto/sha256"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chvote/crypto-primitives/hash"
)

// TestRecursiveHashSingletonListIsDoubleHash pins recursive_hash([x]) =
// H(H(x)): a one-element list still goes through the list rule, so its
// digest is the hash of its single child's digest, not the child's
// digest itself.
func TestRecursiveHashSingletonListIsDoubleHash(t *testing.T) {
	x := hash.Text("alpha")
	childDigest, err := hash.RecursiveHash(x)
	require.NoError(t, err)

	listed, err := hash.RecursiveHash(hash.List(x))
	require.NoError(t, err)

	// recursive_hash([x]) must equal H(childDigest), not childDigest itself.
	assert.NotEqual(t, childDigest, listed)
	want := sha256.Sum256(childDigest)
	assert.Equal(t, want[:], listed)

	again, err := hash.RecursiveHash(hash.List(x))
	require.NoError(t, err)
	assert.Equal(t, listed, again)
}

// TestHashManyMatchesExplicitList pins recursive_hash(x, y) =
// recursive_hash([x, y]).
func TestHashManyMatchesExplicitList(t *testing.T) {
	x := hash.Bytes([]byte("foo"))
	y := hash.Int(big.NewInt(42))

	viaMany, err := hash.HashMany(x, y)
	require.NoError(t, err)

	viaList, err := hash.RecursiveHash(hash.List(x, y))
	require.NoError(t, err)

	assert.Equal(t, viaList, viaMany)
}

// TestRecursiveHashFlatVsNestedDiffer pins recursive_hash([a,b]) !=
// recursive_hash([[a],b]) — nesting changes the tree shape, so it must
// change the digest.
func TestRecursiveHashFlatVsNestedDiffer(t *testing.T) {
	a := hash.Text("a")
	b := hash.Text("b")

	flat, err := hash.RecursiveHash(hash.List(a, b))
	require.NoError(t, err)

	nested, err := hash.RecursiveHash(hash.List(hash.List(a), b))
	require.NoError(t, err)

	assert.NotEqual(t, flat, nested)
}

func TestRecursiveHashRejectsEmptyList(t *testing.T) {
	_, err := hash.RecursiveHash(hash.List())
	assert.Error(t, err)
}

func TestRecursiveHashRejectsEmptyNestedList(t *testing.T) {
	_, err := hash.RecursiveHash(hash.List(hash.Text("a"), hash.List()))
	assert.Error(t, err)
}

func TestRecursiveHashRejectsNegativeInt(t *testing.T) {
	_, err := hash.RecursiveHash(hash.Int(big.NewInt(-1)))
	assert.Error(t, err)
}

func TestOfRequiresAtLeastTwoValues(t *testing.T) {
	_, err := hash.Of(hash.Text("solo"))
	assert.Error(t, err)
}

func TestRecursiveHashDeterministic(t *testing.T) {
	v := hash.List(hash.Text("x"), hash.Int(big.NewInt(7)), hash.Bytes([]byte{1, 2, 3}))
	d1, err := hash.RecursiveHash(v)
	require.NoError(t, err)
	d2, err := hash.RecursiveHash(v)
	require.NoError(t, err)
	assert.Equal(t, d1, d2)
}

func TestRecursiveHashSensitiveToOrder(t *testing.T) {
	a := hash.Text("a")
	b := hash.Text("b")
	ab, err := hash.RecursiveHash(hash.List(a, b))
	require.NoError(t, err)
	ba, err := hash.RecursiveHash(hash.List(b, a))
	require.NoError(t, err)
	assert.NotEqual(t, ab, ba)
}
