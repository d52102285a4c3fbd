// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package hash

import (
	"math/big"

	"golang.org/x/crypto/sha3"

	"github.com/chvote/crypto-primitives/internal/common"
)

// BoundedHash produces a non-negative integer strictly less than 2^l by
// hashing v, interpreting the digest as a big-endian integer and masking
// it down to its lowest l bits. Callers that need a Fiat-Shamir challenge
// in Z_q reduce the result mod q themselves; l must be chosen strictly
// less than |q| so that reduction introduces only negligible bias.
//
// When l does not exceed DigestBitLen, the mask is applied directly to
// the standard recursive digest of v. When l exceeds DigestBitLen (a
// challenge wider than a single SHA-256 output, e.g. for very large
// groups), the root application of H is extended via a SHAKE256 XOF
// instead, so the extra entropy comes from the primitive itself rather
// than from repeating or truncating a 256-bit digest.
func BoundedHash(l int, values ...Hashable) (*big.Int, error) {
	if l <= 0 {
		return nil, common.Wrap(common.ErrInvalidArgument, "bit length must be positive, got %d", l)
	}

	v, err := asSingle(values)
	if err != nil {
		return nil, err
	}

	var raw []byte
	if l <= DigestBitLen {
		raw, err = RecursiveHash(v)
	} else {
		raw, err = hashWithFinal(v, shakeFinal(l))
	}
	if err != nil {
		return nil, err
	}

	n := new(big.Int).SetBytes(raw)
	mask := new(big.Int).Lsh(big.NewInt(1), uint(l))
	mask.Sub(mask, big.NewInt(1))
	n.And(n, mask)
	return n, nil
}

// asSingle collapses a caller's varargs into the single Hashable the
// recursion operates on, applying the m>=2 wrapping rule from Of when
// more than one value is given.
func asSingle(values []Hashable) (Hashable, error) {
	switch len(values) {
	case 0:
		return Hashable{}, common.Wrap(common.ErrInvalidArgument, "at least one value is required")
	case 1:
		return values[0], nil
	default:
		return Of(values...)
	}
}

// shakeFinal builds a finalizer that hashes its input with SHAKE256 and
// squeezes exactly enough bytes to cover l bits.
func shakeFinal(l int) func([]byte) []byte {
	nbytes := (l + 7) / 8
	return func(b []byte) []byte {
		h := sha3.NewShake256()
		_, _ = h.Write(b)
		out := make([]byte, nbytes)
		_, _ = h.Read(out)
		return out
	}
}

// BoundedHashBitLen returns the number of digest bits BoundedHash(l, ...)
// will use internally before masking: DigestBitLen when l fits in a
// single SHA-256 output, or the SHAKE256-extended length otherwise.
func BoundedHashBitLen(l int) int {
	if l <= DigestBitLen {
		return DigestBitLen
	}
	return ((l + 7) / 8) * 8
}
