// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

// Package hash implements the recursive structured digest used as the
// Fiat-Shamir challenge source: a closed algebra of hashable values
// (bytes, text, big integers and lists of the same), a Merkle-style
// recursive digest over that algebra, and a bit-bounded variant used where
// a challenge must land in a sub-range of Z_q.
package hash

import (
	"math/big"

	"github.com/chvote/crypto-primitives/internal/bigint"
	"github.com/chvote/crypto-primitives/internal/common"
)

type kind int

const (
	kindBytes kind = iota
	kindText
	kindInt
	kindList
)

// Hashable is the tagged-union value every recursive hash input is built
// from: Bytes(byte-string) | Text(utf-8 string) | Int(non-negative integer)
// | List(finite sequence of Hashable, length >= 1).
type Hashable struct {
	kind  kind
	bytes []byte
	text  string
	intV  *big.Int
	list  []Hashable
}

// Bytes wraps a raw byte string.
func Bytes(b []byte) Hashable {
	cp := make([]byte, len(b))
	copy(cp, b)
	return Hashable{kind: kindBytes, bytes: cp}
}

// Text wraps a UTF-8 string.
func Text(s string) Hashable {
	return Hashable{kind: kindText, text: s}
}

// Int wraps a non-negative integer. Negative integers are rejected when the
// value is actually hashed (RecursiveHash), matching the byte-encoding
// boundary big.Int.Bytes() already enforces (it drops the sign).
func Int(n *big.Int) Hashable {
	return Hashable{kind: kindInt, intV: n}
}

// List wraps a finite, non-empty sequence of Hashable values. Emptiness is
// checked when the value is hashed, not at construction, so a List can be
// built incrementally by callers (e.g. appending optional auxiliary data)
// before being passed to RecursiveHash.
func List(items ...Hashable) Hashable {
	cp := make([]Hashable, len(items))
	copy(cp, items)
	return Hashable{kind: kindList, list: cp}
}

// Of builds the Hashable for recursive_hash(v1, ..., vm), m >= 2:
// recursive_hash(v1,...,vm) = recursive_hash(List([v1,...,vm])).
func Of(values ...Hashable) (Hashable, error) {
	if len(values) < 2 {
		return Hashable{}, common.Wrap(common.ErrInvalidArgument, "recursive_hash requires at least 2 values")
	}
	return List(values...), nil
}

// RecursiveHash computes the recursive digest of v per the leaf and list
// rules. Empty lists at any depth are rejected with ErrEmptyHashList.
// Negative Int leaves are rejected with ErrDomainError.
func RecursiveHash(v Hashable) ([]byte, error) {
	return hashWithFinal(v, digest)
}

// hashWithFinal implements the recursion, but lets the
// outermost application of H be swapped out: every recursive call on a
// List's children always finalizes with the standard fixed-length digest
// (so the tree structure below the root is always SHA-256), while the
// root call's finalizer is supplied by the caller. BoundedHash uses this
// to extend the root digest past DigestBitLen bits via a SHAKE256 XOF
// without changing how the rest of the tree is hashed.
func hashWithFinal(v Hashable, final func([]byte) []byte) ([]byte, error) {
	switch v.kind {
	case kindBytes:
		return final(v.bytes), nil
	case kindText:
		return final([]byte(v.text)), nil
	case kindInt:
		enc, err := bigint.IntToBytes(v.intV)
		if err != nil {
			return nil, err
		}
		return final(enc), nil
	case kindList:
		if len(v.list) == 0 {
			return nil, common.Wrap(common.ErrEmptyHashList, "list must have at least one element")
		}
		var concat []byte
		for i, child := range v.list {
			childDigest, err := RecursiveHash(child)
			if err != nil {
				return nil, common.Wrap(err, "hashing list element %d", i)
			}
			concat = append(concat, childDigest...)
		}
		return final(concat), nil
	default:
		return nil, common.Wrap(common.ErrInvalidArgument, "unknown hashable kind")
	}
}

// HashMany computes recursive_hash(v1, ..., vm) for m >= 2.
func HashMany(values ...Hashable) ([]byte, error) {
	wrapped, err := Of(values...)
	if err != nil {
		return nil, err
	}
	return RecursiveHash(wrapped)
}
