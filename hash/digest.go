// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package hash

import (
	"crypto/sha256"

	"github.com/chvote/crypto-primitives/internal/common"
)

// DigestSize is the fixed output length, in bytes, of the underlying
// cryptographic hash primitive H (SHA-256).
const DigestSize = sha256.Size

// DigestBitLen is DigestSize in bits.
const DigestBitLen = DigestSize * 8

func digest(b []byte) []byte {
	sum := sha256.Sum256(b)
	out := make([]byte, len(sum))
	copy(out, sum[:])
	return out
}

// checkBitLenUnderQ enforces the bound the ZKP engine relies on:
// BoundedHash must be asked for strictly fewer bits than |q|, so that the
// resulting challenge, reduced mod q, carries negligible bias.
func checkBitLenUnderQ(l, qBitLen int) error {
	if l >= qBitLen {
		return common.Wrap(common.ErrHashBitLengthTooLarge, "requested bound of %d bits is not strictly less than |q|=%d bits", l, qBitLen)
	}
	return nil
}
