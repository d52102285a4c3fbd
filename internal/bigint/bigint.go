// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

// Package bigint wraps math/big with the modular-arithmetic, primality and
// byte-encoding contracts the rest of the module relies on: modular
// multiply/exponentiate (including negative exponents) and inverse, the
// Jacobi symbol, Miller-Rabin primality at a certainty schedule keyed to
// operand size, and the canonical minimal big-endian byte encoding.
package bigint

import (
	"math/big"

	"github.com/chvote/crypto-primitives/internal/common"
)

var (
	zero = big.NewInt(0)
	one  = big.NewInt(1)
	two  = big.NewInt(2)
)

// ModMul returns a*b mod m. Requires m > 1.
func ModMul(a, b, m *big.Int) (*big.Int, error) {
	if m == nil || m.Cmp(one) <= 0 {
		return nil, common.Wrap(common.ErrDomainError, "modulus must be > 1")
	}
	r := new(big.Int).Mul(a, b)
	return r.Mod(r, m), nil
}

// ModExp returns b^e mod m. m must be > 1 and odd. If e is negative, b must
// be coprime to m and the result is (b^-1)^|e| mod m.
func ModExp(b, e, m *big.Int) (*big.Int, error) {
	if m == nil || m.Cmp(one) <= 0 {
		return nil, common.Wrap(common.ErrDomainError, "modulus must be > 1")
	}
	if m.Bit(0) == 0 {
		return nil, common.Wrap(common.ErrDomainError, "modulus must be odd")
	}
	if e.Sign() >= 0 {
		return new(big.Int).Exp(b, e, m), nil
	}
	inv, err := ModInv(b, m)
	if err != nil {
		return nil, err
	}
	absE := new(big.Int).Neg(e)
	return new(big.Int).Exp(inv, absE, m), nil
}

// ModInv returns the modular inverse of n mod m. Requires gcd(n, m) = 1 and
// m > 1.
func ModInv(n, m *big.Int) (*big.Int, error) {
	if m == nil || m.Cmp(one) <= 0 {
		return nil, common.Wrap(common.ErrDomainError, "modulus must be > 1")
	}
	inv := new(big.Int).ModInverse(n, m)
	if inv == nil {
		return nil, common.Wrap(common.ErrDomainError, "n has no inverse mod m: gcd(n, m) != 1")
	}
	return inv, nil
}

// Jacobi returns the Jacobi symbol (a|n): -1, 0 or 1. Requires a > 0.
func Jacobi(a, n *big.Int) (int, error) {
	if a == nil || a.Sign() <= 0 {
		return 0, common.Wrap(common.ErrDomainError, "jacobi requires a positive numerator")
	}
	return big.Jacobi(a, n), nil
}

// CertaintyFor returns the Miller-Rabin certainty (number of rounds, in the
// math/big.ProbablyPrime sense of "2^-certainty error probability") for a
// value of the given bit length: >= 3072 bits -> 128, >= 2048 bits -> 112,
// otherwise -> 80.
func CertaintyFor(bitLen int) int {
	switch {
	case bitLen >= 3072:
		return 128
	case bitLen >= 2048:
		return 112
	default:
		return 80
	}
}

// IsProbablePrime runs Miller-Rabin at the certainty level appropriate for
// n's bit length.
func IsProbablePrime(n *big.Int) bool {
	if n == nil {
		return false
	}
	return n.ProbablyPrime(CertaintyFor(n.BitLen()))
}

// IntToBytes produces the canonical minimal big-endian encoding of n: 0 maps
// to a single 0x00 byte, otherwise the shortest big-endian representation
// with no leading 0x00 byte. Negative n is rejected.
func IntToBytes(n *big.Int) ([]byte, error) {
	if n == nil || n.Sign() < 0 {
		return nil, common.Wrap(common.ErrDomainError, "cannot encode a negative integer")
	}
	if n.Sign() == 0 {
		return []byte{0x00}, nil
	}
	return n.Bytes(), nil
}

// BytesToInt is the inverse of IntToBytes. An empty byte string is rejected.
func BytesToInt(b []byte) (*big.Int, error) {
	if len(b) == 0 {
		return nil, common.Wrap(common.ErrDomainError, "cannot decode an empty byte string")
	}
	return new(big.Int).SetBytes(b), nil
}
