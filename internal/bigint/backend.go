// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package bigint

import (
	"math/big"
	"sync"
)

// Arith is the capability surface a big-integer backend must provide. The
// module is built against math/big directly (see DESIGN.md: no third-party
// big-integer library appears anywhere in the retrieval pack), but group
// element arithmetic (group/element.go, group/group.go) is written against
// this interface so a future optimised backend (e.g. cgo/GMP) can be
// substituted without touching any caller.
type Arith interface {
	ModMul(a, b, m *big.Int) (*big.Int, error)
	ModExp(b, e, m *big.Int) (*big.Int, error)
	ModInv(n, m *big.Int) (*big.Int, error)
	Jacobi(a, n *big.Int) (int, error)
	IsProbablePrime(n *big.Int) bool
}

type portableArith struct{}

func (portableArith) ModMul(a, b, m *big.Int) (*big.Int, error) { return ModMul(a, b, m) }
func (portableArith) ModExp(b, e, m *big.Int) (*big.Int, error) { return ModExp(b, e, m) }
func (portableArith) ModInv(n, m *big.Int) (*big.Int, error)    { return ModInv(n, m) }
func (portableArith) Jacobi(a, n *big.Int) (int, error)         { return Jacobi(a, n) }
func (portableArith) IsProbablePrime(n *big.Int) bool           { return IsProbablePrime(n) }

var (
	backendOnce sync.Once
	backend     Arith
)

// Backend returns the process-wide Arith implementation, selecting it
// lazily and idempotently on first use: the selection itself is the only
// process-wide mutable state this module allows. Every call after the
// first returns the same, already-published value.
func Backend() Arith {
	backendOnce.Do(func() {
		backend = portableArith{}
	})
	return backend
}
