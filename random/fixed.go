// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package random

import (
	"math/big"

	"github.com/chvote/crypto-primitives/internal/common"
)

// FixedSource is a deterministic Source test double that replays a
// pre-recorded transcript of values, letting tests pin a specific
// witness/randomness sequence and assert on the resulting proof. Values
// are consumed in FIFO order across all three Source methods.
type FixedSource struct {
	values []*big.Int
	pos    int
}

// NewFixedSource builds a FixedSource that replays values in order.
func NewFixedSource(values ...*big.Int) *FixedSource {
	return &FixedSource{values: values}
}

func (f *FixedSource) next() (*big.Int, error) {
	if f.pos >= len(f.values) {
		return nil, common.Wrap(common.ErrInvalidArgument, "fixed random source exhausted")
	}
	v := f.values[f.pos]
	f.pos++
	return v, nil
}

// Below ignores bound and returns the next recorded value.
func (f *FixedSource) Below(bound *big.Int) (*big.Int, error) {
	return f.next()
}

// Between ignores lo/hi and returns the next recorded value.
func (f *FixedSource) Between(lo, hi *big.Int) (*big.Int, error) {
	return f.next()
}

// Vector returns the next n recorded values.
func (f *FixedSource) Vector(bound *big.Int, n int) ([]*big.Int, error) {
	out := make([]*big.Int, n)
	for i := 0; i < n; i++ {
		v, err := f.next()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
