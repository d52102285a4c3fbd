// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

// Package zkp holds the scaffolding shared by the three Sigma-protocol
// proof packages (decryption, plaintextequality, exponentiation): the
// auxiliary-data type every proof's challenge hash folds in, and the
// conversions from group elements/vectors to the hash package's Hashable
// algebra.
package zkp

import (
	"math/big"

	"github.com/chvote/crypto-primitives/group"
	"github.com/chvote/crypto-primitives/hash"
	"github.com/chvote/crypto-primitives/internal/common"
)

// Auxiliary is the caller-supplied ordered list of context strings folded
// into a proof's challenge hash, e.g. an election identifier and a round
// number. An empty Auxiliary omits itself from the hash input entirely.
type Auxiliary []string

// Hashable renders the auxiliary list as a Hashable List of Texts, or the
// zero Hashable value if empty.
func (a Auxiliary) Hashable() hash.Hashable {
	if len(a) == 0 {
		return hash.Hashable{}
	}
	items := make([]hash.Hashable, len(a))
	for i, s := range a {
		items[i] = hash.Text(s)
	}
	return hash.List(items...)
}

// Empty reports whether the auxiliary list carries no context.
func (a Auxiliary) Empty() bool { return len(a) == 0 }

// GqHashable wraps a single GqElement as a Hashable Int of its value.
func GqHashable(e *group.GqElement) hash.Hashable {
	return hash.Int(e.Value())
}

// GqVectorHashable wraps an ordered slice of GqElements as a Hashable
// List of their values.
func GqVectorHashable(es []*group.GqElement) hash.Hashable {
	items := make([]hash.Hashable, len(es))
	for i, e := range es {
		items[i] = GqHashable(e)
	}
	return hash.List(items...)
}

// ZqVectorHashable wraps an ordered slice of ZqElements as a Hashable
// List of their values.
func ZqVectorHashable(es []*group.ZqElement) hash.Hashable {
	items := make([]hash.Hashable, len(es))
	for i, e := range es {
		items[i] = hash.Int(e.Value())
	}
	return hash.List(items...)
}

// ChallengeBitLen returns the bit length BoundedHash should be asked for
// when deriving a challenge in Z_q: strictly less than |q|, the bound
// every proof in this package shares.
func ChallengeBitLen(q *big.Int) (int, error) {
	l := q.BitLen() - 1
	if l <= 0 {
		return 0, common.Wrap(common.ErrInvalidArgument, "q is too small to derive a sub-bounded challenge")
	}
	return l, nil
}

// Challenge computes BoundedHash(ChallengeBitLen(q), values...) mod q,
// the Fiat-Shamir challenge derivation shared by all three proofs.
func Challenge(q *big.Int, values ...hash.Hashable) (*big.Int, error) {
	l, err := ChallengeBitLen(q)
	if err != nil {
		return nil, err
	}
	n, err := hash.BoundedHash(l, values...)
	if err != nil {
		return nil, err
	}
	return n.Mod(n, q), nil
}
