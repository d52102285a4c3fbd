// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

// Package group implements the safe-prime quadratic-residue group G_q, its
// exponent group Z_q, their elements, and the GroupVector/GroupMatrix
// containers used throughout the ElGamal and ZKP packages.
package group

import (
	"math/big"

	"github.com/chvote/crypto-primitives/internal/bigint"
	"github.com/chvote/crypto-primitives/internal/common"
)

var (
	bigZero = big.NewInt(0)
	bigOne  = big.NewInt(1)
	bigTwo  = big.NewInt(2)
)

// GqGroup is the safe-prime quadratic-residue group defined by (p, q, g)
// with p = 2q + 1. Two GqGroups are equal iff (p, q, g) coincide.
type GqGroup struct {
	p, q, g *big.Int
}

// NewGqGroup validates and constructs a GqGroup. It fails with
// ErrInvalidGroup if p, q are not prime to the configured certainty level,
// if p != 2q+1, or if g is not a member of the group 1 < g < p.
func NewGqGroup(p, q, g *big.Int) (*GqGroup, error) {
	if p == nil || q == nil || g == nil {
		return nil, common.Wrap(common.ErrInvalidArgument, "p, q and g are required")
	}
	if !bigint.Backend().IsProbablePrime(p) {
		return nil, common.Wrap(common.ErrInvalidGroup, "p is not prime")
	}
	if !bigint.Backend().IsProbablePrime(q) {
		return nil, common.Wrap(common.ErrInvalidGroup, "q is not prime")
	}
	want := new(big.Int).Add(new(big.Int).Mul(bigTwo, q), bigOne)
	if want.Cmp(p) != 0 {
		return nil, common.Wrap(common.ErrInvalidGroup, "p must equal 2q+1")
	}
	if g.Cmp(bigOne) <= 0 || g.Cmp(p) >= 0 {
		return nil, common.Wrap(common.ErrInvalidGroup, "g must satisfy 1 < g < p")
	}
	grp := &GqGroup{p: new(big.Int).Set(p), q: new(big.Int).Set(q), g: new(big.Int).Set(g)}
	if !grp.IsMember(g) {
		return nil, common.Wrap(common.ErrInvalidGroup, "g is not a member of G_q")
	}
	return grp, nil
}

// P returns the safe prime modulus.
func (gr *GqGroup) P() *big.Int { return new(big.Int).Set(gr.p) }

// Q returns the group order.
func (gr *GqGroup) Q() *big.Int { return new(big.Int).Set(gr.q) }

// GeneratorValue returns the raw value of the configured generator g.
func (gr *GqGroup) GeneratorValue() *big.Int { return new(big.Int).Set(gr.g) }

// Generator returns the group generator as a GqElement.
func (gr *GqGroup) Generator() *GqElement {
	return newTrustedGqElement(gr.g, gr)
}

// Identity returns the group identity element, 1.
func (gr *GqGroup) Identity() *GqElement {
	return newTrustedGqElement(bigOne, gr)
}

// IsMember reports whether v is a member of G_q: 0 < v < p and the Jacobi
// symbol (v|p) = 1. Equivalent to but cheaper than checking v^q ≡ 1 mod p.
func (gr *GqGroup) IsMember(v *big.Int) bool {
	if v == nil || v.Sign() <= 0 || v.Cmp(gr.p) >= 0 {
		return false
	}
	j, err := bigint.Backend().Jacobi(v, gr.p)
	if err != nil {
		return false
	}
	return j == 1
}

// Equal reports whether two GqGroups have identical (p, q, g).
func (gr *GqGroup) Equal(other *GqGroup) bool {
	if gr == nil || other == nil {
		return gr == other
	}
	return gr.p.Cmp(other.p) == 0 && gr.q.Cmp(other.q) == 0 && gr.g.Cmp(other.g) == 0
}

// ZqGroup is the exponent group Z_q, integers modulo q.
type ZqGroup struct {
	q *big.Int
}

// NewZqGroup constructs a ZqGroup. Requires q >= 2.
func NewZqGroup(q *big.Int) (*ZqGroup, error) {
	if q == nil || q.Cmp(bigTwo) < 0 {
		return nil, common.Wrap(common.ErrInvalidGroup, "q must be >= 2")
	}
	return &ZqGroup{q: new(big.Int).Set(q)}, nil
}

// Q returns the group modulus.
func (zg *ZqGroup) Q() *big.Int { return new(big.Int).Set(zg.q) }

// IsMember reports whether v satisfies 0 <= v < q.
func (zg *ZqGroup) IsMember(v *big.Int) bool {
	return v != nil && v.Sign() >= 0 && v.Cmp(zg.q) < 0
}

// Identity returns the group identity element, 0.
func (zg *ZqGroup) Identity() *ZqElement {
	return newTrustedZqElement(bigZero, zg)
}

// Equal reports whether two ZqGroups share the same q.
func (zg *ZqGroup) Equal(other *ZqGroup) bool {
	if zg == nil || other == nil {
		return zg == other
	}
	return zg.q.Cmp(other.q) == 0
}

// ZqGroupOf returns the exponent group of gr, i.e. Z_q with gr's q.
func ZqGroupOf(gr *GqGroup) *ZqGroup {
	return &ZqGroup{q: new(big.Int).Set(gr.q)}
}
