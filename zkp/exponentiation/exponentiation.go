// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

// Package exponentiation implements the ExponentiationProof Sigma
// protocol: a non-interactive proof that a vector of group elements y
// was obtained by raising a vector of bases g to a single shared secret
// exponent x, without revealing x.
package exponentiation

import (
	"math/big"

	"github.com/chvote/crypto-primitives/group"
	"github.com/chvote/crypto-primitives/hash"
	"github.com/chvote/crypto-primitives/internal/common"
	"github.com/chvote/crypto-primitives/random"
	"github.com/chvote/crypto-primitives/zkp"
)

// Proof is an ExponentiationProof: challenge e and response z.
type Proof struct {
	E *big.Int
	Z *group.ZqElement
}

// phiExp computes φ_exp(x, g) = (g_0^x, ..., g_{n-1}^x).
func phiExp(x *group.ZqElement, bases []*group.GqElement) ([]*group.GqElement, error) {
	out := make([]*group.GqElement, len(bases))
	for i, gi := range bases {
		v, err := gi.Exponentiate(x)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func fHashable(g *group.GqGroup, bases []*group.GqElement) hash.Hashable {
	return hash.List(
		hash.Int(g.P()), hash.Int(g.Q()), zkp.GqHashable(g.Generator()), zkp.GqVectorHashable(bases),
	)
}

func hAux(y []*group.GqElement, aux zkp.Auxiliary) hash.Hashable {
	items := []hash.Hashable{
		hash.Text("ExponentiationProof"),
		zkp.GqVectorHashable(y),
	}
	if !aux.Empty() {
		items = append(items, aux.Hashable())
	}
	return hash.List(items...)
}

func matches(y, x []*group.GqElement) bool {
	if len(y) != len(x) {
		return false
	}
	for i := range y {
		if !y[i].Equal(x[i]) {
			return false
		}
	}
	return true
}

// Generate produces an ExponentiationProof that y = φ_exp(x, bases).
// Fails with ErrExponentiationInconsistent if y does not actually match
// bases raised to x.
func Generate(g *group.GqGroup, bases []*group.GqElement, y []*group.GqElement, x *group.ZqElement, aux zkp.Auxiliary, rng random.Source) (*Proof, error) {
	if g == nil || len(bases) == 0 || x == nil || rng == nil {
		return nil, common.Wrap(common.ErrInvalidArgument, "group, bases, exponent and randomness are required")
	}
	if len(y) != len(bases) {
		return nil, common.Wrap(common.ErrSizeMismatch, "y and bases must share length")
	}

	expected, err := phiExp(x, bases)
	if err != nil {
		return nil, err
	}
	if !matches(y, expected) {
		return nil, common.Wrap(common.ErrExponentiationInconsistent, "y does not equal bases raised to x")
	}

	zq := group.ZqGroupOf(g)
	bVal, err := rng.Below(zq.Q())
	if err != nil {
		return nil, common.Wrap(err, "sampling commitment randomness")
	}
	b, err := group.NewZqElement(bVal, zq)
	if err != nil {
		return nil, err
	}

	commit, err := phiExp(b, bases)
	if err != nil {
		return nil, err
	}

	challenge, err := zkp.Challenge(zq.Q(),
		fHashable(g, bases),
		zkp.GqVectorHashable(y),
		zkp.GqVectorHashable(commit),
		hAux(y, aux),
	)
	if err != nil {
		return nil, err
	}
	eZq, err := group.NewZqElement(challenge, zq)
	if err != nil {
		return nil, err
	}

	term, err := eZq.Multiply(x)
	if err != nil {
		return nil, err
	}
	z, err := b.Add(term)
	if err != nil {
		return nil, err
	}

	return &Proof{E: challenge, Z: z}, nil
}

// Verify checks π against bases and y. It returns a verdict and, when the
// verdict is false because the recomputed challenge disagrees, a
// human-readable reason; a non-nil error instead signals a structural
// problem with the inputs.
func Verify(p *Proof, g *group.GqGroup, bases []*group.GqElement, y []*group.GqElement, aux zkp.Auxiliary) (bool, string, error) {
	if p == nil || g == nil || len(bases) == 0 {
		return false, "", common.Wrap(common.ErrInvalidArgument, "proof, group and bases are required")
	}
	if len(y) != len(bases) {
		return false, "", common.Wrap(common.ErrSizeMismatch, "y and bases must share length")
	}
	zq := group.ZqGroupOf(g)
	if p.E.Sign() < 0 || p.E.Cmp(zq.Q()) >= 0 {
		return false, "", common.Wrap(common.ErrDomainError, "challenge out of range")
	}

	xPrime, err := phiExp(p.Z, bases)
	if err != nil {
		return false, "", err
	}

	eZq, err := group.NewZqElement(p.E, zq)
	if err != nil {
		return false, "", err
	}
	negE := eZq.Negate()

	cPrime := make([]*group.GqElement, len(bases))
	for i := range bases {
		yiNegE, err := y[i].Exponentiate(negE)
		if err != nil {
			return false, "", err
		}
		ci, err := xPrime[i].Multiply(yiNegE)
		if err != nil {
			return false, "", err
		}
		cPrime[i] = ci
	}

	recomputed, err := zkp.Challenge(zq.Q(),
		fHashable(g, bases),
		zkp.GqVectorHashable(y),
		zkp.GqVectorHashable(cPrime),
		hAux(y, aux),
	)
	if err != nil {
		return false, "", err
	}
	if recomputed.Cmp(p.E) != 0 {
		return false, "recomputed challenge does not match proof challenge e", nil
	}
	return true, "", nil
}
