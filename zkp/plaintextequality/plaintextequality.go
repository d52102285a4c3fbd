// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

// Package plaintextequality implements the PlaintextEqualityProof Sigma
// protocol: a non-interactive proof that two single-phi ElGamal
// ciphertexts, encrypted under independent public keys, carry the same
// plaintext, without revealing either encryption randomness.
package plaintextequality

import (
	"math/big"

	"github.com/chvote/crypto-primitives/elgamal"
	"github.com/chvote/crypto-primitives/group"
	"github.com/chvote/crypto-primitives/hash"
	"github.com/chvote/crypto-primitives/internal/common"
	"github.com/chvote/crypto-primitives/random"
	"github.com/chvote/crypto-primitives/zkp"
)

// Proof is a PlaintextEqualityProof: challenge e and response pair z =
// (z_r, z_r').
type Proof struct {
	E *big.Int
	Z *group.GroupVector[*group.ZqElement]
}

// phiEq computes φ_eq((x, x'), h, h') = (g^x, g^{x'}, h^x · (h'^{x'})^{-1}).
func phiEq(x0, x1 *group.ZqElement, g, h, hPrime *group.GqElement) (c0, c1, c2 *group.GqElement, err error) {
	c0, err = g.Exponentiate(x0)
	if err != nil {
		return nil, nil, nil, err
	}
	c1, err = g.Exponentiate(x1)
	if err != nil {
		return nil, nil, nil, err
	}
	hx0, err := h.Exponentiate(x0)
	if err != nil {
		return nil, nil, nil, err
	}
	hPx1, err := hPrime.Exponentiate(x1)
	if err != nil {
		return nil, nil, nil, err
	}
	hPx1Inv, err := hPx1.Invert()
	if err != nil {
		return nil, nil, nil, err
	}
	c2, err = hx0.Multiply(hPx1Inv)
	if err != nil {
		return nil, nil, nil, err
	}
	return c0, c1, c2, nil
}

func singlePhi(c *elgamal.Ciphertext) (*group.GqElement, *group.GqElement, error) {
	if c.Len() != 1 {
		return nil, nil, common.Wrap(common.ErrSizeMismatch, "plaintext-equality proof requires single-phi ciphertexts, got length %d", c.Len())
	}
	phi0, err := c.Phi(0)
	if err != nil {
		return nil, nil, err
	}
	return c.Gamma(), phi0, nil
}

// buildY constructs y = (c_0, c'_0, c_1 · c'_1^{-1}).
func buildY(c0, c1, cPrime0, cPrime1 *group.GqElement) (*group.GqElement, *group.GqElement, *group.GqElement, error) {
	c1Inv, err := cPrime1.Invert()
	if err != nil {
		return nil, nil, nil, err
	}
	y2, err := c1.Multiply(c1Inv)
	if err != nil {
		return nil, nil, nil, err
	}
	return c0, cPrime0, y2, nil
}

func fHashable(g *group.GqGroup, h, hPrime *group.GqElement) hash.Hashable {
	return hash.List(
		hash.Int(g.P()), hash.Int(g.Q()), zkp.GqHashable(g.Generator()), zkp.GqHashable(h), zkp.GqHashable(hPrime),
	)
}

func hAux(c1, cPrime1 *group.GqElement, aux zkp.Auxiliary) hash.Hashable {
	items := []hash.Hashable{
		hash.Text("PlaintextEqualityProof"),
		zkp.GqHashable(c1),
		zkp.GqHashable(cPrime1),
	}
	if !aux.Empty() {
		items = append(items, aux.Hashable())
	}
	return hash.List(items...)
}

// Generate produces a PlaintextEqualityProof that C and CPrime, encrypted
// under h and hPrime respectively with randomness r and rPrime, carry the
// same plaintext.
func Generate(g *group.GqGroup, c, cPrime *elgamal.Ciphertext, h, hPrime *group.GqElement, r, rPrime *group.ZqElement, aux zkp.Auxiliary, rng random.Source) (*Proof, error) {
	if g == nil || c == nil || cPrime == nil || h == nil || hPrime == nil || r == nil || rPrime == nil || rng == nil {
		return nil, common.Wrap(common.ErrInvalidArgument, "all arguments are required")
	}
	c0, c1, err := singlePhi(c)
	if err != nil {
		return nil, err
	}
	cPrime0, cPrime1, err := singlePhi(cPrime)
	if err != nil {
		return nil, err
	}

	zq := group.ZqGroupOf(g)
	bVals, err := rng.Vector(zq.Q(), 2)
	if err != nil {
		return nil, common.Wrap(err, "sampling commitment randomness")
	}
	b0, err := group.NewZqElement(bVals[0], zq)
	if err != nil {
		return nil, err
	}
	b1, err := group.NewZqElement(bVals[1], zq)
	if err != nil {
		return nil, err
	}

	commit0, commit1, commit2, err := phiEq(b0, b1, g.Generator(), h, hPrime)
	if err != nil {
		return nil, err
	}
	y0, y1, y2, err := buildY(c0, c1, cPrime0, cPrime1)
	if err != nil {
		return nil, err
	}

	challenge, err := zkp.Challenge(zq.Q(),
		fHashable(g, h, hPrime),
		zkp.GqVectorHashable([]*group.GqElement{y0, y1, y2}),
		zkp.GqVectorHashable([]*group.GqElement{commit0, commit1, commit2}),
		hAux(c1, cPrime1, aux),
	)
	if err != nil {
		return nil, err
	}
	eZq, err := group.NewZqElement(challenge, zq)
	if err != nil {
		return nil, err
	}

	erTerm, err := eZq.Multiply(r)
	if err != nil {
		return nil, err
	}
	z0, err := b0.Add(erTerm)
	if err != nil {
		return nil, err
	}
	erPrimeTerm, err := eZq.Multiply(rPrime)
	if err != nil {
		return nil, err
	}
	z1, err := b1.Add(erPrimeTerm)
	if err != nil {
		return nil, err
	}

	zVec, err := group.NewGroupVector([]*group.ZqElement{z0, z1})
	if err != nil {
		return nil, err
	}
	return &Proof{E: challenge, Z: zVec}, nil
}

// Verify checks π against C, CPrime, h and hPrime. It returns a verdict
// and, when the verdict is false because the recomputed challenge
// disagrees, a human-readable reason; a non-nil error instead signals a
// structural problem with the inputs.
func Verify(p *Proof, g *group.GqGroup, c, cPrime *elgamal.Ciphertext, h, hPrime *group.GqElement, aux zkp.Auxiliary) (bool, string, error) {
	if p == nil || g == nil || c == nil || cPrime == nil || h == nil || hPrime == nil {
		return false, "", common.Wrap(common.ErrInvalidArgument, "all arguments are required")
	}
	if p.Z.Len() != 2 {
		return false, "", common.Wrap(common.ErrSizeMismatch, "response vector must have length 2")
	}
	c0, c1, err := singlePhi(c)
	if err != nil {
		return false, "", err
	}
	cPrime0, cPrime1, err := singlePhi(cPrime)
	if err != nil {
		return false, "", err
	}

	zq := group.ZqGroupOf(g)
	if p.E.Sign() < 0 || p.E.Cmp(zq.Q()) >= 0 {
		return false, "", common.Wrap(common.ErrDomainError, "challenge out of range")
	}
	z0, err := p.Z.Get(0)
	if err != nil {
		return false, "", err
	}
	z1, err := p.Z.Get(1)
	if err != nil {
		return false, "", err
	}

	x0, x1, x2, err := phiEq(z0, z1, g.Generator(), h, hPrime)
	if err != nil {
		return false, "", err
	}
	y0, y1, y2, err := buildY(c0, c1, cPrime0, cPrime1)
	if err != nil {
		return false, "", err
	}

	eZq, err := group.NewZqElement(p.E, zq)
	if err != nil {
		return false, "", err
	}
	negE := eZq.Negate()

	cPrime0Recomputed, err := componentRecompute(x0, y0, negE)
	if err != nil {
		return false, "", err
	}
	cPrime1Recomputed, err := componentRecompute(x1, y1, negE)
	if err != nil {
		return false, "", err
	}
	cPrime2Recomputed, err := componentRecompute(x2, y2, negE)
	if err != nil {
		return false, "", err
	}

	recomputed, err := zkp.Challenge(zq.Q(),
		fHashable(g, h, hPrime),
		zkp.GqVectorHashable([]*group.GqElement{y0, y1, y2}),
		zkp.GqVectorHashable([]*group.GqElement{cPrime0Recomputed, cPrime1Recomputed, cPrime2Recomputed}),
		hAux(c1, cPrime1, aux),
	)
	if err != nil {
		return false, "", err
	}
	if recomputed.Cmp(p.E) != 0 {
		return false, "recomputed challenge does not match proof challenge e", nil
	}
	return true, "", nil
}

func componentRecompute(x, y *group.GqElement, negE *group.ZqElement) (*group.GqElement, error) {
	yNegE, err := y.Exponentiate(negE)
	if err != nil {
		return nil, err
	}
	return x.Multiply(yNegE)
}
