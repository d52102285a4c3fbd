// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

// Package decryption implements the DecryptionProof Sigma protocol: a
// non-interactive proof that a claimed plaintext is the correct ElGamal
// decryption of a ciphertext under a given key pair, without revealing
// the secret key.
package decryption

import (
	"math/big"

	"github.com/chvote/crypto-primitives/elgamal"
	"github.com/chvote/crypto-primitives/group"
	"github.com/chvote/crypto-primitives/hash"
	"github.com/chvote/crypto-primitives/internal/common"
	"github.com/chvote/crypto-primitives/random"
	"github.com/chvote/crypto-primitives/zkp"
)

// Proof is a DecryptionProof: challenge e and response vector z of length
// l, the compressed key length of the statement it was built against.
type Proof struct {
	E *big.Int
	Z *group.GroupVector[*group.ZqElement]
}

// Len returns the response vector's length l.
func (p *Proof) Len() int { return p.Z.Len() }

// phiDec computes φ_dec(x, γ) = (g^{x_0},...,g^{x_{l-1}}, γ^{x_0},...,γ^{x_{l-1}}).
func phiDec(x []*group.ZqElement, g, gamma *group.GqElement) ([]*group.GqElement, error) {
	l := len(x)
	out := make([]*group.GqElement, 2*l)
	for i, xi := range x {
		v, err := g.Exponentiate(xi)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	for i, xi := range x {
		v, err := gamma.Exponentiate(xi)
		if err != nil {
			return nil, err
		}
		out[l+i] = v
	}
	return out, nil
}

// buildY constructs y = (pk'_0,...,pk'_{l-1}, φ_0·m_0^{-1},...,φ_{l-1}·m_{l-1}^{-1}).
func buildY(pkc *elgamal.PublicKey, c *elgamal.Ciphertext, m *elgamal.Message) ([]*group.GqElement, error) {
	l := pkc.Len()
	out := make([]*group.GqElement, 2*l)
	for i := 0; i < l; i++ {
		pki, err := pkc.Get(i)
		if err != nil {
			return nil, err
		}
		out[i] = pki
	}
	for i := 0; i < l; i++ {
		phii, err := c.Phi(i)
		if err != nil {
			return nil, err
		}
		mi, err := m.Get(i)
		if err != nil {
			return nil, err
		}
		miInv, err := mi.Invert()
		if err != nil {
			return nil, err
		}
		yi, err := phii.Multiply(miInv)
		if err != nil {
			return nil, err
		}
		out[l+i] = yi
	}
	return out, nil
}

// f builds the fixed group-parameters prefix [Int(p), Int(q), g, γ].
func fHashable(g *group.GqGroup, gamma *group.GqElement) hash.Hashable {
	return hash.List(
		hash.Int(g.P()), hash.Int(g.Q()), zkp.GqHashable(g.Generator()), zkp.GqHashable(gamma),
	)
}

// hAux builds [Text("DecryptionProof"), φ, m] (+ List(i_aux) if non-empty).
func hAux(phi []*group.GqElement, m *elgamal.Message, aux zkp.Auxiliary) hash.Hashable {
	items := []hash.Hashable{
		hash.Text("DecryptionProof"),
		zkp.GqVectorHashable(phi),
		zkp.GqVectorHashable(m.Elements()),
	}
	if !aux.Empty() {
		items = append(items, aux.Hashable())
	}
	return hash.List(items...)
}

// Generate produces a DecryptionProof that m = decrypt(C, sk). m is
// caller-supplied and checked against the actual decryption of C under sk;
// a mismatch is rejected with ErrDecryptionMismatch rather than silently
// proving whatever C actually decrypts to.
func Generate(g *group.GqGroup, c *elgamal.Ciphertext, pk *elgamal.PublicKey, sk *elgamal.PrivateKey, m *elgamal.Message, aux zkp.Auxiliary, rng random.Source) (*Proof, error) {
	if g == nil || c == nil || pk == nil || sk == nil || m == nil || rng == nil {
		return nil, common.Wrap(common.ErrInvalidArgument, "all arguments are required")
	}
	if c.Len() > sk.Len() {
		return nil, common.Wrap(common.ErrSizeMismatch, "ciphertext length %d exceeds private key length %d", c.Len(), sk.Len())
	}
	l := c.Len()
	if m.Len() != l {
		return nil, common.Wrap(common.ErrSizeMismatch, "claimed message length %d must equal ciphertext length %d", m.Len(), l)
	}
	zq := group.ZqGroupOf(g)

	decrypted, err := elgamal.Decrypt(c, sk)
	if err != nil {
		return nil, common.Wrap(err, "decrypting ciphertext to check claimed message")
	}
	if !decrypted.Equal(m) {
		return nil, common.Wrap(common.ErrDecryptionMismatch, "claimed message does not match sk·C decryption")
	}

	bVals, err := rng.Vector(zq.Q(), l)
	if err != nil {
		return nil, common.Wrap(err, "sampling commitment randomness")
	}
	b := make([]*group.ZqElement, l)
	for i, v := range bVals {
		e, err := group.NewZqElement(v, zq)
		if err != nil {
			return nil, err
		}
		b[i] = e
	}

	cCommit, err := phiDec(b, g.Generator(), c.Gamma())
	if err != nil {
		return nil, err
	}

	pkc, err := elgamal.CompressPublicKey(pk, l)
	if err != nil {
		return nil, err
	}
	y, err := buildY(pkc, c, m)
	if err != nil {
		return nil, err
	}

	challenge, err := zkp.Challenge(zq.Q(),
		fHashable(g, c.Gamma()),
		zkp.GqVectorHashable(y),
		zkp.GqVectorHashable(cCommit),
		hAux(c.PhiElements(), m, aux),
	)
	if err != nil {
		return nil, err
	}
	eZq, err := group.NewZqElement(challenge, zq)
	if err != nil {
		return nil, err
	}

	skc, err := elgamal.CompressPrivateKey(sk, l)
	if err != nil {
		return nil, err
	}
	z := make([]*group.ZqElement, l)
	for i := 0; i < l; i++ {
		ski, err := skc.Get(i)
		if err != nil {
			return nil, err
		}
		term, err := eZq.Multiply(ski)
		if err != nil {
			return nil, err
		}
		zi, err := b[i].Add(term)
		if err != nil {
			return nil, err
		}
		z[i] = zi
	}
	zVec, err := group.NewGroupVector(z)
	if err != nil {
		return nil, err
	}

	return &Proof{E: challenge, Z: zVec}, nil
}

// Verify checks π against ciphertext C, public key pk and claimed
// plaintext m. It returns a verdict and, when the verdict is false because
// the recomputed challenge disagrees, a human-readable reason; a non-nil
// error instead signals a structural problem with the inputs.
func Verify(p *Proof, g *group.GqGroup, c *elgamal.Ciphertext, pk *elgamal.PublicKey, m *elgamal.Message, aux zkp.Auxiliary) (bool, string, error) {
	if p == nil || g == nil || c == nil || pk == nil || m == nil {
		return false, "", common.Wrap(common.ErrInvalidArgument, "all arguments are required")
	}
	l := c.Len()
	if p.Len() != l || m.Len() != l {
		return false, "", common.Wrap(common.ErrSizeMismatch, "proof, ciphertext and message must share length %d", l)
	}
	if l > pk.Len() {
		return false, "", common.Wrap(common.ErrSizeMismatch, "ciphertext length %d exceeds public key length %d", l, pk.Len())
	}
	zq := group.ZqGroupOf(g)
	if p.E.Cmp(zq.Q()) >= 0 || p.E.Sign() < 0 {
		return false, "", common.Wrap(common.ErrDomainError, "challenge out of range")
	}

	x, err := phiDec(p.Z.Elements(), g.Generator(), c.Gamma())
	if err != nil {
		return false, "", err
	}

	pkc, err := elgamal.CompressPublicKey(pk, l)
	if err != nil {
		return false, "", err
	}
	y, err := buildY(pkc, c, m)
	if err != nil {
		return false, "", err
	}

	eZq, err := group.NewZqElement(p.E, zq)
	if err != nil {
		return false, "", err
	}
	negE := eZq.Negate()

	cPrime := make([]*group.GqElement, 2*l)
	for i := 0; i < 2*l; i++ {
		yiInvE, err := y[i].Exponentiate(negE)
		if err != nil {
			return false, "", err
		}
		ci, err := x[i].Multiply(yiInvE)
		if err != nil {
			return false, "", err
		}
		cPrime[i] = ci
	}

	recomputed, err := zkp.Challenge(zq.Q(),
		fHashable(g, c.Gamma()),
		zkp.GqVectorHashable(y),
		zkp.GqVectorHashable(cPrime),
		hAux(c.PhiElements(), m, aux),
	)
	if err != nil {
		return false, "", err
	}
	if recomputed.Cmp(p.E) != 0 {
		return false, "recomputed challenge does not match proof challenge e", nil
	}
	return true, "", nil
}
