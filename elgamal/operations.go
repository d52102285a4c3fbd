// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package elgamal

import (
	"github.com/chvote/crypto-primitives/group"
	"github.com/chvote/crypto-primitives/internal/common"
)

// Encrypt encrypts message m (length l) under public key pk (length k >=
// l) using exponent r: pk is compressed to length l, γ = g^r,
// φ_i = m_i · pk'_i^r.
func Encrypt(g *group.GqGroup, m *Message, r *group.ZqElement, pk *PublicKey) (*Ciphertext, error) {
	if g == nil || m == nil || r == nil || pk == nil {
		return nil, common.Wrap(common.ErrInvalidArgument, "group, message, exponent and public key are required")
	}
	l := m.Len()
	if l > pk.Len() {
		return nil, common.Wrap(common.ErrSizeMismatch, "message length %d exceeds public key length %d", l, pk.Len())
	}
	pkc, err := CompressPublicKey(pk, l)
	if err != nil {
		return nil, err
	}
	gamma, err := g.Generator().Exponentiate(r)
	if err != nil {
		return nil, err
	}
	phi := make([]*group.GqElement, l)
	for i := 0; i < l; i++ {
		mi, err := m.Get(i)
		if err != nil {
			return nil, err
		}
		pki, err := pkc.Get(i)
		if err != nil {
			return nil, err
		}
		pkir, err := pki.Exponentiate(r)
		if err != nil {
			return nil, err
		}
		phii, err := mi.Multiply(pkir)
		if err != nil {
			return nil, err
		}
		phi[i] = phii
	}
	return NewCiphertext(gamma, phi)
}

// Decrypt decrypts ciphertext C (length l) under private key sk (length
// k >= l): sk is compressed to length l, m_i = φ_i · γ^{-sk'_i}.
func Decrypt(c *Ciphertext, sk *PrivateKey) (*Message, error) {
	if c == nil || sk == nil {
		return nil, common.Wrap(common.ErrInvalidArgument, "ciphertext and private key are required")
	}
	l := c.Len()
	if l > sk.Len() {
		return nil, common.Wrap(common.ErrSizeMismatch, "ciphertext length %d exceeds private key length %d", l, sk.Len())
	}
	skc, err := CompressPrivateKey(sk, l)
	if err != nil {
		return nil, err
	}
	out := make([]*group.GqElement, l)
	for i := 0; i < l; i++ {
		phii, err := c.Phi(i)
		if err != nil {
			return nil, err
		}
		ski, err := skc.Get(i)
		if err != nil {
			return nil, err
		}
		negSki := ski.Negate()
		gammaInvSki, err := c.Gamma().Exponentiate(negSki)
		if err != nil {
			return nil, err
		}
		mi, err := phii.Multiply(gammaInvSki)
		if err != nil {
			return nil, err
		}
		out[i] = mi
	}
	return NewMessage(out)
}

// PartialDecrypt returns C′: γ unchanged, φ′_i = φ_i · γ^{-sk_i}.
// Unlike Decrypt, sk is used directly without compression — callers
// pass an sk already compressed to C's length when needed.
func PartialDecrypt(c *Ciphertext, sk *PrivateKey) (*Ciphertext, error) {
	if c == nil || sk == nil {
		return nil, common.Wrap(common.ErrInvalidArgument, "ciphertext and private key are required")
	}
	l := c.Len()
	if l != sk.Len() {
		return nil, common.Wrap(common.ErrSizeMismatch, "ciphertext length %d must equal private key length %d", l, sk.Len())
	}
	out := make([]*group.GqElement, l)
	for i := 0; i < l; i++ {
		phii, err := c.Phi(i)
		if err != nil {
			return nil, err
		}
		ski, err := sk.Get(i)
		if err != nil {
			return nil, err
		}
		negSki := ski.Negate()
		gammaInvSki, err := c.Gamma().Exponentiate(negSki)
		if err != nil {
			return nil, err
		}
		phiPrime, err := phii.Multiply(gammaInvSki)
		if err != nil {
			return nil, err
		}
		out[i] = phiPrime
	}
	return NewCiphertext(c.Gamma(), out)
}
