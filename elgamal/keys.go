// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

// Package elgamal implements multi-recipient ElGamal encryption over a
// GqGroup: key generation, encryption, decryption, partial decryption, and
// the key/ciphertext compression used to decrypt a short message under a
// longer key.
package elgamal

import (
	"math/big"

	"github.com/chvote/crypto-primitives/group"
	"github.com/chvote/crypto-primitives/internal/common"
	"github.com/chvote/crypto-primitives/random"
)

// PublicKey is an ordered vector of G_q elements, pk_i = g^{sk_i}.
type PublicKey struct {
	elements *group.GroupVector[*group.GqElement]
}

// PrivateKey is an ordered vector of Z_q elements, the exponents sk_i.
type PrivateKey struct {
	elements *group.GroupVector[*group.ZqElement]
}

// NewPublicKey wraps a slice of GqElements, validating a uniform group.
func NewPublicKey(elems []*group.GqElement) (*PublicKey, error) {
	v, err := group.NewGroupVector(elems)
	if err != nil {
		return nil, common.Wrap(err, "building public key")
	}
	if v.Len() == 0 {
		return nil, common.Wrap(common.ErrInvalidArgument, "public key must have at least one element")
	}
	return &PublicKey{elements: v}, nil
}

// NewPrivateKey wraps a slice of ZqElements, validating a uniform group.
func NewPrivateKey(elems []*group.ZqElement) (*PrivateKey, error) {
	v, err := group.NewGroupVector(elems)
	if err != nil {
		return nil, common.Wrap(err, "building private key")
	}
	if v.Len() == 0 {
		return nil, common.Wrap(common.ErrInvalidArgument, "private key must have at least one element")
	}
	return &PrivateKey{elements: v}, nil
}

// Len returns the key length k.
func (pk *PublicKey) Len() int { return pk.elements.Len() }

// Len returns the key length k.
func (sk *PrivateKey) Len() int { return sk.elements.Len() }

// Get returns the i-th component pk_i.
func (pk *PublicKey) Get(i int) (*group.GqElement, error) { return pk.elements.Get(i) }

// Get returns the i-th component sk_i.
func (sk *PrivateKey) Get(i int) (*group.ZqElement, error) { return sk.elements.Get(i) }

// Elements returns a defensive copy of the key's components.
func (pk *PublicKey) Elements() []*group.GqElement { return pk.elements.Elements() }

// Elements returns a defensive copy of the key's components.
func (sk *PrivateKey) Elements() []*group.ZqElement { return sk.elements.Elements() }

// GroupKey implements group.Keyed so keys themselves can live in a vector.
func (pk *PublicKey) GroupKey() string { k, _ := pk.elements.GroupKeyOrErr(); return k }

// GroupKey implements group.Keyed.
func (sk *PrivateKey) GroupKey() string { k, _ := sk.elements.GroupKeyOrErr(); return k }

// ElementSize implements group.Sized: the key length k.
func (pk *PublicKey) ElementSize() int { return pk.Len() }

// ElementSize implements group.Sized.
func (sk *PrivateKey) ElementSize() int { return sk.Len() }

// GenKeyPair samples sk_i uniformly from [2, q) for i in [0, k) and sets
// pk_i = g^{sk_i}.
func GenKeyPair(g *group.GqGroup, k int, rng random.Source) (*PublicKey, *PrivateKey, error) {
	if g == nil {
		return nil, nil, common.Wrap(common.ErrInvalidArgument, "group is required")
	}
	if k <= 0 {
		return nil, nil, common.Wrap(common.ErrInvalidArgument, "key length must be positive, got %d", k)
	}
	zq := group.ZqGroupOf(g)
	two := big.NewInt(2)
	skElems := make([]*group.ZqElement, k)
	pkElems := make([]*group.GqElement, k)
	generator := g.Generator()
	for i := 0; i < k; i++ {
		v, err := rng.Between(two, zq.Q())
		if err != nil {
			return nil, nil, common.Wrap(err, "sampling private key component %d", i)
		}
		skElem, err := group.NewZqElement(v, zq)
		if err != nil {
			return nil, nil, err
		}
		skElems[i] = skElem
		pkElem, err := generator.Exponentiate(skElem)
		if err != nil {
			return nil, nil, err
		}
		pkElems[i] = pkElem
	}
	pk, err := NewPublicKey(pkElems)
	if err != nil {
		return nil, nil, err
	}
	sk, err := NewPrivateKey(skElems)
	if err != nil {
		return nil, nil, err
	}
	return pk, sk, nil
}
