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

// Ciphertext is an ElGamal ciphertext (γ, φ) of length l = |φ|.
type Ciphertext struct {
	gamma *group.GqElement
	phi   *group.GroupVector[*group.GqElement]
}

// NewCiphertext wraps (gamma, phi), requiring both to share a group and phi
// to be non-empty.
func NewCiphertext(gamma *group.GqElement, phi []*group.GqElement) (*Ciphertext, error) {
	if gamma == nil {
		return nil, common.Wrap(common.ErrInvalidArgument, "gamma is required")
	}
	v, err := group.NewGroupVector(phi)
	if err != nil {
		return nil, common.Wrap(err, "building ciphertext phi")
	}
	if v.Len() == 0 {
		return nil, common.Wrap(common.ErrInvalidArgument, "ciphertext must have at least one phi component")
	}
	key, err := v.GroupKeyOrErr()
	if err != nil {
		return nil, err
	}
	if gamma.GroupKey() != key {
		return nil, common.Wrap(common.ErrGroupMismatch, "gamma and phi must share a group")
	}
	return &Ciphertext{gamma: gamma, phi: v}, nil
}

// Gamma returns γ.
func (c *Ciphertext) Gamma() *group.GqElement { return c.gamma }

// Len returns the ciphertext length l = |φ|.
func (c *Ciphertext) Len() int { return c.phi.Len() }

// Phi returns the i-th phi component.
func (c *Ciphertext) Phi(i int) (*group.GqElement, error) { return c.phi.Get(i) }

// PhiElements returns a defensive copy of φ.
func (c *Ciphertext) PhiElements() []*group.GqElement { return c.phi.Elements() }

// GroupKey implements group.Keyed.
func (c *Ciphertext) GroupKey() string { return c.gamma.GroupKey() }

// ElementSize implements group.Sized: the ciphertext length l.
func (c *Ciphertext) ElementSize() int { return c.Len() }
