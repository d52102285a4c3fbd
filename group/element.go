// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package group

import (
	"math/big"

	"github.com/chvote/crypto-primitives/internal/bigint"
	"github.com/chvote/crypto-primitives/internal/common"
)

// GqElement is an immutable member of a GqGroup.
type GqElement struct {
	value *big.Int
	group *GqGroup
}

// NewGqElement validates value as a member of group and wraps it. Use this
// at trust boundaries; group-internal operations that are closed over the
// group (multiply, exponentiate, invert) use the unchecked trusted
// constructor instead, since their result is provably already a member.
func NewGqElement(value *big.Int, group *GqGroup) (*GqElement, error) {
	if group == nil {
		return nil, common.Wrap(common.ErrInvalidArgument, "group is required")
	}
	if !group.IsMember(value) {
		return nil, common.Wrap(common.ErrInvalidArgument, "value is not a member of the group")
	}
	return newTrustedGqElement(value, group), nil
}

// newTrustedGqElement constructs a GqElement without re-checking
// membership, for use by operations already known to be closed over the
// group.
func newTrustedGqElement(value *big.Int, group *GqGroup) *GqElement {
	return &GqElement{value: new(big.Int).Set(value), group: group}
}

// Value returns the underlying integer value.
func (e *GqElement) Value() *big.Int { return new(big.Int).Set(e.value) }

// Group returns the element's group.
func (e *GqElement) Group() *GqGroup { return e.group }

// GroupKey implements group.Keyed.
func (e *GqElement) GroupKey() string {
	return "Gq|" + e.group.p.String() + "|" + e.group.q.String() + "|" + e.group.g.String()
}

// Equal reports structural equality: same value and same group.
func (e *GqElement) Equal(other *GqElement) bool {
	if e == nil || other == nil {
		return e == other
	}
	return e.group.Equal(other.group) && e.value.Cmp(other.value) == 0
}

// Multiply returns e * other mod p. Fails with ErrGroupMismatch if the two
// elements do not share a group.
func (e *GqElement) Multiply(other *GqElement) (*GqElement, error) {
	if other == nil || !e.group.Equal(other.group) {
		return nil, common.Wrap(common.ErrGroupMismatch, "elements must share a group to multiply")
	}
	r, err := bigint.Backend().ModMul(e.value, other.value, e.group.p)
	if err != nil {
		return nil, err
	}
	return newTrustedGqElement(r, e.group), nil
}

// Exponentiate returns e^exp mod p. Fails with ErrGroupOrderMismatch if
// exp's group order does not match e's group order.
func (e *GqElement) Exponentiate(exp *ZqElement) (*GqElement, error) {
	if exp == nil || exp.group.q.Cmp(e.group.q) != 0 {
		return nil, common.Wrap(common.ErrGroupOrderMismatch, "exponent must share the group order")
	}
	r, err := bigint.Backend().ModExp(e.value, exp.value, e.group.p)
	if err != nil {
		return nil, err
	}
	return newTrustedGqElement(r, e.group), nil
}

// Invert returns the modular inverse of e mod p.
func (e *GqElement) Invert() (*GqElement, error) {
	r, err := bigint.Backend().ModInv(e.value, e.group.p)
	if err != nil {
		return nil, err
	}
	return newTrustedGqElement(r, e.group), nil
}

// ZqElement is an immutable member of a ZqGroup.
type ZqElement struct {
	value *big.Int
	group *ZqGroup
}

// NewZqElement validates value as a member of group and wraps it.
func NewZqElement(value *big.Int, group *ZqGroup) (*ZqElement, error) {
	if group == nil {
		return nil, common.Wrap(common.ErrInvalidArgument, "group is required")
	}
	if !group.IsMember(value) {
		return nil, common.Wrap(common.ErrInvalidArgument, "value is not a member of the group")
	}
	return newTrustedZqElement(value, group), nil
}

func newTrustedZqElement(value *big.Int, group *ZqGroup) *ZqElement {
	return &ZqElement{value: new(big.Int).Set(value), group: group}
}

// Value returns the underlying integer value.
func (e *ZqElement) Value() *big.Int { return new(big.Int).Set(e.value) }

// Group returns the element's group.
func (e *ZqElement) Group() *ZqGroup { return e.group }

// GroupKey implements group.Keyed.
func (e *ZqElement) GroupKey() string {
	return "Zq|" + e.group.q.String()
}

// Equal reports structural equality: same value and same group.
func (e *ZqElement) Equal(other *ZqElement) bool {
	if e == nil || other == nil {
		return e == other
	}
	return e.group.Equal(other.group) && e.value.Cmp(other.value) == 0
}

// Add returns (e + other) mod q.
func (e *ZqElement) Add(other *ZqElement) (*ZqElement, error) {
	if other == nil || !e.group.Equal(other.group) {
		return nil, common.Wrap(common.ErrGroupMismatch, "elements must share a group to add")
	}
	r := new(big.Int).Add(e.value, other.value)
	r.Mod(r, e.group.q)
	return newTrustedZqElement(r, e.group), nil
}

// Subtract returns (e - other) mod q.
func (e *ZqElement) Subtract(other *ZqElement) (*ZqElement, error) {
	if other == nil || !e.group.Equal(other.group) {
		return nil, common.Wrap(common.ErrGroupMismatch, "elements must share a group to subtract")
	}
	r := new(big.Int).Sub(e.value, other.value)
	r.Mod(r, e.group.q)
	return newTrustedZqElement(r, e.group), nil
}

// Negate returns -e mod q.
func (e *ZqElement) Negate() *ZqElement {
	r := new(big.Int).Neg(e.value)
	r.Mod(r, e.group.q)
	return newTrustedZqElement(r, e.group)
}

// Multiply returns (e * other) mod q.
func (e *ZqElement) Multiply(other *ZqElement) (*ZqElement, error) {
	if other == nil || !e.group.Equal(other.group) {
		return nil, common.Wrap(common.ErrGroupMismatch, "elements must share a group to multiply")
	}
	r, err := bigint.Backend().ModMul(e.value, other.value, e.group.q)
	if err != nil {
		return nil, err
	}
	return newTrustedZqElement(r, e.group), nil
}

// Exponentiate returns e^exp mod q. exp must be non-negative.
func (e *ZqElement) Exponentiate(exp *big.Int) (*ZqElement, error) {
	if exp == nil || exp.Sign() < 0 {
		return nil, common.Wrap(common.ErrDomainError, "exponent must be non-negative")
	}
	r := new(big.Int).Exp(e.value, exp, e.group.q)
	return newTrustedZqElement(r, e.group), nil
}
