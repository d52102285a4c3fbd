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

// Message is a plaintext of length l, encoded as a vector of G_q elements.
type Message struct {
	elements *group.GroupVector[*group.GqElement]
}

// NewMessage wraps a slice of GqElements as a Message.
func NewMessage(elems []*group.GqElement) (*Message, error) {
	v, err := group.NewGroupVector(elems)
	if err != nil {
		return nil, common.Wrap(err, "building message")
	}
	if v.Len() == 0 {
		return nil, common.Wrap(common.ErrInvalidArgument, "message must have at least one element")
	}
	return &Message{elements: v}, nil
}

// Len returns the message length l.
func (m *Message) Len() int { return m.elements.Len() }

// Get returns the i-th plaintext component.
func (m *Message) Get(i int) (*group.GqElement, error) { return m.elements.Get(i) }

// Elements returns a defensive copy of the message's components.
func (m *Message) Elements() []*group.GqElement { return m.elements.Elements() }

// GroupKey implements group.Keyed.
func (m *Message) GroupKey() string { k, _ := m.elements.GroupKeyOrErr(); return k }

// ElementSize implements group.Sized: the message length l.
func (m *Message) ElementSize() int { return m.Len() }

// Equal reports whether two messages have identical components in order.
func (m *Message) Equal(other *Message) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.Len() != other.Len() {
		return false
	}
	for i := 0; i < m.Len(); i++ {
		a, _ := m.Get(i)
		b, _ := other.Get(i)
		if !a.Equal(b) {
			return false
		}
	}
	return true
}
