// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package group

import (
	"reflect"

	"github.com/chvote/crypto-primitives/internal/common"
)

// Keyed is implemented by every type usable inside a GroupVector/GroupMatrix.
// GroupKey must return an identical string for two values iff they belong
// to the same group (the "uniform group" invariant). GqElement and
// ZqElement implement it directly; composite types defined in the elgamal
// package (Ciphertext, Message, PublicKey, PrivateKey) implement it by
// delegating to their constituent elements' groups. The proof types in
// zkp/* do not implement it.
type Keyed interface {
	GroupKey() string
}

// Sized is implemented by element types that additionally carry a notion
// of "element size", e.g. a Ciphertext's number of phi components, or a
// key's length. When an element type
// implements Sized, every element in a GroupVector/GroupMatrix of that
// type must report the same size.
type Sized interface {
	ElementSize() int
}

// GroupVector is a finite ordered sequence of elements of a uniform group;
// if the element type carries a Sized notion, all elements must share the
// same size. Empty vectors are legal; querying the group of an empty
// vector is an error (see GroupKeyOrErr).
type GroupVector[E Keyed] struct {
	elements []E
}

// NewGroupVector validates elems (rejecting nils, group mismatches, and
// size mismatches) and returns a GroupVector preserving order.
func NewGroupVector[E Keyed](elems []E) (*GroupVector[E], error) {
	if len(elems) == 0 {
		return &GroupVector[E]{}, nil
	}
	if isNilElement(elems[0]) {
		return nil, common.Wrap(common.ErrInvalidArgument, "vector elements must be non-nil")
	}
	key := elems[0].GroupKey()
	sized0, hasSize := any(elems[0]).(Sized)
	var size int
	if hasSize {
		size = sized0.ElementSize()
	}
	for i, e := range elems {
		if isNilElement(e) {
			return nil, common.Wrap(common.ErrInvalidArgument, "vector elements must be non-nil (index %d)", i)
		}
		if e.GroupKey() != key {
			return nil, common.Wrap(common.ErrGroupMismatch, "all vector elements must share a group (index %d)", i)
		}
		if hasSize {
			s, ok := any(e).(Sized)
			if !ok || s.ElementSize() != size {
				return nil, common.Wrap(common.ErrSizeMismatch, "all vector elements must share a size (index %d)", i)
			}
		}
	}
	cp := make([]E, len(elems))
	copy(cp, elems)
	return &GroupVector[E]{elements: cp}, nil
}

// Len returns the number of elements.
func (v *GroupVector[E]) Len() int {
	if v == nil {
		return 0
	}
	return len(v.elements)
}

// Get returns the element at index i.
func (v *GroupVector[E]) Get(i int) (E, error) {
	var zero E
	if v == nil || i < 0 || i >= len(v.elements) {
		return zero, common.Wrap(common.ErrInvalidArgument, "index %d out of range", i)
	}
	return v.elements[i], nil
}

// Elements returns a defensive copy of the underlying slice, in order.
func (v *GroupVector[E]) Elements() []E {
	if v == nil {
		return nil
	}
	cp := make([]E, len(v.elements))
	copy(cp, v.elements)
	return cp
}

// GroupKeyOrErr returns the shared group key of a non-empty vector, or
// an error if the vector is empty.
func (v *GroupVector[E]) GroupKeyOrErr() (string, error) {
	if v.Len() == 0 {
		return "", common.Wrap(common.ErrInvalidArgument, "cannot query the group of an empty vector")
	}
	return v.elements[0].GroupKey(), nil
}

// ElementSize returns the shared element size, or 0 if the vector is empty
// or its element type carries no Sized notion.
func (v *GroupVector[E]) ElementSize() int {
	if v.Len() == 0 {
		return 0
	}
	if s, ok := any(v.elements[0]).(Sized); ok {
		return s.ElementSize()
	}
	return 0
}

// Append returns a new GroupVector with e appended, validating it against
// the existing elements' group and size.
func (v *GroupVector[E]) Append(e E) (*GroupVector[E], error) {
	return NewGroupVector(append(v.Elements(), e))
}

// Prepend returns a new GroupVector with e prepended, validating it against
// the existing elements' group and size.
func (v *GroupVector[E]) Prepend(e E) (*GroupVector[E], error) {
	return NewGroupVector(append([]E{e}, v.Elements()...))
}

// ToMatrix reshapes the vector into a rows x cols GroupMatrix using
// column-major layout: the element at row i, column j of the resulting
// matrix is the (i + rows*j)-th vector entry. Requires rows*cols ==
// v.Len().
func (v *GroupVector[E]) ToMatrix(rows, cols int) (*GroupMatrix[E], error) {
	if rows <= 0 || cols <= 0 || rows*cols != v.Len() {
		return nil, common.Wrap(common.ErrSizeMismatch, "rows*cols (%d*%d) must equal vector length %d", rows, cols, v.Len())
	}
	rowMajor := make([]E, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			rowMajor[i*cols+j] = v.elements[i+rows*j]
		}
	}
	return newTrustedMatrix(rowMajor, rows, cols)
}

func isNilElement(e any) bool {
	v := reflect.ValueOf(e)
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func:
		return v.IsNil()
	default:
		return false
	}
}
