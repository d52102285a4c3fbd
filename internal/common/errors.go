// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package common

import "github.com/pkg/errors"

// Sentinel errors mirroring the error taxonomy: every precondition failure
// in this module wraps one of these with errors.Wrap/Wrapf so callers can
// both errors.Is against the sentinel and read a human-readable message.
var (
	ErrInvalidArgument            = errors.New("invalid argument")
	ErrInvalidGroup               = errors.New("invalid group")
	ErrGroupMismatch              = errors.New("group mismatch")
	ErrGroupOrderMismatch         = errors.New("group order mismatch")
	ErrSizeMismatch               = errors.New("size mismatch")
	ErrDomainError                = errors.New("domain error")
	ErrEmptyHashList              = errors.New("empty hash list")
	ErrHashBitLengthTooLarge      = errors.New("hash bit length too large")
	ErrDecryptionMismatch         = errors.New("decryption mismatch")
	ErrExponentiationInconsistent = errors.New("exponentiation inconsistent")
)

// Wrap attaches a formatted message to a sentinel error, the way the
// teacher's keygen/ and common/random/ call sites use errors.Wrapf: the
// sentinel stays discoverable via errors.Is, the message stays readable.
func Wrap(sentinel error, format string, args ...interface{}) error {
	return errors.Wrapf(sentinel, format, args...)
}
