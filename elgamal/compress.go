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

// CompressPublicKey compresses pk (length k) to length l: the first l-1
// entries are unchanged, the l-th is the product of pk_{l-1} .. pk_{k-1}.
// Requires l in [1, k]. l == k returns pk unchanged.
func CompressPublicKey(pk *PublicKey, l int) (*PublicKey, error) {
	k := pk.Len()
	if l <= 0 || l > k {
		return nil, common.Wrap(common.ErrSizeMismatch, "compression length %d must be in [1, %d]", l, k)
	}
	if l == k {
		return pk, nil
	}
	out := make([]*group.GqElement, l)
	for i := 0; i < l-1; i++ {
		e, err := pk.Get(i)
		if err != nil {
			return nil, err
		}
		out[i] = e
	}
	tail, err := pk.Get(l - 1)
	if err != nil {
		return nil, err
	}
	for i := l; i < k; i++ {
		e, err := pk.Get(i)
		if err != nil {
			return nil, err
		}
		tail, err = tail.Multiply(e)
		if err != nil {
			return nil, err
		}
	}
	out[l-1] = tail
	return NewPublicKey(out)
}

// CompressPrivateKey compresses sk (length k) to length l analogously: the
// first l-1 entries are unchanged, the l-th is the sum mod q of
// sk_{l-1} .. sk_{k-1}.
func CompressPrivateKey(sk *PrivateKey, l int) (*PrivateKey, error) {
	k := sk.Len()
	if l <= 0 || l > k {
		return nil, common.Wrap(common.ErrSizeMismatch, "compression length %d must be in [1, %d]", l, k)
	}
	if l == k {
		return sk, nil
	}
	out := make([]*group.ZqElement, l)
	for i := 0; i < l-1; i++ {
		e, err := sk.Get(i)
		if err != nil {
			return nil, err
		}
		out[i] = e
	}
	tail, err := sk.Get(l - 1)
	if err != nil {
		return nil, err
	}
	for i := l; i < k; i++ {
		e, err := sk.Get(i)
		if err != nil {
			return nil, err
		}
		tail, err = tail.Add(e)
		if err != nil {
			return nil, err
		}
	}
	out[l-1] = tail
	return NewPrivateKey(out)
}
