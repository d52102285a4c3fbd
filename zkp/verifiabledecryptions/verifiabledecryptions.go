// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

// Package verifiabledecryptions implements batched verifiable
// decryptions: partial-decrypting N ciphertexts of uniform length under
// one key pair and attaching an independent DecryptionProof to each, so
// a verifier can check the whole batch without ever learning the secret
// key.
package verifiabledecryptions

import (
	"github.com/hashicorp/go-multierror"

	"github.com/chvote/crypto-primitives/elgamal"
	"github.com/chvote/crypto-primitives/group"
	"github.com/chvote/crypto-primitives/internal/common"
	"github.com/chvote/crypto-primitives/random"
	"github.com/chvote/crypto-primitives/zkp"
	"github.com/chvote/crypto-primitives/zkp/decryption"
)

// VerifiableDecryptions is the output of a batch: N partial-decrypted
// ciphertexts and N matching decryption proofs, |C'| = |π| = N.
type VerifiableDecryptions struct {
	Ciphertexts []*elgamal.Ciphertext
	Proofs      []*decryption.Proof
}

// Len returns the batch size N.
func (v *VerifiableDecryptions) Len() int { return len(v.Ciphertexts) }

func structuralChecks(g *group.GqGroup, ciphertexts []*elgamal.Ciphertext, pk *elgamal.PublicKey) (int, error) {
	if g == nil || pk == nil {
		return 0, common.Wrap(common.ErrInvalidArgument, "group and public key are required")
	}
	n := len(ciphertexts)
	if n == 0 {
		return 0, common.Wrap(common.ErrInvalidArgument, "batch must contain at least one ciphertext")
	}
	l := ciphertexts[0].Len()
	if l < 1 {
		return 0, common.Wrap(common.ErrSizeMismatch, "ciphertext element size must be at least 1")
	}
	var result *multierror.Error
	for i, c := range ciphertexts {
		if c == nil {
			result = multierror.Append(result, common.Wrap(common.ErrInvalidArgument, "ciphertext %d is nil", i))
			continue
		}
		if c.Len() != l {
			result = multierror.Append(result, common.Wrap(common.ErrSizeMismatch, "ciphertext %d has length %d, want %d", i, c.Len(), l))
		}
		if c.GroupKey() != pk.GroupKey() {
			result = multierror.Append(result, common.Wrap(common.ErrGroupMismatch, "ciphertext %d does not share the key's group", i))
		}
	}
	if l > pk.Len() {
		result = multierror.Append(result, common.Wrap(common.ErrSizeMismatch, "element size %d exceeds public key length %d", l, pk.Len()))
	}
	if result != nil {
		return 0, result.ErrorOrNil()
	}
	return l, nil
}

// Generate partial-decrypts each ciphertext in ciphertexts under (pk, sk)
// and attaches an independent DecryptionProof to each.
func Generate(g *group.GqGroup, ciphertexts []*elgamal.Ciphertext, pk *elgamal.PublicKey, sk *elgamal.PrivateKey, aux zkp.Auxiliary, rng random.Source) (*VerifiableDecryptions, error) {
	l, err := structuralChecks(g, ciphertexts, pk)
	if err != nil {
		return nil, err
	}
	if sk == nil || l > sk.Len() {
		return nil, common.Wrap(common.ErrSizeMismatch, "private key too short for element size %d", l)
	}
	skc, err := elgamal.CompressPrivateKey(sk, l)
	if err != nil {
		return nil, err
	}

	n := len(ciphertexts)
	outCiphertexts := make([]*elgamal.Ciphertext, n)
	outProofs := make([]*decryption.Proof, n)
	for i, c := range ciphertexts {
		partial, err := elgamal.PartialDecrypt(c, skc)
		if err != nil {
			return nil, common.Wrap(err, "partial-decrypting ciphertext %d", i)
		}
		message, err := elgamal.NewMessage(partial.PhiElements())
		if err != nil {
			return nil, common.Wrap(err, "reconstructing decrypted message for ciphertext %d", i)
		}
		proof, err := decryption.Generate(g, c, pk, sk, message, aux, rng)
		if err != nil {
			return nil, common.Wrap(err, "proving decryption of ciphertext %d", i)
		}
		outCiphertexts[i] = partial
		outProofs[i] = proof
	}
	return &VerifiableDecryptions{Ciphertexts: outCiphertexts, Proofs: outProofs}, nil
}

// Verify checks every per-ciphertext proof in vd against the original
// ciphertexts and pk, without short-circuiting on the first failure. A
// proof that does not verify yields (false, nil); structural problems
// with individual entries are aggregated into the returned error.
func Verify(vd *VerifiableDecryptions, g *group.GqGroup, ciphertexts []*elgamal.Ciphertext, pk *elgamal.PublicKey, aux zkp.Auxiliary) (bool, error) {
	if vd == nil {
		return false, common.Wrap(common.ErrInvalidArgument, "verifiable decryptions batch is required")
	}
	l, err := structuralChecks(g, ciphertexts, pk)
	if err != nil {
		return false, err
	}
	if vd.Len() != len(ciphertexts) {
		return false, common.Wrap(common.ErrSizeMismatch, "batch size %d does not match ciphertext count %d", vd.Len(), len(ciphertexts))
	}

	var result *multierror.Error
	allOK := true
	for i := range ciphertexts {
		if vd.Ciphertexts[i] == nil || vd.Proofs[i] == nil {
			result = multierror.Append(result, common.Wrap(common.ErrInvalidArgument, "batch entry %d is incomplete", i))
			allOK = false
			continue
		}
		if vd.Ciphertexts[i].Len() != l {
			result = multierror.Append(result, common.Wrap(common.ErrSizeMismatch, "partial ciphertext %d has element size %d, want %d", i, vd.Ciphertexts[i].Len(), l))
			allOK = false
			continue
		}
		message, err := elgamal.NewMessage(vd.Ciphertexts[i].PhiElements())
		if err != nil {
			result = multierror.Append(result, common.Wrap(err, "reconstructing message for ciphertext %d", i))
			allOK = false
			continue
		}
		ok, _, err := decryption.Verify(vd.Proofs[i], g, ciphertexts[i], pk, message, aux)
		if err != nil {
			result = multierror.Append(result, common.Wrap(err, "verifying proof for ciphertext %d", i))
			allOK = false
			continue
		}
		if !ok {
			allOK = false
		}
	}
	if result != nil {
		return false, result.ErrorOrNil()
	}
	return allOK, nil
}
