// Copyright © 2019-2020 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

// Command provedemo exercises the full engine end to end: it generates a
// key pair, encrypts a short message, proves and verifies its decryption,
// proves and verifies plaintext equality across two independent keys, and
// proves and verifies an exponentiation statement. It is a driver for
// manual inspection, not a production CLI.
package main

import (
	"fmt"
	"math/big"
	"os"

	"github.com/chvote/crypto-primitives/elgamal"
	"github.com/chvote/crypto-primitives/group"
	"github.com/chvote/crypto-primitives/internal/common"
	"github.com/chvote/crypto-primitives/random"
	"github.com/chvote/crypto-primitives/zkp"
	"github.com/chvote/crypto-primitives/zkp/decryption"
	"github.com/chvote/crypto-primitives/zkp/exponentiation"
	"github.com/chvote/crypto-primitives/zkp/plaintextequality"
)

func main() {
	if err := run(); err != nil {
		common.Logger.Errorf("provedemo failed: %v", err)
		os.Exit(1)
	}
}

func run() error {
	// A small demonstration safe-prime group; production groups are
	// generated at a cryptographic bit length, not hardcoded here.
	g, err := group.NewGqGroup(big.NewInt(59), big.NewInt(29), big.NewInt(3))
	if err != nil {
		return err
	}
	rng := random.NewCryptoSource()
	zq := group.ZqGroupOf(g)
	aux := zkp.Auxiliary{"provedemo"}

	if err := demoDecryption(g, zq, rng, aux); err != nil {
		return fmt.Errorf("decryption demo: %w", err)
	}
	if err := demoPlaintextEquality(g, zq, rng, aux); err != nil {
		return fmt.Errorf("plaintext-equality demo: %w", err)
	}
	if err := demoExponentiation(g, zq, rng, aux); err != nil {
		return fmt.Errorf("exponentiation demo: %w", err)
	}
	return nil
}

func demoDecryption(g *group.GqGroup, zq *group.ZqGroup, rng random.Source, aux zkp.Auxiliary) error {
	pk, sk, err := elgamal.GenKeyPair(g, 3, rng)
	if err != nil {
		return err
	}
	plain := []int64{3, 4, 5}
	elems := make([]*group.GqElement, len(plain))
	for i, v := range plain {
		e, err := group.NewGqElement(big.NewInt(v), g)
		if err != nil {
			return err
		}
		elems[i] = e
	}
	m, err := elgamal.NewMessage(elems)
	if err != nil {
		return err
	}
	r, err := rng.Below(zq.Q())
	if err != nil {
		return err
	}
	rElem, err := group.NewZqElement(r, zq)
	if err != nil {
		return err
	}
	ct, err := elgamal.Encrypt(g, m, rElem, pk)
	if err != nil {
		return err
	}

	decrypted, err := elgamal.Decrypt(ct, sk)
	if err != nil {
		return err
	}
	proof, err := decryption.Generate(g, ct, pk, sk, decrypted, aux, rng)
	if err != nil {
		return err
	}
	ok, reason, err := decryption.Verify(proof, g, ct, pk, decrypted, aux)
	if err != nil {
		return err
	}
	fmt.Printf("decryption proof: e=%s verify=%v reason=%q\n", proof.E, ok, reason)
	return nil
}

func demoPlaintextEquality(g *group.GqGroup, zq *group.ZqGroup, rng random.Source, aux zkp.Auxiliary) error {
	h, _, err := genSingleKey(g, rng)
	if err != nil {
		return err
	}
	hPrime, _, err := genSingleKey(g, rng)
	if err != nil {
		return err
	}
	r, err := randomZqElement(zq, rng)
	if err != nil {
		return err
	}
	rPrime, err := randomZqElement(zq, rng)
	if err != nil {
		return err
	}
	plainVal := big.NewInt(4)
	plain, err := group.NewGqElement(plainVal, g)
	if err != nil {
		return err
	}
	m, err := elgamal.NewMessage([]*group.GqElement{plain})
	if err != nil {
		return err
	}
	pkH, err := elgamal.NewPublicKey([]*group.GqElement{h})
	if err != nil {
		return err
	}
	pkHPrime, err := elgamal.NewPublicKey([]*group.GqElement{hPrime})
	if err != nil {
		return err
	}
	c, err := elgamal.Encrypt(g, m, r, pkH)
	if err != nil {
		return err
	}
	cPrime, err := elgamal.Encrypt(g, m, rPrime, pkHPrime)
	if err != nil {
		return err
	}

	proof, err := plaintextequality.Generate(g, c, cPrime, h, hPrime, r, rPrime, aux, rng)
	if err != nil {
		return err
	}
	ok, reason, err := plaintextequality.Verify(proof, g, c, cPrime, h, hPrime, aux)
	if err != nil {
		return err
	}
	fmt.Printf("plaintext-equality proof: e=%s verify=%v reason=%q\n", proof.E, ok, reason)
	return nil
}

func demoExponentiation(g *group.GqGroup, zq *group.ZqGroup, rng random.Source, aux zkp.Auxiliary) error {
	bases := make([]*group.GqElement, 3)
	for i, v := range []int64{1, 4, 9} {
		e, err := group.NewGqElement(big.NewInt(v), g)
		if err != nil {
			return err
		}
		bases[i] = e
	}
	xVal, err := rng.Below(zq.Q())
	if err != nil {
		return err
	}
	x, err := group.NewZqElement(xVal, zq)
	if err != nil {
		return err
	}
	y := make([]*group.GqElement, len(bases))
	for i, b := range bases {
		yi, err := b.Exponentiate(x)
		if err != nil {
			return err
		}
		y[i] = yi
	}

	proof, err := exponentiation.Generate(g, bases, y, x, aux, rng)
	if err != nil {
		return err
	}
	ok, reason, err := exponentiation.Verify(proof, g, bases, y, aux)
	if err != nil {
		return err
	}
	fmt.Printf("exponentiation proof: e=%s verify=%v reason=%q\n", proof.E, ok, reason)
	return nil
}

func randomZqElement(zq *group.ZqGroup, rng random.Source) (*group.ZqElement, error) {
	v, err := rng.Below(zq.Q())
	if err != nil {
		return nil, err
	}
	return group.NewZqElement(v, zq)
}

func genSingleKey(g *group.GqGroup, rng random.Source) (*group.GqElement, *group.ZqElement, error) {
	pk, sk, err := elgamal.GenKeyPair(g, 1, rng)
	if err != nil {
		return nil, nil, err
	}
	pki, err := pk.Get(0)
	if err != nil {
		return nil, nil, err
	}
	ski, err := sk.Get(0)
	if err != nil {
		return nil, nil, err
	}
	return pki, ski, nil
}
