// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package mimc

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc"

	frbls12377 "github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	mimcbls12377 "github.com/consensys/gnark-crypto/ecc/bls12-377/fr/mimc"

	frbls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	mimcbls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381/fr/mimc"

	frbn254 "github.com/consensys/gnark-crypto/ecc/bn254/fr"
	mimcbn254 "github.com/consensys/gnark-crypto/ecc/bn254/fr/mimc"
)

// Sum hashes preimage in the scalar field of curveID, mirroring the circuit.
func Sum(curveID ecc.ID, preimage *big.Int) (*big.Int, error) {
	switch curveID {
	case ecc.BN254:
		var x frbn254.Element
		x.SetBigInt(preimage)
		b := x.Bytes()
		h := mimcbn254.NewMiMC()
		if _, err := h.Write(b[:]); err != nil {
			return nil, err
		}
		return new(big.Int).SetBytes(h.Sum(nil)), nil
	case ecc.BLS12_377:
		var x frbls12377.Element
		x.SetBigInt(preimage)
		b := x.Bytes()
		h := mimcbls12377.NewMiMC()
		if _, err := h.Write(b[:]); err != nil {
			return nil, err
		}
		return new(big.Int).SetBytes(h.Sum(nil)), nil
	case ecc.BLS12_381:
		var x frbls12381.Element
		x.SetBigInt(preimage)
		b := x.Bytes()
		h := mimcbls12381.NewMiMC()
		if _, err := h.Write(b[:]); err != nil {
			return nil, err
		}
		return new(big.Int).SetBytes(h.Sum(nil)), nil
	default:
		panic("not implemented")
	}
}
