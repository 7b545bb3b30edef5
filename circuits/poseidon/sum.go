// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package poseidon

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc"

	frbls12377 "github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	poseidonbls12377 "github.com/consensys/gnark-crypto/ecc/bls12-377/fr/poseidon2"

	frbls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	poseidonbls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381/fr/poseidon2"

	frbn254 "github.com/consensys/gnark-crypto/ecc/bn254/fr"
	poseidonbn254 "github.com/consensys/gnark-crypto/ecc/bn254/fr/poseidon2"
)

// Sum hashes message in the scalar field of curveID, mirroring the circuit.
func Sum(curveID ecc.ID, message [Length]*big.Int) (*big.Int, error) {
	switch curveID {
	case ecc.BN254:
		return sumBN254(message)
	case ecc.BLS12_377:
		return sumBLS12377(message)
	case ecc.BLS12_381:
		return sumBLS12381(message)
	default:
		panic("not implemented")
	}
}

func sumBN254(message [Length]*big.Int) (*big.Int, error) {
	width, nbFullRounds, nbPartialRounds := Parameters(ecc.BN254)
	h := poseidonbn254.NewPermutation(width, nbFullRounds, nbPartialRounds)
	state := make([]frbn254.Element, width)
	rate := width - 1
	for start := 0; start < Length; start += rate {
		end := min(start+rate, Length)
		for j := start; j < end; j++ {
			var m frbn254.Element
			m.SetBigInt(message[j])
			state[j-start].Add(&state[j-start], &m)
		}
		if err := h.Permutation(state); err != nil {
			return nil, err
		}
	}
	return state[0].BigInt(new(big.Int)), nil
}

func sumBLS12377(message [Length]*big.Int) (*big.Int, error) {
	width, nbFullRounds, nbPartialRounds := Parameters(ecc.BLS12_377)
	h := poseidonbls12377.NewPermutation(width, nbFullRounds, nbPartialRounds)
	state := make([]frbls12377.Element, width)
	rate := width - 1
	for start := 0; start < Length; start += rate {
		end := min(start+rate, Length)
		for j := start; j < end; j++ {
			var m frbls12377.Element
			m.SetBigInt(message[j])
			state[j-start].Add(&state[j-start], &m)
		}
		if err := h.Permutation(state); err != nil {
			return nil, err
		}
	}
	return state[0].BigInt(new(big.Int)), nil
}

func sumBLS12381(message [Length]*big.Int) (*big.Int, error) {
	width, nbFullRounds, nbPartialRounds := Parameters(ecc.BLS12_381)
	h := poseidonbls12381.NewPermutation(width, nbFullRounds, nbPartialRounds)
	state := make([]frbls12381.Element, width)
	rate := width - 1
	for start := 0; start < Length; start += rate {
		end := min(start+rate, Length)
		for j := start; j < end; j++ {
			var m frbls12381.Element
			m.SetBigInt(message[j])
			state[j-start].Add(&state[j-start], &m)
		}
		if err := h.Permutation(state); err != nil {
			return nil, err
		}
	}
	return state[0].BigInt(new(big.Int)), nil
}
