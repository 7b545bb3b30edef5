// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

// Package poseidon proves knowledge of the preimage of a poseidon2 digest.
//
// The digest is a plain sponge over the curve's poseidon2 permutation: the
// message is absorbed into a zero state one rate-sized block per permutation,
// and the first state element is squeezed once. Sum mirrors the circuit on
// native field elements.
package poseidon

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/permutation/poseidon2"

	"github.com/consensys/gnark-playground/internal/utils"
)

// Length is the number of field elements a message carries.
const Length = 2

// Circuit proves knowledge of the Message hashing to the public Digest.
type Circuit struct {
	Message [Length]frontend.Variable
	Digest  frontend.Variable `gnark:",public"`
}

// Define absorbs the message and constrains the squeezed state against the
// digest.
func (circuit *Circuit) Define(api frontend.API) error {
	curveID := utils.FieldToCurve(api.Compiler().Field())
	if curveID == ecc.UNKNOWN {
		return fmt.Errorf("field %s not supported", api.Compiler().Field().String())
	}
	width, nbFullRounds, nbPartialRounds := Parameters(curveID)
	h, err := poseidon2.NewPoseidon2FromParameters(api, width, nbFullRounds, nbPartialRounds)
	if err != nil {
		return fmt.Errorf("could not create poseidon2 hasher: %w", err)
	}

	state := make([]frontend.Variable, width)
	for i := range state {
		state[i] = 0
	}
	rate := width - 1
	for start := 0; start < Length; start += rate {
		end := min(start+rate, Length)
		for j := start; j < end; j++ {
			state[j-start] = api.Add(state[j-start], circuit.Message[j])
		}
		if err := h.Permutation(state); err != nil {
			return fmt.Errorf("could not apply permutation: %w", err)
		}
	}
	api.AssertIsEqual(circuit.Digest, state[0])
	return nil
}

// Parameters returns the poseidon2 width and round numbers used on curveID,
// matching the parameters gnark-crypto declares for its scalar field.
func Parameters(curveID ecc.ID) (width, nbFullRounds, nbPartialRounds int) {
	if curveID == ecc.BLS12_377 {
		return 2, 8, 56
	}
	return 3, 8, 56
}
