// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

// Package playground is a demonstration harness for the gnark proving stack.
//
// It wires toy circuits (a private multiplication, a Poseidon hash, a MiMC
// hash) through compilation, trusted setup, proving and verification, and
// re-derives the KZG commitments to their public inputs with the instance
// package, without going through the proving pipeline.
//
// The playground supports the following curves:
//   - BN254
//   - BLS12_377
//   - BLS12_381
package playground

import (
	"github.com/blang/semver/v4"
	"github.com/consensys/gnark-crypto/ecc"
)

// Version of the playground.
var Version = semver.MustParse("0.1.0")

// GodPrivateKey is the KZG trapdoor used by every deterministic demo setup.
// Anyone knowing it can forge proofs; it is fixed so that demo artifacts are
// reproducible across runs and machines. Never use it outside a demo.
const GodPrivateKey uint64 = 42

// Curves returns the curves supported by the playground.
func Curves() []ecc.ID {
	return []ecc.ID{
		ecc.BN254,
		ecc.BLS12_377,
		ecc.BLS12_381,
	}
}
