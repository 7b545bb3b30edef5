// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

// Package instance commits public-input vectors on the BN254 curve.
//
// Vectors are right-padded with zeroes to the verifying key's domain size,
// reinterpreted in the Lagrange basis and committed with the Lagrange form of
// a KZG proving key. Commitments are binding, not hiding: the blinding rows
// declared by the verifying key only reserve capacity.
package instance
