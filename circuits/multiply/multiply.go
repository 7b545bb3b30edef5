// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

// Package multiply proves knowledge of two factors of a public product.
package multiply

import "github.com/consensys/gnark/frontend"

// Circuit proves knowledge of A and B such that A*B == C.
type Circuit struct {
	A frontend.Variable
	B frontend.Variable
	C frontend.Variable `gnark:",public"`
}

// Define declares the single multiplication constraint.
func (circuit *Circuit) Define(api frontend.API) error {
	api.AssertIsEqual(circuit.C, api.Mul(circuit.A, circuit.B))
	return nil
}
