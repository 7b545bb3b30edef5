// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package multiply

import (
	"testing"

	"github.com/consensys/gnark/backend"
	"github.com/consensys/gnark/test"

	playground "github.com/consensys/gnark-playground"
)

func TestMultiplyCircuit(t *testing.T) {
	assert := test.NewAssert(t)
	curves := playground.Curves()

	assert.CheckCircuit(&Circuit{},
		test.WithValidAssignment(&Circuit{A: 3, B: 5, C: 15}),
		test.WithValidAssignment(&Circuit{A: 0, B: 5, C: 0}),
		test.WithInvalidAssignment(&Circuit{A: 3, B: 5, C: 16}),
		test.WithBackends(backend.PLONK),
		test.WithCurves(curves[0], curves[1:]...))
}
