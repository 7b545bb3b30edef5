// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package playground

import "errors"

var (
	// ErrInvalidInstances is returned when an instance set does not carry one
	// vector per instance column declared by the verifying key.
	ErrInvalidInstances = errors.New("instance set does not match the verifying key's instance columns")

	// ErrInstanceTooLarge is returned when an instance vector does not fit in
	// the rows left after reserving the blinding rows of the domain.
	ErrInstanceTooLarge = errors.New("instance vector exceeds the domain capacity left after blinding")
)
