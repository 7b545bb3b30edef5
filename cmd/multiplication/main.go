// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

// multiplication proves knowledge of two factors of a public product, here
// that 3 times 5 is 15, and re-commits the product as a public input.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/consensys/gnark-crypto/ecc"

	"github.com/consensys/gnark-playground/circuits/multiply"
	"github.com/consensys/gnark-playground/harness"
	"github.com/consensys/gnark-playground/internal/utils"
	"github.com/consensys/gnark-playground/logger"
)

var (
	fCurve   = flag.String("curve", "bn254", "curve to prove on (bn254, bls12-377, bls12-381)")
	fCache   = flag.String("cache", "", "directory to cache setup artifacts in")
	fProfile = flag.Bool("profile", false, "record a constraint profile during compilation")
)

func main() {
	flag.Parse()
	log := logger.Logger()

	curveID := utils.CurveByName(*fCurve)
	if curveID == ecc.UNKNOWN {
		log.Error().Str("curve", *fCurve).Msg("unsupported curve")
		os.Exit(1)
	}

	opts := []harness.Option{harness.WithCurve(curveID)}
	if *fCache != "" {
		opts = append(opts, harness.WithCacheDir(*fCache))
	}
	if *fProfile {
		opts = append(opts, harness.WithProfile())
	}

	circuit := &multiply.Circuit{}
	assignment := &multiply.Circuit{A: 3, B: 5, C: 15}

	report, err := harness.Run(circuit, assignment, opts...)
	if err != nil {
		log.Error().Err(err).Msg("demo run failed")
		os.Exit(1)
	}
	report.Log(log)
	if *fProfile {
		fmt.Println(report.ConstraintProfile)
	}
}
