// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

// hash proves knowledge of a Poseidon preimage. The digest is computed
// natively, published as the only public input, and the in-circuit sponge
// must reproduce it.
package main

import (
	"flag"
	"fmt"
	"math/big"
	"os"

	"github.com/consensys/gnark-crypto/ecc"

	"github.com/consensys/gnark-playground/circuits/poseidon"
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

	var message [poseidon.Length]*big.Int
	for i := range message {
		message[i] = big.NewInt(int64(i) + 1)
	}
	digest, err := poseidon.Sum(curveID, message)
	if err != nil {
		log.Error().Err(err).Msg("hashing failed")
		os.Exit(1)
	}
	log.Info().Str("digest", digest.String()).Msg("poseidon digest computed")

	opts := []harness.Option{harness.WithCurve(curveID)}
	if *fCache != "" {
		opts = append(opts, harness.WithCacheDir(*fCache))
	}
	if *fProfile {
		opts = append(opts, harness.WithProfile())
	}

	assignment := &poseidon.Circuit{Digest: digest}
	for i := range message {
		assignment.Message[i] = message[i]
	}

	report, err := harness.Run(&poseidon.Circuit{}, assignment, opts...)
	if err != nil {
		log.Error().Err(err).Msg("demo run failed")
		os.Exit(1)
	}
	report.Log(log)
	if *fProfile {
		fmt.Println(report.ConstraintProfile)
	}
}
