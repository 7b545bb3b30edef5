// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

// Package harness runs a circuit end to end through the PLONK stack.
//
// A run compiles the circuit, generates (or loads from a cache) a
// deterministic KZG SRS together with the PLONK proving and verifying keys,
// proves the assignment, verifies the proof, and finally re-commits the
// public inputs with the instance package. The resulting Report carries the
// circuit's footprint, artifact sizes, per-stage timings and the instance
// commitments.
//
// Every SRS is derived from the fixed playground trapdoor, so artifacts are
// reproducible across machines and forgeable by anyone. Nothing produced here
// is safe to use outside a demo.
package harness

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/consensys/gnark"
	"github.com/consensys/gnark-crypto/kzg"
	"github.com/consensys/gnark/backend/plonk"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/scs"
	"github.com/consensys/gnark/profile"
	"github.com/consensys/gnark/test/unsafekzg"

	playground "github.com/consensys/gnark-playground"
	"github.com/consensys/gnark-playground/instance"
	"github.com/consensys/gnark-playground/logger"
)

// Run proves assignment against circuit and re-commits the public inputs.
//
// The circuit is compiled for the configured curve into a sparse R1CS, the
// assignment is checked against it with the solver, and the proof produced by
// PLONK is verified before the report is assembled. The public inputs are
// committed as a single instance column over the prover's evaluation domain,
// using the Lagrange form of the SRS the keys were set up with.
func Run(circuit, assignment frontend.Circuit, opts ...Option) (*Report, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}
	log := logger.Logger()

	report := &Report{
		CurveID: cfg.curveID,
		Circuit: circuitName(circuit),
	}
	log.Debug().
		Str("circuit", report.Circuit).
		Str("curve", cfg.curveID.String()).
		Str("version", playground.Version.String()).
		Str("gnark", gnark.Version.String()).
		Msg("starting demo run")

	var prof *profile.Profile
	if cfg.profile {
		prof = profile.Start(profile.WithNoOutput())
	}
	start := time.Now()
	ccs, err := frontend.Compile(cfg.curveID.ScalarField(), scs.NewBuilder, circuit)
	report.CompileTime = time.Since(start)
	if prof != nil {
		prof.Stop()
		report.ConstraintProfile = prof.Top()
	}
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}
	report.NbConstraints = ccs.GetNbConstraints()
	report.NbPublicVariables = ccs.GetNbPublicVariables()
	report.NbSecretVariables = ccs.GetNbSecretVariables()
	report.NbInternalVariables = ccs.GetNbInternalVariables()

	fullWitness, err := frontend.NewWitness(assignment, cfg.curveID.ScalarField())
	if err != nil {
		return nil, fmt.Errorf("witness: %w", err)
	}
	publicWitness, err := fullWitness.Public()
	if err != nil {
		return nil, fmt.Errorf("public witness: %w", err)
	}

	if cfg.solverCheck {
		if err := ccs.IsSolved(fullWitness); err != nil {
			return nil, fmt.Errorf("solver check: %w", err)
		}
	}

	cache := artifactCache{dir: cfg.cacheDir}
	m := newManifest(cfg.curveID, report.Circuit, ccs)

	var (
		srs, srsLagrange kzg.SRS
		pk               plonk.ProvingKey
		vk               plonk.VerifyingKey
	)
	start = time.Now()
	if cache.enabled() {
		srs, srsLagrange, pk, vk, err = cache.load(m, cfg.curveID)
		switch {
		case err == nil:
			report.CacheHit = true
			log.Debug().Msg("setup loaded from cache")
		case errors.Is(err, errCacheMiss):
		default:
			log.Warn().Err(err).Msg("setup cache unusable, regenerating")
		}
	}
	if !report.CacheHit {
		tau := new(big.Int).SetUint64(playground.GodPrivateKey)
		srs, srsLagrange, err = unsafekzg.NewSRS(ccs, unsafekzg.WithToxicValue(tau))
		if err != nil {
			return nil, fmt.Errorf("srs: %w", err)
		}
		pk, vk, err = plonk.Setup(ccs, srs, srsLagrange)
		if err != nil {
			return nil, fmt.Errorf("setup: %w", err)
		}
		if cache.enabled() {
			if err := cache.store(m, srs, srsLagrange, pk, vk); err != nil {
				log.Warn().Err(err).Msg("setup cache not written")
			}
		}
	}
	report.SetupTime = time.Since(start)

	start = time.Now()
	proof, err := plonk.Prove(ccs, pk, fullWitness)
	report.ProveTime = time.Since(start)
	if err != nil {
		return nil, fmt.Errorf("prove: %w", err)
	}
	start = time.Now()
	if err := plonk.Verify(proof, vk, publicWitness); err != nil {
		return nil, fmt.Errorf("verify: %w", err)
	}
	report.VerifyTime = time.Since(start)
	log.Debug().Msg("proof verified")

	params, err := instance.NewParams(srsLagrange)
	if err != nil {
		return nil, fmt.Errorf("instance params: %w", err)
	}
	report.DomainSize = params.Size()

	nbBlinding := cfg.nbBlinding
	if !cfg.blindingSet {
		nbBlinding = defaultBlinding(params.Size())
	}
	ivk, err := instance.NewVerifyingKey(cfg.curveID, params.Size(), 1, nbBlinding)
	if err != nil {
		return nil, fmt.Errorf("instance verifying key: %w", err)
	}
	report.NbBlindingFactors = nbBlinding

	var nbTasks []int
	if cfg.nbTasks > 0 {
		nbTasks = append(nbTasks, cfg.nbTasks)
	}
	report.Commitments, err = instance.Commit(params, ivk, publicWitness.Vector(), nbTasks...)
	if err != nil {
		return nil, fmt.Errorf("instance commit: %w", err)
	}
	log.Debug().Msg("public inputs committed")

	report.ProofSize = sizeOf(proof)
	report.ProvingKeySize = sizeOf(pk)
	report.VerifyingKeySize = sizeOf(vk)
	report.SRSSize = sizeOf(srs)
	report.SRSLagrangeSize = sizeOf(srsLagrange)

	return report, nil
}

// defaultBlinding reserves 5 rows, less when the domain cannot spare them.
func defaultBlinding(n uint64) uint64 {
	if n >= 7 {
		return 5
	}
	if n >= 2 {
		return n - 2
	}
	return 0
}

func circuitName(circuit frontend.Circuit) string {
	return strings.TrimPrefix(fmt.Sprintf("%T", circuit), "*")
}
