// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package harness

import (
	"io"
	"time"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/rs/zerolog"

	"github.com/consensys/gnark-playground/instance"
)

// Report aggregates what a demo run produced: the circuit's footprint, the
// size of every artifact, per-stage timings and the commitments to the
// public inputs.
type Report struct {
	CurveID ecc.ID
	Circuit string

	NbConstraints       int
	NbPublicVariables   int
	NbSecretVariables   int
	NbInternalVariables int

	// DomainSize is the cardinality of the evaluation domain, the number of
	// points of the Lagrange SRS.
	DomainSize uint64

	// NbBlindingFactors is the number of domain rows reserved when committing
	// the public inputs.
	NbBlindingFactors uint64

	ProofSize        int64
	ProvingKeySize   int64
	VerifyingKeySize int64
	SRSSize          int64
	SRSLagrangeSize  int64

	CompileTime time.Duration
	SetupTime   time.Duration
	ProveTime   time.Duration
	VerifyTime  time.Duration

	// Commitments are the KZG commitments to the public inputs, one digest
	// for the single instance column of the run.
	Commitments instance.Commitments

	// ConstraintProfile holds the top entries of the constraint profile when
	// the run was configured with WithProfile.
	ConstraintProfile string

	// CacheHit reports whether the setup artifacts came from the cache.
	CacheHit bool
}

// Log emits the report on log at info level, one event per concern.
func (r *Report) Log(log zerolog.Logger) {
	log.Info().
		Str("circuit", r.Circuit).
		Str("curve", r.CurveID.String()).
		Int("nbConstraints", r.NbConstraints).
		Int("nbPublic", r.NbPublicVariables).
		Int("nbSecret", r.NbSecretVariables).
		Int("nbInternal", r.NbInternalVariables).
		Msg("circuit compiled")
	log.Info().
		Uint64("domainSize", r.DomainSize).
		Uint64("nbBlindingFactors", r.NbBlindingFactors).
		Bool("cacheHit", r.CacheHit).
		Msg("setup ready")
	log.Info().
		Int64("proof", r.ProofSize).
		Int64("provingKey", r.ProvingKeySize).
		Int64("verifyingKey", r.VerifyingKeySize).
		Int64("srs", r.SRSSize).
		Int64("srsLagrange", r.SRSLagrangeSize).
		Msg("artifact sizes in bytes")
	log.Info().
		Dur("compile", r.CompileTime).
		Dur("setup", r.SetupTime).
		Dur("prove", r.ProveTime).
		Dur("verify", r.VerifyTime).
		Msg("timings")
}

func sizeOf(w io.WriterTo) int64 {
	n, _ := w.WriteTo(io.Discard)
	return n
}
