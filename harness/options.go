// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package harness

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc"

	playground "github.com/consensys/gnark-playground"
)

// Option configures a demo run.
type Option func(*config) error

type config struct {
	curveID     ecc.ID
	nbBlinding  uint64
	blindingSet bool
	cacheDir    string
	profile     bool
	solverCheck bool
	nbTasks     int
}

func newConfig(opts ...Option) (config, error) {
	cfg := config{
		curveID:     ecc.BN254,
		solverCheck: true,
	}
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return config{}, err
		}
	}
	return cfg, nil
}

// WithCurve sets the curve the demo runs on. Defaults to [ecc.BN254].
func WithCurve(curveID ecc.ID) Option {
	return func(cfg *config) error {
		for _, id := range playground.Curves() {
			if id == curveID {
				cfg.curveID = curveID
				return nil
			}
		}
		return fmt.Errorf("curve %s not supported", curveID)
	}
}

// WithBlindingFactors reserves nbBlinding rows of the evaluation domain when
// committing the public inputs. The domain must keep at least one usable row.
// Defaults to 5 rows, less on domains too small to spare them.
func WithBlindingFactors(nbBlinding uint64) Option {
	return func(cfg *config) error {
		cfg.nbBlinding = nbBlinding
		cfg.blindingSet = true
		return nil
	}
}

// WithCacheDir persists the SRS and the proving and verifying keys under dir,
// keyed by circuit shape and curve. Later runs with the same key skip SRS
// generation and the trusted setup.
func WithCacheDir(dir string) Option {
	return func(cfg *config) error {
		cfg.cacheDir = dir
		return nil
	}
}

// WithProfile records a constraint profile while the circuit compiles and
// attaches its top entries to the report.
func WithProfile() Option {
	return func(cfg *config) error {
		cfg.profile = true
		return nil
	}
}

// WithoutSolverCheck skips the solver dry run on the assignment. An
// unsatisfied assignment then surfaces as a proving error instead.
func WithoutSolverCheck() Option {
	return func(cfg *config) error {
		cfg.solverCheck = false
		return nil
	}
}

// WithNbTasks bounds the number of goroutines the instance commitments are
// computed with.
func WithNbTasks(nbTasks int) Option {
	return func(cfg *config) error {
		if nbTasks < 1 {
			return fmt.Errorf("invalid number of tasks %d", nbTasks)
		}
		cfg.nbTasks = nbTasks
		return nil
	}
}
