// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

// Package instance commits the public inputs of a proof.
//
// An instance column is a vector of field elements, one entry per row of the
// circuit's evaluation domain. Commit pads each column with zeroes to the
// domain size and commits it with the Lagrange form of a KZG proving key, so
// a verifier holding the same SRS can check the inputs a proof was produced
// against without seeing the full vectors.
//
// The underlying implementation is curve specific; see the sub-packages.
package instance

import (
	"fmt"
	"io"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark-crypto/kzg"

	instance_bls12377 "github.com/consensys/gnark-playground/instance/bls12-377"
	instance_bls12381 "github.com/consensys/gnark-playground/instance/bls12-381"
	instance_bn254 "github.com/consensys/gnark-playground/instance/bn254"

	kzg_bls12377 "github.com/consensys/gnark-crypto/ecc/bls12-377/kzg"
	kzg_bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381/kzg"
	kzg_bn254 "github.com/consensys/gnark-crypto/ecc/bn254/kzg"

	fr_bls12377 "github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	fr_bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	fr_bn254 "github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Params wraps the Lagrange form of a KZG proving key.
//
// Its underlying implementation is curve specific.
type Params interface {
	io.WriterTo
	io.ReaderFrom

	// CurveID returns the curve of the commitment group.
	CurveID() ecc.ID

	// Size returns the domain size, the number of rows a commitment spans.
	Size() uint64
}

// VerifyingKey describes the public shape of a circuit's instances.
//
// Its underlying implementation is curve specific.
type VerifyingKey interface {
	io.WriterTo
	io.ReaderFrom

	// CurveID returns the curve of the commitment group.
	CurveID() ecc.ID

	// NbInstanceColumns returns the number of instance columns a proof
	// carries.
	NbInstanceColumns() int

	// NbBlindingFactors returns the number of domain rows reserved for
	// blinding.
	NbBlindingFactors() int
}

// Commitments are instance commitments grouped by instance set then column,
// mirroring the ordering of the input of Commit.
//
// The underlying implementation is curve specific.
type Commitments interface {
	io.WriterTo
	io.ReaderFrom

	// CurveID returns the curve of the commitment group.
	CurveID() ecc.ID
}

// NewParams wraps srsLagrange, the Lagrange form of a KZG SRS.
func NewParams(srsLagrange kzg.SRS) (Params, error) {
	switch srs := srsLagrange.(type) {
	case *kzg_bn254.SRS:
		return instance_bn254.NewParams(srs)
	case *kzg_bls12377.SRS:
		return instance_bls12377.NewParams(srs)
	case *kzg_bls12381.SRS:
		return instance_bls12381.NewParams(srs)
	default:
		panic("unrecognized SRS curve type")
	}
}

// NewVerifyingKey builds a key over a domain of the given size, declaring
// nbInstanceColumns instance columns and nbBlinding reserved blinding rows.
// size must be a power of two and leave at least one usable row after
// blinding.
func NewVerifyingKey(curveID ecc.ID, size, nbInstanceColumns, nbBlinding uint64) (VerifyingKey, error) {
	switch curveID {
	case ecc.BN254:
		return instance_bn254.NewVerifyingKey(size, nbInstanceColumns, nbBlinding)
	case ecc.BLS12_377:
		return instance_bls12377.NewVerifyingKey(size, nbInstanceColumns, nbBlinding)
	case ecc.BLS12_381:
		return instance_bls12381.NewVerifyingKey(size, nbInstanceColumns, nbBlinding)
	default:
		panic("not implemented")
	}
}

// NewCommitments instantiates a curve-typed Commitments, to deserialize into.
func NewCommitments(curveID ecc.ID) Commitments {
	switch curveID {
	case ecc.BN254:
		return &instance_bn254.Commitments{}
	case ecc.BLS12_377:
		return &instance_bls12377.Commitments{}
	case ecc.BLS12_381:
		return &instance_bls12381.Commitments{}
	default:
		panic("not implemented")
	}
}

// Commit commits every column of every instance set against vk.
//
// instances holds the batch in the field of the key's curve, as one of
//
//	fr.Vector or []fr.Element  a single column, a batch of one set
//	[]fr.Vector                the columns of a single set
//	[][]fr.Vector              the columns of several sets
//
// so the Vector of a public witness can be passed as is. Each set must carry
// exactly vk.NbInstanceColumns() columns, and each column at most n-(b+1)
// scalars, where n is the domain size and b the number of blinding rows; the
// batch shape is checked before any commitment is computed, and no partial
// result is returned on error.
func Commit(params Params, vk VerifyingKey, instances any, nbTasks ...int) (Commitments, error) {
	if params.CurveID() != vk.CurveID() {
		return nil, fmt.Errorf("params committed on %s, verifying key declared on %s", params.CurveID(), vk.CurveID())
	}

	switch p := params.(type) {
	case *instance_bn254.Params:
		sets, err := batchBN254(instances)
		if err != nil {
			return nil, err
		}
		res, err := instance_bn254.Commit(p, vk.(*instance_bn254.VerifyingKey), sets, nbTasks...)
		if err != nil {
			return nil, err
		}
		return &res, nil
	case *instance_bls12377.Params:
		sets, err := batchBLS12377(instances)
		if err != nil {
			return nil, err
		}
		res, err := instance_bls12377.Commit(p, vk.(*instance_bls12377.VerifyingKey), sets, nbTasks...)
		if err != nil {
			return nil, err
		}
		return &res, nil
	case *instance_bls12381.Params:
		sets, err := batchBLS12381(instances)
		if err != nil {
			return nil, err
		}
		res, err := instance_bls12381.Commit(p, vk.(*instance_bls12381.VerifyingKey), sets, nbTasks...)
		if err != nil {
			return nil, err
		}
		return &res, nil
	default:
		panic("unrecognized params curve type")
	}
}

func batchBN254(instances any) ([][]fr_bn254.Vector, error) {
	switch v := instances.(type) {
	case nil:
		return nil, nil
	case fr_bn254.Vector:
		return [][]fr_bn254.Vector{{v}}, nil
	case []fr_bn254.Element:
		return [][]fr_bn254.Vector{{v}}, nil
	case []fr_bn254.Vector:
		return [][]fr_bn254.Vector{v}, nil
	case [][]fr_bn254.Vector:
		return v, nil
	default:
		return nil, fmt.Errorf("unexpected instances type %T on %s", instances, ecc.BN254)
	}
}

func batchBLS12377(instances any) ([][]fr_bls12377.Vector, error) {
	switch v := instances.(type) {
	case nil:
		return nil, nil
	case fr_bls12377.Vector:
		return [][]fr_bls12377.Vector{{v}}, nil
	case []fr_bls12377.Element:
		return [][]fr_bls12377.Vector{{v}}, nil
	case []fr_bls12377.Vector:
		return [][]fr_bls12377.Vector{v}, nil
	case [][]fr_bls12377.Vector:
		return v, nil
	default:
		return nil, fmt.Errorf("unexpected instances type %T on %s", instances, ecc.BLS12_377)
	}
}

func batchBLS12381(instances any) ([][]fr_bls12381.Vector, error) {
	switch v := instances.(type) {
	case nil:
		return nil, nil
	case fr_bls12381.Vector:
		return [][]fr_bls12381.Vector{{v}}, nil
	case []fr_bls12381.Element:
		return [][]fr_bls12381.Vector{{v}}, nil
	case []fr_bls12381.Vector:
		return [][]fr_bls12381.Vector{v}, nil
	case [][]fr_bls12381.Vector:
		return v, nil
	default:
		return nil, fmt.Errorf("unexpected instances type %T on %s", instances, ecc.BLS12_381)
	}
}
