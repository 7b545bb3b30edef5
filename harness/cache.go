// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package harness

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/consensys/compress/lzss"
	"github.com/consensys/gnark"
	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark-crypto/kzg"
	"github.com/consensys/gnark/backend/plonk"
	"github.com/consensys/gnark/constraint"
	"github.com/fxamacker/cbor/v2"
	"golang.org/x/crypto/blake2b"

	playground "github.com/consensys/gnark-playground"
)

// errCacheMiss reports that no entry exists for a key.
var errCacheMiss = errors.New("no cache entry")

// manifest identifies the setup a cache entry was generated for. Any change
// to one of its fields keys a different entry.
type manifest struct {
	Playground        string `cbor:"playground"`
	Gnark             string `cbor:"gnark"`
	Curve             string `cbor:"curve"`
	Circuit           string `cbor:"circuit"`
	NbConstraints     int    `cbor:"nbConstraints"`
	NbPublicVariables int    `cbor:"nbPublicVariables"`
}

func newManifest(curveID ecc.ID, circuit string, ccs constraint.ConstraintSystem) manifest {
	return manifest{
		Playground:        playground.Version.String(),
		Gnark:             gnark.Version.String(),
		Curve:             curveID.String(),
		Circuit:           circuit,
		NbConstraints:     ccs.GetNbConstraints(),
		NbPublicVariables: ccs.GetNbPublicVariables(),
	}
}

// entry is the on-disk layout of a cached setup. Each artifact holds an
// lzss-compressed serialization.
type entry struct {
	Manifest     manifest `cbor:"manifest"`
	SRS          []byte   `cbor:"srs"`
	SRSLagrange  []byte   `cbor:"srsLagrange"`
	ProvingKey   []byte   `cbor:"provingKey"`
	VerifyingKey []byte   `cbor:"verifyingKey"`
}

// artifactCache persists setup artifacts between runs. The zero value is a
// disabled cache.
type artifactCache struct {
	dir string
}

func (c artifactCache) enabled() bool { return c.dir != "" }

// key derives the entry name of m, the blake2b digest of its canonical cbor
// serialization.
func (c artifactCache) key(m manifest) (string, error) {
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := em.NewEncoder(&buf).Encode(&m); err != nil {
		return "", err
	}
	sum := blake2b.Sum256(buf.Bytes())
	return hex.EncodeToString(sum[:]), nil
}

func (c artifactCache) path(key string) string {
	return filepath.Join(c.dir, "setup-"+key+".bin")
}

// load returns the setup artifacts cached for m. It returns errCacheMiss when
// no entry exists; any other error marks the entry unusable.
func (c artifactCache) load(m manifest, curveID ecc.ID) (srs, srsLagrange kzg.SRS, pk plonk.ProvingKey, vk plonk.VerifyingKey, err error) {
	key, err := c.key(m)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	e, err := c.read(key, m)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	srs = kzg.NewSRS(curveID)
	if err = decompressInto(e.SRS, srs); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("srs: %w", err)
	}
	srsLagrange = kzg.NewSRS(curveID)
	if err = decompressInto(e.SRSLagrange, srsLagrange); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("lagrange srs: %w", err)
	}
	pk = plonk.NewProvingKey(curveID)
	if err = decompressInto(e.ProvingKey, pk); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("proving key: %w", err)
	}
	vk = plonk.NewVerifyingKey(curveID)
	if err = decompressInto(e.VerifyingKey, vk); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("verifying key: %w", err)
	}
	return srs, srsLagrange, pk, vk, nil
}

// store persists the setup artifacts for m, overwriting any previous entry.
func (c artifactCache) store(m manifest, srs, srsLagrange kzg.SRS, pk plonk.ProvingKey, vk plonk.VerifyingKey) error {
	e := entry{Manifest: m}
	var err error
	if e.SRS, err = compressFrom(srs); err != nil {
		return fmt.Errorf("srs: %w", err)
	}
	if e.SRSLagrange, err = compressFrom(srsLagrange); err != nil {
		return fmt.Errorf("lagrange srs: %w", err)
	}
	if e.ProvingKey, err = compressFrom(pk); err != nil {
		return fmt.Errorf("proving key: %w", err)
	}
	if e.VerifyingKey, err = compressFrom(vk); err != nil {
		return fmt.Errorf("verifying key: %w", err)
	}

	key, err := c.key(m)
	if err != nil {
		return err
	}
	return c.write(key, e)
}

func (c artifactCache) read(key string, m manifest) (entry, error) {
	data, err := os.ReadFile(c.path(key))
	if os.IsNotExist(err) {
		return entry{}, errCacheMiss
	}
	if err != nil {
		return entry{}, err
	}
	var e entry
	if err := cbor.Unmarshal(data, &e); err != nil {
		return entry{}, err
	}
	if e.Manifest != m {
		return entry{}, errors.New("cache entry manifest mismatch")
	}
	return e, nil
}

func (c artifactCache) write(key string, e entry) error {
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := em.NewEncoder(&buf).Encode(&e); err != nil {
		return err
	}
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(c.path(key), buf.Bytes(), 0o644)
}

// compressFrom serializes w and compresses the result.
func compressFrom(w io.WriterTo) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := w.WriteTo(&buf); err != nil {
		return nil, err
	}
	compressor, err := lzss.NewCompressor(nil)
	if err != nil {
		return nil, err
	}
	return compressor.Compress(buf.Bytes())
}

// decompressInto decompresses data and deserializes the result into r.
func decompressInto(data []byte, r io.ReaderFrom) error {
	raw, err := lzss.Decompress(data, nil)
	if err != nil {
		return err
	}
	_, err = r.ReadFrom(bytes.NewReader(raw))
	return err
}
