package dred

import (
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/cespare/xxhash/v2"

	"github.com/thesyncim/dred/rdovae"
	"github.com/thesyncim/dred/stats"
)

// ModelID identifies the weights and quantization tables of a session.
// Two peers can exchange latents only when their IDs are equal.
type ModelID struct {
	Version string
	Weights uint64
	Tables  uint64
}

func (id ModelID) String() string {
	return fmt.Sprintf("%s/w%016x/t%016x", id.Version, id.Weights, id.Tables)
}

// CheckCompatible returns nil when a and b describe the same model and
// tables, and an error wrapping ErrModelMismatch otherwise.
func CheckCompatible(a, b ModelID) error {
	switch {
	case a.Version != b.Version:
		return fmt.Errorf("%w: version %q vs %q", ErrModelMismatch, a.Version, b.Version)
	case a.Weights != b.Weights:
		return fmt.Errorf("%w: weights %016x vs %016x", ErrModelMismatch, a.Weights, b.Weights)
	case a.Tables != b.Tables:
		return fmt.Errorf("%w: tables %016x vs %016x", ErrModelMismatch, a.Tables, b.Tables)
	}
	return nil
}

// TablesFingerprint hashes the latent and state quantization tables.
func TablesFingerprint() uint64 {
	var b [16]byte
	binary.LittleEndian.PutUint64(b[:8], stats.Latent.Fingerprint())
	binary.LittleEndian.PutUint64(b[8:], stats.State.Fingerprint())
	return xxhash.Sum64(b[:])
}

var defaultModelID = sync.OnceValue(func() ModelID {
	return hashModelID(rdovae.Default())
})

func hashModelID(m *rdovae.Model) ModelID {
	return ModelID{Version: m.Version, Weights: m.Fingerprint(), Tables: TablesFingerprint()}
}

// modelID hashes m. Only the built-in model's identity is kept for the life
// of the process; encoders and decoders cache their own.
func modelID(m *rdovae.Model) ModelID {
	if m == rdovae.Default() {
		return defaultModelID()
	}
	return hashModelID(m)
}

// DefaultModelID returns the identity of the built-in model.
func DefaultModelID() ModelID { return defaultModelID() }
