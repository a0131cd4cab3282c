// Package stats holds the quantization and entropy-model tables shared by
// the DRED encoder and decoder.
//
// Every value is a fixed-point integer so that independently built encoder
// and decoder binaries derive bit-identical step sizes and coder parameters:
//
//	p0          Q15  probability that a symbol is zero, per level and dimension
//	r           Q15  geometric decay of the non-zero magnitudes
//	dead zone   Q8   width of the zero-snapping interval, in step units
//	quant scale Q12  base quantization step at level 0
//	level scale Q8   step multiplier of each quantization level
//
// Two table sets exist: Latent covers the per-frame latent vectors and
// State covers the initial-state snapshot.
package stats

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Table geometry.
const (
	Levels    = 16
	LatentDim = 80
	StateDim  = 24
)

// Fixed-point scales and legal ranges.
const (
	ProbBits       = 15
	DeadZoneBits   = 8
	QuantScaleBits = 12
	LevelScaleBits = 8

	MinP0 = 1
	MaxP0 = 1<<ProbBits - 2
	MinR  = 1
	MaxR  = 1<<ProbBits - 1
)

// Set is one group of per-dimension quantization tables.
// Sets are immutable; the package-level Latent and State values are safe
// for concurrent use.
type Set struct {
	name       string
	p0         [Levels][]uint16
	deadZone   []uint8
	r          []uint16
	quantScale []uint16
	sum        uint64
}

// Latent is the table set for latent vectors.
var Latent = newSet("latent", latentRows(), latentDeadZoneQ8[:], latentRQ15[:], latentQuantScaleQ12[:])

// State is the table set for initial-state snapshots.
var State = newSet("state", stateRows(), stateDeadZoneQ8[:], stateRQ15[:], stateQuantScaleQ12[:])

func latentRows() (rows [Levels][]uint16) {
	for q := range latentP0Q15 {
		rows[q] = latentP0Q15[q][:]
	}
	return rows
}

func stateRows() (rows [Levels][]uint16) {
	for q := range stateP0Q15 {
		rows[q] = stateP0Q15[q][:]
	}
	return rows
}

func newSet(name string, p0 [Levels][]uint16, deadZone []uint8, r, quantScale []uint16) *Set {
	s := &Set{name: name, p0: p0, deadZone: deadZone, r: r, quantScale: quantScale}
	s.sum = s.fingerprint()
	return s
}

// Name returns "latent" or "state".
func (s *Set) Name() string { return s.name }

// Dim returns the number of dimensions covered by the set.
func (s *Set) Dim() int { return len(s.quantScale) }

// P0 returns the Q15 zero probability of dimension i at quantization level q.
func (s *Set) P0(q, i int) uint16 { return s.p0[q][i] }

// DeadZone returns the Q8 dead-zone width of dimension i.
func (s *Set) DeadZone(i int) uint8 { return s.deadZone[i] }

// R returns the Q15 magnitude decay of dimension i.
func (s *Set) R(i int) uint16 { return s.r[i] }

// QuantScale returns the Q12 level-0 step of dimension i.
func (s *Set) QuantScale(i int) uint16 { return s.quantScale[i] }

// CopyP0 copies the level-q probabilities into dst and returns the count.
func (s *Set) CopyP0(dst []uint16, q int) int { return copy(dst, s.p0[q]) }

// CopyDeadZone copies the dead-zone table into dst and returns the count.
func (s *Set) CopyDeadZone(dst []uint8) int { return copy(dst, s.deadZone) }

// CopyR copies the decay table into dst and returns the count.
func (s *Set) CopyR(dst []uint16) int { return copy(dst, s.r) }

// CopyQuantScale copies the quant-scale table into dst and returns the count.
func (s *Set) CopyQuantScale(dst []uint16) int { return copy(dst, s.quantScale) }

// LevelScale returns the Q8 step multiplier of level q.
func LevelScale(q int) uint16 { return levelScaleQ8[q] }

// Fingerprint returns a hash of every table in the set, including the
// level scales. Builds that disagree on any value disagree on the hash.
func (s *Set) Fingerprint() uint64 { return s.sum }

func (s *Set) fingerprint() uint64 {
	d := xxhash.New()
	var buf []byte
	buf = append(buf, s.name...)
	for _, v := range levelScaleQ8 {
		buf = binary.LittleEndian.AppendUint16(buf, v)
	}
	for q := range s.p0 {
		for _, v := range s.p0[q] {
			buf = binary.LittleEndian.AppendUint16(buf, v)
		}
	}
	buf = append(buf, s.deadZone...)
	for _, v := range s.r {
		buf = binary.LittleEndian.AppendUint16(buf, v)
	}
	for _, v := range s.quantScale {
		buf = binary.LittleEndian.AppendUint16(buf, v)
	}
	_, _ = d.Write(buf)
	return d.Sum64()
}
