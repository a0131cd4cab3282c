package dred

import "github.com/thesyncim/dred/stats"

// Fixed-point scales of the quantization tables. A table value v represents
// v / scale.
const (
	// ProbScale is the scale of P0 and R (Q15).
	ProbScale = 1 << stats.ProbBits
	// DeadZoneScale is the scale of DeadZone, in step units (Q8).
	DeadZoneScale = 1 << stats.DeadZoneBits
	// QuantScaleScale is the scale of QuantScales (Q12).
	QuantScaleScale = 1 << stats.QuantScaleBits
	// LevelScaleScale is the scale of LevelScales (Q8).
	LevelScaleScale = 1 << stats.LevelScaleBits
)

// The table accessors return copies; the tables themselves never change.

// P0 returns, per quantization level and latent dimension, the probability
// that the quantized symbol is zero.
func P0() (t [QuantLevels][LatentDim]uint16) {
	for q := range t {
		stats.Latent.CopyP0(t[q][:], q)
	}
	return t
}

// DeadZone returns the per-dimension dead-zone width of the latents.
func DeadZone() (t [LatentDim]uint8) {
	stats.Latent.CopyDeadZone(t[:])
	return t
}

// R returns the per-dimension magnitude decay of the latent entropy model.
func R() (t [LatentDim]uint16) {
	stats.Latent.CopyR(t[:])
	return t
}

// QuantScales returns the per-dimension level-0 quantization step of the
// latents.
func QuantScales() (t [LatentDim]uint16) {
	stats.Latent.CopyQuantScale(t[:])
	return t
}

// StateP0 is P0 for the initial-state snapshot.
func StateP0() (t [QuantLevels][StateDim]uint16) {
	for q := range t {
		stats.State.CopyP0(t[q][:], q)
	}
	return t
}

// StateDeadZone is DeadZone for the initial-state snapshot.
func StateDeadZone() (t [StateDim]uint8) {
	stats.State.CopyDeadZone(t[:])
	return t
}

// StateR is R for the initial-state snapshot.
func StateR() (t [StateDim]uint16) {
	stats.State.CopyR(t[:])
	return t
}

// StateQuantScales is QuantScales for the initial-state snapshot.
func StateQuantScales() (t [StateDim]uint16) {
	stats.State.CopyQuantScale(t[:])
	return t
}

// LevelScales returns the step multiplier of each quantization level.
func LevelScales() (t [QuantLevels]uint16) {
	for q := range t {
		t[q] = stats.LevelScale(q)
	}
	return t
}
