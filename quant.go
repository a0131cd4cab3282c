package dred

import (
	"fmt"

	"github.com/thesyncim/dred/stats"
)

// LatentSymbols is a quantized latent vector.
type LatentSymbols [LatentDim]int

// StateSymbols is a quantized initial-state snapshot.
type StateSymbols [StateDim]int

func checkLevel(level int) error {
	if level < 0 || level >= QuantLevels {
		return fmt.Errorf("%w: %d", ErrInvalidQuantLevel, level)
	}
	return nil
}

// QuantizeLatents maps z to symbols at the given level. Higher levels use
// coarser steps.
func QuantizeLatents(dst *LatentSymbols, level int, z *Latents) error {
	if err := checkLevel(level); err != nil {
		return err
	}
	stats.Latent.QuantizeVec(level, dst[:], z[:])
	return nil
}

// DequantizeLatents reconstructs a latent vector from its symbols.
func DequantizeLatents(dst *Latents, level int, sym *LatentSymbols) error {
	if err := checkLevel(level); err != nil {
		return err
	}
	stats.Latent.DequantizeVec(level, dst[:], sym[:])
	return nil
}

// QuantizeState maps a snapshot to symbols at the given level.
func QuantizeState(dst *StateSymbols, level int, s *InitialState) error {
	if err := checkLevel(level); err != nil {
		return err
	}
	stats.State.QuantizeVec(level, dst[:], s[:])
	return nil
}

// DequantizeState reconstructs a snapshot from its symbols.
func DequantizeState(dst *InitialState, level int, sym *StateSymbols) error {
	if err := checkLevel(level); err != nil {
		return err
	}
	stats.State.DequantizeVec(level, dst[:], sym[:])
	return nil
}

// LatentStep returns the quantization step of latent dimension i at level.
func LatentStep(level, i int) (float32, error) {
	if err := checkLevel(level); err != nil {
		return 0, err
	}
	if i < 0 || i >= LatentDim {
		return 0, fmt.Errorf("dred: latent dimension %d out of range", i)
	}
	return stats.Latent.Step(level, i), nil
}
