package dred

import (
	"fmt"

	"github.com/thesyncim/dred/rdovae"
	"github.com/thesyncim/dred/stats"
)

// Model geometry.
const (
	// NumFeatures is the number of features per 10 ms frame.
	NumFeatures = 20
	// EncoderStride is the number of feature frames per encoder step.
	EncoderStride = 2
	// DecoderStride is the number of feature frames per decoder step.
	DecoderStride = 4
	// LatentDim is the length of a latent vector.
	LatentDim = stats.LatentDim
	// StateDim is the length of an initial-state snapshot.
	StateDim = stats.StateDim
	// QuantLevels is the number of quantization step sizes.
	QuantLevels = stats.Levels
	// MaxSymbol bounds the magnitude of a quantized symbol.
	MaxSymbol = stats.MaxSymbol
)

// FeatureFrame is one 10 ms frame of audio features.
type FeatureFrame [NumFeatures]float32

// EncoderInput is the feature history consumed by one encoder step.
type EncoderInput [EncoderStride]FeatureFrame

// DecoderOutput is the reconstruction produced by one decoder step.
type DecoderOutput [DecoderStride]FeatureFrame

// Latents is one latent vector.
type Latents [LatentDim]float32

// InitialState is a snapshot that seeds a decoder.
type InitialState [StateDim]float32

// EncoderStateSize returns the encoder state size in bytes for the default
// model.
func EncoderStateSize() int { return rdovae.EncoderStateSize(rdovae.DefaultConfig()) }

// DecoderStateSize returns the decoder state size in bytes for the default
// model.
func DecoderStateSize() int { return rdovae.DecoderStateSize(rdovae.DefaultConfig()) }

// checkShape verifies m fits the fixed-size types above. Layer widths are
// free; only the externally visible dimensions are constrained.
func checkShape(m *rdovae.Model) error {
	if m == nil {
		return fmt.Errorf("%w: nil model", ErrModelShape)
	}
	c := m.Config
	if c.NumFeatures != NumFeatures || c.EncoderStride != EncoderStride ||
		c.DecoderStride != DecoderStride || c.LatentDim != LatentDim || c.StateDim != StateDim {
		return fmt.Errorf("%w: features=%d strides=%d/%d latent=%d state=%d",
			ErrModelShape, c.NumFeatures, c.EncoderStride, c.DecoderStride, c.LatentDim, c.StateDim)
	}
	if err := m.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrModelShape, err)
	}
	return nil
}
