package dred

import (
	"fmt"

	"github.com/thesyncim/dred/rdovae"
)

// Decoder reconstructs feature frames from latent vectors.
//
// A Decoder starts unseeded; InitStates must be called before DecodeFrame
// and may be called again at any point to jump to a newer snapshot.
// A Decoder is not safe for concurrent use.
type Decoder struct {
	state *rdovae.DecoderState
	out   [DecoderStride * NumFeatures]float32
	id    *ModelID
}

// NewDecoder creates an unseeded decoder for the built-in model. Like
// NewEncoder it runs untrained weights, so its output is not an estimate
// of the encoded features.
func NewDecoder() *Decoder {
	return &Decoder{state: rdovae.NewDecoderState(rdovae.Default())}
}

// NewDecoderWithModel creates an unseeded decoder for m. The model must
// match the package geometry and must not be modified afterwards.
func NewDecoderWithModel(m *rdovae.Model) (*Decoder, error) {
	if err := checkShape(m); err != nil {
		return nil, err
	}
	return &Decoder{state: rdovae.NewDecoderState(m)}, nil
}

// InitStates seeds the decoder from a snapshot produced by an encoder. All
// recurrent state is replaced, so the output that follows does not depend
// on anything decoded before.
func (d *Decoder) InitStates(initial *InitialState) {
	d.state.InitStates(initial[:])
}

// Seeded reports whether InitStates has been called since construction or
// the last Reset.
func (d *Decoder) Seeded() bool { return d.state.Seeded() }

// Reset clears the decoder back to the unseeded state.
func (d *Decoder) Reset() { d.state.Reset() }

// DecodeFrame runs one decoder step over latents and writes DecoderStride
// reconstructed frames to out. It returns ErrNotSeeded if the decoder has
// not been seeded.
func (d *Decoder) DecodeFrame(out *DecoderOutput, latents *Latents) error {
	if !d.state.Seeded() {
		return ErrNotSeeded
	}
	d.state.DecodeQFrame(d.out[:], latents[:])
	for i := range out {
		copy(out[i][:], d.out[i*NumFeatures:])
	}
	return nil
}

// DecodeAll seeds the decoder with initial and decodes every latent vector
// in order, writing one DecoderOutput per vector. It returns the number of
// outputs written.
func (d *Decoder) DecodeAll(out []DecoderOutput, initial *InitialState, latents []Latents) (int, error) {
	if len(out) < len(latents) {
		return 0, fmt.Errorf("%w: %d outputs for %d latent vectors", ErrBufferTooSmall, len(out), len(latents))
	}
	d.InitStates(initial)
	for i := range latents {
		if err := d.DecodeFrame(&out[i], &latents[i]); err != nil {
			return i, err
		}
	}
	return len(latents), nil
}

// StateSize returns the size in bytes of the decoder's recurrent state.
func (d *Decoder) StateSize() int {
	return rdovae.DecoderStateSize(d.state.Model().Config)
}

// ModelID identifies the model and tables the decoder runs.
func (d *Decoder) ModelID() ModelID {
	if d.id == nil {
		id := modelID(d.state.Model())
		d.id = &id
	}
	return *d.id
}
