package dred

import "github.com/thesyncim/dred/rdovae"

// Encoder runs the DRED encoder over successive feature strides.
//
// An Encoder is not safe for concurrent use.
type Encoder struct {
	state *rdovae.EncoderState
	in    [EncoderStride * NumFeatures]float32
	id    *ModelID
}

// NewEncoder creates an encoder for the built-in model, ready for its first
// frame. The built-in model has synthesized, untrained weights (see
// rdovae.Default): it exercises the full pipeline but does not reconstruct
// its input. Load trained weights with rdovae.Unmarshal and use
// NewEncoderWithModel for real redundancy.
func NewEncoder() *Encoder {
	return &Encoder{state: rdovae.NewEncoderState(rdovae.Default())}
}

// NewEncoderWithModel creates an encoder for m. The model must match the
// package geometry and must not be modified afterwards.
func NewEncoderWithModel(m *rdovae.Model) (*Encoder, error) {
	if err := checkShape(m); err != nil {
		return nil, err
	}
	return &Encoder{state: rdovae.NewEncoderState(m)}, nil
}

// Init resets the encoder to the zero state, starting an independent
// trajectory. NewEncoder returns an already initialized encoder.
func (e *Encoder) Init() {
	e.state.Init()
}

// EncodeFrame runs one encoder step over in. It writes the latent vector to
// latents and the snapshot of the state reached after the step to initial.
// Callers forward the snapshots they need and drop the rest.
func (e *Encoder) EncodeFrame(latents *Latents, initial *InitialState, in *EncoderInput) {
	for i := range in {
		copy(e.in[i*NumFeatures:], in[i][:])
	}
	e.state.EncodeDFrame(latents[:], initial[:], e.in[:])
}

// StateSize returns the size in bytes of the encoder's recurrent state.
func (e *Encoder) StateSize() int {
	return rdovae.EncoderStateSize(e.state.Model().Config)
}

// ModelID identifies the model and tables the encoder runs.
func (e *Encoder) ModelID() ModelID {
	if e.id == nil {
		id := modelID(e.state.Model())
		e.id = &id
	}
	return *e.id
}
