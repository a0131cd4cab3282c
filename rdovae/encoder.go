package rdovae

import "fmt"

// EncoderState is the recurrent state of one encoding session. It is owned
// by a single goroutine; independent states may run in parallel.
type EncoderState struct {
	model  *Model
	arena  []float32
	stack  stack
	layers layers
	hidden []float32
}

// NewEncoderState allocates a zeroed encoder state for m.
func NewEncoderState(m *Model) *EncoderState {
	e, _ := NewEncoderStateIn(m, make([]float32, EncoderStateLen(m.Config)))
	return e
}

// NewEncoderStateIn builds an encoder state inside arena, which must hold
// at least EncoderStateLen values. The state never touches arena beyond
// that length. The arena is cleared.
func NewEncoderStateIn(m *Model, arena []float32) (*EncoderState, error) {
	n := EncoderStateLen(m.Config)
	if len(arena) < n {
		return nil, fmt.Errorf("%w: %d values, want %d", ErrStateBuffer, len(arena), n)
	}
	e := &EncoderState{model: m, arena: arena[:n:n]}
	c := carve{buf: e.arena}
	e.stack.carveHidden(&c, m.Config)
	e.hidden = c.take(m.Config.StateHidden)
	e.stack.carveScratch(&c, m.Config)

	enc := &m.Encoder
	e.layers = layers{
		dense1: enc.Dense1, dense3: enc.Dense3, dense5: enc.Dense5,
		dense7: enc.Dense7, dense8: enc.Dense8,
		gru2: enc.GRU2, gru4: enc.GRU4, gru6: enc.GRU6,
	}
	e.Init()
	return e, nil
}

// Model returns the model the state runs.
func (e *EncoderState) Model() *Model { return e.model }

// Init resets every recurrent vector to zero, starting a new trajectory.
func (e *EncoderState) Init() {
	clear(e.arena)
}

// EncodeDFrame runs one encoder step over in (EncoderInputSize values),
// writing LatentDim values to latents and StateDim values to initialState.
//
// The initial state is computed after the step from the same stack
// outputs as the latents, so a decoder seeded with it continues from the
// point the encoder has just reached.
func (e *EncoderState) EncodeDFrame(latents, initialState, in []float32) {
	cfg := e.model.Config
	_ = latents[cfg.LatentDim-1]
	_ = initialState[cfg.StateDim-1]
	_ = in[cfg.EncoderInputSize()-1]

	e.stack.run(&e.layers, cfg, in)

	enc := &e.model.Encoder
	enc.ZDense.Forward(latents, e.stack.concat)
	enc.GDense1.Forward(e.hidden, e.stack.concat)
	enc.GDense2.Forward(initialState, e.hidden)
}
