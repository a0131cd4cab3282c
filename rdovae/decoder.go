package rdovae

import "fmt"

// DecoderState is the recurrent state of one decoding session. It must be
// seeded with InitStates before DecodeQFrame produces meaningful output.
type DecoderState struct {
	model  *Model
	arena  []float32
	stack  stack
	layers layers
	seeded bool
}

// NewDecoderState allocates an unseeded decoder state for m.
func NewDecoderState(m *Model) *DecoderState {
	d, _ := NewDecoderStateIn(m, make([]float32, DecoderStateLen(m.Config)))
	return d
}

// NewDecoderStateIn builds a decoder state inside arena, which must hold at
// least DecoderStateLen values. The state never touches arena beyond that
// length. The arena is cleared.
func NewDecoderStateIn(m *Model, arena []float32) (*DecoderState, error) {
	n := DecoderStateLen(m.Config)
	if len(arena) < n {
		return nil, fmt.Errorf("%w: %d values, want %d", ErrStateBuffer, len(arena), n)
	}
	d := &DecoderState{model: m, arena: arena[:n:n]}
	c := carve{buf: d.arena}
	d.stack.carveHidden(&c, m.Config)
	d.stack.carveScratch(&c, m.Config)

	dec := &m.Decoder
	d.layers = layers{
		dense1: dec.Dense1, dense3: dec.Dense3, dense5: dec.Dense5,
		dense7: dec.Dense7, dense8: dec.Dense8,
		gru2: dec.GRU2, gru4: dec.GRU4, gru6: dec.GRU6,
	}
	d.Reset()
	return d, nil
}

// Model returns the model the state runs.
func (d *DecoderState) Model() *Model { return d.model }

// Reset clears the state and marks it unseeded.
func (d *DecoderState) Reset() {
	clear(d.arena)
	d.seeded = false
}

// Seeded reports whether InitStates has been called since the last Reset.
func (d *DecoderState) Seeded() bool { return d.seeded }

// InitStates seeds the three GRU hidden vectors from an initial state
// (StateDim values). It may be called at any point; every hidden vector is
// overwritten, so nothing decoded before it influences later output.
func (d *DecoderState) InitStates(initialState []float32) {
	cfg := d.model.Config
	_ = initialState[cfg.StateDim-1]
	dec := &d.model.Decoder
	dec.State1.Forward(d.stack.gru2, initialState)
	dec.State2.Forward(d.stack.gru4, initialState)
	dec.State3.Forward(d.stack.gru6, initialState)
	d.seeded = true
}

// DecodeQFrame runs one decoder step over latents (LatentDim values),
// writing DecoderOutputSize values to out.
func (d *DecoderState) DecodeQFrame(out, latents []float32) {
	cfg := d.model.Config
	_ = out[cfg.DecoderOutputSize()-1]
	_ = latents[cfg.LatentDim-1]

	d.stack.run(&d.layers, cfg, latents)
	d.model.Decoder.Final.Forward(out, d.stack.concat)
}
