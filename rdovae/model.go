// Package rdovae implements the recurrent encoder and decoder of the DRED
// rate-distortion-optimized variational autoencoder.
//
// The encoder turns strides of feature frames into latent vectors and an
// initial-state snapshot; the decoder, once seeded from a snapshot, turns
// latent vectors back into feature frames. Both run a stack of dense layers
// and GRUs from the nnet package and hold all of their recurrent state in a
// single preallocated float32 arena.
package rdovae

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/thesyncim/dred/nnet"
)

// EncoderLayers holds the encoder weights. Dense1 through Dense8 form the
// main stack; ZDense maps the concatenated stack outputs to the latent
// vector and GDense1/GDense2 map them to the initial state.
type EncoderLayers struct {
	Dense1  *nnet.Dense
	GRU2    *nnet.GRU
	Dense3  *nnet.Dense
	GRU4    *nnet.GRU
	Dense5  *nnet.Dense
	GRU6    *nnet.GRU
	Dense7  *nnet.Dense
	Dense8  *nnet.Dense
	ZDense  *nnet.Dense
	GDense1 *nnet.Dense
	GDense2 *nnet.Dense
}

// DecoderLayers holds the decoder weights. State1..State3 map an initial
// state to the three GRU hidden vectors; Final maps the concatenated stack
// outputs to the feature frames.
type DecoderLayers struct {
	Dense1 *nnet.Dense
	GRU2   *nnet.GRU
	Dense3 *nnet.Dense
	GRU4   *nnet.GRU
	Dense5 *nnet.Dense
	GRU6   *nnet.GRU
	Dense7 *nnet.Dense
	Dense8 *nnet.Dense
	Final  *nnet.Dense
	State1 *nnet.Dense
	State2 *nnet.Dense
	State3 *nnet.Dense
}

// Model is a complete, immutable set of RDOVAE weights. A Model may be
// shared by any number of encoders and decoders.
type Model struct {
	Version string
	Config  Config
	Encoder EncoderLayers
	Decoder DecoderLayers
}

// NewModel allocates a zero-weight model with the given geometry.
func NewModel(version string, cfg Config) (*Model, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return build(version, cfg, true), nil
}

// build lays out the architecture for cfg. Without alloc the layers carry
// dimensions only, which is all Validate needs.
func build(version string, cfg Config, alloc bool) *Model {
	dense := func(in, out int, act nnet.Activation) *nnet.Dense {
		if alloc {
			return nnet.NewDense(in, out, act)
		}
		return &nnet.Dense{In: in, Out: out, Activation: act}
	}
	gru := func(in, n int) *nnet.GRU {
		if alloc {
			return nnet.NewGRU(in, n)
		}
		return &nnet.GRU{In: in, N: n}
	}
	c, c2 := cfg.CondSize, cfg.CondSize2
	concat := cfg.ConcatSize()
	tanh, linear := nnet.ActivationTanh, nnet.ActivationLinear

	m := &Model{Version: version, Config: cfg}
	m.Encoder = EncoderLayers{
		Dense1:  dense(cfg.EncoderInputSize(), c2, tanh),
		GRU2:    gru(c2, c),
		Dense3:  dense(c, c2, tanh),
		GRU4:    gru(c2, c),
		Dense5:  dense(c, c2, tanh),
		GRU6:    gru(c2, c),
		Dense7:  dense(c, c, tanh),
		Dense8:  dense(c, c, tanh),
		ZDense:  dense(concat, cfg.LatentDim, linear),
		GDense1: dense(concat, cfg.StateHidden, tanh),
		GDense2: dense(cfg.StateHidden, cfg.StateDim, tanh),
	}
	m.Decoder = DecoderLayers{
		Dense1: dense(cfg.LatentDim, c2, tanh),
		GRU2:   gru(c2, c),
		Dense3: dense(c, c2, tanh),
		GRU4:   gru(c2, c),
		Dense5: dense(c, c2, tanh),
		GRU6:   gru(c2, c),
		Dense7: dense(c, c, tanh),
		Dense8: dense(c, c, tanh),
		Final:  dense(concat, cfg.DecoderOutputSize(), linear),
		State1: dense(cfg.StateDim, c, tanh),
		State2: dense(cfg.StateDim, c, tanh),
		State3: dense(cfg.StateDim, c, tanh),
	}
	return m
}

// Layer is one named weight block of a model.
type Layer struct {
	Name  string
	Dense *nnet.Dense
	GRU   *nnet.GRU
}

// Params returns the number of weights and biases in the layer.
func (l Layer) Params() int {
	if l.GRU != nil {
		return len(l.GRU.InputWeights) + len(l.GRU.RecurrentWeights) + len(l.GRU.Bias) + len(l.GRU.RecurrentBias)
	}
	return len(l.Dense.Weights) + len(l.Dense.Bias)
}

// Shape describes the layer dimensions, e.g. "dense 40x256 tanh".
func (l Layer) Shape() string {
	if l.GRU != nil {
		return fmt.Sprintf("gru %dx%d", l.GRU.In, l.GRU.N)
	}
	return fmt.Sprintf("dense %dx%d %v", l.Dense.In, l.Dense.Out, l.Dense.Activation)
}

// Layers lists every layer in a fixed order: encoder first, then decoder.
func (m *Model) Layers() []Layer {
	e, d := &m.Encoder, &m.Decoder
	return []Layer{
		{Name: "enc_dense1", Dense: e.Dense1},
		{Name: "enc_gru2", GRU: e.GRU2},
		{Name: "enc_dense3", Dense: e.Dense3},
		{Name: "enc_gru4", GRU: e.GRU4},
		{Name: "enc_dense5", Dense: e.Dense5},
		{Name: "enc_gru6", GRU: e.GRU6},
		{Name: "enc_dense7", Dense: e.Dense7},
		{Name: "enc_dense8", Dense: e.Dense8},
		{Name: "enc_zdense", Dense: e.ZDense},
		{Name: "enc_gdense1", Dense: e.GDense1},
		{Name: "enc_gdense2", Dense: e.GDense2},
		{Name: "dec_dense1", Dense: d.Dense1},
		{Name: "dec_gru2", GRU: d.GRU2},
		{Name: "dec_dense3", Dense: d.Dense3},
		{Name: "dec_gru4", GRU: d.GRU4},
		{Name: "dec_dense5", Dense: d.Dense5},
		{Name: "dec_gru6", GRU: d.GRU6},
		{Name: "dec_dense7", Dense: d.Dense7},
		{Name: "dec_dense8", Dense: d.Dense8},
		{Name: "dec_final", Dense: d.Final},
		{Name: "dec_state1", Dense: d.State1},
		{Name: "dec_state2", Dense: d.State2},
		{Name: "dec_state3", Dense: d.State3},
	}
}

// Params returns the total number of weights and biases.
func (m *Model) Params() int {
	n := 0
	for _, l := range m.Layers() {
		n += l.Params()
	}
	return n
}

// Validate checks every layer against the architecture implied by the
// config: dimensions, activations and weight lengths must all match.
func (m *Model) Validate() error {
	if err := m.Config.Validate(); err != nil {
		return err
	}
	want := build(m.Version, m.Config, false).Layers()
	for i, l := range m.Layers() {
		w := want[i]
		if l.Dense == nil && l.GRU == nil {
			return fmt.Errorf("%w: %s missing", ErrLayerShape, l.Name)
		}
		if w.GRU != nil {
			if l.GRU == nil {
				return fmt.Errorf("%w: %s is not a gru", ErrLayerShape, l.Name)
			}
			if l.GRU.In != w.GRU.In || l.GRU.N != w.GRU.N {
				return fmt.Errorf("%w: %s is %s, want %s", ErrLayerShape, l.Name, l.Shape(), w.Shape())
			}
			if err := l.GRU.Validate(); err != nil {
				return fmt.Errorf("%w: %s: %w", ErrLayerShape, l.Name, err)
			}
			continue
		}
		if l.Dense == nil {
			return fmt.Errorf("%w: %s is not a dense layer", ErrLayerShape, l.Name)
		}
		if l.Dense.In != w.Dense.In || l.Dense.Out != w.Dense.Out || l.Dense.Activation != w.Dense.Activation {
			return fmt.Errorf("%w: %s is %s, want %s", ErrLayerShape, l.Name, l.Shape(), w.Shape())
		}
		if err := l.Dense.Validate(); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrLayerShape, l.Name, err)
		}
	}
	return nil
}

// Fingerprint hashes the version, the config and the bit pattern of every
// weight. Encoder and decoder builds with the same fingerprint run the same
// model.
func (m *Model) Fingerprint() uint64 {
	h := xxhash.New()
	_, _ = h.WriteString(m.Version)
	var b [8]byte
	for _, v := range []int{
		m.Config.NumFeatures, m.Config.EncoderStride, m.Config.DecoderStride,
		m.Config.LatentDim, m.Config.StateDim, m.Config.CondSize,
		m.Config.CondSize2, m.Config.StateHidden,
	} {
		binary.LittleEndian.PutUint64(b[:], uint64(v))
		_, _ = h.Write(b[:])
	}
	for _, l := range m.Layers() {
		_, _ = h.WriteString(l.Name)
		if l.GRU != nil {
			hashFloats(h, l.GRU.InputWeights)
			hashFloats(h, l.GRU.RecurrentWeights)
			hashFloats(h, l.GRU.Bias)
			hashFloats(h, l.GRU.RecurrentBias)
			continue
		}
		hashFloats(h, l.Dense.Weights)
		hashFloats(h, l.Dense.Bias)
		_, _ = h.Write([]byte{byte(l.Dense.Activation)})
	}
	return h.Sum64()
}

func hashFloats(h *xxhash.Digest, v []float32) {
	buf := make([]byte, 0, 4*len(v))
	for _, x := range v {
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(x))
	}
	_, _ = h.Write(buf)
}
