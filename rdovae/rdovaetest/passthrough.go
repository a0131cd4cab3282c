// Package rdovaetest provides RDOVAE models with known input-output
// behavior for tests.
package rdovaetest

import (
	"fmt"

	"github.com/thesyncim/dred/nnet"
	"github.com/thesyncim/dred/rdovae"
)

// PassthroughVersion is the version string of Passthrough models.
const PassthroughVersion = "rdovae-passthrough-v1"

// Alpha is the scale at which signals travel through the passthrough
// stack. It keeps every tanh in its linear region.
const Alpha = 1e-4

// gateBias saturates the update and reset gates to exactly zero, making
// every GRU memoryless.
const gateBias = -30

// Passthrough returns a model whose encoder copies its input cyclically into
// the latents and whose decoder copies the first EncoderInputSize latents
// back, repeating them to fill DecoderOutputSize values. Reconstruction
// is exact up to the tanh approximation and float32 rounding.
//
// The initial state is always zero and the GRUs keep no memory, so a
// decoder reproduces the input regardless of where it was seeded.
//
// cfg must satisfy EncoderInputSize <= min(LatentDim, CondSize, CondSize2).
func Passthrough(cfg rdovae.Config) (*rdovae.Model, error) {
	n := cfg.EncoderInputSize()
	if n > cfg.LatentDim || n > cfg.CondSize || n > cfg.CondSize2 {
		return nil, fmt.Errorf("rdovaetest: input size %d exceeds latent or cond size", n)
	}
	m, err := rdovae.NewModel(PassthroughVersion, cfg)
	if err != nil {
		return nil, err
	}
	lane8 := 3*cfg.CondSize2 + 4*cfg.CondSize
	for _, st := range []struct {
		dense1, dense3, dense5, dense7, dense8 *nnet.Dense
		gru2, gru4, gru6                       *nnet.GRU
		head                                   *nnet.Dense
	}{
		{m.Encoder.Dense1, m.Encoder.Dense3, m.Encoder.Dense5, m.Encoder.Dense7, m.Encoder.Dense8,
			m.Encoder.GRU2, m.Encoder.GRU4, m.Encoder.GRU6, m.Encoder.ZDense},
		{m.Decoder.Dense1, m.Decoder.Dense3, m.Decoder.Dense5, m.Decoder.Dense7, m.Decoder.Dense8,
			m.Decoder.GRU2, m.Decoder.GRU4, m.Decoder.GRU6, m.Decoder.Final},
	} {
		identity(st.dense1, n, Alpha/nnet.TanhGain)
		gruIdentity(st.gru2, n)
		identity(st.dense3, n, 1/nnet.TanhGain)
		gruIdentity(st.gru4, n)
		identity(st.dense5, n, 1/nnet.TanhGain)
		gruIdentity(st.gru6, n)
		identity(st.dense7, n, 1/nnet.TanhGain)
		identity(st.dense8, n, 1/nnet.TanhGain)
		for o := 0; o < st.head.Out; o++ {
			st.head.Weights[(lane8+o%n)*st.head.Out+o] = 1 / Alpha
		}
	}
	return m, nil
}

// identity connects input i to output i with gain g for i < n.
func identity(d *nnet.Dense, n int, g float32) {
	for i := 0; i < n; i++ {
		d.Weights[i*d.Out+i] = g
	}
}

// gruIdentity makes the candidate of unit i equal tanh(x[i]) and saturates
// both gates shut.
func gruIdentity(g *nnet.GRU, n int) {
	rows := 3 * g.N
	for i := 0; i < g.N; i++ {
		g.Bias[i] = gateBias
		g.Bias[g.N+i] = gateBias
	}
	for i := 0; i < n; i++ {
		g.InputWeights[i*rows+2*g.N+i] = 1 / nnet.TanhGain
	}
}
