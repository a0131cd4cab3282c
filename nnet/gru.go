package nnet

import "fmt"

// GRU is a gated recurrent unit in the reset-after form with separate input
// and recurrent biases. Gate blocks are ordered update (z), reset (r),
// candidate (h):
//
//	z  = sigmoid(Wz*x + bz + Uz*s + cz)
//	r  = sigmoid(Wr*x + br + Ur*s + cr)
//	h  = tanh(Wh*x + bh + r*(Uh*s + ch))
//	s' = z*s + (1-z)*h
//
// InputWeights is In x 3N and RecurrentWeights is N x 3N, both input-major.
type GRU struct {
	In, N            int
	InputWeights     []float32
	RecurrentWeights []float32
	Bias             []float32
	RecurrentBias    []float32
}

// NewGRU allocates a zero-weight cell.
func NewGRU(in, n int) *GRU {
	return &GRU{
		In:               in,
		N:                n,
		InputWeights:     make([]float32, in*3*n),
		RecurrentWeights: make([]float32, n*3*n),
		Bias:             make([]float32, 3*n),
		RecurrentBias:    make([]float32, 3*n),
	}
}

// ScratchSize is the number of float32 values Step needs as scratch.
func (g *GRU) ScratchSize() int { return 6 * g.N }

// Validate checks the weight and bias lengths.
func (g *GRU) Validate() error {
	if g.In <= 0 || g.N <= 0 {
		return fmt.Errorf("%w: gru %dx%d", ErrShape, g.In, g.N)
	}
	checks := []struct {
		what      string
		got, want int
	}{
		{"input weights", len(g.InputWeights), g.In * 3 * g.N},
		{"recurrent weights", len(g.RecurrentWeights), g.N * 3 * g.N},
		{"bias", len(g.Bias), 3 * g.N},
		{"recurrent bias", len(g.RecurrentBias), 3 * g.N},
	}
	for _, c := range checks {
		if c.got != c.want {
			return fmt.Errorf("%w: gru %s %d, want %d", ErrShape, c.what, c.got, c.want)
		}
	}
	return nil
}

// Step advances state (N values) by one input x (In values). scratch must
// hold ScratchSize values; it carries nothing between calls.
func (g *GRU) Step(state, x, scratch []float32) {
	n := g.N
	state = state[:n]
	xg := scratch[: 3*n : 3*n]
	hg := scratch[3*n : 6*n]

	Sgemv(xg, g.InputWeights, 3*n, g.In, x[:g.In])
	Sgemv(hg, g.RecurrentWeights, 3*n, n, state)
	for i := range xg {
		xg[i] += g.Bias[i]
		hg[i] += g.RecurrentBias[i]
	}

	z, r, h := xg[:n], xg[n:2*n], xg[2*n:]
	hz, hr, hh := hg[:n], hg[n:2*n], hg[2*n:]
	for i := 0; i < n; i++ {
		z[i] = Sigmoid(z[i] + hz[i])
		r[i] = Sigmoid(r[i] + hr[i])
		h[i] = Tanh(h[i] + float32(r[i]*hh[i]))
	}
	for i := 0; i < n; i++ {
		state[i] = float32(z[i]*state[i]) + float32(float32(1-z[i])*h[i])
	}
}
