package nnet

import "fmt"

// Dense is a fully connected layer: out = act(W*in + bias).
// Weights are input-major, Weights[j*Out+i] connects input j to output i.
type Dense struct {
	In, Out    int
	Weights    []float32
	Bias       []float32
	Activation Activation
}

// NewDense allocates a zero-weight layer.
func NewDense(in, out int, act Activation) *Dense {
	return &Dense{
		In:         in,
		Out:        out,
		Weights:    make([]float32, in*out),
		Bias:       make([]float32, out),
		Activation: act,
	}
}

// Validate checks the weight and bias lengths.
func (d *Dense) Validate() error {
	if d.In <= 0 || d.Out <= 0 {
		return fmt.Errorf("%w: dense %dx%d", ErrShape, d.In, d.Out)
	}
	if len(d.Weights) != d.In*d.Out {
		return fmt.Errorf("%w: dense weights %d, want %d", ErrShape, len(d.Weights), d.In*d.Out)
	}
	if len(d.Bias) != d.Out {
		return fmt.Errorf("%w: dense bias %d, want %d", ErrShape, len(d.Bias), d.Out)
	}
	return nil
}

// Forward writes the layer output for in to out[:Out]. out and in must
// not overlap.
func (d *Dense) Forward(out, in []float32) {
	out = out[:d.Out]
	Sgemv(out, d.Weights, d.Out, d.In, in[:d.In])
	for i, b := range d.Bias {
		out[i] += b
	}
	d.Activation.Apply(out)
}
