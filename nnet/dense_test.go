package nnet

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestDenseMatchesMat(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 8))
	for _, act := range []Activation{ActivationLinear, ActivationTanh, ActivationSigmoid} {
		d := NewDense(37, 21, act)
		copy(d.Weights, randomVec(rng, len(d.Weights), 0.3))
		copy(d.Bias, randomVec(rng, len(d.Bias), 0.1))
		in := randomVec(rng, d.In, 1)

		out := make([]float32, d.Out)
		d.Forward(out, in)

		// Input-major weights are the row-major In x Out transpose.
		wt := mat.NewDense(d.In, d.Out, toFloat64(d.Weights))
		var ref mat.VecDense
		ref.MulVec(wt.T(), mat.NewVecDense(d.In, toFloat64(in)))
		for i := 0; i < d.Out; i++ {
			v := ref.AtVec(i) + float64(d.Bias[i])
			switch act {
			case ActivationTanh:
				v = math.Tanh(v)
			case ActivationSigmoid:
				v = 1 / (1 + math.Exp(-v))
			}
			if diff := math.Abs(float64(out[i]) - v); diff > 2e-4 {
				t.Errorf("%v: out[%d] = %v, want %v", act, i, out[i], v)
			}
		}
	}
}

func TestDenseValidate(t *testing.T) {
	d := NewDense(4, 3, ActivationTanh)
	if err := d.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
	d.Bias = d.Bias[:2]
	if err := d.Validate(); !errors.Is(err, ErrShape) {
		t.Errorf("Validate() = %v, want ErrShape", err)
	}
	d = NewDense(4, 3, ActivationTanh)
	d.Weights = append(d.Weights, 0)
	if err := d.Validate(); !errors.Is(err, ErrShape) {
		t.Errorf("Validate() = %v, want ErrShape", err)
	}
}

func toFloat64(v []float32) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = float64(x)
	}
	return out
}
