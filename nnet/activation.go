// Package nnet provides the layer primitives of the DRED RDOVAE networks:
// dense layers, gated recurrent units, activations and the matrix-vector
// kernel they share.
//
// All arithmetic is float32 with every product explicitly rounded, so the
// result of a layer depends only on its weights and inputs, never on the
// kernel variant selected for the CPU.
package nnet

import "fmt"

// Activation selects the nonlinearity applied to a layer output.
type Activation uint8

const (
	ActivationLinear Activation = iota
	ActivationTanh
	ActivationSigmoid
)

func (a Activation) String() string {
	switch a {
	case ActivationLinear:
		return "linear"
	case ActivationTanh:
		return "tanh"
	case ActivationSigmoid:
		return "sigmoid"
	}
	return fmt.Sprintf("Activation(%d)", uint8(a))
}

// Rational tanh approximation coefficients (libopus vec.h tanh_approx).
const (
	tanhN0 = float32(952.52801514)
	tanhN1 = float32(96.39235687)
	tanhN2 = float32(0.60863042)
	tanhD0 = float32(952.72399902)
	tanhD1 = float32(413.36801147)
	tanhD2 = float32(11.88600922)
)

// TanhGain is the slope of Tanh at the origin.
const TanhGain = tanhN0 / tanhD0

// tanhClip is past the point where the approximation saturates; it keeps
// x*x finite.
const tanhClip = 10

// Tanh returns the rational approximation of tanh(x), clamped to [-1, 1].
// Tanh(0) is exactly 0.
func Tanh(x float32) float32 {
	if x > tanhClip {
		x = tanhClip
	} else if x < -tanhClip {
		x = -tanhClip
	}
	x2 := float32(x * x)
	num := float32(float32(float32(float32(tanhN2*x2)+tanhN1)*x2) + tanhN0)
	den := float32(float32(float32(float32(tanhD2*x2)+tanhD1)*x2) + tanhD0)
	y := float32(num*x) / den
	if y > 1 {
		return 1
	}
	if y < -1 {
		return -1
	}
	return y
}

// Sigmoid returns 0.5 + 0.5*Tanh(0.5*x). Sigmoid(0) is exactly 0.5 and the
// output saturates to exactly 0 or 1 for large |x|.
func Sigmoid(x float32) float32 {
	return 0.5 + float32(0.5*Tanh(0.5*x))
}

// Apply runs the activation over v in place.
func (a Activation) Apply(v []float32) {
	switch a {
	case ActivationTanh:
		for i, x := range v {
			v[i] = Tanh(x)
		}
	case ActivationSigmoid:
		for i, x := range v {
			v[i] = Sigmoid(x)
		}
	}
}
