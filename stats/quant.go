package stats

import (
	"math"

	"github.com/thesyncim/dred/util"
)

// MaxSymbol bounds the magnitude of a quantized symbol. It keeps saturated
// inputs inside the range the Laplace coder can represent.
const MaxSymbol = 4096

// deadZoneEps keeps the dead-zone tanh finite for a zero-width dead zone.
const deadZoneEps = 0.1

// Step returns the quantization step of dimension i at level q.
// The product of the two fixed-point factors is exact in float32.
func (s *Set) Step(q, i int) float32 {
	num := uint32(s.quantScale[i]) * uint32(levelScaleQ8[q])
	return float32(num) / (1 << (QuantScaleBits + LevelScaleBits))
}

// Quantize maps x to an integer symbol for dimension i at level q.
//
// The value is scaled to step units and pulled toward zero by the dead
// zone d before rounding:
//
//	u  = x / step
//	u' = u - d*tanh(u/(d+eps))
//	symbol = round(u')
//
// The mapping is monotonic in x. NaN quantizes to 0.
func (s *Set) Quantize(q, i int, x float32) int {
	if x != x {
		return 0
	}
	u := float64(x / s.Step(q, i))
	d := float64(s.deadZone[i]) / (1 << DeadZoneBits)
	u -= d * math.Tanh(u/(d+deadZoneEps))
	return int(util.Clamp(math.Floor(u+0.5), -MaxSymbol, MaxSymbol))
}

// Dequantize returns the reconstruction value of symbol sym for dimension
// i at level q. It depends only on the symbol and the tables.
func (s *Set) Dequantize(q, i, sym int) float32 {
	return float32(sym) * s.Step(q, i)
}

// QuantizeVec quantizes src into dst at level q. Both slices must have
// Dim entries.
func (s *Set) QuantizeVec(q int, dst []int, src []float32) {
	_ = dst[len(src)-1]
	for i, x := range src {
		dst[i] = s.Quantize(q, i, x)
	}
}

// DequantizeVec reconstructs src symbols into dst at level q.
func (s *Set) DequantizeVec(q int, dst []float32, src []int) {
	_ = dst[len(src)-1]
	for i, sym := range src {
		dst[i] = s.Dequantize(q, i, sym)
	}
}
