package nnet

// sgemvFunc computes out = W*x for an input-major rows x cols matrix:
// out[i] = sum over j of w[j*rows+i]*x[j], accumulated in ascending j.
type sgemvFunc func(out, w []float32, rows, cols int, x []float32)

type kernel struct {
	name  string
	sgemv sgemvFunc
}

var active = selectKernel()

// KernelName reports the matrix-vector kernel selected for this CPU.
func KernelName() string { return active.name }

// Sgemv computes out[:rows] = W*x with the selected kernel. w holds
// rows*cols weights, input-major.
func Sgemv(out, w []float32, rows, cols int, x []float32) {
	if rows <= 0 {
		return
	}
	_ = out[rows-1]
	if cols > 0 {
		_ = w[rows*cols-1]
		_ = x[cols-1]
	}
	active.sgemv(out, w, rows, cols, x)
}

func sgemvGeneric(out, w []float32, rows, cols int, x []float32) {
	out = out[:rows]
	clear(out)
	for j := 0; j < cols; j++ {
		xj := x[j]
		col := w[j*rows : j*rows+rows]
		for i, wv := range col {
			out[i] += float32(wv * xj)
		}
	}
}

// sgemvBlocked16 keeps 16 output accumulators in registers and walks every
// column once per block. The per-output accumulation order is the same as
// sgemvGeneric, so the two are bit-identical.
func sgemvBlocked16(out, w []float32, rows, cols int, x []float32) {
	i := 0
	for ; i+16 <= rows; i += 16 {
		var acc [16]float32
		for j := 0; j < cols; j++ {
			xj := x[j]
			c := w[j*rows+i : j*rows+i+16]
			acc[0] += float32(c[0] * xj)
			acc[1] += float32(c[1] * xj)
			acc[2] += float32(c[2] * xj)
			acc[3] += float32(c[3] * xj)
			acc[4] += float32(c[4] * xj)
			acc[5] += float32(c[5] * xj)
			acc[6] += float32(c[6] * xj)
			acc[7] += float32(c[7] * xj)
			acc[8] += float32(c[8] * xj)
			acc[9] += float32(c[9] * xj)
			acc[10] += float32(c[10] * xj)
			acc[11] += float32(c[11] * xj)
			acc[12] += float32(c[12] * xj)
			acc[13] += float32(c[13] * xj)
			acc[14] += float32(c[14] * xj)
			acc[15] += float32(c[15] * xj)
		}
		copy(out[i:i+16], acc[:])
	}
	for ; i < rows; i++ {
		var acc float32
		for j := 0; j < cols; j++ {
			acc += float32(w[j*rows+i] * x[j])
		}
		out[i] = acc
	}
}
