package dred

import (
	"fmt"

	"github.com/thesyncim/dred/rangecoding"
	"github.com/thesyncim/dred/stats"
)

// LatentWriter range-codes a quantization level, snapshots and latent
// vectors into a caller-provided buffer. Each symbol is coded with the
// Laplace model of its dimension: zero with probability p0, then a
// geometric magnitude with decay r.
//
// The payload carries no framing; the reader must issue the same sequence
// of calls as the writer.
type LatentWriter struct {
	enc rangecoding.Encoder
}

// NewLatentWriter returns a writer that codes into buf.
func NewLatentWriter(buf []byte) *LatentWriter {
	w := &LatentWriter{}
	w.Reset(buf)
	return w
}

// Reset discards any coded data and starts over in buf.
func (w *LatentWriter) Reset(buf []byte) {
	w.enc.Init(buf)
}

func (w *LatentWriter) check() error {
	if w.enc.Error() != 0 {
		return ErrBufferTooSmall
	}
	return nil
}

// WriteLevel codes a quantization level.
func (w *LatentWriter) WriteLevel(level int) error {
	if err := checkLevel(level); err != nil {
		return err
	}
	w.enc.EncodeUniform(uint32(level), QuantLevels)
	return w.check()
}

// WriteState codes a quantized snapshot.
func (w *LatentWriter) WriteState(level int, sym *StateSymbols) error {
	return w.write(stats.State, level, sym[:])
}

// WriteLatents codes a quantized latent vector.
func (w *LatentWriter) WriteLatents(level int, sym *LatentSymbols) error {
	return w.write(stats.Latent, level, sym[:])
}

func (w *LatentWriter) write(set *stats.Set, level int, sym []int) error {
	if err := checkLevel(level); err != nil {
		return err
	}
	for i, v := range sym {
		if v > MaxSymbol || v < -MaxSymbol {
			return fmt.Errorf("%w: %s[%d] = %d", ErrSymbolRange, set.Name(), i, v)
		}
	}
	for i, v := range sym {
		w.enc.EncodeLaplaceP0(v, set.P0(level, i), set.R(i))
	}
	return w.check()
}

// Tell returns the number of bits coded so far.
func (w *LatentWriter) Tell() int { return w.enc.Tell() }

// Finish flushes the coder and returns the payload, a sub-slice of the
// buffer passed to NewLatentWriter or Reset.
func (w *LatentWriter) Finish() ([]byte, error) {
	data := w.enc.Done()
	if err := w.check(); err != nil {
		return nil, err
	}
	return data, nil
}

// LatentReader decodes a payload written by LatentWriter. A symbol no
// writer could have produced, one beyond ±MaxSymbol, is reported as
// ErrCorruptPayload.
type LatentReader struct {
	dec rangecoding.Decoder
}

// NewLatentReader returns a reader over data.
func NewLatentReader(data []byte) *LatentReader {
	r := &LatentReader{}
	r.Reset(data)
	return r
}

// Reset starts reading a new payload.
func (r *LatentReader) Reset(data []byte) {
	r.dec.Init(data)
}

func (r *LatentReader) check() error {
	if r.dec.Error() != 0 {
		return ErrCorruptPayload
	}
	return nil
}

// ReadLevel decodes a quantization level.
func (r *LatentReader) ReadLevel() (int, error) {
	level := int(r.dec.DecodeUniform(QuantLevels))
	if err := r.check(); err != nil {
		return 0, err
	}
	return level, nil
}

// ReadState decodes a quantized snapshot coded at level.
func (r *LatentReader) ReadState(level int, sym *StateSymbols) error {
	return r.read(stats.State, level, sym[:])
}

// ReadLatents decodes a quantized latent vector coded at level.
func (r *LatentReader) ReadLatents(level int, sym *LatentSymbols) error {
	return r.read(stats.Latent, level, sym[:])
}

func (r *LatentReader) read(set *stats.Set, level int, sym []int) error {
	if err := checkLevel(level); err != nil {
		return err
	}
	for i := range sym {
		v := r.dec.DecodeLaplaceP0(set.P0(level, i), set.R(i))
		if v > MaxSymbol || v < -MaxSymbol {
			r.dec.SetError()
		}
		sym[i] = v
	}
	return r.check()
}

// Tell returns the number of bits consumed so far.
func (r *LatentReader) Tell() int { return r.dec.Tell() }
