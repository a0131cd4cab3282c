package rdovae

import "github.com/thesyncim/dred/nnet"

// Sizes are in float32 values. Both states keep one hidden vector per GRU
// and the concatenated stack outputs; the encoder also keeps the hidden
// layer of the initial-state head. Both carry GRU scratch.

// EncoderStateLen is the arena length of an encoder for cfg.
func EncoderStateLen(cfg Config) int {
	return 3*cfg.CondSize + cfg.ConcatSize() + cfg.StateHidden + 6*cfg.CondSize
}

// DecoderStateLen is the arena length of a decoder for cfg.
func DecoderStateLen(cfg Config) int {
	return 3*cfg.CondSize + cfg.ConcatSize() + 6*cfg.CondSize
}

// EncoderStateSize is the encoder state size in bytes.
func EncoderStateSize(cfg Config) int { return 4 * EncoderStateLen(cfg) }

// DecoderStateSize is the decoder state size in bytes.
func DecoderStateSize(cfg Config) int { return 4 * DecoderStateLen(cfg) }

// carve hands out consecutive, capacity-limited views of an arena.
type carve struct {
	buf []float32
	off int
}

func (c *carve) take(n int) []float32 {
	s := c.buf[c.off : c.off+n : c.off+n]
	c.off += n
	return s
}

// stack holds the views shared by the encoder and decoder layer stacks.
type stack struct {
	gru2, gru4, gru6 []float32
	concat           []float32
	scratch          []float32
}

func (s *stack) carveHidden(c *carve, cfg Config) {
	s.gru2 = c.take(cfg.CondSize)
	s.gru4 = c.take(cfg.CondSize)
	s.gru6 = c.take(cfg.CondSize)
	s.concat = c.take(cfg.ConcatSize())
}

func (s *stack) carveScratch(c *carve, cfg Config) {
	s.scratch = c.take(6 * cfg.CondSize)
}

// layers is the part of the architecture the encoder and decoder share.
type layers struct {
	dense1, dense3, dense5, dense7, dense8 *nnet.Dense
	gru2, gru4, gru6                       *nnet.GRU
}

// run feeds in through the stack and fills concat in layer order:
// dense1, gru2, dense3, gru4, dense5, gru6, dense7, dense8.
func (s *stack) run(l *layers, cfg Config, in []float32) {
	c, c2 := cfg.CondSize, cfg.CondSize2
	cc := s.concat
	off := 0

	d1 := cc[off : off+c2]
	l.dense1.Forward(d1, in)
	off += c2

	g2 := cc[off : off+c]
	l.gru2.Step(s.gru2, d1, s.scratch)
	copy(g2, s.gru2)
	off += c

	d3 := cc[off : off+c2]
	l.dense3.Forward(d3, g2)
	off += c2

	g4 := cc[off : off+c]
	l.gru4.Step(s.gru4, d3, s.scratch)
	copy(g4, s.gru4)
	off += c

	d5 := cc[off : off+c2]
	l.dense5.Forward(d5, g4)
	off += c2

	g6 := cc[off : off+c]
	l.gru6.Step(s.gru6, d5, s.scratch)
	copy(g6, s.gru6)
	off += c

	d7 := cc[off : off+c]
	l.dense7.Forward(d7, g6)
	off += c

	l.dense8.Forward(cc[off:off+c], d7)
}
