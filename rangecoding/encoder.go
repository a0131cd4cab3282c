package rangecoding

// Encoder implements the range encoder per RFC 6716 Section 4.1.
// It follows libopus celt/entenc.c; the decoder is its symmetric inverse.
type Encoder struct {
	buf        []byte // Output buffer (pre-allocated)
	storage    uint32 // Buffer capacity
	offs       uint32 // Current write offset
	nbitsTotal int    // Total bits written (for Tell)
	rng        uint32 // Range size
	val        uint32 // Low end of range
	rem        int    // Buffered byte for carry propagation (-1 = none)
	ext        uint32 // Count of pending 0xFF bytes
	err        int    // Non-zero once the buffer overflowed
}

// Init initializes the encoder with the given output buffer.
// The buffer must be pre-allocated to the maximum expected output size.
func (e *Encoder) Init(buf []byte) {
	e.buf = buf
	e.storage = uint32(len(buf))
	e.offs = 0
	e.nbitsTotal = EC_CODE_BITS + 1
	e.rng = EC_CODE_TOP
	e.val = 0
	e.rem = -1
	e.ext = 0
	e.err = 0
}

// carryOut buffers one output symbol. A 0xFF symbol cannot be written until
// it is known whether a later carry turns it into 0x00, so runs of them are
// counted in ext. Reference: libopus ec_enc_carry_out.
func (e *Encoder) carryOut(c int) {
	if c == EC_SYM_MAX {
		e.ext++
		return
	}
	carry := c >> EC_SYM_BITS
	if e.rem >= 0 {
		e.writeByte(byte(e.rem + carry))
	}
	if e.ext > 0 {
		sym := byte((EC_SYM_MAX + carry) & EC_SYM_MAX)
		for ; e.ext > 0; e.ext-- {
			e.writeByte(sym)
		}
	}
	e.rem = c & EC_SYM_MAX
}

// normalize keeps rng above EC_CODE_BOT, emitting the top byte of val each
// time the range is shifted up. Reference: libopus ec_enc_normalize.
func (e *Encoder) normalize() {
	for e.rng <= EC_CODE_BOT {
		e.carryOut(int(e.val >> EC_CODE_SHIFT))
		e.val = (e.val << EC_SYM_BITS) & (EC_CODE_TOP - 1)
		e.rng <<= EC_SYM_BITS
		e.nbitsTotal += EC_SYM_BITS
	}
}

func (e *Encoder) writeByte(b byte) {
	if e.offs >= e.storage {
		e.err = -1
		return
	}
	e.buf[e.offs] = b
	e.offs++
}

// EncodeICDF16 encodes symbol s with a uint16 inverse CDF table.
// icdf holds one entry per symbol in decreasing order and ends with 0;
// ftb is the table precision in bits (total = 1 << ftb).
// Reference: libopus ec_enc_icdf16.
func (e *Encoder) EncodeICDF16(s int, icdf []uint16, ftb uint) {
	if s < 0 {
		s = 0
	}
	if last := len(icdf) - 1; s > last {
		s = last
	}
	r := e.rng >> ftb
	if s > 0 {
		e.val += e.rng - r*uint32(icdf[s-1])
		e.rng = r * uint32(icdf[s-1]-icdf[s])
	} else {
		e.rng -= r * uint32(icdf[s])
	}
	e.normalize()
}

// EncodeUniform encodes a uniformly distributed value in [0, ft).
// ft must not exceed MaxUniform.
func (e *Encoder) EncodeUniform(val uint32, ft uint32) {
	if ft <= 1 {
		return
	}
	r := e.rng / ft
	if val > 0 {
		e.val += e.rng - r*(ft-val)
		e.rng = r
	} else {
		e.rng -= r * (ft - 1)
	}
	e.normalize()
}

// Done flushes the coder and returns the packed bytes. The encoder must be
// re-initialized before reuse. Reference: libopus ec_enc_done.
func (e *Encoder) Done() []byte {
	// Smallest number of bits that identifies a value inside [val, val+rng).
	l := EC_CODE_BITS - ilog(e.rng)
	msk := uint32(EC_CODE_TOP-1) >> uint(l)
	end := (e.val + msk) &^ msk
	if (end | msk) >= e.val+e.rng {
		l++
		msk >>= 1
		end = (e.val + msk) &^ msk
	}
	for l > 0 {
		e.carryOut(int(end >> EC_CODE_SHIFT))
		end = (end << EC_SYM_BITS) & (EC_CODE_TOP - 1)
		l -= EC_SYM_BITS
	}
	if e.rem >= 0 || e.ext > 0 {
		e.carryOut(0)
	}
	if e.err != 0 {
		return e.buf[:e.storage]
	}
	return e.buf[:e.offs]
}

// Tell returns the number of bits written so far, rounded up.
func (e *Encoder) Tell() int {
	return e.nbitsTotal - ilog(e.rng)
}

// Error returns the encoder error flag. Non-zero indicates the output
// buffer was too small.
func (e *Encoder) Error() int {
	return e.err
}
