package rangecoding

import "math/bits"

// Decoder implements the range decoder per RFC 6716 Section 4.1.
// It follows libopus celt/entdec.c.
type Decoder struct {
	buf        []byte // Input buffer
	storage    uint32 // Buffer size
	offs       uint32 // Current read offset
	nbitsTotal int    // Total bits read (for Tell)
	rng        uint32 // Range size (> EC_CODE_BOT after normalize)
	val        uint32 // Current value in range
	ext        uint32 // Normalization factor saved by decode()
	rem        int    // Buffered partial byte
	err        int    // Error flag
}

// Init initializes the decoder with the given byte buffer.
// Reference: libopus ec_dec_init.
func (d *Decoder) Init(buf []byte) {
	d.buf = buf
	d.storage = uint32(len(buf))
	d.offs = 0
	d.err = 0
	d.ext = 0

	d.rng = 1 << EC_CODE_EXTRA
	d.rem = int(d.readByte())
	d.val = d.rng - 1 - uint32(d.rem>>(EC_SYM_BITS-EC_CODE_EXTRA))
	d.nbitsTotal = EC_CODE_BITS + 1 -
		((EC_CODE_BITS-EC_CODE_EXTRA)/EC_SYM_BITS)*EC_SYM_BITS
	d.normalize()
}

// readByte returns the next input byte, or 0 past the end of the buffer.
func (d *Decoder) readByte() byte {
	if d.offs < d.storage {
		b := d.buf[d.offs]
		d.offs++
		return b
	}
	return 0
}

func (d *Decoder) normalize() {
	for d.rng <= EC_CODE_BOT {
		d.nbitsTotal += EC_SYM_BITS
		d.rng <<= EC_SYM_BITS
		sym := d.rem
		d.rem = int(d.readByte())
		sym = (sym<<EC_SYM_BITS | d.rem) >> (EC_SYM_BITS - EC_CODE_EXTRA)
		d.val = ((d.val << EC_SYM_BITS) + uint32(EC_SYM_MAX&^sym)) & (EC_CODE_TOP - 1)
	}
}

// DecodeICDF16 decodes a symbol coded with Encoder.EncodeICDF16.
// Reference: libopus ec_dec_icdf16.
func (d *Decoder) DecodeICDF16(icdf []uint16, ftb uint) int {
	s := d.rng
	dval := d.val
	r := s >> ftb
	ret := -1
	for {
		t := s
		ret++
		s = r * uint32(icdf[ret])
		if dval >= s {
			d.val = dval - s
			d.rng = t - s
			d.normalize()
			return ret
		}
	}
}

// DecodeUniform decodes a value coded with Encoder.EncodeUniform.
func (d *Decoder) DecodeUniform(ft uint32) uint32 {
	if ft <= 1 {
		return 0
	}
	s := d.decode(ft)
	d.update(s, s+1, ft)
	return s
}

func (d *Decoder) decode(ft uint32) uint32 {
	d.ext = d.rng / ft
	s := d.val / d.ext
	if s+1 > ft {
		s = ft - 1
	}
	return ft - (s + 1)
}

func (d *Decoder) update(fl, fh, ft uint32) {
	s := d.ext * (ft - fh)
	d.val -= s
	if fl > 0 {
		d.rng = d.ext * (fh - fl)
	} else {
		d.rng -= s
	}
	d.normalize()
}

// Tell returns the number of bits consumed so far, rounded up.
func (d *Decoder) Tell() int {
	return d.nbitsTotal - ilog(d.rng)
}

// Error returns the error flag. Non-zero indicates a decoding error.
func (d *Decoder) Error() int {
	return d.err
}

// SetError marks the stream as corrupt. Symbol models layered on top of the
// decoder use it when a decoded value leaves its legal range.
func (d *Decoder) SetError() {
	d.err = 1
}

// ilog returns the position of the highest set bit plus one (0 for 0).
func ilog(x uint32) int {
	return bits.Len32(x)
}
