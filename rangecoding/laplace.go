package rangecoding

import "github.com/thesyncim/dred/util"

// Laplace-p0 model precision: p0 and decay are Q15 probabilities.
const (
	LaplaceBits = 15
	laplaceOne  = 1 << LaplaceBits

	// laplaceChunk is the largest magnitude step coded by one ICDF symbol;
	// larger magnitudes continue with further chunks.
	laplaceChunk = 7

	// MaxLaplaceChunks bounds the continuation chunks read for a single
	// value so a corrupt stream cannot keep the decoder looping.
	MaxLaplaceChunks = 1 << 10
)

// laplaceSignICDF builds the 3-symbol {zero, positive, negative} table.
// Zero has probability p0; the sign of a non-zero value is equiprobable.
func laplaceSignICDF(icdf *[3]uint16, p0 uint16) {
	icdf[0] = uint16(laplaceOne - uint32(p0))
	icdf[1] = icdf[0] >> 1
	icdf[2] = 0
}

// laplaceMagICDF builds the 8-symbol geometric table for magnitude chunks.
// Each entry keeps at least one unit of probability for every later symbol.
func laplaceMagICDF(icdf *[8]uint16, decay uint16) {
	icdf[0] = max(laplaceChunk, decay)
	for i := 1; i < laplaceChunk; i++ {
		next := uint16((uint32(icdf[i-1]) * uint32(decay)) >> LaplaceBits)
		icdf[i] = max(uint16(laplaceChunk-i), next)
	}
	icdf[laplaceChunk] = 0
}

// EncodeLaplaceP0 encodes a signed integer with a zero-inflated two-sided
// geometric distribution: P(0) = p0/32768 and each extra unit of magnitude
// is roughly decay/32768 times less likely. p0 must be in [1, 32766] and
// decay in [1, 32767]. Reference: libopus ec_laplace_encode_p0.
func (e *Encoder) EncodeLaplaceP0(value int, p0, decay uint16) {
	var sign [3]uint16
	laplaceSignICDF(&sign, p0)
	s := 0
	if value > 0 {
		s = 1
	} else if value < 0 {
		s = 2
	}
	e.EncodeICDF16(s, sign[:], LaplaceBits)
	if value == 0 {
		return
	}

	var mag [8]uint16
	laplaceMagICDF(&mag, decay)
	v := util.Abs(value) - 1
	for {
		e.EncodeICDF16(min(v, laplaceChunk), mag[:], LaplaceBits)
		v -= laplaceChunk
		if v < 0 {
			return
		}
	}
}

// DecodeLaplaceP0 decodes a value coded with EncodeLaplaceP0 using the same
// p0 and decay. A value needing more than MaxLaplaceChunks continuation
// symbols marks the decoder as errored and returns the partial magnitude.
func (d *Decoder) DecodeLaplaceP0(p0, decay uint16) int {
	var sign [3]uint16
	laplaceSignICDF(&sign, p0)
	s := d.DecodeICDF16(sign[:], LaplaceBits)
	if s == 0 {
		return 0
	}

	var mag [8]uint16
	laplaceMagICDF(&mag, decay)
	value := 1
	for chunks := 0; ; chunks++ {
		if chunks == MaxLaplaceChunks {
			d.SetError()
			break
		}
		v := d.DecodeICDF16(mag[:], LaplaceBits)
		value += v
		if v != laplaceChunk {
			break
		}
	}
	if s == 2 {
		return -value
	}
	return value
}
