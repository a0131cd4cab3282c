// Package rangecoding implements the range coder used by Opus per RFC 6716
// Section 4.1, together with the Laplace-p0 symbol model that DRED uses to
// code quantized latents.
package rangecoding

// Constants from RFC 6716 Section 4.1 and libopus celt/mfrngcod.h.
const (
	EC_SYM_BITS   = 8                                // Bits output at a time
	EC_CODE_BITS  = 32                               // Total state register bits
	EC_SYM_MAX    = (1 << EC_SYM_BITS) - 1           // 255
	EC_CODE_TOP   = 1 << (EC_CODE_BITS - 1)          // 0x80000000
	EC_CODE_BOT   = EC_CODE_TOP >> EC_SYM_BITS       // 0x00800000
	EC_CODE_SHIFT = EC_CODE_BITS - EC_SYM_BITS - 1   // 23
	EC_CODE_EXTRA = (EC_CODE_BITS-2)%EC_SYM_BITS + 1 // 7
)

// MaxUniform is the largest alphabet EncodeUniform codes directly. The
// range never drops below EC_CODE_BOT, so every value keeps at least 2^7
// units of range.
const MaxUniform = 1 << 16
