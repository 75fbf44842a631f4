package crc

/*------------------------------------------------------------------
 *
 * Purpose:	Externalizing the internal accumulator into a digest,
 *		and encoding that digest as bytes or hex text.
 *
 *------------------------------------------------------------------*/

import "fmt"

// finalize lifts an internalized accumulator into the external digest
// value for cfg: externalize the width, reflect if RefIn and RefOut
// disagree, then apply XorOut.
func finalize(accum uint64, cfg Configuration) uint64 {
	a := accum
	if !cfg.RefIn {
		a >>= MaxWidth - cfg.Width
	}
	if cfg.RefIn == cfg.RefOut {
		a &= bitmask(cfg.Width)
	} else {
		a = bitReverse(a, cfg.Width)
	}
	a ^= cfg.XorOut
	return a
}

// digestByteLen is ceil(width/8), the number of bytes DigestBytes emits.
func digestByteLen(width uint) int {
	return int((width + 7) / ByteWidth)
}

// digestBytes big-endian encodes digest, truncated to digestByteLen(width)
// bytes (the least significant bytes of the digest, most significant
// first).
func digestBytes(digest uint64, width uint) []byte {
	n := digestByteLen(width)
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		shift := uint(n-1-i) * ByteWidth
		out[i] = byte(digest >> shift)
	}
	return out
}

// hexNibbleLen is ceil(width/4) rounded up to an even count, the nibble
// count hexDigest renders.
func hexNibbleLen(width uint) int {
	n := int((width + 3) / 4)
	if n%2 != 0 {
		n++
	}
	return n
}

// hexDigest renders digest as lowercase hex, zero-padded to
// hexNibbleLen(width) nibbles.
func hexDigest(digest uint64, width uint) string {
	return fmt.Sprintf("%0*x", hexNibbleLen(width), digest)
}

// FormatHex renders an externally-held digest (e.g. the result of
// Engine.Combine, which returns a raw uint64 rather than an Engine) the
// same way Engine.HexDigest renders its own.
func FormatHex(digest uint64, width uint) string {
	return hexDigest(digest, width)
}
