package crc

/*------------------------------------------------------------------
 *
 * Purpose:	Combine: given the digests of two buffers A and B and
 *		len(B), compute the digest of A||B without rereading A.
 *
 *		Works by undoing finalization on both digests back to
 *		internalized accumulators, feeding len(B) zero bytes
 *		through c1's accumulator (which is GF(2)-linear in the
 *		accumulator once init's contribution is removed), then
 *		XORing in c2's own internalized accumulator and
 *		finalizing once.
 *
 *------------------------------------------------------------------*/

func combine(cfg Configuration, dc derivedConstants, method Method, byteTable *ByteTable, wordTable *WordTable, c1, c2, len2 uint64) (uint64, error) {
	mask := cfg.mask()
	if c1 > mask || c2 > mask {
		return 0, newError(ValueOutOfRange, "combine inputs must be within bitmask(width)=0x%x", mask)
	}

	undo := func(c uint64) uint64 {
		c ^= cfg.XorOut
		if cfg.RefOut {
			c = bitReverse(c, cfg.Width)
		}
		return c
	}

	c1p := undo(c1)
	c2p := undo(c2)

	tempAccum := internalize(c1p, cfg.Width, cfg.RefIn) ^ dc.initInternal
	tempAccum = feedZeroBytes(tempAccum, len2, method, cfg.RefIn, dc.polyInternal, byteTable, wordTable)

	accum2 := internalize(c2p, cfg.Width, cfg.RefIn)

	return finalize(tempAccum^accum2, cfg), nil
}
