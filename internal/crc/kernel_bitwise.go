package crc

/*------------------------------------------------------------------
 *
 * Purpose:	Reference bitwise CRC kernel.
 *
 * 		The slowest of the three kernels and the only one with no
 *		precomputed table, so it also serves as the seed used to
 *		build the byte table: bitwiseUpdateByte(0, i, ...) for
 *		every i in [0,256) is exactly the byte-table's i'th entry.
 *
 *------------------------------------------------------------------*/

// bitwiseUpdateByte runs the reference per-bit update over a single byte
// b, starting from accumulator accum.
func bitwiseUpdateByte(accum uint64, b byte, polyInternal uint64, refin bool) uint64 {
	if refin {
		accum ^= uint64(b)
		for i := 0; i < ByteWidth; i++ {
			if accum&1 != 0 {
				accum = (accum >> 1) ^ polyInternal
			} else {
				accum >>= 1
			}
		}
		return accum
	}

	accum ^= uint64(b) << (MaxWidth - ByteWidth)
	for i := 0; i < ByteWidth; i++ {
		if accum&(uint64(1)<<(MaxWidth-1)) != 0 {
			accum = (accum << 1) ^ polyInternal
		} else {
			accum <<= 1
		}
	}
	return accum
}

// bitwiseUpdateBytes runs bitwiseUpdateByte over every byte of data.
func bitwiseUpdateBytes(accum uint64, data []byte, polyInternal uint64, refin bool) uint64 {
	for _, b := range data {
		accum = bitwiseUpdateByte(accum, b, polyInternal, refin)
	}
	return accum
}

// bitwiseUpdateWord repeats the same shift-xor step k times over the low
// k bits of word (k in [0,64]). k==0 with a zero word is a no-op. This
// function does not mask word: in the non-reflected orientation bits
// above bit k-1 are shifted out, but in the reflected orientation the
// whole word is XORed into accum, so any bits at or above k change the
// result.
func bitwiseUpdateWord(accum uint64, word uint64, k uint, polyInternal uint64, refin bool) uint64 {
	if refin {
		accum ^= word
		for i := uint(0); i < k; i++ {
			if accum&1 != 0 {
				accum = (accum >> 1) ^ polyInternal
			} else {
				accum >>= 1
			}
		}
		return accum
	}

	if k > 0 {
		accum ^= word << (MaxWidth - k)
	}
	for i := uint(0); i < k; i++ {
		if accum&(uint64(1)<<(MaxWidth-1)) != 0 {
			accum = (accum << 1) ^ polyInternal
		} else {
			accum <<= 1
		}
	}
	return accum
}
