package crc

/*------------------------------------------------------------------
 *
 * Purpose:	The internalized state representation.
 *
 * 		All reflected configurations are bit-reversed and kept in
 *		the low bits; all non-reflected configurations are
 *		left-aligned into the high bits of a 64-bit word. Every
 *		kernel operates purely on this internal form, which is
 *		why none of them branch on width or RefIn per byte.
 *
 *------------------------------------------------------------------*/

// internalize converts an external (user-visible) width-w value into its
// internalized 64-bit form for the given RefIn orientation.
func internalize(v uint64, width uint, refin bool) uint64 {
	if refin {
		return bitReverse(v, width)
	}
	return v << (MaxWidth - width)
}

// externalize is the inverse of internalize.
func externalize(v uint64, width uint, refin bool) uint64 {
	if refin {
		// bit_reverse is an involution across width bits.
		return bitReverse(v, width)
	}
	return v >> (MaxWidth - width)
}

// derivedConstants are the internalized values computed once from a
// Configuration: the running accumulator's starting point and the
// internalized polynomial used by every kernel.
type derivedConstants struct {
	initInternal uint64
	polyInternal uint64
}

func deriveConstants(cfg Configuration) derivedConstants {
	return derivedConstants{
		initInternal: internalize(cfg.Init, cfg.Width, cfg.RefIn),
		polyInternal: internalize(cfg.Poly, cfg.Width, cfg.RefIn),
	}
}
