package crc

/*------------------------------------------------------------------
 *
 * Purpose:	Validated, immutable CRC parameter set.
 *
 * 		A Configuration is the only thing a caller has to supply
 *		(directly, or indirectly via a catalogue template) to get
 *		a working Engine. Once built it never changes; Engine
 *		keeps one around for the lifetime of every copy it makes.
 *
 *------------------------------------------------------------------*/

// Configuration is an immutable CRC parameter set: width, generator
// polynomial, initial register value, input/output reflection, and the
// final XOR mask.
type Configuration struct {
	Width  uint   // bits, 1..64
	Poly   uint64 // generator polynomial, implicit x^width term omitted
	Init   uint64 // initial register value, external form
	RefIn  bool   // reflect each input byte before mixing
	RefOut bool   // reflect the final register before XorOut
	XorOut uint64 // final XOR mask
}

// NewConfiguration validates and returns a Configuration. Width and Poly
// are mandatory; Init/RefIn/RefOut/XorOut default to their zero values.
func NewConfiguration(width uint, poly uint64, init uint64, refin, refout bool, xorout uint64) (Configuration, error) {
	cfg := Configuration{
		Width:  width,
		Poly:   poly,
		Init:   init,
		RefIn:  refin,
		RefOut: refout,
		XorOut: xorout,
	}
	if err := cfg.validate(); err != nil {
		return Configuration{}, err
	}
	return cfg, nil
}

func (c Configuration) validate() error {
	if c.Width == 0 || c.Width > MaxWidth {
		return newError(WidthOutOfRange, "width %d must be in [1, %d]", c.Width, MaxWidth)
	}
	mask := bitmask(c.Width)
	if c.Poly == 0 || c.Poly > mask {
		return newError(PolyOutOfRange, "poly 0x%x must be in [1, 0x%x]", c.Poly, mask)
	}
	if c.Init > mask {
		return newError(InitOutOfRange, "init 0x%x exceeds mask 0x%x", c.Init, mask)
	}
	if c.XorOut > mask {
		return newError(XoroutOutOfRange, "xorout 0x%x exceeds mask 0x%x", c.XorOut, mask)
	}
	return nil
}

// mask returns bitmask(Width), the set of legal bit positions for any
// external value under this configuration.
func (c Configuration) mask() uint64 {
	return bitmask(c.Width)
}
