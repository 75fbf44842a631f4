package crc

/*------------------------------------------------------------------
 *
 * Purpose:	Engine: the public facade wrapping a Configuration, a
 *		selected kernel Method, a running internalized
 *		accumulator and (for the table kernels) a shared
 *		read-only table.
 *
 *		Every exported method that reads or changes running state
 *		takes the engine's mutex; two goroutines sharing one
 *		Engine serialize rather than race. The accessors for
 *		parameters that never change after New read them
 *		without locking. Callers wanting concurrent throughput
 *		over one logical stream should Copy the Engine per
 *		worker and Combine the partial digests back together,
 *		not share one Engine across goroutines.
 *
 *------------------------------------------------------------------*/

import "sync"

// Engine computes a CRC digest incrementally.
type Engine struct {
	mu sync.Mutex

	cfg    Configuration
	dc     derivedConstants
	method Method

	byteTable *ByteTable
	wordTable *WordTable

	accum        uint64
	dirty        bool
	cachedDigest uint64
}

// New builds an Engine for cfg using the given kernel method. Table
// kernels build (or fetch from cache) their table eagerly, so the first
// Update never pays a surprise build cost mid-stream.
func New(cfg Configuration, method Method) (*Engine, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if method == "" {
		method = DefaultMethod
	}

	dc := deriveConstants(cfg)
	e := &Engine{
		cfg:          cfg,
		dc:           dc,
		accum:        dc.initInternal,
		cachedDigest: finalize(dc.initInternal, cfg),
	}

	switch method {
	case Bitwise:
		e.method = Bitwise
	case Bytewise:
		e.method = Bytewise
		e.byteTable = fetchByteTable(cfg, dc)
	case Wordwise:
		e.method = Wordwise
		e.byteTable = fetchByteTable(cfg, dc)
		e.wordTable = fetchWordTable(cfg, e.byteTable)
	default:
		return nil, newError(UnknownMethod, "method %q, want one of bitwise, bytewise, wordwise", method)
	}

	return e, nil
}

// NewFromTemplate builds an Engine from a catalogue template name.
func NewFromTemplate(name string, method Method) (*Engine, error) {
	cfg, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return New(cfg, method)
}

// Update advances the digest by data.
func (e *Engine) Update(data []byte) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.accum = updateBytesWith(e.accum, data, e.method, e.cfg.RefIn, e.dc.polyInternal, e.byteTable, e.wordTable)
	e.dirty = true
}

// UpdateWord advances the digest by bitWidth bits of word (bitWidth in
// [0,64]), via the bitwise kernel regardless of the engine's configured
// method: sub-byte input has no table-driven equivalent. word is not
// masked: without RefIn, bits at or above bitWidth are shifted out; with
// RefIn, they are XORed into the register along with the low bits.
func (e *Engine) UpdateWord(word uint64, bitWidth uint) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.accum = bitwiseUpdateWord(e.accum, word, bitWidth, e.dc.polyInternal, e.cfg.RefIn)
	e.dirty = true
}

// Clear resets the engine to its initial state. If init is non-nil it
// replaces the configuration's Init value (re-internalized) going
// forward; it must satisfy the same bitmask(width) bound NewConfiguration
// enforces.
func (e *Engine) Clear(init *uint64) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if init != nil {
		if *init > e.cfg.mask() {
			return newError(InitOutOfRange, "init 0x%x exceeds mask 0x%x", *init, e.cfg.mask())
		}
		e.cfg.Init = *init
		e.dc.initInternal = internalize(*init, e.cfg.Width, e.cfg.RefIn)
	}

	e.accum = e.dc.initInternal
	e.cachedDigest = finalize(e.accum, e.cfg)
	e.dirty = false
	return nil
}

// Digest returns the current digest in the configuration's external form.
func (e *Engine) Digest() uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.digestLocked()
}

func (e *Engine) digestLocked() uint64 {
	if e.dirty {
		e.cachedDigest = finalize(e.accum, e.cfg)
		e.dirty = false
	}
	return e.cachedDigest
}

// DigestBytes returns the current digest as digestByteLen(width)
// big-endian bytes.
func (e *Engine) DigestBytes() []byte {
	e.mu.Lock()
	defer e.mu.Unlock()
	return digestBytes(e.digestLocked(), e.cfg.Width)
}

// HexDigest returns the current digest as lowercase, zero-padded hex.
func (e *Engine) HexDigest() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return hexDigest(e.digestLocked(), e.cfg.Width)
}

// Copy returns an independent Engine with the same configuration, method
// and running state. The copy shares the read-only table (if any) but
// owns its own accumulator and mutex.
func (e *Engine) Copy() *Engine {
	e.mu.Lock()
	defer e.mu.Unlock()
	return &Engine{
		cfg:          e.cfg,
		dc:           e.dc,
		method:       e.method,
		byteTable:    e.byteTable,
		wordTable:    e.wordTable,
		accum:        e.accum,
		dirty:        e.dirty,
		cachedDigest: e.cachedDigest,
	}
}

// FeedZeroBytes advances the digest by n zero bytes without allocating an
// n-byte buffer.
func (e *Engine) FeedZeroBytes(n uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.accum = feedZeroBytes(e.accum, n, e.method, e.cfg.RefIn, e.dc.polyInternal, e.byteTable, e.wordTable)
	e.dirty = true
}

// FeedZeroBits advances the digest by n zero bits.
func (e *Engine) FeedZeroBits(n uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.accum = feedZeroBits(e.accum, n, e.method, e.cfg.RefIn, e.dc.polyInternal, e.byteTable, e.wordTable)
	e.dirty = true
}

// Combine computes the digest of A||B given this engine's digest of A
// (c1), another buffer's digest (c2), and len(B) in bytes. It does not
// mutate the engine or require either buffer to have been read by it;
// only the engine's Configuration and method are used.
func (e *Engine) Combine(c1, c2, len2 uint64) (uint64, error) {
	e.mu.Lock()
	cfg, dc, method, byteTable, wordTable := e.cfg, e.dc, e.method, e.byteTable, e.wordTable
	e.mu.Unlock()
	return combine(cfg, dc, method, byteTable, wordTable, c1, c2, len2)
}

// Width returns the configured CRC width in bits.
func (e *Engine) Width() uint { return e.cfg.Width }

// Poly returns the configured generator polynomial.
func (e *Engine) Poly() uint64 { return e.cfg.Poly }

// Init returns the current initial register value (possibly replaced by
// a prior Clear call).
func (e *Engine) Init() uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cfg.Init
}

// RefIn reports whether input bytes are reflected before mixing.
func (e *Engine) RefIn() bool { return e.cfg.RefIn }

// RefOut reports whether the final register is reflected before XorOut.
func (e *Engine) RefOut() bool { return e.cfg.RefOut }

// XorOut returns the configured final XOR mask.
func (e *Engine) XorOut() uint64 { return e.cfg.XorOut }

// Method reports the kernel this engine was built with.
func (e *Engine) Method() Method { return e.method }
