package crc

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngineScenarioTable(t *testing.T) {
	cases := []struct {
		name   string
		width  uint
		poly   uint64
		init   uint64
		refin  bool
		refout bool
		xorout uint64
		check  uint64
	}{
		{"crc-32/iso-hdlc", 32, 0x04C11DB7, 0xFFFFFFFF, true, true, 0xFFFFFFFF, 0xCBF43926},
		{"crc-32c/iscsi", 32, 0x1EDC6F41, 0xFFFFFFFF, true, true, 0xFFFFFFFF, 0xE3069283},
		{"crc-16/arc", 16, 0x8005, 0x0000, true, true, 0x0000, 0xBB3D},
		{"crc-16/xmodem", 16, 0x1021, 0x0000, false, false, 0x0000, 0x31C3},
		{"crc-64/xz", 64, 0x42F0E1EBA9EA3693, 0xFFFFFFFFFFFFFFFF, true, true, 0xFFFFFFFFFFFFFFFF, 0x995DC9BBDF1939FA},
		{"crc-8/smbus", 8, 0x07, 0x00, false, false, 0x00, 0xF4},
		{"crc-3/gsm", 3, 0x3, 0x0, false, false, 0x7, 0x4},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := NewConfiguration(tc.width, tc.poly, tc.init, tc.refin, tc.refout, tc.xorout)
			require.NoError(t, err)

			for _, method := range []Method{Bitwise, Bytewise, Wordwise} {
				e, err := New(cfg, method)
				require.NoError(t, err)

				e.Update([]byte("123456789"))
				assert.Equal(t, tc.check, e.Digest(), "method %s", method)
			}
		})
	}
}

func TestEngineClearWithoutInitOverride(t *testing.T) {
	e, err := New(mustLookup(t, "crc-32"), Wordwise)
	require.NoError(t, err)

	e.Update([]byte("123456789"))
	require.NoError(t, e.Clear(nil))

	assert.Equal(t, uint64(0), e.Digest())
}

func TestEngineClearWithInitOverride(t *testing.T) {
	e, err := New(mustLookup(t, "crc-32"), Wordwise)
	require.NoError(t, err)

	e.Update([]byte("whatever"))

	newInit := uint64(0xFFFFFFFF)
	require.NoError(t, e.Clear(&newInit))
	e.Update([]byte("123456789"))

	assert.Equal(t, uint64(0xCBF43926), e.Digest())
}

func TestEngineClearInitOutOfRange(t *testing.T) {
	e, err := New(mustLookup(t, "crc-8-smbus"), Wordwise)
	require.NoError(t, err)

	bad := uint64(0x100)
	err = e.Clear(&bad)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInitOutOfRange)
}

func TestEngineCopyIsIndependent(t *testing.T) {
	e, err := New(mustLookup(t, "crc-32"), Wordwise)
	require.NoError(t, err)
	e.Update([]byte("123"))

	cp := e.Copy()
	cp.Update([]byte("456"))

	e.Update([]byte("456"))

	assert.Equal(t, e.Digest(), cp.Digest())

	cp.Update([]byte("789"))
	assert.NotEqual(t, e.Digest(), cp.Digest())
}

func TestEngineEmptyInputDigestsToZero(t *testing.T) {
	for _, method := range []Method{Bitwise, Bytewise, Wordwise} {
		e, err := New(mustLookup(t, "crc-32"), method)
		require.NoError(t, err)

		e.Update(nil)
		assert.Equal(t, uint64(0), e.Digest(), "method %s", method)
		assert.Equal(t, "00000000", e.HexDigest(), "method %s", method)
	}
}

func TestEngineDigestBytesAndHex(t *testing.T) {
	e, err := New(mustLookup(t, "crc-32"), Wordwise)
	require.NoError(t, err)
	e.Update([]byte("123456789"))

	assert.Equal(t, []byte{0xCB, 0xF4, 0x39, 0x26}, e.DigestBytes())
	assert.Equal(t, "cbf43926", e.HexDigest())
}

func TestEngineUpdateWordByteAtATime(t *testing.T) {
	// Feeding "123456789" a byte at a time via UpdateWord(b, 8) must
	// match feeding it through Update.
	cfg := mustLookup(t, "crc-32")

	viaUpdate, err := New(cfg, Wordwise)
	require.NoError(t, err)
	viaUpdate.Update([]byte("123456789"))

	viaWord, err := New(cfg, Wordwise)
	require.NoError(t, err)
	for _, b := range []byte("123456789") {
		viaWord.UpdateWord(uint64(b), ByteWidth)
	}

	assert.Equal(t, viaUpdate.Digest(), viaWord.Digest())
}

func TestEngineAcceptsConcurrentUseViaCopy(t *testing.T) {
	base, err := New(mustLookup(t, "crc-32"), Wordwise)
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]uint64, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			e := base.Copy()
			e.Update([]byte("123456789"))
			results[i] = e.Digest()
		}(i)
	}
	wg.Wait()

	for _, r := range results {
		assert.Equal(t, uint64(0xCBF43926), r)
	}
}

func TestEngineAccessors(t *testing.T) {
	e, err := New(mustLookup(t, "crc-16-xmodem"), Bytewise)
	require.NoError(t, err)

	assert.Equal(t, uint(16), e.Width())
	assert.Equal(t, uint64(0x1021), e.Poly())
	assert.Equal(t, uint64(0), e.Init())
	assert.False(t, e.RefIn())
	assert.False(t, e.RefOut())
	assert.Equal(t, uint64(0), e.XorOut())
	assert.Equal(t, Bytewise, e.Method())
}

func TestNewFromTemplateUnknown(t *testing.T) {
	_, err := NewFromTemplate("not-a-real-template", Wordwise)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownTemplate)
}

func TestNewUnknownMethod(t *testing.T) {
	_, err := New(mustLookup(t, "crc-32"), Method("nibblewise"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownMethod)
}
