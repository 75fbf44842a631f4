package crccache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyDistinguishesWidthPolyRefin(t *testing.T) {
	k1 := Key(32, 0x04C11DB7, 0, 0, true, true, true)
	k2 := Key(32, 0x1EDC6F41, 0, 0, true, true, true)
	k3 := Key(16, 0x04C11DB7, 0, 0, true, true, true)
	k4 := Key(32, 0x04C11DB7, 0, 0, false, true, true)

	assert.NotEqual(t, k1, k2)
	assert.NotEqual(t, k1, k3)
	assert.NotEqual(t, k1, k4)
}

func TestKeyStableForIdenticalInputs(t *testing.T) {
	a := Key(32, 0x04C11DB7, 0xFFFFFFFF, 0xFFFFFFFF, true, true, true)
	b := Key(32, 0x04C11DB7, 0xFFFFFFFF, 0xFFFFFFFF, true, true, true)
	assert.Equal(t, a, b)
}

func TestGetOrBuildByteTableSharesOnSecondCall(t *testing.T) {
	builds := 0
	build := func() *ByteTable {
		builds++
		var t ByteTable
		t[1] = 0xABCD
		return &t
	}

	key := Key(8, 0x07, 0, 0, false, false, true)
	first := GetOrBuildByteTable(key, build)
	second := GetOrBuildByteTable(key, build)

	assert.Same(t, first, second)
	assert.Equal(t, 1, builds)
}

func TestGetOrBuildWordTableSharesOnSecondCall(t *testing.T) {
	builds := 0
	build := func() *WordTable {
		builds++
		return &WordTable{}
	}

	key := Key(8, 0x1D, 0, 0, false, false, true)
	first := GetOrBuildWordTable(key, build)
	second := GetOrBuildWordTable(key, build)

	assert.Same(t, first, second)
	assert.Equal(t, 1, builds)
}

func TestSizeReflectsCachedEntries(t *testing.T) {
	before, _ := Size()

	GetOrBuildByteTable(Key(8, 0x31, 0, 0, false, false, true), func() *ByteTable {
		return &ByteTable{}
	})

	after, _ := Size()
	assert.GreaterOrEqual(t, after, before)
}
