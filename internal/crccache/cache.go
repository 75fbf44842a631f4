// Package crccache is the CRC engine's table manager.
//
// Table identity is determined by the triple (width, poly, refin) plus
// the host's byte order; tables with different RefOut or XorOut are
// identical and must be shared. The cache over-keys on the full
// configuration for simplicity: a collision by an irrelevant field
// (RefOut, XorOut) merely costs a missed sharing opportunity, never a
// correctness problem.
//
// Entries are inserted once and never evicted or mutated; callers alias
// the cached pointer read-only. Concurrent inserts for the same key are
// harmless because every builder for a given key produces a bit-identical
// table. The underlying map is github.com/puzpuzpuz/xsync's MapOf, the
// same insert-or-fetch, concurrently-read map type syncthing uses for its
// own discovery record store (cmd/stdiscosrv/database.go).
package crccache

import (
	"encoding/binary"

	"github.com/puzpuzpuz/xsync/v3"

	"github.com/doismellburning/crcbox/internal/crcmetrics"
)

// ByteTable is the 256-entry table used by the bytewise kernel.
type ByteTable [256]uint64

// WordTable is the 8x256-entry table used by the wordwise kernel.
type WordTable [8][256]uint64

var (
	byteTables = xsync.NewMapOf[string, *ByteTable]()
	wordTables = xsync.NewMapOf[string, *WordTable]()
)

// Key encodes the canonical cache key for a configuration. width/poly/init
// /xorout/refin/refout are the full configuration (over-keyed); hostLittleEndian
// folds in the "global system endianness" component of identity.
func Key(width uint, poly, init, xorout uint64, refin, refout, hostLittleEndian bool) string {
	buf := make([]byte, 0, 8+8+8+8+1+1+1)
	buf = binary.BigEndian.AppendUint64(buf, uint64(width))
	buf = binary.BigEndian.AppendUint64(buf, poly)
	buf = binary.BigEndian.AppendUint64(buf, init)
	buf = binary.BigEndian.AppendUint64(buf, xorout)
	buf = append(buf, boolByte(refin), boolByte(refout), boolByte(hostLittleEndian))
	return string(buf)
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}

// GetOrBuildByteTable fetches the cached bytewise table for key, building
// and inserting it via build if absent.
func GetOrBuildByteTable(key string, build func() *ByteTable) *ByteTable {
	t, loaded := byteTables.LoadOrCompute(key, build)
	recordByteTable(loaded)
	return t
}

// GetOrBuildWordTable fetches the cached wordwise table for key, building
// and inserting it via build if absent.
func GetOrBuildWordTable(key string, build func() *WordTable) *WordTable {
	t, loaded := wordTables.LoadOrCompute(key, build)
	recordWordTable(loaded)
	return t
}

func recordByteTable(hit bool) {
	if hit {
		crcmetrics.RecordTableCacheHit("bytewise")
		return
	}
	crcmetrics.RecordTableCacheMiss("bytewise")
}

func recordWordTable(hit bool) {
	if hit {
		crcmetrics.RecordTableCacheHit("wordwise")
		return
	}
	crcmetrics.RecordTableCacheMiss("wordwise")
}

// Size reports the number of distinct table entries currently cached, for
// diagnostics.
func Size() (byteTableCount, wordTableCount int) {
	return byteTables.Size(), wordTables.Size()
}
