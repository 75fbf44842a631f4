package crc

/*------------------------------------------------------------------
 *
 * Purpose:	Engine-facing half of the table manager.
 *
 *		The cache storage and concurrency discipline live in
 *		internal/crccache; this file is what actually knows how
 *		to build a CRC table, and hands crccache a closure to run
 *		on a miss.
 *
 *------------------------------------------------------------------*/

import "github.com/doismellburning/crcbox/internal/crccache"

// ByteTable and WordTable are the kernel-facing aliases for the cache's
// storage types.
type (
	ByteTable = crccache.ByteTable
	WordTable = crccache.WordTable
)

func cacheKey(cfg Configuration) string {
	return crccache.Key(cfg.Width, cfg.Poly, cfg.Init, cfg.XorOut, cfg.RefIn, cfg.RefOut, HostLittleEndian())
}

// fetchByteTable returns the shared bytewise table for cfg, building it
// on first use.
func fetchByteTable(cfg Configuration, dc derivedConstants) *ByteTable {
	key := cacheKey(cfg)
	return crccache.GetOrBuildByteTable(key, func() *ByteTable {
		return buildByteTable(dc.polyInternal, cfg.RefIn)
	})
}

// fetchWordTable returns the shared wordwise table for cfg, building it
// from the given bytewise table on first use.
func fetchWordTable(cfg Configuration, byteTable *ByteTable) *WordTable {
	key := cacheKey(cfg)
	return crccache.GetOrBuildWordTable(key, func() *WordTable {
		return buildWordTable(byteTable, cfg.RefIn)
	})
}
