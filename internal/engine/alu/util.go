package alu

import "encoding/binary"

// le16 encodes a 128-bit value, given as little-endian 64-bit halves, into
// 16 bytes for the GDP ("destination pointer") write path: every result
// wider than 8 bytes in this core is exactly 16 bytes and is written with
// a byte copy rather than a scalar store.
func le16(lo, hi uint64) []byte {
	var b [16]byte
	binary.LittleEndian.PutUint64(b[0:8], lo)
	binary.LittleEndian.PutUint64(b[8:16], hi)
	return b[:]
}
