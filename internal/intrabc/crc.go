// Package intrabc builds the block hash tables and mesh search settings
// used by intra block copy. Every block from 2x2 up to a configured size
// is hashed with two independent CRC-24 functions so that candidate
// source blocks can be found by lookup instead of search.
package intrabc

// CRC-24 generator polynomials of the two block hash functions.
const (
	Poly1 = 0x5D6DCB
	Poly2 = 0x864CFB
)

// CRC is a table-driven MSB-first CRC with zero initial remainder.
// Its table is immutable after NewCRC, so Sum is safe for concurrent use.
type CRC struct {
	bits  uint
	mask  uint32
	table [256]uint32
}

// NewCRC returns a calculator of the given width (8..32 bits) for the
// truncated polynomial poly.
func NewCRC(bits uint, poly uint32) *CRC {
	if bits < 8 || bits > 32 {
		panic("intrabc: crc width out of range")
	}
	c := &CRC{bits: bits, mask: uint32(1<<bits - 1)}
	high := uint32(1) << (bits - 1)
	for v := uint32(0); v < 256; v++ {
		var rem uint32
		for m := uint32(0x80); m != 0; m >>= 1 {
			if v&m != 0 {
				rem ^= high
			}
			if rem&high != 0 {
				rem = rem<<1 ^ poly
			} else {
				rem <<= 1
			}
		}
		c.table[v] = rem
	}
	return c
}

// Sum returns the CRC of p.
func (c *CRC) Sum(p []byte) uint32 {
	var rem uint32
	for _, b := range p {
		idx := uint8(rem>>(c.bits-8)) ^ b
		rem = rem<<8 ^ c.table[idx]
	}
	return rem & c.mask
}

// crcs are the primary and secondary block hash functions.
var crcs = [2]*CRC{NewCRC(24, Poly1), NewCRC(24, Poly2)}
