package block

import "github.com/deepteams/s2tc/internal/color"

// packColorBits packs 16 2-bit indices into the 4-byte little-endian bit
// field used by every DXT mode's color half (spec §4.5): index i occupies
// bits [2i, 2i+2).
func packColorBits(indices [16]uint8) [4]byte {
	var bits uint32
	for i, idx := range indices {
		bits |= uint32(idx&0x3) << uint(2*i)
	}
	var out [4]byte
	out[0] = byte(bits)
	out[1] = byte(bits >> 8)
	out[2] = byte(bits >> 16)
	out[3] = byte(bits >> 24)
	return out
}

// packAlpha3Bits packs 16 3-bit indices into the 6-byte little-endian bit
// field used by DXT5 alpha (spec §3): index i occupies bits [3i, 3i+3).
func packAlpha3Bits(indices [16]uint8) [6]byte {
	var bits uint64
	for i, idx := range indices {
		bits |= uint64(idx&0x7) << uint(3*i)
	}
	var out [6]byte
	for i := range out {
		out[i] = byte(bits >> uint(8*i))
	}
	return out
}

// PackDXT1 emits the 8-byte DXT1 block for already-canonicalized endpoints
// and indices.
func PackDXT1(c0, c1 color.Color, indices [16]uint8) [8]byte {
	var out [8]byte
	out[0], out[1] = c0.Pack565()
	out[2], out[3] = c1.Pack565()
	bits := packColorBits(indices)
	copy(out[4:8], bits[:])
	return out
}

// PackDXT3 emits the 16-byte DXT3 block: 8 bytes of direct 4-bit alpha
// (low nibble = pixel 0) followed by the DXT1-style color half.
func PackDXT3(c0, c1 color.Color, colorIndices [16]uint8, alpha [16]uint8) [16]byte {
	var out [16]byte
	for i := 0; i < 16; i += 2 {
		lo := alpha[i] >> 4
		hi := alpha[i+1] >> 4
		out[i/2] = lo | (hi << 4)
	}
	out[8], out[9] = c0.Pack565()
	out[10], out[11] = c1.Pack565()
	bits := packColorBits(colorIndices)
	copy(out[12:16], bits[:])
	return out
}

// PackDXT5 emits the 16-byte DXT5 block: alpha endpoints, 48-bit 3-bit
// alpha index field, then the DXT1-style color half.
func PackDXT5(a0, a1 uint8, alphaIndices [16]uint8, c0, c1 color.Color, colorIndices [16]uint8) [16]byte {
	var out [16]byte
	out[0] = a0
	out[1] = a1
	abits := packAlpha3Bits(alphaIndices)
	copy(out[2:8], abits[:])
	out[8], out[9] = c0.Pack565()
	out[10], out[11] = c1.Pack565()
	cbits := packColorBits(colorIndices)
	copy(out[12:16], cbits[:])
	return out
}
