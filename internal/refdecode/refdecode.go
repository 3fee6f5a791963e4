// Package refdecode implements the companion reference decoder used only
// by tests (spec §6): fetch_2d_texel_{rgb,rgba}_dxt{1,3,5}, each decoding
// one texel from a packed block array.
//
// The DXT1 fetch is grounded on
// original_source/s2tc_libtxc_dxtn.c's fetch_2d_texel_{rgb,rgba}_dxt1,
// including its pseudo-random either-endpoint resolution of any
// interpolated codepoint (spec §6: "the reference implementation uses a
// 1-bit PRNG"). The DXT3 and DXT5 fetch functions are stubbed `// TODO` in
// that same original source file, so they are authored here directly from
// the block layouts in spec §3 (standard S3TC linear interpolation; spec
// §6's pseudo-random rule is stated only for DXT1).
package refdecode

import "github.com/deepteams/s2tc/internal/prng"

// Texel is one decoded RGBA8 sample.
type Texel struct {
	R, G, B, A uint8
}

func blockOffset(rowStrideInPixels, i, j, blockSize int) int {
	blocksPerRow := (rowStrideInPixels + 3) / 4
	blockIndex := blocksPerRow*(j/4) + (i / 4)
	return blockIndex * blockSize
}

func unpack565(c uint32) (r, g, b uint8) {
	r5, g6, b5 := (c>>11)&0x1F, (c>>5)&0x3F, c&0x1F
	r = uint8(r5<<3 | r5>>2)
	g = uint8(g6<<2 | g6>>4)
	b = uint8(b5<<3 | b5>>2)
	return
}

// FetchRGBDXT1 decodes texel (i,j) from a DXT1 block array, ignoring
// transparency (the RGB-only variant; matches fetch_2d_texel_rgb_dxt1).
func FetchRGBDXT1(rowStrideInPixels int, blockData []byte, i, j int, rng *prng.Source) Texel {
	t, _ := fetchDXT1(rowStrideInPixels, blockData, i, j, rng)
	return t
}

// FetchRGBADXT1 decodes texel (i,j) from a DXT1 block array, including the
// punch-through transparency codepoint (matches fetch_2d_texel_rgba_dxt1).
func FetchRGBADXT1(rowStrideInPixels int, blockData []byte, i, j int, rng *prng.Source) Texel {
	return fetchRGBADXT1(rowStrideInPixels, blockData, i, j, rng)
}

func fetchDXT1(rowStrideInPixels int, blockData []byte, i, j int, rng *prng.Source) (Texel, bool) {
	off := blockOffset(rowStrideInPixels, i, j, 8)
	blk := blockData[off : off+8]
	c := uint32(blk[0]) | uint32(blk[1])<<8
	c1 := uint32(blk[2]) | uint32(blk[3])<<8
	idx := (blk[4+(j%4)] >> uint(2*(i%4))) & 0x3

	transparent := false
	switch idx {
	case 0:
	case 1:
		c = c1
	case 3:
		if c1 > c {
			c = 0
			transparent = true
			break
		}
		fallthrough
	default:
		if rng.Bit() == 1 {
			c = c1
		}
	}

	r, g, b := unpack565(c)
	return Texel{R: r, G: g, B: b, A: 255}, transparent
}

func fetchRGBADXT1(rowStrideInPixels int, blockData []byte, i, j int, rng *prng.Source) Texel {
	t, transparent := fetchDXT1(rowStrideInPixels, blockData, i, j, rng)
	if transparent {
		t.A = 0
	}
	return t
}

// FetchRGBADXT3 decodes texel (i,j) from a DXT3 block array: direct 4-bit
// alpha (low nibble = even pixel), expanded to 8 bits by replication
// (0..15 -> 0..255), plus the DXT1-style color half (no transparency
// concept in DXT3/DXT5's color plane).
func FetchRGBADXT3(rowStrideInPixels int, blockData []byte, i, j int, rng *prng.Source) Texel {
	off := blockOffset(rowStrideInPixels, i, j, 16)
	blk := blockData[off : off+16]

	slot := (j%4)*4 + (i % 4)
	nibbleByte := blk[slot/2]
	var a4 uint8
	if slot%2 == 0 {
		a4 = nibbleByte & 0x0F
	} else {
		a4 = nibbleByte >> 4
	}

	t := fetchColorNoTransparency(blk[8:16], i, j, rng)
	t.A = a4 * 17
	return t
}

// FetchRGBADXT5 decodes texel (i,j) from a DXT5 block array: the 3-bit
// indexed alpha ramp (6- or 8-entry form per spec §3) plus the DXT1-style
// color half.
func FetchRGBADXT5(rowStrideInPixels int, blockData []byte, i, j int, rng *prng.Source) Texel {
	off := blockOffset(rowStrideInPixels, i, j, 16)
	blk := blockData[off : off+16]

	a0, a1 := blk[0], blk[1]
	pixels := uint64(blk[2]) | uint64(blk[3])<<8 | uint64(blk[4])<<16 | uint64(blk[5])<<24 | uint64(blk[6])<<32 | uint64(blk[7])<<40
	slot := (j%4)*4 + (i % 4)
	idx := (pixels >> uint(3*slot)) & 0x7

	alpha := alphaRampValue(a0, a1, int(idx))

	t := fetchColorNoTransparency(blk[8:16], i, j, rng)
	t.A = alpha
	return t
}

// alphaRampValue reconstructs one of the 8 DXT5 alpha codepoints.
func alphaRampValue(a0, a1 byte, idx int) uint8 {
	if idx == 0 {
		return a0
	}
	if idx == 1 {
		return a1
	}
	ia0, ia1 := int(a0), int(a1)
	if ia0 > ia1 {
		weights := [8][2]int{{}, {}, {6, 1}, {5, 2}, {4, 3}, {3, 4}, {2, 5}, {1, 6}}
		w := weights[idx]
		return uint8((ia0*w[0] + ia1*w[1] + 3) / 7)
	}
	switch idx {
	case 6:
		return 0
	case 7:
		return 255
	default:
		weights := [6][2]int{{}, {}, {4, 1}, {3, 2}, {2, 3}, {1, 4}}
		w := weights[idx]
		return uint8((ia0*w[0] + ia1*w[1] + 2) / 5)
	}
}

// fetchColorNoTransparency decodes the color half of a DXT3/DXT5 block
// (standard S3TC linear interpolation; no index 3 special-case since this
// plane never carries transparency).
func fetchColorNoTransparency(blk []byte, i, j int, rng *prng.Source) Texel {
	c := uint32(blk[0]) | uint32(blk[1])<<8
	c1 := uint32(blk[2]) | uint32(blk[3])<<8
	idx := (blk[4+(j%4)] >> uint(2*(i%4))) & 0x3

	r0, g0, b0 := unpack565(c)
	r1, g1, b1 := unpack565(c1)

	var r, g, b uint8
	switch idx {
	case 0:
		r, g, b = r0, g0, b0
	case 1:
		r, g, b = r1, g1, b1
	case 2:
		r = uint8((2*int(r0) + int(r1) + 1) / 3)
		g = uint8((2*int(g0) + int(g1) + 1) / 3)
		b = uint8((2*int(b0) + int(b1) + 1) / 3)
	default:
		r = uint8((int(r0) + 2*int(r1) + 1) / 3)
		g = uint8((int(g0) + 2*int(g1) + 1) / 3)
		b = uint8((int(b0) + 2*int(b1) + 1) / 3)
	}
	_ = rng
	return Texel{R: r, G: g, B: b, A: 255}
}
