// Package transcode rewrites an arbitrary legal S3TC block into one that
// uses only the S2TC-conformant codepoints (spec §4.6): branch-free
// bit-parallel masking on the block's index word, grounded on
// original_source/s2tc_from_s3tc.cpp's convert_dxt1/convert_dxt1a/
// convert_dxt5.
package transcode

import "github.com/deepteams/s2tc/internal/block"

// collapseColorIndices collapses the 2-bit color index word's codepoints 2
// and 3 (when transparency is not in use) into 0 or 1 (spec §4.6's mapping
// table): 10 and 11 each become 00 or 01, depending on the pixel's position
// in the 0x22882288 pattern.
func collapseColorIndices(pixels uint32) uint32 {
	return (pixels & ((^pixels & 0xAAAAAAAA) >> 1)) | ((pixels & 0x22882288) >> 1)
}

// preserveTransparentIndices collapses only codepoint 2 (10 -> 00 or 01),
// leaving codepoint 3 (transparency) untouched, for DXT1 blocks whose
// transparency mode is in use.
func preserveTransparentIndices(pixels uint32) uint32 {
	return (pixels &^ ((^pixels & 0x55555555) << 1)) | ((pixels & 0x22882288) >> 1)
}

// transcodeColorHalf rewrites a DXT1-layout 8-byte color block in place.
// preserveTransparency selects whether codepoint 3 carries punch-through
// transparency (true: real DXT1 blocks, mirroring convert_dxt1a) or has no
// special meaning (false: the color half embedded in DXT3/DXT5, mirroring
// convert_dxt1, where §4.4's DXT3/DXT5 canonical order applies instead of
// DXT1's transparency-aware order). In DXT1 mode a block with c0 > c1 is
// collapsed, then swapped and inverted so it ends in c0 < c1 order, and a
// block with c0 <= c1 keeps its order. In DXT3/DXT5 mode the swap+invert
// runs when c1 >= c0, so a block with distinct endpoints ends in c0 > c1
// order.
func transcodeColorHalf(buf []byte, preserveTransparency bool) {
	c := uint32(buf[0]) | uint32(buf[1])<<8
	c1 := uint32(buf[2]) | uint32(buf[3])<<8
	pixels := uint32(buf[4]) | uint32(buf[5])<<8 | uint32(buf[6])<<16 | uint32(buf[7])<<24

	if preserveTransparency {
		if c1 >= c {
			pixels = preserveTransparentIndices(pixels)
		} else {
			pixels = collapseColorIndices(pixels)
			c, c1 = c1, c
			pixels ^= 0x55555555
		}
	} else {
		pixels = collapseColorIndices(pixels)
		if c1 >= c {
			c, c1 = c1, c
			pixels ^= 0x55555555
		}
	}

	buf[0], buf[1] = byte(c), byte(c>>8)
	buf[2], buf[3] = byte(c1), byte(c1>>8)
	buf[4], buf[5], buf[6], buf[7] = byte(pixels), byte(pixels>>8), byte(pixels>>16), byte(pixels>>24)
}

const (
	alphaMask1 = 0o1111111111111111
	alphaMask2 = 0o0101010101010101
)

// transcodeAlpha rewrites a DXT5 block's 8-byte alpha half (endpoints +
// 48-bit 3-bit index word) in place, collapsing the interpolated indices
// 2-5 into 0 or 1 and leaving the 0/255 sentinels (6, 7) untouched.
func transcodeAlpha(buf []byte) {
	a := uint64(buf[0])
	a1 := uint64(buf[1])
	pixels := uint64(buf[2]) | uint64(buf[3])<<8 | uint64(buf[4])<<16 | uint64(buf[5])<<24 | uint64(buf[6])<<32 | uint64(buf[7])<<40

	if a1 >= a {
		xorBits := (pixels >> 1) ^ (pixels >> 2)
		pixels = (pixels &^ ((xorBits & alphaMask1) * 7)) | (xorBits & alphaMask2)
	} else {
		orBits := (pixels >> 1) | (pixels >> 2)
		pixels = (pixels &^ ((orBits & alphaMask1) * 7)) | (orBits & alphaMask2)
		a, a1 = a1, a
		pixels ^= alphaMask1
	}

	buf[0], buf[1] = byte(a), byte(a1)
	buf[2] = byte(pixels)
	buf[3] = byte(pixels >> 8)
	buf[4] = byte(pixels >> 16)
	buf[5] = byte(pixels >> 24)
	buf[6] = byte(pixels >> 32)
	buf[7] = byte(pixels >> 40)
}

// Block rewrites one packed block of the given mode to S2TC conformance
// in place, matching the block's existing byte length
// (block.DxtMode.BlockSize()).
func Block(mode block.DxtMode, buf []byte) {
	switch mode {
	case block.DXT1:
		transcodeColorHalf(buf[:8], true)
	case block.DXT3:
		transcodeColorHalf(buf[8:16], false)
	case block.DXT5:
		transcodeAlpha(buf[:8])
		transcodeColorHalf(buf[8:16], false)
	}
}
