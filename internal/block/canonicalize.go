package block

import "github.com/deepteams/s2tc/internal/color"

// CanonicalizeDXT1Color enforces spec §3's DXT1 color-order invariant
// (c0 >= c1 unless the block has a transparent pixel, in which case
// c0 < c1) and §4.4's index remap: swapping flips index 0<->1 and leaves
// the reserved indices 2 and 3 untouched, since only those two carry
// meaning relative to endpoint order.
func CanonicalizeDXT1Color(c0, c1 color.Color, indices [16]uint8, haveTrans bool) (color.Color, color.Color, [16]uint8) {
	if c0.Equal(c1) {
		return forceConstantColor(c0, indices)
	}
	var violated bool
	if haveTrans {
		violated = !c0.Less(c1) // want c0 < c1
	} else {
		violated = c0.Less(c1) // want c0 >= c1
	}
	if !violated {
		return c0, c1, indices
	}
	c0, c1 = c1, c0
	for i := range indices {
		switch indices[i] {
		case ColorIdx0:
			indices[i] = ColorIdx1
		case ColorIdx1:
			indices[i] = ColorIdx0
		}
	}
	return c0, c1, indices
}

// CanonicalizeDXTColor enforces the DXT3/DXT5 color-order invariant
// (c1 <= c0, unconditionally) with an unconditional 0<->1 index swap on
// violation, since the DXT3/DXT5 color half never uses the reserved
// indices 2/3 (spec §4.4).
func CanonicalizeDXTColor(c0, c1 color.Color, indices [16]uint8) (color.Color, color.Color, [16]uint8) {
	if c0.Equal(c1) {
		return forceConstantColor(c0, indices)
	}
	if !c1.Less(c0) {
		c0, c1 = c1, c0
		for i := range indices {
			indices[i] ^= 1
		}
	}
	return c0, c1, indices
}

// forceConstantColor implements the constant-tile degeneracy rule of
// spec §4.5: equal endpoints force index 0 everywhere.
func forceConstantColor(c color.Color, indices [16]uint8) (color.Color, color.Color, [16]uint8) {
	for i := range indices {
		if indices[i] != ColorIdxTransparent {
			indices[i] = ColorIdx0
		}
	}
	return c, c, indices
}

// CanonicalizeDXT5Alpha enforces spec §3's DXT5 alpha-order invariant
// (a0 <= a1, selecting the 6-entry ramp with 0/255 sentinels) with a
// 0<->1 index swap on violation; sentinel indices 6 and 7 are untouched.
func CanonicalizeDXT5Alpha(a0, a1 uint8, indices [16]uint8) (uint8, uint8, [16]uint8) {
	if a0 <= a1 {
		return a0, a1, indices
	}
	a0, a1 = a1, a0
	for i := range indices {
		switch indices[i] {
		case AlphaIdx0:
			indices[i] = AlphaIdx1
		case AlphaIdx1:
			indices[i] = AlphaIdx0
		}
	}
	return a0, a1, indices
}
