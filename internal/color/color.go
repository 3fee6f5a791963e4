// Package color implements the quantized R5G6B5 color type, its unbounded
// "wide" counterpart used for centroid accumulation, and the seven
// perceptual distance metrics used by the endpoint selector and pixel
// assigner.
package color

// Color is a quantized 5:6:5 color: R and B in [0,31], G in [0,63].
type Color struct {
	R, G, B int
}

// Equal reports whether c and o have identical channels.
func (c Color) Equal(o Color) bool {
	return c.R == o.R && c.G == o.G && c.B == o.B
}

// Less implements the strict lexicographic order over (r,g,b) used only to
// canonicalize endpoint order in the packed block (spec §3).
func (c Color) Less(o Color) bool {
	if c.R != o.R {
		return c.R < o.R
	}
	if c.G != o.G {
		return c.G < o.G
	}
	return c.B < o.B
}

// FromRGB8 quantizes 8-bit channels to R5G6B5 by truncation (no dithering;
// dithering happens once per image in package dither before tiling).
func FromRGB8(r, g, b uint8) Color {
	return Color{R: int(r) >> 3, G: int(g) >> 2, B: int(b) >> 3}
}

// Pack565 returns the 16-bit R5G6B5 code for c, low byte first as the two
// bytes that land directly in a block's endpoint fields:
//
//	byte_lo = ((g & 0x07) << 5) | b
//	byte_hi = (r << 3) | (g >> 3)
func (c Color) Pack565() (lo, hi byte) {
	lo = byte(((c.G & 0x07) << 5) | c.B)
	hi = byte((c.R << 3) | (c.G >> 3))
	return lo, hi
}

// Wide is an unbounded-range color used transiently for centroid sums: up
// to 16 contributions, possibly squared under the SRGB/SRGB_MIXED encode
// transform (spec §4.1).
type Wide struct {
	R, G, B int
}

// Add accumulates the encode-transformed contribution of c under t.
func (w Wide) Add(c Color, t Transform) Wide {
	return Wide{R: w.R + t.Encode(c.R), G: w.G + t.Encode(c.G), B: w.B + t.Encode(c.B)}
}

// roundDiv implements the centroid rounding rule from spec §4.3:
// (2*S + n) / (2*n), i.e. round-half-up of S/n.
func roundDiv(s, n int) int {
	if n == 0 {
		return 0
	}
	return (2*s + n) / (2 * n)
}

// Centroid returns the decoded mean of n samples summed in w under t,
// clamped to the legal R5G6B5 range.
func (w Wide) Centroid(n int, t Transform) Color {
	if n == 0 {
		return Color{}
	}
	return Color{
		R: clamp(t.Decode(w.R, n), 0, 31),
		G: clamp(t.Decode(w.G, n), 0, 63),
		B: clamp(t.Decode(w.B, n), 0, 31),
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Transform's Encode and Decode implement the per-metric refinement
// transform from spec §4.1: SRGB and SRGB_MIXED require centroids computed
// in squared-component space; all other metrics use the identity.
type Transform struct {
	Encode func(v int) int
	Decode func(sum, n int) int
}

// identityTransform sums raw channel values; Decode applies the standard
// round-half-up centroid rule.
var identityTransform = Transform{
	Encode: func(v int) int { return v },
	Decode: roundDiv,
}

// squaredTransform sums squared channel values and decodes via integer
// square root with round-to-nearest, matching the source's
// encode(c)=c^2, decode(x)=round(sqrt(x)) refinement rule for SRGB metrics.
var squaredTransform = Transform{
	Encode: func(v int) int { return v * v },
	Decode: func(sum, n int) int {
		if n == 0 {
			return 0
		}
		mean := roundDiv(sum, n)
		return isqrtRound(mean)
	},
}

// isqrtRound returns round(sqrt(v)) for v >= 0 using integer search from an
// initial floor-sqrt estimate.
func isqrtRound(v int) int {
	if v <= 0 {
		return 0
	}
	r := isqrtFloor(v)
	// round to nearest: compare v against the midpoint of r^2 and (r+1)^2
	if v-r*r > (r+1)*(r+1)-v {
		r++
	}
	return r
}

func isqrtFloor(v int) int {
	if v <= 0 {
		return 0
	}
	x := v
	y := (x + 1) / 2
	for y < x {
		x = y
		y = (x + v/x) / 2
	}
	return x
}
