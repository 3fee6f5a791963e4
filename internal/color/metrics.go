package color

import "math"

// Metric is a pure, total, non-negative ordering distance between two
// quantized colors (spec §4.1). Not all metrics are true metrics (no
// triangle inequality guarantee); they are used only to rank candidates.
type Metric int

const (
	AVG Metric = iota
	WAVG
	RGB
	YUV
	SRGB
	SRGBMixed
	NormalMap
)

// String returns the metric's CLI/config name.
func (m Metric) String() string {
	switch m {
	case AVG:
		return "AVG"
	case WAVG:
		return "WAVG"
	case RGB:
		return "RGB"
	case YUV:
		return "YUV"
	case SRGB:
		return "SRGB"
	case SRGBMixed:
		return "SRGB_MIXED"
	case NormalMap:
		return "NORMALMAP"
	default:
		return "unknown"
	}
}

// AlphaUnimportant reports whether the metric treats a source alpha of 0 as
// making the color channels irrelevant for endpoint selection and
// refinement sums (spec §9, "alpha-0-unimportant flag"). Every metric
// except NORMALMAP ignores alpha-0 pixels' colors; NORMALMAP keeps them
// since alpha carries no directional signal in a normal map.
func (m Metric) AlphaUnimportant() bool {
	return m != NormalMap
}

// SkipsCheck reports whether the metric provably cannot be worsened by
// centroid replacement under a squared-error model, so the Check
// refinement mode degrades to Always (spec §4.3).
func (m Metric) SkipsCheck() bool {
	return m == AVG || m == WAVG
}

// Transform returns the refinement encode/decode pair for m (spec §4.1):
// SRGB and SRGB_MIXED accumulate centroids in squared-component space.
func (m Metric) Transform() Transform {
	if m == SRGB || m == SRGBMixed {
		return squaredTransform
	}
	return identityTransform
}

// Dist computes the metric-specific distance between a and b.
func (m Metric) Dist(a, b Color) int {
	switch m {
	case AVG:
		return distAVG(a, b)
	case WAVG:
		return distWAVG(a, b)
	case RGB:
		return distRGB(a, b)
	case YUV:
		return distYUV(a, b)
	case SRGB:
		return distSRGB(a, b)
	case SRGBMixed:
		return distSRGBMixed(a, b)
	case NormalMap:
		return distNormalMap(a, b)
	default:
		return distWAVG(a, b)
	}
}

// rsh is the rounded arithmetic right shift used throughout the luma/chroma
// metrics: (x + (1<<(n-1))) >> n. Go's >> on a signed int is already an
// arithmetic (sign-propagating) shift, matching the C SHRR macro.
func rsh(x, n int) int {
	return (x + (1 << uint(n-1))) >> uint(n)
}

func distAVG(a, b Color) int {
	dr, dg, db := a.R-b.R, a.G-b.G, a.B-b.B
	return 4*dr*dr + dg*dg + 4*db*db
}

func distWAVG(a, b Color) int {
	dr, dg, db := a.R-b.R, a.G-b.G, a.B-b.B
	return 4*dr*dr + 4*dg*dg + db*db
}

// lumaChroma implements the shared structure of RGB and YUV: a weighted
// luma difference y and two chroma differences u, v derived from y, folded
// into a single integer score.
func lumaChroma(dr, dg, db, wr, wg, wb, uvMul int) int {
	y := dr*wr + dg*wg + db*wb
	u := dr*uvMul - y
	v := db*uvMul - y
	return 2*y*y + rsh(u*u, 3) + rsh(v*v, 4)
}

func distRGB(a, b Color) int {
	dr, dg, db := a.R-b.R, a.G-b.G, a.B-b.B
	return lumaChroma(dr, dg, db, 21*2, 72, 7*2, 202)
}

func distYUV(a, b Color) int {
	dr, dg, db := a.R-b.R, a.G-b.G, a.B-b.B
	return lumaChroma(dr, dg, db, 30*2, 59, 11*2, 202)
}

func distSRGB(a, b Color) int {
	dr := a.R*a.R - b.R*b.R
	dg := a.G*a.G - b.G*b.G
	db := a.B*a.B - b.B*b.B
	y := dr*21*2*2 + dg*72 + db*7*2*2
	u := dr*409 - y
	v := db*409 - y
	sy := rsh(y, 3) * rsh(y, 4)
	su := rsh(u, 3) * rsh(u, 4)
	sv := rsh(v, 3) * rsh(v, 4)
	return rsh(sy, 4) + rsh(su, 8) + rsh(sv, 9)
}

// srgbY computes the integer luminance estimate used by SRGB_MIXED: square
// each channel, weight by the RGB luma coefficients, then take an integer
// square root (rounded) to bring the result back from squared-component
// space to linear magnitude.
func srgbY(c Color) int {
	r, g, b := c.R*c.R, c.G*c.G, c.B*c.B
	y := 37 * (r*21*2*2 + g*72 + b*7*2*2)
	return int(math.Sqrt(float64(y)) + 0.5)
}

func distSRGBMixed(a, b Color) int {
	ay, by := srgbY(a), srgbY(b)
	au, av := a.R*191-ay, a.B*191-ay
	bu, bv := b.R*191-by, b.B*191-by
	y := ay - by
	u := au - bu
	v := av - bv
	return (y*y)<<3 + rsh(u*u, 1) + rsh(v*v, 2)
}

func distNormalMap(a, b Color) int {
	ca := normalize(float64(a.R)/31.0*2-1, float64(a.G)/63.0*2-1, float64(a.B)/31.0*2-1)
	cb := normalize(float64(b.R)/31.0*2-1, float64(b.G)/63.0*2-1, float64(b.B)/31.0*2-1)
	dx, dy, dz := cb[0]-ca[0], cb[1]-ca[1], cb[2]-ca[2]
	return int(100000 * (dx*dx + dy*dy + dz*dz))
}

func normalize(x, y, z float64) [3]float64 {
	n := x*x + y*y + z*z
	if n > 0 {
		inv := 1.0 / math.Sqrt(n)
		x *= inv
		y *= inv
		z *= inv
	}
	return [3]float64{x, y, z}
}

// AlphaDist is the squared difference used when comparing an alpha sample
// against a ramp codepoint (spec §4.3).
func AlphaDist(a, b int) int {
	d := a - b
	return d * d
}
