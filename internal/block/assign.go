package block

import "github.com/deepteams/s2tc/internal/color"

// ColorIndex values for the color ramp. Index 2 is never emitted by S2TC
// (spec §8 property 2); index 3 is DXT1-only transparency.
const (
	ColorIdx0 = 0
	ColorIdx1 = 1
	ColorIdxTransparent = 3
)

// AssignColorRamp assigns every valid pixel in t to endpoint 0 or 1 (or, for
// DXT1 with haveTrans, to the transparency index) under metric, and
// accumulates per-endpoint centroid sums (spec §4.3).
//
// exclude, when non-nil, is consulted for every pixel assigned to endpoint
// 0 or 1; if it returns true the pixel's color still gets an index but is
// excluded from the centroid sums, matching the alpha-0-unimportant
// exclusion rule (spec §4.3, §9).
func AssignColorRamp(t Tile, c0, c1 color.Color, metric color.Metric, haveTrans bool, exclude func(slot int) bool) (indices [16]uint8, sum0, sum1 color.Wide, n0, n1 int) {
	tf := metric.Transform()
	for i := 0; i < 16; i++ {
		if !t.Valid[i] {
			continue
		}
		px := t.Pixels[i]
		if haveTrans && px.A == 0 {
			indices[i] = ColorIdxTransparent
			continue
		}
		d0 := metric.Dist(c0, px.C)
		d1 := metric.Dist(c1, px.C)
		if d0 <= d1 {
			indices[i] = ColorIdx0
			if exclude != nil && exclude(i) {
				continue
			}
			sum0 = sum0.Add(px.C, tf)
			n0++
		} else {
			indices[i] = ColorIdx1
			if exclude != nil && exclude(i) {
				continue
			}
			sum1 = sum1.Add(px.C, tf)
			n1++
		}
	}
	return indices, sum0, sum1, n0, n1
}

// ScoreColorRamp returns the total per-pixel distance of t's valid, non-
// transparent pixels against indices under endpoints (c0,c1), used by the
// Check/Loop refinement modes to compare old vs. new endpoints on a fixed
// assignment (spec §4.3).
func ScoreColorRamp(t Tile, c0, c1 color.Color, metric color.Metric, indices [16]uint8) int {
	total := 0
	for i := 0; i < 16; i++ {
		if !t.Valid[i] {
			continue
		}
		switch indices[i] {
		case ColorIdx0:
			total += metric.Dist(c0, t.Pixels[i].C)
		case ColorIdx1:
			total += metric.Dist(c1, t.Pixels[i].C)
		}
	}
	return total
}

// Alpha ramp 3-bit codes used by S2TC's DXT5 alpha (the 6-entry form):
// endpoints at 0 and 1, literal 0 and 255 bound to 6 and 7.
const (
	AlphaIdx0      = 0
	AlphaIdx1      = 1
	AlphaIdxZero   = 6
	AlphaIdxFull   = 7
)

// AssignAlphaRamp assigns every valid pixel's alpha to one of a0, a1, 0, or
// 255 (spec §4.3) and accumulates centroid sums for a0/a1 only; sentinel
// assignments never contribute to a centroid.
func AssignAlphaRamp(t Tile, a0, a1 uint8) (indices [16]uint8, sum0, sum1, n0, n1 int) {
	for i := 0; i < 16; i++ {
		if !t.Valid[i] {
			continue
		}
		a := int(t.Pixels[i].A)
		d0 := color.AlphaDist(a, int(a0))
		d1 := color.AlphaDist(a, int(a1))
		d6 := color.AlphaDist(a, 0)
		d7 := color.AlphaDist(a, 255)
		best, bestIdx := d0, AlphaIdx0
		if d1 < best {
			best, bestIdx = d1, AlphaIdx1
		}
		if d6 < best {
			best, bestIdx = d6, AlphaIdxZero
		}
		if d7 < best {
			best, bestIdx = d7, AlphaIdxFull
		}
		indices[i] = uint8(bestIdx)
		switch bestIdx {
		case AlphaIdx0:
			sum0 += a
			n0++
		case AlphaIdx1:
			sum1 += a
			n1++
		}
	}
	return indices, sum0, sum1, n0, n1
}

// ScoreAlphaRamp mirrors ScoreColorRamp for the DXT5 alpha ramp.
func ScoreAlphaRamp(t Tile, a0, a1 uint8, indices [16]uint8) int {
	total := 0
	for i := 0; i < 16; i++ {
		if !t.Valid[i] {
			continue
		}
		a := int(t.Pixels[i].A)
		switch indices[i] {
		case AlphaIdx0:
			total += color.AlphaDist(a, int(a0))
		case AlphaIdx1:
			total += color.AlphaDist(a, int(a1))
		case AlphaIdxZero:
			total += color.AlphaDist(a, 0)
		case AlphaIdxFull:
			total += color.AlphaDist(a, 255)
		}
	}
	return total
}

// roundDivAlpha applies spec §4.3's centroid rounding rule to a plain
// (unsquared) alpha sum.
func roundDivAlpha(sum, n int) uint8 {
	if n == 0 {
		return 0
	}
	v := (2*sum + n) / (2 * n)
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	return uint8(v)
}
