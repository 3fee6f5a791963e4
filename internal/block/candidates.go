package block

import (
	"github.com/deepteams/s2tc/internal/color"
	"github.com/deepteams/s2tc/internal/prng"
)

// colorParticipates reports whether a pixel's color should participate in
// endpoint candidate gathering and selector scoring: every metric except
// NORMALMAP treats a source alpha of 0 as making the color irrelevant
// (spec §9's "alpha-0-unimportant flag"), and a DXT1 pixel with alpha 0 is
// routed to the transparency index regardless of metric.
func colorParticipates(px Pixel, metric color.Metric, haveTrans bool) bool {
	if haveTrans && px.A == 0 {
		return false
	}
	if metric.AlphaUnimportant() && px.A == 0 {
		return false
	}
	return true
}

// distinctColors returns the set of distinct participating pixel colors in
// first-seen order.
func distinctColors(t Tile, metric color.Metric, haveTrans bool) []color.Color {
	seen := make(map[color.Color]bool, 16)
	out := make([]color.Color, 0, 16)
	for i := 0; i < 16; i++ {
		if !t.Valid[i] {
			continue
		}
		px := t.Pixels[i]
		if !colorParticipates(px, metric, haveTrans) {
			continue
		}
		if seen[px.C] {
			continue
		}
		seen[px.C] = true
		out = append(out, px.C)
	}
	return out
}

// participatingColors returns the coverage set used by the selector's
// per-pixel sum: every participating pixel's color, including duplicates.
func participatingColors(t Tile, metric color.Metric, haveTrans bool) []color.Color {
	out := make([]color.Color, 0, 16)
	for i := 0; i < 16; i++ {
		if !t.Valid[i] {
			continue
		}
		px := t.Pixels[i]
		if !colorParticipates(px, metric, haveTrans) {
			continue
		}
		out = append(out, px.C)
	}
	return out
}

// randomColorInBox draws a uniform color from the bounding box [min,max]
// with an extra +1 margin per axis, clamped to the legal R5G6B5 range
// (spec §4.2: "the axis-aligned bounding box... inclusive of an extra +1
// per axis").
func randomColorInBox(min, max color.Color, rng *prng.Source) color.Color {
	return color.Color{
		R: clampAxis(min.R+rng.Intn(max.R-min.R+2), 0, 31),
		G: clampAxis(min.G+rng.Intn(max.G-min.G+2), 0, 63),
		B: clampAxis(min.B+rng.Intn(max.B-min.B+2), 0, 31),
	}
}

func clampAxis(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// SelectColorEndpoints runs the candidate-gathering + endpoint-selector
// stages for the color ramp (spec §4.2).
func SelectColorEndpoints(t Tile, metric color.Metric, haveTrans bool, mode CandidateMode, nrandom int, rng *prng.Source) (color.Color, color.Color) {
	coverage := participatingColors(t, metric, haveTrans)

	if mode == CandidateFast {
		return fastColorEndpoints(coverage, metric)
	}

	candidates := distinctColors(t, metric, haveTrans)
	if len(candidates) == 0 {
		candidates = []color.Color{{}}
		coverage = []color.Color{{}}
	}
	if mode == CandidateRandom && nrandom > 0 {
		if min, max, ok := t.BoundingBox(); ok {
			for k := 0; k < nrandom; k++ {
				candidates = append(candidates, randomColorInBox(min, max, rng))
			}
		}
	}
	if len(candidates) == 1 {
		candidates = append(candidates, candidates[0])
	}

	dist := func(c, p int) int { return metric.Dist(candidates[c], coverage[p]) }
	besti, bestj := SelectEndpoints(len(candidates), len(coverage), dist, nil)
	return candidates[besti], candidates[bestj]
}

// fastColorEndpoints implements the Fast candidate mode (spec §4.2): a
// single pass tracking the pixel minimizing and maximizing distance from
// the origin (0,0,0) under metric. Not used with NORMALMAP (spec §4.3).
func fastColorEndpoints(coverage []color.Color, metric color.Metric) (color.Color, color.Color) {
	if len(coverage) == 0 {
		return color.Color{}, color.Color{}
	}
	var origin color.Color
	minC, maxC := coverage[0], coverage[0]
	minD, maxD := metric.Dist(origin, coverage[0]), metric.Dist(origin, coverage[0])
	for _, c := range coverage[1:] {
		d := metric.Dist(origin, c)
		if d < minD {
			minD, minC = d, c
		}
		if d > maxD {
			maxD, maxC = d, c
		}
	}
	return minC, maxC
}

// distinctAlphas returns the set of distinct valid-pixel alpha values in
// first-seen order.
func distinctAlphas(t Tile) []uint8 {
	var seen [256]bool
	out := make([]uint8, 0, 16)
	for i := 0; i < 16; i++ {
		if !t.Valid[i] {
			continue
		}
		a := t.Pixels[i].A
		if seen[a] {
			continue
		}
		seen[a] = true
		out = append(out, a)
	}
	return out
}

// SelectAlphaEndpoints runs candidate gathering + endpoint selection for
// the DXT5 alpha ramp, with 0 and 255 always available as free sentinel
// assignments during scoring (spec §4.2).
func SelectAlphaEndpoints(t Tile, mode CandidateMode, nrandom int, rng *prng.Source) (uint8, uint8) {
	coverage := make([]uint8, 0, 16)
	for i := 0; i < 16; i++ {
		if t.Valid[i] {
			coverage = append(coverage, t.Pixels[i].A)
		}
	}

	if mode == CandidateFast {
		return fastAlphaEndpoints(coverage)
	}

	candidates := distinctAlphas(t)
	if len(candidates) == 0 {
		candidates = []uint8{0}
		coverage = []uint8{0}
	}
	if mode == CandidateRandom && nrandom > 0 {
		minA, maxA := candidates[0], candidates[0]
		for _, a := range candidates {
			if a < minA {
				minA = a
			}
			if a > maxA {
				maxA = a
			}
		}
		lo, hi := int(minA), int(maxA)+1
		if hi > 255 {
			hi = 255
		}
		for k := 0; k < nrandom; k++ {
			v := lo + rng.Intn(hi-lo+1)
			candidates = append(candidates, uint8(v))
		}
	}
	if len(candidates) == 1 {
		candidates = append(candidates, candidates[0])
	}

	dist := func(c, p int) int { return color.AlphaDist(int(candidates[c]), int(coverage[p])) }
	sentinel := func(p int) (int, int) {
		a := int(coverage[p])
		return color.AlphaDist(0, a), color.AlphaDist(255, a)
	}
	besti, bestj := SelectEndpoints(len(candidates), len(coverage), dist, sentinel)
	return candidates[besti], candidates[bestj]
}

// fastAlphaEndpoints implements Fast-mode alpha endpoint selection (spec
// §4.2): track min/max alpha directly, excluding fully-transparent pixels
// since those are covered for free by the 0 sentinel.
func fastAlphaEndpoints(coverage []uint8) (uint8, uint8) {
	minA, maxA := uint8(255), uint8(0)
	found := false
	for _, a := range coverage {
		if a == 0 {
			continue
		}
		if !found || a < minA {
			minA = a
		}
		if !found || a > maxA {
			maxA = a
		}
		found = true
	}
	if !found {
		return 0, 0
	}
	return minA, maxA
}
