package block

import (
	"github.com/deepteams/s2tc/internal/color"
	"github.com/deepteams/s2tc/internal/prng"
)

// EncodeTile runs the full per-tile pipeline (spec §2's control flow:
// collect candidates -> endpoint selector -> refinement driver { pixel
// assigner -> centroid update } -> bit packer) and returns the packed
// block (8 bytes for DXT1, 16 for DXT3/DXT5).
//
// rng may be nil when candMode != CandidateRandom; the random candidate
// mode requires a non-nil, tile- or session-scoped source (spec §5: "the
// PRNG is not shared across threads").
func EncodeTile(t Tile, mode DxtMode, metric color.Metric, candMode CandidateMode, refine RefineMode, nrandom int, rng *prng.Source) []byte {
	switch mode {
	case DXT1:
		return encodeDXT1(t, metric, candMode, refine, nrandom, rng)
	case DXT3:
		return encodeDXT3(t, metric, candMode, refine, nrandom, rng)
	default:
		return encodeDXT5(t, metric, candMode, refine, nrandom, rng)
	}
}

func encodeDXT1(t Tile, metric color.Metric, candMode CandidateMode, refine RefineMode, nrandom int, rng *prng.Source) []byte {
	haveTrans := t.HasTransparent()
	c0, c1 := SelectColorEndpoints(t, metric, haveTrans, candMode, nrandom, rng)
	res := RefineColorRamp(t, c0, c1, metric, haveTrans, refine, nil)
	fc0, fc1, fidx := CanonicalizeDXT1Color(res.C0, res.C1, res.Indices, haveTrans)
	block := PackDXT1(fc0, fc1, fidx)
	return block[:]
}

func encodeDXT3(t Tile, metric color.Metric, candMode CandidateMode, refine RefineMode, nrandom int, rng *prng.Source) []byte {
	c0, c1 := SelectColorEndpoints(t, metric, false, candMode, nrandom, rng)
	exclude := alphaZeroExcluder(t, metric)
	res := RefineColorRamp(t, c0, c1, metric, false, refine, exclude)
	fc0, fc1, fidx := CanonicalizeDXTColor(res.C0, res.C1, res.Indices)
	block := PackDXT3(fc0, fc1, fidx, rawAlpha(t))
	return block[:]
}

func encodeDXT5(t Tile, metric color.Metric, candMode CandidateMode, refine RefineMode, nrandom int, rng *prng.Source) []byte {
	a0, a1 := SelectAlphaEndpoints(t, candMode, nrandom, rng)
	aRes := RefineAlphaRamp(t, a0, a1, refine)
	fa0, fa1, faIdx := CanonicalizeDXT5Alpha(aRes.A0, aRes.A1, aRes.Indices)

	c0, c1 := SelectColorEndpoints(t, metric, false, candMode, nrandom, rng)
	exclude := func(slot int) bool {
		return metric.AlphaUnimportant() && faIdx[slot] == AlphaIdxZero
	}
	cRes := RefineColorRamp(t, c0, c1, metric, false, refine, exclude)
	fc0, fc1, fcIdx := CanonicalizeDXTColor(cRes.C0, cRes.C1, cRes.Indices)

	block := PackDXT5(fa0, fa1, faIdx, fc0, fc1, fcIdx)
	return block[:]
}

// alphaZeroExcluder builds the DXT3 color-ramp centroid exclusion
// predicate: alpha-ignoring metrics drop alpha==0 pixels from the sums
// (spec §4.3, §9).
func alphaZeroExcluder(t Tile, metric color.Metric) func(slot int) bool {
	if !metric.AlphaUnimportant() {
		return nil
	}
	return func(slot int) bool {
		return t.Valid[slot] && t.Pixels[slot].A == 0
	}
}

// rawAlpha returns the tile's raw 8-bit alpha per slot (0 for unfilled
// edge-tile slots), as consumed directly by PackDXT3.
func rawAlpha(t Tile) [16]uint8 {
	var out [16]uint8
	for i := 0; i < 16; i++ {
		if t.Valid[i] {
			out[i] = t.Pixels[i].A
		}
	}
	return out
}
