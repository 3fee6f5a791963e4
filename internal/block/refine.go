package block

import "github.com/deepteams/s2tc/internal/color"

// RefineMode selects the iterative endpoint refinement strategy (spec §4.3).
type RefineMode int

const (
	RefineNever RefineMode = iota
	RefineAlways
	RefineCheck
	RefineLoop
)

// String returns the mode's CLI/config name.
func (m RefineMode) String() string {
	switch m {
	case RefineNever:
		return "never"
	case RefineAlways:
		return "always"
	case RefineCheck:
		return "check"
	case RefineLoop:
		return "loop"
	default:
		return "unknown"
	}
}

// effectiveColorMode resolves the mode actually used for a color ramp under
// metric: AVG/WAVG are provably non-worsened by centroid replacement, so
// Check degrades to Always (spec §4.3).
func effectiveColorMode(mode RefineMode, metric color.Metric) RefineMode {
	if mode == RefineCheck && metric.SkipsCheck() {
		return RefineAlways
	}
	return mode
}

// maxLoopIterations caps the number of refinement passes RefineLoop makes;
// the loop otherwise ends as soon as an iteration does not improve the score
// or the endpoints stop moving (spec §4.3).
const maxLoopIterations = 16

// colorRefineResult is the outcome of refining one tile's color ramp.
type colorRefineResult struct {
	C0, C1  color.Color
	Indices [16]uint8
}

// RefineColorRamp runs the refinement driver for the color ramp, starting
// from the endpoint-selector's choice (c0, c1).
func RefineColorRamp(t Tile, c0, c1 color.Color, metric color.Metric, haveTrans bool, mode RefineMode, exclude func(slot int) bool) colorRefineResult {
	mode = effectiveColorMode(mode, metric)
	tf := metric.Transform()

	idx, sum0, sum1, n0, n1 := AssignColorRamp(t, c0, c1, metric, haveTrans, exclude)
	if mode == RefineNever {
		return colorRefineResult{c0, c1, idx}
	}

	curC0, curC1, curIdx := c0, c1, idx
	curSum0, curSum1, curN0, curN1 := sum0, sum1, n0, n1

	for iter := 0; iter < maxLoopIterations; iter++ {
		nc0, nc1 := curC0, curC1
		if curN0 > 0 {
			nc0 = curSum0.Centroid(curN0, tf)
		}
		if curN1 > 0 {
			nc1 = curSum1.Centroid(curN1, tf)
		}
		if nc0.Equal(curC0) && nc1.Equal(curC1) {
			break // endpoints stopped moving
		}

		newIdx, newSum0, newSum1, newN0, newN1 := AssignColorRamp(t, nc0, nc1, metric, haveTrans, exclude)

		if mode == RefineAlways {
			curC0, curC1, curIdx = nc0, nc1, newIdx
			break
		}

		oldScore := ScoreColorRamp(t, curC0, curC1, metric, newIdx)
		newScore := ScoreColorRamp(t, nc0, nc1, metric, newIdx)
		if newScore >= oldScore {
			break // no improvement; keep pre-refinement endpoints
		}

		curC0, curC1, curIdx = nc0, nc1, newIdx
		curSum0, curSum1, curN0, curN1 = newSum0, newSum1, newN0, newN1

		if mode == RefineCheck {
			break // one refinement pass only
		}
		// RefineLoop: keep iterating from the improved endpoints.
	}

	return colorRefineResult{curC0, curC1, curIdx}
}

// alphaRefineResult is the outcome of refining one tile's DXT5 alpha ramp.
type alphaRefineResult struct {
	A0, A1  uint8
	Indices [16]uint8
}

// RefineAlphaRamp mirrors RefineColorRamp for the DXT5 alpha ramp. AVG/WAVG
// is not meaningful here (alpha uses its own unweighted squared distance),
// so Check is never downgraded.
func RefineAlphaRamp(t Tile, a0, a1 uint8, mode RefineMode) alphaRefineResult {
	idx, sum0, sum1, n0, n1 := AssignAlphaRamp(t, a0, a1)
	if mode == RefineNever {
		return alphaRefineResult{a0, a1, idx}
	}

	curA0, curA1, curIdx := a0, a1, idx
	curSum0, curSum1, curN0, curN1 := sum0, sum1, n0, n1

	for iter := 0; iter < maxLoopIterations; iter++ {
		na0, na1 := curA0, curA1
		if curN0 > 0 {
			na0 = roundDivAlpha(curSum0, curN0)
		}
		if curN1 > 0 {
			na1 = roundDivAlpha(curSum1, curN1)
		}
		if na0 == curA0 && na1 == curA1 {
			break
		}

		newIdx, newSum0, newSum1, newN0, newN1 := AssignAlphaRamp(t, na0, na1)

		if mode == RefineAlways {
			curA0, curA1, curIdx = na0, na1, newIdx
			break
		}

		oldScore := ScoreAlphaRamp(t, curA0, curA1, newIdx)
		newScore := ScoreAlphaRamp(t, na0, na1, newIdx)
		if newScore >= oldScore {
			break
		}

		curA0, curA1, curIdx = na0, na1, newIdx
		curSum0, curSum1, curN0, curN1 = newSum0, newSum1, newN0, newN1

		if mode == RefineCheck {
			break
		}
	}

	return alphaRefineResult{curA0, curA1, curIdx}
}
