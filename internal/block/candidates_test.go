package block

import (
	"testing"

	"github.com/deepteams/s2tc/internal/color"
	"github.com/deepteams/s2tc/internal/prng"
)

func gradientTile() Tile {
	var t Tile
	t.W, t.H = 4, 4
	for i := 0; i < 16; i++ {
		t.Pixels[i] = Pixel{C: color.Color{R: i % 32, G: (i * 4) % 64, B: i % 32}, A: 255}
		t.Valid[i] = true
	}
	return t
}

func TestSelectColorEndpointsFastKeepsDistinctExtremes(t *testing.T) {
	tile := gradientTile()
	c0, c1 := SelectColorEndpoints(tile, color.WAVG, false, CandidateFast, 0, nil)
	if c0.Equal(c1) {
		t.Error("Fast mode should not collapse a varied tile to one endpoint")
	}
}

func TestSelectColorEndpointsEmptyTileReturnsSomething(t *testing.T) {
	var tile Tile
	tile.W, tile.H = 4, 4
	c0, c1 := SelectColorEndpoints(tile, color.WAVG, false, CandidateNormal, 0, nil)
	if !c0.Equal(c1) {
		t.Errorf("an all-invalid tile should degenerate to equal endpoints, got %+v %+v", c0, c1)
	}
}

func TestSelectColorEndpointsRandomAddsCandidates(t *testing.T) {
	tile := gradientTile()
	rng := prng.New(42)
	c0, c1 := SelectColorEndpoints(tile, color.WAVG, false, CandidateRandom, 4, rng)
	if c0.Equal(c1) {
		t.Error("random candidates over a varied tile should not collapse to one endpoint")
	}
}

func TestDistinctColorsDeduplicates(t *testing.T) {
	var t1 Tile
	t1.W, t1.H = 4, 4
	for i := 0; i < 4; i++ {
		t1.Pixels[i] = Pixel{C: color.Color{R: 5}, A: 255}
		t1.Valid[i] = true
	}
	got := distinctColors(t1, color.WAVG, false)
	if len(got) != 1 {
		t.Errorf("distinctColors over 4 identical pixels = %d entries, want 1", len(got))
	}
}

func TestColorParticipatesExcludesAlphaZeroUnderMostMetrics(t *testing.T) {
	px := Pixel{C: color.Color{R: 1}, A: 0}
	if colorParticipates(px, color.WAVG, false) {
		t.Error("alpha-0 pixel should not participate under WAVG")
	}
	if !colorParticipates(px, color.NormalMap, false) {
		t.Error("alpha-0 pixel should still participate under NORMALMAP")
	}
}

func TestColorParticipatesExcludesTransparentRegardlessOfMetric(t *testing.T) {
	px := Pixel{C: color.Color{R: 1}, A: 0}
	if colorParticipates(px, color.NormalMap, true) {
		t.Error("a DXT1 transparent pixel must never participate, even under NORMALMAP")
	}
}

func TestSelectAlphaEndpointsFastExcludesZero(t *testing.T) {
	var tile Tile
	tile.W, tile.H = 4, 4
	alphas := []uint8{0, 10, 200, 255}
	for i, a := range alphas {
		tile.Pixels[i] = Pixel{A: a}
		tile.Valid[i] = true
	}
	a0, a1 := fastAlphaEndpoints(alphas)
	if a0 != 10 || a1 != 255 {
		t.Errorf("fastAlphaEndpoints = %d,%d, want 10,255 (only 0 excluded, free sentinel)", a0, a1)
	}
}

func TestSelectAlphaEndpointsAllZero(t *testing.T) {
	a0, a1 := fastAlphaEndpoints([]uint8{0, 0, 0})
	if a0 != 0 || a1 != 0 {
		t.Errorf("fastAlphaEndpoints over all-zero alpha = %d,%d, want 0,0", a0, a1)
	}
}

func TestRandomColorInBoxStaysInRange(t *testing.T) {
	rng := prng.New(1)
	min := color.Color{R: 5, G: 5, B: 5}
	max := color.Color{R: 10, G: 10, B: 10}
	for i := 0; i < 100; i++ {
		c := randomColorInBox(min, max, rng)
		if c.R < 0 || c.R > 31 || c.G < 0 || c.G > 63 || c.B < 0 || c.B > 31 {
			t.Fatalf("randomColorInBox produced out-of-range color %+v", c)
		}
	}
}
