package block

import (
	"testing"

	"github.com/deepteams/s2tc/internal/color"
)

func solidAccessor(w, h int, c color.Color, a uint8) Get {
	return func(x, y int) (color.Color, uint8, bool) {
		if x < 0 || y < 0 || x >= w || y >= h {
			return color.Color{}, 0, false
		}
		return c, a, true
	}
}

func TestExtractTileFullInterior(t *testing.T) {
	get := solidAccessor(8, 8, color.Color{R: 5, G: 5, B: 5}, 255)
	tile := ExtractTile(get, 8, 8, 0, 0)
	if tile.W != 4 || tile.H != 4 {
		t.Fatalf("interior tile dims = %d,%d, want 4,4", tile.W, tile.H)
	}
	if tile.Count() != 16 {
		t.Errorf("Count() = %d, want 16", tile.Count())
	}
}

func TestExtractTileEdgeClips(t *testing.T) {
	get := solidAccessor(6, 5, color.Color{}, 255)
	tile := ExtractTile(get, 6, 5, 1, 1)
	if tile.W != 2 || tile.H != 1 {
		t.Fatalf("edge tile dims = %d,%d, want 2,1", tile.W, tile.H)
	}
	if tile.Count() != 2 {
		t.Errorf("Count() = %d, want 2", tile.Count())
	}
	if tile.Valid[index(0, 0)] != true || tile.Valid[index(1, 0)] != true {
		t.Error("the two in-bounds slots should be valid")
	}
	if tile.Valid[index(2, 0)] {
		t.Error("out-of-bounds slot should not be valid")
	}
}

func TestHasTransparent(t *testing.T) {
	get := func(x, y int) (color.Color, uint8, bool) {
		if x == 0 && y == 0 {
			return color.Color{}, 0, true
		}
		return color.Color{}, 255, true
	}
	tile := ExtractTile(get, 4, 4, 0, 0)
	if !tile.HasTransparent() {
		t.Error("tile with an alpha-0 pixel should report HasTransparent")
	}
}

func TestBoundingBox(t *testing.T) {
	get := func(x, y int) (color.Color, uint8, bool) {
		return color.Color{R: x, G: y, B: 0}, 255, true
	}
	tile := ExtractTile(get, 4, 4, 0, 0)
	min, max, ok := tile.BoundingBox()
	if !ok {
		t.Fatal("BoundingBox should report ok for a non-empty tile")
	}
	if min.R != 0 || min.G != 0 || max.R != 3 || max.G != 3 {
		t.Errorf("bounding box = %+v..%+v, want {0,0,0}..{3,3,0}", min, max)
	}
}

func TestBoundingBoxEmptyTile(t *testing.T) {
	var tile Tile
	_, _, ok := tile.BoundingBox()
	if ok {
		t.Error("empty tile BoundingBox should report ok=false")
	}
}

func TestValidIndicesAscending(t *testing.T) {
	get := solidAccessor(2, 2, color.Color{}, 255)
	tile := ExtractTile(get, 2, 2, 0, 0)
	idx := tile.ValidIndices()
	want := []int{index(0, 0), index(1, 0), index(0, 1), index(1, 1)}
	if len(idx) != len(want) {
		t.Fatalf("ValidIndices() = %v, want %v", idx, want)
	}
	for i := range want {
		if idx[i] != want[i] {
			t.Errorf("ValidIndices()[%d] = %d, want %d", i, idx[i], want[i])
		}
	}
}
