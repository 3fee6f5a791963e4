// Package block implements the per-tile S2TC encoder: endpoint selection,
// pixel assignment, iterative refinement, and the byte-exact DXT1/DXT3/DXT5
// bit packer (spec §2 components 2-5, §3, §4.2-§4.5).
package block

import "github.com/deepteams/s2tc/internal/color"

// Pixel is one already-dithered source sample: a quantized R5G6B5 color
// plus its original 8-bit alpha.
type Pixel struct {
	C color.Color
	A uint8
}

// Tile holds up to 16 pixels of a 4x4 block. Edge tiles (at the right or
// bottom border of an image whose dimensions aren't multiples of 4) have
// Valid[i] == false for slots beyond the tile's real W x H extent; those
// slots still occupy their logical index y*4+x in the packed output (spec
// §3), they are simply never assigned a real color.
type Tile struct {
	Pixels [16]Pixel
	Valid  [16]bool
	W, H   int
}

// index maps tile-local coordinates to the fixed packed-block slot.
func index(x, y int) int { return y*4 + x }

// Get is an image accessor: given absolute pixel coordinates, returns the
// dithered color and source alpha, or ok=false if (x,y) is outside the
// image (used for the image's final partial row/column of tiles).
type Get func(x, y int) (c color.Color, a uint8, ok bool)

// ExtractTile gathers the tile at block coordinates (bx,by) (in units of
// 4x4 blocks) from an image of size imgW x imgH using get.
func ExtractTile(get Get, imgW, imgH, bx, by int) Tile {
	var t Tile
	originX, originY := bx*4, by*4
	w := imgW - originX
	if w > 4 {
		w = 4
	}
	h := imgH - originY
	if h > 4 {
		h = 4
	}
	t.W, t.H = w, h
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c, a, ok := get(originX+x, originY+y)
			if !ok {
				continue
			}
			i := index(x, y)
			t.Pixels[i] = Pixel{C: c, A: a}
			t.Valid[i] = true
		}
	}
	return t
}

// HasTransparent reports whether any valid pixel has source alpha 0.
func (t Tile) HasTransparent() bool {
	for i := 0; i < 16; i++ {
		if t.Valid[i] && t.Pixels[i].A == 0 {
			return true
		}
	}
	return false
}

// Count returns the number of valid (real) pixels in the tile.
func (t Tile) Count() int {
	n := 0
	for i := 0; i < 16; i++ {
		if t.Valid[i] {
			n++
		}
	}
	return n
}

// ValidIndices returns the slot indices (into Pixels/Valid) of every real
// pixel, in ascending order.
func (t Tile) ValidIndices() []int {
	idx := make([]int, 0, 16)
	for i := 0; i < 16; i++ {
		if t.Valid[i] {
			idx = append(idx, i)
		}
	}
	return idx
}

// BoundingBox returns the axis-aligned min/max of the tile's real colors,
// used by the Random candidate mode (spec §4.2). ok is false for an empty
// tile.
func (t Tile) BoundingBox() (min, max color.Color, ok bool) {
	first := true
	for i := 0; i < 16; i++ {
		if !t.Valid[i] {
			continue
		}
		c := t.Pixels[i].C
		if first {
			min, max = c, c
			first = false
			continue
		}
		if c.R < min.R {
			min.R = c.R
		}
		if c.G < min.G {
			min.G = c.G
		}
		if c.B < min.B {
			min.B = c.B
		}
		if c.R > max.R {
			max.R = c.R
		}
		if c.G > max.G {
			max.G = c.G
		}
		if c.B > max.B {
			max.B = c.B
		}
	}
	return min, max, !first
}
