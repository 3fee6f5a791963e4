package block

import (
	"testing"

	"github.com/deepteams/s2tc/internal/color"
)

func TestPackDXT1Layout(t *testing.T) {
	c0 := color.Color{R: 31, G: 63, B: 31}
	c1 := color.Color{R: 0, G: 0, B: 0}
	var idx [16]uint8
	idx[0] = ColorIdx1
	out := PackDXT1(c0, c1, idx)
	if len(out) != 8 {
		t.Fatalf("PackDXT1 len = %d, want 8", len(out))
	}
	lo0, hi0 := c0.Pack565()
	if out[0] != lo0 || out[1] != hi0 {
		t.Errorf("endpoint 0 bytes = %#x,%#x, want %#x,%#x", out[0], out[1], lo0, hi0)
	}
	lo1, hi1 := c1.Pack565()
	if out[2] != lo1 || out[3] != hi1 {
		t.Errorf("endpoint 1 bytes = %#x,%#x, want %#x,%#x", out[2], out[3], lo1, hi1)
	}
	if out[4]&0x3 != ColorIdx1 {
		t.Errorf("packed index 0 = %d, want %d", out[4]&0x3, ColorIdx1)
	}
}

func TestPackColorBitsEachSlot(t *testing.T) {
	var idx [16]uint8
	for i := range idx {
		idx[i] = uint8(i % 4)
	}
	bits := packColorBits(idx)
	word := uint32(bits[0]) | uint32(bits[1])<<8 | uint32(bits[2])<<16 | uint32(bits[3])<<24
	for i := range idx {
		got := uint8((word >> uint(2*i)) & 0x3)
		if got != idx[i] {
			t.Errorf("slot %d = %d, want %d", i, got, idx[i])
		}
	}
}

func TestPackAlpha3BitsEachSlot(t *testing.T) {
	var idx [16]uint8
	for i := range idx {
		idx[i] = uint8(i % 8)
	}
	bits := packAlpha3Bits(idx)
	var word uint64
	for i, b := range bits {
		word |= uint64(b) << uint(8*i)
	}
	for i := range idx {
		got := uint8((word >> uint(3*i)) & 0x7)
		if got != idx[i] {
			t.Errorf("slot %d = %d, want %d", i, got, idx[i])
		}
	}
}

func TestPackDXT3AlphaNibbles(t *testing.T) {
	var alpha [16]uint8
	alpha[0] = 0xFF // -> nibble 15
	alpha[1] = 0x00 // -> nibble 0
	c0 := color.Color{}
	c1 := color.Color{}
	var idx [16]uint8
	out := PackDXT3(c0, c1, idx, alpha)
	if len(out) != 16 {
		t.Fatalf("PackDXT3 len = %d, want 16", len(out))
	}
	if out[0] != 0x0F {
		t.Errorf("packed alpha nibble byte = %#x, want %#x", out[0], 0x0F)
	}
}

func TestPackDXT5AlphaEndpoints(t *testing.T) {
	var idx [16]uint8
	var cidx [16]uint8
	out := PackDXT5(10, 200, idx, color.Color{}, color.Color{}, cidx)
	if out[0] != 10 || out[1] != 200 {
		t.Errorf("alpha endpoints = %d,%d, want 10,200", out[0], out[1])
	}
}
