// Package dither implements the RGBA8 -> R5G6B5A{1,4,8} quantization
// front-end (spec §4.7). It runs once per image, before tiling; the block
// encoder consumes only its output and is indifferent to which strategy
// produced it.
package dither

import "github.com/deepteams/s2tc/internal/color"

// Strategy selects the quantization strategy (spec §4.7).
type Strategy int

const (
	// None truncates each channel directly, no error feedback.
	None Strategy = iota
	// Simple applies 1-D error diffusion independently per scanline.
	Simple
	// FloydSteinberg applies the standard 2-D 7/16,3/16,5/16,1/16 error
	// split.
	FloydSteinberg
)

// String returns the strategy's CLI/config name.
func (s Strategy) String() string {
	switch s {
	case None:
		return "none"
	case Simple:
		return "simple"
	case FloydSteinberg:
		return "floyd"
	default:
		return "unknown"
	}
}

// Sample is one source pixel before quantization.
type Sample struct {
	R, G, B, A uint8
}

// Quantized is one dithered output pixel: a quantized R5G6B5 color plus an
// alpha value already requantized to alphaBits and re-expanded to 8-bit
// scale, so downstream packers (which further truncate to the target
// bit-depth) see a consistent 0-255 range regardless of alphaBits.
type Quantized struct {
	C color.Color
	A uint8
}

// rgbBits holds the quantization depth for R, G, B; alpha's depth is a
// caller-supplied parameter (1, 4, or 8) since it varies by DXT mode.
var rgbBits = [3]int{5, 6, 5}

// expand maps a q in [0, 2^bits - 1] back to an 8-bit value, simulating
// the decoder's fixed-point channel expansion (e.g. R5 -> 8-bit replicates
// the top bits so 0 maps to 0 and the max value maps to 255).
func expand(q, bits int) int {
	if bits >= 8 {
		return q
	}
	maxQ := (1 << uint(bits)) - 1
	if maxQ == 0 {
		return 0
	}
	return (q*255 + maxQ/2) / maxQ
}

func quantizeChannel(v, bits int) int {
	maxQ := (1 << uint(bits)) - 1
	return (v*maxQ + 127) / 255
}

func clamp8(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// Quantize dithers an RGBA8 image of width x height into the encoder's
// input buffer, using alphaBits bits for alpha (1 for DXT1, 4 for DXT3, 8
// for DXT5, where DXT5's own 3-bit ramp makes further alpha truncation
// unnecessary).
func Quantize(strategy Strategy, alphaBits int, width, height int, at func(x, y int) Sample) []Quantized {
	out := make([]Quantized, width*height)
	switch strategy {
	case None:
		quantizeNone(out, alphaBits, width, height, at)
	case Simple:
		quantizeSimple(out, alphaBits, width, height, at)
	case FloydSteinberg:
		quantizeFloyd(out, alphaBits, width, height, at)
	}
	return out
}

func quantizeNone(out []Quantized, alphaBits, width, height int, at func(x, y int) Sample) {
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			s := at(x, y)
			out[y*width+x] = quantizeExact(s, alphaBits)
		}
	}
}

func quantizeExact(s Sample, alphaBits int) Quantized {
	r := int(s.R) >> uint(8-rgbBits[0])
	g := int(s.G) >> uint(8-rgbBits[1])
	b := int(s.B) >> uint(8-rgbBits[2])
	a := int(s.A) >> uint(8-alphaBits)
	return Quantized{
		C: color.Color{R: r, G: g, B: b},
		A: uint8(expand(a, alphaBits)),
	}
}

// diffuseChannel quantizes one 8-bit channel value with the carried error
// diff, returning the quantized level, its 8-bit expansion, and the next
// diff: the difference between the true source value and what a decoder
// would reconstruct from the quantized level (the "loop filter" feedback
// that distinguishes this from naive error diffusion).
func diffuseChannel(v, diff, bits int) (level, decoded8, nextDiff int) {
	maxQ := (1 << uint(bits)) - 1
	adjusted := clamp8(v + diff)
	level = quantizeChannel(adjusted, bits)
	if level > maxQ {
		level = maxQ
	}
	decoded8 = expand(level, bits)
	nextDiff = v - decoded8
	return level, decoded8, nextDiff
}

func quantizeSimple(out []Quantized, alphaBits, width, height int, at func(x, y int) Sample) {
	for y := 0; y < height; y++ {
		var dr, dg, db, da int
		for x := 0; x < width; x++ {
			s := at(x, y)
			lr, _, nr := diffuseChannel(int(s.R), dr, rgbBits[0])
			lg, _, ng := diffuseChannel(int(s.G), dg, rgbBits[1])
			lb, _, nb := diffuseChannel(int(s.B), db, rgbBits[2])
			_, da8, na := diffuseChannel(int(s.A), da, alphaBits)
			dr, dg, db, da = nr, ng, nb, na
			out[y*width+x] = Quantized{C: color.Color{R: lr, G: lg, B: lb}, A: uint8(da8)}
		}
	}
}

// floydErr carries the four channels' carried error between scanlines.
type floydErr struct{ r, g, b, a int }

func quantizeFloyd(out []Quantized, alphaBits, width, height int, at func(x, y int) Sample) {
	cur := make([]floydErr, width+2)
	next := make([]floydErr, width+2)
	for y := 0; y < height; y++ {
		for i := range next {
			next[i] = floydErr{}
		}
		for x := 0; x < width; x++ {
			s := at(x, y)
			e := cur[x+1]
			lr, _, er := diffuseChannel(int(s.R), e.r, rgbBits[0])
			lg, _, eg := diffuseChannel(int(s.G), e.g, rgbBits[1])
			lb, _, eb := diffuseChannel(int(s.B), e.b, rgbBits[2])
			la, _, ea := diffuseChannel(int(s.A), e.a, alphaBits)
			out[y*width+x] = Quantized{C: color.Color{R: lr, G: lg, B: lb}, A: uint8(expand(la, alphaBits))}

			spreadError(cur, next, x, floydErr{er, eg, eb, ea})
		}
		cur, next = next, cur
	}
}

// spreadError distributes a Floyd-Steinberg error term with the standard
// 7/16, 3/16, 5/16, 1/16 weights, rounded (not truncated).
func spreadError(cur, next []floydErr, x int, e floydErr) {
	add := func(dst *floydErr, num, den int) {
		dst.r += (e.r*num + den/2) / den
		dst.g += (e.g*num + den/2) / den
		dst.b += (e.b*num + den/2) / den
		dst.a += (e.a*num + den/2) / den
	}
	if x+2 < len(cur) {
		add(&cur[x+2], 7, 16)
	}
	add(&next[x], 3, 16)
	add(&next[x+1], 5, 16)
	if x+2 < len(next) {
		add(&next[x+2], 1, 16)
	}
}
