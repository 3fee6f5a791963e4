// Package mipmap implements the box-filter mip chain reduction used by the
// CLI's supplemented -m flag, grounded on
// original_source/s2tc_compress.cpp's Image_MipReduce32. An odd width or
// height simply discards the last row/column rather than filtering it in,
// matching the original's documented behavior.
package mipmap

// Reduce halves an RGBA8 image's width, height, or both (whichever is
// still above 1), averaging 2x2 (or 2x1 / 1x2) pixel groups per channel.
// It returns the new pixel buffer, width, and height.
func Reduce(pix []byte, width, height int) ([]byte, int, int) {
	if width <= 1 && height <= 1 {
		return pix, width, height
	}

	stride := width * 4
	switch {
	case width > 1 && height > 1:
		newW, newH := width/2, height/2
		out := make([]byte, newW*newH*4)
		for y := 0; y < newH; y++ {
			row0 := pix[(2*y)*stride:]
			row1 := pix[(2*y+1)*stride:]
			for x := 0; x < newW; x++ {
				for c := 0; c < 4; c++ {
					sum := int(row0[8*x+c]) + int(row0[8*x+4+c]) + int(row1[8*x+c]) + int(row1[8*x+4+c])
					out[(y*newW+x)*4+c] = byte(sum >> 2)
				}
			}
		}
		return out, newW, newH
	case width > 1:
		newW := width / 2
		out := make([]byte, newW*height*4)
		for y := 0; y < height; y++ {
			row := pix[y*stride:]
			for x := 0; x < newW; x++ {
				for c := 0; c < 4; c++ {
					sum := int(row[8*x+c]) + int(row[8*x+4+c])
					out[(y*newW+x)*4+c] = byte(sum >> 1)
				}
			}
		}
		return out, newW, height
	default:
		newH := height / 2
		out := make([]byte, width*newH*4)
		for y := 0; y < newH; y++ {
			row0 := pix[(2*y)*stride:]
			row1 := pix[(2*y+1)*stride:]
			for x := 0; x < width; x++ {
				for c := 0; c < 4; c++ {
					sum := int(row0[4*x+c]) + int(row1[4*x+c])
					out[(y*width+x)*4+c] = byte(sum >> 1)
				}
			}
		}
		return out, width, newH
	}
}
