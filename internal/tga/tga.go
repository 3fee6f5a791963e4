// Package tga loads uncompressed and RLE Targa images into top-to-bottom
// BGRA8 buffers, grounded on original_source/s2tc_compress.cpp's
// LoadTGA_BGRA (spec §6's input format, supplemented: the distilled spec
// leaves image loading unspecified).
package tga

import (
	"fmt"
)

// Image is a decoded, row-major, top-to-bottom BGRA8 image (the Targa
// file's own channel order).
type Image struct {
	Width, Height int
	Pix           []byte // width*height*4, B,G,R,A per pixel
}

// imageType values from the Targa spec; only the types the original loader
// accepts are handled (1, 2, 3, 9, 10, 11).
const (
	typeColormap    = 1
	typeTrueColor   = 2
	typeGreyscale   = 3
	typeColormapRLE = 9
	typeTrueColorRLE = 10
	typeGreyscaleRLE = 11
)

// Load decodes a Targa file's bytes into a top-to-bottom BGRA8 Image.
func Load(f []byte) (*Image, error) {
	if len(f) < 18 {
		return nil, fmt.Errorf("tga: file too short")
	}

	idLength := int(f[0])
	colormapType := f[1]
	imageType := f[2]
	colormapIndex := int(f[3]) + int(f[4])*256
	colormapLength := int(f[5]) + int(f[6])*256
	colormapSize := f[7]
	width := int(f[12]) + int(f[13])*256
	height := int(f[14]) + int(f[15])*256
	pixelSize := f[16]
	attributes := f[17]

	if width > 32768 || height > 32768 || width <= 0 || height <= 0 {
		return nil, fmt.Errorf("tga: invalid size %dx%d", width, height)
	}

	pos := 18 + idLength

	var palette [256][4]byte
	if colormapType != 0 {
		if colormapLength > 256 {
			return nil, fmt.Errorf("tga: colormap_length %d exceeds 256", colormapLength)
		}
		if colormapIndex != 0 {
			return nil, fmt.Errorf("tga: colormap_index not supported")
		}
		switch colormapSize {
		case 24:
			for x := 0; x < colormapLength; x++ {
				if pos+3 > len(f) {
					return nil, fmt.Errorf("tga: truncated colormap")
				}
				palette[x] = [4]byte{f[pos], f[pos+1], f[pos+2], 255}
				pos += 3
			}
		case 32:
			if pos+colormapLength*4 > len(f) {
				return nil, fmt.Errorf("tga: truncated colormap")
			}
			for x := 0; x < colormapLength; x++ {
				palette[x] = [4]byte{f[pos], f[pos+1], f[pos+2], f[pos+3]}
				pos += 4
			}
		default:
			return nil, fmt.Errorf("tga: unsupported colormap_size %d", colormapSize)
		}
	}

	switch imageType &^ 8 {
	case typeTrueColor:
		if pixelSize != 24 && pixelSize != 32 {
			return nil, fmt.Errorf("tga: unsupported pixel_size %d for type 2/10", pixelSize)
		}
	case typeGreyscale:
		for x := 0; x < 256; x++ {
			palette[x] = [4]byte{byte(x), byte(x), byte(x), 255}
		}
		fallthrough
	case typeColormap:
		if pixelSize != 8 {
			return nil, fmt.Errorf("tga: unsupported pixel_size %d for type 1/3/9/11", pixelSize)
		}
	default:
		return nil, fmt.Errorf("tga: unsupported image_type %d", imageType)
	}

	if attributes&0x10 != 0 {
		return nil, fmt.Errorf("tga: only top-left or bottom-left origin supported")
	}
	alphaBits := attributes & 0x0F
	if alphaBits != 0 && alphaBits != 8 {
		return nil, fmt.Errorf("tga: unsupported attribute bits %d", alphaBits)
	}

	img := &Image{Width: width, Height: height, Pix: make([]byte, width*height*4)}

	// Bit 5 clear means the data is stored bottom-to-top; flip on write.
	topDown := attributes&0x20 != 0

	rowAt := func(y int) []byte {
		row := y
		if !topDown {
			row = height - 1 - y
		}
		return img.Pix[row*width*4 : (row+1)*width*4]
	}

	pixInc := 1
	if imageType&^8 == typeTrueColor {
		pixInc = int(pixelSize+7) / 8
	}

	var err error
	switch imageType {
	case typeColormap, typeGreyscale:
		err = loadUncompressedIndexed(f, pos, width, height, palette, rowAt)
	case typeTrueColor:
		err = loadUncompressedTrueColor(f, pos, width, height, pixelSize, alphaBits, rowAt)
	case typeColormapRLE, typeGreyscaleRLE:
		err = loadRLEIndexed(f, pos, width, height, palette, rowAt)
	case typeTrueColorRLE:
		err = loadRLETrueColor(f, pos, width, height, pixInc, pixelSize, alphaBits, rowAt)
	}
	if err != nil {
		return nil, err
	}
	return img, nil
}

func loadUncompressedIndexed(f []byte, pos, width, height int, palette [256][4]byte, rowAt func(int) []byte) error {
	if pos+width*height > len(f) {
		return fmt.Errorf("tga: truncated pixel data")
	}
	for y := 0; y < height; y++ {
		row := rowAt(y)
		for x := 0; x < width; x++ {
			c := palette[f[pos]]
			copy(row[x*4:x*4+4], c[:])
			pos++
		}
	}
	return nil
}

func loadUncompressedTrueColor(f []byte, pos, width, height int, pixelSize, alphaBits byte, rowAt func(int) []byte) error {
	pixInc := int(pixelSize+7) / 8
	if pos+width*height*pixInc > len(f) {
		return fmt.Errorf("tga: truncated pixel data")
	}
	hasAlpha := pixelSize == 32 && alphaBits != 0
	for y := 0; y < height; y++ {
		row := rowAt(y)
		for x := 0; x < width; x++ {
			a := byte(255)
			if hasAlpha {
				a = f[pos+3]
			}
			row[x*4+0] = f[pos+0]
			row[x*4+1] = f[pos+1]
			row[x*4+2] = f[pos+2]
			row[x*4+3] = a
			pos += pixInc
		}
	}
	return nil
}

func loadRLEIndexed(f []byte, pos, width, height int, palette [256][4]byte, rowAt func(int) []byte) error {
	for y := 0; y < height; y++ {
		row := rowAt(y)
		x := 0
		for x < width {
			if pos >= len(f) {
				return fmt.Errorf("tga: truncated RLE stream")
			}
			runlen := int(f[pos])
			pos++
			if runlen&0x80 != 0 {
				runlen = runlen - 0x80 + 1
				if pos+1 > len(f) || x+runlen > width {
					return fmt.Errorf("tga: corrupt RLE run")
				}
				c := palette[f[pos]]
				pos++
				for ; runlen > 0; runlen-- {
					copy(row[x*4:x*4+4], c[:])
					x++
				}
			} else {
				runlen++
				if pos+runlen > len(f) || x+runlen > width {
					return fmt.Errorf("tga: corrupt raw run")
				}
				for ; runlen > 0; runlen-- {
					c := palette[f[pos]]
					copy(row[x*4:x*4+4], c[:])
					pos++
					x++
				}
			}
		}
	}
	return nil
}

func loadRLETrueColor(f []byte, pos, width, height, pixInc int, pixelSize, alphaBits byte, rowAt func(int) []byte) error {
	hasAlpha := pixelSize == 32 && alphaBits != 0
	readPixel := func(p int) [4]byte {
		a := byte(255)
		if hasAlpha {
			a = f[p+3]
		}
		return [4]byte{f[p+0], f[p+1], f[p+2], a}
	}
	for y := 0; y < height; y++ {
		row := rowAt(y)
		x := 0
		for x < width {
			if pos >= len(f) {
				return fmt.Errorf("tga: truncated RLE stream")
			}
			runlen := int(f[pos])
			pos++
			if runlen&0x80 != 0 {
				runlen = runlen - 0x80 + 1
				if pos+pixInc > len(f) || x+runlen > width {
					return fmt.Errorf("tga: corrupt RLE run")
				}
				c := readPixel(pos)
				pos += pixInc
				for ; runlen > 0; runlen-- {
					copy(row[x*4:x*4+4], c[:])
					x++
				}
			} else {
				runlen++
				if pos+pixInc*runlen > len(f) || x+runlen > width {
					return fmt.Errorf("tga: corrupt raw run")
				}
				for ; runlen > 0; runlen-- {
					c := readPixel(pos)
					copy(row[x*4:x*4+4], c[:])
					pos += pixInc
					x++
				}
			}
		}
	}
	return nil
}
