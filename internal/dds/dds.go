// Package dds writes the fixed 128-byte DDS container header used by the
// command-line encoder (spec §6, supplemented), grounded byte-for-byte on
// original_source/s2tc_compress.cpp's header fwrite() sequence.
package dds

import (
	"encoding/binary"
	"io"
)

// FourCC identifies the block-compression format stored in a DDS file.
type FourCC [4]byte

var (
	FourCCDXT1 = FourCC{'D', 'X', 'T', '1'}
	FourCCDXT3 = FourCC{'D', 'X', 'T', '3'}
	FourCCDXT5 = FourCC{'D', 'X', 'T', '5'}
)

const (
	headerSize       = 124
	pixelFormatSize  = 32
	ddpfAlphaPixels  = 0x00000005
	ddpfFourCCOnly   = 0x00000004
	ddsCaps1Complete = 0x00401008
	ddsFlags         = 0x000A1007
)

// Header mirrors the fields the original writer populates; every field the
// original leaves zero (depth, pitch, reserved, mipmap caps beyond the base
// surface) is omitted here and written as zero directly.
type Header struct {
	Height      uint32
	Width       uint32
	PicSize     uint32
	MipCount    uint32
	FourCC      FourCC
	AlphaPixels bool
}

// WriteHeader emits the 128-byte "DDS " magic + header to w.
func WriteHeader(w io.Writer, h Header) error {
	var buf [128]byte
	copy(buf[0:4], "DDS ")
	binary.LittleEndian.PutUint32(buf[4:8], headerSize)
	binary.LittleEndian.PutUint32(buf[8:12], ddsFlags)
	binary.LittleEndian.PutUint32(buf[12:16], h.Height)
	binary.LittleEndian.PutUint32(buf[16:20], h.Width)
	binary.LittleEndian.PutUint32(buf[20:24], h.PicSize)
	// buf[24:28] depth, left zero
	binary.LittleEndian.PutUint32(buf[28:32], h.MipCount)
	// buf[32:76] reserved1, left zero

	binary.LittleEndian.PutUint32(buf[76:80], pixelFormatSize)
	pfFlags := uint32(ddpfFourCCOnly)
	if h.AlphaPixels {
		pfFlags = ddpfAlphaPixels
	}
	binary.LittleEndian.PutUint32(buf[80:84], pfFlags)
	copy(buf[84:88], h.FourCC[:])
	// buf[88:108] rgb bit masks, left zero (fourcc formats don't use them)

	binary.LittleEndian.PutUint32(buf[108:112], ddsCaps1Complete)
	// buf[112:128] caps2/3/4 + reserved2, left zero

	_, err := w.Write(buf[:])
	return err
}

// PicSize computes the total compressed payload size for one mip level
// (spec §6: block count times per-mode block size).
func PicSize(width, height, blockSize int) uint32 {
	blocksW := (width + 3) / 4
	blocksH := (height + 3) / 4
	return uint32(blocksW * blocksH * blockSize)
}

// MipCount computes the number of mip levels down to 1x1 (spec's
// supplemented -m flag): floor(log2(max(width, height))) + 1, the number of
// levels produced by halving with truncation until both dimensions are 1.
func MipCount(width, height int) int {
	count := 0
	for width >= (1<<uint(count)) || height >= (1<<uint(count)) {
		count++
	}
	return count
}
