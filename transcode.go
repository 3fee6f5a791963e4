package s2tc

import (
	"github.com/deepteams/s2tc/internal/block"
	"github.com/deepteams/s2tc/internal/transcode"
)

// Transcode rewrites a buffer of packed blocks of the given mode in place so
// every block satisfies the S2TC-conformant codepoint subset (spec §4.6),
// without changing the decoded appearance of any block that a full S3TC
// decoder would already reproduce losslessly. It accepts output produced by
// any S3TC-compatible encoder, not just this package's own Encode.
//
// buf's length must be a multiple of mode.BlockSize(); each block is
// rewritten independently.
func Transcode(mode block.DxtMode, buf []byte) error {
	if mode < block.DXT1 || mode > block.DXT5 {
		return ErrUnknownDxtMode
	}
	blockSize := mode.BlockSize()
	if len(buf)%blockSize != 0 {
		return ErrOutputTooSmall
	}
	for off := 0; off < len(buf); off += blockSize {
		transcode.Block(mode, buf[off:off+blockSize])
	}
	return nil
}
