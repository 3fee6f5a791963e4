// Package s2tc provides a pure Go encoder for the S2TC family of
// block-compressed texture formats: DXT1, DXT3, and DXT5.
//
// S2TC is a patent-avoiding subset of S3TC/DXT that never emits the
// interpolated 2/3:1/3 ramp codepoints a full S3TC decoder supports —
// every output block uses only its two endpoints (and, for DXT1,
// punch-through transparency). The encoder is content-aware across seven
// perceptual color-distance metrics and supports optional iterative
// endpoint refinement.
//
// The package supports:
//   - DXT1 encoding, with optional 1-bit punch-through transparency
//   - DXT3 encoding (4-bit explicit alpha)
//   - DXT5 encoding (3-bit indexed alpha ramp)
//   - Seven color-distance metrics: AVG, WAVG, RGB, YUV, SRGB, SRGB_MIXED,
//     NORMALMAP
//   - Four refinement strategies: Never, Always, Check, Loop
//   - A companion transcoder that rewrites arbitrary S3TC blocks to
//     S2TC-conformant ones
//
// Basic usage for encoding:
//
//	opts := s2tc.DefaultOptions()
//	opts.Mode = block.DXT5
//	opts.Metric = color.WAVG
//	opts.Refine = block.RefineLoop
//	err := s2tc.Encode(width, height, sampleAt, output, outputStride, opts)
package s2tc
