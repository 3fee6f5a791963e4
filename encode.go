package s2tc

import (
	"fmt"
	"sync"

	"github.com/deepteams/s2tc/internal/block"
	"github.com/deepteams/s2tc/internal/color"
	"github.com/deepteams/s2tc/internal/dither"
	"github.com/deepteams/s2tc/internal/pool"
	"github.com/deepteams/s2tc/internal/prng"
)

// Options controls block encoding parameters (spec §6's library entry
// point, plus the dither front-end's strategy since the core consumes only
// its quantized output, per spec §4.7).
type Options struct {
	// Mode selects DXT1, DXT3, or DXT5 (default DXT1, the Go zero value).
	Mode block.DxtMode

	// Metric selects the color-distance model (default WAVG).
	Metric color.Metric

	// Candidates selects Normal, Random, or Fast endpoint candidate
	// gathering (default Normal, the Go zero value).
	Candidates block.CandidateMode

	// RandomCount is the number of synthetic bounding-box candidates drawn
	// per tile when Candidates == block.CandidateRandom.
	RandomCount int

	// Refine selects the refinement driver (default Never, the Go zero
	// value).
	Refine block.RefineMode

	// Dither selects the quantization strategy (default None, the Go zero
	// value).
	Dither dither.Strategy

	// Seed is the session seed for the Random candidate mode. Encode
	// derives a separate PRNG Source for every tile from Seed and the
	// tile's block coordinates (see tileSeed), so no Source is shared
	// across goroutines (spec §5).
	Seed uint64
}

// DefaultOptions returns DXT1 encoding with WAVG distance, no refinement,
// no dithering: the cheapest configuration, matching the reference tool's
// "-t DXT1" behavior absent an explicit metric choice.
func DefaultOptions() *Options {
	return &Options{
		Mode:   block.DXT1,
		Metric: color.WAVG,
		Seed:   1,
	}
}

func validateOptions(opts *Options) error {
	if opts.Mode < block.DXT1 || opts.Mode > block.DXT5 {
		return fmt.Errorf("%w: %d", ErrUnknownDxtMode, opts.Mode)
	}
	if opts.Metric < color.AVG || opts.Metric > color.NormalMap {
		return fmt.Errorf("%w: %d", ErrUnknownMetric, opts.Metric)
	}
	if opts.Candidates < block.CandidateNormal || opts.Candidates > block.CandidateFast {
		return fmt.Errorf("%w: %d", ErrUnknownCandidateMode, opts.Candidates)
	}
	if opts.Refine < block.RefineNever || opts.Refine > block.RefineLoop {
		return fmt.Errorf("%w: %d", ErrUnknownRefineMode, opts.Refine)
	}
	if opts.Metric == color.NormalMap && opts.Candidates == block.CandidateFast {
		return ErrNormalMapFast
	}
	if opts.Candidates == block.CandidateRandom && opts.RandomCount > 0 && opts.Seed == 0 {
		return ErrRandomNeedsPRNG
	}
	return nil
}

// Sample is one source RGBA8 pixel, as read by the caller-supplied
// accessor (spec §6's input_rgba, BGR/RGB ordering resolved by the
// caller).
type Sample = dither.Sample

// Encode implements spec §6's library entry point: it dithers the source
// image once, then encodes each 4x4 tile independently and in parallel
// (spec §5), writing row-major blocks into output at outputRowStride bytes
// per block row. Width and height need not be multiples of 4; edge tiles
// are encoded from the truncated pixel set.
//
// at(x, y) must return the source pixel at those image coordinates for
// 0 <= x < width, 0 <= y < height; it is called exactly once per pixel,
// from a single goroutine, during the dither pass.
func Encode(width, height int, at func(x, y int) Sample, output []byte, outputRowStride int, opts *Options) error {
	if opts == nil {
		opts = DefaultOptions()
	}
	if err := validateOptions(opts); err != nil {
		return err
	}
	if width <= 0 || height <= 0 {
		return ErrZeroSize
	}

	blocksW := (width + 3) / 4
	blocksH := (height + 3) / 4
	blockSize := opts.Mode.BlockSize()
	if outputRowStride < blocksW*blockSize {
		return ErrOutputStride
	}
	if len(output) < outputRowStride*(blocksH-1)+blocksW*blockSize {
		return ErrOutputTooSmall
	}

	alphaBits := 8
	if opts.Mode == block.DXT1 {
		alphaBits = 1
	} else if opts.Mode == block.DXT3 {
		alphaBits = 4
	}
	quantized := dither.Quantize(opts.Dither, alphaBits, width, height, at)

	accessor := func(x, y int) (color.Color, uint8, bool) {
		if x < 0 || y < 0 || x >= width || y >= height {
			return color.Color{}, 0, false
		}
		q := quantized[y*width+x]
		return q.C, q.A, true
	}

	var wg sync.WaitGroup
	rows := make(chan int, blocksH)
	for by := 0; by < blocksH; by++ {
		rows <- by
	}
	close(rows)

	workers := blocksH
	if workers > 16 {
		workers = 16
	}
	if workers < 1 {
		workers = 1
	}

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			buf := pool.Get(outputRowStride)
			defer pool.Put(buf)
			for by := range rows {
				encodeBlockRow(by, width, height, blocksW, opts, accessor, buf[:outputRowStride])
				copy(output[by*outputRowStride:], buf[:blocksW*blockSize])
			}
		}()
	}
	wg.Wait()
	return nil
}

// tileSeed derives a deterministic per-tile PRNG seed from the session seed
// and the tile's block coordinates, so output is independent of which
// worker goroutine happens to process a given row (spec §8 property 1:
// determinism under a fixed seed, regardless of scheduling).
func tileSeed(sessionSeed uint64, bx, by int) uint64 {
	x := sessionSeed ^ uint64(bx)*0x9E3779B97F4A7C15 ^ uint64(by)*0xC2B2AE3D27D4EB4F
	x ^= x >> 33
	x *= 0xFF51AFD7ED558CCD
	x ^= x >> 33
	x *= 0xC4CEB9FE1A85EC53
	x ^= x >> 33
	return x
}

func encodeBlockRow(by, width, height, blocksW int, opts *Options, accessor block.Get, rowBuf []byte) {
	blockSize := opts.Mode.BlockSize()
	for bx := 0; bx < blocksW; bx++ {
		tile := block.ExtractTile(accessor, width, height, bx, by)
		rng := prng.New(tileSeed(opts.Seed, bx, by))
		packed := block.EncodeTile(tile, opts.Mode, opts.Metric, opts.Candidates, opts.Refine, opts.RandomCount, rng)
		copy(rowBuf[bx*blockSize:], packed)
	}
}
