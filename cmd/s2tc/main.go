// Command s2tc compresses a TGA image into a DXT1/DXT3/DXT5 DDS texture
// using the S2TC patent-avoiding block encoding (spec §6's CLI surface).
//
// Usage:
//
//	s2tc -i infile.tga -o outfile.dds [-t DXT1|DXT3|DXT5] [-r N] [-c METRIC] [-m] [-v]
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/deepteams/s2tc"
	"github.com/deepteams/s2tc/internal/block"
	"github.com/deepteams/s2tc/internal/color"
	"github.com/deepteams/s2tc/internal/dds"
	"github.com/deepteams/s2tc/internal/mipmap"
	"github.com/deepteams/s2tc/internal/tga"
)

func main() {
	os.Exit(run())
}

// run returns the process exit code: 0 on success, 1 on usage error, 2 on
// I/O failure (spec §6).
func run() int {
	fs := flag.NewFlagSet("s2tc", flag.ContinueOnError)
	infile := fs.String("i", "", "input TGA file")
	outfile := fs.String("o", "", "output DDS file")
	modeFlag := fs.String("t", "DXT1", "target format: DXT1, DXT3, or DXT5")
	random := fs.Int("r", 0, "random candidate count (0 disables random candidate mode)")
	metricFlag := fs.String("c", "WAVG", "color distance metric: RGB, YUV, SRGB, SRGB_MIXED, AVG, WAVG, NORMALMAP")
	mipChain := fs.Bool("m", false, "write a full mip chain instead of a single level")
	verbose := fs.Bool("v", false, "log progress to s2tc.log")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: s2tc -i infile.tga -o outfile.dds [-t DXT1|DXT3|DXT5] [-r N] [-c METRIC] [-m] [-v]\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(os.Args[1:]); err != nil {
		return 1
	}

	log := newLogger(*verbose)
	defer log.Sync()

	mode, err := parseMode(*modeFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fs.Usage()
		return 1
	}
	metric, err := parseMetric(*metricFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fs.Usage()
		return 1
	}
	if *infile == "" || *outfile == "" {
		fmt.Fprintln(os.Stderr, "s2tc: -i and -o are required")
		fs.Usage()
		return 1
	}

	if err := encodeFile(*infile, *outfile, mode, metric, *random, *mipChain, log); err != nil {
		fmt.Fprintf(os.Stderr, "s2tc: %v\n", err)
		return 2
	}
	return 0
}

func newLogger(verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	w := zapcore.AddSync(&lumberjack.Logger{
		Filename:   "s2tc.log",
		MaxSize:    10,
		MaxBackups: 3,
	})
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()), w, zapcore.InfoLevel)
	return zap.New(core)
}

func parseMode(s string) (block.DxtMode, error) {
	switch s {
	case "DXT1":
		return block.DXT1, nil
	case "DXT3":
		return block.DXT3, nil
	case "DXT5":
		return block.DXT5, nil
	default:
		return 0, fmt.Errorf("s2tc: unknown format %q (want DXT1, DXT3, or DXT5)", s)
	}
}

func parseMetric(s string) (color.Metric, error) {
	switch s {
	case "AVG":
		return color.AVG, nil
	case "WAVG":
		return color.WAVG, nil
	case "RGB":
		return color.RGB, nil
	case "YUV":
		return color.YUV, nil
	case "SRGB":
		return color.SRGB, nil
	case "SRGB_MIXED":
		return color.SRGBMixed, nil
	case "NORMALMAP":
		return color.NormalMap, nil
	default:
		return 0, fmt.Errorf("s2tc: unknown metric %q", s)
	}
}

func encodeFile(infile, outfile string, mode block.DxtMode, metric color.Metric, random int, mipChain bool, log *zap.Logger) error {
	raw, err := os.ReadFile(infile)
	if err != nil {
		return errors.Wrap(err, "reading input file")
	}
	img, err := tga.Load(raw)
	if err != nil {
		return errors.Wrap(err, "decoding TGA")
	}
	log.Info("loaded image", zap.Int("width", img.Width), zap.Int("height", img.Height))

	out, err := os.Create(outfile)
	if err != nil {
		return errors.Wrap(err, "creating output file")
	}
	defer out.Close()

	width, height := img.Width, img.Height
	mipCount := 1
	if mipChain {
		mipCount = dds.MipCount(width, height)
	}

	alphaPixels := hasAlpha(img.Pix)
	fourcc := dds.FourCCDXT1
	switch mode {
	case block.DXT3:
		fourcc = dds.FourCCDXT3
	case block.DXT5:
		fourcc = dds.FourCCDXT5
	}
	header := dds.Header{
		Height:      uint32(height),
		Width:       uint32(width),
		PicSize:     dds.PicSize(width, height, mode.BlockSize()),
		MipCount:    uint32(mipCount),
		FourCC:      fourcc,
		AlphaPixels: alphaPixels,
	}
	if err := dds.WriteHeader(out, header); err != nil {
		return errors.Wrap(err, "writing DDS header")
	}

	pix, w, h := img.Pix, width, height
	for level := 0; ; level++ {
		blocksW := (w + 3) / 4
		payload := make([]byte, blocksW*mode.BlockSize()*((h+3)/4))
		opts := &s2tc.Options{Mode: mode, Metric: metric, Seed: 1}
		if random > 0 {
			opts.Candidates = block.CandidateRandom
			opts.RandomCount = random
		}
		at := func(x, y int) s2tc.Sample {
			i := (y*w + x) * 4
			return s2tc.Sample{R: pix[i+2], G: pix[i+1], B: pix[i], A: pix[i+3]}
		}
		if err := s2tc.Encode(w, h, at, payload, blocksW*mode.BlockSize(), opts); err != nil {
			return errors.Wrap(err, "encoding block level")
		}
		if _, err := out.Write(payload); err != nil {
			return errors.Wrap(err, "writing block level")
		}
		log.Info("wrote mip level", zap.Int("level", level), zap.Int("width", w), zap.Int("height", h))

		if !mipChain || (w == 1 && h == 1) {
			break
		}
		pix, w, h = mipmap.Reduce(pix, w, h)
	}
	return nil
}

func hasAlpha(pix []byte) bool {
	for i := 3; i < len(pix); i += 4 {
		if pix[i] != 255 {
			return true
		}
	}
	return false
}
