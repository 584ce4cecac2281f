package main

import (
	"fmt"
	"image"
	"image/png"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wavegrid/grid"
	"github.com/katalvlaran/wavegrid/wfc"
	"github.com/katalvlaran/wavegrid/wfcimage"
)

var (
	genCfg  = defaultGenerateConfig()
	cfgPath string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Learn patterns from an input image and synthesize a new one",
	RunE:  runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.StringVarP(&genCfg.Input, "input", "i", "", "input image (PNG)")
	f.StringVarP(&genCfg.Output, "output", "o", "", "output image (PNG)")
	f.IntVar(&genCfg.PatternSize, "pattern-size", genCfg.PatternSize, "side length of square patterns")
	f.IntVar(&genCfg.Width, "width", genCfg.Width, "output width in pixels")
	f.IntVar(&genCfg.Height, "height", genCfg.Height, "output height in pixels")
	f.StringVar(&genCfg.Orientations, "orientations", genCfg.Orientations, "pattern orientations: all or original")
	f.StringVar(&genCfg.Wrap, "wrap", genCfg.Wrap, "output edge behaviour: none, x, y or xy")
	f.IntVar(&genCfg.Attempts, "attempts", genCfg.Attempts, "solver attempts before giving up; 0 retries forever")
	f.BoolVar(&genCfg.Parallel, "parallel", genCfg.Parallel, "run attempts concurrently")
	f.IntVar(&genCfg.Workers, "workers", genCfg.Workers, "concurrent attempts with --parallel; 0 uses all CPUs")
	f.Int64Var(&genCfg.Seed, "seed", genCfg.Seed, "random seed; 0 seeds from the clock")
	f.StringVar(&genCfg.EmptyColour, "empty-colour", genCfg.EmptyColour, "fallback colour as RRGGBBAA hex")
	f.StringVar(&cfgPath, "config", "", "YAML config file; explicit flags win")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	if cfgPath != "" {
		if err := mergeConfigFile(cmd, &genCfg, cfgPath); err != nil {
			return err
		}
	}
	if genCfg.Input == "" || genCfg.Output == "" {
		return fmt.Errorf("both an input and an output image are required")
	}

	orientations, err := parseOrientations(genCfg.Orientations)
	if err != nil {
		return err
	}
	wrapMode, err := parseWrap(genCfg.Wrap)
	if err != nil {
		return err
	}

	img, err := readImage(genCfg.Input)
	if err != nil {
		return err
	}
	ip, err := wfcimage.New(img, genCfg.PatternSize, orientations)
	if err != nil {
		return err
	}
	if genCfg.EmptyColour != "" {
		c, err := parseColour(genCfg.EmptyColour)
		if err != nil {
			return err
		}
		ip.SetEmptyColour(c)
	}
	logger.Info().
		Str("input", genCfg.Input).
		Int("pattern_size", genCfg.PatternSize).
		Int("patterns", ip.Patterns().NumPatterns()).
		Msg("pattern model learned")

	seed := genCfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	policy := retryPolicy()
	outputSize := grid.Size{Width: genCfg.Width, Height: genCfg.Height}

	start := time.Now()
	out, err := ip.CollapseWaveRetrying(outputSize, wrapMode, wfc.ForbidNothing{}, policy,
		rand.New(rand.NewSource(seed)))
	if err != nil {
		return fmt.Errorf("synthesis: %w", err)
	}
	logger.Info().
		Int("width", genCfg.Width).
		Int("height", genCfg.Height).
		Dur("took", time.Since(start)).
		Msg("synthesis complete")

	if err := writeImage(genCfg.Output, out); err != nil {
		return err
	}
	logger.Info().Str("output", genCfg.Output).Msg("image written")

	return nil
}

func retryPolicy() wfcimage.ImageRetry {
	switch {
	case genCfg.Attempts == 0:
		return wfcimage.Forever{}
	case genCfg.Parallel:
		return wfcimage.ParNumTimes{Times: genCfg.Attempts, Workers: genCfg.Workers}
	default:
		return wfcimage.NumTimes{Times: genCfg.Attempts}
	}
}

func readImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	return img, nil
}

func writeImage(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}

	return nil
}
