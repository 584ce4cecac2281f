package wfcimage

import (
	"image"
	"math/rand"
	"time"

	"github.com/katalvlaran/wavegrid/grid"
	"github.com/katalvlaran/wavegrid/orientation"
	"github.com/katalvlaran/wavegrid/retry"
	"github.com/katalvlaran/wavegrid/wfc"
)

// ImageRetry adapts a generic retry policy's raw return into the image
// domain. Forever yields an image unconditionally; the bounded policies
// yield an image or a contradiction-class error. This two-step split —
// generic retry, then domain adapter — keeps the retry policies reusable
// for non-image uses of the solving engine.
type ImageRetry interface {
	collapseImage(ip *ImagePatterns, fn retry.Func[*wfc.Wave], rng *rand.Rand) (image.Image, error)
}

// Forever retries until a contradiction-free solution is found; its
// adapter never returns an error.
type Forever struct{}

// NumTimes attempts up to Times sequential collapses.
type NumTimes struct {
	Times int
}

// ParNumTimes spreads up to Times collapses across Workers concurrent
// solver instances; first success wins.
type ParNumTimes struct {
	Times   int
	Workers int
}

func (Forever) collapseImage(ip *ImagePatterns, fn retry.Func[*wfc.Wave], rng *rand.Rand) (image.Image, error) {
	return ip.ImageFromWave(retry.Forever[*wfc.Wave]{}.Retry(fn, rng)), nil
}

func (p NumTimes) collapseImage(ip *ImagePatterns, fn retry.Func[*wfc.Wave], rng *rand.Rand) (image.Image, error) {
	w, err := retry.NumTimes[*wfc.Wave]{N: p.Times}.Retry(fn, rng)
	if err != nil {
		return nil, err
	}

	return ip.ImageFromWave(w), nil
}

func (p ParNumTimes) collapseImage(ip *ImagePatterns, fn retry.Func[*wfc.Wave], rng *rand.Rand) (image.Image, error) {
	w, err := retry.ParNumTimes[*wfc.Wave]{N: p.Times, Workers: p.Workers}.Retry(fn, rng)
	if err != nil {
		return nil, err
	}

	return ip.ImageFromWave(w), nil
}

// CollapseWaveRetrying derives GlobalStats once, then drives solver
// attempts over outputSize under the chosen wrap mode and forbid rule,
// applying the retry policy around each whole attempt and materializing
// the successful wave. The model is read-only throughout; only the
// solver's random choices differ between attempts.
func (ip *ImagePatterns) CollapseWaveRetrying(outputSize grid.Size, wrapMode wfc.Wrap, forbid wfc.ForbidPattern, r ImageRetry, rng *rand.Rand) (image.Image, error) {
	stats := ip.GlobalStats()
	fn := func(rng *rand.Rand) (*wfc.Wave, error) {
		return wfc.Collapse(stats, outputSize, wrapMode, forbid, rng)
	}

	return r.collapseImage(ip, fn, rng)
}

// GenerateImageWithRNG is the one-call pipeline: learn the pattern model
// from img, then collapse-with-retries into an output image, using the
// supplied randomness source. Malformed inputs fail before any solver
// work; bounded policies surface a contradiction-class error after their
// budget, the Forever policy never fails.
func GenerateImageWithRNG(img image.Image, patternSize int, outputSize grid.Size, orientations []orientation.Orientation, wrapMode wfc.Wrap, forbid wfc.ForbidPattern, r ImageRetry, rng *rand.Rand) (image.Image, error) {
	ip, err := New(img, patternSize, orientations)
	if err != nil {
		return nil, err
	}

	return ip.CollapseWaveRetrying(outputSize, wrapMode, forbid, r, rng)
}

// GenerateImage is GenerateImageWithRNG with a time-seeded source.
func GenerateImage(img image.Image, patternSize int, outputSize grid.Size, orientations []orientation.Orientation, wrapMode wfc.Wrap, forbid wfc.ForbidPattern, r ImageRetry) (image.Image, error) {
	return GenerateImageWithRNG(img, patternSize, outputSize, orientations, wrapMode, forbid, r,
		rand.New(rand.NewSource(time.Now().UnixNano())))
}
