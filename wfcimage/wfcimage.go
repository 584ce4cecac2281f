package wfcimage

import (
	"image"
	"image/color"

	"github.com/katalvlaran/wavegrid/grid"
	"github.com/katalvlaran/wavegrid/orientation"
	"github.com/katalvlaran/wavegrid/overlapping"
	"github.com/katalvlaran/wavegrid/wfc"
)

// ImagePatterns is the pattern model learned from an example image,
// together with the fallback colour for unresolved cells. Immutable once
// built; safely shareable read-only across concurrent attempts.
type ImagePatterns struct {
	patterns    *overlapping.Patterns[color.RGBA]
	emptyColour color.RGBA
}

// New learns the overlapping-pattern model from img under the given
// pattern size and orientation set. The default fallback colour is fully
// transparent. Malformed inputs surface the overlapping package's
// sentinel errors before any extraction work.
// Complexity: O(|orientations|×W×H×P²).
func New(img image.Image, patternSize int, orientations []orientation.Orientation) (*ImagePatterns, error) {
	g, err := gridFromImage(img)
	if err != nil {
		return nil, err
	}
	patterns, err := overlapping.New(g, patternSize, orientations)
	if err != nil {
		return nil, err
	}

	return &ImagePatterns{
		patterns:    patterns,
		emptyColour: color.RGBA{},
	}, nil
}

// gridFromImage converts img into a sample grid of straight RGBA pixels.
func gridFromImage(img image.Image) (*grid.Grid[color.RGBA], error) {
	bounds := img.Bounds()
	size := grid.Size{Width: bounds.Dx(), Height: bounds.Dy()}

	return grid.NewFunc(size, func(c grid.Coord) color.RGBA {
		return color.RGBAModel.Convert(img.At(bounds.Min.X+c.X, bounds.Min.Y+c.Y)).(color.RGBA)
	})
}

// SetEmptyColour replaces the fallback colour emitted for unresolved
// cells. Complexity: O(1).
func (ip *ImagePatterns) SetEmptyColour(c color.RGBA) {
	ip.emptyColour = c
}

// EmptyColour returns the current fallback colour. Complexity: O(1).
func (ip *ImagePatterns) EmptyColour() color.RGBA {
	return ip.emptyColour
}

// Patterns exposes the underlying pattern model. Complexity: O(1).
func (ip *ImagePatterns) Patterns() *overlapping.Patterns[color.RGBA] {
	return ip.patterns
}

// Grid returns the retained input pixel grid; treat it as read-only.
// Complexity: O(1).
func (ip *ImagePatterns) Grid() *grid.Grid[color.RGBA] {
	return ip.patterns.Grid()
}

// GlobalStats derives the solver handoff structure from the model.
// Complexity: O(N²×4×P²).
func (ip *ImagePatterns) GlobalStats() *wfc.GlobalStats {
	return ip.patterns.GlobalStats()
}

// ImageFromWave materializes a wave — complete or partial — into an
// image: a cell committed to one pattern becomes that pattern's top-left
// pixel; a cell without a committed pattern becomes the fallback colour.
// Pure over the retained model and the supplied wave.
// Complexity: O(cells×N).
func (ip *ImagePatterns) ImageFromWave(w *wfc.Wave) *image.RGBA {
	size := w.Size()
	out := image.NewRGBA(image.Rect(0, 0, size.Width, size.Height))
	for y := 0; y < size.Height; y++ {
		for x := 0; x < size.Width; x++ {
			colour := ip.emptyColour
			if id, err := w.Cell(grid.Coord{X: x, Y: y}).ChosenPatternID(); err == nil {
				colour = ip.patterns.PatternTopLeftValue(id)
			}
			out.SetRGBA(x, y, colour)
		}
	}

	return out
}

// WeightedAverageColour inspects an in-progress or under-constrained
// cell without collapsing it. Exactly four cases:
//
//  1. zero compatible patterns → the fallback colour;
//  2. one compatible pattern without a meaningful weight → that
//     pattern's top-left pixel exactly;
//  3. several compatible patterns without meaningful weights → the
//     fallback colour (averaging without weights is not attempted);
//  4. compatible patterns with meaningful weights → per-channel
//     truncating weighted mean.
//
// Pure. Complexity: O(N).
func (ip *ImagePatterns) WeightedAverageColour(cell wfc.WaveCellRef) color.RGBA {
	patterns, weighted := cell.EnumerateCompatible()
	switch {
	case len(patterns) == 0:
		return ip.emptyColour
	case !weighted && len(patterns) == 1:
		return ip.patterns.PatternTopLeftValue(patterns[0].ID)
	case !weighted:
		return ip.emptyColour
	}

	var r, g, b, a, total uint64
	for _, pw := range patterns {
		c := ip.patterns.PatternTopLeftValue(pw.ID)
		w := uint64(pw.Weight)
		r += uint64(c.R) * w
		g += uint64(c.G) * w
		b += uint64(c.B) * w
		a += uint64(c.A) * w
		total += w
	}

	return color.RGBA{
		R: uint8(r / total),
		G: uint8(g / total),
		B: uint8(b / total),
		A: uint8(a / total),
	}
}
