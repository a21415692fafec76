package detect

import (
	"image"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Coverage fractions a row/column must exceed to count as part of the card.
// The card spans well over this share of the frame in every usable shot.
const (
	darkRowCoverage = 0.15 // fraction of width
	darkColCoverage = 0.15 // fraction of height
)

// thresholdStdFactor sets how far below the mean a pixel must fall to be
// considered card rather than background.
const thresholdStdFactor = 0.8

// Brightness locates a dark card against a lighter background.
//
// Pixels darker than mean − 0.8·std of the image's perceptual lightness form
// a mask; rows and columns where the mask covers at least 15% of the span
// bound the card. Returns ErrNoCard when no row or no column qualifies,
// which happens on dark backgrounds or when no card is in frame.
func Brightness(img image.Image) (*Detection, error) {
	bounds := img.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()
	if w == 0 || h == 0 {
		return nil, ErrNoCard
	}

	lum := lightnessMap(img)

	var sum, sumSq float64
	for _, l := range lum {
		sum += l
		sumSq += l * l
	}
	n := float64(len(lum))
	mean := sum / n
	std := math.Sqrt(sumSq/n - mean*mean)

	threshold := mean - std*thresholdStdFactor

	rowCounts := make([]int, h)
	colCounts := make([]int, w)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if lum[y*w+x] < threshold {
				rowCounts[y]++
				colCounts[x]++
			}
		}
	}

	minRow := int(float64(w) * darkRowCoverage)
	minCol := int(float64(h) * darkColCoverage)

	top, bottom, okRows := spanOver(rowCounts, minRow)
	left, right, okCols := spanOver(colCounts, minCol)
	if !okRows || !okCols {
		return nil, ErrNoCard
	}

	box := Bounds{X1: left, Y1: top, X2: right + 1, Y2: bottom + 1}

	// Confidence: how solidly dark the detected box actually is.
	dark := 0
	for y := box.Y1; y < box.Y2; y++ {
		for x := box.X1; x < box.X2; x++ {
			if lum[y*w+x] < threshold {
				dark++
			}
		}
	}
	confidence := float64(dark) / float64(box.Width()*box.Height())

	return &Detection{
		Bounds:     box,
		Method:     MethodBrightness,
		Confidence: confidence,
	}, nil
}

// lightnessMap computes per-pixel perceptual lightness (CIE Lab L, 0..1) in
// row-major order. Fully transparent pixels read as background white.
func lightnessMap(img image.Image) []float64 {
	bounds := img.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()

	lum := make([]float64, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c, ok := colorful.MakeColor(img.At(x+bounds.Min.X, y+bounds.Min.Y))
			if !ok {
				lum[y*w+x] = 1.0
				continue
			}
			l, _, _ := c.Lab()
			lum[y*w+x] = l
		}
	}
	return lum
}

// spanOver returns the first and last indices whose count exceeds min.
func spanOver(counts []int, min int) (first, last int, ok bool) {
	first = -1
	for i, c := range counts {
		if c > min {
			if first == -1 {
				first = i
			}
			last = i
		}
	}
	return first, last, first != -1
}
