package detect

import (
	"image"
	"sort"

	"github.com/anthonynsimon/bild/blur"
	"github.com/anthonynsimon/bild/effect"
)

const (
	// edgeRowCoverage / edgeColCoverage: fraction of the span a row/column
	// must cover with strong edges to count as part of the card border.
	edgeRowCoverage = 0.08
	edgeColCoverage = 0.08

	// edgePercentile selects the strong-edge cutoff among nonzero gradient
	// magnitudes.
	edgePercentile = 0.85

	// edgeBlurRadius smooths sensor noise before the Sobel pass.
	edgeBlurRadius = 1.4
)

// Edges locates the card by its border gradients, which works on both light
// and dark backgrounds.
//
// The image is grayscaled, blurred, and run through a Sobel filter. Gradient
// magnitudes above the 85th percentile of nonzero responses are strong
// edges; rows and columns where strong edges cover at least 8% of the span
// bound the card. Returns ErrNoCard when nothing qualifies.
func Edges(img image.Image) (*Detection, error) {
	bounds := img.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()
	if w == 0 || h == 0 {
		return nil, ErrNoCard
	}

	gray := effect.Grayscale(img)
	blurred := blur.Gaussian(gray, edgeBlurRadius)
	sobel := effect.Sobel(blurred)

	// Sobel output is grayscale in RGBA; the red channel carries the
	// magnitude.
	mag := make([]uint8, w*h)
	nonzero := make([]uint8, 0, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := sobel.RGBAAt(x, y).R
			mag[y*w+x] = v
			if v > 0 {
				nonzero = append(nonzero, v)
			}
		}
	}
	if len(nonzero) == 0 {
		return nil, ErrNoCard
	}

	sort.Slice(nonzero, func(i, j int) bool { return nonzero[i] < nonzero[j] })
	threshold := nonzero[int(float64(len(nonzero)-1)*edgePercentile)]

	rowCounts := make([]int, h)
	colCounts := make([]int, w)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if mag[y*w+x] > threshold {
				rowCounts[y]++
				colCounts[x]++
			}
		}
	}

	minRow := int(float64(w) * edgeRowCoverage)
	minCol := int(float64(h) * edgeColCoverage)

	top, bottom, okRows := spanOver(rowCounts, minRow)
	left, right, okCols := spanOver(colCounts, minCol)
	if !okRows || !okCols {
		return nil, ErrNoCard
	}

	box := Bounds{X1: left, Y1: top, X2: right + 1, Y2: bottom + 1}

	return &Detection{
		Bounds:     box,
		Method:     MethodEdges,
		Confidence: borderCoverage(mag, threshold, w, box),
	}, nil
}

// borderCoverage measures how much of the detected box's perimeter carries
// strong edges, averaged over the four sides.
func borderCoverage(mag []uint8, threshold uint8, stride int, b Bounds) float64 {
	side := func(x1, y1, x2, y2 int) float64 {
		total, hits := 0, 0
		for y := y1; y < y2; y++ {
			for x := x1; x < x2; x++ {
				total++
				if mag[y*stride+x] > threshold {
					hits++
				}
			}
		}
		if total == 0 {
			return 0
		}
		return float64(hits) / float64(total)
	}

	top := side(b.X1, b.Y1, b.X2, b.Y1+1)
	bottom := side(b.X1, b.Y2-1, b.X2, b.Y2)
	left := side(b.X1, b.Y1, b.X1+1, b.Y2)
	right := side(b.X2-1, b.Y1, b.X2, b.Y2)

	return (top + bottom + left + right) / 4
}
