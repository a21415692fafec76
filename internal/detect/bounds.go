package detect

import "errors"

// ErrNoCard is returned when a detector cannot find a plausible card
// rectangle in the image.
var ErrNoCard = errors.New("no card detected")

// Bounds represents a rectangular bounding box in pixel coordinates.
//
// The coordinate convention follows standard image bounds:
//   - (X1, Y1) is the top-left corner (inclusive)
//   - (X2, Y2) is the bottom-right corner (exclusive)
type Bounds struct {
	X1 int `json:"x1"` // Left edge (inclusive)
	Y1 int `json:"y1"` // Top edge (inclusive)
	X2 int `json:"x2"` // Right edge (exclusive)
	Y2 int `json:"y2"` // Bottom edge (exclusive)
}

// Width returns the horizontal extent in pixels.
func (b Bounds) Width() int { return b.X2 - b.X1 }

// Height returns the vertical extent in pixels.
func (b Bounds) Height() int { return b.Y2 - b.Y1 }

// AspectRatio returns height divided by width. A portrait card is > 1.
// Returns 0 when the width is not positive.
func (b Bounds) AspectRatio() float64 {
	if b.Width() <= 0 {
		return 0
	}
	return float64(b.Height()) / float64(b.Width())
}

// Clamp constrains the bounds to an image of the given dimensions.
func (b Bounds) Clamp(imgW, imgH int) Bounds {
	if b.X1 < 0 {
		b.X1 = 0
	}
	if b.Y1 < 0 {
		b.Y1 = 0
	}
	if b.X2 > imgW {
		b.X2 = imgW
	}
	if b.Y2 > imgH {
		b.Y2 = imgH
	}
	return b
}

// Scale multiplies all coordinates by factor. Used to map work-image bounds
// back to source-image coordinates (factor = 1 / work scale).
func (b Bounds) Scale(factor float64) Bounds {
	return Bounds{
		X1: int(float64(b.X1) * factor),
		Y1: int(float64(b.Y1) * factor),
		X2: int(float64(b.X2) * factor),
		Y2: int(float64(b.Y2) * factor),
	}
}

// Method identifies which detection strategy produced a result.
type Method string

const (
	// MethodBrightness is the luminance-threshold detector for dark cards
	// on light backgrounds.
	MethodBrightness Method = "brightness"

	// MethodEdges is the gradient-based detector that also handles dark
	// backgrounds.
	MethodEdges Method = "edges"

	// MethodCenter is the fixed centered fallback used when detection
	// fails entirely.
	MethodCenter Method = "center"
)

// Detection is the result of locating the card in a work image.
type Detection struct {
	// Bounds is the detected card rectangle in work-image coordinates.
	Bounds Bounds `json:"bounds"`

	// Method is the strategy that produced the bounds.
	Method Method `json:"method"`

	// Confidence indicates detection quality (0.0 to 1.0). For the
	// brightness detector this is the dark-pixel coverage of the detected
	// box; for the edge detector, the strong-edge coverage of its border.
	Confidence float64 `json:"confidence"`
}
