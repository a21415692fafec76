package crop

import (
	"math"

	"github.com/ironsheep/cardprep/internal/detect"
)

// MethodManual marks reports produced by the manual pipelines, which involve
// no detection.
const MethodManual = detect.Method("manual")

// Report describes a completed crop.
type Report struct {
	// Input and Output are the file paths involved. They are equal when
	// the crop overwrote the original.
	Input  string `json:"input"`
	Output string `json:"output"`

	// OriginalWidth / OriginalHeight are the source photo dimensions.
	OriginalWidth  int `json:"original_width"`
	OriginalHeight int `json:"original_height"`

	// CroppedWidth / CroppedHeight are the output dimensions.
	CroppedWidth  int `json:"cropped_width"`
	CroppedHeight int `json:"cropped_height"`

	// Bounds is the crop rectangle in source-image coordinates.
	Bounds detect.Bounds `json:"bounds"`

	// Method is the strategy that chose the rectangle.
	Method detect.Method `json:"method"`

	// Confidence is the detection confidence, 0 for manual and center
	// crops.
	Confidence float64 `json:"confidence"`

	// AspectRatio is the output height/width ratio.
	AspectRatio float64 `json:"aspect_ratio"`

	// GoodAspectMin / GoodAspectMax is the band GoodAspect checks
	// against. Zero values mean the card defaults [1.2, 1.6].
	GoodAspectMin float64 `json:"good_aspect_min,omitempty"`
	GoodAspectMax float64 `json:"good_aspect_max,omitempty"`

	// OriginalBytes / CroppedBytes are file sizes, used for the savings
	// line the content workflow likes to see.
	OriginalBytes  int64   `json:"original_bytes"`
	CroppedBytes   int64   `json:"cropped_bytes"`
	SavingsPercent float64 `json:"savings_percent"`
}

// GoodAspectBand returns the band GoodAspect checks against, substituting
// the card defaults for unset values.
func (r *Report) GoodAspectBand() (min, max float64) {
	min, max = r.GoodAspectMin, r.GoodAspectMax
	if min == 0 {
		min = detect.AspectGoodMin
	}
	if max == 0 {
		max = detect.AspectGoodMax
	}
	return min, max
}

// GoodAspect reports whether the output sits inside the card band.
func (r *Report) GoodAspect() bool {
	min, max := r.GoodAspectBand()
	return r.AspectRatio >= min && r.AspectRatio <= max
}

func savingsPercent(original, cropped int64) float64 {
	if original <= 0 {
		return 0
	}
	s := float64(original-cropped) / float64(original) * 100
	return math.Round(s*10) / 10
}
