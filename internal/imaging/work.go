package imaging

import (
	"image"

	"github.com/disintegration/imaging"
)

// WorkImage is a detection-sized copy of a source photo.
//
// Card photos come straight off a phone camera and can be 12MP or more;
// detection does not need that resolution. Scale is the factor that was
// applied: work coordinate / Scale = source coordinate. Scale is 1.0 when
// the source was already small enough.
type WorkImage struct {
	Image image.Image
	Scale float64
}

// Downscale resizes img so its longer side is at most maxDim, using Lanczos
// resampling. It never upscales.
func Downscale(img image.Image, maxDim int) *WorkImage {
	bounds := img.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()

	longest := w
	if h > longest {
		longest = h
	}
	if maxDim <= 0 || longest <= maxDim {
		return &WorkImage{Image: img, Scale: 1.0}
	}

	scale := float64(maxDim) / float64(longest)
	resized := imaging.Resize(img, int(float64(w)*scale), int(float64(h)*scale), imaging.Lanczos)
	return &WorkImage{Image: resized, Scale: scale}
}
