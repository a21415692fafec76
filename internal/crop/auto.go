package crop

import (
	"errors"
	"fmt"
	"image"

	dimg "github.com/disintegration/imaging"

	"github.com/ironsheep/cardprep/internal/detect"
	"github.com/ironsheep/cardprep/internal/imaging"
)

// Options controls the automatic cropping pipeline.
type Options struct {
	// Margin is the percentage of the detected card size added around it
	// on every side.
	Margin float64

	// Quality is the JPEG encode quality for the output.
	Quality int

	// MaxWorkDim bounds the longer side of the detection work image.
	MaxWorkDim int

	// Method selects the detector: "auto", "brightness", "edges", or
	// "center". Auto tries brightness, then edges, then the centered
	// fallback.
	Method string

	// AspectMin / AspectMax bound the detection ratios accepted as-is;
	// AspectTarget is the ratio used when a detection needs snapping.
	// All three zero means the card defaults apply.
	AspectMin    float64
	AspectMax    float64
	AspectTarget float64

	// GoodAspectMin / GoodAspectMax is the band reported as a good final
	// crop. Zero values mean the card defaults.
	GoodAspectMin float64
	GoodAspectMax float64
}

// DefaultOptions returns the values the content workflow settled on.
func DefaultOptions() Options {
	return Options{
		Margin:        3,
		Quality:       imaging.DefaultQuality,
		MaxWorkDim:    1200,
		Method:        "auto",
		AspectMin:     detect.AspectPlausibleMin,
		AspectMax:     detect.AspectPlausibleMax,
		AspectTarget:  detect.AspectTarget,
		GoodAspectMin: detect.AspectGoodMin,
		GoodAspectMax: detect.AspectGoodMax,
	}
}

// aspectBand resolves the configured snap band, falling back to the card
// defaults when unset.
func (o Options) aspectBand() (min, max, target float64) {
	if o.AspectTarget == 0 {
		return detect.AspectPlausibleMin, detect.AspectPlausibleMax, detect.AspectTarget
	}
	return o.AspectMin, o.AspectMax, o.AspectTarget
}

// Auto detects the card in the input photo, crops it with a margin, and
// saves the result. An empty output path overwrites the input, matching how
// the tip folders are maintained in place.
func Auto(cache *imaging.ImageCache, input, output string, opts Options) (*Report, error) {
	if output == "" {
		output = input
	}

	img, err := cache.Load(input)
	if err != nil {
		return nil, err
	}

	originalBytes, err := imaging.FileSize(input)
	if err != nil {
		return nil, err
	}

	srcBounds := img.Bounds()
	srcW := srcBounds.Dx()
	srcH := srcBounds.Dy()

	work := imaging.Downscale(img, opts.MaxWorkDim)
	workBounds := work.Image.Bounds()

	det, err := detectCard(work.Image, opts.Method)
	if err != nil {
		return nil, err
	}

	// The centered fallback already includes its own margin; only real
	// detections get the configured margin added.
	box := det.Bounds
	if det.Method != detect.MethodCenter {
		box = detect.ExpandMargin(box, opts.Margin, workBounds.Dx(), workBounds.Dy())
	}
	box = box.Scale(1 / work.Scale).Clamp(srcW, srcH)

	aMin, aMax, aTarget := opts.aspectBand()
	box = detect.SnapAspectRange(box, srcW, srcH, aMin, aMax, aTarget)

	if box.Width() <= 0 || box.Height() <= 0 {
		return nil, fmt.Errorf("crop %s: empty region %+v", input, box)
	}

	cropped := dimg.Crop(img, image.Rect(box.X1, box.Y1, box.X2, box.Y2))
	if err := imaging.Save(cropped, output, opts.Quality); err != nil {
		return nil, err
	}

	// The cache entry is stale once the file is overwritten.
	cache.Evict(input)

	croppedBytes, err := imaging.FileSize(output)
	if err != nil {
		return nil, err
	}

	return &Report{
		Input:          input,
		Output:         output,
		OriginalWidth:  srcW,
		OriginalHeight: srcH,
		CroppedWidth:   box.Width(),
		CroppedHeight:  box.Height(),
		Bounds:         box,
		Method:         det.Method,
		Confidence:     det.Confidence,
		AspectRatio:    box.AspectRatio(),
		GoodAspectMin:  opts.GoodAspectMin,
		GoodAspectMax:  opts.GoodAspectMax,
		OriginalBytes:  originalBytes,
		CroppedBytes:   croppedBytes,
		SavingsPercent: savingsPercent(originalBytes, croppedBytes),
	}, nil
}

// detectCard runs the requested detector. In auto mode the brightness pass
// goes first because most shots are on the light marble desk; the edge pass
// covers the dark wooden desk; the centered crop is the last resort. A
// fallback after the edge pass keeps the wider edge-path margin.
func detectCard(work image.Image, method string) (*detect.Detection, error) {
	bounds := work.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()

	center := detect.CenterCrop(w, h, detect.CenterFallbackMargin)
	edgeCenter := detect.CenterCrop(w, h, detect.EdgeFallbackMargin)

	switch method {
	case "brightness":
		det, err := detect.Brightness(work)
		if errors.Is(err, detect.ErrNoCard) {
			return center, nil
		}
		return det, err
	case "edges":
		det, err := detect.Edges(work)
		if errors.Is(err, detect.ErrNoCard) {
			return edgeCenter, nil
		}
		return det, err
	case "center":
		return center, nil
	case "", "auto":
		if det, err := detect.Brightness(work); err == nil {
			return det, nil
		} else if !errors.Is(err, detect.ErrNoCard) {
			return nil, err
		}
		if det, err := detect.Edges(work); err == nil {
			return det, nil
		} else if !errors.Is(err, detect.ErrNoCard) {
			return nil, err
		}
		return edgeCenter, nil
	default:
		return nil, fmt.Errorf("unknown detection method: %s", method)
	}
}
