package crop

import (
	"fmt"
	"image"

	dimg "github.com/disintegration/imaging"

	"github.com/ironsheep/cardprep/internal/detect"
	"github.com/ironsheep/cardprep/internal/imaging"
)

// Insets specifies how much to remove from each side, either as percentages
// of the image dimensions or as pixel counts depending on the pipeline.
type Insets struct {
	Top    int `json:"top"`
	Bottom int `json:"bottom"`
	Left   int `json:"left"`
	Right  int `json:"right"`
}

// ManualPercent crops the given percentage off each side of the image.
//
// Returns an error when the insets leave nothing behind.
func ManualPercent(cache *imaging.ImageCache, input, output string, in Insets, quality int) (*Report, error) {
	img, err := cache.Load(input)
	if err != nil {
		return nil, err
	}

	w := img.Bounds().Dx()
	h := img.Bounds().Dy()

	box := detect.Bounds{
		X1: w * in.Left / 100,
		Y1: h * in.Top / 100,
		X2: w * (100 - in.Right) / 100,
		Y2: h * (100 - in.Bottom) / 100,
	}
	return manualCrop(cache, img, input, output, box, quality)
}

// ManualPixels crops an exact pixel count off each side of the image.
func ManualPixels(cache *imaging.ImageCache, input, output string, in Insets, quality int) (*Report, error) {
	img, err := cache.Load(input)
	if err != nil {
		return nil, err
	}

	w := img.Bounds().Dx()
	h := img.Bounds().Dy()

	box := detect.Bounds{
		X1: in.Left,
		Y1: in.Top,
		X2: w - in.Right,
		Y2: h - in.Bottom,
	}
	return manualCrop(cache, img, input, output, box, quality)
}

func manualCrop(cache *imaging.ImageCache, img image.Image, input, output string, box detect.Bounds, quality int) (*Report, error) {
	w := img.Bounds().Dx()
	h := img.Bounds().Dy()

	if box.X1 >= box.X2 || box.Y1 >= box.Y2 {
		return nil, fmt.Errorf("crop %s: insets too large, nothing would remain (left=%d right=%d top=%d bottom=%d)",
			input, box.X1, box.X2, box.Y1, box.Y2)
	}
	box = box.Clamp(w, h)

	originalBytes, err := imaging.FileSize(input)
	if err != nil {
		return nil, err
	}

	cropped := dimg.Crop(img, image.Rect(box.X1, box.Y1, box.X2, box.Y2))
	if err := imaging.Save(cropped, output, quality); err != nil {
		return nil, err
	}
	cache.Evict(input)

	croppedBytes, err := imaging.FileSize(output)
	if err != nil {
		return nil, err
	}

	return &Report{
		Input:          input,
		Output:         output,
		OriginalWidth:  w,
		OriginalHeight: h,
		CroppedWidth:   box.Width(),
		CroppedHeight:  box.Height(),
		Bounds:         box,
		Method:         MethodManual,
		AspectRatio:    box.AspectRatio(),
		OriginalBytes:  originalBytes,
		CroppedBytes:   croppedBytes,
		SavingsPercent: savingsPercent(originalBytes, croppedBytes),
	}, nil
}
