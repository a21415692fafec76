package detect

// Card aspect ratio constants (height / width). The promotional cards print
// at roughly 1.4; detections far outside the plausible band get snapped back
// to it.
const (
	// AspectPlausibleMin / AspectPlausibleMax bound ratios accepted as-is.
	AspectPlausibleMin = 1.1
	AspectPlausibleMax = 1.8

	// AspectTarget is the ratio used when a detection needs correction.
	AspectTarget = 1.4

	// AspectGoodMin / AspectGoodMax is the band reported as a good final
	// crop.
	AspectGoodMin = 1.2
	AspectGoodMax = 1.6
)

// Fractional margins of the centered crop used when a detector finds
// nothing. The edge path keeps a little more of the frame because dark
// backgrounds hide more of the card.
const (
	CenterFallbackMargin = 0.15
	EdgeFallbackMargin   = 0.18
)

// SnapAspect corrects detections with implausible aspect ratios using the
// default band [1.1, 1.8] and target 1.4.
func SnapAspect(b Bounds, imgW, imgH int) Bounds {
	return SnapAspectRange(b, imgW, imgH, AspectPlausibleMin, AspectPlausibleMax, AspectTarget)
}

// SnapAspectRange corrects detections whose height/width ratio falls outside
// [min, max]: the detected width is trusted, the height is rederived at the
// target ratio, and the box is recentered on the original detection before
// clamping to the image. Detections inside the band are returned unchanged.
func SnapAspectRange(b Bounds, imgW, imgH int, min, max, target float64) Bounds {
	ratio := b.AspectRatio()
	if ratio >= min && ratio <= max {
		return b
	}

	centerX := (b.X1 + b.X2) / 2
	centerY := (b.Y1 + b.Y2) / 2
	cardW := b.Width()
	cardH := int(float64(cardW) * target)

	snapped := Bounds{
		X1: centerX - cardW/2,
		Y1: centerY - cardH/2,
		X2: centerX + cardW/2,
		Y2: centerY + cardH/2,
	}
	return snapped.Clamp(imgW, imgH)
}

// ExpandMargin grows the bounds on every side by percent of the detected
// width/height, clamped to the image.
func ExpandMargin(b Bounds, percent float64, imgW, imgH int) Bounds {
	marginW := int(float64(b.Width()) * percent / 100)
	marginH := int(float64(b.Height()) * percent / 100)

	expanded := Bounds{
		X1: b.X1 - marginW,
		Y1: b.Y1 - marginH,
		X2: b.X2 + marginW,
		Y2: b.Y2 + marginH,
	}
	return expanded.Clamp(imgW, imgH)
}

// CenterCrop returns the fixed fallback crop: the image with a fractional
// margin removed from every side.
func CenterCrop(imgW, imgH int, margin float64) *Detection {
	return &Detection{
		Bounds: Bounds{
			X1: int(float64(imgW) * margin),
			Y1: int(float64(imgH) * margin),
			X2: int(float64(imgW) * (1 - margin)),
			Y2: int(float64(imgH) * (1 - margin)),
		},
		Method:     MethodCenter,
		Confidence: 0,
	}
}
