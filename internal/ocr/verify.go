package ocr

import (
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// Bounds represents a rectangular bounding box in pixel coordinates.
type Bounds struct {
	X1 int `json:"x1"` // Left edge
	Y1 int `json:"y1"` // Top edge
	X2 int `json:"x2"` // Right edge
	Y2 int `json:"y2"` // Bottom edge
}

// TextRegion represents a recognized word with its location and confidence.
type TextRegion struct {
	// Text is the recognized word.
	Text string `json:"text"`

	// Confidence is the OCR confidence score (0.0 to 1.0).
	Confidence float64 `json:"confidence"`

	// Bounds is the bounding box around this word in the image.
	Bounds Bounds `json:"bounds"`
}

// Result contains the text extracted from a cropped card.
type Result struct {
	// FullText is all recognized text with original spacing and newlines.
	FullText string `json:"full_text"`

	// Regions contains individual words with bounding boxes and
	// confidence scores. May be empty if box extraction fails; FullText
	// is still populated in that case.
	Regions []TextRegion `json:"regions"`
}

// ExtractText performs OCR on an image file.
//
// Word-level regions use Tesseract's RIL_WORD iterator. If bounding box
// extraction fails (which happens with some Tesseract configurations), the
// full text is still returned with an empty Regions slice.
func ExtractText(imagePath, language string) (*Result, error) {
	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(language); err != nil {
		return nil, fmt.Errorf("failed to set language: %w", err)
	}
	if err := client.SetImage(imagePath); err != nil {
		return nil, fmt.Errorf("failed to set image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return nil, fmt.Errorf("OCR failed: %w", err)
	}

	boxes, err := client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		return &Result{FullText: text, Regions: []TextRegion{}}, nil
	}

	regions := make([]TextRegion, 0, len(boxes))
	for _, box := range boxes {
		if box.Word == "" {
			continue
		}
		regions = append(regions, TextRegion{
			Text:       box.Word,
			Confidence: box.Confidence / 100.0,
			Bounds: Bounds{
				X1: box.Box.Min.X,
				Y1: box.Box.Min.Y,
				X2: box.Box.Max.X,
				Y2: box.Box.Max.Y,
			},
		})
	}

	return &Result{FullText: text, Regions: regions}, nil
}

// Match describes whether one expected string survived the crop.
type Match struct {
	Want  string `json:"want"`
	Found bool   `json:"found"`
}

// Verification is the outcome of checking a cropped card's text.
type Verification struct {
	// Matches holds one entry per expected string, in input order.
	Matches []Match `json:"matches"`

	// OK is true when every expected string was found.
	OK bool `json:"ok"`

	// FullText is the recognized card text, useful when a check fails.
	FullText string `json:"full_text"`
}

// Verify runs OCR on a cropped card and checks that each expected substring
// appears in the recognized text, case-insensitively.
func Verify(imagePath, language string, want []string) (*Verification, error) {
	res, err := ExtractText(imagePath, language)
	if err != nil {
		return nil, err
	}
	return matchText(res.FullText, want), nil
}

func matchText(text string, want []string) *Verification {
	haystack := strings.ToLower(text)

	v := &Verification{
		Matches:  make([]Match, 0, len(want)),
		OK:       true,
		FullText: text,
	}
	for _, w := range want {
		found := strings.Contains(haystack, strings.ToLower(w))
		v.Matches = append(v.Matches, Match{Want: w, Found: found})
		if !found {
			v.OK = false
		}
	}
	return v
}
