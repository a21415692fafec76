// Package ocr verifies cropped cards by running them through Tesseract.
//
// An over-aggressive crop cuts into the card text (the tip number or title
// along the card edge). Reading the text back out of the cropped file is a
// cheap way to catch that before the image lands in an article.
//
// Tesseract and its language data must be installed on the system; see the
// gosseract/v2 documentation for setup.
package ocr
