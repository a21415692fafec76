// Package crop implements the cropping pipelines: automatic detection-based
// cropping of card photos and the manual percent/pixel inset fallback.
//
// All pipelines read through an imaging.ImageCache, write via the
// format-aware saver, and return a Report describing what happened so the
// CLI can print it and batch runs can summarize.
package crop
