// Package detect locates the promotional card rectangle in a photo.
//
// Two detectors are provided. The brightness detector assumes a dark card on
// a light background (the marble desk shots) and thresholds on global
// luminance statistics. The edge detector handles dark backgrounds (the
// wooden desk shots) by finding the band of strong gradients around the card
// border. Both work on row/column coverage counts rather than contours: the
// card is the only large rectangle in frame, so the first and last rows and
// columns with enough hits bound it.
//
// Detectors run on a downscaled work image; returned bounds are in work
// coordinates and must be mapped back by the caller.
package detect
