// Package imaging provides image loading, caching, inspection, and saving
// for the card cropping pipeline.
//
// All operations work with standard Go image.Image types and use a coordinate
// system where (0,0) is at the top-left corner, X increases rightward, and Y
// increases downward.
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. Individual operations are
// stateless and can be called concurrently on different images.
//
// # Detection Work Images
//
// Card detection runs on a downscaled copy of the source photo (see
// Downscale). Detected coordinates are in work-image space and must be
// divided by the returned scale to map back to the source.
package imaging
