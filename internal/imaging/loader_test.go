package imaging

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTestPNG writes a solid-color PNG and returns its path.
func writeTestPNG(t *testing.T, dir string, name string, w, h int) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{180, 180, 180, 255})
		}
	}

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
	return path
}

func TestImageCache_LoadAndCache(t *testing.T) {
	dir := t.TempDir()
	path := writeTestPNG(t, dir, "card.png", 80, 120)

	cache := NewImageCache()
	img, err := cache.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 80, img.Bounds().Dx())
	assert.Equal(t, 120, img.Bounds().Dy())

	// Second load is served from the cache even after the file is gone.
	require.NoError(t, os.Remove(path))
	again, err := cache.Load(path)
	require.NoError(t, err)
	assert.Same(t, img, again)
}

func TestImageCache_EvictAndClear(t *testing.T) {
	dir := t.TempDir()
	path := writeTestPNG(t, dir, "card.png", 10, 10)

	cache := NewImageCache()
	_, err := cache.Load(path)
	require.NoError(t, err)

	cache.Evict(path)
	require.NoError(t, os.Remove(path))
	_, err = cache.Load(path)
	assert.Error(t, err, "eviction should force a disk read")

	// Evicting a path that is not cached is a no-op.
	cache.Evict("never-loaded.png")
	cache.Clear()
}

func TestImageCache_LoadMissingFile(t *testing.T) {
	cache := NewImageCache()
	_, err := cache.Load(filepath.Join(t.TempDir(), "missing.png"))
	assert.Error(t, err)
}

func TestInfo(t *testing.T) {
	dir := t.TempDir()
	path := writeTestPNG(t, dir, "card.png", 100, 140)

	cache := NewImageCache()
	info, err := Info(cache, path)
	require.NoError(t, err)

	assert.Equal(t, 100, info.Width)
	assert.Equal(t, 140, info.Height)
	assert.Equal(t, "png", info.Format)
	assert.Equal(t, "8-bit", info.ColorDepth)
	assert.Greater(t, info.FileSizeBytes, int64(0))
	assert.InDelta(t, 1.4, info.AspectRatio(), 0.001)
}

func TestDownscale(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2400, 3200))

	work := Downscale(img, 800)
	assert.Equal(t, 600, work.Image.Bounds().Dx())
	assert.Equal(t, 800, work.Image.Bounds().Dy())
	assert.InDelta(t, 0.25, work.Scale, 0.001)
}

func TestDownscale_NeverUpscales(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 200, 300))

	work := Downscale(img, 800)
	assert.Equal(t, 1.0, work.Scale)
	assert.Same(t, img, image.Image(work.Image))
}

func TestSave_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	img := image.NewRGBA(image.Rect(0, 0, 40, 60))

	cache := NewImageCache()
	for _, name := range []string{"out.png", "out.jpg"} {
		path := filepath.Join(dir, name)
		require.NoError(t, Save(img, path, 95))

		loaded, err := cache.Load(path)
		require.NoError(t, err)
		assert.Equal(t, 40, loaded.Bounds().Dx())
		assert.Equal(t, 60, loaded.Bounds().Dy())
	}
}

func TestSave_CreatesOutputDirectory(t *testing.T) {
	dir := t.TempDir()
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))

	path := filepath.Join(dir, "Tip_042", "cropped.png")
	require.NoError(t, Save(img, path, 0)) // out-of-range quality falls back

	_, err := os.Stat(path)
	assert.NoError(t, err)
}
