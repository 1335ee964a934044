package imaging

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

// writeTestPNG encodes img into dir under name and returns the path.
func writeTestPNG(t *testing.T, dir, name string, img image.Image) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create file: %v", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode image: %v", err)
	}
	return path
}

// createTestImage writes a solid-color PNG and returns its path.
func createTestImage(t *testing.T, width, height int, c color.Color) string {
	t.Helper()
	return writeTestPNG(t, t.TempDir(), "test-image.png", createInMemoryImage(width, height, c))
}

func TestNewImageCache(t *testing.T) {
	cache := NewImageCache()
	if cache == nil {
		t.Fatal("NewImageCache returned nil")
	}
	if cache.images == nil {
		t.Fatal("NewImageCache did not initialize images map")
	}
}

func TestImageCache_Load(t *testing.T) {
	cache := NewImageCache()
	imgPath := createTestImage(t, 100, 80, color.NRGBA{255, 0, 0, 255})

	img1, err := cache.Load(imgPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	bounds := img1.Bounds()
	if bounds.Dx() != 100 || bounds.Dy() != 80 {
		t.Errorf("unexpected dimensions: got %dx%d, want 100x80", bounds.Dx(), bounds.Dy())
	}

	img2, err := cache.Load(imgPath)
	if err != nil {
		t.Fatalf("second Load failed: %v", err)
	}
	if img1 != img2 {
		t.Error("second Load did not return cached image")
	}
}

func TestImageCache_Load_NonExistent(t *testing.T) {
	cache := NewImageCache()
	if _, err := cache.Load("/nonexistent/path/to/image.png"); err == nil {
		t.Error("Load should fail for non-existent file")
	}
}

func TestImageCache_Load_InvalidImage(t *testing.T) {
	cache := NewImageCache()
	path := filepath.Join(t.TempDir(), "invalid.png")
	if err := os.WriteFile(path, []byte("not an image"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	if _, err := cache.Load(path); err == nil {
		t.Error("Load should fail for invalid image data")
	}
}

func TestImageCache_ClearAndEvict(t *testing.T) {
	cache := NewImageCache()
	dir := t.TempDir()
	a := writeTestPNG(t, dir, "a.png", createInMemoryImage(5, 5, color.NRGBA{0, 255, 0, 255}))
	b := writeTestPNG(t, dir, "b.png", createInMemoryImage(5, 5, color.NRGBA{0, 0, 255, 255}))

	for _, p := range []string{a, b} {
		if _, err := cache.Load(p); err != nil {
			t.Fatalf("Load failed: %v", err)
		}
	}

	cache.Evict(a)
	cache.mu.RLock()
	_, hasA := cache.images[a]
	_, hasB := cache.images[b]
	cache.mu.RUnlock()
	if hasA || !hasB {
		t.Errorf("after Evict(a): hasA=%v hasB=%v, want false true", hasA, hasB)
	}

	cache.Evict("/nonexistent/path")

	cache.Clear()
	cache.mu.RLock()
	count := len(cache.images)
	cache.mu.RUnlock()
	if count != 0 {
		t.Errorf("Clear did not empty cache: %d images remain", count)
	}
}

func TestImageCache_ConcurrentAccess(t *testing.T) {
	cache := NewImageCache()
	imgPath := createTestImage(t, 50, 50, color.NRGBA{128, 128, 128, 255})

	var wg sync.WaitGroup
	errs := make(chan error, 100)

	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := cache.Load(imgPath); err != nil {
				errs <- err
			}
		}()
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("concurrent Load error: %v", err)
	}
}

func TestLoadImageInfo(t *testing.T) {
	cache := NewImageCache()
	dir := t.TempDir()

	translucent := createInMemoryImage(20, 10, color.NRGBA{255, 128, 64, 255})
	translucent.Set(0, 0, color.NRGBA{255, 128, 64, 10})

	tests := []struct {
		name      string
		img       image.Image
		wantAlpha bool
		wantDepth int
	}{
		{"opaque", createInMemoryImage(20, 10, color.NRGBA{255, 128, 64, 255}), false, Depth24},
		{"translucent", translucent, true, Depth32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTestPNG(t, dir, tt.name+".png", tt.img)

			info, err := LoadImageInfo(cache, path)
			if err != nil {
				t.Fatalf("LoadImageInfo failed: %v", err)
			}
			if info.Width != 20 || info.Height != 10 {
				t.Errorf("size: got %dx%d, want 20x10", info.Width, info.Height)
			}
			if info.Format != "png" {
				t.Errorf("Format: got %s, want png", info.Format)
			}
			if info.HasAlpha != tt.wantAlpha {
				t.Errorf("HasAlpha: got %v, want %v", info.HasAlpha, tt.wantAlpha)
			}
			if info.Depth != tt.wantDepth {
				t.Errorf("Depth: got %d, want %d", info.Depth, tt.wantDepth)
			}
			if info.FileSizeBytes <= 0 {
				t.Error("FileSizeBytes should be positive")
			}
		})
	}
}

func TestLoadImageInfo_FormatDetection(t *testing.T) {
	cache := NewImageCache()
	dir := t.TempDir()

	tests := []struct {
		ext    string
		format string
	}{
		{".png", "png"},
		{".jpg", "jpeg"},
		{".jpeg", "jpeg"},
		{".gif", "gif"},
		{".tif", "tiff"},
		{".bmp", "bmp"},
		{".webp", "webp"},
		{".xyz", "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.ext, func(t *testing.T) {
			// PNG bytes regardless of extension; decoding sniffs the content.
			path := writeTestPNG(t, dir, "test-format"+tt.ext, image.NewNRGBA(image.Rect(0, 0, 10, 10)))

			info, err := LoadImageInfo(cache, path)
			if err != nil {
				t.Fatalf("LoadImageInfo failed: %v", err)
			}
			if info.Format != tt.format {
				t.Errorf("Format for %s: got %s, want %s", tt.ext, info.Format, tt.format)
			}
		})
	}
}

func TestLoadImageInfo_NonExistent(t *testing.T) {
	cache := NewImageCache()
	if _, err := LoadImageInfo(cache, "/nonexistent/image.png"); err == nil {
		t.Error("LoadImageInfo should fail for non-existent file")
	}
}

func TestGetDimensions(t *testing.T) {
	cache := NewImageCache()
	imgPath := createTestImage(t, 300, 200, color.NRGBA{100, 100, 100, 255})

	dims, err := GetDimensions(cache, imgPath)
	if err != nil {
		t.Fatalf("GetDimensions failed: %v", err)
	}
	if dims.Width != 300 || dims.Height != 200 {
		t.Errorf("got %dx%d, want 300x200", dims.Width, dims.Height)
	}
}

func TestGetDimensions_NonExistent(t *testing.T) {
	cache := NewImageCache()
	if _, err := GetDimensions(cache, "/nonexistent/image.png"); err == nil {
		t.Error("GetDimensions should fail for non-existent file")
	}
}
