package imaging

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// ImageCache provides thread-safe caching of decoded images keyed by path.
//
// Cached images are shared between callers and must be treated as read-only.
// Use LoadSurface to obtain a copy the saturation kernel may rewrite.
//
// Cached images remain in memory until explicitly removed via Evict() or Clear().
type ImageCache struct {
	mu     sync.RWMutex
	images map[string]image.Image
}

// NewImageCache creates and initializes a new empty image cache.
func NewImageCache() *ImageCache {
	return &ImageCache{
		images: make(map[string]image.Image),
	}
}

// Load retrieves an image from the cache or decodes it from disk if not cached.
//
// Supported formats are those of disintegration/imaging (PNG, JPEG, GIF,
// BMP, TIFF) plus WebP. JPEG EXIF orientation is applied on decode, so the pixel
// grid matches what a viewer displays.
//
// The image is cached using the exact path string provided. Different paths to the
// same file (e.g., relative vs absolute) will result in separate cache entries.
func (c *ImageCache) Load(path string) (image.Image, error) {
	c.mu.RLock()
	if img, ok := c.images[path]; ok {
		c.mu.RUnlock()
		return img, nil
	}
	c.mu.RUnlock()

	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to load image: %w", err)
	}

	c.mu.Lock()
	c.images[path] = img
	c.mu.Unlock()

	return img, nil
}

// Clear removes all images from the cache, freeing the associated memory.
//
// This method is useful for long-running processes that need to release memory
// after processing a batch of images. After Clear(), all images must be reloaded
// from disk on subsequent Load() calls.
func (c *ImageCache) Clear() {
	c.mu.Lock()
	c.images = make(map[string]image.Image)
	c.mu.Unlock()
}

// Evict removes a specific image from the cache by its path.
//
// Parameters:
//   - path: The exact path string used when the image was loaded.
//
// If the path is not in the cache, this method does nothing.
// After eviction, the next Load() call for this path will read from disk.
func (c *ImageCache) Evict(path string) {
	c.mu.Lock()
	delete(c.images, path)
	c.mu.Unlock()
}

// ImageInfo contains metadata about a loaded image file.
//
// This struct provides essential information about an image without requiring
// the caller to analyze the image data directly.
type ImageInfo struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// Format is the detected image format: "png", "jpeg", "gif", "tiff",
	// "bmp", "webp", or "unknown".
	// Detection is based on file extension, not file contents.
	Format string `json:"format"`

	// HasAlpha indicates whether the image has an alpha (transparency) channel.
	HasAlpha bool `json:"has_alpha"`

	// Depth is the surface depth a transform uses by default: 32 when the
	// image has alpha, 24 otherwise.
	Depth int `json:"depth"`

	// FileSizeBytes is the size of the image file on disk in bytes.
	FileSizeBytes int64 `json:"file_size_bytes"`
}

// LoadImageInfo loads an image and returns metadata about it.
//
// Parameters:
//   - cache: The image cache to use for loading. Must not be nil.
//   - path: Path to the image file.
//
// Returns:
//   - *ImageInfo: Metadata about the image.
//   - error: Non-nil if the image cannot be loaded or the file cannot be stat'd.
//
// # Format Detection
//
// The format is determined by file extension, as imaging.FormatFromFilename
// sees it: "png", "jpeg", "gif", "tiff", "bmp", "webp", or "unknown".
func LoadImageInfo(cache *ImageCache, path string) (*ImageInfo, error) {
	img, err := cache.Load(path)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	format := "unknown"
	if f, err := imaging.FormatFromFilename(path); err == nil {
		format = strings.ToLower(f.String())
	} else if strings.EqualFold(filepath.Ext(path), ".webp") {
		format = "webp"
	}

	return &ImageInfo{
		Width:         bounds.Dx(),
		Height:        bounds.Dy(),
		Format:        format,
		HasAlpha:      HasAlpha(img),
		Depth:         DefaultDepth(img),
		FileSizeBytes: stat.Size(),
	}, nil
}

// DimensionsResult contains the width and height of an image.
type DimensionsResult struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`
}

// GetDimensions returns the dimensions of an image without additional metadata.
//
// The image is loaded into the cache if not already present.
func GetDimensions(cache *ImageCache, path string) (*DimensionsResult, error) {
	img, err := cache.Load(path)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	return &DimensionsResult{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}, nil
}

// CheckPixelLimit rejects images with more than maxPixels pixels.
// A maxPixels of zero or less disables the check.
func CheckPixelLimit(img image.Image, maxPixels int64) error {
	if maxPixels <= 0 {
		return nil
	}
	b := img.Bounds()
	if n := int64(b.Dx()) * int64(b.Dy()); n > maxPixels {
		return fmt.Errorf("image has %d pixels, limit is %d", n, maxPixels)
	}
	return nil
}
