package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/ytget/videogrid/internal/platform"
)

// ThumbnailCache keeps recently shown thumbnails in memory. References that do
// not resolve to a file are cached as the fallback icon.
type ThumbnailCache struct {
	cache    *lru.Cache[string, fyne.Resource]
	dirs     []string
	fallback fyne.Resource
}

// NewThumbnailCache creates a cache holding up to size resources, looking up
// relative references under dirs.
func NewThumbnailCache(size int, dirs ...string) (*ThumbnailCache, error) {
	cache, err := lru.New[string, fyne.Resource](size)
	if err != nil {
		return nil, err
	}
	return &ThumbnailCache{
		cache:    cache,
		dirs:     dirs,
		fallback: theme.MediaVideoIcon(),
	}, nil
}

// Resource returns the thumbnail for ref, loading it on first use.
func (c *ThumbnailCache) Resource(ref string) fyne.Resource {
	if ref == "" {
		return c.fallback
	}
	if res, ok := c.cache.Get(ref); ok {
		return res
	}

	res := c.fallback
	path, err := platform.ResolveThumbnail(ref, c.dirs...)
	if err == nil {
		loaded, loadErr := fyne.LoadResourceFromPath(path)
		if loadErr != nil {
			log.Printf("Failed to load thumbnail %s: %v", path, loadErr)
		} else {
			res = loaded
		}
	}

	c.cache.Add(ref, res)
	return res
}

// SetDirs replaces the lookup directories and forgets cached entries.
func (c *ThumbnailCache) SetDirs(dirs ...string) {
	c.dirs = dirs
	c.cache.Purge()
}

// Resize changes the capacity, evicting the oldest entries if needed.
func (c *ThumbnailCache) Resize(size int) {
	if evicted := c.cache.Resize(size); evicted > 0 {
		log.Printf("Thumbnail cache resized to %d, evicted %d", size, evicted)
	}
}

// Len returns the number of cached references.
func (c *ThumbnailCache) Len() int {
	return c.cache.Len()
}
