package profile

import (
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // register decoder
	_ "image/png"  // register decoder
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/osse101/MinesocBot_Go/internal/domain"
	"github.com/osse101/MinesocBot_Go/internal/logger"
)

// Catalog indexes the background images available for profile cards.
// The key of a background is its file name without extension.
type Catalog struct {
	files map[string]string

	mu      sync.Mutex
	decoded map[string]image.Image
}

// LoadCatalog indexes *.png, *.jpg and *.jpeg files in dir.
// A missing directory yields an empty catalog.
func LoadCatalog(ctx context.Context, dir string) (*Catalog, error) {
	c := &Catalog{
		files:   make(map[string]string),
		decoded: make(map[string]image.Image),
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.FromContext(ctx).Warn(LogMsgCatalogDirMissing, "dir", dir)
			return c, nil
		}
		return nil, fmt.Errorf(ErrMsgReadCatalogDir, err)
	}

	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if !imageExtensions[ext] {
			continue
		}
		key := strings.ToLower(strings.TrimSuffix(e.Name(), filepath.Ext(e.Name())))
		if key == domain.DefaultBackground {
			continue
		}
		c.files[key] = filepath.Join(dir, e.Name())
	}

	logger.FromContext(ctx).Info(LogMsgCatalogLoaded, "dir", dir, "count", len(c.files))
	return c, nil
}

// Has reports whether key names a background image
func (c *Catalog) Has(key string) bool {
	_, ok := c.files[key]
	return ok
}

// Keys returns the background keys in sorted order
func (c *Catalog) Keys() []string {
	keys := make([]string, 0, len(c.files))
	for k := range c.files {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Open decodes the background image. Decoded images are kept for reuse.
func (c *Catalog) Open(key string) (image.Image, error) {
	path, ok := c.files[key]
	if !ok {
		return nil, fmt.Errorf(ErrMsgUnknownBackground+": %w", key, domain.ErrNotFound)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if img, ok := c.decoded[key]; ok {
		return img, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgOpenBackground, key, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgDecodeBackground, key, err)
	}
	c.decoded[key] = img
	return img, nil
}
