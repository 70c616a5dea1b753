// Package assets locates OBJ files on configured search paths and caches their contents.
package assets

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"github.com/Faultbox/objkit/internal/logger"
	"github.com/Faultbox/objkit/pkg/encoding"
	"github.com/Faultbox/objkit/pkg/formats"
)

// ErrNotFound is returned when no search path contains the requested file.
var ErrNotFound = errors.New("asset not found")

// Options controls how loaded files are decoded and parsed.
type Options struct {
	Encoding string // source text encoding, see encoding.Lookup
	Strict   bool   // reject unknown OBJ directives
}

// Manager handles OBJ loading from a list of search directories.
type Manager struct {
	roots  []string
	opts   Options
	cache  *Cache
	mu     sync.RWMutex
	parser formats.OBJParser
}

// NewManager creates a new asset manager.
func NewManager(opts Options) (*Manager, error) {
	if _, err := encoding.Lookup(opts.Encoding); err != nil {
		return nil, err
	}
	return &Manager{
		opts:   opts,
		cache:  NewCache(),
		parser: formats.OBJParser{Strict: opts.Strict},
	}, nil
}

// AddSearchPath adds a directory to the manager.
// Directories are searched in reverse order (last added = highest priority).
func (m *Manager) AddSearchPath(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("adding search path %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("adding search path %s: not a directory", dir)
	}

	m.mu.Lock()
	m.roots = append(m.roots, dir)
	m.mu.Unlock()

	logger.Debug("search path added", zap.String("dir", dir))
	return nil
}

// Resolve returns the on-disk path for name. Absolute paths are used as given.
// A relative name that exists under the working directory wins over the
// search paths, which are then tried from the most recently added.
func (m *Manager) Resolve(name string) (string, error) {
	if filepath.IsAbs(name) {
		if _, err := os.Stat(name); err != nil {
			return "", fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return name, nil
	}

	if info, err := os.Stat(name); err == nil && !info.IsDir() {
		return name, nil
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := len(m.roots) - 1; i >= 0; i-- {
		candidate := filepath.Join(m.roots[i], name)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s", ErrNotFound, name)
}

// Load reads a file from the search paths and decodes it to UTF-8.
func (m *Manager) Load(name string) ([]byte, error) {
	path, err := m.Resolve(name)
	if err != nil {
		return nil, err
	}

	if data, ok := m.cache.Get(path); ok {
		return data, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading OBJ file: %w", err)
	}

	data, err := encoding.Decode(raw, m.opts.Encoding)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	m.cache.Set(path, data)
	logger.Debug("asset loaded", zap.String("path", path), zap.Int("bytes", len(data)))
	return data, nil
}

// LoadOBJ loads and parses every object in an OBJ file.
func (m *Manager) LoadOBJ(name string) ([]formats.OBJObject, error) {
	data, err := m.Load(name)
	if err != nil {
		return nil, err
	}

	objs, err := m.parser.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", name, err)
	}
	return objs, nil
}

// LoadOBJSingle loads an OBJ file that must contain exactly one object.
func (m *Manager) LoadOBJSingle(name string) (*formats.OBJObject, error) {
	objs, err := m.LoadOBJ(name)
	if err != nil {
		return nil, err
	}
	if len(objs) != 1 {
		return nil, fmt.Errorf("parsing %s: %w", name, &formats.CardinalityError{Count: len(objs)})
	}
	return &objs[0], nil
}

// Stats returns cache hit and miss counts.
func (m *Manager) Stats() (hits, misses int) {
	return m.cache.Stats()
}

// Close forgets all search paths and cached data.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.roots = nil
	m.cache.Clear()
}

// Cache is a simple in-memory cache for loaded files.
type Cache struct {
	data map[string][]byte
	mu   sync.RWMutex

	// Stats
	hits   int
	misses int
}

// NewCache creates a new cache.
func NewCache() *Cache {
	return &Cache{
		data: make(map[string][]byte),
	}
}

// Get retrieves an item from cache.
func (c *Cache) Get(key string) ([]byte, bool) {
	// Write lock: the hit/miss counters change on every lookup
	c.mu.Lock()
	defer c.mu.Unlock()

	data, ok := c.data[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return data, ok
}

// Set stores an item in cache.
func (c *Cache) Set(key string, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = data
}

// Clear clears the cache.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = make(map[string][]byte)
	c.hits = 0
	c.misses = 0
}

// Stats returns cache statistics.
func (c *Cache) Stats() (hits, misses int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits, c.misses
}
