package server

import (
	"container/list"
	"image"
	"sync"

	"github.com/ironsheep/bitmap-outline-mcp/internal/outline"
)

// DefaultCacheCells is the default budget, in arrow grid cells, of the
// outliners kept by an OutlinerCache.
const DefaultCacheCells = 16 * 1024 * 1024

// OutlinerCache keeps recently used outliners, one per raster size, so
// repeated calls on rasters of the same size reuse the arrow grid and
// segment buffer.
//
// The cache is bounded by the total grid size of its outliners. When a new
// outliner does not fit, the least recently used ones are evicted. An
// outliner larger than the whole budget is returned without being cached.
//
// The cache is safe for concurrent use. The outliners themselves are not:
// callers must not run two extractions on the same size at once. The server
// handles requests sequentially.
type OutlinerCache struct {
	mu       sync.Mutex
	entries  map[image.Point]*list.Element
	lru      *list.List // front = most recent
	cells    int
	maxCells int
}

type cacheEntry struct {
	key      image.Point
	outliner *outline.Outliner
	cells    int
}

// NewOutlinerCache creates an empty cache holding outliners with at most
// maxCells arrow grid cells in total. Zero or negative means
// DefaultCacheCells.
func NewOutlinerCache(maxCells int) *OutlinerCache {
	if maxCells <= 0 {
		maxCells = DefaultCacheCells
	}
	return &OutlinerCache{
		entries:  make(map[image.Point]*list.Element),
		lru:      list.New(),
		maxCells: maxCells,
	}
}

// Get returns the cached outliner for width×height, creating it on first
// use.
//
// # Errors
//
//   - outline.ErrInvalidInput if a dimension is negative
func (c *OutlinerCache) Get(width, height int) (*outline.Outliner, error) {
	key := image.Pt(width, height)

	c.mu.Lock()
	if el, ok := c.entries[key]; ok {
		c.lru.MoveToFront(el)
		o := el.Value.(*cacheEntry).outliner
		c.mu.Unlock()
		return o, nil
	}
	c.mu.Unlock()

	o, err := outline.NewOutliner(width, height)
	if err != nil {
		return nil, err
	}
	cols, rows := o.Grid().Size()
	cells := cols * rows
	if cells > c.maxCells {
		return o, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Another caller may have created the same size meanwhile.
	if el, ok := c.entries[key]; ok {
		c.lru.MoveToFront(el)
		return el.Value.(*cacheEntry).outliner, nil
	}

	for c.cells+cells > c.maxCells {
		c.removeElement(c.lru.Back())
	}
	c.entries[key] = c.lru.PushFront(&cacheEntry{key: key, outliner: o, cells: cells})
	c.cells += cells
	return o, nil
}

// count returns the number of cached outliners and their total grid cells.
func (c *OutlinerCache) count() (entries, cells int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Len(), c.cells
}

// Evict removes the outliner for width×height, if any.
func (c *OutlinerCache) Evict(width, height int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if el, ok := c.entries[image.Pt(width, height)]; ok {
		c.removeElement(el)
	}
}

// removeElement drops one entry. The caller holds c.mu.
func (c *OutlinerCache) removeElement(el *list.Element) {
	e := c.lru.Remove(el).(*cacheEntry)
	delete(c.entries, e.key)
	c.cells -= e.cells
}
