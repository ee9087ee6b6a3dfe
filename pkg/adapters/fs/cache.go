package fs

import (
	"os"
	"sync"
	"time"
)

// cacheEntry is a value read from disk together with the file stamp it was read at.
type cacheEntry struct {
	value   string
	modTime time.Time
	size    int64
}

// cache keeps the last value read for each key. An entry is only served while
// the file still has the same modification time and size.
//
// On filesystems with coarse mtime resolution a same-size rewrite by another
// process within one tick keeps both stamps, so the stale value can be served.
// An active Watch drops the entry as soon as fsnotify reports the change.
type cache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
	hits    int
	misses  int
}

func newCache() *cache {
	return &cache{entries: make(map[string]cacheEntry)}
}

func (c *cache) get(key string, info os.FileInfo) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok || !e.modTime.Equal(info.ModTime()) || e.size != info.Size() {
		c.misses++
		return "", false
	}
	c.hits++
	return e.value, true
}

func (c *cache) put(key string, info os.FileInfo, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry{value: value, modTime: info.ModTime(), size: info.Size()}
}

func (c *cache) invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

func (c *cache) stats() (entries, hits, misses int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries), c.hits, c.misses
}
