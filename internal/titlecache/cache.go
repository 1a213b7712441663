// Package titlecache resolves an interview id to a display title without a
// backend round trip. The cache is a point-in-time snapshot refreshed
// whenever the interview list is fetched; staleness between refreshes is an
// accepted tradeoff and lookups never trigger a fetch themselves.
package titlecache

import (
	"fmt"
	"sync"

	"github.com/readysethire/readysethire/internal/domain/interview"
)

// Cache is injected everywhere a display name for a foreign key is needed,
// so tests can swap it for a pre-seeded instance.
type Cache interface {
	Put(list []interview.Interview)
	Get(id int64) (interview.Interview, bool)
	Resolve(id int64) string
}

type MemoryCache struct {
	mu      sync.RWMutex
	entries map[int64]interview.Interview
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: map[int64]interview.Interview{}}
}

// Put replaces the snapshot with the given interview list.
func (c *MemoryCache) Put(list []interview.Interview) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[int64]interview.Interview, len(list))
	for _, in := range list {
		c.entries[in.ID] = in
	}
}

func (c *MemoryCache) Get(id int64) (interview.Interview, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	in, ok := c.entries[id]
	return in, ok
}

// Resolve returns "Title (JobRole)" for a cached interview, or a placeholder
// naming the raw id when the snapshot has no entry for it.
func (c *MemoryCache) Resolve(id int64) string {
	in, ok := c.Get(id)
	if !ok {
		return fmt.Sprintf("Interview #%d", id)
	}
	return fmt.Sprintf("%s (%s)", in.Title, in.JobRole)
}
