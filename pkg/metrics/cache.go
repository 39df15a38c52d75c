package metrics

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// CacheMetric counts hits and misses of a reuse-or-rebuild cache.
type CacheMetric struct {
	name   string
	hits   atomic.Int64
	misses atomic.Int64
}

func newCacheMetric(name string) *CacheMetric {
	return &CacheMetric{name: name}
}

// Hit records a reuse.
func (c *CacheMetric) Hit() {
	if Enabled() {
		c.hits.Add(1)
	}
}

// Miss records a rebuild.
func (c *CacheMetric) Miss() {
	if Enabled() {
		c.misses.Add(1)
	}
}

// Stats returns a snapshot.
func (c *CacheMetric) Stats() CacheStats {
	hits, misses := c.hits.Load(), c.misses.Load()
	var rate float64
	if total := hits + misses; total > 0 {
		rate = float64(hits) / float64(total)
	}
	return CacheStats{Name: c.name, Hits: hits, Misses: misses, HitRate: rate}
}

// Reset clears the counters.
func (c *CacheMetric) Reset() {
	c.hits.Store(0)
	c.misses.Store(0)
}

// CacheStats holds a snapshot of cache counters.
type CacheStats struct {
	Name    string  `json:"name"`
	Hits    int64   `json:"hits"`
	Misses  int64   `json:"misses"`
	HitRate float64 `json:"hit_rate"`
}

// RendererCache counts markdown renderer reuse across resizes and reloads.
var RendererCache = newCacheMetric("markdown_renderer")

// AllCacheMetrics returns all registered cache metrics.
func AllCacheMetrics() []*CacheMetric {
	return []*CacheMetric{RendererCache}
}

// Summary is a one-line digest of everything recorded, for debug logs.
func Summary() string {
	var parts []string
	for _, s := range AllTimingStats() {
		parts = append(parts, fmt.Sprintf("%s n=%d avg=%.2fms max=%.2fms", s.Name, s.Count, s.AvgMs, s.MaxMs))
	}
	for _, m := range AllCacheMetrics() {
		s := m.Stats()
		if s.Hits+s.Misses == 0 {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s hit=%d miss=%d", s.Name, s.Hits, s.Misses))
	}
	if len(parts) == 0 {
		return "no metrics recorded"
	}
	return strings.Join(parts, "; ")
}
