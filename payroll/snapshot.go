package payroll

import (
	"sync"
	"time"
)

// =============================================================================
// SUMMARY SNAPSHOT - Cached aggregate between appends
// =============================================================================

// SummarySnapshot captures the aggregate totals at a known instant.
// Used for:
//   - Fast reads (avoid re-walking the full record log)
//   - Surfacing "as of" alongside totals
type SummarySnapshot struct {
	AsOf    time.Time
	Summary Summary
}

// summaryCache memoizes the last computed summary until the next append
// invalidates it. The store remains the source of truth; a dirty cache
// always recomputes through the supplied function.
type summaryCache struct {
	mu    sync.Mutex
	snap  SummarySnapshot
	valid bool
}

// Get returns the cached summary, computing it through fn when stale.
func (c *summaryCache) Get(fn func() (Summary, error)) (Summary, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.valid {
		return c.snap.Summary, nil
	}
	s, err := fn()
	if err != nil {
		return Summary{}, err
	}
	c.snap = SummarySnapshot{AsOf: time.Now().UTC(), Summary: s}
	c.valid = true
	return s, nil
}

// Invalidate marks the cache stale. Call after every successful append.
func (c *summaryCache) Invalidate() {
	c.mu.Lock()
	c.valid = false
	c.mu.Unlock()
}

// Snapshot exposes the current cached snapshot and whether it is valid.
func (c *summaryCache) Snapshot() (SummarySnapshot, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snap, c.valid
}
