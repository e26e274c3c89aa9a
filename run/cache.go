package run

import (
	"sync"

	"github.com/coverkit/cmcdc/internal/mcdc"
)

// resultCache memoizes generated pattern sets by expression text. The
// same guard expression tends to recur across the branches of a code
// base, and generation is pure, so results can be shared freely
// between files and workers.
type resultCache struct {
	mu      sync.RWMutex
	entries map[string]mcdc.Result
}

func newResultCache() *resultCache {
	return &resultCache{entries: make(map[string]mcdc.Result)}
}

func (c *resultCache) get(expr string) (mcdc.Result, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	res, ok := c.entries[expr]
	return res, ok
}

func (c *resultCache) put(expr string, res mcdc.Result) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[expr] = res
}
