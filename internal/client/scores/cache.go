package scores

import "sync"

// Diff is the latest pushed score pair for one player, used for the
// transient "+N/-N" decoration next to the polled leaderboard.
type Diff struct {
	Current  int
	Previous int
}

// Delta returns the signed score change.
func (d Diff) Delta() int {
	return d.Current - d.Previous
}

// DiffCache merges score updates last-write-wins per username. Updates for
// different usernames never interfere; updates for the same username are
// resolved by arrival order. Replaying a duplicate event is a no-op in
// effect, so the cache tolerates redelivery after a reconnect.
type DiffCache struct {
	mu     sync.RWMutex
	byUser map[string]Diff
}

func NewDiffCache() *DiffCache {
	return &DiffCache{byUser: make(map[string]Diff)}
}

// Apply replaces the entry for the event's username.
func (c *DiffCache) Apply(e ScoreUpdate) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.byUser[e.Username] = Diff{Current: e.Score, Previous: e.Previous}
}

// Get returns the cached diff for username, if any event arrived for it.
func (c *DiffCache) Get(username string) (Diff, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	d, ok := c.byUser[username]
	return d, ok
}
