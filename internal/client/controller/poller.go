package controller

import (
	"context"
	"time"
)

// pollLeaderboard pulls the ranking snapshot once immediately and then on a
// fixed interval until ctx is cancelled. It runs whether or not a game is
// active.
func (c *Controller) pollLeaderboard(ctx context.Context) {
	defer close(c.pollDone)

	c.fetchLeaderboard(ctx)

	ticker := time.NewTicker(c.cfg.LeaderboardInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.fetchLeaderboard(ctx)
		}
	}
}

// fetchLeaderboard replaces the leaderboard wholesale on success. Failures
// are diagnostic only; the previous snapshot stays visible so a transient
// outage never blanks the display.
func (c *Controller) fetchLeaderboard(ctx context.Context) {
	players, err := c.api.FetchLeaderboard(ctx)
	if err != nil {
		if ctx.Err() == nil {
			c.log.Warn(ctx, "leaderboard fetch failed", "err", err)
		}
		return
	}
	c.store.SetLeaderboard(players)
}
