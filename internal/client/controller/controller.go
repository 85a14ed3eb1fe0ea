// Package controller wires the session store, the game service client, the
// snapshot repository and the score event channel into the action surface
// consumed by the presentation layer.
package controller

import (
	"context"
	"strings"

	"github.com/Rajatbisht12/EmiterA/internal/client/api"
	"github.com/Rajatbisht12/EmiterA/internal/client/config"
	"github.com/Rajatbisht12/EmiterA/internal/client/models"
	"github.com/Rajatbisht12/EmiterA/internal/client/repositories/snapshots"
	"github.com/Rajatbisht12/EmiterA/internal/client/scores"
	"github.com/Rajatbisht12/EmiterA/internal/client/session"
	"github.com/Rajatbisht12/EmiterA/internal/common"
	"github.com/Rajatbisht12/EmiterA/internal/logging"
)

// User-facing status messages derived from action outcomes.
const (
	MsgResumed     = "Game resumed!"
	MsgResumeError = "Error resuming game."
	MsgStarted     = "Game started! Draw a card."
	MsgStartError  = "Error starting game."
	MsgDrawn       = "Card drawn! Keep playing."
	MsgDrawError   = "Error drawing card."
	MsgDefused     = "Bomb defused! You can continue playing."
	MsgExploded    = "BOOM! Game Over!"
	MsgWon         = "Congratulations! You won!"
	MsgShuffled    = "Deck shuffled! New game started."
)

// scoreFeed is the slice of the feed lifecycle the controller owns.
type scoreFeed interface {
	Start(ctx context.Context)
	Close()
}

// Controller orchestrates one session. Construct with New, call Start once,
// then invoke actions from a single goroutine; Stop releases the poller and
// the score feed on every exit path.
//
// Every action performs its network call first and dispatches the pure
// store transition only on success, so a failed call leaves the session
// state untouched. Failures produce a transient user-facing message and are
// never retried automatically.
type Controller struct {
	cfg   *config.Config
	store *session.Store
	api   api.GameClient
	snaps snapshots.Repository
	cache *scores.DiffCache
	log   logging.Logger

	// openFeed is a seam for tests; the default dials the real channel.
	openFeed func(username string) scoreFeed

	feed     scoreFeed
	runCtx   context.Context
	cancel   context.CancelFunc
	pollDone chan struct{}
}

func New(cfg *config.Config, store *session.Store, client api.GameClient, snaps snapshots.Repository, log logging.Logger) *Controller {
	c := &Controller{
		cfg:      cfg,
		store:    store,
		api:      client,
		snaps:    snaps,
		cache:    scores.NewDiffCache(),
		log:      log.With("component", "controller"),
		pollDone: make(chan struct{}),
	}
	c.openFeed = func(username string) scoreFeed {
		return scores.NewFeed(cfg.WSBaseURL, username, c.cache.Apply, log)
	}
	return c
}

// Start restores a persisted session, if any, resynchronizes it with the
// game service, and starts the leaderboard poller. It returns the
// user-facing message produced by the resume attempt ("" when there was
// nothing to resume).
func (c *Controller) Start(ctx context.Context) string {
	c.runCtx, c.cancel = context.WithCancel(ctx)

	c.store.OnChange(c.persist)
	msg := c.restore(c.runCtx)

	go c.pollLeaderboard(c.runCtx)
	return msg
}

// Stop tears down the poller and the score feed. In-flight requests are not
// cancelled; they complete (or fail) on their own.
func (c *Controller) Stop() {
	if c.cancel != nil {
		c.cancel()
	}
	if c.feed != nil {
		c.feed.Close()
		c.feed = nil
	}
	<-c.pollDone
}

// Login records the username and opens the score event channel. Logging in
// again is idempotent; the channel is opened at most once.
func (c *Controller) Login(ctx context.Context, username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return common.ErrEmptyUsername
	}

	c.store.SetUsername(username)
	c.ensureFeed(c.store.State().Username)
	return nil
}

// StartGame asks the service for a fresh game and makes it the active one.
func (c *Controller) StartGame(ctx context.Context) (string, error) {
	state := c.store.State()
	if !state.IsLoggedIn {
		return "", common.ErrNotLoggedIn
	}

	game, err := c.api.NewGame(ctx, state.Username)
	if err != nil {
		c.log.Warn(ctx, "new game failed", "err", err)
		return MsgStartError, err
	}

	c.store.SetGame(game)
	return MsgStarted, nil
}

// DrawCard draws one card from the active game. The service's answer is
// authoritative: the deck, defuse flag, drawn card and outcome all come
// from its response.
func (c *Controller) DrawCard(ctx context.Context) (string, error) {
	state := c.store.State()
	if state.GameID == "" {
		return "", common.ErrNoActiveGame
	}

	result, err := c.api.DrawCard(ctx, state.GameID)
	if err != nil {
		c.log.Warn(ctx, "draw failed", "game_id", state.GameID, "err", err)
		return MsgDrawError, err
	}

	c.store.SetDrawResult(result)
	return drawMessage(result.Status), nil
}

// State returns a copy of the current session state.
func (c *Controller) State() session.State {
	return c.store.State()
}

// ScoreDiff returns the latest pushed score delta for username, if any.
func (c *Controller) ScoreDiff(username string) (scores.Diff, bool) {
	return c.cache.Get(username)
}

func (c *Controller) ensureFeed(username string) {
	if c.feed != nil {
		return
	}
	ctx := c.runCtx
	if ctx == nil {
		ctx = context.Background()
	}
	f := c.openFeed(username)
	f.Start(ctx)
	c.feed = f
}

// restore loads the persisted snapshot into the store and attempts to
// resynchronize with the service. A failed resume keeps the restored
// (possibly stale) state visible.
func (c *Controller) restore(ctx context.Context) string {
	state, ok, err := c.snaps.Load(ctx)
	if err != nil {
		c.log.Error(ctx, "snapshot load failed", "err", err)
		return ""
	}
	if !ok {
		return ""
	}

	c.store.Restore(state)
	if state.IsLoggedIn {
		c.ensureFeed(state.Username)
	}
	if state.GameID == "" {
		return ""
	}

	game, err := c.api.ResumeGame(ctx, state.GameID)
	if err != nil {
		c.log.Warn(ctx, "resume failed", "game_id", state.GameID, "err", err)
		return MsgResumeError
	}

	c.store.SetGame(game)
	return MsgResumed
}

// persist writes the snapshot after every mutation while a game is active.
// Best effort: a failed write is logged and the session carries on; the
// lost mutation is recoverable through resume at next startup.
func (c *Controller) persist(state session.State) {
	if state.GameID == "" {
		return
	}
	if err := c.snaps.Save(context.Background(), state); err != nil {
		c.log.Error(context.Background(), "snapshot save failed", "game_id", state.GameID, "err", err)
	}
}

func drawMessage(status models.Status) string {
	switch status {
	case models.StatusDefused:
		return MsgDefused
	case models.StatusExploded:
		return MsgExploded
	case models.StatusWon:
		return MsgWon
	case models.StatusShuffled:
		return MsgShuffled
	default:
		return MsgDrawn
	}
}
