package scores

import (
	"context"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/Rajatbisht12/EmiterA/internal/logging"
	"github.com/gorilla/websocket"
	"github.com/sethvargo/go-retry"
)

const (
	reconnectBase = time.Second
	reconnectCap  = 30 * time.Second
)

// healthySessionAfter is how long a connection must stay up before a drop
// redials on a fresh backoff schedule instead of continuing the old one.
// Var so tests can shrink it.
var healthySessionAfter = time.Minute

// Feed is the long-lived push connection delivering score events. It is a
// scoped resource with a single owner: Start opens it, Close releases it on
// every exit path. A dropped connection is redialed with capped exponential
// backoff; the event handler must be idempotent because messages can be
// redelivered around a reconnect.
type Feed struct {
	url   string
	apply func(ScoreUpdate)
	log   logging.Logger

	cancel    context.CancelFunc
	done      chan struct{}
	closeOnce sync.Once
}

// NewFeed prepares a feed for username at wsBaseURL (e.g. "ws://host"). The
// apply callback receives every decoded score update.
func NewFeed(wsBaseURL, username string, apply func(ScoreUpdate), log logging.Logger) *Feed {
	return &Feed{
		url:   fmt.Sprintf("%s/ws?username=%s", wsBaseURL, url.QueryEscape(username)),
		apply: apply,
		log:   log.With("component", "scorefeed"),
		done:  make(chan struct{}),
	}
}

// Start opens the connection in the background. It returns immediately;
// dial failures are retried, not surfaced.
func (f *Feed) Start(ctx context.Context) {
	ctx, f.cancel = context.WithCancel(ctx)
	go f.run(ctx)
}

// Close tears the connection down and waits for the reader to exit. Safe to
// call more than once.
func (f *Feed) Close() {
	f.closeOnce.Do(func() {
		if f.cancel != nil {
			f.cancel()
		}
		<-f.done
	})
}

func (f *Feed) run(ctx context.Context) {
	defer close(f.done)

	for {
		backoff := retry.WithCappedDuration(reconnectCap, retry.NewExponential(reconnectBase))

		err := retry.Do(ctx, backoff, func(ctx context.Context) error {
			start := time.Now()
			err := f.readLoop(ctx)
			if err == nil {
				return nil
			}
			f.log.Warn(ctx, "score feed disconnected, will reconnect", "err", err)
			if time.Since(start) >= healthySessionAfter {
				// The connection was healthy for a while before it
				// dropped. Surface the error to restart the backoff
				// schedule from the base delay.
				return err
			}
			return retry.RetryableError(err)
		})
		if err == nil || ctx.Err() != nil {
			return
		}
	}
}

// readLoop dials once and reads until the connection drops or ctx is done.
// Returns nil only on context cancellation.
func (f *Feed) readLoop(ctx context.Context) error {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, f.url, nil)
	if err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("dial: %w", err)
	}
	defer conn.Close()

	f.log.Info(ctx, "score feed connected", "url", f.url)

	// Unblock ReadMessage when the owner closes the feed.
	readerDone := make(chan struct{})
	defer close(readerDone)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-readerDone:
		}
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("read: %w", err)
		}

		event, err := DecodeEvent(data)
		if err != nil {
			f.log.Debug(ctx, "dropping message", "err", err)
			continue
		}

		switch e := event.(type) {
		case ScoreUpdate:
			f.apply(e)
		}
	}
}
