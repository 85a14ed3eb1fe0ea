package scores

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Rajatbisht12/EmiterA/internal/logging"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var upgrader = websocket.Upgrader{}

func discardLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// wsBase rewrites an httptest server URL into a ws:// base.
func wsBase(t *testing.T, srv *httptest.Server) string {
	t.Helper()
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func TestFeed_DeliversScoreUpdates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/ws", r.URL.Path)
		require.Equal(t, "alice", r.URL.Query().Get("username"))

		conn, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		defer conn.Close()

		require.NoError(t, conn.WriteJSON(map[string]any{
			"type": "chat", "text": "ignored",
		}))
		require.NoError(t, conn.WriteJSON(map[string]any{
			"type": "score_update", "username": "bob", "score": 5, "previous": 4,
		}))

		// Hold the connection open until the client goes away.
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
	defer srv.Close()

	cache := NewDiffCache()
	feed := NewFeed(wsBase(t, srv), "alice", cache.Apply, discardLogger())
	feed.Start(context.Background())
	defer feed.Close()

	require.Eventually(t, func() bool {
		_, ok := cache.Get("bob")
		return ok
	}, 3*time.Second, 10*time.Millisecond)

	d, _ := cache.Get("bob")
	assert.Equal(t, Diff{Current: 5, Previous: 4}, d)
}

func TestFeed_ReconnectsAfterDrop(t *testing.T) {
	var conns atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}

		n := conns.Add(1)
		if n == 1 {
			// First connection dies immediately; the feed must redial.
			conn.Close()
			return
		}

		defer conn.Close()
		_ = conn.WriteJSON(map[string]any{
			"type": "score_update", "username": "carol", "score": 1, "previous": 0,
		})
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
	defer srv.Close()

	cache := NewDiffCache()
	feed := NewFeed(wsBase(t, srv), "alice", cache.Apply, discardLogger())
	feed.Start(context.Background())
	defer feed.Close()

	require.Eventually(t, func() bool {
		_, ok := cache.Get("carol")
		return ok
	}, 10*time.Second, 20*time.Millisecond)
	assert.GreaterOrEqual(t, conns.Load(), int32(2))
}

func TestFeed_FreshBackoffAfterHealthySession(t *testing.T) {
	prev := healthySessionAfter
	healthySessionAfter = 0
	t.Cleanup(func() { healthySessionAfter = prev })

	var conns atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		conns.Add(1)
		_ = conn.WriteJSON(map[string]any{
			"type": "score_update", "username": "dave", "score": 2, "previous": 1,
		})
		conn.Close()
	}))
	defer srv.Close()

	cache := NewDiffCache()
	feed := NewFeed(wsBase(t, srv), "alice", cache.Apply, discardLogger())
	feed.Start(context.Background())
	defer feed.Close()

	// Every session counts as healthy, so each drop redials right away.
	// On a single cumulative schedule the third connection would only
	// happen after the 1s and 2s delays had elapsed.
	require.Eventually(t, func() bool {
		return conns.Load() >= 3
	}, 2*time.Second, 10*time.Millisecond)
}

func TestFeed_CloseReleasesReader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
	defer srv.Close()

	feed := NewFeed(wsBase(t, srv), "alice", func(ScoreUpdate) {}, discardLogger())
	feed.Start(context.Background())

	closed := make(chan struct{})
	go func() {
		feed.Close()
		feed.Close() // second close is a no-op
		close(closed)
	}()

	select {
	case <-closed:
	case <-time.After(5 * time.Second):
		t.Fatal("feed did not close in time")
	}
}
