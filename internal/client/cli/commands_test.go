package cli

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/Rajatbisht12/EmiterA/internal/client/config"
	"github.com/Rajatbisht12/EmiterA/internal/client/controller"
	"github.com/Rajatbisht12/EmiterA/internal/client/models"
	"github.com/Rajatbisht12/EmiterA/internal/client/session"
	"github.com/Rajatbisht12/EmiterA/internal/logging"
	"github.com/stretchr/testify/assert"
)

type fakeGameClient struct {
	NewGameRet   models.Game
	NewGameErr   error
	NewGameCalls int
	DrawCalls    int
}

func (f *fakeGameClient) NewGame(_ context.Context, _ string) (models.Game, error) {
	f.NewGameCalls++
	return f.NewGameRet, f.NewGameErr
}

func (f *fakeGameClient) ResumeGame(_ context.Context, _ string) (models.Game, error) {
	return models.Game{}, nil
}

func (f *fakeGameClient) DrawCard(_ context.Context, _ string) (models.DrawResult, error) {
	f.DrawCalls++
	return models.DrawResult{}, nil
}

func (f *fakeGameClient) FetchLeaderboard(_ context.Context) ([]models.Player, error) {
	return nil, nil
}

type fakeSnapshots struct {
	mu    sync.Mutex
	state session.State
	ok    bool
}

func (f *fakeSnapshots) Save(_ context.Context, state session.State) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state, f.ok = state, true
	return nil
}

func (f *fakeSnapshots) Load(_ context.Context) (session.State, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state, f.ok, nil
}

func (f *fakeSnapshots) Clear(_ context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state, f.ok = session.State{}, false
	return nil
}

// newTestApp builds an App over a real controller. The websocket base points
// at a closed port, so the score feed just retries in the background until
// Stop tears it down.
func newTestApp(t *testing.T, client *fakeGameClient) *App {
	t.Helper()

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.LeaderboardInterval = time.Hour
	cfg.WSBaseURL = "ws://127.0.0.1:1"

	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	ctrl := controller.New(cfg, session.NewStore(), client, &fakeSnapshots{}, log)
	ctrl.Start(context.Background())
	t.Cleanup(ctrl.Stop)

	return &App{ctrl: ctrl}
}

func TestDraw_NoActiveGame(t *testing.T) {
	out := captureOutput(t)
	client := &fakeGameClient{}
	app := newTestApp(t, client)

	app.Draw(context.Background())

	assert.Contains(t, *out, "No active game. Type start to begin.")
	assert.Equal(t, 0, client.DrawCalls)
}

func TestDraw_EmptyDeck(t *testing.T) {
	out := captureOutput(t)
	client := &fakeGameClient{NewGameRet: models.Game{ID: "g1", Deck: []models.Card{}}}
	app := newTestApp(t, client)

	app.Login(context.Background(), "alice")
	app.StartGame(context.Background())
	app.Draw(context.Background())

	assert.Contains(t, *out, "No cards left to draw. Type start for a new game.")
	assert.Equal(t, 0, client.DrawCalls)
}

func TestStartGame_NotLoggedIn(t *testing.T) {
	out := captureOutput(t)
	client := &fakeGameClient{}
	app := newTestApp(t, client)

	app.StartGame(context.Background())

	assert.Contains(t, *out, "Please login first.")
	assert.Equal(t, 0, client.NewGameCalls)
}
