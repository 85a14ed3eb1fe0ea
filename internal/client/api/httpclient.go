package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/Rajatbisht12/EmiterA/internal/client/models"
	"github.com/Rajatbisht12/EmiterA/internal/common"
	"github.com/google/uuid"
)

// wire status emitted by the game service for an uneventful draw; the
// session layer calls it "drawn".
const statusContinue models.Status = "continue"

// HTTPGameClient talks JSON over HTTP to the game service.
type HTTPGameClient struct {
	baseURL string
	hc      *http.Client
}

// NewHTTPGameClient returns a client rooted at baseURL, e.g.
// "http://localhost:8080/api". No request timeout is imposed; a hung call
// blocks only the action that issued it.
func NewHTTPGameClient(baseURL string) *HTTPGameClient {
	return &HTTPGameClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{},
	}
}

func (c *HTTPGameClient) NewGame(ctx context.Context, username string) (models.Game, error) {
	if username == "" {
		return models.Game{}, common.ErrEmptyUsername
	}

	var game models.Game
	req := struct {
		Username string `json:"username"`
	}{Username: username}

	if err := c.post(ctx, "/game/new", req, &game); err != nil {
		return models.Game{}, err
	}
	return game, nil
}

func (c *HTTPGameClient) ResumeGame(ctx context.Context, gameID string) (models.Game, error) {
	if gameID == "" {
		return models.Game{}, common.ErrNoActiveGame
	}

	var game models.Game
	req := struct {
		GameID string `json:"gameId"`
	}{GameID: gameID}

	if err := c.post(ctx, "/game/resume", req, &game); err != nil {
		return models.Game{}, err
	}
	return game, nil
}

func (c *HTTPGameClient) DrawCard(ctx context.Context, gameID string) (models.DrawResult, error) {
	if gameID == "" {
		return models.DrawResult{}, common.ErrNoActiveGame
	}

	var result models.DrawResult
	req := struct {
		GameID string `json:"gameId"`
	}{GameID: gameID}

	if err := c.post(ctx, "/game/draw", req, &result); err != nil {
		return models.DrawResult{}, err
	}
	if result.Status == statusContinue {
		result.Status = models.StatusDrawn
	}
	return result, nil
}

func (c *HTTPGameClient) FetchLeaderboard(ctx context.Context) ([]models.Player, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/leaderboard", nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.hc.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrNetwork, err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	var players []models.Player
	if err := json.NewDecoder(resp.Body).Decode(&players); err != nil {
		return nil, fmt.Errorf("%w: decode leaderboard: %v", common.ErrNetwork, err)
	}
	return players, nil
}

func (c *HTTPGameClient) post(ctx context.Context, path string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.hc.Do(httpReq)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrNetwork, err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return err
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode response: %v", common.ErrNetwork, err)
	}
	return nil
}

func checkStatus(resp *http.Response) error {
	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %s", common.ErrNotFound, resp.Request.URL.Path)
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("%w: unexpected status %s", common.ErrNetwork, resp.Status)
	}
	return nil
}
