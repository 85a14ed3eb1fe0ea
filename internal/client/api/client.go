// Package api implements the request/response surface of the remote game
// service. The service is the sole authority for deck contents and draw
// outcomes; this package never interprets game rules.
package api

import (
	"context"

	"github.com/Rajatbisht12/EmiterA/internal/client/models"
)

// GameClient is the remote game service seen from the session layer.
//
// Contract:
//   - NewGame: allocate a fresh game and deck for the player.
//   - ResumeGame: re-fetch a game persisted in an earlier session.
//   - DrawCard: remove one card from the remote deck; outcome is authoritative.
//   - FetchLeaderboard: current ranking snapshot.
//
// All methods honor context cancellation. Failures map onto the sentinel
// errors in internal/common; callers do not retry.
type GameClient interface {
	NewGame(ctx context.Context, username string) (models.Game, error)
	ResumeGame(ctx context.Context, gameID string) (models.Game, error)
	DrawCard(ctx context.Context, gameID string) (models.DrawResult, error)
	FetchLeaderboard(ctx context.Context) ([]models.Player, error)
}
