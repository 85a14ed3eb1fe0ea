package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Rajatbisht12/EmiterA/internal/client/models"
	"github.com/Rajatbisht12/EmiterA/internal/client/scores"
	"github.com/Rajatbisht12/EmiterA/internal/common"
)

func (a *App) isLoggedIn() bool {
	return a.ctrl.State().IsLoggedIn
}

func (a *App) Login(ctx context.Context, username string) {
	if err := a.ctrl.Login(ctx, username); err != nil {
		printlnFn(fmt.Sprintf("Login failed: %s", err))
		return
	}
	printlnFn(fmt.Sprintf("Welcome to Exploding Kittens, %s!", a.ctrl.State().Username))
}

func (a *App) StartGame(ctx context.Context) {
	msg, err := a.ctrl.StartGame(ctx)
	if errors.Is(err, common.ErrNotLoggedIn) {
		printlnFn("Please login first.")
		return
	}
	if msg != "" {
		printlnFn(msg)
	}
	a.ShowState(ctx)
}

func (a *App) Draw(ctx context.Context) {
	state := a.ctrl.State()
	if state.GameID == "" {
		printlnFn("No active game. Type start to begin.")
		return
	}
	if len(state.Deck) == 0 {
		printlnFn("No cards left to draw. Type start for a new game.")
		return
	}

	msg, _ := a.ctrl.DrawCard(ctx)
	if msg != "" {
		printlnFn(msg)
	}
	a.ShowState(ctx)
}

func (a *App) ShowState(ctx context.Context) {
	state := a.ctrl.State()
	if state.GameID == "" {
		printlnFn("No active game. Type start to begin.")
		return
	}

	hasDefuse := "No"
	if state.HasDefuse {
		hasDefuse = "Yes"
	}
	printlnFn(fmt.Sprintf("Cards remaining: %d | Has Defuse: %s", len(state.Deck), hasDefuse))

	if state.LastDrawnCard != nil {
		printlnFn(fmt.Sprintf("Last drawn: %s", strings.ToUpper(string(state.LastDrawnCard.Type))))
	}
}

func (a *App) ShowBoard(ctx context.Context) {
	printlnFn("Leaderboard")
	board := a.ctrl.State().Leaderboard
	if len(board) == 0 {
		printlnFn("No scores yet")
		return
	}
	for _, player := range board {
		diff, ok := a.ctrl.ScoreDiff(player.Username)
		printlnFn(renderScore(player, diff, ok))
	}
}

// renderScore formats one leaderboard row. When a pushed score delta has
// arrived for the player, the pushed value takes precedence over the polled
// one and the row is decorated with the signed change.
func renderScore(player models.Player, diff scores.Diff, ok bool) string {
	if !ok {
		return fmt.Sprintf("%s  %d points", player.Username, player.Score)
	}
	if delta := diff.Delta(); delta != 0 {
		return fmt.Sprintf("%s  %d points (%+d)", player.Username, diff.Current, delta)
	}
	return fmt.Sprintf("%s  %d points", player.Username, diff.Current)
}
