// Package session holds the canonical local view of one player's game and
// the pure transition functions that evolve it. No function in this file
// performs I/O; network calls happen in the controller before a transition
// is dispatched.
package session

import (
	"slices"

	"github.com/Rajatbisht12/EmiterA/internal/client/models"
)

// State is the full client-side session state. A zero GameID means no
// active game; Leaderboard is always non-nil.
type State struct {
	Username      string          `json:"username"`
	IsLoggedIn    bool            `json:"isLoggedIn"`
	GameID        string          `json:"gameId"`
	Deck          []models.Card   `json:"deck"`
	HasDefuse     bool            `json:"hasDefuse"`
	GameStatus    models.Status   `json:"gameStatus"`
	Leaderboard   []models.Player `json:"leaderboard"`
	LastDrawnCard *models.Card    `json:"lastDrawnCard"`
}

// NewState returns the initial all-empty state.
func NewState() State {
	return State{Leaderboard: []models.Player{}}
}

func cloneState(s State) State {
	s.Deck = slices.Clone(s.Deck)
	if s.Leaderboard == nil {
		s.Leaderboard = []models.Player{}
	}
	s.Leaderboard = slices.Clone(s.Leaderboard)
	if s.LastDrawnCard != nil {
		c := *s.LastDrawnCard
		s.LastDrawnCard = &c
	}
	return s
}

// setUsername logs the player in. The username is set once; once logged in
// the session ignores further attempts, which makes repeated logins
// idempotent.
func setUsername(s State, name string) State {
	if s.IsLoggedIn {
		return s
	}
	s.Username = name
	s.IsLoggedIn = true
	return s
}

// setGame replaces GameID, Deck and HasDefuse together from a single server
// response. The three fields are never updated separately.
func setGame(s State, g models.Game) State {
	s.GameID = g.ID
	s.Deck = slices.Clone(g.Deck)
	s.HasDefuse = g.HasDefuse
	return s
}

// setDrawResult applies a draw response: game fields, the drawn card and
// the reported outcome, all from the same response.
func setDrawResult(s State, r models.DrawResult) State {
	s = setGame(s, r.Game)
	card := r.Card
	s.LastDrawnCard = &card
	s.GameStatus = r.Status
	return s
}

// setLeaderboard wholesale-replaces the leaderboard snapshot. A nil
// argument stores an empty slice, never nil.
func setLeaderboard(s State, players []models.Player) State {
	if players == nil {
		players = []models.Player{}
	}
	s.Leaderboard = slices.Clone(players)
	return s
}
