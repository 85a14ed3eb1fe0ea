// Package models defines the wire types exchanged with the game service.
package models

// CardType classifies a card.
type CardType string

const (
	CardCat     CardType = "cat"
	CardDefuse  CardType = "defuse"
	CardBomb    CardType = "bomb"
	CardShuffle CardType = "shuffle"
)

// Card is an opaque card reference as reported by the game service.
type Card struct {
	Type CardType `json:"type"`
}

// Status is the outcome of a draw as reported by the game service.
type Status string

const (
	StatusDrawn    Status = "drawn"
	StatusDefused  Status = "defused"
	StatusExploded Status = "exploded"
	StatusWon      Status = "won"
	StatusShuffled Status = "shuffled"
)

// Terminal reports whether the status ends the current game.
func (s Status) Terminal() bool {
	return s == StatusExploded || s == StatusWon
}

// Game is the authoritative view of one in-progress game.
type Game struct {
	ID        string `json:"id"`
	Deck      []Card `json:"deck"`
	HasDefuse bool   `json:"hasDefuse"`
}

// DrawResult is the response to a draw: the updated game, the card that
// came off the deck, and the outcome.
type DrawResult struct {
	Game   Game   `json:"game"`
	Card   Card   `json:"card"`
	Status Status `json:"status"`
}

// Player is one leaderboard row.
type Player struct {
	Username string `json:"username"`
	Score    int    `json:"score"`
}
