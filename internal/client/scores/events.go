// Package scores receives pushed score deltas over the score event channel
// and caches them for display. The cache is transient: it is rebuilt from
// scratch as events arrive and is never persisted.
package scores

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnknownEvent marks an inbound message whose type is not part of the
// channel contract. Such messages are dropped, never partially applied.
var ErrUnknownEvent = errors.New("unknown event type")

// Event is a decoded inbound channel message.
type Event interface{ isEvent() }

// ScoreUpdate is an incremental score change for one player.
type ScoreUpdate struct {
	Username string `json:"username"`
	Score    int    `json:"score"`
	Previous int    `json:"previous"`
}

func (ScoreUpdate) isEvent() {}

// DecodeEvent parses a raw channel message into one of the known event
// variants. Unrecognized types fail closed with ErrUnknownEvent.
func DecodeEvent(data []byte) (Event, error) {
	var envelope struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("decode event envelope: %w", err)
	}

	switch envelope.Type {
	case "score_update":
		var e ScoreUpdate
		if err := json.Unmarshal(data, &e); err != nil {
			return nil, fmt.Errorf("decode score_update: %w", err)
		}
		return e, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEvent, envelope.Type)
	}
}
