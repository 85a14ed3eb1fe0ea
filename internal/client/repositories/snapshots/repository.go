// Package snapshots persists point-in-time copies of the session state so a
// session can be resumed after a restart.
package snapshots

import (
	"context"

	"github.com/Rajatbisht12/EmiterA/internal/client/session"
)

// Repository stores at most one snapshot per slot; the session layer uses a
// single fixed slot.
//
// Load reports ok=false when no snapshot exists, which means "no session to
// resume" — it is not an error.
type Repository interface {
	Save(ctx context.Context, state session.State) error
	Load(ctx context.Context) (state session.State, ok bool, err error)
	Clear(ctx context.Context) error
}
