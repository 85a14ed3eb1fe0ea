package session

import (
	"sync"

	"github.com/Rajatbisht12/EmiterA/internal/client/models"
)

// Store owns a single State instance and applies transitions atomically.
// Each mutation is a single replace of the relevant fields under the lock,
// so concurrent writers (actions, the leaderboard poller) interleave only
// at mutation boundaries and the last write to a field wins.
//
// A Store is constructed explicitly and passed to its owners; there is no
// package-level instance, so independent sessions never share state.
type Store struct {
	mu       sync.RWMutex
	state    State
	onChange func(State)
}

func NewStore() *Store {
	return &Store{state: NewState()}
}

// OnChange registers a hook invoked with a copy of the state after every
// mutation. The hook runs under the store lock so invocations arrive in
// mutation order; it must not call back into the store. Set it once, before
// the store is shared across goroutines.
func (st *Store) OnChange(fn func(State)) {
	st.onChange = fn
}

// State returns a copy of the current state. Mutating the copy's slices
// does not affect the store.
func (st *Store) State() State {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return cloneState(st.state)
}

func (st *Store) apply(fn func(State) State) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.state = fn(st.state)
	if st.onChange != nil {
		st.onChange(cloneState(st.state))
	}
}

func (st *Store) SetUsername(name string) {
	st.apply(func(s State) State { return setUsername(s, name) })
}

func (st *Store) SetGame(g models.Game) {
	st.apply(func(s State) State { return setGame(s, g) })
}

func (st *Store) SetDrawResult(r models.DrawResult) {
	st.apply(func(s State) State { return setDrawResult(s, r) })
}

func (st *Store) SetLeaderboard(players []models.Player) {
	st.apply(func(s State) State { return setLeaderboard(s, players) })
}

// Restore replaces the whole state from a persisted snapshot. Used once at
// startup, before any action runs.
func (st *Store) Restore(s State) {
	st.apply(func(State) State { return cloneState(s) })
}
