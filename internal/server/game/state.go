package game

import (
	"context"
	"sync"
	"time"

	"janggi/internal/janggi"
)

// GameState is one registered match. The janggi core is single-threaded, so
// every access goes through mu.
type GameState struct {
	ID        string
	CreatedAt time.Time

	mu        sync.Mutex
	game      *janggi.Game
	updatedAt time.Time
}

// Snapshot is a consistent read of a match taken under the lock.
type Snapshot struct {
	ID      string
	Ranks   []string
	Turn    janggi.Color
	State   janggi.State
	InCheck bool
	Hash    uint64
}

func (s *GameState) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *GameState) snapshotLocked() Snapshot {
	return Snapshot{
		ID:      s.ID,
		Ranks:   s.game.Ranks(),
		Turn:    s.game.Turn(),
		State:   s.game.State(),
		InCheck: s.game.InCheck(s.game.Turn()),
		Hash:    s.game.Hash(),
	}
}

// Move forwards a move request in "a1".."i10" notation and returns the
// resulting snapshot. err is only set for malformed coordinates.
func (s *GameState) Move(from, to string) (bool, Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ok, err := s.game.Move(from, to)
	if err != nil {
		return false, Snapshot{}, err
	}
	if ok {
		s.updatedAt = time.Now()
	}
	return ok, s.snapshotLocked(), nil
}

// LegalMoves lists the side to move's legal moves alongside the snapshot
// they belong to.
func (s *GameState) LegalMoves(ctx context.Context) ([]janggi.Move, Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	moves, err := s.game.LegalMoves(ctx)
	if err != nil {
		return nil, Snapshot{}, err
	}
	return moves, s.snapshotLocked(), nil
}

func (s *GameState) UpdatedAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updatedAt
}
