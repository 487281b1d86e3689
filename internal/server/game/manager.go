package game

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"janggi/internal/janggi"
)

var ErrGameNotFound = errors.New("game not found")

// Manager is the in-process registry of matches.
type Manager struct {
	mu    sync.RWMutex
	games map[string]*GameState
}

func NewManager() *Manager {
	return &Manager{games: make(map[string]*GameState)}
}

// NewGame registers a match from the opening position.
func (m *Manager) NewGame() *GameState {
	return m.add(janggi.NewGame())
}

// NewGameFromLayout registers a match from an arbitrary position.
func (m *Manager) NewGameFromLayout(layout string, turn janggi.Color) (*GameState, error) {
	g, err := janggi.NewGameFromLayout(layout, turn)
	if err != nil {
		return nil, err
	}
	return m.add(g), nil
}

func (m *Manager) add(g *janggi.Game) *GameState {
	now := time.Now()
	s := &GameState{
		ID:        uuid.NewString(),
		CreatedAt: now,
		game:      g,
		updatedAt: now,
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.games[s.ID] = s
	return s
}

func (m *Manager) Get(id string) (*GameState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.games[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrGameNotFound, id)
	}
	return s, nil
}

func (m *Manager) Remove(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.games[id]; !ok {
		return fmt.Errorf("%w: %q", ErrGameNotFound, id)
	}
	delete(m.games, id)
	return nil
}

// PruneIdle drops matches not updated since before cutoff and reports how
// many were removed.
func (m *Manager) PruneIdle(cutoff time.Time) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for id, s := range m.games {
		if s.UpdatedAt().Before(cutoff) {
			delete(m.games, id)
			n++
		}
	}
	return n
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}
