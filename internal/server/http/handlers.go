package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"janggi/internal/janggi"
	"janggi/internal/server/game"
)

// Handler 实现 http.Handler，用于 /api/* 路由
type Handler struct {
	games *game.Manager
}

func NewHandler(m *game.Manager) *Handler {
	if m == nil {
		m = game.NewManager()
	}
	return &Handler{games: m}
}

func (h *Handler) Games() *game.Manager {
	return h.games
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/api/new_game":
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.handleNewGame(w, r)

	case "/api/move":
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.handleMove(w, r)

	case "/api/state":
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.handleState(w, r)

	default:
		http.NotFound(w, r)
	}
}

func (h *Handler) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req NewGameRequest
	// 空 body 等于标准开局
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	var s *game.GameState
	if req.Layout == "" {
		s = h.games.NewGame()
	} else {
		turn, ok := parseTurn(req.Turn)
		if !ok {
			http.Error(w, "invalid turn", http.StatusBadRequest)
			return
		}
		var err error
		s, err = h.games.NewGameFromLayout(req.Layout, turn)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	log.Printf("new game %s", s.ID)
	writeJSON(w, boardToDTO(s.Snapshot()))
}

func (h *Handler) handleMove(w http.ResponseWriter, r *http.Request) {
	var req MoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	s, ok := h.lookup(w, req.GameID)
	if !ok {
		return
	}

	accepted, snap, err := s.Move(req.From, req.To)
	if err != nil {
		writeError(w, err)
		return
	}
	if accepted && snap.State != janggi.Unfinished {
		log.Printf("game %s finished: %s", s.ID, snap.State)
	}

	writeJSON(w, MoveResponse{
		BoardResponse: boardToDTO(snap),
		Accepted:      accepted,
	})
}

func (h *Handler) handleState(w http.ResponseWriter, r *http.Request) {
	var req StateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	s, ok := h.lookup(w, req.GameID)
	if !ok {
		return
	}

	moves, snap, err := s.LegalMoves(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if moves == nil {
		moves = []janggi.Move{}
	}

	writeJSON(w, StateResponse{
		BoardResponse: boardToDTO(snap),
		LegalMoves:    moves,
	})
}

func (h *Handler) lookup(w http.ResponseWriter, id string) (*game.GameState, bool) {
	s, err := h.games.Get(id)
	if err != nil {
		writeError(w, err)
		return nil, false
	}
	return s, true
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, game.ErrGameNotFound):
		http.Error(w, "game not found", http.StatusNotFound)
	case errors.Is(err, janggi.ErrInvalidCoordinate):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		log.Println("request error:", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Println("writeJSON error:", err)
	}
}
