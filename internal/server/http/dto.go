package httpserver

import (
	"fmt"

	"janggi/internal/janggi"
	"janggi/internal/server/game"
)

// NewGame 请求体可以为空
type NewGameRequest struct {
	Layout string `json:"layout,omitempty"` // 可选：10 行布局，测试/复盘用
	Turn   string `json:"turn,omitempty"`   // "blue" / "red"，默认 blue
}

// Move 请求
type MoveRequest struct {
	GameID string `json:"game_id"`
	From   string `json:"from"` // "a1".."i10"
	To     string `json:"to"`
}

// State 请求：前端刷新时用 game_id 来要当前盘面
type StateRequest struct {
	GameID string `json:"game_id"`
}

// BoardResponse 是所有接口共用的盘面部分
type BoardResponse struct {
	GameID  string   `json:"game_id"`
	Board   []string `json:"board"` // 10 行，第 1 行在前
	Turn    string   `json:"turn"`
	State   string   `json:"state"`
	InCheck bool     `json:"in_check"` // 轮到的一方是否被将
	Hash    string   `json:"hash"`     // 16 位十六进制
}

type MoveResponse struct {
	BoardResponse
	Accepted bool `json:"accepted"`
}

type StateResponse struct {
	BoardResponse
	LegalMoves []janggi.Move `json:"legal_moves"`
}

func boardToDTO(s game.Snapshot) BoardResponse {
	return BoardResponse{
		GameID:  s.ID,
		Board:   s.Ranks,
		Turn:    s.Turn.String(),
		State:   s.State.String(),
		InCheck: s.InCheck,
		Hash:    fmt.Sprintf("%016x", s.Hash),
	}
}

func parseTurn(v string) (janggi.Color, bool) {
	switch v {
	case "", "blue":
		return janggi.Blue, true
	case "red":
		return janggi.Red, true
	default:
		return janggi.NoColor, false
	}
}
