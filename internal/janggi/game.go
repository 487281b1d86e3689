package janggi

import (
	"context"
	"fmt"
)

// Game is one match: the board, the colour to move and the terminal state.
// It is not safe for concurrent use; callers serialise access.
type Game struct {
	board *Board
	turn  Color
	state State
}

// NewGame starts a match from the opening position with blue to move.
func NewGame() *Game {
	return &Game{board: NewInitialBoard(), turn: Blue, state: Unfinished}
}

// NewGameFromLayout starts a match from an arbitrary position.
func NewGameFromLayout(layout string, turn Color) (*Game, error) {
	if turn != Blue && turn != Red {
		return nil, fmt.Errorf("%w: side to move %v", ErrInvalidLayout, turn)
	}
	b, err := ParseLayout(layout)
	if err != nil {
		return nil, err
	}
	if b.InCheck(turn.Opponent()) {
		return nil, fmt.Errorf("%w: %s is in check with %s to move", ErrInvalidLayout, turn.Opponent(), turn)
	}
	return &Game{board: b, turn: turn, state: Unfinished}, nil
}

func (g *Game) State() State { return g.state }
func (g *Game) Turn() Color  { return g.turn }

func (g *Game) OccupantAt(sq Square) (PieceKind, Color, bool) {
	return g.board.OccupantAt(sq)
}

func (g *Game) InCheck(c Color) bool { return g.board.InCheck(c) }

func (g *Game) Ranks() []string { return g.board.Ranks() }
func (g *Game) Layout() string  { return g.board.Layout() }
func (g *Game) Hash() uint64    { return g.board.HashWithTurn(g.turn) }

func (g *Game) PieceCount(c Color) int { return g.board.Player(c).Len() }

// RequestMove applies one move or pass for the side to move and reports
// whether it was accepted. Every rejection leaves the game untouched.
func (g *Game) RequestMove(from, to Square) bool {
	if g.state != Unfinished {
		return false
	}
	if !from.Valid() || !to.Valid() {
		return false
	}

	if from == to {
		if g.board.InCheck(g.turn) {
			return false
		}
		g.turn = g.turn.Opponent()
		return true
	}

	pc, ok := g.board.At(from)
	if !ok || pc.Color != g.turn {
		return false
	}
	if !g.board.IsLegal(from, to) {
		return false
	}

	g.board.Relocate(from, to)
	mover := g.turn
	g.turn = mover.Opponent()
	if g.board.InCheckmate(g.turn) {
		g.state = wonBy(mover)
	}
	return true
}

// Move is RequestMove over "a1".."i10" text. err is non-nil only for a
// malformed coordinate.
func (g *Game) Move(from, to string) (bool, error) {
	src, err := ParseSquare(from)
	if err != nil {
		return false, err
	}
	dst, err := ParseSquare(to)
	if err != nil {
		return false, err
	}
	return g.RequestMove(src, dst), nil
}

// LegalDestinations lists where the piece on from may go this turn.
func (g *Game) LegalDestinations(from Square) []Square {
	if g.state != Unfinished {
		return nil
	}
	pc, ok := g.board.At(from)
	if !ok || pc.Color != g.turn {
		return nil
	}
	moves := g.board.LegalMovesFrom(from)
	out := make([]Square, len(moves))
	for i, m := range moves {
		out[i] = m.To
	}
	return out
}

// LegalMoves lists the side to move's legal piece moves (passes excluded).
func (g *Game) LegalMoves(ctx context.Context) ([]Move, error) {
	if g.state != Unfinished {
		return nil, nil
	}
	return g.board.LegalMovesConcurrent(ctx, g.turn, 0)
}
