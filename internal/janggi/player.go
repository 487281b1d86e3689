package janggi

import "sort"

// Player is one colour's set of live pieces. It references arena IDs only;
// the Board keeps it in sync on placement, capture and rollback.
type Player struct {
	color   Color
	pieces  map[PieceID]struct{}
	general PieceID
}

func newPlayer(c Color) *Player {
	return &Player{color: c, pieces: make(map[PieceID]struct{}, 16)}
}

func (p *Player) Color() Color { return p.color }

func (p *Player) add(id PieceID, kind PieceKind) {
	p.pieces[id] = struct{}{}
	if kind == KindGeneral {
		p.general = id
	}
}

func (p *Player) remove(id PieceID) {
	delete(p.pieces, id)
}

func (p *Player) Has(id PieceID) bool {
	_, ok := p.pieces[id]
	return ok
}

func (p *Player) Len() int { return len(p.pieces) }

// Pieces returns the live IDs in ascending order so searches are deterministic.
func (p *Player) Pieces() []PieceID {
	out := make([]PieceID, 0, len(p.pieces))
	for id := range p.pieces {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// General returns the player's General while it is on the board.
func (p *Player) General() (PieceID, bool) {
	if p.general == NoPiece || !p.Has(p.general) {
		return NoPiece, false
	}
	return p.general, true
}

func (p *Player) clone() *Player {
	np := &Player{color: p.color, general: p.general, pieces: make(map[PieceID]struct{}, len(p.pieces))}
	for id := range p.pieces {
		np.pieces[id] = struct{}{}
	}
	return np
}
