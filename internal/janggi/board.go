package janggi

import "fmt"

// Board is the 9x10 grid. Pieces live in a single arena; cells and players
// hold arena IDs so there is exactly one owner per piece.
type Board struct {
	cells   [NumSquares]PieceID
	pieces  []Piece // arena, index 0 reserved for NoPiece
	players [2]*Player
}

func NewBoard() *Board {
	b := &Board{pieces: make([]Piece, 1, 33)}
	b.players[Blue] = newPlayer(Blue)
	b.players[Red] = newPlayer(Red)
	return b
}

// NewInitialBoard returns a board with the opening position already placed.
func NewInitialBoard() *Board {
	b := NewBoard()
	b.PlaceInitialLayout()
	return b
}

// PlaceInitialLayout builds the 32-piece opening position and registers every
// piece with its owner. It must run on an empty board, once.
func (b *Board) PlaceInitialLayout() {
	if len(b.pieces) > 1 {
		panic("janggi: opening layout placed on a non-empty board")
	}
	if err := b.placeLayout(openingLayout); err != nil {
		panic("janggi: built-in opening layout: " + err.Error())
	}
}

func (b *Board) place(c Color, kind PieceKind, sq Square) PieceID {
	if b.cells[sq] != NoPiece {
		panic(fmt.Sprintf("janggi: square %s already occupied", sq))
	}
	id := PieceID(len(b.pieces))
	b.pieces = append(b.pieces, Piece{ID: id, Kind: kind, Color: c, Square: sq, Alive: true})
	b.cells[sq] = id
	b.players[c].add(id, kind)
	return id
}

func (b *Board) Player(c Color) *Player {
	if c != Blue && c != Red {
		return nil
	}
	return b.players[c]
}

// Piece returns the arena entry for id, dead or alive.
func (b *Board) Piece(id PieceID) Piece {
	if id <= NoPiece || int(id) >= len(b.pieces) {
		return Piece{}
	}
	return b.pieces[id]
}

// At returns the piece on sq.
func (b *Board) At(sq Square) (Piece, bool) {
	if !sq.Valid() {
		return Piece{}, false
	}
	id := b.cells[sq]
	if id == NoPiece {
		return Piece{}, false
	}
	return b.pieces[id], true
}

// OccupantAt is the renderer-facing lookup.
func (b *Board) OccupantAt(sq Square) (PieceKind, Color, bool) {
	pc, ok := b.At(sq)
	if !ok {
		return KindNone, NoColor, false
	}
	return pc.Kind, pc.Color, true
}

func (b *Board) occupied(sq Square) bool { return b.cells[sq] != NoPiece }

// PieceCount counts live pieces of both colours.
func (b *Board) PieceCount() int {
	return b.players[Blue].Len() + b.players[Red].Len()
}

// undoRecord is the inverse of one relocation: enough to put the mover back
// and revive whatever it captured.
type undoRecord struct {
	mover    PieceID
	from, to Square
	captured PieceID
}

func (b *Board) apply(from, to Square) undoRecord {
	mover := b.cells[from]
	if mover == NoPiece {
		panic("janggi: relocate from empty square " + from.String())
	}
	rec := undoRecord{mover: mover, from: from, to: to}
	if from == to {
		return rec
	}
	if captured := b.cells[to]; captured != NoPiece {
		rec.captured = captured
		pc := &b.pieces[captured]
		pc.Alive = false
		b.players[pc.Color].remove(captured)
	}
	b.cells[to] = mover
	b.pieces[mover].Square = to
	b.cells[from] = NoPiece
	return rec
}

func (b *Board) undo(rec undoRecord) {
	if rec.from == rec.to {
		return
	}
	b.cells[rec.from] = rec.mover
	b.pieces[rec.mover].Square = rec.from
	b.cells[rec.to] = rec.captured
	if rec.captured != NoPiece {
		pc := &b.pieces[rec.captured]
		pc.Alive = true
		pc.Square = rec.to
		b.players[pc.Color].add(rec.captured, pc.Kind)
	}
}

// Relocate moves the occupant of from onto to, capturing any occupant there.
// It does no legality checking.
func (b *Board) Relocate(from, to Square) {
	b.apply(from, to)
}

// Simulate relocates from -> to, evaluates probe, and rolls the board back to
// its exact prior state on every exit path before returning probe's result.
// Not reentrant across goroutines; use Clone for concurrent searches.
func (b *Board) Simulate(from, to Square, probe func() bool) bool {
	rec := b.apply(from, to)
	defer b.undo(rec)
	return probe()
}

// IsLegal is composite legality: the occupant's movement rule allows the move
// and the mover's own General is not left in check.
func (b *Board) IsLegal(from, to Square) bool {
	pc, ok := b.At(from)
	if !ok {
		return false
	}
	if !b.IsLegalMove(from, to) {
		return false
	}
	return !b.Simulate(from, to, func() bool { return b.InCheck(pc.Color) })
}

// Clone returns an independent snapshot sharing nothing with b.
func (b *Board) Clone() *Board {
	nb := &Board{cells: b.cells, pieces: make([]Piece, len(b.pieces), cap(b.pieces))}
	copy(nb.pieces, b.pieces)
	nb.players[Blue] = b.players[Blue].clone()
	nb.players[Red] = b.players[Red].clone()
	return nb
}
