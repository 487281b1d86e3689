package janggi

func (b *Board) generalSquare(c Color) Square {
	id, ok := b.players[c].General()
	if !ok {
		panic("janggi: no " + c.String() + " general on the board")
	}
	return b.pieces[id].Square
}

// InCheck reports whether any opposing piece's movement rule reaches c's
// General. It uses the pure predicate, so it never recurses into self-check.
func (b *Board) InCheck(c Color) bool {
	target := b.generalSquare(c)
	for id := range b.players[c.Opponent()].pieces {
		if b.IsLegalMove(b.pieces[id].Square, target) {
			return true
		}
	}
	return false
}

// Attackers lists the opposing pieces whose movement rule reaches c's General.
func (b *Board) Attackers(c Color) []PieceID {
	target := b.generalSquare(c)
	var out []PieceID
	for _, id := range b.players[c.Opponent()].Pieces() {
		if b.IsLegalMove(b.pieces[id].Square, target) {
			out = append(out, id)
		}
	}
	return out
}

// InCheckmate reports whether c is in check with no capture of an attacker,
// no block of an attack path and no General escape inside the palace.
func (b *Board) InCheckmate(c Color) bool {
	if !b.InCheck(c) {
		return false
	}
	target := b.generalSquare(c)
	attackers := b.Attackers(c)
	defenders := b.players[c].Pieces()

	// capture
	for _, a := range attackers {
		if b.anyDefenderReaches(defenders, b.pieces[a].Square) {
			return false
		}
	}

	// block
	for _, a := range attackers {
		for _, sq := range b.MovePath(b.pieces[a].Square, target) {
			if b.anyDefenderReaches(defenders, sq) {
				return false
			}
		}
	}

	// escape
	for _, sq := range palaceSquares(c) {
		if !b.IsLegalMove(target, sq) {
			continue
		}
		if !b.Simulate(target, sq, func() bool { return b.InCheck(c) }) {
			return false
		}
	}
	return true
}

func (b *Board) anyDefenderReaches(defenders []PieceID, sq Square) bool {
	for _, id := range defenders {
		if b.IsLegal(b.pieces[id].Square, sq) {
			return true
		}
	}
	return false
}
