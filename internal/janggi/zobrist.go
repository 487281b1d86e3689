package janggi

import "sync"

const zobristPieceKinds = 8 // PieceKind in [1..7], 0 unused

var (
	zobristOnce sync.Once

	zobristPieces [2][zobristPieceKinds][NumSquares]uint64
	zobristSide   uint64
)

func initZobrist() {
	zobristOnce.Do(func() {
		seed := uint64(0x9E3779B97F4A7C15)
		next := func() uint64 {
			seed += 0x9E3779B97F4A7C15
			z := seed
			z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
			z = (z ^ (z >> 27)) * 0x94D049BB133111EB
			return z ^ (z >> 31)
		}

		for c := 0; c < 2; c++ {
			for k := 1; k < zobristPieceKinds; k++ {
				for sq := 0; sq < NumSquares; sq++ {
					zobristPieces[c][k][sq] = next()
				}
			}
		}
		zobristSide = next()
	})
}

func pieceHashKey(pc Piece) uint64 {
	if !pc.Alive || !pc.Square.Valid() || (pc.Color != Blue && pc.Color != Red) {
		return 0
	}
	k := int(pc.Kind)
	if k <= 0 || k >= zobristPieceKinds {
		return 0
	}
	return zobristPieces[pc.Color][k][pc.Square]
}

// Hash is a Zobrist hash of the occupancy. Two boards with the same pieces on
// the same squares hash equal regardless of arena order.
func (b *Board) Hash() uint64 {
	initZobrist()

	var h uint64
	for sq := Square(0); int(sq) < NumSquares; sq++ {
		pc, ok := b.At(sq)
		if !ok {
			continue
		}
		h ^= pieceHashKey(pc)
	}
	return h
}

// HashWithTurn folds the side to move into Hash.
func (b *Board) HashWithTurn(turn Color) uint64 {
	h := b.Hash()
	if turn == Red {
		h ^= zobristSide
	}
	return h
}
