package janggi

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// LegalMovesFrom lists every composite-legal destination for the occupant of from.
func (b *Board) LegalMovesFrom(from Square) []Move {
	if _, ok := b.At(from); !ok {
		return nil
	}
	var out []Move
	for to := Square(0); int(to) < NumSquares; to++ {
		if b.IsLegal(from, to) {
			out = append(out, Move{From: from, To: to})
		}
	}
	return out
}

// LegalMoves lists every composite-legal move for c, ordered by piece ID then
// destination.
func (b *Board) LegalMoves(c Color) []Move {
	var out []Move
	for _, id := range b.players[c].Pieces() {
		out = append(out, b.LegalMovesFrom(b.pieces[id].Square)...)
	}
	return out
}

// LegalMovesConcurrent is LegalMoves fanned out per piece. Every worker runs on
// its own Clone because Simulate mutates the board it is called on. workers <= 0
// means GOMAXPROCS.
func (b *Board) LegalMovesConcurrent(ctx context.Context, c Color, workers int) ([]Move, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	ids := b.players[c].Pieces()
	results := make([][]Move, len(ids))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, id := range ids {
		i := i
		snapshot := b.Clone()
		from := b.pieces[id].Square
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = snapshot.LegalMovesFrom(from)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var out []Move
	for _, ms := range results {
		out = append(out, ms...)
	}
	return out, nil
}
