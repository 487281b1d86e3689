package janggi

// slidePath returns the squares strictly between from and to for a rank/file
// slide or a palace-line slide. ok is false for any other shape.
func slidePath(from, to Square) ([]Square, bool) {
	dr := to.Row() - from.Row()
	dc := to.Col() - from.Col()
	if dr != 0 && dc != 0 {
		return palaceDiagonal(from, to)
	}
	if dr == 0 && dc == 0 {
		return nil, false
	}
	sr, sc := signInt(dr), signInt(dc)
	n := absInt(dr) + absInt(dc) - 1
	path := make([]Square, 0, n)
	for r, c := from.Row()+sr, from.Col()+sc; r != to.Row() || c != to.Col(); r, c = r+sr, c+sc {
		path = append(path, SquareAt(r, c))
	}
	return path, true
}

// Chariot: any distance along a rank, file or palace line, nothing in between.
func (b *Board) legalChariot(from, to Square) bool {
	path, ok := slidePath(from, to)
	if !ok {
		return false
	}
	return b.pathClear(path)
}

// Cannon: same lines as the chariot but must jump exactly one piece, which may
// not be a cannon, and may never land on a cannon.
func (b *Board) legalCannon(from, to Square) bool {
	if dst, ok := b.At(to); ok && dst.Kind == KindCannon {
		return false
	}
	path, ok := slidePath(from, to)
	if !ok {
		return false
	}
	jumps := 0
	for _, sq := range path {
		pc, ok := b.At(sq)
		if !ok {
			continue
		}
		if pc.Kind == KindCannon {
			return false
		}
		jumps++
	}
	return jumps == 1
}
