package janggi

// Palaces: red owns ranks 1-3, blue owns ranks 8-10, both on files d-f.
const (
	palaceColMin = 3
	palaceColMax = 5
)

func palaceRows(c Color) (lo, hi int) {
	if c == Red {
		return 0, 2
	}
	return Rows - 3, Rows - 1
}

func inPalace(c Color, sq Square) bool {
	if !sq.Valid() || c == NoColor {
		return false
	}
	lo, hi := palaceRows(c)
	r, col := sq.Row(), sq.Col()
	return r >= lo && r <= hi && col >= palaceColMin && col <= palaceColMax
}

// palaceOf reports which palace sq lies in, or NoColor.
func palaceOf(sq Square) Color {
	switch {
	case inPalace(Red, sq):
		return Red
	case inPalace(Blue, sq):
		return Blue
	}
	return NoColor
}

func palaceCenter(c Color) Square {
	lo, _ := palaceRows(c)
	return SquareAt(lo+1, palaceColMin+1)
}

func isPalaceCenter(sq Square) bool {
	c := palaceOf(sq)
	return c != NoColor && sq == palaceCenter(c)
}

func isPalaceCorner(sq Square) bool {
	c := palaceOf(sq)
	if c == NoColor {
		return false
	}
	lo, hi := palaceRows(c)
	return sq.Col() != palaceColMin+1 && (sq.Row() == lo || sq.Row() == hi)
}

// palaceSquares lists the nine squares of c's palace, rank-major.
func palaceSquares(c Color) []Square {
	lo, hi := palaceRows(c)
	out := make([]Square, 0, 9)
	for r := lo; r <= hi; r++ {
		for col := palaceColMin; col <= palaceColMax; col++ {
			out = append(out, SquareAt(r, col))
		}
	}
	return out
}

// palaceDiagonalStep reports a single diagonal step along a marked palace line:
// corner to centre or centre to corner of the same palace.
func palaceDiagonalStep(from, to Square) bool {
	c := palaceOf(from)
	if c == NoColor || palaceOf(to) != c {
		return false
	}
	if absInt(to.Row()-from.Row()) != 1 || absInt(to.Col()-from.Col()) != 1 {
		return false
	}
	center := palaceCenter(c)
	return (isPalaceCorner(from) && to == center) || (from == center && isPalaceCorner(to))
}

// palaceDiagonal reports a slide along a marked palace line and returns the
// squares strictly between from and to (the centre for corner to corner).
func palaceDiagonal(from, to Square) ([]Square, bool) {
	if palaceDiagonalStep(from, to) {
		return nil, true
	}
	c := palaceOf(from)
	if c == NoColor || palaceOf(to) != c {
		return nil, false
	}
	if !isPalaceCorner(from) || !isPalaceCorner(to) {
		return nil, false
	}
	if absInt(to.Row()-from.Row()) != 2 || absInt(to.Col()-from.Col()) != 2 {
		return nil, false
	}
	return []Square{palaceCenter(c)}, true
}
