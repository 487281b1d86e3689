package janggi

// Soldier: one step forward or sideways. Inside the opponent's palace it may
// also step forward along a palace diagonal.
func legalSoldier(c Color, from, to Square) bool {
	dr := to.Row() - from.Row()
	dc := to.Col() - from.Col()
	switch {
	case dr == 0:
		return absInt(dc) == 1
	case dc == 0:
		return dr == c.forward()
	}
	if dr != c.forward() {
		return false
	}
	return palaceOf(from) == c.Opponent() && palaceDiagonalStep(from, to)
}
