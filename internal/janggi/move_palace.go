package janggi

// General and Guard: one step inside their own palace; diagonal steps only
// along the lines joining the corners to the centre.
func legalPalaceStep(c Color, from, to Square) bool {
	if !inPalace(c, to) {
		return false
	}
	dr := absInt(to.Row() - from.Row())
	dc := absInt(to.Col() - from.Col())
	if dr > 1 || dc > 1 {
		return false
	}
	if dr == 1 && dc == 1 {
		return palaceDiagonalStep(from, to)
	}
	return true
}
