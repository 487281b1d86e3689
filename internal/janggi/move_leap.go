package janggi

// leap is one directional variant of a blockable jump: the destination offset
// and the intermediate squares, orthogonal step first.
type leap struct {
	Dr, Dc int
	Legs   [2][2]int
	N      int
}

// Horse: 2x1, blocked by the single orthogonal leg.
var horseLegs = [8]leap{
	{Dr: -2, Dc: -1, Legs: [2][2]int{{-1, 0}}, N: 1},
	{Dr: -2, Dc: +1, Legs: [2][2]int{{-1, 0}}, N: 1},
	{Dr: -1, Dc: -2, Legs: [2][2]int{{0, -1}}, N: 1},
	{Dr: -1, Dc: +2, Legs: [2][2]int{{0, +1}}, N: 1},
	{Dr: +1, Dc: -2, Legs: [2][2]int{{0, -1}}, N: 1},
	{Dr: +1, Dc: +2, Legs: [2][2]int{{0, +1}}, N: 1},
	{Dr: +2, Dc: -1, Legs: [2][2]int{{+1, 0}}, N: 1},
	{Dr: +2, Dc: +1, Legs: [2][2]int{{+1, 0}}, N: 1},
}

// Elephant: 3x2, one orthogonal step then one diagonal step outward; either
// intermediate square blocks.
var elephantLegs = [8]leap{
	{Dr: -3, Dc: -2, Legs: [2][2]int{{-1, 0}, {-2, -1}}, N: 2},
	{Dr: -3, Dc: +2, Legs: [2][2]int{{-1, 0}, {-2, +1}}, N: 2},
	{Dr: +3, Dc: -2, Legs: [2][2]int{{+1, 0}, {+2, -1}}, N: 2},
	{Dr: +3, Dc: +2, Legs: [2][2]int{{+1, 0}, {+2, +1}}, N: 2},
	{Dr: -2, Dc: -3, Legs: [2][2]int{{0, -1}, {-1, -2}}, N: 2},
	{Dr: +2, Dc: -3, Legs: [2][2]int{{0, -1}, {+1, -2}}, N: 2},
	{Dr: -2, Dc: +3, Legs: [2][2]int{{0, +1}, {-1, +2}}, N: 2},
	{Dr: +2, Dc: +3, Legs: [2][2]int{{0, +1}, {+1, +2}}, N: 2},
}

func leapPath(table []leap, from, to Square) ([]Square, bool) {
	dr := to.Row() - from.Row()
	dc := to.Col() - from.Col()
	for _, l := range table {
		if l.Dr != dr || l.Dc != dc {
			continue
		}
		path := make([]Square, 0, l.N)
		for i := 0; i < l.N; i++ {
			path = append(path, SquareAt(from.Row()+l.Legs[i][0], from.Col()+l.Legs[i][1]))
		}
		return path, true
	}
	return nil, false
}

func (b *Board) legalLeap(table []leap, from, to Square) bool {
	path, ok := leapPath(table, from, to)
	if !ok {
		return false
	}
	return b.pathClear(path)
}
