package janggi

import (
	"strings"
	"testing"
)

// layoutWith renders a layout from coordinate -> piece letter placements.
func layoutWith(placements map[string]rune) string {
	var grid [Rows][Cols]rune
	for r := range grid {
		for c := range grid[r] {
			grid[r][c] = '.'
		}
	}
	for text, ch := range placements {
		r, c, err := Decode(text)
		if err != nil {
			panic(err)
		}
		grid[r][c] = ch
	}
	lines := make([]string, Rows)
	for r := range grid {
		lines[r] = string(grid[r][:])
	}
	return strings.Join(lines, "\n")
}

func mustBoard(t *testing.T, placements map[string]rune) *Board {
	t.Helper()
	b, err := ParseLayout(layoutWith(placements))
	if err != nil {
		t.Fatalf("ParseLayout: %v", err)
	}
	return b
}

func mustGame(t *testing.T, placements map[string]rune, turn Color) *Game {
	t.Helper()
	g, err := NewGameFromLayout(layoutWith(placements), turn)
	if err != nil {
		t.Fatalf("NewGameFromLayout: %v", err)
	}
	return g
}

func sq(text string) Square { return MustSquare(text) }

func mustMove(t *testing.T, g *Game, from, to string) {
	t.Helper()
	ok, err := g.Move(from, to)
	if err != nil {
		t.Fatalf("move %s-%s: %v", from, to, err)
	}
	if !ok {
		t.Fatalf("move %s-%s rejected\n%s", from, to, g.Layout())
	}
}

func mustReject(t *testing.T, g *Game, from, to string) {
	t.Helper()
	turn, hash := g.Turn(), g.Hash()
	ok, err := g.Move(from, to)
	if err != nil {
		t.Fatalf("move %s-%s: %v", from, to, err)
	}
	if ok {
		t.Fatalf("move %s-%s accepted, want rejection", from, to)
	}
	if g.Turn() != turn || g.Hash() != hash {
		t.Fatalf("rejected move %s-%s changed the game", from, to)
	}
}
