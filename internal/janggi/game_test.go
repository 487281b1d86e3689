package janggi

import (
	"context"
	"errors"
	"math/rand"
	"testing"
)

func TestOpeningExchange(t *testing.T) {
	g := NewGame()
	if g.Turn() != Blue {
		t.Fatalf("first turn got=%s want=blue", g.Turn())
	}
	mustMove(t, g, "e7", "e6")
	if g.Turn() != Red {
		t.Fatalf("turn after blue got=%s", g.Turn())
	}
	mustMove(t, g, "e4", "e5")
	if g.Turn() != Blue {
		t.Fatalf("turn after red got=%s", g.Turn())
	}
	if g.State() != Unfinished {
		t.Fatalf("state got=%s", g.State())
	}
	kind, color, ok := g.OccupantAt(sq("e6"))
	if !ok || kind != KindSoldier || color != Blue {
		t.Fatalf("e6 got=(%v,%v,%v)", kind, color, ok)
	}
}

func TestRejectedMoves(t *testing.T) {
	g := NewGame()
	mustReject(t, g, "e5", "e6")   // empty
	mustReject(t, g, "e4", "e5")   // red piece on blue's turn
	mustReject(t, g, "e7", "e5")   // bad shape
	mustReject(t, g, "a10", "a7")  // onto a friend
	mustReject(t, g, "c10", "a9")  // horse leg blocked
	mustReject(t, g, "e9", "e7")   // general two steps
	mustReject(t, g, "b8", "b4")   // cannon without screen
	mustMove(t, g, "e7", "e6")
	mustReject(t, g, "e6", "e5") // blue again on red's turn
}

func TestCannonSequence(t *testing.T) {
	g := NewGame()
	mustMove(t, g, "c7", "b7")
	mustMove(t, g, "e4", "e5")
	mustReject(t, g, "b8", "b2") // cannon in path
	mustReject(t, g, "b8", "b3") // cannon destination
	mustReject(t, g, "h8", "h4") // nothing to jump
	mustMove(t, g, "b8", "b6")
}

func TestMoveReportsMalformedCoordinates(t *testing.T) {
	g := NewGame()
	before := g.Hash()
	for _, tc := range [][2]string{{"e0", "e6"}, {"e7", "j6"}, {"", "e6"}, {"e7", "e06"}} {
		ok, err := g.Move(tc[0], tc[1])
		if ok {
			t.Fatalf("Move(%q,%q) accepted", tc[0], tc[1])
		}
		if !errors.Is(err, ErrInvalidCoordinate) {
			t.Fatalf("Move(%q,%q) err=%v, want ErrInvalidCoordinate", tc[0], tc[1], err)
		}
	}
	if g.Hash() != before || g.Turn() != Blue {
		t.Fatalf("malformed input changed the game")
	}
	if g.RequestMove(NoSquare, sq("e6")) {
		t.Fatalf("RequestMove with NoSquare accepted")
	}
}

func TestPass(t *testing.T) {
	g := NewGame()
	before := g.Layout()
	mustMove(t, g, "e9", "e9")
	if g.Turn() != Red {
		t.Fatalf("pass did not hand over the turn")
	}
	if g.Layout() != before {
		t.Fatalf("pass changed the board")
	}
	// passing on an empty square is still a pass
	mustMove(t, g, "e5", "e5")
	if g.Turn() != Blue {
		t.Fatalf("second pass did not hand over the turn")
	}
}

func TestPassRejectedInCheck(t *testing.T) {
	g := mustGame(t, map[string]rune{"d1": 'k', "e9": 'K', "h1": 'R'}, Red)
	if !g.InCheck(Red) {
		t.Fatalf("red should be in check")
	}
	mustReject(t, g, "d1", "d1")
	mustReject(t, g, "e5", "e5")
	mustReject(t, g, "d1", "e1") // still on the chariot's rank
	mustMove(t, g, "d1", "d2")
}

func TestSelfCheckRejected(t *testing.T) {
	g := mustGame(t, map[string]rune{"e9": 'K', "e8": 'R', "e5": 'r', "d2": 'k'}, Blue)
	mustReject(t, g, "e8", "a8")
	mustMove(t, g, "e8", "e5")
	if g.PieceCount(Red) != 1 {
		t.Fatalf("red pieces got=%d want=1", g.PieceCount(Red))
	}
}

func TestForcedMate(t *testing.T) {
	g := mustGame(t, map[string]rune{"d1": 'k', "e9": 'K', "i4": 'R', "h5": 'R'}, Blue)

	mustMove(t, g, "i4", "i2")
	if g.State() != Unfinished {
		t.Fatalf("state after closing rank 2 got=%s", g.State())
	}
	mustMove(t, g, "d1", "d1")
	if g.State() != Unfinished {
		t.Fatalf("state after red pass got=%s", g.State())
	}
	mustMove(t, g, "h5", "h1")
	if g.State() != BlueWon {
		t.Fatalf("state after mate got=%s want=%s", g.State(), BlueWon)
	}
	if g.State().String() != "BLUE_WON" {
		t.Fatalf("state name got=%q", g.State().String())
	}

	mustReject(t, g, "d1", "d2")
	mustReject(t, g, "d1", "d1")
	if got := g.LegalDestinations(sq("d1")); got != nil {
		t.Fatalf("destinations after game over = %v", got)
	}
	moves, err := g.LegalMoves(context.Background())
	if err != nil || moves != nil {
		t.Fatalf("legal moves after game over = %v, %v", moves, err)
	}
}

func TestCheckThatCanBeAnsweredDoesNotEndGame(t *testing.T) {
	tests := []struct {
		name   string
		extra  map[string]rune
		answer [2]string
	}{
		{"capture", map[string]rune{"h8": 'r'}, [2]string{"h8", "h1"}},
		{"block", map[string]rune{"e3": 'h'}, [2]string{"e3", "f1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pieces := map[string]rune{"d1": 'k', "e9": 'K', "i4": 'R', "h5": 'R'}
			for k, v := range tt.extra {
				pieces[k] = v
			}
			g := mustGame(t, pieces, Blue)
			mustMove(t, g, "i4", "i2")
			mustMove(t, g, "d1", "d1")
			mustMove(t, g, "h5", "h1")
			if g.State() != Unfinished {
				t.Fatalf("state got=%s want=UNFINISHED", g.State())
			}
			if !g.InCheck(Red) {
				t.Fatalf("red should be in check")
			}
			mustMove(t, g, tt.answer[0], tt.answer[1])
			if g.InCheck(Red) {
				t.Fatalf("answer %s-%s left red in check", tt.answer[0], tt.answer[1])
			}
		})
	}
}

func TestNewGameFromLayoutRejectsBadTurn(t *testing.T) {
	_, err := NewGameFromLayout(OpeningLayout(), NoColor)
	if !errors.Is(err, ErrInvalidLayout) {
		t.Fatalf("err=%v, want ErrInvalidLayout", err)
	}
}

func TestNewGameFromLayoutRejectsWaitingSideInCheck(t *testing.T) {
	checked := layoutWith(map[string]rune{"d1": 'k', "e9": 'K', "h1": 'R'})
	if _, err := NewGameFromLayout(checked, Blue); !errors.Is(err, ErrInvalidLayout) {
		t.Fatalf("err=%v, want ErrInvalidLayout", err)
	}
	if _, err := NewGameFromLayout(checked, Red); err != nil {
		t.Fatalf("side to move in check should be allowed: %v", err)
	}
}

func TestLegalDestinations(t *testing.T) {
	g := NewGame()
	got := g.LegalDestinations(sq("c10"))
	if len(got) != 1 || got[0] != sq("d8") {
		t.Fatalf("c10 destinations = %v, want [d8]", got)
	}
	if got := g.LegalDestinations(sq("e4")); got != nil {
		t.Fatalf("red destinations on blue's turn = %v", got)
	}
	if got := g.LegalDestinations(sq("e5")); got != nil {
		t.Fatalf("empty square destinations = %v", got)
	}
}

func TestRandomPlayoutInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	g := NewGame()
	ctx := context.Background()

	blue, red := g.PieceCount(Blue), g.PieceCount(Red)
	for ply := 0; ply < 120 && g.State() == Unfinished; ply++ {
		moves, err := g.LegalMoves(ctx)
		if err != nil {
			t.Fatalf("LegalMoves: %v", err)
		}
		turn := g.Turn()
		if len(moves) == 0 {
			if !g.RequestMove(sq("e5"), sq("e5")) {
				break
			}
			continue
		}
		mv := moves[rng.Intn(len(moves))]
		if !g.RequestMove(mv.From, mv.To) {
			t.Fatalf("listed move %s rejected at ply %d\n%s", mv, ply, g.Layout())
		}
		if g.Turn() != turn.Opponent() {
			t.Fatalf("turn did not alternate at ply %d", ply)
		}
		if g.InCheck(turn) {
			t.Fatalf("%s left itself in check at ply %d", turn, ply)
		}

		nb, nr := g.PieceCount(Blue), g.PieceCount(Red)
		if nb > blue || nr > red {
			t.Fatalf("piece count grew at ply %d", ply)
		}
		if (blue-nb)+(red-nr) > 1 {
			t.Fatalf("more than one capture in a single move at ply %d", ply)
		}
		if g.board.PieceCount() != nb+nr {
			t.Fatalf("board and player counts disagree at ply %d", ply)
		}
		blue, red = nb, nr
	}
}
