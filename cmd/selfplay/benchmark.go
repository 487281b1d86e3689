package main

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"time"

	"janggi/internal/janggi"
)

type outcome int

const (
	outcomeBlueWon outcome = iota
	outcomeRedWon
	outcomePlyLimit // 步数用完，算和
	outcomeStuck    // 被将但没有合法应招，也没被判将死
)

func (o outcome) String() string {
	switch o {
	case outcomeBlueWon:
		return "blue won"
	case outcomeRedWon:
		return "red won"
	case outcomePlyLimit:
		return "ply limit"
	default:
		return "stuck"
	}
}

type gameResult struct {
	Outcome  outcome
	Plies    int
	Passes   int
	Captures int
	Elapsed  time.Duration
}

// playGame 双方都随机走合法招，没招可走时停一手
func playGame(ctx context.Context, seed int64, maxPlies int) (gameResult, error) {
	rng := rand.New(rand.NewSource(seed))
	g := janggi.NewGame()
	start := time.Now()

	var res gameResult
	for res.Plies < maxPlies {
		switch g.State() {
		case janggi.BlueWon:
			res.Outcome = outcomeBlueWon
			res.Elapsed = time.Since(start)
			return res, nil
		case janggi.RedWon:
			res.Outcome = outcomeRedWon
			res.Elapsed = time.Since(start)
			return res, nil
		}

		moves, err := g.LegalMoves(ctx)
		if err != nil {
			return res, err
		}
		if len(moves) == 0 {
			pass := janggi.MustSquare("e5")
			if !g.RequestMove(pass, pass) {
				res.Outcome = outcomeStuck
				res.Elapsed = time.Since(start)
				return res, nil
			}
			res.Passes++
			res.Plies++
			continue
		}

		before := g.PieceCount(janggi.Blue) + g.PieceCount(janggi.Red)
		mv := moves[rng.Intn(len(moves))]
		if !g.RequestMove(mv.From, mv.To) {
			return res, fmt.Errorf("listed move %s rejected at ply %d\n%s", mv, res.Plies, g.Layout())
		}
		after := g.PieceCount(janggi.Blue) + g.PieceCount(janggi.Red)
		switch before - after {
		case 0:
		case 1:
			res.Captures++
		default:
			return res, fmt.Errorf("move %s changed piece count %d -> %d", mv, before, after)
		}
		res.Plies++
	}

	switch g.State() {
	case janggi.BlueWon:
		res.Outcome = outcomeBlueWon
	case janggi.RedWon:
		res.Outcome = outcomeRedWon
	default:
		res.Outcome = outcomePlyLimit
	}
	res.Elapsed = time.Since(start)
	return res, nil
}

func printSummary(w io.Writer, results []gameResult, wall time.Duration) {
	counts := make(map[outcome]int)
	var plies, captures, passes int
	var busy time.Duration
	for _, r := range results {
		counts[r.Outcome]++
		plies += r.Plies
		captures += r.Captures
		passes += r.Passes
		busy += r.Elapsed
	}

	fmt.Fprintf(w, "\n=== Selfplay: %d games in %v ===\n", len(results), wall.Round(time.Millisecond))
	for _, o := range []outcome{outcomeBlueWon, outcomeRedWon, outcomePlyLimit, outcomeStuck} {
		fmt.Fprintf(w, "%s: %d\n", o, counts[o])
	}
	if len(results) > 0 {
		fmt.Fprintf(w, "avg plies: %.1f  captures: %.1f  passes: %.1f\n",
			float64(plies)/float64(len(results)),
			float64(captures)/float64(len(results)),
			float64(passes)/float64(len(results)))
	}
	if s := wall.Seconds(); s > 0 {
		fmt.Fprintf(w, "plies/sec: %.0f (game time %v)\n", float64(plies)/s, busy.Round(time.Millisecond))
	}
}
