package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"janggi/internal/janggi"
)

// TestCase 是给前端/其他实现做对拍用的一条局面
type TestCase struct {
	Board []string `json:"board"` // 10 行，第 1 行在前
	Turn  string   `json:"turn"`
	Stage int      `json:"stage"` // 0=选子，1=选落点
	From  string   `json:"from,omitempty"`
	// Stage 0: 能动的棋子；Stage 1: From 的所有落点
	Squares []string `json:"squares"`
}

func generate(ctx context.Context, rng *rand.Rand, games, maxPlies int) ([]TestCase, error) {
	var cases []TestCase
	for n := 0; n < games; n++ {
		g := janggi.NewGame()
		for ply := 0; ply < maxPlies && g.State() == janggi.Unfinished; ply++ {
			moves, err := g.LegalMoves(ctx)
			if err != nil {
				return nil, err
			}
			if len(moves) == 0 {
				break
			}

			board := g.Ranks()
			turn := g.Turn().String()

			// --- Stage 0: 能选的棋子 ---
			var froms []string
			seen := make(map[janggi.Square]bool)
			for _, mv := range moves {
				if !seen[mv.From] {
					seen[mv.From] = true
					froms = append(froms, mv.From.String())
				}
			}
			cases = append(cases, TestCase{Board: board, Turn: turn, Stage: 0, Squares: froms})

			// 随机选一步
			chosen := moves[rng.Intn(len(moves))]

			// --- Stage 1: 选中棋子后的落点 ---
			var tos []string
			for _, to := range g.LegalDestinations(chosen.From) {
				tos = append(tos, to.String())
			}
			cases = append(cases, TestCase{
				Board:   board,
				Turn:    turn,
				Stage:   1,
				From:    chosen.From.String(),
				Squares: tos,
			})

			if !g.RequestMove(chosen.From, chosen.To) {
				return nil, fmt.Errorf("listed move %s rejected", chosen)
			}
		}
	}
	return cases, nil
}

func main() {
	games := flag.Int("games", 10, "random games to sample")
	maxPlies := flag.Int("maxplies", 200, "plies per game")
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed")
	out := flag.String("out", "move_gen_test_data.json", "output file")
	flag.Parse()

	cases, err := generate(context.Background(), rand.New(rand.NewSource(*seed)), *games, *maxPlies)
	if err != nil {
		log.Fatalf("generate: %v", err)
	}

	file, err := json.MarshalIndent(cases, "", "  ")
	if err != nil {
		log.Fatalf("marshal: %v", err)
	}
	if err := os.WriteFile(*out, file, 0o644); err != nil {
		log.Fatalf("write %s: %v", *out, err)
	}
	fmt.Printf("Generated %d test cases from %d random games to %s\n", len(cases), *games, *out)
}
