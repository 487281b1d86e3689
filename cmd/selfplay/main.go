package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"
)

func main() {
	totalGames := flag.Int("games", 100, "number of games to play")
	workers := flag.Int("workers", runtime.GOMAXPROCS(0), "games played at once")
	maxPlies := flag.Int("maxplies", 200, "stop a game after this many plies")
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed; game i uses seed+i")
	flag.Parse()

	if *totalGames <= 0 || *workers <= 0 || *maxPlies <= 0 {
		fmt.Fprintln(os.Stderr, "games, workers and maxplies must be positive")
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	log.Printf("selfplay: %d games, %d workers, %d max plies, seed %d", *totalGames, *workers, *maxPlies, *seed)

	results := make([]gameResult, *totalGames)
	start := time.Now()

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(*workers)
	for i := range results {
		i := i
		g.Go(func() error {
			res, err := playGame(ctx, *seed+int64(i), *maxPlies)
			if err != nil {
				return fmt.Errorf("game %d: %w", i+1, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatalf("selfplay aborted: %v", err)
	}

	printSummary(os.Stdout, results, time.Since(start))
}
