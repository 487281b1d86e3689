package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"janggi/internal/janggi"
)

func main() {
	layoutPath := flag.String("layout", "", "10-line layout file; empty uses the opening")
	turn := flag.String("turn", "blue", "side to move: blue or red")
	flag.Parse()

	g := janggi.NewGame()
	if *layoutPath != "" {
		data, err := os.ReadFile(*layoutPath)
		if err != nil {
			log.Fatal(err)
		}
		side := janggi.Blue
		if *turn == "red" {
			side = janggi.Red
		}
		g, err = janggi.NewGameFromLayout(string(data), side)
		if err != nil {
			log.Fatal(err)
		}
	}

	fmt.Println(g.Layout())
	fmt.Printf("Turn: %s  State: %s  Hash: %016x\n", g.Turn(), g.State(), g.Hash())
	fmt.Println("In check:", g.InCheck(g.Turn()))
	moves, err := g.LegalMoves(context.Background())
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("Legal moves:", len(moves))
	for _, m := range moves {
		fmt.Print(m, " ")
	}
	fmt.Println()
}
