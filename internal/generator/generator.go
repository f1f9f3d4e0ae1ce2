package generator

import (
	"context"
	"math/rand"
	"time"

	"svw.info/slide/internal/domain"
	"svw.info/slide/internal/engine"
	"svw.info/slide/internal/ports"
)

// ShuffleGenerator produces boards by a seeded random walk from the solved
// state, so every puzzle it emits is solvable.
type ShuffleGenerator struct{}

func New() *ShuffleGenerator { return &ShuffleGenerator{} }

// tuning returns (gridSize, shuffleMoves) for a difficulty. The constants
// are gameplay tuning, not engine rules.
func tuning(d domain.Difficulty) (int, int) {
	switch d {
	case domain.Easy:
		return 3, 40
	case domain.Hard:
		return 4, 140
	case domain.Expert:
		return 5, 240
	default:
		return 4, 80 // Medium
	}
}

// Generate creates a puzzle for the given seed and difficulty.
func (g *ShuffleGenerator) Generate(ctx context.Context, seed int64, diff domain.Difficulty) (*domain.Puzzle, ports.Stats, error) {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		return nil, ports.Stats{}, err
	}
	size, moves := tuning(diff)
	rng := rand.New(rand.NewSource(seed))
	b, err := engine.Shuffle(rng, size, moves)
	if err != nil {
		return nil, ports.Stats{}, err
	}
	p := &domain.Puzzle{
		Seed:         seed,
		Difficulty:   diff,
		GridSize:     size,
		ShuffleMoves: moves,
		Board:        b,
		CreatedAt:    time.Now().UnixNano(),
	}
	return p, ports.Stats{Nodes: moves, Duration: time.Since(start)}, nil
}
