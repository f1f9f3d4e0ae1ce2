package engine

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"svw.info/slide/internal/domain"
)

func TestSolveShuffledBoards(t *testing.T) {
	cases := []struct {
		name  string
		size  int
		moves int
	}{
		{"3x3 light", 3, 12},
		{"3x3 deep", 3, 200},
		{"4x4 light", 4, 20},
	}
	s := NewAStarSolver()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			rng := rand.New(rand.NewSource(99))
			b, err := Shuffle(rng, tc.size, tc.moves)
			if err != nil {
				t.Fatalf("Shuffle failed: %v", err)
			}
			moves, st, err := s.Solve(ctx, b)
			if err != nil {
				t.Fatalf("Solve failed: %v (nodes=%d dur=%v)", err, st.Nodes, st.Duration)
			}
			if len(moves) > tc.moves {
				t.Fatalf("solution longer than the shuffle walk: %d > %d", len(moves), tc.moves)
			}
			// replay through ApplyMove; this is the solvability guarantee
			for i, idx := range moves {
				if !ApplyMove(&b, idx) {
					t.Fatalf("step %d: move %d rejected", i, idx)
				}
			}
			if !IsSolved(b) {
				t.Fatalf("board not solved after replaying %d moves", len(moves))
			}
			t.Logf("solved in %d moves, nodes=%d dur=%v", len(moves), st.Nodes, st.Duration)
		})
	}
}

func TestSolveSolvedBoardIsEmptyPlan(t *testing.T) {
	b, _ := NewSolved(3)
	moves, _, err := NewAStarSolver().Solve(context.Background(), b)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if len(moves) != 0 {
		t.Fatalf("solved board needs no moves, got %d", len(moves))
	}
}

func TestSolveRejectsBrokenBoard(t *testing.T) {
	b := domain.Board{Size: 3, Cells: []domain.Tile{1, 2, 3, 4, 5, 6, 7, 7, domain.Empty}}
	if _, _, err := NewAStarSolver().Solve(context.Background(), b); err == nil {
		t.Fatal("broken board must be rejected")
	}
}

func TestSolveHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	rng := rand.New(rand.NewSource(5))
	b, _ := Shuffle(rng, 3, 50)
	if _, _, err := NewAStarSolver().Solve(ctx, b); err == nil {
		t.Fatal("cancelled context must abort the search")
	}
}
