package engine

import (
	"errors"
	"math/rand"
	"testing"

	"svw.info/slide/internal/domain"
)

func board(size int, cells ...domain.Tile) domain.Board {
	return domain.Board{Size: size, Cells: cells}
}

func TestNewSolvedCanonical(t *testing.T) {
	b, err := NewSolved(3)
	if err != nil {
		t.Fatalf("NewSolved failed: %v", err)
	}
	want := []domain.Tile{1, 2, 3, 4, 5, 6, 7, 8, domain.Empty}
	for i, v := range want {
		if b.Cells[i] != v {
			t.Fatalf("cell %d: got %d, want %d", i, b.Cells[i], v)
		}
	}
	if !IsSolved(b) {
		t.Fatal("canonical board must report solved")
	}
}

func TestNewSolvedRejectsDegenerateSizes(t *testing.T) {
	for _, size := range []int{-1, 0, 1} {
		if _, err := NewSolved(size); !errors.Is(err, domain.ErrInvalidConfiguration) {
			t.Fatalf("size %d: got %v, want ErrInvalidConfiguration", size, err)
		}
	}
}

func TestShuffleZeroMovesIsSolved(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	b, err := Shuffle(rng, 3, 0)
	if err != nil {
		t.Fatalf("Shuffle failed: %v", err)
	}
	if !IsSolved(b) {
		t.Fatalf("zero shuffle moves must yield the solved board, got %v", b.Cells)
	}
}

func TestShuffleRejectsNegativeMoves(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	if _, err := Shuffle(rng, 3, -1); !errors.Is(err, domain.ErrInvalidConfiguration) {
		t.Fatalf("got %v, want ErrInvalidConfiguration", err)
	}
}

func TestShufflePreservesMultiset(t *testing.T) {
	cases := []struct {
		name  string
		size  int
		moves int
	}{
		{"3x3 short", 3, 10},
		{"3x3 long", 3, 500},
		{"4x4", 4, 200},
		{"5x5", 5, 400},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rng := rand.New(rand.NewSource(42))
			b, err := Shuffle(rng, tc.size, tc.moves)
			if err != nil {
				t.Fatalf("Shuffle failed: %v", err)
			}
			if err := CheckBoard(b); err != nil {
				t.Fatalf("invariant broken: %v", err)
			}
		})
	}
}

func TestApplyMoveAdjacentSwap(t *testing.T) {
	// empty at index 7 on a 3x3 grid
	b := board(3, 1, 2, 3, 4, 5, 6, 7, domain.Empty, 8)
	if !ApplyMove(&b, 8) {
		t.Fatal("index 8 is adjacent to the empty cell, move must apply")
	}
	if !IsSolved(b) {
		t.Fatalf("expected solved board after move, got %v", b.Cells)
	}
}

func TestApplyMoveNonAdjacentNoop(t *testing.T) {
	orig := board(3, 1, 2, 3, 4, 5, 6, 7, domain.Empty, 8)
	b := orig.Clone()
	for _, idx := range []int{0, 1, 2, 3, 5, 7, -1, 9, 100} {
		if ApplyMove(&b, idx) {
			t.Fatalf("index %d must not move", idx)
		}
		for i := range orig.Cells {
			if b.Cells[i] != orig.Cells[i] {
				t.Fatalf("index %d: board changed at cell %d", idx, i)
			}
		}
	}
}

func TestApplyMoveChangesExactlyTwoCells(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	b, err := Shuffle(rng, 4, 60)
	if err != nil {
		t.Fatalf("Shuffle failed: %v", err)
	}
	empty := EmptyIndex(b)
	target := neighbors(b.Size, empty)[0]
	before := b.Clone()
	if !ApplyMove(&b, target) {
		t.Fatal("adjacent move must apply")
	}
	changed := 0
	for i := range b.Cells {
		if b.Cells[i] != before.Cells[i] {
			changed++
		}
	}
	if changed != 2 {
		t.Fatalf("move changed %d cells, want 2", changed)
	}
	if err := CheckBoard(b); err != nil {
		t.Fatalf("invariant broken after move: %v", err)
	}
}

func TestIsSolvedRejectsPerturbations(t *testing.T) {
	solved, _ := NewSolved(3)
	// swap every pair once; none may pass as solved
	for i := 0; i < len(solved.Cells); i++ {
		for j := i + 1; j < len(solved.Cells); j++ {
			b := solved.Clone()
			b.Cells[i], b.Cells[j] = b.Cells[j], b.Cells[i]
			if IsSolved(b) {
				t.Fatalf("one-swap perturbation (%d,%d) reported solved", i, j)
			}
		}
	}
}

func TestCheckBoardRejectsDuplicates(t *testing.T) {
	b := board(3, 1, 2, 3, 4, 5, 6, 7, 7, domain.Empty)
	if err := CheckBoard(b); err == nil {
		t.Fatal("duplicate label must fail the invariant check")
	}
	b = board(3, 1, 2, 3, 4, 5, 6, 7, domain.Empty, domain.Empty)
	if err := CheckBoard(b); err == nil {
		t.Fatal("two empty cells must fail the invariant check")
	}
}
