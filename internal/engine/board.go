package engine

import (
	"fmt"
	"math/rand"

	"svw.info/slide/internal/domain"
)

// NewSolved returns the canonical solved board for the given grid size:
// labels 1..size²−1 in order with the empty cell last.
func NewSolved(size int) (domain.Board, error) {
	if size < 2 {
		return domain.Board{}, fmt.Errorf("%w: grid size %d", domain.ErrInvalidConfiguration, size)
	}
	n := size * size
	cells := make([]domain.Tile, n)
	for i := 0; i < n-1; i++ {
		cells[i] = domain.Tile(i + 1)
	}
	cells[n-1] = domain.Empty
	return domain.Board{Size: size, Cells: cells}, nil
}

// Shuffle builds a board by applying moves random legal swaps to the solved
// configuration. Every board produced this way is reachable from the solved
// state by the same class of moves, so it is solvable by construction.
// moves = 0 yields the solved board unchanged.
func Shuffle(rng *rand.Rand, size, moves int) (domain.Board, error) {
	if moves < 0 {
		return domain.Board{}, fmt.Errorf("%w: shuffle moves %d", domain.ErrInvalidConfiguration, moves)
	}
	b, err := NewSolved(size)
	if err != nil {
		return domain.Board{}, err
	}
	empty := len(b.Cells) - 1
	for i := 0; i < moves; i++ {
		cand := neighbors(size, empty)
		pick := cand[rng.Intn(len(cand))]
		b.Cells[empty], b.Cells[pick] = b.Cells[pick], b.Cells[empty]
		empty = pick
	}
	return b, nil
}

// ApplyMove swaps the selected cell into the empty cell when the two are
// edge-adjacent. A non-adjacent (or out-of-range) selection is a normal
// user interaction, not an error: the board is left untouched and false
// is returned.
func ApplyMove(b *domain.Board, index int) bool {
	if b == nil || index < 0 || index >= len(b.Cells) {
		return false
	}
	empty := EmptyIndex(*b)
	if empty < 0 || !adjacent(b.Size, index, empty) {
		return false
	}
	b.Cells[index], b.Cells[empty] = b.Cells[empty], b.Cells[index]
	return true
}

// IsSolved reports whether every cell holds its 1-indexed position label
// and the empty cell sits last. Pure.
func IsSolved(b domain.Board) bool {
	n := len(b.Cells)
	if n == 0 || b.Cells[n-1] != domain.Empty {
		return false
	}
	for i := 0; i < n-1; i++ {
		if b.Cells[i] != domain.Tile(i+1) {
			return false
		}
	}
	return true
}

// EmptyIndex returns the linear index of the empty cell, or -1 when the
// board violates its single-empty invariant.
func EmptyIndex(b domain.Board) int {
	for i, t := range b.Cells {
		if t == domain.Empty {
			return i
		}
	}
	return -1
}

// CheckBoard verifies the structural invariant: size² cells holding exactly
// the labels 1..size²−1 plus a single empty marker.
func CheckBoard(b domain.Board) error {
	if b.Size < 2 {
		return fmt.Errorf("%w: grid size %d", domain.ErrInvalidConfiguration, b.Size)
	}
	n := b.Size * b.Size
	if len(b.Cells) != n {
		return fmt.Errorf("board has %d cells, want %d", len(b.Cells), n)
	}
	seen := make([]bool, n)
	for i, t := range b.Cells {
		v := int(t)
		if v >= n {
			return fmt.Errorf("cell %d holds label %d, max is %d", i, v, n-1)
		}
		if seen[v] {
			return fmt.Errorf("duplicate label %d at cell %d", v, i)
		}
		seen[v] = true
	}
	// All n values distinct in [0, n) means the multiset is exact.
	return nil
}

// neighbors lists the 2–4 cells edge-adjacent to the given index.
func neighbors(size, idx int) []int {
	row, col := idx/size, idx%size
	out := make([]int, 0, 4)
	if row > 0 {
		out = append(out, idx-size)
	}
	if row < size-1 {
		out = append(out, idx+size)
	}
	if col > 0 {
		out = append(out, idx-1)
	}
	if col < size-1 {
		out = append(out, idx+1)
	}
	return out
}

// adjacent reports whether a and b share a row or column at distance 1.
func adjacent(size, a, b int) bool {
	ar, ac := a/size, a%size
	br, bc := b/size, b%size
	if ar == br {
		return ac-bc == 1 || bc-ac == 1
	}
	if ac == bc {
		return ar-br == 1 || br-ar == 1
	}
	return false
}
