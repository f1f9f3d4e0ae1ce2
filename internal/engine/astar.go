package engine

import (
	"container/heap"
	"context"
	"errors"
	"time"

	"svw.info/slide/internal/domain"
	"svw.info/slide/internal/ports"
)

// AStarSolver finds a shortest move sequence to the solved state using A*
// with the Manhattan-distance heuristic. Practical for the board sizes the
// client generates; the node budget caps runaway searches on large grids.
type AStarSolver struct {
	MaxNodes int
}

const defaultMaxNodes = 200_000

var errNoSolution = errors.New("no solution within search budget")

func NewAStarSolver() *AStarSolver { return &AStarSolver{MaxNodes: defaultMaxNodes} }

// Solve returns the cell indices to select, in order, to reach the solved
// state. An already-solved board yields an empty sequence.
func (s *AStarSolver) Solve(ctx context.Context, b domain.Board) ([]int, ports.Stats, error) {
	start := time.Now()
	if err := CheckBoard(b); err != nil {
		return nil, ports.Stats{}, err
	}
	limit := s.MaxNodes
	if limit <= 0 {
		limit = defaultMaxNodes
	}

	root := &node{board: b.Clone(), h: manhattan(b)}
	open := &nodeQueue{root}
	heap.Init(open)
	best := map[string]int{key(b): 0}
	expanded := 0

	for open.Len() > 0 {
		if err := ctx.Err(); err != nil {
			return nil, ports.Stats{Nodes: expanded, Duration: time.Since(start)}, err
		}
		cur := heap.Pop(open).(*node)
		if IsSolved(cur.board) {
			return path(cur), ports.Stats{Nodes: expanded, Duration: time.Since(start)}, nil
		}
		expanded++
		if expanded > limit {
			break
		}

		empty := EmptyIndex(cur.board)
		for _, idx := range neighbors(cur.board.Size, empty) {
			next := cur.board.Clone()
			next.Cells[idx], next.Cells[empty] = next.Cells[empty], next.Cells[idx]
			g := cur.g + 1
			k := key(next)
			if prev, ok := best[k]; ok && g >= prev {
				continue
			}
			best[k] = g
			heap.Push(open, &node{board: next, move: idx, g: g, h: manhattan(next), parent: cur})
		}
	}
	return nil, ports.Stats{Nodes: expanded, Duration: time.Since(start)}, errNoSolution
}

type node struct {
	board  domain.Board
	move   int // cell selected to reach this state from parent
	g, h   int
	index  int
	parent *node
}

// path walks parents back to the root and reverses the move list.
func path(n *node) []int {
	depth := n.g
	out := make([]int, depth)
	for cur := n; cur.parent != nil; cur = cur.parent {
		depth--
		out[depth] = cur.move
	}
	return out
}

// manhattan sums each tile's grid distance from its home cell.
func manhattan(b domain.Board) int {
	sum := 0
	for i, t := range b.Cells {
		if t == domain.Empty {
			continue
		}
		home := int(t) - 1
		dr := i/b.Size - home/b.Size
		if dr < 0 {
			dr = -dr
		}
		dc := i%b.Size - home%b.Size
		if dc < 0 {
			dc = -dc
		}
		sum += dr + dc
	}
	return sum
}

// key serializes a board for the visited set.
func key(b domain.Board) string {
	out := make([]byte, len(b.Cells))
	for i, t := range b.Cells {
		out[i] = byte(t)
	}
	return string(out)
}

// nodeQueue is a min-heap on f = g + h, ties broken toward lower h.
type nodeQueue []*node

func (q nodeQueue) Len() int { return len(q) }
func (q nodeQueue) Less(i, j int) bool {
	fi, fj := q[i].g+q[i].h, q[j].g+q[j].h
	if fi == fj {
		return q[i].h < q[j].h
	}
	return fi < fj
}
func (q nodeQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i]; q[i].index = i; q[j].index = j }
func (q *nodeQueue) Push(x any)   { n := x.(*node); n.index = len(*q); *q = append(*q, n) }
func (q *nodeQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	item.index = -1
	*q = old[:n-1]
	return item
}
