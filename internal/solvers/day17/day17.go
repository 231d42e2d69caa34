// Package day17 steers crucibles through the city with the least heat loss.
package day17

import (
	"container/heap"
	"fmt"
	"strconv"

	"github.com/Gisleburt/advent-of-code-2023/internal/solvers/parse"
)

const (
	up = iota
	down
	left
	right
)

var (
	drow = [4]int{-1, 1, 0, 0}
	dcol = [4]int{0, 0, -1, 1}
)

// reverse returns the opposite direction. The pairs share all but the
// lowest bit.
func reverse(dir int) int {
	return dir ^ 1
}

// Part1 routes a crucible that moves at most three blocks in a straight
// line before it must turn.
func Part1(input string) (string, error) {
	grid, err := parseGrid(input)
	if err != nil {
		return "", err
	}
	loss, err := minLoss(grid, 1, 3)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(loss), nil
}

// Part2 routes an ultra crucible that needs four straight blocks before
// turning or stopping and tops out at ten.
func Part2(input string) (string, error) {
	grid, err := parseGrid(input)
	if err != nil {
		return "", err
	}
	loss, err := minLoss(grid, 4, 10)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(loss), nil
}

func parseGrid(input string) ([]string, error) {
	grid := parse.Lines(input)
	if len(grid) == 0 {
		return nil, fmt.Errorf("empty heat loss map")
	}
	for r, line := range grid {
		if len(line) != len(grid[0]) {
			return nil, fmt.Errorf("row %d is %d blocks wide, want %d", r, len(line), len(grid[0]))
		}
		for c := 0; c < len(line); c++ {
			if line[c] < '0' || line[c] > '9' {
				return nil, fmt.Errorf("row %d col %d: %q is not a heat loss digit", r, c, line[c])
			}
		}
	}
	return grid, nil
}

// state identifies a Dijkstra node: a crucible's choices depend not
// just on its position but on how far it has already run straight.
type state struct {
	row, col int
	dir      int // -1 before the first move
	run      int
}

type move struct {
	state
	loss int
}

// minLoss runs Dijkstra from the top-left block to the bottom-right.
// The crucible may continue straight for at most maxRun blocks and may
// only turn or stop after at least minRun.
func minLoss(grid []string, minRun, maxRun int) (int, error) {
	rows, cols := len(grid), len(grid[0])

	best := map[state]int{}
	q := &moveQueue{{state: state{dir: -1}}}
	heap.Init(q)
	for q.Len() > 0 {
		m := heap.Pop(q).(move)
		if m.row == rows-1 && m.col == cols-1 && (m.run >= minRun || m.dir < 0) {
			return m.loss, nil
		}
		if seen, ok := best[m.state]; ok && seen <= m.loss {
			continue
		}
		best[m.state] = m.loss

		for dir := 0; dir < 4; dir++ {
			if m.dir >= 0 {
				if dir == reverse(m.dir) {
					continue
				}
				if dir != m.dir && m.run < minRun {
					continue
				}
			}
			run := 1
			if dir == m.dir {
				run = m.run + 1
				if run > maxRun {
					continue
				}
			}
			row, col := m.row+drow[dir], m.col+dcol[dir]
			if row < 0 || row >= rows || col < 0 || col >= cols {
				continue
			}
			next := move{
				state: state{row: row, col: col, dir: dir, run: run},
				loss:  m.loss + int(grid[row][col]-'0'),
			}
			heap.Push(q, next)
		}
	}
	return 0, fmt.Errorf("no route reaches the machine parts factory")
}

type moveQueue []move

func (q moveQueue) Len() int           { return len(q) }
func (q moveQueue) Less(i, j int) bool { return q[i].loss < q[j].loss }
func (q moveQueue) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }

func (q *moveQueue) Push(x any) {
	*q = append(*q, x.(move))
}

func (q *moveQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}
