// Package day16 traces light beams through a contraption of mirrors
// and splitters.
package day16

import (
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

type beam struct {
	row, col int
	dir      int
}

// Part1 counts the tiles energized by a beam entering the top-left
// corner heading right.
func Part1(input string) (string, error) {
	grid := parse.Lines(input)
	return strconv.Itoa(energized(grid, beam{row: 0, col: 0, dir: right})), nil
}

// Part2 finds the edge entry that energizes the most tiles.
func Part2(input string) (string, error) {
	grid := parse.Lines(input)
	rows := len(grid)
	if rows == 0 {
		return "0", nil
	}
	cols := len(grid[0])

	best := 0
	for c := 0; c < cols; c++ {
		best = max(best, energized(grid, beam{row: 0, col: c, dir: down}))
		best = max(best, energized(grid, beam{row: rows - 1, col: c, dir: up}))
	}
	for r := 0; r < rows; r++ {
		best = max(best, energized(grid, beam{row: r, col: 0, dir: right}))
		best = max(best, energized(grid, beam{row: r, col: cols - 1, dir: left}))
	}
	return strconv.Itoa(best), nil
}

// energized follows every beam spawned from start until all of them
// leave the grid or re-enter a tile in a direction already traced.
func energized(grid []string, start beam) int {
	rows := len(grid)
	if rows == 0 {
		return 0
	}
	cols := len(grid[0])

	seen := make([]bool, rows*cols*4)
	stack := []beam{start}
	for len(stack) > 0 {
		b := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if b.row < 0 || b.row >= rows || b.col < 0 || b.col >= cols {
			continue
		}
		idx := (b.row*cols+b.col)*4 + b.dir
		if seen[idx] {
			continue
		}
		seen[idx] = true

		for _, dir := range next(grid[b.row][b.col], b.dir) {
			stack = append(stack, beam{row: b.row + drow[dir], col: b.col + dcol[dir], dir: dir})
		}
	}

	count := 0
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			base := (r*cols + c) * 4
			if seen[base] || seen[base+1] || seen[base+2] || seen[base+3] {
				count++
			}
		}
	}
	return count
}

// next gives the directions a beam leaves a tile in, given the
// direction it was travelling when it arrived.
func next(tile byte, dir int) []int {
	switch tile {
	case '/':
		switch dir {
		case up:
			return []int{right}
		case down:
			return []int{left}
		case left:
			return []int{down}
		default:
			return []int{up}
		}
	case '\\':
		switch dir {
		case up:
			return []int{left}
		case down:
			return []int{right}
		case left:
			return []int{up}
		default:
			return []int{down}
		}
	case '|':
		if dir == left || dir == right {
			return []int{up, down}
		}
	case '-':
		if dir == up || dir == down {
			return []int{left, right}
		}
	}
	return []int{dir}
}
