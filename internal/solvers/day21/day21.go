// Package day21 counts garden plots reachable in an exact number of steps.
package day21

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Gisleburt/advent-of-code-2023/internal/solvers/parse"
)

const (
	part1Steps = 64
	part2Steps = 26_501_365
)

// Part1 counts the plots reachable in exactly 64 steps.
func Part1(input string) (string, error) {
	grid := parse.Lines(input)
	start, err := findStart(grid)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(reachable(grid, start, part1Steps, false)), nil
}

// Part2 repeats the garden infinitely in every direction. The step
// count is the distance to the map edge plus a whole number of map
// widths, which makes the reachable count a quadratic in the number of
// widths; three sampled map crossings pin the quadratic down.
func Part2(input string) (string, error) {
	grid := parse.Lines(input)
	start, err := findStart(grid)
	if err != nil {
		return "", err
	}
	size := len(grid)
	offset := part2Steps % size
	k := part2Steps / size

	f0 := reachable(grid, start, offset, true)
	f1 := reachable(grid, start, offset+size, true)
	f2 := reachable(grid, start, offset+2*size, true)

	// second differences of a quadratic are constant
	a := f2 - 2*f1 + f0
	b := f1 - f0
	return strconv.Itoa(f0 + b*k + a*k*(k-1)/2), nil
}

type position struct {
	row, col int
}

func findStart(grid []string) (position, error) {
	for r, line := range grid {
		if c := strings.IndexByte(line, 'S'); c >= 0 {
			return position{row: r, col: c}, nil
		}
	}
	return position{}, fmt.Errorf("no starting plot on the map")
}

// reachable counts the plots reachable in exactly the given number of
// steps. A plot whose walking distance has the same parity as the step
// count can always be reached on the final step by pacing back and
// forth, so the BFS counts every frontier of matching parity.
func reachable(grid []string, start position, steps int, wrap bool) int {
	rows, cols := len(grid), len(grid[0])

	plot := func(p position) bool {
		r, c := p.row, p.col
		if wrap {
			r = ((r % rows) + rows) % rows
			c = ((c % cols) + cols) % cols
		} else if r < 0 || r >= rows || c < 0 || c >= cols {
			return false
		}
		return grid[r][c] != '#'
	}

	count := 0
	seen := map[position]bool{start: true}
	frontier := []position{start}
	for dist := 0; dist <= steps && len(frontier) > 0; dist++ {
		if dist%2 == steps%2 {
			count += len(frontier)
		}
		var next []position
		for _, p := range frontier {
			for _, d := range [4]position{{row: -1}, {row: 1}, {col: -1}, {col: 1}} {
				np := position{row: p.row + d.row, col: p.col + d.col}
				if seen[np] || !plot(np) {
					continue
				}
				seen[np] = true
				next = append(next, np)
			}
		}
		frontier = next
	}
	return count
}
