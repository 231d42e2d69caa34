// Package day13 locates mirror lines in ash-and-rock patterns.
package day13

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Gisleburt/advent-of-code-2023/internal/solvers/parse"
)

// Part1 summarises the clean mirror line of every pattern.
func Part1(input string) (string, error) {
	return summarize(input, 0)
}

// Part2 summarises the mirror line every pattern gains once exactly one
// smudged cell is flipped.
func Part2(input string) (string, error) {
	return summarize(input, 1)
}

func summarize(input string, smudges int) (string, error) {
	total := 0
	for _, block := range parse.Blocks(input) {
		grid := strings.Split(block, "\n")
		if row := mirrorRow(grid, smudges); row > 0 {
			total += 100 * row
			continue
		}
		if col := mirrorRow(transpose(grid), smudges); col > 0 {
			total += col
			continue
		}
		return "", fmt.Errorf("pattern has no mirror line:\n%s", block)
	}
	return strconv.Itoa(total), nil
}

// mirrorRow returns the number of rows above the horizontal mirror
// line, or 0 when no fold leaves exactly the requested number of
// mismatched cells.
func mirrorRow(grid []string, smudges int) int {
	for row := 1; row < len(grid); row++ {
		if mismatches(grid, row) == smudges {
			return row
		}
	}
	return 0
}

// mismatches counts the cells that differ when the grid folds at row.
func mismatches(grid []string, row int) int {
	count := 0
	for a, b := row-1, row; a >= 0 && b < len(grid); a, b = a-1, b+1 {
		count += diff(grid[a], grid[b])
	}
	return count
}

func diff(a, b string) int {
	count := 0
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			count++
		}
	}
	return count
}

func transpose(grid []string) []string {
	if len(grid) == 0 {
		return nil
	}
	cols := make([]string, len(grid[0]))
	for c := range grid[0] {
		col := make([]byte, len(grid))
		for r, row := range grid {
			col[r] = row[c]
		}
		cols[c] = string(col)
	}
	return cols
}
