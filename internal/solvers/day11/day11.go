// Package day11 sums shortest paths between galaxies in an expanding universe.
package day11

import (
	"strconv"

	"github.com/Gisleburt/advent-of-code-2023/internal/solvers/intmath"
	"github.com/Gisleburt/advent-of-code-2023/internal/solvers/parse"
)

// Part1 doubles every empty row and column before measuring.
func Part1(input string) (string, error) {
	return strconv.Itoa(sumDistances(input, 2)), nil
}

// Part2 grows every empty row and column to a million times its width.
func Part2(input string) (string, error) {
	return strconv.Itoa(sumDistances(input, 1_000_000)), nil
}

type galaxy struct {
	row, col int
}

func sumDistances(input string, factor int) int {
	lines := parse.Lines(input)

	width := 0
	for _, line := range lines {
		if len(line) > width {
			width = len(line)
		}
	}

	rowHas := make([]bool, len(lines))
	colHas := make([]bool, width)
	var galaxies []galaxy
	for r, line := range lines {
		for c := 0; c < len(line); c++ {
			if line[c] == '#' {
				rowHas[r] = true
				colHas[c] = true
				galaxies = append(galaxies, galaxy{row: r, col: c})
			}
		}
	}

	rowAt := expanded(rowHas, factor)
	colAt := expanded(colHas, factor)

	total := 0
	for i, a := range galaxies {
		for _, b := range galaxies[i+1:] {
			total += intmath.Abs(rowAt[a.row] - rowAt[b.row])
			total += intmath.Abs(colAt[a.col] - colAt[b.col])
		}
	}
	return total
}

// expanded maps each original index to its coordinate once every
// unoccupied row or column has grown to factor times its width.
func expanded(occupied []bool, factor int) []int {
	coords := make([]int, len(occupied))
	at := 0
	for i, has := range occupied {
		coords[i] = at
		if has {
			at++
		} else {
			at += factor
		}
	}
	return coords
}
