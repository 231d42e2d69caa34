// Package day03 finds part numbers and gear ratios in the engine schematic.
package day03

import (
	"strconv"

	"github.com/Gisleburt/advent-of-code-2023/internal/solvers/parse"
)

// number is a run of digits in the schematic, with end exclusive.
type number struct {
	value int
	row   int
	start int
	end   int
}

type position struct {
	row, col int
}

// Part1 sums every number adjacent, including diagonally, to a symbol.
func Part1(input string) (string, error) {
	lines := parse.Lines(input)
	total := 0
	for _, n := range findNumbers(lines) {
		if touchesSymbol(lines, n) {
			total += n.value
		}
	}
	return strconv.Itoa(total), nil
}

// Part2 sums the gear ratios: for every '*' touching exactly two
// numbers, the product of those numbers.
func Part2(input string) (string, error) {
	lines := parse.Lines(input)

	gears := make(map[position][]int)
	for _, n := range findNumbers(lines) {
		for _, p := range adjacentStars(lines, n) {
			gears[p] = append(gears[p], n.value)
		}
	}

	total := 0
	for _, values := range gears {
		if len(values) == 2 {
			total += values[0] * values[1]
		}
	}
	return strconv.Itoa(total), nil
}

func findNumbers(lines []string) []number {
	var numbers []number
	for row, line := range lines {
		col := 0
		for col < len(line) {
			if !isDigit(line[col]) {
				col++
				continue
			}
			start := col
			for col < len(line) && isDigit(line[col]) {
				col++
			}
			value, _ := strconv.Atoi(line[start:col])
			numbers = append(numbers, number{value: value, row: row, start: start, end: col})
		}
	}
	return numbers
}

// border visits every cell surrounding a number, clipped to the grid.
func border(lines []string, n number, visit func(row, col int, b byte)) {
	for row := n.row - 1; row <= n.row+1; row++ {
		if row < 0 || row >= len(lines) {
			continue
		}
		for col := n.start - 1; col <= n.end; col++ {
			if col < 0 || col >= len(lines[row]) {
				continue
			}
			if row == n.row && col >= n.start && col < n.end {
				continue
			}
			visit(row, col, lines[row][col])
		}
	}
}

func touchesSymbol(lines []string, n number) bool {
	found := false
	border(lines, n, func(_, _ int, b byte) {
		if isSymbol(b) {
			found = true
		}
	})
	return found
}

func adjacentStars(lines []string, n number) []position {
	var stars []position
	border(lines, n, func(row, col int, b byte) {
		if b == '*' {
			stars = append(stars, position{row, col})
		}
	})
	return stars
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isSymbol(b byte) bool {
	return b != '.' && !isDigit(b)
}
