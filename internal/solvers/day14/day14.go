// Package day14 rolls round rocks around a tilting platform.
package day14

import (
	"strconv"
	"strings"

	"github.com/Gisleburt/advent-of-code-2023/internal/solvers/parse"
)

const spinCycles = 1_000_000_000

// Part1 tilts the platform north once and reports the load on the
// north support beams.
func Part1(input string) (string, error) {
	p := parsePlatform(input)
	p.tiltNorth()
	return strconv.Itoa(p.northLoad()), nil
}

// Part2 runs a billion spin cycles, jumping ahead once the platform
// state starts repeating.
func Part2(input string) (string, error) {
	p := parsePlatform(input)
	seen := map[string]int{}
	for i := 0; i < spinCycles; i++ {
		state := p.String()
		if start, ok := seen[state]; ok {
			period := i - start
			remaining := (spinCycles - i) % period
			for j := 0; j < remaining; j++ {
				p.spin()
			}
			return strconv.Itoa(p.northLoad()), nil
		}
		seen[state] = i
		p.spin()
	}
	return strconv.Itoa(p.northLoad()), nil
}

type platform [][]byte

func parsePlatform(input string) platform {
	lines := parse.Lines(input)
	grid := make(platform, len(lines))
	for i, line := range lines {
		grid[i] = []byte(line)
	}
	return grid
}

// Round rocks roll until they hit a cube rock, another round rock, or
// the platform edge. Each tilt sweeps away from the edge, tracking the
// next free cell a rock can come to rest in.

func (p platform) tiltNorth() {
	if len(p) == 0 {
		return
	}
	for c := range p[0] {
		free := 0
		for r := range p {
			switch p[r][c] {
			case '#':
				free = r + 1
			case 'O':
				p[r][c], p[free][c] = '.', 'O'
				free++
			}
		}
	}
}

func (p platform) tiltSouth() {
	if len(p) == 0 {
		return
	}
	for c := range p[0] {
		free := len(p) - 1
		for r := len(p) - 1; r >= 0; r-- {
			switch p[r][c] {
			case '#':
				free = r - 1
			case 'O':
				p[r][c], p[free][c] = '.', 'O'
				free--
			}
		}
	}
}

func (p platform) tiltWest() {
	for r := range p {
		free := 0
		for c := range p[r] {
			switch p[r][c] {
			case '#':
				free = c + 1
			case 'O':
				p[r][c], p[r][free] = '.', 'O'
				free++
			}
		}
	}
}

func (p platform) tiltEast() {
	for r := range p {
		free := len(p[r]) - 1
		for c := len(p[r]) - 1; c >= 0; c-- {
			switch p[r][c] {
			case '#':
				free = c - 1
			case 'O':
				p[r][c], p[r][free] = '.', 'O'
				free--
			}
		}
	}
}

func (p platform) spin() {
	p.tiltNorth()
	p.tiltWest()
	p.tiltSouth()
	p.tiltEast()
}

// northLoad sums each round rock's distance from the south edge.
func (p platform) northLoad() int {
	load := 0
	for r, row := range p {
		for _, b := range row {
			if b == 'O' {
				load += len(p) - r
			}
		}
	}
	return load
}

func (p platform) String() string {
	rows := make([]string, len(p))
	for i, row := range p {
		rows[i] = string(row)
	}
	return strings.Join(rows, "\n")
}
