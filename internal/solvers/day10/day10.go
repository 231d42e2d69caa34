// Package day10 traces a closed pipe loop and measures what it encloses.
package day10

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Gisleburt/advent-of-code-2023/internal/solvers/parse"
)

type position struct {
	row, col int
}

func (p position) plus(d position) position {
	return position{p.row + d.row, p.col + d.col}
}

var (
	north = position{row: -1}
	south = position{row: 1}
	east  = position{col: 1}
	west  = position{col: -1}
)

// exits maps each pipe tile to the two directions it opens onto.
var exits = map[byte][2]position{
	'|': {north, south},
	'-': {east, west},
	'L': {north, east},
	'J': {north, west},
	'7': {south, west},
	'F': {south, east},
}

// Part1 reports the distance from the start to the farthest tile on the
// loop, which is half the loop's length.
func Part1(input string) (string, error) {
	m, err := parseMaze(input)
	if err != nil {
		return "", err
	}
	tiles, err := m.loop()
	if err != nil {
		return "", err
	}
	return strconv.Itoa(len(tiles) / 2), nil
}

// Part2 counts the tiles enclosed by the loop. A tile is inside when a
// ray cast to its left crosses an odd number of north-facing loop pipes.
func Part2(input string) (string, error) {
	m, err := parseMaze(input)
	if err != nil {
		return "", err
	}
	tiles, err := m.loop()
	if err != nil {
		return "", err
	}

	enclosed := 0
	for r, line := range m.grid {
		inside := false
		for c := range line {
			if tile, on := tiles[position{row: r, col: c}]; on {
				if tile == '|' || tile == 'L' || tile == 'J' {
					inside = !inside
				}
				continue
			}
			if inside {
				enclosed++
			}
		}
	}
	return strconv.Itoa(enclosed), nil
}

type maze struct {
	grid  []string
	start position
}

func parseMaze(input string) (maze, error) {
	grid := parse.Lines(input)
	for r, line := range grid {
		if c := strings.IndexByte(line, 'S'); c >= 0 {
			return maze{grid: grid, start: position{row: r, col: c}}, nil
		}
	}
	return maze{}, fmt.Errorf("no start tile in maze")
}

func (m maze) at(p position) byte {
	if p.row < 0 || p.row >= len(m.grid) || p.col < 0 || p.col >= len(m.grid[p.row]) {
		return '.'
	}
	return m.grid[p.row][p.col]
}

// startPipe infers which pipe the start tile hides by checking which of
// its four neighbours open back onto it.
func (m maze) startPipe() (byte, error) {
	var dirs []position
	for _, d := range []position{north, south, east, west} {
		neighbour := m.start.plus(d)
		ends, ok := exits[m.at(neighbour)]
		if !ok {
			continue
		}
		for _, e := range ends {
			if neighbour.plus(e) == m.start {
				dirs = append(dirs, d)
			}
		}
	}
	if len(dirs) != 2 {
		return 0, fmt.Errorf("start connects to %d pipes, want 2", len(dirs))
	}
	for pipe, ends := range exits {
		if (ends[0] == dirs[0] && ends[1] == dirs[1]) || (ends[0] == dirs[1] && ends[1] == dirs[0]) {
			return pipe, nil
		}
	}
	return 0, fmt.Errorf("no pipe shape fits the start tile")
}

// loop walks the pipe from the start until it closes, returning every
// loop position mapped to its tile. The start maps to its inferred pipe
// rather than 'S' so callers can ray-cast through it.
func (m maze) loop() (map[position]byte, error) {
	pipe, err := m.startPipe()
	if err != nil {
		return nil, err
	}

	tiles := map[position]byte{m.start: pipe}
	dir := exits[pipe][0]
	pos := m.start.plus(dir)
	for pos != m.start {
		tile := m.at(pos)
		ends, ok := exits[tile]
		if !ok {
			return nil, fmt.Errorf("walked off the loop at row %d col %d", pos.row, pos.col)
		}
		tiles[pos] = tile

		came := position{row: -dir.row, col: -dir.col}
		if ends[0] == came {
			dir = ends[1]
		} else {
			dir = ends[0]
		}
		pos = pos.plus(dir)
	}
	return tiles, nil
}
