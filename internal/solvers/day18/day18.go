// Package day18 digs a lava lagoon and measures how much it holds.
package day18

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Gisleburt/advent-of-code-2023/internal/solvers/intmath"
	"github.com/Gisleburt/advent-of-code-2023/internal/solvers/parse"
)

type trench struct {
	dir    byte // 'U', 'D', 'L' or 'R'
	length int
}

// Part1 digs the plan as written.
func Part1(input string) (string, error) {
	plan, err := parsePlan(input, decodePlain)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(volume(plan)), nil
}

// Part2 digs the plan hidden in the colour codes.
func Part2(input string) (string, error) {
	plan, err := parsePlan(input, decodeColour)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(volume(plan)), nil
}

// volume counts the cells inside the trench loop, boundary included.
// The shoelace formula gives the interior area; Pick's theorem turns
// that into a cell count once half the perimeter is added back.
func volume(plan []trench) int {
	area := 0
	perimeter := 0
	row, col := 0, 0
	for _, t := range plan {
		nr, nc := row, col
		switch t.dir {
		case 'U':
			nr -= t.length
		case 'D':
			nr += t.length
		case 'L':
			nc -= t.length
		case 'R':
			nc += t.length
		}
		area += col*nr - nc*row
		perimeter += t.length
		row, col = nr, nc
	}
	return intmath.Abs(area)/2 + perimeter/2 + 1
}

func parsePlan(input string, decode func(fields []string) (trench, error)) ([]trench, error) {
	var plan []trench
	for _, line := range parse.Lines(input) {
		fields := strings.Fields(line)
		if len(fields) != 3 {
			return nil, fmt.Errorf("malformed dig instruction %q", line)
		}
		t, err := decode(fields)
		if err != nil {
			return nil, err
		}
		plan = append(plan, t)
	}
	return plan, nil
}

func decodePlain(fields []string) (trench, error) {
	if len(fields[0]) != 1 || strings.IndexByte("UDLR", fields[0][0]) < 0 {
		return trench{}, fmt.Errorf("unknown dig direction %q", fields[0])
	}
	length, err := strconv.Atoi(fields[1])
	if err != nil {
		return trench{}, fmt.Errorf("dig length %q: %w", fields[1], err)
	}
	return trench{dir: fields[0][0], length: length}, nil
}

var colourDirs = map[byte]byte{'0': 'R', '1': 'D', '2': 'L', '3': 'U'}

// decodeColour reads the instruction hidden in the colour code: five
// hex digits of distance followed by one digit of direction.
func decodeColour(fields []string) (trench, error) {
	colour := strings.Trim(fields[2], "(#)")
	if len(colour) != 6 {
		return trench{}, fmt.Errorf("colour code %q is not six hex digits", fields[2])
	}
	length, err := strconv.ParseInt(colour[:5], 16, 64)
	if err != nil {
		return trench{}, fmt.Errorf("colour code %q: %w", fields[2], err)
	}
	dir, ok := colourDirs[colour[5]]
	if !ok {
		return trench{}, fmt.Errorf("colour code %q has no direction digit", fields[2])
	}
	return trench{dir: dir, length: int(length)}, nil
}
