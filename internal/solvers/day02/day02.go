// Package day02 checks which cube games are possible and how big the
// smallest viable bag would be.
package day02

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Gisleburt/advent-of-code-2023/internal/solvers/parse"
)

// Bag contents the elf asks about in part one.
const (
	maxRed   = 12
	maxGreen = 13
	maxBlue  = 14
)

type draw struct {
	red, green, blue int
}

type game struct {
	id    int
	draws []draw
}

// Part1 sums the IDs of games playable with 12 red, 13 green, and 14
// blue cubes.
func Part1(input string) (string, error) {
	total := 0
	for _, line := range parse.Lines(input) {
		g, err := parseGame(line)
		if err != nil {
			return "", err
		}
		if g.possible() {
			total += g.id
		}
	}
	return strconv.Itoa(total), nil
}

// Part2 sums the power of the minimal cube set needed for each game.
func Part2(input string) (string, error) {
	total := 0
	for _, line := range parse.Lines(input) {
		g, err := parseGame(line)
		if err != nil {
			return "", err
		}
		minimal := g.minimalSet()
		total += minimal.red * minimal.green * minimal.blue
	}
	return strconv.Itoa(total), nil
}

func (g game) possible() bool {
	for _, d := range g.draws {
		if d.red > maxRed || d.green > maxGreen || d.blue > maxBlue {
			return false
		}
	}
	return true
}

func (g game) minimalSet() draw {
	var minimal draw
	for _, d := range g.draws {
		minimal.red = max(minimal.red, d.red)
		minimal.green = max(minimal.green, d.green)
		minimal.blue = max(minimal.blue, d.blue)
	}
	return minimal
}

// parseGame reads a line like
// "Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green".
func parseGame(line string) (game, error) {
	head, rest, ok := strings.Cut(line, ": ")
	if !ok {
		return game{}, fmt.Errorf("malformed game line: %q", line)
	}

	id, err := strconv.Atoi(strings.TrimPrefix(head, "Game "))
	if err != nil {
		return game{}, fmt.Errorf("malformed game id in %q: %w", head, err)
	}

	g := game{id: id}
	for _, round := range strings.Split(rest, "; ") {
		var d draw
		for _, cubes := range strings.Split(round, ", ") {
			countStr, colour, ok := strings.Cut(cubes, " ")
			if !ok {
				return game{}, fmt.Errorf("malformed cube count: %q", cubes)
			}
			count, err := strconv.Atoi(countStr)
			if err != nil {
				return game{}, fmt.Errorf("malformed cube count in %q: %w", cubes, err)
			}
			switch colour {
			case "red":
				d.red = count
			case "green":
				d.green = count
			case "blue":
				d.blue = count
			default:
				return game{}, fmt.Errorf("unknown cube colour %q", colour)
			}
		}
		g.draws = append(g.draws, d)
	}
	return g, nil
}
