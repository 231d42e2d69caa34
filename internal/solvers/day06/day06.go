// Package day06 counts the ways to beat each boat race record.
package day06

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Gisleburt/advent-of-code-2023/internal/solvers/parse"
)

// Part1 multiplies together the number of winning hold times per race.
func Part1(input string) (string, error) {
	times, distances, err := parseRaces(input)
	if err != nil {
		return "", err
	}

	product := 1
	for i := range times {
		product *= waysToWin(times[i], distances[i])
	}
	return strconv.Itoa(product), nil
}

// Part2 ignores the spacing, reading each line as one long number.
func Part2(input string) (string, error) {
	lines := parse.Lines(input)
	if len(lines) != 2 {
		return "", fmt.Errorf("race sheet needs 2 lines, got %d", len(lines))
	}

	time, err := joinedNumber(lines[0])
	if err != nil {
		return "", err
	}
	distance, err := joinedNumber(lines[1])
	if err != nil {
		return "", err
	}

	return strconv.Itoa(waysToWin(time, distance)), nil
}

// waysToWin counts hold times that cover more than record millimetres.
// Holding for h in a t millisecond race travels h*(t-h).
func waysToWin(time, record int) int {
	count := 0
	for hold := 1; hold < time; hold++ {
		if hold*(time-hold) > record {
			count++
		}
	}
	return count
}

func parseRaces(input string) (times, distances []int, err error) {
	lines := parse.Lines(input)
	if len(lines) != 2 {
		return nil, nil, fmt.Errorf("race sheet needs 2 lines, got %d", len(lines))
	}

	times, err = parse.Ints(lines[0])
	if err != nil {
		return nil, nil, err
	}
	distances, err = parse.Ints(lines[1])
	if err != nil {
		return nil, nil, err
	}
	if len(times) != len(distances) || len(times) == 0 {
		return nil, nil, fmt.Errorf("mismatched race sheet: %d times, %d distances", len(times), len(distances))
	}
	return times, distances, nil
}

// joinedNumber strips the label and whitespace, leaving the digits as a
// single number.
func joinedNumber(line string) (int, error) {
	_, digits, ok := strings.Cut(line, ":")
	if !ok {
		return 0, fmt.Errorf("malformed race line: %q", line)
	}
	return strconv.Atoi(strings.ReplaceAll(digits, " ", ""))
}
