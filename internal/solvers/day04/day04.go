// Package day04 scores scratchcards and tracks the cascade of copies
// they win.
package day04

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Gisleburt/advent-of-code-2023/internal/solvers/parse"
)

// Part1 scores each card: one point for the first match, doubled for
// every match after that.
func Part1(input string) (string, error) {
	total := 0
	for _, line := range parse.Lines(input) {
		m, err := matches(line)
		if err != nil {
			return "", err
		}
		if m > 0 {
			total += 1 << (m - 1)
		}
	}
	return strconv.Itoa(total), nil
}

// Part2 counts cards after each win duplicates the following cards,
// originals and copies alike.
func Part2(input string) (string, error) {
	lines := parse.Lines(input)

	copies := make([]int, len(lines))
	for i := range copies {
		copies[i] = 1
	}

	for i, line := range lines {
		m, err := matches(line)
		if err != nil {
			return "", err
		}
		for j := i + 1; j <= i+m && j < len(lines); j++ {
			copies[j] += copies[i]
		}
	}

	total := 0
	for _, c := range copies {
		total += c
	}
	return strconv.Itoa(total), nil
}

// matches counts how many of the card's own numbers appear in its
// winning list.
func matches(line string) (int, error) {
	_, rest, ok := strings.Cut(line, ": ")
	if !ok {
		return 0, fmt.Errorf("malformed card line: %q", line)
	}
	winStr, haveStr, ok := strings.Cut(rest, " | ")
	if !ok {
		return 0, fmt.Errorf("malformed card line: %q", line)
	}

	winning, err := parse.Ints(winStr)
	if err != nil {
		return 0, err
	}
	have, err := parse.Ints(haveStr)
	if err != nil {
		return 0, err
	}

	winSet := make(map[int]bool, len(winning))
	for _, n := range winning {
		winSet[n] = true
	}

	count := 0
	for _, n := range have {
		if winSet[n] {
			count++
		}
	}
	return count, nil
}
