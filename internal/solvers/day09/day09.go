// Package day09 extrapolates sensor histories by repeated differencing.
package day09

import (
	"strconv"

	"github.com/Gisleburt/advent-of-code-2023/internal/solvers/parse"
)

// Part1 sums the next value of every history.
func Part1(input string) (string, error) {
	return sumExtrapolated(input, next)
}

// Part2 sums the value preceding every history.
func Part2(input string) (string, error) {
	return sumExtrapolated(input, previous)
}

func sumExtrapolated(input string, extrapolate func([]int) int) (string, error) {
	total := 0
	for _, line := range parse.Lines(input) {
		history, err := parse.Ints(line)
		if err != nil {
			return "", err
		}
		total += extrapolate(history)
	}
	return strconv.Itoa(total), nil
}

// next recursively extends the sequence: once the differences are all
// zero the sequence is constant and the next value is the last one.
func next(seq []int) int {
	if allZero(seq) {
		return 0
	}
	return seq[len(seq)-1] + next(differences(seq))
}

func previous(seq []int) int {
	if allZero(seq) {
		return 0
	}
	return seq[0] - previous(differences(seq))
}

func differences(seq []int) []int {
	diffs := make([]int, len(seq)-1)
	for i := range diffs {
		diffs[i] = seq[i+1] - seq[i]
	}
	return diffs
}

func allZero(seq []int) bool {
	for _, n := range seq {
		if n != 0 {
			return false
		}
	}
	return true
}
