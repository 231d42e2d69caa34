// Package day01 recovers calibration values from the trebuchet document.
package day01

import (
	"strconv"
	"strings"

	"github.com/Gisleburt/advent-of-code-2023/internal/solvers/parse"
)

// spelled digits in value order, so index+1 is the digit.
var words = []string{
	"one", "two", "three", "four", "five", "six", "seven", "eight", "nine",
}

// Part1 sums the two-digit values formed by the first and last digit on
// each line.
func Part1(input string) (string, error) {
	return sumCalibrations(input, digitAt), nil
}

// Part2 does the same but also accepts spelled-out digits, which may
// overlap ("twone" contributes both a two and a one).
func Part2(input string) (string, error) {
	return sumCalibrations(input, digitOrWordAt), nil
}

func sumCalibrations(input string, at func(string, int) (int, bool)) string {
	total := 0
	for _, line := range parse.Lines(input) {
		if value, ok := calibration(line, at); ok {
			total += value
		}
	}
	return strconv.Itoa(total)
}

// calibration scans every position so overlapping spelled digits are
// all seen. Lines without any digit are skipped by the caller.
func calibration(line string, at func(string, int) (int, bool)) (int, bool) {
	first, last := 0, 0
	found := false
	for i := range line {
		d, ok := at(line, i)
		if !ok {
			continue
		}
		if !found {
			first = d
			found = true
		}
		last = d
	}
	return first*10 + last, found
}

func digitAt(line string, i int) (int, bool) {
	if line[i] >= '0' && line[i] <= '9' {
		return int(line[i] - '0'), true
	}
	return 0, false
}

func digitOrWordAt(line string, i int) (int, bool) {
	if d, ok := digitAt(line, i); ok {
		return d, true
	}
	for w, word := range words {
		if strings.HasPrefix(line[i:], word) {
			return w + 1, true
		}
	}
	return 0, false
}
