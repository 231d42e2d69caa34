// Package parse provides small input-shaping helpers shared by the day
// solvers. Puzzle inputs arrive as one raw string; these helpers cut it
// into the lines, blocks, and numbers the solvers actually work with.
package parse

import (
	"fmt"
	"strconv"
	"strings"
)

// Lines splits input into lines, dropping a trailing newline so the last
// line never appears as an empty extra entry.
func Lines(input string) []string {
	input = strings.TrimRight(input, "\n")
	if input == "" {
		return nil
	}
	return strings.Split(input, "\n")
}

// Blocks splits input into blank-line separated blocks, preserving the
// line structure inside each block.
func Blocks(input string) []string {
	input = strings.TrimRight(input, "\n")
	if input == "" {
		return nil
	}
	return strings.Split(input, "\n\n")
}

// Ints extracts every integer in s, in order of appearance.
// A '-' immediately before a digit is treated as a sign, so sequences
// like "0 3 -6" parse as expected.
func Ints(s string) ([]int, error) {
	var nums []int
	i := 0
	for i < len(s) {
		start := i
		if s[i] == '-' && i+1 < len(s) && isDigit(s[i+1]) {
			i++
		}
		if !isDigit(s[i]) {
			i++
			continue
		}
		for i < len(s) && isDigit(s[i]) {
			i++
		}
		n, err := strconv.Atoi(s[start:i])
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", s[start:i], err)
		}
		nums = append(nums, n)
	}
	return nums, nil
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
