// Package day12 counts the spring arrangements that satisfy damage records.
package day12

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Gisleburt/advent-of-code-2023/internal/solvers/parse"
)

// Part1 sums the possible arrangements of every row as written.
func Part1(input string) (string, error) {
	return sumArrangements(input, 1)
}

// Part2 unfolds every row five times before counting.
func Part2(input string) (string, error) {
	return sumArrangements(input, 5)
}

func sumArrangements(input string, copies int) (string, error) {
	total := 0
	for _, line := range parse.Lines(input) {
		r, err := parseRecord(line)
		if err != nil {
			return "", err
		}
		if copies > 1 {
			r = r.unfold(copies)
		}
		total += arrangements(r.pattern, r.groups)
	}
	return strconv.Itoa(total), nil
}

type record struct {
	pattern string
	groups  []int
}

func parseRecord(line string) (record, error) {
	pattern, list, ok := strings.Cut(line, " ")
	if !ok {
		return record{}, fmt.Errorf("malformed condition record %q", line)
	}
	groups, err := parse.Ints(list)
	if err != nil {
		return record{}, err
	}
	return record{pattern: pattern, groups: groups}, nil
}

// unfold joins copies of the pattern with '?' and repeats the groups.
func (r record) unfold(copies int) record {
	patterns := make([]string, copies)
	groups := make([]int, 0, copies*len(r.groups))
	for i := range patterns {
		patterns[i] = r.pattern
		groups = append(groups, r.groups...)
	}
	return record{pattern: strings.Join(patterns, "?"), groups: groups}
}

// arrangements counts the ways pattern's unknowns can be resolved so
// that its runs of damaged springs match groups exactly. States are
// (pattern offset, group offset) pairs, memoised.
func arrangements(pattern string, groups []int) int {
	memo := make(map[[2]int]int)

	var count func(i, j int) int
	count = func(i, j int) int {
		if i > len(pattern) {
			i = len(pattern)
		}
		for i < len(pattern) && pattern[i] == '.' {
			i++
		}
		if j == len(groups) {
			if strings.IndexByte(pattern[i:], '#') >= 0 {
				return 0
			}
			return 1
		}
		if i == len(pattern) {
			return 0
		}

		key := [2]int{i, j}
		if cached, ok := memo[key]; ok {
			return cached
		}

		total := 0
		if canPlace(pattern, i, groups[j]) {
			total += count(i+groups[j]+1, j+1)
		}
		if pattern[i] == '?' {
			total += count(i+1, j)
		}
		memo[key] = total
		return total
	}

	return count(0, 0)
}

// canPlace reports whether a run of n damaged springs can start at i:
// the n cells must not be operational and the cell after the run must
// not force the run to continue.
func canPlace(pattern string, i, n int) bool {
	if i+n > len(pattern) {
		return false
	}
	for k := i; k < i+n; k++ {
		if pattern[k] == '.' {
			return false
		}
	}
	return i+n == len(pattern) || pattern[i+n] != '#'
}
